/*
 * OFAgent - An OpenFlow Switch Agent
 *
 * Copyright (C) 2017 Virtual SDN Project.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with this program; if not, write to the Free Software Foundation, Inc.,
 * 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 */

package of13

import (
	"encoding/binary"

	"github.com/hobrien17/onos/openflow"
)

type Instruction struct {
	gotoTable bool
	tableID   uint8
	action    openflow.Action
}

func NewInstruction() openflow.Instruction {
	return &Instruction{}
}

func (r *Instruction) GotoTable(tableID uint8) {
	r.gotoTable = true
	r.tableID = tableID
}

func (r *Instruction) ApplyAction(act openflow.Action) {
	r.gotoTable = false
	r.action = act
}

func (r *Instruction) MarshalBinary() ([]byte, error) {
	if r.gotoTable {
		v := make([]byte, 8)
		binary.BigEndian.PutUint16(v[0:2], OFPIT_GOTO_TABLE)
		binary.BigEndian.PutUint16(v[2:4], 8)
		v[4] = r.tableID
		// v[5:8] is padding

		return v, nil
	}
	if r.action == nil {
		return nil, openflow.ErrUnsupportedMarshaling
	}

	action, err := r.action.MarshalBinary()
	if err != nil {
		return nil, err
	}

	v := make([]byte, 8+len(action))
	binary.BigEndian.PutUint16(v[0:2], OFPIT_APPLY_ACTIONS)
	binary.BigEndian.PutUint16(v[2:4], uint16(len(v)))
	// v[4:8] is padding
	copy(v[8:], action)

	return v, nil
}
