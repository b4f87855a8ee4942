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

type FlowStatsReply struct {
	statsReply
	entries []openflow.FlowStatsEntry
}

func NewFlowStatsReply(xid uint32) openflow.FlowStatsReply {
	return &FlowStatsReply{
		statsReply: newStatsReply(xid, openflow.StatsFlow),
	}
}

func (r *FlowStatsReply) Entries() []openflow.FlowStatsEntry {
	return r.entries
}

func (r *FlowStatsReply) SetEntries(entries []openflow.FlowStatsEntry) {
	r.entries = entries
}

func marshalFlowStatsEntry(e openflow.FlowStatsEntry) ([]byte, error) {
	match := e.Match
	if match == nil {
		match = NewMatch()
	}
	m, err := match.MarshalBinary()
	if err != nil {
		return nil, err
	}

	inst := make([]byte, 0)
	for _, i := range e.Instructions {
		v, err := i.MarshalBinary()
		if err != nil {
			return nil, err
		}
		inst = append(inst, v...)
	}

	v := make([]byte, 48+len(m)+len(inst))
	binary.BigEndian.PutUint16(v[0:2], uint16(len(v)))
	v[2] = e.TableID
	// v[3] is padding
	binary.BigEndian.PutUint32(v[4:8], e.DurationSec)
	// v[8:12] is duration_nsec
	binary.BigEndian.PutUint16(v[12:14], e.Priority)
	binary.BigEndian.PutUint16(v[14:16], e.IdleTimeout)
	binary.BigEndian.PutUint16(v[16:18], e.HardTimeout)
	// v[18:20] is flags, v[20:24] is padding
	binary.BigEndian.PutUint64(v[24:32], e.Cookie)
	binary.BigEndian.PutUint64(v[32:40], e.PacketCount)
	binary.BigEndian.PutUint64(v[40:48], e.ByteCount)
	copy(v[48:], m)
	copy(v[48+len(m):], inst)

	return v, nil
}

func (r *FlowStatsReply) MarshalBinary() ([]byte, error) {
	body := make([]byte, 0)
	for _, e := range r.entries {
		v, err := marshalFlowStatsEntry(e)
		if err != nil {
			return nil, err
		}
		body = append(body, v...)
	}

	return r.marshalBody(body)
}
