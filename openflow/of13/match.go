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

// Match is an OXM flow match. Only the IN_PORT field is encoded; an
// empty OXM list matches everything.
type Match struct {
	wildcard bool
	inPort   uint32
}

func NewMatch() openflow.Match {
	return &Match{
		wildcard: true,
	}
}

func (r *Match) SetWildcardInPort() {
	r.wildcard = true
	r.inPort = 0
}

func (r *Match) SetInPort(port uint32) {
	r.wildcard = false
	r.inPort = port
}

func (r *Match) InPort() (wildcard bool, inport uint32) {
	return r.wildcard, r.inPort
}

func (r *Match) MarshalBinary() ([]byte, error) {
	length := 4 // ofp_match header
	if !r.wildcard {
		length += 8 // OXM TLV for IN_PORT
	}
	padded := (length + 7) / 8 * 8

	v := make([]byte, padded)
	binary.BigEndian.PutUint16(v[0:2], OFPMT_OXM)
	binary.BigEndian.PutUint16(v[2:4], uint16(length))
	if !r.wildcard {
		binary.BigEndian.PutUint16(v[4:6], OFPXMC_OPENFLOW_BASIC)
		v[6] = OFPXMT_OFB_IN_PORT << 1
		v[7] = 4
		binary.BigEndian.PutUint32(v[8:12], r.inPort)
	}

	return v, nil
}

func (r *Match) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return openflow.ErrInvalidPacketLength
	}
	if binary.BigEndian.Uint16(data[0:2]) != OFPMT_OXM {
		return openflow.ErrUnsupportedUnmarshaling
	}
	length := int(binary.BigEndian.Uint16(data[2:4]))
	if length < 4 || len(data) < length {
		return openflow.ErrInvalidPacketLength
	}

	r.wildcard = true
	r.inPort = 0

	fields := data[4:length]
	for len(fields) >= 4 {
		class := binary.BigEndian.Uint16(fields[0:2])
		field := fields[2] >> 1
		size := int(fields[3])
		if len(fields) < 4+size {
			return openflow.ErrInvalidPacketLength
		}
		if class == OFPXMC_OPENFLOW_BASIC && field == OFPXMT_OFB_IN_PORT && size == 4 {
			r.wildcard = false
			r.inPort = binary.BigEndian.Uint32(fields[4:8])
		}
		fields = fields[4+size:]
	}

	return nil
}
