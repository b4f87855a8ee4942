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

// Action is an ordered OpenFlow action list. The emulated switch only
// ever emits and consumes OFPAT_OUTPUT; other action types are skipped
// on the wire.
type Action struct {
	*openflow.BaseAction
}

func NewAction() openflow.Action {
	return &Action{
		BaseAction: openflow.NewBaseAction(),
	}
}

func marshalOutput(p openflow.OutPort) ([]byte, error) {
	v := make([]byte, 16)
	binary.BigEndian.PutUint16(v[0:2], OFPAT_OUTPUT)
	binary.BigEndian.PutUint16(v[2:4], 16)

	var port uint32
	switch {
	case p.IsTable():
		port = OFPP_TABLE
	case p.IsFlood():
		port = OFPP_FLOOD
	case p.IsAll():
		port = OFPP_ALL
	case p.IsController():
		port = OFPP_CONTROLLER
	case p.IsNone():
		return nil, nil
	default:
		port = p.Value()
	}
	binary.BigEndian.PutUint32(v[4:8], port)
	binary.BigEndian.PutUint16(v[8:10], OFPCML_NO_BUFFER)
	// v[10:16] is padding

	return v, nil
}

func (r *Action) MarshalBinary() ([]byte, error) {
	result := make([]byte, 0)
	for _, p := range r.OutPort() {
		v, err := marshalOutput(p)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		result = append(result, v...)
	}

	return result, nil
}

// UnmarshalBinary parses an action list. Actions other than output are
// ignored, but their length still has to be consumed.
func (r *Action) UnmarshalBinary(data []byte) error {
	buf := data
	for len(buf) >= 4 {
		actType := binary.BigEndian.Uint16(buf[0:2])
		length := int(binary.BigEndian.Uint16(buf[2:4]))
		if length < 4 || len(buf) < length {
			return openflow.ErrInvalidPacketLength
		}

		if actType == OFPAT_OUTPUT && length >= 8 {
			number := binary.BigEndian.Uint32(buf[4:8])
			outPort := openflow.NewOutPort()
			switch number {
			case OFPP_TABLE:
				outPort.SetTable()
			case OFPP_FLOOD:
				outPort.SetFlood()
			case OFPP_ALL:
				outPort.SetAll()
			case OFPP_CONTROLLER:
				outPort.SetController()
			default:
				outPort.SetValue(number)
			}
			r.SetOutPort(outPort)
		}
		buf = buf[length:]
	}

	return nil
}
