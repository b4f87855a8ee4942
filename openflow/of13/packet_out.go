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

type PacketOut struct {
	openflow.Message
	bufferID uint32
	inPort   uint32
	actions  []openflow.Action
	data     []byte
}

func NewPacketOut(xid uint32) openflow.PacketOut {
	return &PacketOut{
		Message:  openflow.NewMessage(openflow.OF13_VERSION, OFPT_PACKET_OUT, xid),
		bufferID: OFP_NO_BUFFER,
	}
}

func (r *PacketOut) BufferID() uint32 {
	return r.bufferID
}

func (r *PacketOut) InPort() uint32 {
	return r.inPort
}

func (r *PacketOut) Actions() []openflow.Action {
	return r.actions
}

func (r *PacketOut) Data() []byte {
	return r.data
}

func (r *PacketOut) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}

	payload := r.Payload()
	if payload == nil || len(payload) < 16 {
		return openflow.ErrInvalidPacketLength
	}
	r.bufferID = binary.BigEndian.Uint32(payload[0:4])
	r.inPort = binary.BigEndian.Uint32(payload[4:8])
	actionsLen := int(binary.BigEndian.Uint16(payload[8:10]))
	// payload[10:16] is padding
	if len(payload) < 16+actionsLen {
		return openflow.ErrInvalidPacketLength
	}

	r.actions = nil
	buf := payload[16 : 16+actionsLen]
	for len(buf) >= 4 {
		length := int(binary.BigEndian.Uint16(buf[2:4]))
		if length < 4 || len(buf) < length {
			return openflow.ErrInvalidPacketLength
		}
		action := NewAction()
		if err := action.UnmarshalBinary(buf[:length]); err != nil {
			return err
		}
		r.actions = append(r.actions, action)
		buf = buf[length:]
	}
	r.data = payload[16+actionsLen:]

	return nil
}
