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

type PacketIn struct {
	openflow.Message
	bufferID  uint32
	inPort    uint32
	hasInPort bool
	reason    openflow.PacketInReason
	tableID   uint8
	cookie    uint64
	data      []byte
}

func NewPacketIn(xid uint32) openflow.PacketIn {
	return &PacketIn{
		Message:  openflow.NewMessage(openflow.OF13_VERSION, OFPT_PACKET_IN, xid),
		bufferID: OFP_NO_BUFFER,
	}
}

func (r *PacketIn) BufferID() uint32 {
	return r.bufferID
}

func (r *PacketIn) SetBufferID(id uint32) {
	r.bufferID = id
}

func (r *PacketIn) InPort() uint32 {
	return r.inPort
}

func (r *PacketIn) SetInPort(port uint32) {
	r.inPort = port
	r.hasInPort = true
}

func (r *PacketIn) Reason() openflow.PacketInReason {
	return r.reason
}

func (r *PacketIn) SetReason(reason openflow.PacketInReason) {
	r.reason = reason
}

func (r *PacketIn) TableID() uint8 {
	return r.tableID
}

func (r *PacketIn) SetTableID(id uint8) {
	r.tableID = id
}

func (r *PacketIn) Cookie() uint64 {
	return r.cookie
}

func (r *PacketIn) SetCookie(cookie uint64) {
	r.cookie = cookie
}

func (r *PacketIn) Data() []byte {
	return r.data
}

func (r *PacketIn) SetData(data []byte) {
	r.data = data
}

func (r *PacketIn) MarshalBinary() ([]byte, error) {
	match := NewMatch()
	if r.hasInPort {
		match.SetInPort(r.inPort)
	}
	m, err := match.MarshalBinary()
	if err != nil {
		return nil, err
	}

	v := make([]byte, 16+len(m)+2+len(r.data))
	binary.BigEndian.PutUint32(v[0:4], r.bufferID)
	binary.BigEndian.PutUint16(v[4:6], uint16(len(r.data)))
	switch r.reason {
	case openflow.NoMatch:
		v[6] = OFPR_NO_MATCH
	case openflow.ActionMatch:
		v[6] = OFPR_ACTION
	case openflow.InvalidTTL:
		v[6] = OFPR_INVALID_TTL
	default:
		return nil, openflow.ErrUnsupportedMessage
	}
	v[7] = r.tableID
	binary.BigEndian.PutUint64(v[8:16], r.cookie)
	copy(v[16:], m)
	// two zero bytes between the match and the frame payload
	copy(v[16+len(m)+2:], r.data)
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}
