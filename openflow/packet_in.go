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

package openflow

import (
	"encoding"
)

type PacketInReason uint8

const (
	NoMatch PacketInReason = iota
	ActionMatch
	InvalidTTL
)

type PacketIn interface {
	Header
	BufferID() uint32
	SetBufferID(id uint32)
	InPort() uint32
	// SetInPort scopes the packet-in match to the given ingress port.
	SetInPort(port uint32)
	Reason() PacketInReason
	SetReason(reason PacketInReason)
	TableID() uint8
	SetTableID(id uint8)
	Cookie() uint64
	SetCookie(cookie uint64)
	Data() []byte
	SetData(data []byte)
	encoding.BinaryMarshaler
}
