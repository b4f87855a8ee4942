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
	"bytes"
	"encoding/binary"
	"net"

	"github.com/hobrien17/onos/openflow"
)

// Port is an ofp_port structure, 64 bytes on the wire.
type Port struct {
	number     uint32
	mac        net.HardwareAddr
	name       string
	config     uint32
	state      uint32
	curr       uint32
	advertised uint32
	supported  uint32
	peer       uint32
	currSpeed  uint32
	maxSpeed   uint32
}

func NewPort() openflow.Port {
	return &Port{
		mac: make(net.HardwareAddr, 6),
	}
}

func (r *Port) Number() uint32 {
	return r.number
}

func (r *Port) SetNumber(number uint32) {
	r.number = number
}

func (r *Port) MAC() net.HardwareAddr {
	v := make(net.HardwareAddr, len(r.mac))
	copy(v, r.mac)

	return v
}

func (r *Port) SetMAC(mac net.HardwareAddr) {
	if mac == nil || len(mac) != 6 {
		panic("invalid MAC address")
	}
	r.mac = mac
}

func (r *Port) Name() string {
	return r.name
}

func (r *Port) SetName(name string) {
	r.name = name
}

func (r *Port) IsPortDown() bool {
	return r.config&OFPPC_PORT_DOWN != 0
}

func (r *Port) IsLinkDown() bool {
	return r.state&OFPPS_LINK_DOWN != 0
}

func (r *Port) SetPortDown(down bool) {
	if down {
		r.config |= OFPPC_PORT_DOWN
	} else {
		r.config &^= uint32(OFPPC_PORT_DOWN)
	}
}

func (r *Port) SetLinkDown(down bool) {
	if down {
		r.state |= OFPPS_LINK_DOWN
	} else {
		r.state &^= uint32(OFPPS_LINK_DOWN)
	}
}

func (r *Port) MarshalBinary() ([]byte, error) {
	v := make([]byte, 64)
	binary.BigEndian.PutUint32(v[0:4], r.number)
	// v[4:8] is padding
	copy(v[8:14], r.mac)
	// v[14:16] is padding
	name := []byte(r.name)
	if len(name) > 15 {
		name = name[:15]
	}
	copy(v[16:32], name)
	binary.BigEndian.PutUint32(v[32:36], r.config)
	binary.BigEndian.PutUint32(v[36:40], r.state)
	binary.BigEndian.PutUint32(v[40:44], r.curr)
	binary.BigEndian.PutUint32(v[44:48], r.advertised)
	binary.BigEndian.PutUint32(v[48:52], r.supported)
	binary.BigEndian.PutUint32(v[52:56], r.peer)
	binary.BigEndian.PutUint32(v[56:60], r.currSpeed)
	binary.BigEndian.PutUint32(v[60:64], r.maxSpeed)

	return v, nil
}

func (r *Port) UnmarshalBinary(data []byte) error {
	if len(data) < 64 {
		return openflow.ErrInvalidPacketLength
	}

	r.number = binary.BigEndian.Uint32(data[0:4])
	r.mac = make(net.HardwareAddr, 6)
	copy(r.mac, data[8:14])
	r.name = string(bytes.TrimRight(data[16:32], "\x00"))
	r.config = binary.BigEndian.Uint32(data[32:36])
	r.state = binary.BigEndian.Uint32(data[36:40])
	r.curr = binary.BigEndian.Uint32(data[40:44])
	r.advertised = binary.BigEndian.Uint32(data[44:48])
	r.supported = binary.BigEndian.Uint32(data[48:52])
	r.peer = binary.BigEndian.Uint32(data[52:56])
	r.currSpeed = binary.BigEndian.Uint32(data[56:60])
	r.maxSpeed = binary.BigEndian.Uint32(data[60:64])

	return nil
}
