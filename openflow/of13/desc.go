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
	"github.com/hobrien17/onos/openflow"
)

// DescReply is an ofp_desc body, 1056 bytes of fixed-size strings.
type DescReply struct {
	statsReply
	manufacturer string
	hardware     string
	software     string
	serial       string
	description  string
}

func NewDescReply(xid uint32) openflow.DescReply {
	return &DescReply{
		statsReply: newStatsReply(xid, openflow.StatsDesc),
	}
}

func (r *DescReply) SetManufacturer(desc string) {
	r.manufacturer = desc
}

func (r *DescReply) SetHardware(desc string) {
	r.hardware = desc
}

func (r *DescReply) SetSoftware(desc string) {
	r.software = desc
}

func (r *DescReply) SetSerial(serial string) {
	r.serial = serial
}

func (r *DescReply) SetDescription(desc string) {
	r.description = desc
}

func putString(v []byte, s string) {
	// leave room for a NUL terminator
	if len(s) >= len(v) {
		s = s[:len(v)-1]
	}
	copy(v, s)
}

func (r *DescReply) MarshalBinary() ([]byte, error) {
	v := make([]byte, 1056)
	putString(v[0:256], r.manufacturer)
	putString(v[256:512], r.hardware)
	putString(v[512:768], r.software)
	putString(v[768:800], r.serial)
	putString(v[800:1056], r.description)

	return r.marshalBody(v)
}
