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

type PortStatsReply struct {
	statsReply
	entries []openflow.PortStatsEntry
}

func NewPortStatsReply(xid uint32) openflow.PortStatsReply {
	return &PortStatsReply{
		statsReply: newStatsReply(xid, openflow.StatsPort),
	}
}

func (r *PortStatsReply) Entries() []openflow.PortStatsEntry {
	return r.entries
}

func (r *PortStatsReply) SetEntries(entries []openflow.PortStatsEntry) {
	r.entries = entries
}

// Each ofp_port_stats entry is 112 bytes. The frame error, overrun,
// CRC error and collision counters are not tracked and stay zero.
func (r *PortStatsReply) MarshalBinary() ([]byte, error) {
	body := make([]byte, 112*len(r.entries))
	for i, e := range r.entries {
		v := body[i*112:]
		binary.BigEndian.PutUint32(v[0:4], e.PortNo)
		// v[4:8] is padding
		binary.BigEndian.PutUint64(v[8:16], e.RxPackets)
		binary.BigEndian.PutUint64(v[16:24], e.TxPackets)
		binary.BigEndian.PutUint64(v[24:32], e.RxBytes)
		binary.BigEndian.PutUint64(v[32:40], e.TxBytes)
		binary.BigEndian.PutUint64(v[40:48], e.RxDropped)
		binary.BigEndian.PutUint64(v[48:56], e.TxDropped)
		binary.BigEndian.PutUint64(v[56:64], e.RxErrors)
		binary.BigEndian.PutUint64(v[64:72], e.TxErrors)
		binary.BigEndian.PutUint32(v[104:108], e.DurationSec)
		binary.BigEndian.PutUint32(v[108:112], e.DurationNanoSec)
	}

	return r.marshalBody(body)
}
