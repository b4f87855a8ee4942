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

type GroupStatsReply struct {
	statsReply
	entries []openflow.GroupStatsEntry
}

func NewGroupStatsReply(xid uint32) openflow.GroupStatsReply {
	return &GroupStatsReply{
		statsReply: newStatsReply(xid, openflow.StatsGroup),
	}
}

func (r *GroupStatsReply) Entries() []openflow.GroupStatsEntry {
	return r.entries
}

func (r *GroupStatsReply) SetEntries(entries []openflow.GroupStatsEntry) {
	r.entries = entries
}

// Each ofp_group_stats entry is 40 bytes plus 16 per bucket counter.
func (r *GroupStatsReply) MarshalBinary() ([]byte, error) {
	body := make([]byte, 0)
	for _, e := range r.entries {
		v := make([]byte, 40+16*len(e.BucketStats))
		binary.BigEndian.PutUint16(v[0:2], uint16(len(v)))
		// v[2:4] is padding
		binary.BigEndian.PutUint32(v[4:8], e.GroupID)
		binary.BigEndian.PutUint32(v[8:12], e.RefCount)
		// v[12:16] is padding
		binary.BigEndian.PutUint64(v[16:24], e.PacketCount)
		binary.BigEndian.PutUint64(v[24:32], e.ByteCount)
		binary.BigEndian.PutUint32(v[32:36], e.DurationSec)
		// v[36:40] is duration_nsec
		for i, c := range e.BucketStats {
			b := v[40+i*16:]
			binary.BigEndian.PutUint64(b[0:8], c.PacketCount)
			binary.BigEndian.PutUint64(b[8:16], c.ByteCount)
		}
		body = append(body, v...)
	}

	return r.marshalBody(body)
}
