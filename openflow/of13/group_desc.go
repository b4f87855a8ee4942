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

type GroupDescStatsReply struct {
	statsReply
	entries []openflow.GroupDescStatsEntry
}

func NewGroupDescStatsReply(xid uint32) openflow.GroupDescStatsReply {
	return &GroupDescStatsReply{
		statsReply: newStatsReply(xid, openflow.StatsGroupDesc),
	}
}

func (r *GroupDescStatsReply) Entries() []openflow.GroupDescStatsEntry {
	return r.entries
}

func (r *GroupDescStatsReply) SetEntries(entries []openflow.GroupDescStatsEntry) {
	r.entries = entries
}

func groupTypeValue(t openflow.GroupType) (uint8, error) {
	switch t {
	case openflow.GroupAll:
		return OFPGT_ALL, nil
	case openflow.GroupSelect:
		return OFPGT_SELECT, nil
	case openflow.GroupIndirect:
		return OFPGT_INDIRECT, nil
	case openflow.GroupFastFailover:
		return OFPGT_FF, nil
	default:
		return 0, openflow.ErrUnsupportedMessage
	}
}

// Each ofp_group_desc entry is 8 bytes plus 16 per bucket. Bucket
// action lists are not reported.
func (r *GroupDescStatsReply) MarshalBinary() ([]byte, error) {
	body := make([]byte, 0)
	for _, e := range r.entries {
		groupType, err := groupTypeValue(e.Type)
		if err != nil {
			return nil, err
		}

		v := make([]byte, 8+16*len(e.Buckets))
		binary.BigEndian.PutUint16(v[0:2], uint16(len(v)))
		v[2] = groupType
		// v[3] is padding
		binary.BigEndian.PutUint32(v[4:8], e.GroupID)
		for i, b := range e.Buckets {
			bucket := v[8+i*16:]
			binary.BigEndian.PutUint16(bucket[0:2], 16)
			binary.BigEndian.PutUint16(bucket[2:4], b.Weight)
			binary.BigEndian.PutUint32(bucket[4:8], b.WatchPort)
			binary.BigEndian.PutUint32(bucket[8:12], b.WatchGroup)
			// bucket[12:16] is padding
		}
		body = append(body, v...)
	}

	return r.marshalBody(body)
}
