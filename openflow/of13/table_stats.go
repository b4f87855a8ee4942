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

type TableStatsReply struct {
	statsReply
	entries []openflow.TableStatsEntry
}

func NewTableStatsReply(xid uint32) openflow.TableStatsReply {
	return &TableStatsReply{
		statsReply: newStatsReply(xid, openflow.StatsTable),
	}
}

func (r *TableStatsReply) Entries() []openflow.TableStatsEntry {
	return r.entries
}

func (r *TableStatsReply) SetEntries(entries []openflow.TableStatsEntry) {
	r.entries = entries
}

// Each ofp_table_stats entry is 24 bytes.
func (r *TableStatsReply) MarshalBinary() ([]byte, error) {
	body := make([]byte, 24*len(r.entries))
	for i, e := range r.entries {
		v := body[i*24:]
		v[0] = e.TableID
		// v[1:4] is padding
		binary.BigEndian.PutUint32(v[4:8], e.ActiveCount)
		binary.BigEndian.PutUint64(v[8:16], e.LookupCount)
		binary.BigEndian.PutUint64(v[16:24], e.MatchedCount)
	}

	return r.marshalBody(body)
}
