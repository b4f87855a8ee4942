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

package agent

import (
	"github.com/hobrien17/onos/openflow"
	"github.com/hobrien17/onos/virtual"

	"github.com/pkg/errors"
)

// Translation from the virtual network model to protocol reply
// structures. Every function here is a pure mapping; extending the
// translation scope means replacing the function for that entity type
// without touching the dispatch logic.

// portDesc maps the port number and its administrative state. A
// disabled port reports both the port and its link as down.
func portDesc(f openflow.Factory, p virtual.Port) (openflow.Port, error) {
	port, err := f.NewPort()
	if err != nil {
		return nil, err
	}
	port.SetNumber(uint32(p.Number))
	port.SetPortDown(!p.Enabled)
	port.SetLinkDown(!p.Enabled)

	return port, nil
}

func portStatsEntry(s virtual.PortStats) openflow.PortStatsEntry {
	return openflow.PortStatsEntry{
		PortNo:          uint32(s.Port),
		RxPackets:       s.PacketsReceived,
		TxPackets:       s.PacketsSent,
		RxBytes:         s.BytesReceived,
		TxBytes:         s.BytesSent,
		RxDropped:       s.PacketsRxDropped,
		TxDropped:       s.PacketsTxDropped,
		RxErrors:        s.PacketsRxErrors,
		TxErrors:        s.PacketsTxErrors,
		DurationSec:     s.DurationSec,
		DurationNanoSec: s.DurationNano,
	}
}

// flowStatsEntry maps counters and timeouts from the flow entry. The
// match and instruction fields carry a structurally valid placeholder
// (wildcard match, single output-to-controller action): decoding the
// real match and instructions from the internal flow representation is
// out of scope, not a property of real flows.
func flowStatsEntry(f openflow.Factory, e virtual.FlowEntry) (openflow.FlowStatsEntry, error) {
	match, err := f.NewMatch()
	if err != nil {
		return openflow.FlowStatsEntry{}, err
	}

	outPort := openflow.NewOutPort()
	outPort.SetController()
	action, err := f.NewAction()
	if err != nil {
		return openflow.FlowStatsEntry{}, err
	}
	action.SetOutPort(outPort)

	instruction, err := f.NewInstruction()
	if err != nil {
		return openflow.FlowStatsEntry{}, err
	}
	instruction.ApplyAction(action)

	return openflow.FlowStatsEntry{
		TableID:      e.TableID,
		DurationSec:  e.LifeSec,
		Priority:     e.Priority,
		IdleTimeout:  e.Timeout,
		HardTimeout:  e.Timeout,
		Cookie:       e.ID,
		PacketCount:  e.Packets,
		ByteCount:    e.Bytes,
		Match:        match,
		Instructions: []openflow.Instruction{instruction},
	}, nil
}

// tableStatsEntry sources the lookup and matched counters from the
// same looked-up figure: the model does not split them.
func tableStatsEntry(t virtual.TableStats) openflow.TableStatsEntry {
	return openflow.TableStatsEntry{
		TableID:      t.ID,
		ActiveCount:  t.ActiveEntries,
		LookupCount:  t.PacketsLookedUp,
		MatchedCount: t.PacketsLookedUp,
	}
}

// groupStatsEntry reports the group's internal identifier and the
// bucket counters in their existing order.
func groupStatsEntry(g virtual.Group) openflow.GroupStatsEntry {
	buckets := make([]openflow.BucketCounter, 0, len(g.Buckets))
	for _, b := range g.Buckets {
		buckets = append(buckets, openflow.BucketCounter{
			PacketCount: b.Packets,
			ByteCount:   b.Bytes,
		})
	}

	return openflow.GroupStatsEntry{
		GroupID:     g.ID,
		RefCount:    g.RefCount,
		PacketCount: g.Packets,
		ByteCount:   g.Bytes,
		DurationSec: g.LifeSec,
		BucketStats: buckets,
	}
}

func groupTypeOf(t virtual.GroupType) (openflow.GroupType, error) {
	switch t {
	case virtual.GroupAll:
		return openflow.GroupAll, nil
	case virtual.GroupSelect:
		return openflow.GroupSelect, nil
	case virtual.GroupIndirect:
		return openflow.GroupIndirect, nil
	case virtual.GroupFailover:
		return openflow.GroupFastFailover, nil
	default:
		return 0, errors.Errorf("unknown group type: %v", t)
	}
}

// groupDescEntry reports the group's externally given identifier and
// the bucket list in its original order.
func groupDescEntry(g virtual.Group) (openflow.GroupDescStatsEntry, error) {
	groupType, err := groupTypeOf(g.Type)
	if err != nil {
		return openflow.GroupDescStatsEntry{}, err
	}

	buckets := make([]openflow.Bucket, 0, len(g.Buckets))
	for _, b := range g.Buckets {
		buckets = append(buckets, openflow.Bucket{
			Weight:     b.Weight,
			WatchPort:  uint32(b.WatchPort),
			WatchGroup: b.WatchGroup,
		})
	}

	return openflow.GroupDescStatsEntry{
		Type:    groupType,
		GroupID: g.GivenID,
		Buckets: buckets,
	}, nil
}
