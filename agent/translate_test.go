/*
 * OFAgent - An OpenFlow Switch Agent
 *
 * Copyright (C) 2017 Virtual SDN Project.
 *
 * This program is free software; you can redistribute it and/or
 * modify it under the terms of the GNU General Public License
 * as published by the Free Software Foundation; either version 2
 * of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.
 */

package agent

import (
	"testing"

	"github.com/hobrien17/onos/openflow"
	"github.com/hobrien17/onos/virtual"

	"github.com/google/go-cmp/cmp"
)

func TestGroupTypeMapping(t *testing.T) {
	samples := []struct {
		In            virtual.GroupType
		Expected      openflow.GroupType
		ErrorExpected bool
	}{
		{In: virtual.GroupAll, Expected: openflow.GroupAll},
		{In: virtual.GroupSelect, Expected: openflow.GroupSelect},
		{In: virtual.GroupIndirect, Expected: openflow.GroupIndirect},
		{In: virtual.GroupFailover, Expected: openflow.GroupFastFailover},
		{In: virtual.GroupType("BROADCAST"), ErrorExpected: true},
	}

	for _, v := range samples {
		out, err := groupTypeOf(v.In)
		if v.ErrorExpected {
			if err == nil {
				t.Fatalf("expected an error for %v", v.In)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != v.Expected {
			t.Fatalf("unexpected group type: expected %v, got %v", v.Expected, out)
		}
	}
}

func TestGroupDescEntryPreservesBucketOrder(t *testing.T) {
	group := virtual.Group{
		ID:      3,
		GivenID: 0x20,
		Type:    virtual.GroupFailover,
		Buckets: []virtual.GroupBucket{
			{Weight: 1, WatchPort: 4, WatchGroup: 9},
			{Weight: 2, WatchPort: 5, WatchGroup: 10},
		},
	}

	entry, err := groupDescEntry(group)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The description reports the externally given identifier, not the
	// internal one.
	if entry.GroupID != 0x20 {
		t.Fatalf("unexpected group ID: %v", entry.GroupID)
	}
	expected := []openflow.Bucket{
		{Weight: 1, WatchPort: 4, WatchGroup: 9},
		{Weight: 2, WatchPort: 5, WatchGroup: 10},
	}
	if diff := cmp.Diff(expected, entry.Buckets); diff != "" {
		t.Fatalf("unexpected buckets (-want +got):\n%v", diff)
	}
}

func TestGroupStatsEntry(t *testing.T) {
	group := virtual.Group{
		ID:       3,
		GivenID:  0x20,
		Type:     virtual.GroupAll,
		LifeSec:  44,
		Packets:  100,
		Bytes:    6400,
		RefCount: 2,
		Buckets: []virtual.GroupBucket{
			{Packets: 60, Bytes: 3840},
			{Packets: 40, Bytes: 2560},
		},
	}

	entry := groupStatsEntry(group)
	// Stats report the internal identifier.
	if entry.GroupID != 3 {
		t.Fatalf("unexpected group ID: %v", entry.GroupID)
	}
	if entry.DurationSec != 44 || entry.RefCount != 2 {
		t.Fatalf("unexpected counters: %+v", entry)
	}
	expected := []openflow.BucketCounter{
		{PacketCount: 60, ByteCount: 3840},
		{PacketCount: 40, ByteCount: 2560},
	}
	if diff := cmp.Diff(expected, entry.BucketStats); diff != "" {
		t.Fatalf("unexpected bucket counters (-want +got):\n%v", diff)
	}
}

func TestTableStatsEntry(t *testing.T) {
	entry := tableStatsEntry(virtual.TableStats{ID: 1, ActiveEntries: 12, PacketsLookedUp: 900})
	if entry.TableID != 1 || entry.ActiveCount != 12 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	// The model does not split lookups from matches.
	if entry.LookupCount != 900 || entry.MatchedCount != 900 {
		t.Fatalf("unexpected counters: %+v", entry)
	}
}

func TestFlowStatsEntry(t *testing.T) {
	flow := virtual.FlowEntry{
		ID:       0xABCD,
		TableID:  2,
		Priority: 40000,
		Timeout:  30,
		LifeSec:  77,
		Packets:  5,
		Bytes:    320,
	}

	entry, err := flowStatsEntry(factory, flow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Cookie != 0xABCD {
		t.Fatalf("unexpected cookie: %#x", entry.Cookie)
	}
	// The single model timeout serves as both protocol timeouts.
	if entry.IdleTimeout != 30 || entry.HardTimeout != 30 {
		t.Fatalf("unexpected timeouts: %+v", entry)
	}
	if entry.DurationSec != 77 || entry.Priority != 40000 || entry.TableID != 2 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Match == nil || len(entry.Instructions) != 1 {
		t.Fatalf("placeholder match or instructions are missing: %+v", entry)
	}
}

func TestPortDesc(t *testing.T) {
	port, err := portDesc(factory, virtual.Port{Number: 3, Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if port.Number() != 3 {
		t.Fatalf("unexpected port number: %v", port.Number())
	}
	if port.IsPortDown() || port.IsLinkDown() {
		t.Fatalf("enabled port reports down state")
	}

	port, err = portDesc(factory, virtual.Port{Number: 4, Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !port.IsPortDown() || !port.IsLinkDown() {
		t.Fatalf("disabled port reports up state")
	}
}
