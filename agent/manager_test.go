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
	"time"

	"github.com/hobrien17/onos/virtual"
)

func TestManagerDirectory(t *testing.T) {
	manager := NewManager(new(fakeState), nil)

	sw, err := manager.AddSwitch(1, "of:0000000000000001", 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := manager.AddSwitch(1, "of:0000000000000001", 1, 0); err == nil {
		t.Fatalf("expected an error for a duplicated agent")
	}
	// The same device ID on another network is a distinct agent.
	if _, err := manager.AddSwitch(2, "of:0000000000000001", 2, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, ok := manager.OFSwitch(1, "of:0000000000000001")
	if !ok || found != sw {
		t.Fatalf("unexpected lookup result: %v, %v", found, ok)
	}
	if _, ok := manager.OFSwitch(1, "of:00000000000000FF"); ok {
		t.Fatalf("unexpected agent for an unknown device")
	}
	if len(manager.Switches()) != 2 {
		t.Fatalf("unexpected agent count: %v", len(manager.Switches()))
	}

	manager.RemoveSwitch(1, "of:0000000000000001")
	if _, ok := manager.OFSwitch(1, "of:0000000000000001"); ok {
		t.Fatalf("agent is still registered after removal")
	}
}

// countingState counts neighbour lookups that reach the underlying
// service, so cache hits are observable.
type countingState struct {
	fakeState
	lookups int
}

func (r *countingState) Neighbour(network virtual.NetworkID, device virtual.DeviceID, port virtual.PortNumber) (virtual.ConnectPoint, bool, error) {
	r.lookups++
	return r.fakeState.Neighbour(network, device, port)
}

func TestNeighbourCache(t *testing.T) {
	state := &countingState{
		fakeState: fakeState{
			neighbours: map[virtual.PortNumber]virtual.ConnectPoint{
				2: {Device: "of:0000000000000002", Port: 1},
			},
		},
	}
	cache := newNeighbourCache(state, time.Hour)

	for i := 0; i < 3; i++ {
		cp, ok, err := cache.Neighbour(1, "of:0000000000000001", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || cp.Port != 1 {
			t.Fatalf("unexpected neighbour: %v, %v", cp, ok)
		}
	}
	if state.lookups != 1 {
		t.Fatalf("unexpected lookup count: %v", state.lookups)
	}

	// Negative results are cached too.
	for i := 0; i < 2; i++ {
		if _, ok, err := cache.Neighbour(1, "of:0000000000000001", 9); ok || err != nil {
			t.Fatalf("unexpected result: %v, %v", ok, err)
		}
	}
	if state.lookups != 2 {
		t.Fatalf("unexpected lookup count: %v", state.lookups)
	}
}

func TestNeighbourCacheExpiration(t *testing.T) {
	state := &countingState{
		fakeState: fakeState{
			neighbours: map[virtual.PortNumber]virtual.ConnectPoint{
				2: {Device: "of:0000000000000002", Port: 1},
			},
		},
	}
	// A negative TTL expires every entry immediately.
	cache := newNeighbourCache(state, -time.Second)

	for i := 0; i < 3; i++ {
		if _, ok, err := cache.Neighbour(1, "of:0000000000000001", 2); !ok || err != nil {
			t.Fatalf("unexpected result: %v, %v", ok, err)
		}
	}
	if state.lookups != 3 {
		t.Fatalf("unexpected lookup count: %v", state.lookups)
	}
}
