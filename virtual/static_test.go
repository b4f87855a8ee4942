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

package virtual

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func newTestService() *StaticService {
	return NewStaticService([]StaticNetwork{
		{
			ID: 1,
			Devices: []StaticDevice{
				{
					ID:   "of:0000000000000001",
					DPID: 1,
					Ports: []Port{
						{Number: 2, Enabled: true},
						{Number: 1, Enabled: true},
					},
					Links: map[PortNumber]ConnectPoint{
						2: {Device: "of:0000000000000002", Port: 1},
					},
				},
				{
					ID:   "of:0000000000000002",
					DPID: 2,
					Ports: []Port{
						{Number: 1, Enabled: true},
					},
					Links: map[PortNumber]ConnectPoint{
						1: {Device: "of:0000000000000001", Port: 2},
					},
				},
			},
		},
	})
}

func TestStaticPorts(t *testing.T) {
	service := newTestService()

	ports, err := service.Ports(1, "of:0000000000000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Sorted by port number regardless of provisioning order.
	expected := []Port{
		{Number: 1, Enabled: true},
		{Number: 2, Enabled: true},
	}
	if diff := cmp.Diff(expected, ports); diff != "" {
		t.Fatalf("unexpected ports (-want +got):\n%v", diff)
	}

	if _, err := service.Ports(1, "of:00000000000000FF"); errors.Cause(err) != ErrUnknownDevice {
		t.Fatalf("expected ErrUnknownDevice, got %v", err)
	}
	if _, err := service.Ports(9, "of:0000000000000001"); errors.Cause(err) != ErrUnknownDevice {
		t.Fatalf("expected ErrUnknownDevice, got %v", err)
	}
}

func TestStaticNeighbour(t *testing.T) {
	service := newTestService()

	samples := []struct {
		Device   DeviceID
		Port     PortNumber
		Expected ConnectPoint
		Found    bool
	}{
		{Device: "of:0000000000000001", Port: 2, Expected: ConnectPoint{Device: "of:0000000000000002", Port: 1}, Found: true},
		{Device: "of:0000000000000002", Port: 1, Expected: ConnectPoint{Device: "of:0000000000000001", Port: 2}, Found: true},
		// An edge port has no neighbour.
		{Device: "of:0000000000000001", Port: 1, Found: false},
	}

	for _, v := range samples {
		cp, ok, err := service.Neighbour(1, v.Device, v.Port)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok != v.Found {
			t.Fatalf("unexpected lookup result for %v/%v: %v", v.Device, v.Port, ok)
		}
		if ok && cp != v.Expected {
			t.Fatalf("unexpected neighbour: %v", cp)
		}
	}

	if _, _, err := service.Neighbour(1, "of:00000000000000FF", 1); err == nil {
		t.Fatalf("expected an error for an unknown device")
	}
}

func TestStaticEmptyTables(t *testing.T) {
	service := newTestService()

	flows, err := service.FlowEntries(1, "of:0000000000000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flows) != 0 {
		t.Fatalf("unexpected flows: %v", flows)
	}

	stats, err := service.PortStats(1, "of:0000000000000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 2 || stats[0].Port != 1 || stats[0].PacketsReceived != 0 {
		t.Fatalf("unexpected port stats: %v", stats)
	}
}

func TestStaticPortEvents(t *testing.T) {
	service := newTestService()

	if err := service.AddPort(1, "of:0000000000000002", Port{Number: 3, Enabled: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case e := <-service.Events():
		if e.Type != EventPortAdded || e.Device != "of:0000000000000002" || e.Port.Number != 3 {
			t.Fatalf("unexpected event: %+v", e)
		}
	default:
		t.Fatalf("no event after AddPort")
	}

	if err := service.RemovePort(1, "of:0000000000000002", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case e := <-service.Events():
		if e.Type != EventPortRemoved || e.Port.Number != 3 {
			t.Fatalf("unexpected event: %+v", e)
		}
	default:
		t.Fatalf("no event after RemovePort")
	}

	// Removing an unknown port neither fails nor notifies.
	if err := service.RemovePort(1, "of:0000000000000002", 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case e := <-service.Events():
		t.Fatalf("unexpected event: %+v", e)
	default:
	}

	if err := service.AddPort(9, "of:0000000000000002", Port{Number: 4}); err == nil {
		t.Fatalf("expected an error for an unknown network")
	}
}
