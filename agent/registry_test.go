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
)

func TestRegistryAttach(t *testing.T) {
	registry := NewRegistry()
	conn := new(fakeConn)

	if err := registry.Attach(conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	role, err := registry.RoleOf(conn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != openflow.RoleEqual {
		t.Fatalf("unexpected default role: %v", role)
	}

	if err := registry.Attach(conn); err != ErrDuplicateConnection {
		t.Fatalf("expected ErrDuplicateConnection, got %v", err)
	}
}

func TestRegistryDetach(t *testing.T) {
	registry := NewRegistry()
	conn := new(fakeConn)

	if err := registry.Detach(conn); err != ErrUnknownConnection {
		t.Fatalf("expected ErrUnknownConnection, got %v", err)
	}

	if err := registry.Attach(conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := registry.Detach(conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := registry.RoleOf(conn); err != ErrUnknownConnection {
		t.Fatalf("expected ErrUnknownConnection, got %v", err)
	}

	// A detached connection can attach again with a fresh default role.
	if err := registry.Attach(conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistrySetRole(t *testing.T) {
	registry := NewRegistry()
	conn := new(fakeConn)

	if err := registry.SetRole(conn, openflow.RoleMaster); err != ErrUnknownConnection {
		t.Fatalf("expected ErrUnknownConnection, got %v", err)
	}

	if err := registry.Attach(conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	samples := []struct {
		Role openflow.ControllerRole
	}{
		{Role: openflow.RoleMaster},
		// Setting the current role again is a no-op that still succeeds.
		{Role: openflow.RoleMaster},
		{Role: openflow.RoleSlave},
		{Role: openflow.RoleEqual},
	}
	for _, v := range samples {
		if err := registry.SetRole(conn, v.Role); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		role, err := registry.RoleOf(conn)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if role != v.Role {
			t.Fatalf("unexpected role: expected %v, got %v", v.Role, role)
		}
	}
}

func TestRegistrySnapshot(t *testing.T) {
	registry := NewRegistry()

	if v := registry.AllConnections(); len(v) != 0 {
		t.Fatalf("unexpected connections: %v", v)
	}

	first := new(fakeConn)
	second := new(fakeConn)
	for _, conn := range []*fakeConn{first, second} {
		if err := registry.Attach(conn); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	snapshot := registry.AllConnections()
	if len(snapshot) != 2 {
		t.Fatalf("unexpected connection count: %v", len(snapshot))
	}
	seen := map[ControllerConnection]bool{}
	for _, c := range snapshot {
		seen[c] = true
	}
	if !seen[first] || !seen[second] {
		t.Fatalf("snapshot is missing a connection: %v", snapshot)
	}
}
