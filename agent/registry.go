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
	"sync"

	"github.com/hobrien17/onos/openflow"
	"github.com/hobrien17/onos/openflow/transceiver"

	"github.com/pkg/errors"
)

var (
	ErrDuplicateConnection = errors.New("duplicate controller connection")
	ErrUnknownConnection   = errors.New("unknown controller connection")
)

// ControllerConnection is the opaque handle of one controller channel.
// Registry keys compare by identity, so the handle must stay the same
// value for the lifetime of the connection.
type ControllerConnection = transceiver.Writer

// Registry owns the mapping from attached controller connection to its
// negotiated role. Mutations are atomic per connection; unrelated
// connections never block each other.
type Registry struct {
	roles sync.Map // ControllerConnection -> openflow.ControllerRole
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Attach registers the connection with the default EQUAL role.
func (r *Registry) Attach(c ControllerConnection) error {
	if _, loaded := r.roles.LoadOrStore(c, openflow.RoleEqual); loaded {
		return ErrDuplicateConnection
	}

	return nil
}

// Detach removes the connection's entry.
func (r *Registry) Detach(c ControllerConnection) error {
	if _, loaded := r.roles.LoadAndDelete(c); !loaded {
		return ErrUnknownConnection
	}

	return nil
}

// SetRole replaces the registered role. Setting the current role again
// is a no-op and still succeeds.
func (r *Registry) SetRole(c ControllerConnection, role openflow.ControllerRole) error {
	for {
		v, ok := r.roles.Load(c)
		if !ok {
			return ErrUnknownConnection
		}
		current := v.(openflow.ControllerRole)
		if current == role {
			return nil
		}
		if r.roles.CompareAndSwap(c, current, role) {
			return nil
		}
		// The role changed under us; retry against the new value.
	}
}

// RoleOf returns the connection's current role.
func (r *Registry) RoleOf(c ControllerConnection) (openflow.ControllerRole, error) {
	v, ok := r.roles.Load(c)
	if !ok {
		return 0, ErrUnknownConnection
	}

	return v.(openflow.ControllerRole), nil
}

// AllConnections returns a point-in-time snapshot of the attached
// connections. Iterating the snapshot never observes concurrent
// mutation.
func (r *Registry) AllConnections() []ControllerConnection {
	snapshot := make([]ControllerConnection, 0)
	r.roles.Range(func(key, _ interface{}) bool {
		snapshot = append(snapshot, key.(ControllerConnection))
		return true
	})

	return snapshot
}
