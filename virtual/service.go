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

package virtual

type EventType int

const (
	EventPortAdded EventType = iota
	EventPortRemoved
	EventPortUp
	EventPortDown
	EventFlowRemoved
	EventPacketIn
)

func (r EventType) String() string {
	switch r {
	case EventPortAdded:
		return "PORT_ADDED"
	case EventPortRemoved:
		return "PORT_REMOVED"
	case EventPortUp:
		return "PORT_UP"
	case EventPortDown:
		return "PORT_DOWN"
	case EventFlowRemoved:
		return "FLOW_REMOVED"
	case EventPacketIn:
		return "PACKET_IN"
	default:
		return "UNKNOWN"
	}
}

// Event is a change notification from the virtual network. Port is
// only meaningful for the port event types.
type Event struct {
	Type    EventType
	Network NetworkID
	Device  DeviceID
	Port    Port
}

// QueryService exposes read-only queries against the virtual network
// state, scoped by network and device.
type QueryService interface {
	Ports(network NetworkID, device DeviceID) ([]Port, error)
	PortStats(network NetworkID, device DeviceID) ([]PortStats, error)
	FlowEntries(network NetworkID, device DeviceID) ([]FlowEntry, error)
	TableStats(network NetworkID, device DeviceID) ([]TableStats, error)
	Groups(network NetworkID, device DeviceID) ([]Group, error)
	// Neighbour resolves the far end of the link attached to the given
	// port. ok is false when the port has no neighbour.
	Neighbour(network NetworkID, device DeviceID, port PortNumber) (cp ConnectPoint, ok bool, err error)
}
