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

// Package virtual models the read-only state of a virtual network: the
// devices, ports, flow tables and groups that the switch agents present
// to their controllers.
package virtual

import (
	"fmt"
)

// NetworkID identifies one virtual network.
type NetworkID uint64

// DeviceID identifies a virtual device within a network.
type DeviceID string

// PortNumber is a port number on a virtual device.
type PortNumber uint32

// ConnectPoint is a (device, port) pair identifying an attachment
// point in the topology.
type ConnectPoint struct {
	Device DeviceID
	Port   PortNumber
}

func (r ConnectPoint) String() string {
	return fmt.Sprintf("%v/%v", r.Device, r.Port)
}

type Port struct {
	Number  PortNumber
	Enabled bool
}

type PortStats struct {
	Port             PortNumber
	PacketsReceived  uint64
	PacketsSent      uint64
	BytesReceived    uint64
	BytesSent        uint64
	PacketsRxDropped uint64
	PacketsTxDropped uint64
	PacketsRxErrors  uint64
	PacketsTxErrors  uint64
	DurationSec      uint32
	DurationNano     uint32
}

// FlowEntry is an installed flow rule. A single timeout value serves
// as both the idle and the hard timeout of the rule.
type FlowEntry struct {
	ID       uint64
	TableID  uint8
	Priority uint16
	Timeout  uint16
	LifeSec  uint32
	Packets  uint64
	Bytes    uint64
}

// TableStats carries per-table counters. The model does not
// distinguish looked-up from matched packets.
type TableStats struct {
	ID              uint8
	ActiveEntries   uint32
	PacketsLookedUp uint64
}

// GroupType names follow the protocol group types.
type GroupType string

const (
	GroupAll      GroupType = "ALL"
	GroupSelect   GroupType = "SELECT"
	GroupIndirect GroupType = "INDIRECT"
	GroupFailover GroupType = "FAILOVER"
)

type GroupBucket struct {
	Weight     uint16
	WatchPort  PortNumber
	WatchGroup uint32
	Packets    uint64
	Bytes      uint64
}

// Group is a group table entry. ID is the internal identifier reported
// in group statistics; GivenID is the identifier the group was created
// with, reported in group descriptions.
type Group struct {
	ID       uint32
	GivenID  uint32
	Type     GroupType
	LifeSec  uint32
	Packets  uint64
	Bytes    uint64
	RefCount uint32
	Buckets  []GroupBucket
}
