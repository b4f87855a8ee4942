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

package openflow

import (
	"encoding"
	"fmt"
)

// StatsType is the statistics category carried by a generic
// stats (multipart) request or reply.
type StatsType uint16

const (
	StatsDesc StatsType = iota
	StatsFlow
	StatsAggregate
	StatsTable
	StatsPort
	StatsQueue
	StatsGroup
	StatsGroupDesc
	StatsGroupFeatures
	StatsMeter
	StatsMeterConfig
	StatsMeterFeatures
	StatsTableFeatures
	StatsPortDesc
	StatsExperimenter StatsType = 0xFFFF
)

func (r StatsType) String() string {
	switch r {
	case StatsDesc:
		return "DESC"
	case StatsFlow:
		return "FLOW"
	case StatsTable:
		return "TABLE"
	case StatsPort:
		return "PORT"
	case StatsGroup:
		return "GROUP"
	case StatsGroupDesc:
		return "GROUP_DESC"
	case StatsMeterFeatures:
		return "METER_FEATURES"
	case StatsPortDesc:
		return "PORT_DESC"
	default:
		return fmt.Sprintf("UNSUPPORTED(%v)", uint16(r))
	}
}

type StatsRequest interface {
	Header
	StatsType() StatsType
	encoding.BinaryUnmarshaler
}

// PortStatsRequest scopes a PORT stats request to a single port, or to
// every port when the port number is the version's "any" wildcard.
type PortStatsRequest interface {
	StatsRequest
	PortNo() uint32
}

type StatsReply interface {
	Header
	StatsType() StatsType
	encoding.BinaryMarshaler
}

type DescReply interface {
	StatsReply
	SetManufacturer(desc string)
	SetHardware(desc string)
	SetSoftware(desc string)
	SetSerial(serial string)
	SetDescription(desc string)
}

type PortDescReply interface {
	StatsReply
	Ports() []Port
	SetPorts(ports []Port)
}

// PortStatsEntry is one element of a PORT stats reply. The wire format
// uses the same units as the internal model, so values are copied as-is.
type PortStatsEntry struct {
	PortNo          uint32
	RxPackets       uint64
	TxPackets       uint64
	RxBytes         uint64
	TxBytes         uint64
	RxDropped       uint64
	TxDropped       uint64
	RxErrors        uint64
	TxErrors        uint64
	DurationSec     uint32
	DurationNanoSec uint32
}

type PortStatsReply interface {
	StatsReply
	Entries() []PortStatsEntry
	SetEntries(entries []PortStatsEntry)
}

type FlowStatsEntry struct {
	TableID      uint8
	DurationSec  uint32
	Priority     uint16
	IdleTimeout  uint16
	HardTimeout  uint16
	Cookie       uint64
	PacketCount  uint64
	ByteCount    uint64
	Match        Match
	Instructions []Instruction
}

type FlowStatsReply interface {
	StatsReply
	Entries() []FlowStatsEntry
	SetEntries(entries []FlowStatsEntry)
}

type TableStatsEntry struct {
	TableID      uint8
	ActiveCount  uint32
	LookupCount  uint64
	MatchedCount uint64
}

type TableStatsReply interface {
	StatsReply
	Entries() []TableStatsEntry
	SetEntries(entries []TableStatsEntry)
}

type GroupType uint8

const (
	GroupAll GroupType = iota
	GroupSelect
	GroupIndirect
	GroupFastFailover
)

type BucketCounter struct {
	PacketCount uint64
	ByteCount   uint64
}

type GroupStatsEntry struct {
	GroupID     uint32
	RefCount    uint32
	PacketCount uint64
	ByteCount   uint64
	DurationSec uint32
	BucketStats []BucketCounter
}

type GroupStatsReply interface {
	StatsReply
	Entries() []GroupStatsEntry
	SetEntries(entries []GroupStatsEntry)
}

type Bucket struct {
	Weight     uint16
	WatchPort  uint32
	WatchGroup uint32
}

type GroupDescStatsEntry struct {
	Type    GroupType
	GroupID uint32
	Buckets []Bucket
}

type GroupDescStatsReply interface {
	StatsReply
	Entries() []GroupDescStatsEntry
	SetEntries(entries []GroupDescStatsEntry)
}

// MeterFeaturesReply advertises metering capabilities. The emulated
// switch replies with an all-zero structure: presence only.
type MeterFeaturesReply interface {
	StatsReply
}
