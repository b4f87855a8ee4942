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

// Abstract factory for a fixed wire version. The switch side of the
// protocol mostly builds replies, so the constructors that mirror a
// request take the request's transaction ID.
type Factory interface {
	NewAction() (Action, error)
	NewBarrierReply(xid uint32) (BarrierReply, error)
	NewDescReply(xid uint32) (DescReply, error)
	NewEchoReply(xid uint32) (EchoReply, error)
	NewEchoRequest(xid uint32) (EchoRequest, error)
	NewFeaturesReply(xid uint32) (FeaturesReply, error)
	NewFlowStatsReply(xid uint32) (FlowStatsReply, error)
	NewGetConfigReply(xid uint32) (GetConfigReply, error)
	NewGroupDescStatsReply(xid uint32) (GroupDescStatsReply, error)
	NewGroupStatsReply(xid uint32) (GroupStatsReply, error)
	NewHello(xid uint32) (Hello, error)
	NewInstruction() (Instruction, error)
	NewMatch() (Match, error)
	NewMeterFeaturesReply(xid uint32) (MeterFeaturesReply, error)
	NewPacketIn() (PacketIn, error)
	NewPort() (Port, error)
	NewPortDescReply(xid uint32) (PortDescReply, error)
	NewPortStatsReply(xid uint32) (PortStatsReply, error)
	NewPortStatus() (PortStatus, error)
	NewRoleReply(xid uint32) (RoleReply, error)
	NewTableStatsReply(xid uint32) (TableStatsReply, error)
	ProtocolVersion() uint8
}
