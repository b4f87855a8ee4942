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

package of13

import (
	"github.com/hobrien17/onos/openflow"
)

// Factory builds OpenFlow 1.3 messages. It is stateless, so a single
// instance can be shared by every session.
type Factory struct{}

func NewFactory() openflow.Factory {
	return &Factory{}
}

func (r *Factory) ProtocolVersion() uint8 {
	return openflow.OF13_VERSION
}

func (r *Factory) NewAction() (openflow.Action, error) {
	return NewAction(), nil
}

func (r *Factory) NewBarrierReply(xid uint32) (openflow.BarrierReply, error) {
	return NewBarrierReply(xid), nil
}

func (r *Factory) NewDescReply(xid uint32) (openflow.DescReply, error) {
	return NewDescReply(xid), nil
}

func (r *Factory) NewEchoReply(xid uint32) (openflow.EchoReply, error) {
	return NewEchoReply(xid), nil
}

func (r *Factory) NewEchoRequest(xid uint32) (openflow.EchoRequest, error) {
	return NewEchoRequest(xid), nil
}

func (r *Factory) NewFeaturesReply(xid uint32) (openflow.FeaturesReply, error) {
	return NewFeaturesReply(xid), nil
}

func (r *Factory) NewFlowStatsReply(xid uint32) (openflow.FlowStatsReply, error) {
	return NewFlowStatsReply(xid), nil
}

func (r *Factory) NewGetConfigReply(xid uint32) (openflow.GetConfigReply, error) {
	return NewGetConfigReply(xid), nil
}

func (r *Factory) NewGroupDescStatsReply(xid uint32) (openflow.GroupDescStatsReply, error) {
	return NewGroupDescStatsReply(xid), nil
}

func (r *Factory) NewGroupStatsReply(xid uint32) (openflow.GroupStatsReply, error) {
	return NewGroupStatsReply(xid), nil
}

func (r *Factory) NewHello(xid uint32) (openflow.Hello, error) {
	return NewHello(xid), nil
}

func (r *Factory) NewInstruction() (openflow.Instruction, error) {
	return NewInstruction(), nil
}

func (r *Factory) NewMatch() (openflow.Match, error) {
	return NewMatch(), nil
}

func (r *Factory) NewMeterFeaturesReply(xid uint32) (openflow.MeterFeaturesReply, error) {
	return NewMeterFeaturesReply(xid), nil
}

func (r *Factory) NewPacketIn() (openflow.PacketIn, error) {
	return NewPacketIn(0), nil
}

func (r *Factory) NewPort() (openflow.Port, error) {
	return NewPort(), nil
}

func (r *Factory) NewPortDescReply(xid uint32) (openflow.PortDescReply, error) {
	return NewPortDescReply(xid), nil
}

func (r *Factory) NewPortStatsReply(xid uint32) (openflow.PortStatsReply, error) {
	return NewPortStatsReply(xid), nil
}

func (r *Factory) NewPortStatus() (openflow.PortStatus, error) {
	return NewPortStatus(0), nil
}

func (r *Factory) NewRoleReply(xid uint32) (openflow.RoleReply, error) {
	return NewRoleReply(xid), nil
}

func (r *Factory) NewTableStatsReply(xid uint32) (openflow.TableStatsReply, error) {
	return NewTableStatsReply(xid), nil
}
