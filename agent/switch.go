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

// Package agent emulates OpenFlow 1.3 switches on top of a virtual
// network model. One Switch terminates any number of controller
// connections, keeps their negotiated roles, and answers the protocol
// on behalf of a device it never actually forwards packets for.
package agent

import (
	"encoding"
	"net"
	"sync/atomic"

	"github.com/hobrien17/onos/openflow"
	"github.com/hobrien17/onos/openflow/of13"
	"github.com/hobrien17/onos/protocol"
	"github.com/hobrien17/onos/virtual"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var (
	logger = logging.MustGetLogger("agent")

	// All agents speak the same fixed wire version.
	factory = of13.NewFactory()
)

const (
	// Deployment constants of the emulated switch, not negotiated.
	numBuffers uint32 = 1024
	numTables  uint8  = 3

	defaultMissSendLength uint16 = 0xFFFF
)

// Directory resolves the switch agent serving a given device, so one
// agent can invoke another during LLDP relay.
type Directory interface {
	OFSwitch(network virtual.NetworkID, device virtual.DeviceID) (sw *Switch, ok bool)
}

type SwitchConfig struct {
	DPID         uint64
	Capabilities uint32
	Network      virtual.NetworkID
	Device       virtual.DeviceID
	State        virtual.QueryService
	Directory    Directory
}

// Switch is one emulated switch. Its identity is immutable; the only
// mutable state it owns directly is the agent-wide miss-send length
// and the self-initiated transaction ID counter.
type Switch struct {
	dpid         uint64
	capabilities uint32
	network      virtual.NetworkID
	device       virtual.DeviceID

	state     virtual.QueryService
	directory Directory
	registry  *Registry

	missSendLength uint32
	// Self-initiated transaction IDs decrement from -1 and are never
	// reset. They wrap per the wire integer width, which keeps them
	// distinguishable from controller-chosen IDs.
	xid int32
}

func NewSwitch(c SwitchConfig) *Switch {
	if c.State == nil {
		panic("State is nil")
	}
	if c.Directory == nil {
		panic("Directory is nil")
	}

	return &Switch{
		dpid:           c.DPID,
		capabilities:   c.Capabilities,
		network:        c.Network,
		device:         c.Device,
		state:          c.State,
		directory:      c.Directory,
		registry:       NewRegistry(),
		missSendLength: uint32(defaultMissSendLength),
	}
}

func (r *Switch) DPID() uint64 {
	return r.dpid
}

func (r *Switch) Capabilities() uint32 {
	return r.capabilities
}

func (r *Switch) NetworkID() virtual.NetworkID {
	return r.network
}

func (r *Switch) DeviceID() virtual.DeviceID {
	return r.device
}

func (r *Switch) nextTransactionID() uint32 {
	return uint32(atomic.AddInt32(&r.xid, -1))
}

// Attach registers a new controller connection with the default EQUAL
// role.
func (r *Switch) Attach(c ControllerConnection) error {
	return r.registry.Attach(c)
}

// Detach removes a controller connection. No registry entry outlives
// its connection.
func (r *Switch) Detach(c ControllerConnection) error {
	return r.registry.Detach(c)
}

// ConnectionStatus describes one attached controller connection for
// the operational API.
type ConnectionStatus struct {
	Remote string `json:"remote"`
	Role   string `json:"role"`
}

func (r *Switch) Connections() []ConnectionStatus {
	type remoteAddr interface {
		RemoteAddr() net.Addr
	}

	conns := r.registry.AllConnections()
	status := make([]ConnectionStatus, 0, len(conns))
	for _, c := range conns {
		role, err := r.registry.RoleOf(c)
		if err != nil {
			// Detached between the snapshot and the lookup.
			continue
		}
		s := ConnectionStatus{Role: role.String()}
		if v, ok := c.(remoteAddr); ok {
			s.Remote = v.RemoteAddr().String()
		}
		status = append(status, s)
	}

	return status
}

// SendHello greets a newly attached controller using the next
// self-initiated transaction ID.
func (r *Switch) SendHello(c ControllerConnection) error {
	hello, err := factory.NewHello(r.nextTransactionID())
	if err != nil {
		return err
	}

	return errors.Wrap(c.Write(hello), "failed to send HELLO message")
}

// processEchoRequest mirrors the transaction ID and the opaque payload
// back, byte for byte.
func (r *Switch) processEchoRequest(c ControllerConnection, v openflow.EchoRequest) error {
	reply, err := factory.NewEchoReply(v.TransactionID())
	if err != nil {
		return err
	}
	reply.SetData(v.Data())

	return errors.Wrap(c.Write(reply), "failed to send ECHO_REPLY message")
}

func (r *Switch) processFeaturesRequest(c ControllerConnection, v openflow.FeaturesRequest) error {
	reply, err := factory.NewFeaturesReply(v.TransactionID())
	if err != nil {
		return err
	}
	reply.SetDPID(r.dpid)
	reply.SetNumBuffers(numBuffers)
	reply.SetNumTables(numTables)
	reply.SetCapabilities(r.capabilities)

	return errors.Wrap(c.Write(reply), "failed to send FEATURES_REPLY message")
}

func (r *Switch) processGetConfigRequest(c ControllerConnection, v openflow.GetConfigRequest) error {
	reply, err := factory.NewGetConfigReply(v.TransactionID())
	if err != nil {
		return err
	}
	reply.SetFlags(openflow.FragNormal)
	reply.SetMissSendLength(uint16(atomic.LoadUint32(&r.missSendLength)))

	return errors.Wrap(c.Write(reply), "failed to send GET_CONFIG_REPLY message")
}

// processSetConfig never sends a reply: the message is fire-and-forget
// per the wire specification.
func (r *Switch) processSetConfig(v openflow.SetConfig) error {
	length := uint32(v.MissSendLength())
	if atomic.LoadUint32(&r.missSendLength) != length {
		atomic.StoreUint32(&r.missSendLength, length)
		logger.Debugf("miss-send length set to %v: dpid=%v", length, r.dpid)
	}

	return nil
}

// processBarrierRequest replies immediately. In-flight request
// tracking is not performed, so the reply does not guarantee that
// prior state-mutating requests have completed.
func (r *Switch) processBarrierRequest(c ControllerConnection, v openflow.BarrierRequest) error {
	reply, err := factory.NewBarrierReply(v.TransactionID())
	if err != nil {
		return err
	}

	return errors.Wrap(c.Write(reply), "failed to send BARRIER_REPLY message")
}

// processRoleRequest updates the registry when the requested role
// differs from the current one and always replies with the resulting
// role. A request from an unattached connection is a transport bug and
// its registry error propagates to the caller.
func (r *Switch) processRoleRequest(c ControllerConnection, v openflow.RoleRequest) error {
	current, err := r.registry.RoleOf(c)
	if err != nil {
		return err
	}

	requested := v.Role()
	if requested != openflow.RoleNoChange && requested != current {
		if err := r.registry.SetRole(c, requested); err != nil {
			return err
		}
		current = requested
	}

	reply, err := factory.NewRoleReply(v.TransactionID())
	if err != nil {
		return err
	}
	reply.SetRole(current)
	reply.SetGenerationID(v.GenerationID())

	return errors.Wrap(c.Write(reply), "failed to send ROLE_REPLY message")
}

// processStatsRequest builds the reply for the requested subtype and
// sends it to the requesting connection only. Unsupported subtypes are
// logged and dropped: statistics queries are informational and must
// not tear the session down.
func (r *Switch) processStatsRequest(c ControllerConnection, v openflow.StatsRequest) error {
	var reply encoding.BinaryMarshaler
	var err error

	switch v.StatsType() {
	case openflow.StatsPortDesc:
		reply, err = r.buildPortDescReply(v.TransactionID())
	case openflow.StatsPort:
		reply, err = r.buildPortStatsReply(v)
	case openflow.StatsFlow:
		reply, err = r.buildFlowStatsReply(v.TransactionID())
	case openflow.StatsTable:
		reply, err = r.buildTableStatsReply(v.TransactionID())
	case openflow.StatsGroup:
		reply, err = r.buildGroupStatsReply(v.TransactionID())
	case openflow.StatsGroupDesc:
		reply, err = r.buildGroupDescStatsReply(v.TransactionID())
	case openflow.StatsMeterFeatures:
		reply, err = factory.NewMeterFeaturesReply(v.TransactionID())
	case openflow.StatsDesc:
		reply, err = factory.NewDescReply(v.TransactionID())
	default:
		logger.Debugf("unsupported stats request type %v: dpid=%v", v.StatsType(), r.dpid)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to build %v stats reply", v.StatsType())
	}

	return errors.Wrap(c.Write(reply), "failed to send MULTIPART_REPLY message")
}

func (r *Switch) buildPortDescReply(xid uint32) (openflow.PortDescReply, error) {
	ports, err := r.state.Ports(r.network, r.device)
	if err != nil {
		return nil, err
	}

	descs := make([]openflow.Port, 0, len(ports))
	for _, p := range ports {
		desc, err := portDesc(factory, p)
		if err != nil {
			return nil, err
		}
		descs = append(descs, desc)
	}

	reply, err := factory.NewPortDescReply(xid)
	if err != nil {
		return nil, err
	}
	reply.SetPorts(descs)

	return reply, nil
}

// buildPortStatsReply populates entries for the wildcard request only.
// A request scoped to a concrete port yields an empty list, which is a
// known gap rather than an implemented behavior.
func (r *Switch) buildPortStatsReply(v openflow.StatsRequest) (openflow.PortStatsReply, error) {
	reply, err := factory.NewPortStatsReply(v.TransactionID())
	if err != nil {
		return nil, err
	}

	req, ok := v.(openflow.PortStatsRequest)
	if ok && req.PortNo() != of13.OFPP_ANY {
		logger.Debugf("port stats scoped to port %v are not populated: dpid=%v", req.PortNo(), r.dpid)
		return reply, nil
	}

	stats, err := r.state.PortStats(r.network, r.device)
	if err != nil {
		return nil, err
	}

	entries := make([]openflow.PortStatsEntry, 0, len(stats))
	for _, s := range stats {
		entries = append(entries, portStatsEntry(s))
	}
	reply.SetEntries(entries)

	return reply, nil
}

func (r *Switch) buildFlowStatsReply(xid uint32) (openflow.FlowStatsReply, error) {
	flows, err := r.state.FlowEntries(r.network, r.device)
	if err != nil {
		return nil, err
	}

	entries := make([]openflow.FlowStatsEntry, 0, len(flows))
	for _, f := range flows {
		entry, err := flowStatsEntry(factory, f)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	reply, err := factory.NewFlowStatsReply(xid)
	if err != nil {
		return nil, err
	}
	reply.SetEntries(entries)

	return reply, nil
}

func (r *Switch) buildTableStatsReply(xid uint32) (openflow.TableStatsReply, error) {
	tables, err := r.state.TableStats(r.network, r.device)
	if err != nil {
		return nil, err
	}

	entries := make([]openflow.TableStatsEntry, 0, len(tables))
	for _, t := range tables {
		entries = append(entries, tableStatsEntry(t))
	}

	reply, err := factory.NewTableStatsReply(xid)
	if err != nil {
		return nil, err
	}
	reply.SetEntries(entries)

	return reply, nil
}

func (r *Switch) buildGroupStatsReply(xid uint32) (openflow.GroupStatsReply, error) {
	groups, err := r.state.Groups(r.network, r.device)
	if err != nil {
		return nil, err
	}

	entries := make([]openflow.GroupStatsEntry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, groupStatsEntry(g))
	}

	reply, err := factory.NewGroupStatsReply(xid)
	if err != nil {
		return nil, err
	}
	reply.SetEntries(entries)

	return reply, nil
}

func (r *Switch) buildGroupDescStatsReply(xid uint32) (openflow.GroupDescStatsReply, error) {
	groups, err := r.state.Groups(r.network, r.device)
	if err != nil {
		return nil, err
	}

	entries := make([]openflow.GroupDescStatsEntry, 0, len(groups))
	for _, g := range groups {
		entry, err := groupDescEntry(g)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	reply, err := factory.NewGroupDescStatsReply(xid)
	if err != nil {
		return nil, err
	}
	reply.SetEntries(entries)

	return reply, nil
}

// processPacketOut intercepts topology discovery. For every output
// action that targets a port with a known neighbour, the neighbour's
// own agent is asked to manufacture the discovery response. There is
// no wire between virtual switches: this relay is the discovery
// mechanism.
func (r *Switch) processPacketOut(v openflow.PacketOut) error {
	if !isLLDP(v.Data()) {
		logger.Debugf("ignoring non-LLDP packet out: dpid=%v", r.dpid)
		return nil
	}

	for _, action := range v.Actions() {
		for _, p := range action.OutPort() {
			if p.IsTable() || p.IsFlood() || p.IsAll() || p.IsController() || p.IsNone() {
				continue
			}
			if err := r.relayLLDP(v, p.Value()); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *Switch) relayLLDP(v openflow.PacketOut, port uint32) error {
	cp, ok, err := r.state.Neighbour(r.network, r.device, virtual.PortNumber(port))
	if err != nil {
		return errors.Wrap(err, "failed to look up the neighbour")
	}
	if !ok {
		// Probing a port with no neighbour is a normal edge
		// condition for discovery.
		logger.Debugf("no neighbour on port %v: dpid=%v", port, r.dpid)
		return nil
	}

	neighbour, ok := r.directory.OFSwitch(r.network, cp.Device)
	if !ok {
		logger.Warningf("no agent serves the neighbour device %v: network=%v", cp.Device, r.network)
		return nil
	}

	return neighbour.SendLLDPResponse(v, uint32(cp.Port))
}

// SendLLDPResponse broadcasts a packet-in, scoped to the given ingress
// port, to every controller attached to this agent. The buffer ID and
// payload are copied unmodified from the originating packet-out.
func (r *Switch) SendLLDPResponse(v openflow.PacketOut, inPort uint32) error {
	packetIn, err := factory.NewPacketIn()
	if err != nil {
		return err
	}
	packetIn.SetBufferID(v.BufferID())
	packetIn.SetInPort(inPort)
	packetIn.SetReason(openflow.NoMatch)
	packetIn.SetData(v.Data())

	r.broadcast(packetIn, "PACKET_IN")

	return nil
}

// processEvent translates a virtual network event into the protocol
// message broadcast to every attached controller.
func (r *Switch) processEvent(e virtual.Event) error {
	switch e.Type {
	case virtual.EventPortAdded:
		return r.sendPortStatus(e.Port, openflow.PortAdded)
	case virtual.EventPortRemoved:
		return r.sendPortStatus(e.Port, openflow.PortDeleted)
	case virtual.EventPortUp, virtual.EventPortDown, virtual.EventFlowRemoved, virtual.EventPacketIn:
		// Known future work, traced so the gap stays visible.
		logger.Debugf("unimplemented event %v: dpid=%v", e.Type, r.dpid)
		return nil
	default:
		logger.Warningf("unexpected event %v: dpid=%v", e.Type, r.dpid)
		return nil
	}
}

func (r *Switch) sendPortStatus(p virtual.Port, reason openflow.PortReason) error {
	desc, err := portDesc(factory, p)
	if err != nil {
		return err
	}

	status, err := factory.NewPortStatus()
	if err != nil {
		return err
	}
	status.SetReason(reason)
	status.SetPort(desc)

	r.broadcast(status, "PORT_STATUS")

	return nil
}

// broadcast sends the message to a point-in-time snapshot of the
// attached connections. Send failures are logged per connection, not
// propagated: a dying connection must not starve the others.
func (r *Switch) broadcast(msg encoding.BinaryMarshaler, name string) {
	conns := r.registry.AllConnections()
	if len(conns) == 0 {
		logger.Debugf("dropping %v broadcast: no attached connection: dpid=%v", name, r.dpid)
		return
	}

	for _, c := range conns {
		if err := c.Write(msg); err != nil {
			logger.Errorf("failed to send %v message: %v", name, err)
		}
	}
}

// isLLDP reports whether the raw frame carries an LLDP payload.
func isLLDP(frame []byte) bool {
	eth := new(protocol.Ethernet)
	if err := eth.UnmarshalBinary(frame); err != nil {
		return false
	}
	if eth.Type != protocol.EtherTypeLLDP {
		return false
	}
	lldp := new(protocol.LLDP)

	return lldp.UnmarshalBinary(eth.Payload) == nil
}
