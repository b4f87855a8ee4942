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
	"context"
	"net"

	"github.com/hobrien17/onos/openflow"
	"github.com/hobrien17/onos/openflow/transceiver"

	"github.com/pkg/errors"
)

var errNotNegotiated = errors.New("invalid command on non-negotiated session")

// session glues one controller connection to its switch agent. It owns the
// transceiver and forwards decoded controller commands to the agent after
// the version negotiation is done.
type session struct {
	agent       *Switch
	transceiver *transceiver.Transceiver
	negotiated  bool
}

func newSession(agent *Switch, conn net.Conn) *session {
	if agent == nil {
		panic("agent is nil")
	}

	stream := transceiver.NewStream(conn, 0xFFFF)
	v := new(session)
	v.agent = agent
	v.transceiver = transceiver.NewTransceiver(stream, v)

	return v
}

func (r *session) OnHello(f openflow.Factory, w transceiver.Writer, v openflow.Hello) error {
	logger.Debugf("HELLO (ver=%v) is received", v.Version())

	// Ignore duplicated HELLO messages
	if r.negotiated {
		return nil
	}
	r.negotiated = true

	return nil
}

func (r *session) OnError(f openflow.Factory, w transceiver.Writer, v openflow.Error) error {
	logger.Errorf("ERROR (class=%v, code=%v, data=%v)", v.Class(), v.Code(), v.Data())
	if !r.negotiated {
		return errNotNegotiated
	}

	return nil
}

func (r *session) OnEchoRequest(f openflow.Factory, w transceiver.Writer, v openflow.EchoRequest) error {
	logger.Debug("ECHO_REQUEST is received")

	if !r.negotiated {
		return errNotNegotiated
	}

	return r.agent.processEchoRequest(w, v)
}

func (r *session) OnFeaturesRequest(f openflow.Factory, w transceiver.Writer, v openflow.FeaturesRequest) error {
	logger.Debugf("FEATURES_REQUEST (xid=%v) is received", v.TransactionID())

	if !r.negotiated {
		return errNotNegotiated
	}

	return r.agent.processFeaturesRequest(w, v)
}

func (r *session) OnGetConfigRequest(f openflow.Factory, w transceiver.Writer, v openflow.GetConfigRequest) error {
	logger.Debug("GET_CONFIG_REQUEST is received")

	if !r.negotiated {
		return errNotNegotiated
	}

	return r.agent.processGetConfigRequest(w, v)
}

func (r *session) OnSetConfig(f openflow.Factory, w transceiver.Writer, v openflow.SetConfig) error {
	logger.Debugf("SET_CONFIG (flags=%v, missSendLen=%v) is received", v.Flags(), v.MissSendLength())

	if !r.negotiated {
		return errNotNegotiated
	}

	return r.agent.processSetConfig(v)
}

func (r *session) OnBarrierRequest(f openflow.Factory, w transceiver.Writer, v openflow.BarrierRequest) error {
	logger.Debugf("BARRIER_REQUEST (xid=%v) is received", v.TransactionID())

	if !r.negotiated {
		return errNotNegotiated
	}

	return r.agent.processBarrierRequest(w, v)
}

func (r *session) OnRoleRequest(f openflow.Factory, w transceiver.Writer, v openflow.RoleRequest) error {
	logger.Debugf("ROLE_REQUEST (role=%v, genID=%v) is received", v.Role(), v.GenerationID())

	if !r.negotiated {
		return errNotNegotiated
	}

	return r.agent.processRoleRequest(w, v)
}

func (r *session) OnStatsRequest(f openflow.Factory, w transceiver.Writer, v openflow.StatsRequest) error {
	logger.Debugf("MULTIPART_REQUEST (type=%v) is received", v.StatsType())

	if !r.negotiated {
		return errNotNegotiated
	}

	return r.agent.processStatsRequest(w, v)
}

func (r *session) OnPacketOut(f openflow.Factory, w transceiver.Writer, v openflow.PacketOut) error {
	logger.Debug("PACKET_OUT is received")

	if !r.negotiated {
		return errNotNegotiated
	}

	return r.agent.processPacketOut(v)
}

// Run attaches the connection to the agent, opens the handshake and then
// serves controller commands until the connection or the context dies.
func (r *session) Run(ctx context.Context) {
	if err := r.agent.Attach(r.transceiver); err != nil {
		logger.Errorf("failed to attach a controller connection: %v", err)
		r.transceiver.Close()
		return
	}
	defer func() {
		if err := r.agent.Detach(r.transceiver); err != nil {
			logger.Errorf("failed to detach a controller connection: %v", err)
		}
	}()

	if err := r.agent.SendHello(r.transceiver); err != nil {
		logger.Errorf("failed to send a HELLO: %v", err)
		r.transceiver.Close()
		return
	}

	if err := r.transceiver.Run(ctx); err != nil {
		logger.Errorf("openflow transceiver is unexpectedly closed: %v", err)
	}
	r.transceiver.Close()
	logger.Infof("disconnected from the controller (DPID=%v)", r.agent.DPID())
}
