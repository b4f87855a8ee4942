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

package transceiver

import (
	"context"
	"encoding"
	"encoding/binary"
	"fmt"
	"net"
	"time"

	"github.com/hobrien17/onos/openflow"
	"github.com/hobrien17/onos/openflow/of13"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var (
	logger = logging.MustGetLogger("transceiver")
)

const (
	// Allowed idle time before we send an echo request to a controller.
	maxIdleTime = 10 * time.Second
	// I/O timeouts (These timeouts should be less than maxIdleTime).
	readTimeout  = 1 * time.Second
	writeTimeout = readTimeout * 2
)

type Writer interface {
	Write(msg encoding.BinaryMarshaler) error
}

type WriteCloser interface {
	Writer
	Close() error
}

// Handler receives the controller-to-switch messages of one
// connection. The transceiver never replies on its own: even an echo
// request is forwarded, so the agent decides every response.
type Handler interface {
	OnHello(openflow.Factory, Writer, openflow.Hello) error
	OnError(openflow.Factory, Writer, openflow.Error) error
	OnEchoRequest(openflow.Factory, Writer, openflow.EchoRequest) error
	OnFeaturesRequest(openflow.Factory, Writer, openflow.FeaturesRequest) error
	OnGetConfigRequest(openflow.Factory, Writer, openflow.GetConfigRequest) error
	OnSetConfig(openflow.Factory, Writer, openflow.SetConfig) error
	OnBarrierRequest(openflow.Factory, Writer, openflow.BarrierRequest) error
	OnRoleRequest(openflow.Factory, Writer, openflow.RoleRequest) error
	OnStatsRequest(openflow.Factory, Writer, openflow.StatsRequest) error
	OnPacketOut(openflow.Factory, Writer, openflow.PacketOut) error
}

type Transceiver struct {
	stream      *Stream
	observer    Handler
	version     uint8
	factory     openflow.Factory
	pingCounter uint
	probeXID    uint32
	closed      bool
}

func NewTransceiver(stream *Stream, handler Handler) *Transceiver {
	if stream == nil {
		panic("stream is nil")
	}
	if handler == nil {
		panic("handler is nil")
	}

	return &Transceiver{
		stream:   stream,
		observer: handler,
		factory:  of13.NewFactory(),
	}
}

// RemoteAddr returns the address of the controller on the far end.
func (r *Transceiver) RemoteAddr() net.Addr {
	return r.stream.RemoteAddr()
}

func (r *Transceiver) Version() (negotiated bool, version uint8) {
	if r.version == 0 {
		// Not yet negotiated
		return false, 0
	}

	return true, r.version
}

func isTimeout(err error) bool {
	type Timeout interface {
		Timeout() bool
	}

	if v, ok := err.(Timeout); ok {
		return v.Timeout()
	}

	return false
}

func (r *Transceiver) sendEchoRequest() error {
	if r.pingCounter > 2 {
		return errors.New("controller does not respond to our echo request")
	}

	r.probeXID++
	echo, err := r.factory.NewEchoRequest(r.probeXID)
	if err != nil {
		return err
	}
	// We use current timestamp to check network latency between this agent and the controller.
	timestamp, err := time.Now().GobEncode()
	if err != nil {
		return err
	}
	echo.SetData(timestamp)

	if err := r.Write(echo); err != nil {
		return errors.Wrap(err, "failed to send ECHO_REQUEST message")
	}
	r.pingCounter++

	return nil
}

func (r *Transceiver) Run(ctx context.Context) error {
	defer logger.Info("transceiver is closed")
	r.stream.SetReadTimeout(readTimeout)
	r.stream.SetWriteTimeout(writeTimeout)

	readerCtx, cancelReader := context.WithCancel(ctx)
	defer cancelReader()
	reader := r.runReader(readerCtx)

	// Negotiate the protocol version. Our own HELLO has already been
	// written by the agent when the connection was attached.
	packet, err := r.negotiate(ctx, reader)
	if err != nil {
		return errors.Wrap(err, "failed to negotiate the protocol version")
	}

	// Infinite loop
	for {
		// Dispatch the incoming packet
		if err := r.dispatch(packet); err != nil {
			if !isTemporaryErr(err) {
				return err
			}
			// Ignore the temporary error. Just log the error and keep go on.
			logger.Errorf("failed to dispatch the packet: %v", err)
		}

		// Read the next packet
		var ok bool
		select {
		case <-ctx.Done():
			logger.Info("context done")
			return nil
		case packet, ok = <-reader:
			if !ok {
				logger.Info("the reader channel is closed")
				return nil
			}
			remain := len(reader)
			if remain > 0 {
				logger.Debugf("%v remaining unread packet(s) in the reader channel", remain)
			}
		}
	}
}

func (r *Transceiver) negotiate(ctx context.Context, reader <-chan []byte) (packet []byte, err error) {
	select {
	case <-ctx.Done():
		return nil, errors.New("context done")
	case <-time.After(30 * time.Second):
		return nil, errors.New("inactive for too long")
	case packet, ok := <-reader:
		if !ok {
			return nil, errors.New("the reader channel is closed")
		}
		// The first message should be HELLO.
		if packet[1] != of13.OFPT_HELLO {
			return nil, errors.New("missing HELLO message")
		}

		// This agent only speaks OpenFlow 1.3.
		if packet[0] < openflow.OF13_VERSION {
			return nil, openflow.ErrUnsupportedVersion
		}
		r.version = openflow.OF13_VERSION
		logger.Info("negotiated to openflow version 1.3")

		// Return the initial packet to dispatch it.
		return packet, nil
	}
}

func (r *Transceiver) runReader(ctx context.Context) <-chan []byte {
	// Buffered channel
	c := make(chan []byte, 4096)
	go func() {
		// The channel c will be closed when this goroutine returns in order to notice the connection has been closed.
		defer close(c)
		defer logger.Info("transceiver reader is closed")

		lastActivated := time.Now()
		for {
			select {
			case <-ctx.Done():
				logger.Info("context done")
				return
			default:
			}

			// Read the next packet
			packet, err := r.readPacket()
			if err != nil {
				if !isTimeout(err) {
					logger.Errorf("failed to read the next packet: %v", err)
					return
				}
				// Timeout occurrs. Send a ping request if necessary.
				if time.Now().After(lastActivated.Add(maxIdleTime)) {
					if err := r.sendEchoRequest(); err != nil {
						logger.Errorf("failed to send an echo request: %v", err)
						return
					}
				}
				continue
			}
			// Update the timestamp
			lastActivated = time.Now()

			// Echo replies answer our own idle probes, so they stop
			// here. Echo requests from the controller go through to
			// the dispatcher like any other message.
			if packet[0] == openflow.OF13_VERSION && packet[1] == of13.OFPT_ECHO_REPLY {
				if err := r.handleEchoReply(packet); err != nil {
					logger.Errorf("failed to handle the echo reply: %v", err)
					return
				}
				continue
			}

			select {
			case c <- packet:
			default:
				// Drop the packet if we cannot immediately carry it.
				logger.Error("transceiver buffer full: drop the incoming packet!")
			}
		}
	}()

	return c
}

func isTemporaryErr(err error) bool {
	e, ok := errors.Cause(err).(interface {
		Temporary() bool
	})
	return ok && e.Temporary()
}

func (r *Transceiver) readPacket() ([]byte, error) {
	header, err := r.stream.Peek(8) // peek ofp_header
	if err != nil {
		return nil, err
	}

	length := binary.BigEndian.Uint16(header[2:4])
	if length < 8 {
		return nil, openflow.ErrInvalidPacketLength
	}
	packet, err := r.stream.ReadN(int(length))
	if err != nil {
		return nil, err
	}

	return packet, nil
}

func (r *Transceiver) Write(msg encoding.BinaryMarshaler) error {
	packet, err := msg.MarshalBinary()
	if err != nil {
		return err
	}

	if _, err := r.stream.Write(packet); err != nil {
		return err
	}

	return nil
}

func (r *Transceiver) handleEchoReply(packet []byte) error {
	msg, err := r.factory.NewEchoReply(0)
	if err != nil {
		return err
	}
	if err := msg.UnmarshalBinary(packet); err != nil {
		return err
	}
	logger.Debug("received an ECHO_REPLY packet")

	data := msg.Data()
	if data == nil || len(data) != 8 {
		// A controller may answer with its own reply data. Ignore the
		// soft error to avoid connection teardown.
		logger.Debug("unexpected ECHO_REPLY data")
		return nil
	}
	timestamp := time.Time{}
	if err := timestamp.GobDecode(data); err != nil {
		logger.Debug("unexpected timestamp data in the ECHO_REPLY packet")
		return nil
	}

	// Network latency
	logger.Debugf("transceiver latency: %v", time.Now().Sub(timestamp))
	// Reset the ping counter
	r.pingCounter = 0

	return nil
}

func (r *Transceiver) dispatch(packet []byte) error {
	if packet[0] != r.version {
		return fmt.Errorf("mis-matched OpenFlow version: negotiated=%v, packet=%v", r.version, packet[0])
	}

	switch packet[1] {
	case of13.OFPT_HELLO:
		return r.handleHello(packet)
	case of13.OFPT_ERROR:
		return r.handleError(packet)
	case of13.OFPT_ECHO_REQUEST:
		return r.handleEchoRequest(packet)
	case of13.OFPT_FEATURES_REQUEST:
		return r.handleFeaturesRequest(packet)
	case of13.OFPT_GET_CONFIG_REQUEST:
		return r.handleGetConfigRequest(packet)
	case of13.OFPT_SET_CONFIG:
		return r.handleSetConfig(packet)
	case of13.OFPT_BARRIER_REQUEST:
		return r.handleBarrierRequest(packet)
	case of13.OFPT_ROLE_REQUEST:
		return r.handleRoleRequest(packet)
	case of13.OFPT_MULTIPART_REQUEST:
		return r.handleStatsRequest(packet)
	case of13.OFPT_PACKET_OUT:
		return r.handlePacketOut(packet)
	default:
		// Unsupported message. Do nothing.
		return nil
	}
}

func (r *Transceiver) handleHello(packet []byte) error {
	msg, err := r.factory.NewHello(0)
	if err != nil {
		return err
	}
	if err := msg.UnmarshalBinary(packet); err != nil {
		return err
	}

	return r.observer.OnHello(r.factory, r, msg)
}

func (r *Transceiver) handleError(packet []byte) error {
	msg := of13.NewError(0)
	if err := msg.UnmarshalBinary(packet); err != nil {
		return err
	}

	return r.observer.OnError(r.factory, r, msg)
}

func (r *Transceiver) handleEchoRequest(packet []byte) error {
	msg, err := r.factory.NewEchoRequest(0)
	if err != nil {
		return err
	}
	if err := msg.UnmarshalBinary(packet); err != nil {
		return err
	}

	return r.observer.OnEchoRequest(r.factory, r, msg)
}

func (r *Transceiver) handleFeaturesRequest(packet []byte) error {
	msg := of13.NewFeaturesRequest(0)
	if err := msg.UnmarshalBinary(packet); err != nil {
		return err
	}

	return r.observer.OnFeaturesRequest(r.factory, r, msg)
}

func (r *Transceiver) handleGetConfigRequest(packet []byte) error {
	msg := of13.NewGetConfigRequest(0)
	if err := msg.UnmarshalBinary(packet); err != nil {
		return err
	}

	return r.observer.OnGetConfigRequest(r.factory, r, msg)
}

func (r *Transceiver) handleSetConfig(packet []byte) error {
	msg := of13.NewSetConfig(0)
	if err := msg.UnmarshalBinary(packet); err != nil {
		return err
	}

	return r.observer.OnSetConfig(r.factory, r, msg)
}

func (r *Transceiver) handleBarrierRequest(packet []byte) error {
	msg := of13.NewBarrierRequest(0)
	if err := msg.UnmarshalBinary(packet); err != nil {
		return err
	}

	return r.observer.OnBarrierRequest(r.factory, r, msg)
}

func (r *Transceiver) handleRoleRequest(packet []byte) error {
	msg := of13.NewRoleRequest(0)
	if err := msg.UnmarshalBinary(packet); err != nil {
		return err
	}

	return r.observer.OnRoleRequest(r.factory, r, msg)
}

func (r *Transceiver) handleStatsRequest(packet []byte) error {
	msg := of13.NewStatsRequest(0)
	if err := msg.UnmarshalBinary(packet); err != nil {
		return err
	}

	return r.observer.OnStatsRequest(r.factory, r, msg)
}

func (r *Transceiver) handlePacketOut(packet []byte) error {
	msg := of13.NewPacketOut(0)
	if err := msg.UnmarshalBinary(packet); err != nil {
		return err
	}

	return r.observer.OnPacketOut(r.factory, r, msg)
}

func (r *Transceiver) Close() error {
	if r.closed {
		return nil
	}

	if err := r.stream.Close(); err != nil {
		return err
	}
	r.closed = true

	return nil
}
