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
	"encoding/binary"

	"github.com/hobrien17/onos/openflow"
)

// StatsRequest is an ofp_multipart_request. It satisfies
// openflow.PortStatsRequest too, so a PORT request does not need a
// separate parse.
type StatsRequest struct {
	openflow.Message
	statsType openflow.StatsType
	portNo    uint32
}

func NewStatsRequest(xid uint32) *StatsRequest {
	return &StatsRequest{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_MULTIPART_REQUEST, xid),
		portNo:  OFPP_ANY,
	}
}

func (r *StatsRequest) StatsType() openflow.StatsType {
	return r.statsType
}

func (r *StatsRequest) PortNo() uint32 {
	return r.portNo
}

func (r *StatsRequest) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}

	payload := r.Payload()
	if payload == nil || len(payload) < 8 {
		return openflow.ErrInvalidPacketLength
	}
	r.statsType = openflow.StatsType(binary.BigEndian.Uint16(payload[0:2]))
	// payload[2:4] is flags, payload[4:8] is padding

	r.portNo = OFPP_ANY
	if r.statsType == openflow.StatsPort {
		if len(payload) < 16 {
			return openflow.ErrInvalidPacketLength
		}
		r.portNo = binary.BigEndian.Uint32(payload[8:12])
	}

	return nil
}

// statsReply is the common part of an ofp_multipart_reply. Concrete
// replies embed it and marshal their body through marshalBody. The
// REPLY_MORE flag is never set: every reply fits a single message.
type statsReply struct {
	openflow.Message
	statsType openflow.StatsType
}

func newStatsReply(xid uint32, statsType openflow.StatsType) statsReply {
	return statsReply{
		Message:   openflow.NewMessage(openflow.OF13_VERSION, OFPT_MULTIPART_REPLY, xid),
		statsType: statsType,
	}
}

func (r *statsReply) StatsType() openflow.StatsType {
	return r.statsType
}

func (r *statsReply) marshalBody(body []byte) ([]byte, error) {
	v := make([]byte, 8+len(body))
	binary.BigEndian.PutUint16(v[0:2], uint16(r.statsType))
	// v[2:4] is flags, v[4:8] is padding
	copy(v[8:], body)
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}
