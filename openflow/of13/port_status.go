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

type PortStatus struct {
	openflow.Message
	reason openflow.PortReason
	port   openflow.Port
}

func NewPortStatus(xid uint32) openflow.PortStatus {
	return &PortStatus{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_PORT_STATUS, xid),
		port:    NewPort(),
	}
}

func (r *PortStatus) Reason() openflow.PortReason {
	return r.reason
}

func (r *PortStatus) SetReason(reason openflow.PortReason) {
	r.reason = reason
}

func (r *PortStatus) Port() openflow.Port {
	return r.port
}

func (r *PortStatus) SetPort(port openflow.Port) {
	if port == nil {
		panic("port is nil")
	}
	r.port = port
}

func (r *PortStatus) MarshalBinary() ([]byte, error) {
	port, err := r.port.MarshalBinary()
	if err != nil {
		return nil, err
	}

	v := make([]byte, 8+len(port))
	switch r.reason {
	case openflow.PortAdded:
		v[0] = OFPPR_ADD
	case openflow.PortDeleted:
		v[0] = OFPPR_DELETE
	case openflow.PortModified:
		v[0] = OFPPR_MODIFY
	default:
		return nil, openflow.ErrUnsupportedMessage
	}
	// v[1:8] is padding
	copy(v[8:], port)
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}
