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
)

type Action interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	OutPort() []OutPort
	SetOutPort(port OutPort)
}

type BaseAction struct {
	output []OutPort
}

func NewBaseAction() *BaseAction {
	return &BaseAction{
		output: make([]OutPort, 0),
	}
}

func (r *BaseAction) SetOutPort(port OutPort) {
	r.output = append(r.output, port)
}

func (r *BaseAction) OutPort() []OutPort {
	ports := make([]OutPort, len(r.output))
	copy(ports, r.output)

	return ports
}
