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

// ControllerRole is a controller's negotiated permission level for
// issuing state-changing commands to the switch.
type ControllerRole uint32

const (
	RoleNoChange ControllerRole = iota
	RoleEqual
	RoleMaster
	RoleSlave
)

func (r ControllerRole) String() string {
	switch r {
	case RoleNoChange:
		return "NOCHANGE"
	case RoleEqual:
		return "EQUAL"
	case RoleMaster:
		return "MASTER"
	case RoleSlave:
		return "SLAVE"
	default:
		return fmt.Sprintf("UNKNOWN(%v)", uint32(r))
	}
}

type RoleRequest interface {
	Header
	Role() ControllerRole
	GenerationID() uint64
	encoding.BinaryUnmarshaler
}

type RoleReply interface {
	Header
	Role() ControllerRole
	SetRole(role ControllerRole)
	GenerationID() uint64
	SetGenerationID(id uint64)
	encoding.BinaryMarshaler
}
