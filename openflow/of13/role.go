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

type RoleRequest struct {
	openflow.Message
	role         openflow.ControllerRole
	generationID uint64
}

func NewRoleRequest(xid uint32) *RoleRequest {
	return &RoleRequest{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_ROLE_REQUEST, xid),
	}
}

func (r *RoleRequest) Role() openflow.ControllerRole {
	return r.role
}

func (r *RoleRequest) SetRole(role openflow.ControllerRole) {
	r.role = role
}

func (r *RoleRequest) GenerationID() uint64 {
	return r.generationID
}

func (r *RoleRequest) SetGenerationID(id uint64) {
	r.generationID = id
}

func (r *RoleRequest) MarshalBinary() ([]byte, error) {
	r.SetPayload(marshalRole(r.role, r.generationID))
	return r.Message.MarshalBinary()
}

func (r *RoleRequest) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}

	role, genID, err := unmarshalRole(r.Payload())
	if err != nil {
		return err
	}
	r.role, r.generationID = role, genID

	return nil
}

type RoleReply struct {
	openflow.Message
	role         openflow.ControllerRole
	generationID uint64
}

func NewRoleReply(xid uint32) openflow.RoleReply {
	return &RoleReply{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_ROLE_REPLY, xid),
	}
}

func (r *RoleReply) Role() openflow.ControllerRole {
	return r.role
}

func (r *RoleReply) SetRole(role openflow.ControllerRole) {
	r.role = role
}

func (r *RoleReply) GenerationID() uint64 {
	return r.generationID
}

func (r *RoleReply) SetGenerationID(id uint64) {
	r.generationID = id
}

func (r *RoleReply) MarshalBinary() ([]byte, error) {
	r.SetPayload(marshalRole(r.role, r.generationID))
	return r.Message.MarshalBinary()
}

func marshalRole(role openflow.ControllerRole, genID uint64) []byte {
	v := make([]byte, 16)
	binary.BigEndian.PutUint32(v[0:4], uint32(role))
	// v[4:8] is padding
	binary.BigEndian.PutUint64(v[8:16], genID)

	return v
}

func unmarshalRole(payload []byte) (openflow.ControllerRole, uint64, error) {
	if payload == nil || len(payload) < 16 {
		return 0, 0, openflow.ErrInvalidPacketLength
	}
	role := openflow.ControllerRole(binary.BigEndian.Uint32(payload[0:4]))
	genID := binary.BigEndian.Uint64(payload[8:16])

	return role, genID, nil
}
