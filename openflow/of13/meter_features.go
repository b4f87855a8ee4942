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

// MeterFeaturesReply is an all-zero ofp_meter_features body: metering
// is advertised as present but without any capability.
type MeterFeaturesReply struct {
	statsReply
}

func NewMeterFeaturesReply(xid uint32) openflow.MeterFeaturesReply {
	return &MeterFeaturesReply{
		statsReply: newStatsReply(xid, openflow.StatsMeterFeatures),
	}
}

func (r *MeterFeaturesReply) MarshalBinary() ([]byte, error) {
	return r.marshalBody(make([]byte, 16))
}
