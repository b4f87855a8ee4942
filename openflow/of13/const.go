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

const (
	/* Immutable messages. */
	OFPT_HELLO        uint8 = iota /* Symmetric message */
	OFPT_ERROR                     /* Symmetric message */
	OFPT_ECHO_REQUEST              /* Symmetric message */
	OFPT_ECHO_REPLY                /* Symmetric message */
	OFPT_EXPERIMENTER              /* Symmetric message */
	/* Switch configuration messages. */
	OFPT_FEATURES_REQUEST   /* Controller/switch message */
	OFPT_FEATURES_REPLY     /* Controller/switch message */
	OFPT_GET_CONFIG_REQUEST /* Controller/switch message */
	OFPT_GET_CONFIG_REPLY   /* Controller/switch message */
	OFPT_SET_CONFIG         /* Controller/switch message */
	/* Asynchronous messages. */
	OFPT_PACKET_IN    /* Async message */
	OFPT_FLOW_REMOVED /* Async message */
	OFPT_PORT_STATUS  /* Async message */
	/* Controller command messages. */
	OFPT_PACKET_OUT /* Controller/switch message */
	OFPT_FLOW_MOD   /* Controller/switch message */
	OFPT_GROUP_MOD  /* Controller/switch message */
	OFPT_PORT_MOD   /* Controller/switch message */
	OFPT_TABLE_MOD  /* Controller/switch message */
	/* Multipart messages. */
	OFPT_MULTIPART_REQUEST /* Controller/switch message */
	OFPT_MULTIPART_REPLY   /* Controller/switch message */
	/* Barrier messages. */
	OFPT_BARRIER_REQUEST /* Controller/switch message */
	OFPT_BARRIER_REPLY   /* Controller/switch message */
	/* Queue Configuration messages. */
	OFPT_QUEUE_GET_CONFIG_REQUEST /* Controller/switch message */
	OFPT_QUEUE_GET_CONFIG_REPLY   /* Controller/switch message */
	/* Controller role change request messages. */
	OFPT_ROLE_REQUEST /* Controller/switch message */
	OFPT_ROLE_REPLY   /* Controller/switch message */
	/* Asynchronous message configuration. */
	OFPT_GET_ASYNC_REQUEST /* Controller/switch message */
	OFPT_GET_ASYNC_REPLY   /* Controller/switch message */
	OFPT_SET_ASYNC         /* Controller/switch message */
	/* Meters and rate limiters configuration messages. */
	OFPT_METER_MOD /* Controller/switch message */
)

/* Capabilities supported by the datapath (ofp_capabilities). */
const (
	OFPC_FLOW_STATS   = 1 << 0 /* Flow statistics. */
	OFPC_TABLE_STATS  = 1 << 1 /* Table statistics. */
	OFPC_PORT_STATS   = 1 << 2 /* Port statistics. */
	OFPC_GROUP_STATS  = 1 << 3 /* Group statistics. */
	OFPC_IP_REASM     = 1 << 5 /* Can reassemble IP fragments. */
	OFPC_QUEUE_STATS  = 1 << 6 /* Queue statistics. */
	OFPC_PORT_BLOCKED = 1 << 8 /* Switch will block looping ports. */
)

const (
	OFPC_FRAG_NORMAL = iota /* No special handling for fragments. */
	OFPC_FRAG_DROP          /* Drop fragments. */
	OFPC_FRAG_REASM         /* Reassemble (only if OFPC_IP_REASM set). */
	OFPC_FRAG_MASK
)

/* Port numbering (ofp_port_no). */
const (
	/* Maximum number of physical and logical switch ports. */
	OFPP_MAX = 0xffffff00
	/* Send the packet out the input port. */
	OFPP_IN_PORT = 0xfffffff8
	/* Submit the packet to the first flow table. */
	OFPP_TABLE = 0xfffffff9
	/* Forward using non-OpenFlow pipeline. */
	OFPP_NORMAL = 0xfffffffa
	/* Flood using non-OpenFlow pipeline. */
	OFPP_FLOOD = 0xfffffffb
	/* All standard ports except input port. */
	OFPP_ALL = 0xfffffffc
	/* Send to controller. */
	OFPP_CONTROLLER = 0xfffffffd
	/* Local openflow "port". */
	OFPP_LOCAL = 0xfffffffe
	/* Special value used in some requests when no port is specified
	 * (i.e. wildcarded). */
	OFPP_ANY = 0xffffffff
)

/* Group numbering (ofp_group). */
const (
	OFPG_MAX = 0xffffff00
	OFPG_ALL = 0xfffffffc
	OFPG_ANY = 0xffffffff
)

/* Group types (ofp_group_type). */
const (
	OFPGT_ALL      = iota /* All (multicast/broadcast) group. */
	OFPGT_SELECT          /* Select group. */
	OFPGT_INDIRECT        /* Indirect group. */
	OFPGT_FF              /* Fast failover group. */
)

/* Flags to configure the port behavior (ofp_port_config). */
const (
	OFPPC_PORT_DOWN    = 1 << 0 /* Port is administratively down. */
	OFPPC_NO_RECV      = 1 << 2 /* Drop all packets received by port. */
	OFPPC_NO_FWD       = 1 << 5 /* Drop packets forwarded to port. */
	OFPPC_NO_PACKET_IN = 1 << 6 /* Do not send packet-in msgs for port. */
)

/* Current state of the physical port (ofp_port_state). */
const (
	OFPPS_LINK_DOWN = 1 << 0 /* No physical link present. */
	OFPPS_BLOCKED   = 1 << 1 /* Port is blocked. */
	OFPPS_LIVE      = 1 << 2 /* Live for Fast Failover Group. */
)

/* What changed about the physical port (ofp_port_reason). */
const (
	OFPPR_ADD    = iota /* The port was added. */
	OFPPR_DELETE        /* The port was removed. */
	OFPPR_MODIFY        /* Some attribute of the port has changed. */
)

/* Why is this packet being sent to the controller? (ofp_packet_in_reason) */
const (
	OFPR_NO_MATCH    = iota /* No matching flow (table-miss flow entry). */
	OFPR_ACTION             /* Action explicitly output to controller. */
	OFPR_INVALID_TTL        /* Packet has invalid TTL. */
)

/* Controller roles (ofp_controller_role). */
const (
	OFPCR_ROLE_NOCHANGE = iota /* Don't change current role. */
	OFPCR_ROLE_EQUAL           /* Default role, full access. */
	OFPCR_ROLE_MASTER          /* Full access, at most one master. */
	OFPCR_ROLE_SLAVE           /* Read-only access. */
)

/* Multipart types (ofp_multipart_type). */
const (
	OFPMP_DESC           = 0
	OFPMP_FLOW           = 1
	OFPMP_AGGREGATE      = 2
	OFPMP_TABLE          = 3
	OFPMP_PORT_STATS     = 4
	OFPMP_QUEUE          = 5
	OFPMP_GROUP          = 6
	OFPMP_GROUP_DESC     = 7
	OFPMP_GROUP_FEATURES = 8
	OFPMP_METER          = 9
	OFPMP_METER_CONFIG   = 10
	OFPMP_METER_FEATURES = 11
	OFPMP_TABLE_FEATURES = 12
	OFPMP_PORT_DESC      = 13
	OFPMP_EXPERIMENTER   = 0xffff
)

/* Action types (ofp_action_type). */
const (
	OFPAT_OUTPUT       = 0
	OFPAT_COPY_TTL_OUT = 11
	OFPAT_COPY_TTL_IN  = 12
	OFPAT_SET_MPLS_TTL = 15
	OFPAT_DEC_MPLS_TTL = 16
	OFPAT_PUSH_VLAN    = 17
	OFPAT_POP_VLAN     = 18
	OFPAT_SET_QUEUE    = 21
	OFPAT_GROUP        = 22
	OFPAT_SET_NW_TTL   = 23
	OFPAT_DEC_NW_TTL   = 24
	OFPAT_SET_FIELD    = 25
	OFPAT_EXPERIMENTER = 0xffff
)

/* Instruction types (ofp_instruction_type). */
const (
	OFPIT_GOTO_TABLE     = 1
	OFPIT_WRITE_METADATA = 2
	OFPIT_WRITE_ACTIONS  = 3
	OFPIT_APPLY_ACTIONS  = 4
	OFPIT_CLEAR_ACTIONS  = 5
	OFPIT_METER          = 6
)

/* Match type (ofp_match_type). */
const (
	OFPMT_STANDARD = 0
	OFPMT_OXM      = 1
)

/* OXM match fields we encode (OFPXMC_OPENFLOW_BASIC class). */
const (
	OFPXMC_OPENFLOW_BASIC = 0x8000
	OFPXMT_OFB_IN_PORT    = 0
)

const (
	OFP_NO_BUFFER    = 0xffffffff
	OFPCML_NO_BUFFER = 0xffff
	OFPCML_MAX       = 0xffe5
)
