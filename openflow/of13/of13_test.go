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

package of13

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"net"
	"testing"

	"github.com/hobrien17/onos/openflow"
)

func TestHelloMarshal(t *testing.T) {
	hello, err := NewFactory().NewHello(0xFFFFFFFF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	packet, err := hello.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected, _ := hex.DecodeString("04000008ffffffff")
	if !bytes.Equal(packet, expected) {
		t.Fatalf("unexpected packet: %v", hex.EncodeToString(packet))
	}
}

func TestEchoRequestUnmarshal(t *testing.T) {
	packet, _ := hex.DecodeString("0402000c00000042cafebabe")

	echo := NewEchoRequest(0)
	if err := echo.UnmarshalBinary(packet); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if echo.TransactionID() != 0x42 {
		t.Fatalf("unexpected transaction ID: %#x", echo.TransactionID())
	}
	if !bytes.Equal(echo.Data(), []byte{0xCA, 0xFE, 0xBA, 0xBE}) {
		t.Fatalf("unexpected data: %v", echo.Data())
	}
}

func TestErrorUnmarshal(t *testing.T) {
	// OFPET_BAD_REQUEST / OFPBRC_BAD_TYPE with two data bytes.
	packet, _ := hex.DecodeString("0401000e000000070001000104d2")

	v := NewError(0)
	if err := v.UnmarshalBinary(packet); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Class() != 1 || v.Code() != 1 {
		t.Fatalf("unexpected class/code: %v/%v", v.Class(), v.Code())
	}
	if !bytes.Equal(v.Data(), []byte{0x04, 0xD2}) {
		t.Fatalf("unexpected data: %v", v.Data())
	}
}

func TestRoleRequestUnmarshal(t *testing.T) {
	samples := []struct {
		Packet       string
		Role         openflow.ControllerRole
		GenerationID uint64
	}{
		// OFPCR_ROLE_NOCHANGE
		{Packet: "0418001800000001000000000000000000000000000000ff", Role: openflow.RoleNoChange, GenerationID: 0xFF},
		// OFPCR_ROLE_MASTER
		{Packet: "041800180000000200000002000000000000000000000100", Role: openflow.RoleMaster, GenerationID: 0x100},
		// OFPCR_ROLE_SLAVE
		{Packet: "041800180000000300000003000000000000000000000000", Role: openflow.RoleSlave, GenerationID: 0},
	}

	for _, v := range samples {
		packet, err := hex.DecodeString(v.Packet)
		if err != nil {
			t.Fatalf("invalid sample: %v", err)
		}
		request := NewRoleRequest(0)
		if err := request.UnmarshalBinary(packet); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if request.Role() != v.Role {
			t.Fatalf("unexpected role: expected %v, got %v", v.Role, request.Role())
		}
		if request.GenerationID() != v.GenerationID {
			t.Fatalf("unexpected generation ID: %#x", request.GenerationID())
		}
	}
}

func TestStatsRequestUnmarshal(t *testing.T) {
	samples := []struct {
		Packet    string
		StatsType openflow.StatsType
		PortNo    uint32
	}{
		// OFPMP_FLOW: the port is not part of the request body.
		{Packet: "04120010000000050001000000000000", StatsType: openflow.StatsFlow, PortNo: OFPP_ANY},
		// OFPMP_PORT_STATS scoped to port 3.
		{Packet: "041200180000000600040000000000000000000300000000", StatsType: openflow.StatsPort, PortNo: 3},
		// OFPMP_PORT_STATS wildcard.
		{Packet: "04120018000000070004000000000000ffffffff00000000", StatsType: openflow.StatsPort, PortNo: OFPP_ANY},
	}

	for _, v := range samples {
		packet, err := hex.DecodeString(v.Packet)
		if err != nil {
			t.Fatalf("invalid sample: %v", err)
		}
		request := NewStatsRequest(0)
		if err := request.UnmarshalBinary(packet); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if request.StatsType() != v.StatsType {
			t.Fatalf("unexpected stats type: %v", request.StatsType())
		}
		if request.PortNo() != v.PortNo {
			t.Fatalf("unexpected port number: %#x", request.PortNo())
		}
	}
}

func TestMatchCodec(t *testing.T) {
	match := NewMatch()
	match.SetWildcardInPort()
	v, err := match.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// An all-wildcard match is the 4-byte OXM header padded to 8.
	expected, _ := hex.DecodeString("0001000400000000")
	if !bytes.Equal(v, expected) {
		t.Fatalf("unexpected wildcard match: %v", hex.EncodeToString(v))
	}

	match.SetInPort(0x1A)
	v, err = match.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected, _ = hex.DecodeString("0001000c800000040000001a00000000")
	if !bytes.Equal(v, expected) {
		t.Fatalf("unexpected in-port match: %v", hex.EncodeToString(v))
	}

	decoded := NewMatch()
	if err := decoded.UnmarshalBinary(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wildcard, inPort := decoded.InPort()
	if wildcard || inPort != 0x1A {
		t.Fatalf("unexpected decoded match: wildcard=%v, port=%v", wildcard, inPort)
	}
}

func TestActionUnmarshalSkipsNonOutput(t *testing.T) {
	// A set-queue action (type 21) followed by output to port 2.
	packet, _ := hex.DecodeString("00150008000000070000001000000002ffff000000000000")

	action := NewAction()
	if err := action.UnmarshalBinary(packet); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ports := action.OutPort()
	if len(ports) != 1 {
		t.Fatalf("unexpected output count: %v", len(ports))
	}
	if ports[0].Value() != 2 {
		t.Fatalf("unexpected output port: %v", ports[0].Value())
	}
}

func TestActionMarshalLogicalPorts(t *testing.T) {
	controller := openflow.NewOutPort()
	controller.SetController()

	action := NewAction()
	action.SetOutPort(controller)
	v, err := action.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v) != 16 {
		t.Fatalf("unexpected action length: %v", len(v))
	}
	if port := binary.BigEndian.Uint32(v[4:8]); port != OFPP_CONTROLLER {
		t.Fatalf("unexpected port: %#x", port)
	}
	if maxLen := binary.BigEndian.Uint16(v[8:10]); maxLen != OFPCML_NO_BUFFER {
		t.Fatalf("unexpected max length: %#x", maxLen)
	}
}

func TestPacketOutUnmarshal(t *testing.T) {
	// Output to port 1, then a 4-byte frame.
	packet, _ := hex.DecodeString("040d002c0000000afffffffffffffffd0010000000000000" +
		"0000001000000001ffff000000000000deadbeef")

	v := NewPacketOut(0)
	if err := v.UnmarshalBinary(packet); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.BufferID() != OFP_NO_BUFFER {
		t.Fatalf("unexpected buffer ID: %#x", v.BufferID())
	}
	if v.InPort() != OFPP_CONTROLLER {
		t.Fatalf("unexpected in port: %#x", v.InPort())
	}
	if len(v.Actions()) != 1 {
		t.Fatalf("unexpected action count: %v", len(v.Actions()))
	}
	if !bytes.Equal(v.Data(), []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Fatalf("unexpected frame: %v", v.Data())
	}
}

func TestFeaturesReplyMarshal(t *testing.T) {
	reply := NewFeaturesReply(0x10)
	reply.SetDPID(0x0102030405060708)
	reply.SetNumBuffers(1024)
	reply.SetNumTables(3)
	reply.SetCapabilities(OFPC_FLOW_STATS | OFPC_TABLE_STATS)

	packet, err := reply.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packet) != 32 {
		t.Fatalf("unexpected packet length: %v", len(packet))
	}
	if dpid := binary.BigEndian.Uint64(packet[8:16]); dpid != 0x0102030405060708 {
		t.Fatalf("unexpected DPID: %#x", dpid)
	}
	if buffers := binary.BigEndian.Uint32(packet[16:20]); buffers != 1024 {
		t.Fatalf("unexpected buffer count: %v", buffers)
	}
	if packet[20] != 3 {
		t.Fatalf("unexpected table count: %v", packet[20])
	}
	if capabilities := binary.BigEndian.Uint32(packet[24:28]); capabilities != OFPC_FLOW_STATS|OFPC_TABLE_STATS {
		t.Fatalf("unexpected capabilities: %#x", capabilities)
	}
}

func TestDescReplyMarshal(t *testing.T) {
	reply := NewDescReply(0x20)
	reply.SetManufacturer("Virtual SDN Project")
	reply.SetHardware("Virtual OF Switch")
	reply.SetSerial("None")

	packet, err := reply.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 8-byte header, 8-byte multipart header, 1056-byte ofp_desc.
	if len(packet) != 8+8+1056 {
		t.Fatalf("unexpected packet length: %v", len(packet))
	}
	body := packet[16:]
	if s := string(bytes.TrimRight(body[0:256], "\x00")); s != "Virtual SDN Project" {
		t.Fatalf("unexpected manufacturer: %q", s)
	}
	if s := string(bytes.TrimRight(body[768:800], "\x00")); s != "None" {
		t.Fatalf("unexpected serial: %q", s)
	}
	// Unset fields stay NUL.
	if s := string(bytes.TrimRight(body[512:768], "\x00")); s != "" {
		t.Fatalf("unexpected software: %q", s)
	}
}

func TestPortCodec(t *testing.T) {
	port := new(Port)
	port.SetNumber(7)
	port.SetMAC(net.HardwareAddr{0, 1, 2, 3, 4, 5})
	port.SetName("eth7")
	port.SetPortDown(true)
	port.SetLinkDown(true)

	v, err := port.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v) != 64 {
		t.Fatalf("unexpected port length: %v", len(v))
	}
	if config := binary.BigEndian.Uint32(v[32:36]); config&OFPPC_PORT_DOWN == 0 {
		t.Fatalf("port-down flag missing in config: %#x", config)
	}
	if state := binary.BigEndian.Uint32(v[36:40]); state&OFPPS_LINK_DOWN == 0 {
		t.Fatalf("link-down flag missing in state: %#x", state)
	}

	decoded := new(Port)
	if err := decoded.UnmarshalBinary(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Number() != 7 || decoded.Name() != "eth7" {
		t.Fatalf("unexpected decoded port: %v %q", decoded.Number(), decoded.Name())
	}
	if !decoded.IsPortDown() || !decoded.IsLinkDown() {
		t.Fatalf("down state lost in the codec round trip")
	}
	if !bytes.Equal(decoded.MAC(), net.HardwareAddr{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("unexpected MAC: %v", decoded.MAC())
	}
}

func TestMeterFeaturesReplyMarshal(t *testing.T) {
	reply, err := NewFactory().NewMeterFeaturesReply(0x30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := reply.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// An all-zero ofp_meter_features: no metering capability at all.
	if len(v) != 8+8+16 {
		t.Fatalf("unexpected packet length: %v", len(v))
	}
	for _, b := range v[16:] {
		if b != 0 {
			t.Fatalf("unexpected non-zero meter features body: %v", v[16:])
		}
	}
}
