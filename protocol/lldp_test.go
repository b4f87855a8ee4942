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

package protocol

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLLDPCodec(t *testing.T) {
	samples := []struct {
		Packet     string
		Expected   LLDP
		DecodeOnly bool
	}{
		{
			// Chassis ID by MAC, port ID by local name, TTL 120.
			Packet: "02070400000000001704020732060200780000",
			Expected: LLDP{
				ChassisID: LLDPChassisID{SubType: 4, Data: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x17}},
				PortID:    LLDPPortID{SubType: 7, Data: []byte{0x32}},
				TTL:       120,
			},
			DecodeOnly: false,
		},
		{
			// Optional TLVs after the mandatory three are tolerated and
			// ignored, so the re-encoded form differs from the input.
			Packet: "0207040000000000180402073106020078080a706f72742d6c6162656c0000",
			Expected: LLDP{
				ChassisID: LLDPChassisID{SubType: 4, Data: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x18}},
				PortID:    LLDPPortID{SubType: 7, Data: []byte{0x31}},
				TTL:       120,
			},
			DecodeOnly: true,
		},
	}

	for _, v := range samples {
		packet, err := hex.DecodeString(v.Packet)
		if err != nil {
			t.Fatalf("invalid sample: %v", err)
		}

		decoded := new(LLDP)
		if err := decoded.UnmarshalBinary(packet); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(v.Expected, *decoded); diff != "" {
			t.Fatalf("unexpected LLDP (-want +got):\n%v", diff)
		}

		if v.DecodeOnly {
			continue
		}
		encoded, err := decoded.MarshalBinary()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(encoded, packet) {
			t.Fatalf("unexpected packet: %v", hex.EncodeToString(encoded))
		}
	}
}

func TestLLDPUnmarshalError(t *testing.T) {
	samples := []string{
		"",
		// Chassis ID TLV alone.
		"020704000000000017",
		// Port ID TLV before chassis ID.
		"04020732020704000000000017060200780000",
		// Truncated TTL TLV.
		"02070400000000001704020732060200",
	}

	for _, v := range samples {
		packet, err := hex.DecodeString(v)
		if err != nil {
			t.Fatalf("invalid sample: %v", err)
		}
		if err := new(LLDP).UnmarshalBinary(packet); err == nil {
			t.Fatalf("expected an error for %q", v)
		}
	}
}

func TestEthernetCodec(t *testing.T) {
	payload, _ := hex.DecodeString("02070400000000001704020732060200780000")

	frame, _ := hex.DecodeString("0180c200000e00000000001788cc" + "02070400000000001704020732060200780000")
	decoded := new(Ethernet)
	if err := decoded.UnmarshalBinary(frame); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Type != EtherTypeLLDP {
		t.Fatalf("unexpected ethertype: %#x", decoded.Type)
	}
	if !bytes.Equal(decoded.Payload, payload) {
		t.Fatalf("unexpected payload: %v", hex.EncodeToString(decoded.Payload))
	}

	encoded, err := decoded.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(encoded, frame) {
		t.Fatalf("unexpected frame: %v", hex.EncodeToString(encoded))
	}
}

func TestEthernetVLANTag(t *testing.T) {
	// An 802.1Q tag sits between the MACs and the real ethertype.
	frame, _ := hex.DecodeString("0180c200000e0000000000178100000188cc" + "02070400000000001704020732060200780000")

	decoded := new(Ethernet)
	if err := decoded.UnmarshalBinary(frame); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Type != EtherTypeLLDP {
		t.Fatalf("unexpected ethertype: %#x", decoded.Type)
	}
	if len(decoded.Payload) != 19 {
		t.Fatalf("unexpected payload length: %v", len(decoded.Payload))
	}

	// A tag with no inner frame is invalid.
	if err := new(Ethernet).UnmarshalBinary(frame[:16]); err == nil {
		t.Fatalf("expected an error for a truncated tagged frame")
	}
}
