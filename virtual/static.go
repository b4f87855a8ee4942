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

package virtual

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrUnknownDevice = errors.New("unknown device")
)

// StaticDevice describes one device of a statically provisioned
// virtual network.
type StaticDevice struct {
	ID    DeviceID
	DPID  uint64
	Ports []Port
	// Links maps a local port to the far end of its link.
	Links map[PortNumber]ConnectPoint
}

// StaticNetwork describes one statically provisioned virtual network.
type StaticNetwork struct {
	ID      NetworkID
	Devices []StaticDevice
}

type deviceKey struct {
	network NetworkID
	device  DeviceID
}

type staticDevice struct {
	dpid  uint64
	ports map[PortNumber]Port
	links map[PortNumber]ConnectPoint
}

// StaticService is a QueryService over devices provisioned up front,
// typically from the daemon's config file. Flow tables and groups are
// empty: a static network forwards nothing by itself. Port membership
// can still change at runtime, which feeds the event channel.
type StaticService struct {
	mutex   sync.RWMutex
	devices map[deviceKey]*staticDevice
	events  chan Event
}

func NewStaticService(networks []StaticNetwork) *StaticService {
	r := &StaticService{
		devices: make(map[deviceKey]*staticDevice),
		events:  make(chan Event, 64),
	}
	for _, n := range networks {
		for _, d := range n.Devices {
			dev := &staticDevice{
				dpid:  d.DPID,
				ports: make(map[PortNumber]Port),
				links: make(map[PortNumber]ConnectPoint),
			}
			for _, p := range d.Ports {
				dev.ports[p.Number] = p
			}
			for local, remote := range d.Links {
				dev.links[local] = remote
			}
			r.devices[deviceKey{network: n.ID, device: d.ID}] = dev
		}
	}

	return r
}

// Events delivers port change notifications. The channel is never
// closed.
func (r *StaticService) Events() <-chan Event {
	return r.events
}

func (r *StaticService) device(network NetworkID, device DeviceID) (*staticDevice, error) {
	v, ok := r.devices[deviceKey{network: network, device: device}]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDevice, "network=%v, device=%v", network, device)
	}

	return v, nil
}

func (r *StaticService) Ports(network NetworkID, device DeviceID) ([]Port, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	dev, err := r.device(network, device)
	if err != nil {
		return nil, err
	}

	ports := make([]Port, 0, len(dev.ports))
	for _, p := range dev.ports {
		ports = append(ports, p)
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i].Number < ports[j].Number })

	return ports, nil
}

// PortStats reports zeroed counters for every port. A static network
// carries no traffic of its own.
func (r *StaticService) PortStats(network NetworkID, device DeviceID) ([]PortStats, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	dev, err := r.device(network, device)
	if err != nil {
		return nil, err
	}

	stats := make([]PortStats, 0, len(dev.ports))
	for _, p := range dev.ports {
		stats = append(stats, PortStats{Port: p.Number})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Port < stats[j].Port })

	return stats, nil
}

func (r *StaticService) FlowEntries(network NetworkID, device DeviceID) ([]FlowEntry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if _, err := r.device(network, device); err != nil {
		return nil, err
	}

	return nil, nil
}

func (r *StaticService) TableStats(network NetworkID, device DeviceID) ([]TableStats, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if _, err := r.device(network, device); err != nil {
		return nil, err
	}

	return nil, nil
}

func (r *StaticService) Groups(network NetworkID, device DeviceID) ([]Group, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if _, err := r.device(network, device); err != nil {
		return nil, err
	}

	return nil, nil
}

func (r *StaticService) Neighbour(network NetworkID, device DeviceID, port PortNumber) (ConnectPoint, bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	dev, err := r.device(network, device)
	if err != nil {
		return ConnectPoint{}, false, err
	}

	cp, ok := dev.links[port]
	return cp, ok, nil
}

// AddPort provisions a new port on a running device and notifies the
// event channel.
func (r *StaticService) AddPort(network NetworkID, device DeviceID, port Port) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	dev, err := r.device(network, device)
	if err != nil {
		return err
	}
	dev.ports[port.Number] = port

	r.notify(Event{Type: EventPortAdded, Network: network, Device: device, Port: port})

	return nil
}

// RemovePort removes a port from a running device and notifies the
// event channel. Removing an unknown port is a no-op.
func (r *StaticService) RemovePort(network NetworkID, device DeviceID, number PortNumber) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	dev, err := r.device(network, device)
	if err != nil {
		return err
	}
	port, ok := dev.ports[number]
	if !ok {
		return nil
	}
	delete(dev.ports, number)

	r.notify(Event{Type: EventPortRemoved, Network: network, Device: device, Port: port})

	return nil
}

func (r *StaticService) notify(e Event) {
	select {
	case r.events <- e:
	default:
		// Drop the event if nobody drains the channel fast enough.
	}
}
