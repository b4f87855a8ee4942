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

package agent

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/hobrien17/onos/virtual"

	lru "github.com/hashicorp/golang-lru"
)

const (
	neighbourCacheExpiration = 30 * time.Second
	reconnectInterval        = 5 * time.Second
	keepAlivePeriod          = 5 * time.Second
)

type agentKey struct {
	network virtual.NetworkID
	device  virtual.DeviceID
}

// Manager owns the switch agents of the virtual networks. It serves agent
// lookups for the LLDP relay, dials the controllers on behalf of each agent,
// and pumps virtual network events into the agents.
type Manager struct {
	mutex  sync.Mutex
	agents map[agentKey]*Switch
	state  virtual.QueryService
	events <-chan virtual.Event
}

func NewManager(state virtual.QueryService, events <-chan virtual.Event) *Manager {
	if state == nil {
		panic("state service is nil")
	}

	return &Manager{
		agents: make(map[agentKey]*Switch),
		state:  newNeighbourCache(state, neighbourCacheExpiration),
		events: events,
	}
}

// AddSwitch creates a new agent for a (network, device) pair. The agent is
// registered before it is returned so that LLDP relays from other agents can
// already reach it.
func (r *Manager) AddSwitch(network virtual.NetworkID, device virtual.DeviceID, dpid uint64, capabilities uint32) (*Switch, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := agentKey{network: network, device: device}
	if _, ok := r.agents[key]; ok {
		return nil, fmt.Errorf("duplicated switch agent: network=%v, device=%v", network, device)
	}

	sw := NewSwitch(SwitchConfig{
		DPID:         dpid,
		Capabilities: capabilities,
		Network:      network,
		Device:       device,
		State:        r.state,
		Directory:    r,
	})
	r.agents[key] = sw
	logger.Infof("added a new switch agent: network=%v, device=%v, DPID=%v", network, device, dpid)

	return sw, nil
}

// RemoveSwitch drops the agent of a (network, device) pair. Connections that
// are still running keep their agent alive until their sessions return.
func (r *Manager) RemoveSwitch(network virtual.NetworkID, device virtual.DeviceID) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.agents, agentKey{network: network, device: device})
}

// OFSwitch implements Directory.
func (r *Manager) OFSwitch(network virtual.NetworkID, device virtual.DeviceID) (*Switch, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	sw, ok := r.agents[agentKey{network: network, device: device}]
	return sw, ok
}

// Switches returns a snapshot of all the registered agents.
func (r *Manager) Switches() []*Switch {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	v := make([]*Switch, 0, len(r.agents))
	for _, sw := range r.agents {
		v = append(v, sw)
	}

	return v
}

// Dial keeps one controller connection alive for an agent. It redials after
// a fixed interval whenever the session ends, until the context is canceled.
// Callers run one Dial goroutine per controller address.
func (r *Manager) Dial(ctx context.Context, sw *Switch, address string) {
	type KeepAliver interface {
		SetKeepAlive(keepalive bool) error
		SetKeepAlivePeriod(d time.Duration) error
	}

	for {
		conn, err := net.Dial("tcp", address)
		if err != nil {
			logger.Errorf("failed to connect to the controller %v: %v", address, err)
		} else {
			logger.Infof("connected to the controller %v (DPID=%v)", address, sw.DPID())
			if v, ok := conn.(KeepAliver); ok {
				logger.Debug("trying to enable socket keepalive..")
				if err := v.SetKeepAlive(true); err == nil {
					logger.Debug("setting socket keepalive period..")
					v.SetKeepAlivePeriod(keepAlivePeriod)
				} else {
					logger.Errorf("failed to enable socket keepalive: %v", err)
				}
			}
			newSession(sw, conn).Run(ctx)
		}

		// Check shutdown signal before the redial.
		select {
		case <-ctx.Done():
			logger.Infof("connection dialer for %v is finished by the shutdown signal", address)
			return
		case <-time.After(reconnectInterval):
		}
	}
}

// Run consumes virtual network events and routes them to the affected
// agents. It blocks until the context is canceled or the event channel is
// closed.
func (r *Manager) Run(ctx context.Context) {
	if r.events == nil {
		logger.Debug("no event source; the event loop is disabled")
		return
	}

	for {
		select {
		case e, ok := <-r.events:
			if !ok {
				logger.Info("the virtual network event channel is closed")
				return
			}
			sw, ok := r.OFSwitch(e.Network, e.Device)
			if !ok {
				logger.Debugf("dropping an event for an unknown device: network=%v, device=%v", e.Network, e.Device)
				continue
			}
			if err := sw.processEvent(e); err != nil {
				logger.Errorf("failed to process a %v event: %v", e.Type, err)
			}
		case <-ctx.Done():
			logger.Info("the event loop is finished by the shutdown signal")
			return
		}
	}
}

// neighbourCache memoizes topology neighbour lookups with a TTL so that a
// burst of LLDP probes over the same link does not hammer the query service.
type neighbourCache struct {
	virtual.QueryService
	cache      *lru.Cache
	expiration time.Duration
}

type neighbourEntry struct {
	point     virtual.ConnectPoint
	ok        bool
	timestamp time.Time
}

func newNeighbourCache(state virtual.QueryService, expiration time.Duration) *neighbourCache {
	c, err := lru.New(8192)
	if err != nil {
		panic(fmt.Sprintf("failed to init a LRU neighbour cache: %v", err))
	}

	return &neighbourCache{
		QueryService: state,
		cache:        c,
		expiration:   expiration,
	}
}

func (r *neighbourCache) key(network virtual.NetworkID, device virtual.DeviceID, port virtual.PortNumber) string {
	return fmt.Sprintf("%v/%v/%v", network, device, port)
}

func (r *neighbourCache) Neighbour(network virtual.NetworkID, device virtual.DeviceID, port virtual.PortNumber) (virtual.ConnectPoint, bool, error) {
	key := r.key(network, device, port)

	if v, ok := r.cache.Get(key); ok {
		entry := v.(neighbourEntry)
		if time.Since(entry.timestamp) <= r.expiration {
			return entry.point, entry.ok, nil
		}
		r.cache.Remove(key)
		logger.Debugf("removed the timed-out neighbour cache: key=%v", key)
	}

	point, ok, err := r.QueryService.Neighbour(network, device, port)
	if err != nil {
		return virtual.ConnectPoint{}, false, err
	}
	r.cache.Add(key, neighbourEntry{point: point, ok: ok, timestamp: time.Now()})

	return point, ok, nil
}
