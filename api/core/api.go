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

package core

import (
	"strconv"

	"github.com/hobrien17/onos/agent"
	"github.com/hobrien17/onos/api"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/davecgh/go-spew/spew"
	"github.com/op/go-logging"
)

var (
	logger = logging.MustGetLogger("core")
)

type API struct {
	api.Server
}

func (r *API) Serve() error {
	return r.Server.Serve(
		rest.Get("/api/v1/status", r.status),
		rest.Get("/api/v1/switches", r.listSwitches),
		rest.Get("/api/v1/switches/:dpid/connections", r.listConnections),
	)
}

func (r *API) status(w rest.ResponseWriter, req *rest.Request) {
	logger.Debugf("status request from %v", req.RemoteAddr)

	w.WriteJson(&api.Response{
		Status: api.StatusOkay,
		Data: struct {
			Switches int `json:"switches"`
		}{
			Switches: len(r.Directory.Switches()),
		},
	})
}

type switchStatus struct {
	Network     uint64                   `json:"network_id"`
	Device      string                   `json:"device_id"`
	DPID        uint64                   `json:"dpid"`
	Connections []agent.ConnectionStatus `json:"connections"`
}

func (r *API) listSwitches(w rest.ResponseWriter, req *rest.Request) {
	logger.Debugf("listSwitches request from %v", req.RemoteAddr)

	status := []switchStatus{}
	for _, sw := range r.Directory.Switches() {
		status = append(status, switchStatus{
			Network:     uint64(sw.NetworkID()),
			Device:      string(sw.DeviceID()),
			DPID:        sw.DPID(),
			Connections: sw.Connections(),
		})
	}
	logger.Debugf("listSwitches response to %v: %v", req.RemoteAddr, spew.Sdump(status))

	w.WriteJson(&api.Response{Status: api.StatusOkay, Data: status})
}

func (r *API) listConnections(w rest.ResponseWriter, req *rest.Request) {
	logger.Debugf("listConnections request from %v", req.RemoteAddr)

	dpid, err := strconv.ParseUint(req.PathParam("dpid"), 10, 64)
	if err != nil {
		w.WriteJson(&api.Response{Status: api.StatusInvalidParameter, Message: err.Error()})
		return
	}

	for _, sw := range r.Directory.Switches() {
		if sw.DPID() != dpid {
			continue
		}
		w.WriteJson(&api.Response{Status: api.StatusOkay, Data: sw.Connections()})
		return
	}

	w.WriteJson(&api.Response{Status: api.StatusNotFound, Message: "unknown switch DPID"})
}
