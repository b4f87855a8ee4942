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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/hobrien17/onos/agent"
	"github.com/hobrien17/onos/api"
	"github.com/hobrien17/onos/api/core"
	"github.com/hobrien17/onos/openflow/of13"
	"github.com/hobrien17/onos/virtual"

	"github.com/fsnotify/fsnotify"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	programName     = "ofagentd"
	programVersion  = "0.1.0"
	defaultLogLevel = logging.INFO

	defaultCapabilities = of13.OFPC_FLOW_STATS | of13.OFPC_TABLE_STATS | of13.OFPC_PORT_STATS | of13.OFPC_GROUP_STATS
)

var (
	logger            = logging.MustGetLogger("main")
	loggerLeveled     logging.LeveledBackend
	showVersion       = flag.Bool("version", false, "Show program version and exit")
	defaultConfigFile = flag.String("config", fmt.Sprintf("/usr/local/etc/%v.yaml", programName), "absolute path of the configuration file")
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	flag.Parse()
	if *showVersion {
		fmt.Printf("Version: %v\n", programVersion)
		os.Exit(0)
	}

	initConfig()
	if err := initLog(getLogLevel(viper.GetString("default.log_level"))); err != nil {
		logger.Fatalf("failed to init log: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	networks, err := parseNetworks()
	if err != nil {
		logger.Fatalf("failed to parse the virtual networks: %v", err)
	}
	state := virtual.NewStaticService(networks)
	manager := agent.NewManager(state, state.Events())

	controllers := viper.GetStringSlice("default.controllers")
	for _, n := range networks {
		for _, d := range n.Devices {
			sw, err := manager.AddSwitch(n.ID, d.ID, d.DPID, defaultCapabilities)
			if err != nil {
				logger.Fatalf("failed to add a switch agent: %v", err)
			}
			for _, addr := range controllers {
				go manager.Dial(ctx, sw, addr)
			}
		}
	}

	initAPIServer(manager)
	initSignalHandler(cancel)

	manager.Run(ctx)
}

func initConfig() {
	viper.SetConfigFile(*defaultConfigFile)
	// Read the config file.
	if err := viper.ReadInConfig(); err != nil {
		logger.Fatalf("failed to read the config file: %v", err)
	}
	// Watching and re-reading config file whenever it changes.
	viper.OnConfigChange(func(e fsnotify.Event) {
		// Ignore the WRITE operation to avoid reading empty config.
		if e.Op != fsnotify.Write {
			return
		}

		if loggerLeveled != nil {
			// Set log level for all modules
			loggerLeveled.SetLevel(getLogLevel(viper.GetString("default.log_level")), "")
		}
	})
	viper.WatchConfig()
	if err := validateConfig(); err != nil {
		logger.Fatalf("failed to validate the configuration: %v", err)
	}
}

func validateConfig() error {
	if len(viper.GetString("default.log_level")) == 0 {
		return errors.New("invalid default.log_level")
	}
	if len(viper.GetStringSlice("default.controllers")) == 0 {
		return errors.New("invalid default.controllers")
	}
	if port := viper.GetInt("rest.port"); port <= 0 || port > 0xFFFF {
		return errors.New("invalid rest.port")
	}

	return nil
}

type networkConfig struct {
	ID      uint64
	Devices []deviceConfig
}

type deviceConfig struct {
	ID    string
	DPID  uint64
	Ports []uint32
	Links []linkConfig
}

type linkConfig struct {
	Port       uint32
	PeerDevice string `mapstructure:"peer_device"`
	PeerPort   uint32 `mapstructure:"peer_port"`
}

// parseNetworks builds the static virtual topology from the config file.
func parseNetworks() ([]virtual.StaticNetwork, error) {
	var configs []networkConfig
	if err := viper.UnmarshalKey("networks", &configs); err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, errors.New("no virtual network is configured")
	}

	networks := make([]virtual.StaticNetwork, 0, len(configs))
	for _, n := range configs {
		network := virtual.StaticNetwork{ID: virtual.NetworkID(n.ID)}
		for _, d := range n.Devices {
			if len(d.ID) == 0 || d.DPID == 0 {
				return nil, fmt.Errorf("invalid device in network %v: id=%q, dpid=%v", n.ID, d.ID, d.DPID)
			}
			device := virtual.StaticDevice{
				ID:    virtual.DeviceID(d.ID),
				DPID:  d.DPID,
				Links: make(map[virtual.PortNumber]virtual.ConnectPoint),
			}
			for _, p := range d.Ports {
				device.Ports = append(device.Ports, virtual.Port{Number: virtual.PortNumber(p), Enabled: true})
			}
			for _, l := range d.Links {
				device.Links[virtual.PortNumber(l.Port)] = virtual.ConnectPoint{
					Device: virtual.DeviceID(l.PeerDevice),
					Port:   virtual.PortNumber(l.PeerPort),
				}
			}
			network.Devices = append(network.Devices, device)
		}
		networks = append(networks, network)
	}

	return networks, nil
}

func initAPIServer(manager *agent.Manager) {
	go func() {
		conf := api.Server{}
		conf.Port = uint16(viper.GetInt("rest.port"))
		if viper.GetBool("rest.tls") == true {
			conf.TLS.Cert = viper.GetString("rest.cert_file")
			conf.TLS.Key = viper.GetString("rest.key_file")
		}
		conf.Directory = manager

		srv := &core.API{Server: conf}
		if err := srv.Serve(); err != nil {
			logger.Fatalf("failed to run the API server: %v", err)
		}
	}()
}

func initSignalHandler(cancel context.CancelFunc) {
	go func() {
		c := make(chan os.Signal, 5)
		// All incoming signals will be transferred to the channel
		signal.Notify(c)

		// Infinte loop.
		for {
			s := <-c
			if s == syscall.SIGTERM || s == syscall.SIGINT {
				// Graceful shutdown
				logger.Warning("Shutting down...")
				cancel()
				// Timeout for cancelation
				time.Sleep(5 * time.Second)
				os.Exit(0)
			}
		}
	}()
}

func initLog(level logging.Level) error {
	backend, err := newSyslog(programName)
	if err != nil {
		return err
	}
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(`%{level}: %{shortpkg}.%{shortfunc}: %{message}`))

	loggerLeveled = logging.AddModuleLevel(formatted)
	// Set log level for all modules
	loggerLeveled.SetLevel(level, "")
	logging.SetBackend(loggerLeveled)

	return nil
}

func getLogLevel(level string) logging.Level {
	level = strings.ToUpper(level)
	ret, err := logging.LogLevel(level)
	if err != nil {
		logger.Infof("invalid log level=%v, defaulting to %v..", level, defaultLogLevel)
		return defaultLogLevel
	}

	return ret
}
