// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
)

const (
	// Default values
	listenPortDefault = 6653
	httpPortDefault   = "8080"
	nativeVlanDefault = 1
)

// Conf : Json conf struct.
type Conf struct {
	LogLevel log.Level `json:"log_level"`

	OpenFlow OpenFlowInfo `json:"openflow"`
	Bridge   BridgeInfo   `json:"bridge"`

	HTTPPort string `json:"http_port"`
}

// OpenFlowInfo : southbound listener settings.
type OpenFlowInfo struct {
	ListenPort int `json:"listen_port"`
}

// BridgeInfo : the forwarding intent, two ports and the native VLAN.
type BridgeInfo struct {
	PortA      uint32 `json:"port_a"`
	PortB      uint32 `json:"port_b"`
	NativeVlan uint16 `json:"native_vlan"`
}

func (b BridgeInfo) topology() Topology {
	return Topology{PortA: Port(b.PortA), PortB: Port(b.PortB)}
}

// validateConf checks that the given config reaches a baseline of correctness.
func validateConf(conf Conf) error {
	if conf.OpenFlow.ListenPort <= 0 || conf.OpenFlow.ListenPort > 0xFFFF {
		return ErrInvalidArgumentWithReason("conf.OpenFlow.ListenPort", conf.OpenFlow.ListenPort, "invalid TCP port")
	}

	if conf.Bridge.PortA == 0 || conf.Bridge.PortB == 0 {
		return ErrInvalidArgumentWithReason("conf.Bridge", conf.Bridge, "both bridge ports must be set")
	}

	if err := conf.Bridge.topology().validate(); err != nil {
		return err
	}

	if err := validateNativeVlan(VlanID(conf.Bridge.NativeVlan)); err != nil {
		return err
	}

	return nil
}

// LoadConfigFile : parse json file and populate corresponding struct.
func LoadConfigFile(filepath string) (Conf, error) {
	// Read our file into memory.
	byteValue, err := os.ReadFile(filepath)
	if err != nil {
		return Conf{}, err
	}

	var conf Conf

	err = json.Unmarshal(byteValue, &conf)
	if err != nil {
		return Conf{}, err
	}

	// Set defaults, when missing.
	if conf.LogLevel == 0 {
		conf.LogLevel = log.InfoLevel
	}

	if conf.OpenFlow.ListenPort == 0 {
		conf.OpenFlow.ListenPort = listenPortDefault
	}

	if conf.HTTPPort == "" {
		conf.HTTPPort = httpPortDefault
	}

	if conf.Bridge.NativeVlan == 0 {
		conf.Bridge.NativeVlan = nativeVlanDefault
	}

	// Perform basic validation.
	err = validateConf(conf)
	if err != nil {
		return Conf{}, err
	}

	return conf, nil
}
