// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

import (
	"fmt"
	"sync"

	"github.com/Kmotiko/gofc"
	"github.com/Kmotiko/gofc/ofprotocol/ofp13"
	log "github.com/sirupsen/logrus"

	"github.com/atriumos/ofdpa-bridge/bridge/metrics"
)

// ofController is the gofc application. Every switch that completes the
// OpenFlow handshake lands in HandleSwitchFeatures exactly once per
// connection, which is the trigger for one provisioning cycle.
type ofController struct {
	topo       Topology
	nativeVlan VlanID

	insts metrics.InstrumentProvision

	mu       sync.Mutex
	sessions map[uint64]*metrics.Session
}

func newOFController(conf Conf, insts metrics.InstrumentProvision) *ofController {
	return &ofController{
		topo:       conf.Bridge.topology(),
		nativeVlan: VlanID(conf.Bridge.NativeVlan),
		insts:      insts,
		sessions:   make(map[uint64]*metrics.Session),
	}
}

func (c *ofController) HandleSwitchFeatures(msg *ofp13.OfpSwitchFeatures, dp *gofc.Datapath) {
	dpid := msg.DatapathId

	log.Infof("Configuring new datapath 0x%x", dpid)

	c.trackSession(dpid)

	cycle := metrics.NewCycle(fmt.Sprintf("0x%x", dpid))

	err := provision(newOFDatapath(dp, dpid), c.topo, c.nativeVlan)
	if err != nil {
		// The switch may hold partial state now. No retry here: the next
		// connect wipes and rebuilds everything.
		log.WithFields(log.Fields{
			"datapath": fmt.Sprintf("0x%x", dpid),
		}).Errorln("provisioning aborted:", err)

		cycle.Finish("failure")
		c.insts.SaveCycles(cycle)

		return
	}

	cycle.Finish("success")
	c.insts.SaveCycles(cycle)
}

// trackSession opens a session record for the datapath, closing the
// previous one first when the switch reconnected.
func (c *ofController) trackSession(dpid uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := fmt.Sprintf("0x%x", dpid)

	if prev, ok := c.sessions[dpid]; ok {
		prev.Delete()
		c.insts.SaveSessions(prev)
	}

	sess := metrics.NewSession(key)
	c.sessions[dpid] = sess
	c.insts.SaveSessions(sess)
}
