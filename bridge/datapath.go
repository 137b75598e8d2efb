// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

import (
	"github.com/Kmotiko/gofc"
	"github.com/Kmotiko/gofc/ofprotocol/ofp13"
)

// datapath is the write-only seam to one connected switch. The provisioner
// drives it; the production implementation speaks OpenFlow, tests record the
// call trace in memory.
type datapath interface {
	// ID returns the switch's datapath id, for logs and errors.
	ID() uint64
	/* install one flow entry */
	ApplyFlow(fe FlowEntry) error
	/* install one group entry */
	ApplyGroup(ge GroupEntry) error
	/* delete every flow entry across all tables */
	WipeFlows() error
	/* delete every group */
	WipeGroups() error
	// Barrier forces the switch to finish all preceding mutations before
	// processing later ones.
	Barrier() error
}

// ofDatapath adapts a gofc switch connection to the datapath seam. It is
// owned by exactly one provisioning cycle at a time.
type ofDatapath struct {
	dp   *gofc.Datapath
	dpid uint64
}

func newOFDatapath(dp *gofc.Datapath, dpid uint64) *ofDatapath {
	return &ofDatapath{dp: dp, dpid: dpid}
}

func (d *ofDatapath) ID() uint64 {
	return d.dpid
}

func (d *ofDatapath) send(op string, msg ofp13.OFMessage) error {
	if !d.dp.Send(msg) {
		return ErrTransport(op, d.dpid)
	}

	return nil
}

func (d *ofDatapath) ApplyFlow(fe FlowEntry) error {
	fm, err := buildFlowMod(fe)
	if err != nil {
		return err
	}

	return d.send("flow add", fm)
}

func (d *ofDatapath) ApplyGroup(ge GroupEntry) error {
	gm, err := buildGroupMod(ge)
	if err != nil {
		return err
	}

	return d.send("group add", gm)
}

func (d *ofDatapath) WipeFlows() error {
	return d.send("flow wipe", buildFlowWipe())
}

func (d *ofDatapath) WipeGroups() error {
	return d.send("group wipe", buildGroupWipe())
}

func (d *ofDatapath) Barrier() error {
	return d.send("barrier", ofp13.NewOfpBarrierRequest())
}
