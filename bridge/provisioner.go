// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"
	log "github.com/sirupsen/logrus"
)

type provisionPhase int

const (
	phaseWipe provisionPhase = iota
	phaseTableMiss
	phaseGroups
	phaseFlows
)

func (p provisionPhase) String() string {
	if p == phaseWipe {
		return "wipe"
	} else if p == phaseTableMiss {
		return "table-miss"
	} else if p == phaseGroups {
		return "groups"
	} else if p == phaseFlows {
		return "flows"
	} else {
		return "unknown"
	}
}

func phaseError(phase provisionPhase, err error) error {
	return fmt.Errorf("provision phase %s: %w", phase, err)
}

// provision runs one full re-provisioning cycle against a freshly connected
// switch. Four phases, each a precondition for the next: wipe all prior
// state, install the table-miss drop, install the output groups, install the
// remaining flows. The first transport failure aborts the cycle; the switch
// self-heals on its next connect because the wipe always runs first, which
// also makes back-to-back cycles converge to the same installed set.
func provision(dp datapath, topo Topology, nativeVlan VlanID) error {
	provLog := log.WithFields(log.Fields{
		"datapath":   fmt.Sprintf("0x%x", dp.ID()),
		"topology":   topo,
		"nativeVlan": nativeVlan,
	})

	flows, err := planFlowEntries(topo, nativeVlan)
	if err != nil {
		return err
	}

	groups, err := planGroupEntries(topo, nativeVlan)
	if err != nil {
		return err
	}

	if err := checkGroupRefs(flows, groups); err != nil {
		return err
	}

	// Phase 1: wipe. The barrier sequences the deletes ahead of every
	// install, so a stale delete can never land on fresh state.
	provLog.Debugln("wiping flow and group state")

	if err := dp.WipeFlows(); err != nil {
		return phaseError(phaseWipe, err)
	}

	if err := dp.WipeGroups(); err != nil {
		return phaseError(phaseWipe, err)
	}

	if err := dp.Barrier(); err != nil {
		return phaseError(phaseWipe, err)
	}

	// Phase 2: table-miss. planFlowEntries puts it first.
	if err := dp.ApplyFlow(flows[0]); err != nil {
		return phaseError(phaseTableMiss, err)
	}

	// Phase 3: groups, strictly before any flow that references them by id.
	for _, ge := range groups {
		if err := dp.ApplyGroup(ge); err != nil {
			return fmt.Errorf("group 0x%x: %w", ge.GroupID, phaseError(phaseGroups, err))
		}
	}

	// Phase 4: the remaining flows.
	for _, fe := range flows[1:] {
		if err := dp.ApplyFlow(fe); err != nil {
			return fmt.Errorf("table %d: %w", fe.TableID, phaseError(phaseFlows, err))
		}
	}

	provLog.WithFields(log.Fields{
		"flows":  len(flows),
		"groups": len(groups),
	}).Infoln("datapath provisioned")

	return nil
}

// checkGroupRefs verifies the two plans against each other: every group id a
// flow action points at must be produced by the group plan.
func checkGroupRefs(flows []FlowEntry, groups []GroupEntry) error {
	planned := mapset.NewSet()
	for _, ge := range groups {
		planned.Add(ge.GroupID)
	}

	for _, fe := range flows {
		for _, ref := range fe.groupRefs() {
			if !planned.Contains(ref) {
				return ErrNotFoundWithParam("referenced group", "id", fmt.Sprintf("0x%x", ref))
			}
		}
	}

	return nil
}
