// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

// Topology is the fixed two-port bridge: every frame entering one port
// leaves on the other. No other cardinality is supported.
type Topology struct {
	PortA Port
	PortB Port
}

func (t Topology) ports() [2]Port {
	return [2]Port{t.PortA, t.PortB}
}

// peer returns the egress port for a given ingress port.
func (t Topology) peer(p Port) Port {
	if p == t.PortA {
		return t.PortB
	}

	return t.PortA
}

func (t Topology) validate() error {
	if t.PortA == t.PortB {
		return ErrInvalidArgumentWithReason("topology", t, "bridge ports must differ")
	}

	for _, p := range t.ports() {
		if p > maxGroupPort {
			return ErrOutOfRange("port", p, Port(maxGroupPort))
		}
	}

	return nil
}

func validateNativeVlan(vlan VlanID) error {
	if vlan == 0 || vlan > maxVlanID {
		return ErrInvalidArgumentWithReason("nativeVlan", vlan, "native VLAN must be 1..4095")
	}

	return nil
}

// planFlowEntries computes every flow-table entry of the bridge, in install
// order: the table-miss drop first, then per port the two VLAN assignment
// entries, then the two ACL cross-connect entries. Pure function; the same
// topology and VLAN always yield the same plan.
func planFlowEntries(topo Topology, nativeVlan VlanID) ([]FlowEntry, error) {
	if err := topo.validate(); err != nil {
		return nil, err
	}

	if err := validateNativeVlan(nativeVlan); err != nil {
		return nil, err
	}

	// Unmatched traffic drops in the ACL stage, the pipeline's default
	// table.
	entries := []FlowEntry{{
		TableID:  TableACL,
		Priority: PriorityTableMiss,
	}}

	termMAC, _ := nextTable(TableVLAN)

	for _, port := range topo.ports() {
		// Admit frames already tagged with the native VLAN unchanged.
		entries = append(entries, FlowEntry{
			TableID:  TableVLAN,
			Priority: PriorityVLAN,
			Match:    FlowMatch{InPort: port, Vlan: MatchVlanTagged, VlanID: nativeVlan},
			Goto:     &termMAC,
		})

		// Assign the native VLAN to untagged frames. The forwarding groups
		// only handle tagged frames, so tagging is normalized here, one
		// stage upstream of the forwarding decision.
		entries = append(entries, FlowEntry{
			TableID:  TableVLAN,
			Priority: PriorityVLAN,
			Match:    FlowMatch{InPort: port, Vlan: MatchVlanUntagged},
			Actions:  []Action{SetVlanAction(nativeVlan)},
			Goto:     &termMAC,
		})
	}

	for _, port := range topo.ports() {
		groupID, err := L2InterfaceGroupID(topo.peer(port), nativeVlan)
		if err != nil {
			return nil, err
		}

		// The static cross-connect: the only forwarding decision this
		// pipeline makes.
		entries = append(entries, FlowEntry{
			TableID:  TableACL,
			Priority: PriorityBridge,
			Match:    FlowMatch{InPort: port, Vlan: MatchVlanTagged, VlanID: nativeVlan},
			Actions:  []Action{GroupAction(groupID)},
		})
	}

	return entries, nil
}

// planGroupEntries computes the indirect output groups, one per port. OF-DPA
// forbids raw output actions in ACL entries; these groups are the mandated
// indirection, each stripping the tag on egress.
func planGroupEntries(topo Topology, nativeVlan VlanID) ([]GroupEntry, error) {
	if err := topo.validate(); err != nil {
		return nil, err
	}

	if err := validateNativeVlan(nativeVlan); err != nil {
		return nil, err
	}

	var entries []GroupEntry

	for _, port := range topo.ports() {
		groupID, err := L2InterfaceGroupID(port, nativeVlan)
		if err != nil {
			return nil, err
		}

		entries = append(entries, GroupEntry{
			GroupID: groupID,
			Type:    GroupTypeL2Interface,
			Buckets: []GroupBucket{
				{Actions: []Action{PopVlanAction(), OutputAction(port)}},
			},
		})
	}

	return entries, nil
}
