// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

// Port is an OpenFlow port number. Group-id encoding limits usable ports to
// 16 bits.
type Port uint32

// VlanID is a 12-bit 802.1Q VLAN identifier.
type VlanID uint16

const maxVlanID VlanID = 0xFFF

// MatchVlan selects the VLAN condition of a flow match.
type MatchVlan uint8

const (
	// MatchVlanAny puts no VLAN condition on the match.
	MatchVlanAny MatchVlan = iota
	// MatchVlanTagged matches frames carrying exactly the given VLAN tag.
	MatchVlanTagged
	// MatchVlanUntagged matches frames with no 802.1Q tag at all.
	MatchVlanUntagged
)

// FlowMatch is the match predicate of a flow entry. The zero value matches
// every packet (the table-miss form). InPort 0 means any ingress port.
type FlowMatch struct {
	InPort Port
	Vlan   MatchVlan
	VlanID VlanID
}

// ActionType enumerates the packet actions the pipeline compiler emits.
type ActionType uint8

const (
	ActionSetVlan ActionType = iota
	ActionPopVlan
	ActionOutput
	ActionGroup
)

func (a ActionType) String() string {
	switch a {
	case ActionSetVlan:
		return "set-vlan"
	case ActionPopVlan:
		return "pop-vlan"
	case ActionOutput:
		return "output"
	case ActionGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Action is one packet action. Only the operand matching the type is
// meaningful.
type Action struct {
	Type    ActionType
	VlanID  VlanID
	Port    Port
	GroupID uint32
}

// SetVlanAction assigns the VLAN id via set-field. OF-DPA treats this as the
// VLAN assignment primitive for untagged ingress traffic; it is not a tag
// push.
func SetVlanAction(vlan VlanID) Action {
	return Action{Type: ActionSetVlan, VlanID: vlan}
}

func PopVlanAction() Action {
	return Action{Type: ActionPopVlan}
}

func OutputAction(port Port) Action {
	return Action{Type: ActionOutput, Port: port}
}

func GroupAction(groupID uint32) Action {
	return Action{Type: ActionGroup, GroupID: groupID}
}

// FlowEntry is one match/action table entry, pure data until the datapath
// layer turns it into a wire message.
type FlowEntry struct {
	TableID  TableID
	Priority uint16
	Match    FlowMatch
	Actions  []Action
	Goto     *TableID
}

// GroupBucket is one ordered action list of a group.
type GroupBucket struct {
	Actions []Action
}

// GroupEntry is one group-table entry.
type GroupEntry struct {
	GroupID uint32
	Type    GroupType
	Buckets []GroupBucket
}

// groupRefs returns the ids of all groups the entry's actions point at.
func (fe FlowEntry) groupRefs() []uint32 {
	var refs []uint32

	for _, act := range fe.Actions {
		if act.Type == ActionGroup {
			refs = append(refs, act.GroupID)
		}
	}

	return refs
}
