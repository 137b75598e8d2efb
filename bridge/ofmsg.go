// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

import (
	"github.com/Kmotiko/gofc/ofprotocol/ofp13"
)

// Translation of the planner's pure entries into OpenFlow 1.3 messages.
// Nothing here talks to a switch; the datapath layer does the sending.

func buildMatch(m FlowMatch) *ofp13.OfpMatch {
	match := ofp13.NewOfpMatch()

	if m.InPort != 0 {
		match.Append(ofp13.NewOxmInPort(uint32(m.InPort)))
	}

	switch m.Vlan {
	case MatchVlanTagged:
		match.Append(ofp13.NewOxmVlanVid(uint16(m.VlanID) | ofp13.OFPVID_PRESENT))
	case MatchVlanUntagged:
		match.Append(ofp13.NewOxmVlanVid(ofp13.OFPVID_NONE))
	case MatchVlanAny:
	}

	return match
}

func buildAction(act Action) (ofp13.OfpAction, error) {
	switch act.Type {
	case ActionSetVlan:
		return ofp13.NewOfpActionSetField(ofp13.NewOxmVlanVid(uint16(act.VlanID))), nil
	case ActionPopVlan:
		return ofp13.NewOfpActionPopVlan(0), nil
	case ActionOutput:
		return ofp13.NewOfpActionOutput(uint32(act.Port), 0), nil
	case ActionGroup:
		return ofp13.NewOfpActionGroup(act.GroupID), nil
	default:
		return nil, ErrInvalidArgument("action type", act.Type)
	}
}

// buildFlowMod turns a flow entry into an OFPFC_ADD flow mod. The apply-
// actions instruction is always emitted, even empty: the table-miss drop
// entry is exactly an empty action list.
func buildFlowMod(fe FlowEntry) (*ofp13.OfpFlowMod, error) {
	applyActions := ofp13.NewOfpInstructionActions(ofp13.OFPIT_APPLY_ACTIONS)

	for _, act := range fe.Actions {
		action, err := buildAction(act)
		if err != nil {
			return nil, err
		}

		applyActions.Actions = append(applyActions.Actions, action)
	}

	instructions := []ofp13.OfpInstruction{applyActions}

	if fe.Goto != nil {
		instructions = append(instructions, ofp13.NewOfpInstructionGotoTable(uint8(*fe.Goto)))
	}

	return ofp13.NewOfpFlowModAdd(0, 0, uint8(fe.TableID), fe.Priority, 0,
		buildMatch(fe.Match), instructions), nil
}

func buildGroupMod(ge GroupEntry) (*ofp13.OfpGroupMod, error) {
	if ge.Type != GroupTypeL2Interface {
		return nil, ErrInvalidArgument("group type", ge.Type)
	}

	gm := ofp13.NewOfpGroupMod(ofp13.OFPGC_ADD, ofp13.OFPGT_INDIRECT, ge.GroupID)

	for _, bucket := range ge.Buckets {
		bkt := ofp13.NewOfpBucket(0, ofp13.OFPP_ANY, ofp13.OFPG_ANY)

		for _, act := range bucket.Actions {
			action, err := buildAction(act)
			if err != nil {
				return nil, err
			}

			bkt.Actions = append(bkt.Actions, action)
		}

		gm.Buckets = append(gm.Buckets, bkt)
	}

	return gm, nil
}

// buildFlowWipe deletes every flow entry in every table.
func buildFlowWipe() *ofp13.OfpFlowMod {
	fm := ofp13.NewOfpFlowModAdd(0, 0, ofp13.OFPTT_ALL, 0, 0, ofp13.NewOfpMatch(), nil)
	fm.Command = ofp13.OFPFC_DELETE
	fm.OutPort = ofp13.OFPP_ANY
	fm.OutGroup = ofp13.OFPG_ANY

	return fm
}

// buildGroupWipe deletes every group in one shot. Safe only while no group
// references another group; the planners keep that invariant by emitting
// indirect groups exclusively. Any extension that chains groups must switch
// to dependency-ordered deletion.
func buildGroupWipe() *ofp13.OfpGroupMod {
	return ofp13.NewOfpGroupMod(ofp13.OFPGC_DELETE, ofp13.OFPGT_ALL, ofp13.OFPG_ALL)
}
