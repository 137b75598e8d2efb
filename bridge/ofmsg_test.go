// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

import (
	"testing"

	"github.com/Kmotiko/gofc/ofprotocol/ofp13"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFlowMod(t *testing.T) {
	t.Run("bridging entry", func(t *testing.T) {
		groupID, err := L2InterfaceGroupID(2, 1)
		require.NoError(t, err)

		fm, err := buildFlowMod(FlowEntry{
			TableID:  TableACL,
			Priority: PriorityBridge,
			Match:    FlowMatch{InPort: 1, Vlan: MatchVlanTagged, VlanID: 1},
			Actions:  []Action{GroupAction(groupID)},
		})
		require.NoError(t, err)

		assert.Equal(t, uint8(TableACL), fm.TableId)
		assert.Equal(t, uint8(ofp13.OFPFC_ADD), fm.Command)
		assert.Equal(t, PriorityBridge, fm.Priority)

		require.Len(t, fm.Match.OxmFields, 2)

		inPort, ok := fm.Match.OxmFields[0].(*ofp13.OxmInPort)
		require.True(t, ok)
		assert.Equal(t, uint32(1), inPort.Value)

		vlan, ok := fm.Match.OxmFields[1].(*ofp13.OxmVlanVid)
		require.True(t, ok)
		assert.Equal(t, uint16(1|ofp13.OFPVID_PRESENT), vlan.Value)

		require.Len(t, fm.Instructions, 1)

		apply, ok := fm.Instructions[0].(*ofp13.OfpInstructionActions)
		require.True(t, ok)
		require.Len(t, apply.Actions, 1)

		group, ok := apply.Actions[0].(*ofp13.OfpActionGroup)
		require.True(t, ok)
		assert.Equal(t, groupID, group.GroupId)
	})

	t.Run("untagged vlan assignment entry carries goto", func(t *testing.T) {
		termMAC := TableTerminationMAC

		fm, err := buildFlowMod(FlowEntry{
			TableID:  TableVLAN,
			Priority: PriorityVLAN,
			Match:    FlowMatch{InPort: 2, Vlan: MatchVlanUntagged},
			Actions:  []Action{SetVlanAction(1)},
			Goto:     &termMAC,
		})
		require.NoError(t, err)

		require.Len(t, fm.Match.OxmFields, 2)

		vlan, ok := fm.Match.OxmFields[1].(*ofp13.OxmVlanVid)
		require.True(t, ok)
		assert.Equal(t, uint16(ofp13.OFPVID_NONE), vlan.Value)

		require.Len(t, fm.Instructions, 2)

		gotoTable, ok := fm.Instructions[1].(*ofp13.OfpInstructionGotoTable)
		require.True(t, ok)
		assert.Equal(t, uint8(TableTerminationMAC), gotoTable.TableId)
	})

	t.Run("table-miss entry has empty match and empty action list", func(t *testing.T) {
		fm, err := buildFlowMod(FlowEntry{TableID: TableACL, Priority: PriorityTableMiss})
		require.NoError(t, err)

		assert.Empty(t, fm.Match.OxmFields)
		assert.Equal(t, PriorityTableMiss, fm.Priority)

		require.Len(t, fm.Instructions, 1)

		apply, ok := fm.Instructions[0].(*ofp13.OfpInstructionActions)
		require.True(t, ok)
		assert.Empty(t, apply.Actions)
	})
}

func TestBuildGroupMod(t *testing.T) {
	t.Run("L2 interface group", func(t *testing.T) {
		groupID, err := L2InterfaceGroupID(1, 1)
		require.NoError(t, err)

		gm, err := buildGroupMod(GroupEntry{
			GroupID: groupID,
			Type:    GroupTypeL2Interface,
			Buckets: []GroupBucket{
				{Actions: []Action{PopVlanAction(), OutputAction(1)}},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, uint16(ofp13.OFPGC_ADD), gm.Command)
		assert.Equal(t, uint8(ofp13.OFPGT_INDIRECT), gm.Type)
		assert.Equal(t, groupID, gm.GroupId)

		require.Len(t, gm.Buckets, 1)
		require.Len(t, gm.Buckets[0].Actions, 2)

		assert.Equal(t, uint16(ofp13.OFPAT_POP_VLAN), gm.Buckets[0].Actions[0].OfpActionType())

		output, ok := gm.Buckets[0].Actions[1].(*ofp13.OfpActionOutput)
		require.True(t, ok)
		assert.Equal(t, uint32(1), output.Port)
	})

	t.Run("unsupported group kinds are rejected", func(t *testing.T) {
		_, err := buildGroupMod(GroupEntry{GroupID: 1, Type: GroupTypeL2UnfilteredInterface})
		require.ErrorIs(t, err, errInvalidArgument)
	})
}

func TestBuildWipes(t *testing.T) {
	t.Run("flow wipe spans all tables, ports and groups", func(t *testing.T) {
		fm := buildFlowWipe()

		assert.Equal(t, uint8(ofp13.OFPFC_DELETE), fm.Command)
		assert.Equal(t, uint8(ofp13.OFPTT_ALL), fm.TableId)
		assert.Equal(t, uint32(ofp13.OFPP_ANY), fm.OutPort)
		assert.Equal(t, uint32(ofp13.OFPG_ANY), fm.OutGroup)
		assert.Empty(t, fm.Match.OxmFields)
	})

	t.Run("group wipe deletes all groups in one shot", func(t *testing.T) {
		gm := buildGroupWipe()

		assert.Equal(t, uint16(ofp13.OFPGC_DELETE), gm.Command)
		assert.Equal(t, uint32(ofp13.OFPG_ALL), gm.GroupId)
		assert.Empty(t, gm.Buckets)
	})
}
