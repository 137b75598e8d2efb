// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

// TableID identifies a stage of the OF-DPA fixed pipeline.
type TableID uint8

// Pipeline stages used by this controller. The OF-DPA 2.x pipeline has many
// more tables; these are the only ones a VLAN-stripping bridge touches.
const (
	TableVLAN           TableID = 10
	TableTerminationMAC TableID = 20
	TableACL            TableID = 60
)

// Per-class priorities. Each entry class gets its own value so no two
// entries in the same table ever tie.
const (
	PriorityTableMiss uint16 = 0
	PriorityVLAN      uint16 = 3
	PriorityBridge    uint16 = 1000
)

// nextTable returns the goto-successor of a pipeline stage. The graph is
// fixed: VLAN assignment continues into termination MAC, everything else
// terminates in its own stage.
func nextTable(t TableID) (TableID, bool) {
	if t == TableVLAN {
		return TableTerminationMAC, true
	}

	return 0, false
}
