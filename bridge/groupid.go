// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

// GroupType is the OF-DPA group kind packed into the top nibble of a group
// id. Values range 0..12; this controller only installs L2 interface groups.
type GroupType uint8

const (
	GroupTypeL2Interface           GroupType = 0
	GroupTypeL2UnfilteredInterface GroupType = 11

	maxGroupType GroupType = 12
)

const (
	maxGroupMid  = 0xFFF
	maxGroupPort = 0xFFFF

	groupMidOffset  = 16
	groupTypeOffset = 28
)

// EncodeGroupID packs an OF-DPA group id:
// bits 0..15 port, bits 16..27 VLAN or reserved, bits 28..31 type.
// Any field over its bound is rejected, never truncated.
func EncodeGroupID(gtype GroupType, mid uint16, port Port) (uint32, error) {
	if gtype > maxGroupType {
		return 0, ErrOutOfRange("group type", gtype, maxGroupType)
	}

	if mid > maxGroupMid {
		return 0, ErrOutOfRange("group mid", mid, maxGroupMid)
	}

	if port > maxGroupPort {
		return 0, ErrOutOfRange("group port", port, maxGroupPort)
	}

	return uint32(port) | uint32(mid)<<groupMidOffset | uint32(gtype)<<groupTypeOffset, nil
}

// DecodeGroupID unpacks a group id into its type, mid and port fields. Every
// 32-bit pattern decodes; patterns this controller never emits included.
func DecodeGroupID(id uint32) (GroupType, uint16, Port) {
	gtype := GroupType(id >> groupTypeOffset)
	mid := uint16(id >> groupMidOffset & maxGroupMid)
	port := Port(id & maxGroupPort)

	return gtype, mid, port
}

// L2InterfaceGroupID builds the id of the indirect group that strips the
// VLAN tag and outputs on the given port.
func L2InterfaceGroupID(port Port, vlan VlanID) (uint32, error) {
	return EncodeGroupID(GroupTypeL2Interface, uint16(vlan), port)
}

// L2UnfilteredInterfaceGroupID builds the id of an unfiltered interface
// group. The current planners never emit one, but the id form is part of the
// OF-DPA group vocabulary.
func L2UnfilteredInterfaceGroupID(port Port) (uint32, error) {
	return EncodeGroupID(GroupTypeL2UnfilteredInterface, 0, port)
}
