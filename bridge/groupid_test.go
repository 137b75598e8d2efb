// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeGroupID(t *testing.T) {
	type args struct {
		gtype GroupType
		mid   uint16
		port  Port
	}

	tests := []struct {
		name    string
		args    args
		want    uint32
		wantErr bool
	}{
		{name: "L2 interface group, port 1, vlan 1",
			args: args{gtype: GroupTypeL2Interface, mid: 1, port: 1},
			want: 0x00010001,
		},
		{name: "L2 interface group, port 2, vlan 1",
			args: args{gtype: GroupTypeL2Interface, mid: 1, port: 2},
			want: 0x00010002,
		},
		{name: "unfiltered interface type in top nibble",
			args: args{gtype: GroupTypeL2UnfilteredInterface, mid: 0, port: 5},
			want: 0xB0000005,
		},
		{name: "max valid fields",
			args: args{gtype: maxGroupType, mid: 0xFFF, port: 0xFFFF},
			want: 0xCFFFFFFF,
		},
		{name: "type over bound",
			args:    args{gtype: 13, mid: 0, port: 0},
			wantErr: true,
		},
		{name: "mid over bound",
			args:    args{gtype: 0, mid: 0x1000, port: 0},
			wantErr: true,
		},
		{name: "port over bound",
			args:    args{gtype: 0, mid: 0, port: 0x10000},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeGroupID(tt.args.gtype, tt.args.mid, tt.args.port)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errOutOfRange)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeGroupID(t *testing.T) {
	t.Run("round-trip over valid field combinations", func(t *testing.T) {
		for _, gtype := range []GroupType{0, 1, 6, 11, 12} {
			for _, mid := range []uint16{0, 1, 0x7FF, 0xFFF} {
				for _, port := range []Port{0, 1, 2, 0x1234, 0xFFFF} {
					id, err := EncodeGroupID(gtype, mid, port)
					require.NoError(t, err)

					gotType, gotMid, gotPort := DecodeGroupID(id)
					require.Equal(t, gtype, gotType)
					require.Equal(t, mid, gotMid)
					require.Equal(t, port, gotPort)
				}
			}
		}
	})

	t.Run("decode is total", func(t *testing.T) {
		// Patterns the planners never produce still decode.
		gtype, mid, port := DecodeGroupID(0xFFFFFFFF)
		require.Equal(t, GroupType(0xF), gtype)
		require.Equal(t, uint16(0xFFF), mid)
		require.Equal(t, Port(0xFFFF), port)
	})
}

func TestGroupIDConstructors(t *testing.T) {
	t.Run("L2 interface group id", func(t *testing.T) {
		id, err := L2InterfaceGroupID(2, 1)
		require.NoError(t, err)
		require.Equal(t, uint32(0x00010002), id)
	})

	t.Run("L2 unfiltered interface group id", func(t *testing.T) {
		id, err := L2UnfilteredInterfaceGroupID(3)
		require.NoError(t, err)
		require.Equal(t, uint32(0xB0000003), id)
	})

	t.Run("vlan out of range is rejected", func(t *testing.T) {
		_, err := L2InterfaceGroupID(1, 0x1000)
		require.ErrorIs(t, err, errOutOfRange)
	})
}
