// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRoundTrip(t *testing.T) {
	r := &Init{}
	frame := r.ToMTFrame()
	assert.Equal(t, SubsystemMAC, frame.Header.Command.Subsystem)
	assert.Equal(t, CommandTypeSREQ, frame.Header.Command.CmdType)
	assert.Equal(t, byte(MACCommandIdInit), frame.Header.Command.Id)

	got, err := decodeInit(newCursor(frame.Payload))
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestKeySecurityRoundTrip(t *testing.T) {
	ks := keySecurity{
		KeySource:     KeySource{1, 2, 3, 4, 5, 6, 7, 8},
		SecurityLevel: SecurityLevel(0),
		KeyIdMode:     KeyIdMode(0),
		KeyIndex:      0x01,
	}
	e := newEncoder()
	ks.encodeInto(e)
	got, err := decodeKeySecurity(newCursor(e.bytes()))
	require.NoError(t, err)
	assert.Equal(t, ks, got)
}

func TestAssociateReqRoundTrip(t *testing.T) {
	r := &AssociateReq{
		LogicalChannel: 11,
		ChannelPage:    0,
		PhyId:          PhyId(0),
		CoordAddress:   NewShortAddress(ShortAddress(0x0001)),
		CoordPANId:     0xBEEF,
		CapabilityInfo: 0x80,
		KeySource:      KeySource{},
		SecurityLevel:  SecurityLevel(0),
		KeyIdMode:      KeyIdMode(0),
		KeyIndex:       0,
	}
	frame := r.ToMTFrame()
	got, err := decodeAssociateReq(newCursor(frame.Payload))
	require.NoError(t, err)
	if diff := cmp.Diff(r, got); diff != "" {
		t.Errorf("AssociateReq round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAssociateReqInvalidPhyIdRejected(t *testing.T) {
	e := newEncoder()
	e.u8(11).u8(0).u8(0xff)
	_, err := decodeAssociateReq(newCursor(e.bytes()))
	var mtErr *Error
	require.ErrorAs(t, err, &mtErr)
	assert.Equal(t, ErrKindInvalidPhyId, mtErr.Kind)
}

func TestDataReqIEPayloadSizedByIELengthNotDataLength(t *testing.T) {
	r := &DataReq{
		DestAddress:    NewShortAddress(ShortAddress(0x1234)),
		DestPANId:      0xABCD,
		SrcAddressMode: AddressModeShort,
		Handle:         1,
		TxOption:       TxOptionAck,
		Channel:        11,
		Power:          0,
		KeySource:      KeySource{},
		SecurityLevel:  SecurityLevel(0),
		KeyIdMode:      KeyIdMode(0),
		KeyIndex:       0,
		IncludeFHIEs:   0,
		DataLength:     3,
		IELength:       2,
		DataPayload:    []byte{0x01, 0x02, 0x03},
		IEPayload:      []byte{0xAA, 0xBB},
	}
	got, err := decodeDataReq(newCursor(r.Encode()))
	require.NoError(t, err)
	assert.Equal(t, r.DataPayload, got.DataPayload)
	assert.Equal(t, r.IEPayload, got.IEPayload)
	assert.Len(t, got.IEPayload, int(r.IELength))
}

func TestDataReqSRSPRoundTrip(t *testing.T) {
	r := &DataReqSRSP{Status: StatusSuccess}
	got, err := decodeDataReqSRSP(newCursor(r.Encode()))
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestBeaconNotifyIndInvalidType(t *testing.T) {
	_, err := decodeBeaconNotifyInd(newCursor([]byte{0x02}))
	var mtErr *Error
	require.ErrorAs(t, err, &mtErr)
	assert.Equal(t, ErrKindInvalidBeaconType, mtErr.Kind)
}

func TestMacFrameDerivesLengthFromPayload(t *testing.T) {
	frame := macFrame(CommandTypeSRSP, MACCommandIdInit, []byte{0x00})
	assert.Equal(t, byte(1), frame.Header.Length)
}

func TestBoolByte(t *testing.T) {
	assert.Equal(t, byte(1), boolByte(true))
	assert.Equal(t, byte(0), boolByte(false))
}
