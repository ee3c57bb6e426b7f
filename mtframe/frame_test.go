// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandCodeRoundTrip(t *testing.T) {
	cc := CommandCode{IsExtended: true, CmdType: CommandTypeSREQ, Subsystem: SubsystemMAC, Id: 0x41}
	e := newEncoder()
	cc.encodeInto(e)
	got, err := decodeCommandCode(newCursor(e.bytes()))
	require.NoError(t, err)
	assert.Equal(t, cc, got)
}

func TestCommandCodeWireLayout(t *testing.T) {
	cc := CommandCode{IsExtended: false, CmdType: CommandTypeAREQ, Subsystem: SubsystemSYS, Id: 0x80}
	e := newEncoder()
	cc.encodeInto(e)
	assert.Equal(t, []byte{(2 << 5) | 1, 0x80}, e.bytes())
}

func TestMTHeaderRoundTrip(t *testing.T) {
	h := MTHeader{Length: 5, Command: CommandCode{CmdType: CommandTypeSRSP, Subsystem: SubsystemUTIL, Id: 0x12}}
	e := newEncoder()
	h.encodeInto(e)
	got, err := decodeMTHeader(newCursor(e.bytes()))
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestNewMTFrameDerivesLength(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	cc := CommandCode{CmdType: CommandTypeSREQ, Subsystem: SubsystemMAC, Id: 0x41}
	f := NewMTFrame(cc, nil, payload)
	assert.Equal(t, byte(len(payload)), f.Header.Length)
	assert.False(t, f.Header.Command.IsExtended)
}

func TestNewMTFrameSetsIsExtendedFromHeader(t *testing.T) {
	ext := &MTExtendedHeader{Version: 1, StackId: 3}
	cc := CommandCode{CmdType: CommandTypeSREQ, Subsystem: SubsystemMAC, Id: 0x41}
	f := NewMTFrame(cc, ext, nil)
	assert.True(t, f.Header.Command.IsExtended)
}

func TestMTFrameEncodeDecodeRoundTrip(t *testing.T) {
	cc := CommandCode{CmdType: CommandTypeSRSP, Subsystem: SubsystemSYS, Id: 0x02}
	f := NewMTFrame(cc, nil, []byte{0xde, 0xad, 0xbe, 0xef})
	decoded, err := DecodeMTFrame(f.Encode())
	require.NoError(t, err)
	assert.Equal(t, f.Header, decoded.Header)
	assert.Equal(t, f.Payload, decoded.Payload)
	assert.Nil(t, decoded.ExtendedHeader)
}

func TestMTFrameEncodeDecodeRoundTripWithExtendedHeader(t *testing.T) {
	ext := &MTExtendedHeader{Version: 3, StackId: 2, Block: 7, Status: ExtStatusResendLastFrame}
	cc := CommandCode{CmdType: CommandTypeAREQ, Subsystem: SubsystemMAC, Id: 0x05}
	f := NewMTFrame(cc, ext, []byte{0x01, 0x02})
	decoded, err := DecodeMTFrame(f.Encode())
	require.NoError(t, err)
	require.NotNil(t, decoded.ExtendedHeader)
	assert.Equal(t, *ext, *decoded.ExtendedHeader)
	assert.Equal(t, f.Payload, decoded.Payload)
}

func TestMTFrameToUARTFraming(t *testing.T) {
	cc := CommandCode{CmdType: CommandTypeSREQ, Subsystem: SubsystemUTIL, Id: 0x12}
	f := NewMTFrame(cc, nil, []byte{0x01})
	uart := f.ToUART()

	require.True(t, len(uart) >= 2)
	assert.Equal(t, StartOfFrame, uart[0])

	body := uart[1 : len(uart)-1]
	fcs := uart[len(uart)-1]
	assert.Equal(t, ComputeFrameCheckSequence(body), fcs)
	assert.Equal(t, f.Encode(), body)
}

func TestComputeFrameCheckSequence(t *testing.T) {
	assert.Equal(t, byte(0x00), ComputeFrameCheckSequence(nil))
	assert.Equal(t, byte(0x01^0x02^0x03), ComputeFrameCheckSequence([]byte{0x01, 0x02, 0x03}))
}

func TestMTExtendedHeaderV1(t *testing.T) {
	h := MTExtendedHeader{Version: 1, StackId: 5}
	e := newEncoder()
	h.encodeInto(e)
	assert.Equal(t, []byte{(1 << 3) | 5}, e.bytes())

	got, err := decodeMTExtendedHeader(newCursor(e.bytes()))
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestMTExtendedHeaderV2RoundTrip(t *testing.T) {
	h := MTExtendedHeader{Version: 2, StackId: 1, Block: 9, PacketLength: 300}
	e := newEncoder()
	h.encodeInto(e)
	got, err := decodeMTExtendedHeader(newCursor(e.bytes()))
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestMTExtendedHeaderInvalidVersion(t *testing.T) {
	_, err := decodeMTExtendedHeader(newCursor([]byte{0xf8}))
	var mtErr *Error
	require.ErrorAs(t, err, &mtErr)
	assert.Equal(t, ErrKindInvalidExtendedHeaderVersion, mtErr.Kind)
}
