// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMTCommandErrorRoundTrip(t *testing.T) {
	m := &MTCommandError{
		ErrorCode: ErrorCodeInvalidLength,
		Command:   CommandCode{CmdType: CommandTypeSREQ, Subsystem: SubsystemMAC, Id: 0x41},
	}
	frame := m.ToMTFrame()
	assert.Equal(t, SubsystemRPC, frame.Header.Command.Subsystem)
	assert.Equal(t, CommandTypeSRSP, frame.Header.Command.CmdType)
	assert.Equal(t, byte(RPCCommandIdMTCommandError), frame.Header.Command.Id)
	assert.Equal(t, byte(0x03), frame.Header.Length)

	got, err := decodeMTCommandError(newCursor(frame.Payload))
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestDecodeRPCCommandIdInvalid(t *testing.T) {
	_, err := decodeRPCCommandId(0x99)
	var mtErr *Error
	require.ErrorAs(t, err, &mtErr)
	assert.Equal(t, ErrKindInvalidCommandID, mtErr.Kind)
}
