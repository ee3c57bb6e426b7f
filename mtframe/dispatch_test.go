// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchRPC(t *testing.T) {
	m := &MTCommandError{
		ErrorCode: ErrorCodeInvalidCommandId,
		Command:   CommandCode{CmdType: CommandTypeAREQ, Subsystem: SubsystemSYS, Id: 0x01},
	}
	cmd, err := Dispatch(m.ToMTFrame())
	require.NoError(t, err)
	assert.Equal(t, m, cmd)
}

func TestDispatchUTIL(t *testing.T) {
	r := &CallbackSubCmdSREQ{SubsystemId: SubsystemIdMAC, Enables: 0xff}
	cmd, err := Dispatch(r.ToMTFrame())
	require.NoError(t, err)
	assert.Equal(t, r, cmd)
}

func TestDispatchMACInit(t *testing.T) {
	r := &Init{}
	cmd, err := Dispatch(r.ToMTFrame())
	require.NoError(t, err)
	assert.Equal(t, r, cmd)
}

func TestDispatchMACInitSRSP(t *testing.T) {
	r := &InitSRSP{Status: StatusSuccess}
	cmd, err := Dispatch(r.ToMTFrame())
	require.NoError(t, err)
	assert.Equal(t, r, cmd)
}

func TestDispatchInvalidSubsystem(t *testing.T) {
	frame := &MTFrame{Header: MTHeader{Command: CommandCode{Subsystem: Subsystem(0x1f)}}}
	_, err := Dispatch(frame)
	require.Error(t, err)
	var mtErr *Error
	require.ErrorAs(t, err, &mtErr)
	assert.Equal(t, ErrKindInvalidSubsystem, mtErr.Kind)
}

func TestDispatchMACPollNotImplemented(t *testing.T) {
	frame := &MTFrame{
		Header: MTHeader{
			Command: CommandCode{CmdType: CommandTypePoll, Subsystem: SubsystemMAC, Id: byte(MACCommandIdInit)},
		},
	}
	_, err := Dispatch(frame)
	require.True(t, errors.Is(err, ErrNotImplemented))
}

func TestDispatchUnknownIdReturnsInvalidCommandID(t *testing.T) {
	frame := &MTFrame{
		Header: MTHeader{
			Command: CommandCode{CmdType: CommandTypeSREQ, Subsystem: SubsystemMAC, Id: 0xfe},
		},
	}
	_, err := Dispatch(frame)
	var mtErr *Error
	require.ErrorAs(t, err, &mtErr)
	assert.Equal(t, ErrKindInvalidCommandID, mtErr.Kind)
}

func TestDispatchWrapsErrorWithContext(t *testing.T) {
	frame := &MTFrame{
		Header: MTHeader{
			Command: CommandCode{CmdType: CommandTypeSREQ, Subsystem: SubsystemMAC, Id: 0xfe},
		},
	}
	_, err := Dispatch(frame)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dispatch subsystem=")
}
