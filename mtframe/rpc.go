// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

// RPCCommandId enumerates the RPC subsystem's single command.
type RPCCommandId byte

const RPCCommandIdMTCommandError RPCCommandId = 0x00

func decodeRPCCommandId(v byte) (RPCCommandId, error) {
	if v != byte(RPCCommandIdMTCommandError) {
		return 0, newErrorValue(ErrKindInvalidCommandID, uint32(v))
	}
	return RPCCommandId(v), nil
}

// MTCommandError is the RPC subsystem's sole SRSP: the framework's report
// that a previously received command could not be parsed or dispatched.
type MTCommandError struct {
	ErrorCode ErrorCode
	Command   CommandCode
}

func decodeMTCommandError(c *cursor) (*MTCommandError, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	errorCode, err := decodeErrorCode(b)
	if err != nil {
		return nil, err
	}
	command, err := decodeCommandCode(c)
	if err != nil {
		return nil, err
	}
	return &MTCommandError{ErrorCode: errorCode, Command: command}, nil
}

func (m *MTCommandError) Encode() []byte {
	e := newEncoder()
	e.u8(byte(m.ErrorCode))
	m.Command.encodeInto(e)
	return e.bytes()
}

// ToMTFrame builds the wire frame: RPC/SRSP, id 0x00, a fixed 3-byte
// payload (error code byte plus the 2-byte echoed command code).
func (m *MTCommandError) ToMTFrame() *MTFrame {
	return &MTFrame{
		Header: MTHeader{
			Length: 0x03,
			Command: CommandCode{
				IsExtended: false,
				CmdType:    CommandTypeSRSP,
				Subsystem:  SubsystemRPC,
				Id:         byte(RPCCommandIdMTCommandError),
			},
		},
		Payload: m.Encode(),
	}
}
