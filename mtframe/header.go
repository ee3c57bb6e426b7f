// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

// CommandCode packs the extension flag, command type, subsystem, and
// command id carried by every MT frame's second and third header bytes.
//
// Wire layout: byte0 = (is_extended<<7) | ((cmd_type&0x3)<<5) | (subsystem&0x1F),
// byte1 = id.
type CommandCode struct {
	IsExtended bool
	CmdType    CommandType
	Subsystem  Subsystem
	Id         byte
}

func decodeCommandCode(c *cursor) (CommandCode, error) {
	b0, err := c.readU8()
	if err != nil {
		return CommandCode{}, err
	}
	b1, err := c.readU8()
	if err != nil {
		return CommandCode{}, err
	}

	cmdType, err := decodeCommandType((b0 >> 5) & 0x03)
	if err != nil {
		return CommandCode{}, err
	}
	subsystem, err := decodeSubsystem(b0 & 0x1F)
	if err != nil {
		return CommandCode{}, err
	}

	return CommandCode{
		IsExtended: b0&0x80 != 0,
		CmdType:    cmdType,
		Subsystem:  subsystem,
		Id:         b1,
	}, nil
}

func (c CommandCode) encodeInto(e *encoder) {
	b0 := ((uint8(c.CmdType) & 0x03) << 5) | (uint8(c.Subsystem) & 0x1F)
	if c.IsExtended {
		b0 |= 0x80
	}
	e.u8(b0).u8(c.Id)
}

// MTHeader is the fixed 3-byte frame header: a payload-length byte followed
// by the 2-byte CommandCode.
type MTHeader struct {
	Length  byte
	Command CommandCode
}

func decodeMTHeader(c *cursor) (MTHeader, error) {
	length, err := c.readU8()
	if err != nil {
		return MTHeader{}, err
	}
	cmd, err := decodeCommandCode(c)
	if err != nil {
		return MTHeader{}, err
	}
	return MTHeader{Length: length, Command: cmd}, nil
}

func (h MTHeader) encodeInto(e *encoder) {
	e.u8(h.Length)
	h.Command.encodeInto(e)
}
