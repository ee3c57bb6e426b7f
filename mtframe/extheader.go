// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

// MTExtendedHeader is a tagged union over four wire versions, discriminated
// by bits 3-7 of its first byte; bits 0-2 of that byte carry StackId in
// every version. V3 and V4 share the same physical layout and are kept as
// distinct tags rather than collapsed, since the version carries
// transport-layer meaning the codec preserves verbatim.
type MTExtendedHeader struct {
	Version      uint8
	StackId      uint8
	Block        uint8   // V2, V3, V4
	PacketLength uint16  // V2 only
	Status       MTExtendedHeaderStatus // V3, V4 only
}

func decodeMTExtendedHeader(c *cursor) (MTExtendedHeader, error) {
	first, err := c.readU8()
	if err != nil {
		return MTExtendedHeader{}, err
	}
	version := first >> 3
	stackId := first & 0x07

	h := MTExtendedHeader{Version: version, StackId: stackId}

	switch version {
	case 1:
		// 1 byte total, nothing further to read.
	case 2:
		block, err := c.readU8()
		if err != nil {
			return MTExtendedHeader{}, err
		}
		packetLength, err := c.readU16LE()
		if err != nil {
			return MTExtendedHeader{}, err
		}
		h.Block = block
		h.PacketLength = packetLength
	case 3, 4:
		block, err := c.readU8()
		if err != nil {
			return MTExtendedHeader{}, err
		}
		statusByte, err := c.readU8()
		if err != nil {
			return MTExtendedHeader{}, err
		}
		status, err := decodeExtStatus(statusByte)
		if err != nil {
			return MTExtendedHeader{}, err
		}
		h.Block = block
		h.Status = status
	default:
		return MTExtendedHeader{}, newErrorValue(ErrKindInvalidExtendedHeaderVersion, uint32(version))
	}

	return h, nil
}

func (h MTExtendedHeader) encodeInto(e *encoder) {
	first := (h.Version << 3) | (h.StackId & 0x07)
	e.u8(first)
	switch h.Version {
	case 2:
		e.u8(h.Block).u16le(h.PacketLength)
	case 3, 4:
		e.u8(h.Block).u8(byte(h.Status))
	}
}
