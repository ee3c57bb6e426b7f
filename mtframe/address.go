// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

// ShortAddress is a 16-bit IEEE 802.15.4 address, little-endian on the wire.
type ShortAddress uint16

func decodeShortAddress(c *cursor) (ShortAddress, error) {
	v, err := c.readU16LE()
	return ShortAddress(v), err
}

func (a ShortAddress) encodeInto(e *encoder) {
	e.u16le(uint16(a))
}

// ExtendedAddress is a 64-bit IEEE 802.15.4 address, stored in memory in
// natural order but carried byte-reversed on the wire.
type ExtendedAddress [8]byte

func decodeExtendedAddress(c *cursor) (ExtendedAddress, error) {
	var a ExtendedAddress
	b, err := c.readFixedReversed(8)
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

func (a ExtendedAddress) encodeInto(e *encoder) {
	e.fixedReversed(a[:])
}

// Address is the AddressMode-discriminated short/extended union. A short
// address is zero-padded to the 8-byte union width used by the device; the
// padding is discarded on decode and written as zero on encode.
type Address struct {
	Mode     AddressMode
	Short    ShortAddress
	Extended ExtendedAddress
}

func NewShortAddress(a ShortAddress) Address {
	return Address{Mode: AddressModeShort, Short: a}
}

func NewExtendedAddress(a ExtendedAddress) Address {
	return Address{Mode: AddressModeExtended, Extended: a}
}

func decodeAddress(c *cursor) (Address, error) {
	raw, err := c.readU8()
	if err != nil {
		return Address{}, err
	}
	mode, err := decodeAddressMode(raw)
	if err != nil {
		return Address{}, err
	}
	switch mode {
	case AddressModeShort:
		short, err := decodeShortAddress(c)
		if err != nil {
			return Address{}, err
		}
		if _, err := c.readFixed(6); err != nil {
			return Address{}, err
		}
		return NewShortAddress(short), nil
	case AddressModeExtended:
		ext, err := decodeExtendedAddress(c)
		if err != nil {
			return Address{}, err
		}
		return NewExtendedAddress(ext), nil
	default:
		return Address{}, newErrorValue(ErrKindInvalidAddressMode, uint32(raw))
	}
}

func (a Address) encodeInto(e *encoder) {
	e.u8(byte(a.Mode))
	switch a.Mode {
	case AddressModeShort:
		a.Short.encodeInto(e)
		e.fixed(make([]byte, 6))
	case AddressModeExtended:
		a.Extended.encodeInto(e)
	}
}

// KeySource is an 8-byte security key source, byte-reversed on the wire.
type KeySource [8]byte

func decodeKeySource(c *cursor) (KeySource, error) {
	var k KeySource
	b, err := c.readFixedReversed(8)
	if err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

func (k KeySource) encodeInto(e *encoder) {
	e.fixedReversed(k[:])
}

// ChannelsBitMap is a 17-byte channel bitmap, byte-reversed on the wire.
type ChannelsBitMap [17]byte

func decodeChannelsBitMap(c *cursor) (ChannelsBitMap, error) {
	var m ChannelsBitMap
	b, err := c.readFixedReversed(17)
	if err != nil {
		return m, err
	}
	copy(m[:], b)
	return m, nil
}

func (m ChannelsBitMap) encodeInto(e *encoder) {
	e.fixedReversed(m[:])
}

// decodeFixedReversed/encodeFixedReversed cover the remaining byte-reversed arrays
// used by MAC PIB values, security keys, and key-lookup data, without
// introducing a fixed-size array type per distinct field width.

func decodeFixedReversed(c *cursor, n int) ([]byte, error) {
	return c.readFixedReversed(n)
}

func encodeFixedReversed(e *encoder, b []byte) {
	e.fixedReversed(b)
}
