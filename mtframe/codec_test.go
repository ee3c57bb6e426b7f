// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorReadU8(t *testing.T) {
	c := newCursor([]byte{0x2a})
	v, err := c.readU8()
	require.NoError(t, err)
	assert.Equal(t, byte(0x2a), v)
	assert.Equal(t, 0, c.remaining())

	_, err = c.readU8()
	assert.ErrorIs(t, err, ErrNotEnoughBytes)
}

func TestCursorReadU16LE(t *testing.T) {
	c := newCursor([]byte{0x34, 0x12})
	v, err := c.readU16LE()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)
}

func TestCursorReadU32LE(t *testing.T) {
	c := newCursor([]byte{0x78, 0x56, 0x34, 0x12})
	v, err := c.readU32LE()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), v)
}

func TestCursorReadFixed(t *testing.T) {
	c := newCursor([]byte{1, 2, 3, 4, 5})
	b, err := c.readFixed(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	assert.Equal(t, 2, c.remaining())

	_, err = c.readFixed(10)
	assert.ErrorIs(t, err, ErrNotEnoughBytes)
}

func TestCursorReadFixedReversed(t *testing.T) {
	c := newCursor([]byte{1, 2, 3, 4})
	b, err := c.readFixedReversed(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 3, 2, 1}, b)
}

func TestCursorReadToEnd(t *testing.T) {
	c := newCursor([]byte{1, 2, 3})
	_, _ = c.readU8()
	assert.Equal(t, []byte{2, 3}, c.readToEnd())
	assert.Equal(t, []byte{}, c.readToEnd())
}

func TestEncoderChaining(t *testing.T) {
	b := newEncoder().u8(0x01).u16le(0x0203).u32le(0x04050607).fixed([]byte{0xaa, 0xbb}).bytes()
	assert.Equal(t, []byte{0x01, 0x03, 0x02, 0x07, 0x06, 0x05, 0x04, 0xaa, 0xbb}, b)
}

func TestEncoderFixedReversed(t *testing.T) {
	b := newEncoder().fixedReversed([]byte{1, 2, 3, 4}).bytes()
	assert.Equal(t, []byte{4, 3, 2, 1}, b)
}

func TestReverseInPlaceOddLength(t *testing.T) {
	b := []byte{1, 2, 3}
	reverseInPlace(b)
	assert.Equal(t, []byte{3, 2, 1}, b)
}
