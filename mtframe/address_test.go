// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortAddressRoundTrip(t *testing.T) {
	a := ShortAddress(0xbeef)
	e := newEncoder()
	a.encodeInto(e)
	got, err := decodeShortAddress(newCursor(e.bytes()))
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestExtendedAddressRoundTrip(t *testing.T) {
	a := ExtendedAddress{1, 2, 3, 4, 5, 6, 7, 8}
	e := newEncoder()
	a.encodeInto(e)
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, e.bytes())

	got, err := decodeExtendedAddress(newCursor(e.bytes()))
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestAddressShortRoundTrip(t *testing.T) {
	a := NewShortAddress(ShortAddress(0x1234))
	e := newEncoder()
	a.encodeInto(e)
	assert.Equal(t, 9, len(e.bytes()))

	got, err := decodeAddress(newCursor(e.bytes()))
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestAddressExtendedRoundTrip(t *testing.T) {
	a := NewExtendedAddress(ExtendedAddress{1, 2, 3, 4, 5, 6, 7, 8})
	e := newEncoder()
	a.encodeInto(e)

	got, err := decodeAddress(newCursor(e.bytes()))
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestAddressInvalidMode(t *testing.T) {
	_, err := decodeAddress(newCursor([]byte{0x00}))
	var mtErr *Error
	require.ErrorAs(t, err, &mtErr)
	assert.Equal(t, ErrKindInvalidAddressMode, mtErr.Kind)
}

func TestKeySourceRoundTrip(t *testing.T) {
	k := KeySource{1, 2, 3, 4, 5, 6, 7, 8}
	e := newEncoder()
	k.encodeInto(e)
	got, err := decodeKeySource(newCursor(e.bytes()))
	require.NoError(t, err)
	assert.Equal(t, k, got)
}

func TestChannelsBitMapRoundTrip(t *testing.T) {
	var m ChannelsBitMap
	for i := range m {
		m[i] = byte(i)
	}
	e := newEncoder()
	m.encodeInto(e)
	got, err := decodeChannelsBitMap(newCursor(e.bytes()))
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestFixedReversedHelpers(t *testing.T) {
	e := newEncoder()
	encodeFixedReversed(e, []byte{1, 2, 3, 4})
	got, err := decodeFixedReversed(newCursor(e.bytes()), 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)
}
