// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindStringKnown(t *testing.T) {
	assert.Equal(t, "not enough bytes", ErrKindNotEnoughBytes.String())
}

func TestErrorKindStringUnknown(t *testing.T) {
	assert.Contains(t, ErrorKind(9999).String(), "ErrorKind(9999)")
}

func TestErrorErrorMessageWithValue(t *testing.T) {
	e := newErrorValue(ErrKindInvalidStatus, 0x42)
	assert.Equal(t, "invalid status: 0x42", e.Error())
}

func TestErrorErrorMessageWithBuf(t *testing.T) {
	e := newErrorBuf(ErrKindInvalidFrameCheckSequence, []byte{0xde, 0xad})
	assert.Equal(t, "invalid frame check sequence: dead", e.Error())
}

func TestErrorErrorMessageNotEnoughBytes(t *testing.T) {
	assert.Equal(t, "not enough bytes", ErrNotEnoughBytes.Error())
}

func TestErrorBufIsCopied(t *testing.T) {
	buf := []byte{1, 2, 3}
	e := newErrorBuf(ErrKindInvalidFrameCheckSequence, buf)
	buf[0] = 0xff
	assert.Equal(t, byte(1), e.Buf[0])
}
