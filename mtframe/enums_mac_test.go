// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTxOptionValid(t *testing.T) {
	v, err := decodeTxOption(byte(TxOptionGTS))
	require.NoError(t, err)
	assert.Equal(t, TxOptionGTS, v)
	assert.Equal(t, "GTS", v.String())
}

func TestDecodeTxOptionInvalid(t *testing.T) {
	_, err := decodeTxOption(0x03)
	var mtErr *Error
	require.ErrorAs(t, err, &mtErr)
	assert.Equal(t, ErrKindInvalidTxOption, mtErr.Kind)
}

func TestDecodeStatusValid(t *testing.T) {
	v, err := decodeStatus(byte(StatusSuccess))
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, v)
}

func TestDecodeStatusInvalid(t *testing.T) {
	_, err := decodeStatus(0x01)
	var mtErr *Error
	require.ErrorAs(t, err, &mtErr)
	assert.Equal(t, ErrKindInvalidStatus, mtErr.Kind)
}

func TestDecodeAssociationStatusValid(t *testing.T) {
	v, err := decodeAssociationStatus(byte(AssociationStatusSuccessful))
	require.NoError(t, err)
	assert.Equal(t, AssociationStatusSuccessful, v)
}

func TestDecodePhyIdInvalid(t *testing.T) {
	_, err := decodePhyId(0xff)
	var mtErr *Error
	require.ErrorAs(t, err, &mtErr)
	assert.Equal(t, ErrKindInvalidPhyId, mtErr.Kind)
}

func TestUnknownEnumValueStringsFallBackToNumeric(t *testing.T) {
	assert.Contains(t, TxOption(0x03).String(), "0x03")
}
