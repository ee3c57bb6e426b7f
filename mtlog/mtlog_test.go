// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeProvider struct {
	criticalN, errorN, warnN, debugN int
}

func (f *fakeProvider) Critical(msg string, fields ...zap.Field) { f.criticalN++ }
func (f *fakeProvider) Error(msg string, fields ...zap.Field)    { f.errorN++ }
func (f *fakeProvider) Warn(msg string, fields ...zap.Field)     { f.warnN++ }
func (f *fakeProvider) Debug(msg string, fields ...zap.Field)    { f.debugN++ }

func TestMlogGatedByDefault(t *testing.T) {
	fp := &fakeProvider{}
	l := Mlog{}
	l.SetLogProvider(fp)
	l.Error("boom")
	assert.Equal(t, 0, fp.errorN)
}

func TestMlogEmitsWhenEnabled(t *testing.T) {
	fp := &fakeProvider{}
	l := Mlog{}
	l.SetLogProvider(fp)
	l.LogMode(true)

	l.Critical("c")
	l.Error("e")
	l.Warn("w")
	l.Debug("d")

	assert.Equal(t, 1, fp.criticalN)
	assert.Equal(t, 1, fp.errorN)
	assert.Equal(t, 1, fp.warnN)
	assert.Equal(t, 1, fp.debugN)
}

func TestMlogStopsEmittingWhenDisabledAgain(t *testing.T) {
	fp := &fakeProvider{}
	l := Mlog{}
	l.SetLogProvider(fp)
	l.LogMode(true)
	l.LogMode(false)
	l.Error("boom")
	assert.Equal(t, 0, fp.errorN)
}

func TestSetLogProviderIgnoresNil(t *testing.T) {
	fp := &fakeProvider{}
	l := Mlog{}
	l.SetLogProvider(fp)
	l.SetLogProvider(nil)
	l.LogMode(true)
	l.Error("boom")
	assert.Equal(t, 1, fp.errorN)
}

func TestFrameFields(t *testing.T) {
	fields := FrameFields("MAC", 0x41, 10)
	assert.Len(t, fields, 3)
}
