// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtstream

import (
	"testing"

	"github.com/rob-gra/go-mt154/mtframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUART(t *testing.T, payload []byte) []byte {
	t.Helper()
	cc := mtframe.CommandCode{CmdType: mtframe.CommandTypeSRSP, Subsystem: mtframe.SubsystemSYS, Id: 0x02}
	f := mtframe.NewMTFrame(cc, nil, payload)
	return f.ToUART()
}

func feedAll(p *Parser, b []byte) (*mtframe.MTFrame, error, bool) {
	var frame *mtframe.MTFrame
	var err error
	var ok bool
	for _, by := range b {
		frame, err, ok = p.Feed(by)
		if ok {
			return frame, err, ok
		}
	}
	return frame, err, ok
}

func TestParserDecodesWholeFrameFedByte(t *testing.T) {
	p := NewParser(DefaultConfig())
	uart := buildUART(t, []byte{0x01, 0x02, 0x03})

	frame, err, ok := feedAll(p, uart)
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, frame.Payload)
}

func TestParserIsSegmentationIndependent(t *testing.T) {
	uart := buildUART(t, []byte{0xAA, 0xBB, 0xCC, 0xDD})

	wholeResult := func(chunks [][]byte) *mtframe.MTFrame {
		p := NewParser(DefaultConfig())
		var frame *mtframe.MTFrame
		for _, chunk := range chunks {
			for _, b := range chunk {
				f, err, ok := p.Feed(b)
				require.NoError(t, err)
				if ok {
					frame = f
				}
			}
		}
		require.NotNil(t, frame)
		return frame
	}

	oneByteAtATime := make([][]byte, len(uart))
	for i, b := range uart {
		oneByteAtATime[i] = []byte{b}
	}
	allAtOnce := [][]byte{uart}

	f1 := wholeResult(oneByteAtATime)
	f2 := wholeResult(allAtOnce)
	assert.Equal(t, f1.Payload, f2.Payload)
	assert.Equal(t, f1.Header, f2.Header)
}

func TestParserInvalidFrameCheckSequence(t *testing.T) {
	p := NewParser(DefaultConfig())
	uart := buildUART(t, []byte{0x01})
	uart[len(uart)-1] ^= 0xFF

	_, err, ok := feedAll(p, uart)
	require.True(t, ok)
	var streamErr *Error
	require.ErrorAs(t, err, &streamErr)
	assert.Equal(t, ErrKindInvalidFrameCheckSequence, streamErr.Kind)
}

func TestParserInvalidStartOfFrameReportedByDefault(t *testing.T) {
	p := NewParser(DefaultConfig())
	_, err, ok := p.Feed(0x00)
	require.True(t, ok)
	var streamErr *Error
	require.ErrorAs(t, err, &streamErr)
	assert.Equal(t, ErrKindInvalidStartOfFrame, streamErr.Kind)
}

func TestParserSuppressSyncNoise(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SuppressSyncNoise = true
	p := NewParser(cfg)

	_, _, ok := p.Feed(0x00)
	assert.False(t, ok)

	uart := buildUART(t, []byte{0x42})
	frame, err, ok := feedAll(p, uart)
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42}, frame.Payload)
}

func TestParserResetAbandonsInProgressFrame(t *testing.T) {
	p := NewParser(DefaultConfig())
	uart := buildUART(t, []byte{0x01, 0x02, 0x03})

	for _, b := range uart[:2] {
		_, _, ok := p.Feed(b)
		assert.False(t, ok)
	}
	p.Reset()

	frame, err, ok := feedAll(p, uart)
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, frame.Payload)
}

func TestParserRecoversAfterFrameCheckSequenceError(t *testing.T) {
	p := NewParser(DefaultConfig())
	bad := buildUART(t, []byte{0x01})
	bad[len(bad)-1] ^= 0xFF
	_, err, ok := feedAll(p, bad)
	require.True(t, ok)
	require.Error(t, err)

	good := buildUART(t, []byte{0x09})
	frame, err, ok := feedAll(p, good)
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x09}, frame.Payload)
}

func TestDefaultMaxFrameSizeAppliedWhenZero(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.Valid())
	assert.Equal(t, DefaultMaxFrameSize, cfg.MaxFrameSize)
}
