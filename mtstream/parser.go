// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtstream

import (
	"github.com/rob-gra/go-mt154/mtframe"
)

type state int

const (
	stateWaitingStartOfFrame state = iota
	stateGatheringMTFrameBytes
	stateWaitingFrameCheckSequence
)

// Parser is a byte-fed, three-state reassembler. It owns its accumulation
// buffer, allocates nothing per byte after the first frame, and is not
// safe for concurrent mutation — one Parser per stream.
type Parser struct {
	cfg    Config
	buffer []byte
	state  state
}

// NewParser builds a Parser with the given configuration. A zero Config
// behaves like DefaultConfig.
func NewParser(cfg Config) *Parser {
	cfg.Valid()
	return &Parser{cfg: cfg, state: stateWaitingStartOfFrame}
}

// Feed consumes one byte of UART input. ok reports whether this call
// produced an outcome (a completed frame, or an error); frame and err are
// only meaningful when ok is true, and are mutually exclusive.
func (p *Parser) Feed(b byte) (frame *mtframe.MTFrame, err error, ok bool) {
	switch p.state {
	case stateWaitingStartOfFrame:
		if b != mtframe.StartOfFrame {
			if p.cfg.SuppressSyncNoise {
				return nil, nil, false
			}
			return nil, newInvalidStartOfFrame(b), true
		}
		p.buffer = p.buffer[:0]
		p.state = stateGatheringMTFrameBytes
		return nil, nil, false

	case stateGatheringMTFrameBytes:
		if len(p.buffer) < p.cfg.MaxFrameSize {
			p.buffer = append(p.buffer, b)
		}
		expectedFrameSize := 3 + int(p.buffer[0])
		if len(p.buffer) >= expectedFrameSize {
			p.state = stateWaitingFrameCheckSequence
		}
		return nil, nil, false

	case stateWaitingFrameCheckSequence:
		fcs := mtframe.ComputeFrameCheckSequence(p.buffer)
		var result *mtframe.MTFrame
		var resultErr error
		if fcs == b {
			result, resultErr = mtframe.DecodeMTFrame(p.buffer)
		} else {
			resultErr = newInvalidFrameCheckSequence(b, p.buffer)
		}
		p.Reset()
		return result, resultErr, true

	default:
		p.Reset()
		return nil, nil, false
	}
}

// Reset clears the accumulation buffer and returns the Parser to its idle
// state. Called automatically after every outcome; exposed so a caller can
// abandon an in-progress frame, e.g. after its own read-timeout fires.
func (p *Parser) Reset() {
	p.buffer = p.buffer[:0]
	p.state = stateWaitingStartOfFrame
}
