// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

// StartOfFrame is the constant UART framing byte that opens every MT frame.
const StartOfFrame byte = 0xFE

// MTFrame is a fully decoded frame: header, optional extended header, and
// the opaque payload bytes dispatch will later parse into a typed command.
type MTFrame struct {
	Header         MTHeader
	ExtendedHeader *MTExtendedHeader
	Payload        []byte
}

// NewMTFrame is a convenience constructor that derives Header.Length from
// the actual payload size instead of requiring the caller to keep it
// consistent by hand.
func NewMTFrame(cmd CommandCode, ext *MTExtendedHeader, payload []byte) *MTFrame {
	cmd.IsExtended = ext != nil
	return &MTFrame{
		Header:         MTHeader{Length: byte(len(payload)), Command: cmd},
		ExtendedHeader: ext,
		Payload:        payload,
	}
}

// DecodeMTFrame decodes a post-FCS, no-SOF buffer: header, then optional
// extended header, then the remainder as opaque payload.
func DecodeMTFrame(b []byte) (*MTFrame, error) {
	c := newCursor(b)
	header, err := decodeMTHeader(c)
	if err != nil {
		return nil, err
	}

	var ext *MTExtendedHeader
	if header.Command.IsExtended {
		h, err := decodeMTExtendedHeader(c)
		if err != nil {
			return nil, err
		}
		ext = &h
	}

	payload := c.readToEnd()
	return &MTFrame{Header: header, ExtendedHeader: ext, Payload: payload}, nil
}

// Encode writes header bytes, optional extended-header bytes, then the
// payload, in that order. Header.Length is not auto-derived here — it is
// whatever the caller set at construction (see NewMTFrame for a helper that
// keeps it consistent).
func (f *MTFrame) Encode() []byte {
	e := newEncoder()
	f.Header.encodeInto(e)
	if f.ExtendedHeader != nil {
		f.ExtendedHeader.encodeInto(e)
	}
	e.fixed(f.Payload)
	return e.bytes()
}

// ToUART wraps Encode's output with the start-of-frame byte and a trailing
// frame check sequence, ready for transmission over the wire.
func (f *MTFrame) ToUART() []byte {
	body := f.Encode()
	fcs := computeFrameCheckSequence(body)
	out := make([]byte, 0, len(body)+2)
	out = append(out, StartOfFrame)
	out = append(out, body...)
	out = append(out, fcs)
	return out
}

// computeFrameCheckSequence is an 8-bit running XOR over every byte from
// the length byte through the last payload byte, inclusive. The SOF byte
// and the FCS byte itself are never part of the computation.
func computeFrameCheckSequence(b []byte) byte {
	return ComputeFrameCheckSequence(b)
}

// ComputeFrameCheckSequence is the exported form, shared with mtstream so
// the reassembler and the codec never drift on FCS semantics.
func ComputeFrameCheckSequence(b []byte) byte {
	var acc byte
	for _, v := range b {
		acc ^= v
	}
	return acc
}
