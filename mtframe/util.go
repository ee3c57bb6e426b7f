// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

// UTILCommandId enumerates the UTIL subsystem's commands.
type UTILCommandId byte

const (
	UTILCommandIdLoopback       UTILCommandId = 0x10
	UTILCommandIdCallbackSubCmd UTILCommandId = 0x06
	UTILCommandIdGetExtAddr     UTILCommandId = 0xEE
	UTILCommandIdRandom         UTILCommandId = 0x12
)

var utilCommandIdNames = map[UTILCommandId]string{
	UTILCommandIdLoopback:       "Loopback",
	UTILCommandIdCallbackSubCmd: "CallbackSubCmd",
	UTILCommandIdGetExtAddr:     "GetExtAddr",
	UTILCommandIdRandom:         "Random",
}

func decodeUTILCommandId(v byte) (UTILCommandId, error) {
	id := UTILCommandId(v)
	if _, ok := utilCommandIdNames[id]; !ok {
		return 0, newErrorValue(ErrKindInvalidCommandID, uint32(v))
	}
	return id, nil
}

func utilFrame(cmdType CommandType, id UTILCommandId, length int, payload []byte) *MTFrame {
	return &MTFrame{
		Header: MTHeader{
			Length: byte(length),
			Command: CommandCode{
				CmdType:   cmdType,
				Subsystem: SubsystemUTIL,
				Id:        byte(id),
			},
		},
		Payload: payload,
	}
}

// CallbackSubCmdSREQ subscribes to (or unsubscribes from) a subsystem's
// asynchronous callback stream.
type CallbackSubCmdSREQ struct {
	SubsystemId SubsystemId
	Enables     uint32
}

func decodeCallbackSubCmdSREQ(c *cursor) (*CallbackSubCmdSREQ, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	subsystemId, err := decodeSubsystemId(b)
	if err != nil {
		return nil, err
	}
	enables, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	return &CallbackSubCmdSREQ{SubsystemId: subsystemId, Enables: enables}, nil
}

func (r *CallbackSubCmdSREQ) Encode() []byte {
	return newEncoder().u8(byte(r.SubsystemId)).u32le(r.Enables).bytes()
}

func (r *CallbackSubCmdSREQ) ToMTFrame() *MTFrame {
	return utilFrame(CommandTypeSREQ, UTILCommandIdCallbackSubCmd, 0x05, r.Encode())
}

// CallbackSubCmdSRSP reports the enable mask now in effect.
type CallbackSubCmdSRSP struct {
	Status  Status
	Enables uint32
}

func decodeCallbackSubCmdSRSP(c *cursor) (*CallbackSubCmdSRSP, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	status, err := decodeStatus(b)
	if err != nil {
		return nil, err
	}
	enables, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	return &CallbackSubCmdSRSP{Status: status, Enables: enables}, nil
}

func (r *CallbackSubCmdSRSP) Encode() []byte {
	return newEncoder().u8(byte(r.Status)).u32le(r.Enables).bytes()
}

func (r *CallbackSubCmdSRSP) ToMTFrame() *MTFrame {
	return utilFrame(CommandTypeSRSP, UTILCommandIdCallbackSubCmd, 0x05, r.Encode())
}

// GetExtAddrSREQ asks the device to report one of its extended addresses.
type GetExtAddrSREQ struct {
	AddressType ExtendedAddressType
}

func decodeGetExtAddrSREQ(c *cursor) (*GetExtAddrSREQ, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	addressType, err := decodeExtendedAddressType(b)
	if err != nil {
		return nil, err
	}
	return &GetExtAddrSREQ{AddressType: addressType}, nil
}

func (r *GetExtAddrSREQ) Encode() []byte {
	return newEncoder().u8(byte(r.AddressType)).bytes()
}

func (r *GetExtAddrSREQ) ToMTFrame() *MTFrame {
	return utilFrame(CommandTypeSREQ, UTILCommandIdGetExtAddr, 0x01, r.Encode())
}

// GetExtAddrSRSP reports the requested extended address.
type GetExtAddrSRSP struct {
	AddressType ExtendedAddressType
	ExtAddress  ExtendedAddress
}

func decodeGetExtAddrSRSP(c *cursor) (*GetExtAddrSRSP, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	addressType, err := decodeExtendedAddressType(b)
	if err != nil {
		return nil, err
	}
	extAddress, err := decodeExtendedAddress(c)
	if err != nil {
		return nil, err
	}
	return &GetExtAddrSRSP{AddressType: addressType, ExtAddress: extAddress}, nil
}

func (r *GetExtAddrSRSP) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.AddressType))
	r.ExtAddress.encodeInto(e)
	return e.bytes()
}

func (r *GetExtAddrSRSP) ToMTFrame() *MTFrame {
	return utilFrame(CommandTypeSRSP, UTILCommandIdGetExtAddr, 0x09, r.Encode())
}

// loopback is the shared shape for Loopback's SREQ/SRSP/AREQ variants: the
// device (or caller) echoes Data back Repeats times, Interval microseconds
// apart.
type loopback struct {
	Repeats  byte
	Interval uint32
	Data     []byte
}

func decodeLoopback(c *cursor) (loopback, error) {
	repeats, err := c.readU8()
	if err != nil {
		return loopback{}, err
	}
	interval, err := c.readU32LE()
	if err != nil {
		return loopback{}, err
	}
	data := c.readToEnd()
	return loopback{Repeats: repeats, Interval: interval, Data: data}, nil
}

func (l loopback) encode() []byte {
	e := newEncoder()
	e.u8(l.Repeats).u32le(l.Interval).fixed(l.Data)
	return e.bytes()
}

// LoopbackSREQ requests the device echo Data back over the air.
type LoopbackSREQ struct{ loopback }

func decodeLoopbackSREQ(c *cursor) (*LoopbackSREQ, error) {
	l, err := decodeLoopback(c)
	if err != nil {
		return nil, err
	}
	return &LoopbackSREQ{l}, nil
}

func (r *LoopbackSREQ) Encode() []byte { return r.loopback.encode() }

func (r *LoopbackSREQ) ToMTFrame() *MTFrame {
	return utilFrame(CommandTypeSREQ, UTILCommandIdLoopback, 0x05+len(r.Data), r.Encode())
}

// LoopbackSRSP is the immediate synchronous acknowledgement of a
// LoopbackSREQ.
type LoopbackSRSP struct{ loopback }

func decodeLoopbackSRSP(c *cursor) (*LoopbackSRSP, error) {
	l, err := decodeLoopback(c)
	if err != nil {
		return nil, err
	}
	return &LoopbackSRSP{l}, nil
}

func (r *LoopbackSRSP) Encode() []byte { return r.loopback.encode() }

func (r *LoopbackSRSP) ToMTFrame() *MTFrame {
	return utilFrame(CommandTypeSRSP, UTILCommandIdLoopback, 0x05+len(r.Data), r.Encode())
}

// LoopbackAREQ is the asynchronous echo the device sends back Repeats
// times.
type LoopbackAREQ struct{ loopback }

func decodeLoopbackAREQ(c *cursor) (*LoopbackAREQ, error) {
	l, err := decodeLoopback(c)
	if err != nil {
		return nil, err
	}
	return &LoopbackAREQ{l}, nil
}

func (r *LoopbackAREQ) Encode() []byte { return r.loopback.encode() }

func (r *LoopbackAREQ) ToMTFrame() *MTFrame {
	return utilFrame(CommandTypeAREQ, UTILCommandIdLoopback, 0x05+len(r.Data), r.Encode())
}

// RandomSREQ requests a random 16-bit number from the device's RNG.
type RandomSREQ struct{}

func decodeRandomSREQ(c *cursor) (*RandomSREQ, error) { return &RandomSREQ{}, nil }

func (r *RandomSREQ) Encode() []byte { return nil }

func (r *RandomSREQ) ToMTFrame() *MTFrame {
	return utilFrame(CommandTypeSREQ, UTILCommandIdRandom, 0x00, r.Encode())
}

// RandomSRSP carries the requested random number.
type RandomSRSP struct {
	Number uint16
}

func decodeRandomSRSP(c *cursor) (*RandomSRSP, error) {
	number, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	return &RandomSRSP{Number: number}, nil
}

func (r *RandomSRSP) Encode() []byte { return newEncoder().u16le(r.Number).bytes() }

func (r *RandomSRSP) ToMTFrame() *MTFrame {
	return utilFrame(CommandTypeSRSP, UTILCommandIdRandom, 0x02, r.Encode())
}
