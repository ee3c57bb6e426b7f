// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

// SYSCommandId enumerates the SYS subsystem's commands.
type SYSCommandId byte

const (
	SYSCommandIdResetReq     SYSCommandId = 0x00
	SYSCommandIdResetInd     SYSCommandId = 0x80
	SYSCommandIdPingReq      SYSCommandId = 0x01
	SYSCommandIdVersionReq   SYSCommandId = 0x02
	SYSCommandIdNVCreateReq  SYSCommandId = 0x30
	SYSCommandIdNVDeleteReq  SYSCommandId = 0x31
	SYSCommandIdNVLengthReq  SYSCommandId = 0x32
	SYSCommandIdNVReadReq    SYSCommandId = 0x33
	SYSCommandIdNVWriteReq   SYSCommandId = 0x34
	SYSCommandIdNVUpdateReq  SYSCommandId = 0x35
	SYSCommandIdNVCompactReq SYSCommandId = 0x36
)

var sysCommandIdNames = map[SYSCommandId]string{
	SYSCommandIdResetReq:     "ResetReq",
	SYSCommandIdResetInd:     "ResetInd",
	SYSCommandIdPingReq:      "PingReq",
	SYSCommandIdVersionReq:   "VersionReq",
	SYSCommandIdNVCreateReq:  "NVCreateReq",
	SYSCommandIdNVDeleteReq:  "NVDeleteReq",
	SYSCommandIdNVLengthReq:  "NVLengthReq",
	SYSCommandIdNVReadReq:    "NVReadReq",
	SYSCommandIdNVWriteReq:   "NVWriteReq",
	SYSCommandIdNVUpdateReq:  "NVUpdateReq",
	SYSCommandIdNVCompactReq: "NVCompactReq",
}

func decodeSYSCommandId(v byte) (SYSCommandId, error) {
	id := SYSCommandId(v)
	if _, ok := sysCommandIdNames[id]; !ok {
		return 0, newErrorValue(ErrKindInvalidCommandID, uint32(v))
	}
	return id, nil
}

func sysFrame(cmdType CommandType, id SYSCommandId, length int, payload []byte) *MTFrame {
	return &MTFrame{
		Header: MTHeader{
			Length: byte(length),
			Command: CommandCode{
				CmdType:   cmdType,
				Subsystem: SubsystemSYS,
				Id:        byte(id),
			},
		},
		Payload: payload,
	}
}

// ResetReqAREQ asks the device to perform a soft or hard reset.
type ResetReqAREQ struct {
	ResetType ResetType
}

func decodeResetReqAREQ(c *cursor) (*ResetReqAREQ, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	rt, err := decodeResetType(b)
	if err != nil {
		return nil, err
	}
	return &ResetReqAREQ{ResetType: rt}, nil
}

func (r *ResetReqAREQ) Encode() []byte {
	return newEncoder().u8(byte(r.ResetType)).bytes()
}

func (r *ResetReqAREQ) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeAREQ, SYSCommandIdResetReq, 0x01, r.Encode())
}

// ResetIndAREQ is the device's unsolicited report of the reset it just
// performed, including version identification.
type ResetIndAREQ struct {
	Reason    ResetReason
	Transport TransportProtocolRevision
	Product   ProductIdCode
	Major     byte
	Minor     byte
	Maint     byte
}

func decodeResetIndAREQ(c *cursor) (*ResetIndAREQ, error) {
	reasonB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	reason, err := decodeResetReason(reasonB)
	if err != nil {
		return nil, err
	}
	transportB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	transport, err := decodeTransportProtocolRevision(transportB)
	if err != nil {
		return nil, err
	}
	productB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	product, err := decodeProductIdCode(productB)
	if err != nil {
		return nil, err
	}
	major, err := c.readU8()
	if err != nil {
		return nil, err
	}
	minor, err := c.readU8()
	if err != nil {
		return nil, err
	}
	maint, err := c.readU8()
	if err != nil {
		return nil, err
	}
	return &ResetIndAREQ{Reason: reason, Transport: transport, Product: product, Major: major, Minor: minor, Maint: maint}, nil
}

func (r *ResetIndAREQ) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.Reason)).u8(byte(r.Transport)).u8(byte(r.Product)).u8(r.Major).u8(r.Minor).u8(r.Maint)
	return e.bytes()
}

func (r *ResetIndAREQ) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeAREQ, SYSCommandIdResetInd, 0x06, r.Encode())
}

// PingReqSREQ carries no fields; it requests the device's capability mask.
type PingReqSREQ struct{}

func decodePingReqSREQ(c *cursor) (*PingReqSREQ, error) { return &PingReqSREQ{}, nil }

func (r *PingReqSREQ) Encode() []byte { return nil }

func (r *PingReqSREQ) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSREQ, SYSCommandIdPingReq, 0x00, r.Encode())
}

// PingReqSRSP reports the device's capability mask.
type PingReqSRSP struct {
	Capabilities uint16
}

func decodePingReqSRSP(c *cursor) (*PingReqSRSP, error) {
	v, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	return &PingReqSRSP{Capabilities: v}, nil
}

func (r *PingReqSRSP) Encode() []byte {
	return newEncoder().u16le(r.Capabilities).bytes()
}

func (r *PingReqSRSP) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSRSP, SYSCommandIdPingReq, 0x02, r.Encode())
}

// VersionReqSREQ carries no fields; it requests firmware version info.
type VersionReqSREQ struct{}

func decodeVersionReqSREQ(c *cursor) (*VersionReqSREQ, error) { return &VersionReqSREQ{}, nil }

func (r *VersionReqSREQ) Encode() []byte { return nil }

func (r *VersionReqSREQ) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSREQ, SYSCommandIdVersionReq, 0x00, r.Encode())
}

// VersionReqSRSP reports the firmware transport revision and version.
type VersionReqSRSP struct {
	Transport TransportProtocolRevision
	Product   ProductIdCode
	Major     byte
	Minor     byte
	Maint     byte
}

func decodeVersionReqSRSP(c *cursor) (*VersionReqSRSP, error) {
	transportB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	transport, err := decodeTransportProtocolRevision(transportB)
	if err != nil {
		return nil, err
	}
	productB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	product, err := decodeProductIdCode(productB)
	if err != nil {
		return nil, err
	}
	major, err := c.readU8()
	if err != nil {
		return nil, err
	}
	minor, err := c.readU8()
	if err != nil {
		return nil, err
	}
	maint, err := c.readU8()
	if err != nil {
		return nil, err
	}
	return &VersionReqSRSP{Transport: transport, Product: product, Major: major, Minor: minor, Maint: maint}, nil
}

func (r *VersionReqSRSP) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.Transport)).u8(byte(r.Product)).u8(r.Major).u8(r.Minor).u8(r.Maint)
	return e.bytes()
}

func (r *VersionReqSRSP) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSRSP, SYSCommandIdVersionReq, 0x05, r.Encode())
}

// NVCreateReqSREQ allocates a new NV item of the given length.
type NVCreateReqSREQ struct {
	SysID  byte
	ItemID uint16
	SubID  uint16
	Length uint32
}

func decodeNVCreateReqSREQ(c *cursor) (*NVCreateReqSREQ, error) {
	sysID, err := c.readU8()
	if err != nil {
		return nil, err
	}
	itemID, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	subID, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	length, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	return &NVCreateReqSREQ{SysID: sysID, ItemID: itemID, SubID: subID, Length: length}, nil
}

func (r *NVCreateReqSREQ) Encode() []byte {
	e := newEncoder()
	e.u8(r.SysID).u16le(r.ItemID).u16le(r.SubID).u32le(r.Length)
	return e.bytes()
}

func (r *NVCreateReqSREQ) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSREQ, SYSCommandIdNVCreateReq, 0x09, r.Encode())
}

// NVCreateReqSRSP reports the result of an NVCreateReqSREQ.
type NVCreateReqSRSP struct {
	Status Status
}

func decodeNVCreateReqSRSP(c *cursor) (*NVCreateReqSRSP, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	status, err := decodeStatus(b)
	if err != nil {
		return nil, err
	}
	return &NVCreateReqSRSP{Status: status}, nil
}

func (r *NVCreateReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }

func (r *NVCreateReqSRSP) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSRSP, SYSCommandIdNVCreateReq, 0x01, r.Encode())
}

// NVDeleteReqSREQ removes an NV item.
type NVDeleteReqSREQ struct {
	SysID  byte
	ItemID uint16
	SubID  uint16
}

func decodeNVDeleteReqSREQ(c *cursor) (*NVDeleteReqSREQ, error) {
	sysID, err := c.readU8()
	if err != nil {
		return nil, err
	}
	itemID, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	subID, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	return &NVDeleteReqSREQ{SysID: sysID, ItemID: itemID, SubID: subID}, nil
}

func (r *NVDeleteReqSREQ) Encode() []byte {
	e := newEncoder()
	e.u8(r.SysID).u16le(r.ItemID).u16le(r.SubID)
	return e.bytes()
}

func (r *NVDeleteReqSREQ) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSREQ, SYSCommandIdNVDeleteReq, 0x05, r.Encode())
}

// NVDeleteReqSRSP reports the result of an NVDeleteReqSREQ.
type NVDeleteReqSRSP struct {
	Status Status
}

func decodeNVDeleteReqSRSP(c *cursor) (*NVDeleteReqSRSP, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	status, err := decodeStatus(b)
	if err != nil {
		return nil, err
	}
	return &NVDeleteReqSRSP{Status: status}, nil
}

func (r *NVDeleteReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }

func (r *NVDeleteReqSRSP) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSRSP, SYSCommandIdNVDeleteReq, 0x01, r.Encode())
}

// NVLengthReqSREQ queries an NV item's current length.
type NVLengthReqSREQ struct {
	SysID  byte
	ItemID uint16
	SubID  uint16
}

func decodeNVLengthReqSREQ(c *cursor) (*NVLengthReqSREQ, error) {
	sysID, err := c.readU8()
	if err != nil {
		return nil, err
	}
	itemID, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	subID, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	return &NVLengthReqSREQ{SysID: sysID, ItemID: itemID, SubID: subID}, nil
}

func (r *NVLengthReqSREQ) Encode() []byte {
	e := newEncoder()
	e.u8(r.SysID).u16le(r.ItemID).u16le(r.SubID)
	return e.bytes()
}

func (r *NVLengthReqSREQ) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSREQ, SYSCommandIdNVLengthReq, 0x05, r.Encode())
}

// NVLengthReqSRSP reports an NV item's length, 0 if it does not exist.
type NVLengthReqSRSP struct {
	Length uint32
}

func decodeNVLengthReqSRSP(c *cursor) (*NVLengthReqSRSP, error) {
	length, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	return &NVLengthReqSRSP{Length: length}, nil
}

func (r *NVLengthReqSRSP) Encode() []byte { return newEncoder().u32le(r.Length).bytes() }

func (r *NVLengthReqSRSP) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSRSP, SYSCommandIdNVLengthReq, 0x04, r.Encode())
}

// NVReadReqSREQ reads up to Length bytes from an NV item at Offset.
type NVReadReqSREQ struct {
	SysID  byte
	ItemID uint16
	SubID  uint16
	Offset uint16
	Length byte
}

func decodeNVReadReqSREQ(c *cursor) (*NVReadReqSREQ, error) {
	sysID, err := c.readU8()
	if err != nil {
		return nil, err
	}
	itemID, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	subID, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	offset, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	length, err := c.readU8()
	if err != nil {
		return nil, err
	}
	return &NVReadReqSREQ{SysID: sysID, ItemID: itemID, SubID: subID, Offset: offset, Length: length}, nil
}

func (r *NVReadReqSREQ) Encode() []byte {
	e := newEncoder()
	e.u8(r.SysID).u16le(r.ItemID).u16le(r.SubID).u16le(r.Offset).u8(r.Length)
	return e.bytes()
}

func (r *NVReadReqSREQ) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSREQ, SYSCommandIdNVReadReq, 0x08, r.Encode())
}

// NVReadReqSRSP returns the bytes read (or a non-Success status and no data).
type NVReadReqSRSP struct {
	Status Status
	Length byte
	Data   []byte
}

func decodeNVReadReqSRSP(c *cursor) (*NVReadReqSRSP, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	status, err := decodeStatus(b)
	if err != nil {
		return nil, err
	}
	length, err := c.readU8()
	if err != nil {
		return nil, err
	}
	data := c.readToEnd()
	return &NVReadReqSRSP{Status: status, Length: length, Data: data}, nil
}

func (r *NVReadReqSRSP) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.Status)).u8(r.Length).fixed(r.Data)
	return e.bytes()
}

func (r *NVReadReqSRSP) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSRSP, SYSCommandIdNVReadReq, 2+len(r.Data), r.Encode())
}

// NVWriteReqSREQ writes Data into an NV item starting at Offset.
type NVWriteReqSREQ struct {
	SysID  byte
	ItemID uint16
	SubID  uint16
	Offset uint16
	Length byte
	Data   []byte
}

func decodeNVWriteReqSREQ(c *cursor) (*NVWriteReqSREQ, error) {
	sysID, err := c.readU8()
	if err != nil {
		return nil, err
	}
	itemID, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	subID, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	offset, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	length, err := c.readU8()
	if err != nil {
		return nil, err
	}
	data := c.readToEnd()
	return &NVWriteReqSREQ{SysID: sysID, ItemID: itemID, SubID: subID, Offset: offset, Length: length, Data: data}, nil
}

func (r *NVWriteReqSREQ) Encode() []byte {
	e := newEncoder()
	e.u8(r.SysID).u16le(r.ItemID).u16le(r.SubID).u16le(r.Offset).u8(r.Length).fixed(r.Data)
	return e.bytes()
}

func (r *NVWriteReqSREQ) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSREQ, SYSCommandIdNVWriteReq, 0x08+len(r.Data), r.Encode())
}

// NVWriteReqSRSP reports the result of an NVWriteReqSREQ.
type NVWriteReqSRSP struct {
	Status Status
}

func decodeNVWriteReqSRSP(c *cursor) (*NVWriteReqSRSP, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	status, err := decodeStatus(b)
	if err != nil {
		return nil, err
	}
	return &NVWriteReqSRSP{Status: status}, nil
}

func (r *NVWriteReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }

func (r *NVWriteReqSRSP) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSRSP, SYSCommandIdNVWriteReq, 0x01, r.Encode())
}

// NVUpdateReqSREQ rewrites an NV item's contents from offset 0.
type NVUpdateReqSREQ struct {
	SysID  byte
	ItemID uint16
	SubID  uint16
	Length byte
	Data   []byte
}

func decodeNVUpdateReqSREQ(c *cursor) (*NVUpdateReqSREQ, error) {
	sysID, err := c.readU8()
	if err != nil {
		return nil, err
	}
	itemID, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	subID, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	length, err := c.readU8()
	if err != nil {
		return nil, err
	}
	data := c.readToEnd()
	return &NVUpdateReqSREQ{SysID: sysID, ItemID: itemID, SubID: subID, Length: length, Data: data}, nil
}

func (r *NVUpdateReqSREQ) Encode() []byte {
	e := newEncoder()
	e.u8(r.SysID).u16le(r.ItemID).u16le(r.SubID).u8(r.Length).fixed(r.Data)
	return e.bytes()
}

func (r *NVUpdateReqSREQ) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSREQ, SYSCommandIdNVUpdateReq, 0x06+len(r.Data), r.Encode())
}

// NVUpdateReqSRSP reports the result of an NVUpdateReqSREQ.
type NVUpdateReqSRSP struct {
	Status Status
}

func decodeNVUpdateReqSRSP(c *cursor) (*NVUpdateReqSRSP, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	status, err := decodeStatus(b)
	if err != nil {
		return nil, err
	}
	return &NVUpdateReqSRSP{Status: status}, nil
}

func (r *NVUpdateReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }

func (r *NVUpdateReqSRSP) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSRSP, SYSCommandIdNVUpdateReq, 0x01, r.Encode())
}

// NVCompactReqSREQ triggers NV garbage collection below Threshold bytes free.
type NVCompactReqSREQ struct {
	Threshold uint16
}

func decodeNVCompactReqSREQ(c *cursor) (*NVCompactReqSREQ, error) {
	threshold, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	return &NVCompactReqSREQ{Threshold: threshold}, nil
}

func (r *NVCompactReqSREQ) Encode() []byte { return newEncoder().u16le(r.Threshold).bytes() }

func (r *NVCompactReqSREQ) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSREQ, SYSCommandIdNVCompactReq, 0x02, r.Encode())
}

// NVCompactReqSRSP reports the result of an NVCompactReqSREQ.
type NVCompactReqSRSP struct {
	Status Status
}

func decodeNVCompactReqSRSP(c *cursor) (*NVCompactReqSRSP, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	status, err := decodeStatus(b)
	if err != nil {
		return nil, err
	}
	return &NVCompactReqSRSP{Status: status}, nil
}

func (r *NVCompactReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }

func (r *NVCompactReqSRSP) ToMTFrame() *MTFrame {
	return sysFrame(CommandTypeSRSP, SYSCommandIdNVCompactReq, 0x01, r.Encode())
}
