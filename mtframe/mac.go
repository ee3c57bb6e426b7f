// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

// MACCommandId enumerates the MAC subsystem's commands, both host-originated
// requests and device-originated confirmations/indications.
type MACCommandId byte

const (
	MACCommandIdDataCnf             MACCommandId = 0x84
	MACCommandIdDataInd             MACCommandId = 0x85
	MACCommandIdPurgeCnf            MACCommandId = 0x90
	MACCommandIdWSAsyncInd          MACCommandId = 0x93
	MACCommandIdSyncLossInd         MACCommandId = 0x80
	MACCommandIdAssociateInd        MACCommandId = 0x81
	MACCommandIdAssociateCnf        MACCommandId = 0x82
	MACCommandIdBeaconNotifyInd     MACCommandId = 0x83
	MACCommandIdDisassociateInd     MACCommandId = 0x86
	MACCommandIdDisassociateCnf     MACCommandId = 0x87
	MACCommandIdOrphanInd           MACCommandId = 0x8A
	MACCommandIdPollCnf             MACCommandId = 0x8B
	MACCommandIdPollInd             MACCommandId = 0x91
	MACCommandIdScanCnf             MACCommandId = 0x8C
	MACCommandIdCommStatusInd       MACCommandId = 0x8D
	MACCommandIdStartCnf            MACCommandId = 0x8E
	MACCommandIdWSAsyncCnf          MACCommandId = 0x92
	MACCommandIdInit                MACCommandId = 0x02
	MACCommandIdDataReq             MACCommandId = 0x05
	MACCommandIdPurgeReq            MACCommandId = 0x0E
	MACCommandIdAssociateReq        MACCommandId = 0x06
	MACCommandIdAssociateRsp        MACCommandId = 0x50
	MACCommandIdDisassociateReq     MACCommandId = 0x07
	MACCommandIdGetReq              MACCommandId = 0x08
	MACCommandIdSetReq              MACCommandId = 0x09
	MACCommandIdSecurityGetReq      MACCommandId = 0x30
	MACCommandIdSecuritySetReq      MACCommandId = 0x31
	MACCommandIdUpdatePANIdReq      MACCommandId = 0x32
	MACCommandIdAddDeviceReq        MACCommandId = 0x33
	MACCommandIdDeleteDeviceReq     MACCommandId = 0x34
	MACCommandIdDeleteAllDevicesReq MACCommandId = 0x35
	MACCommandIdDeleteKeyReq        MACCommandId = 0x36
	MACCommandIdReadKeyReq          MACCommandId = 0x37
	MACCommandIdWriteKeyReq         MACCommandId = 0x38
	MACCommandIdOrphanRsp           MACCommandId = 0x51
	MACCommandIdPollReq             MACCommandId = 0x0D
	MACCommandIdResetReq            MACCommandId = 0x01
	MACCommandIdScanReq             MACCommandId = 0x0C
	MACCommandIdStartReq            MACCommandId = 0x03
	MACCommandIdSyncReq             MACCommandId = 0x04
	MACCommandIdSetRxGainReq        MACCommandId = 0x0F
	MACCommandIdWSAsyncReq          MACCommandId = 0x44
	MACCommandIdFHEnableReq         MACCommandId = 0x40
	MACCommandIdFHStartReq          MACCommandId = 0x41
	MACCommandIdFHGetReq            MACCommandId = 0x42
	MACCommandIdFHSetReq            MACCommandId = 0x43
)

var macCommandIdNames = map[MACCommandId]string{
	MACCommandIdDataCnf: "DataCnf", MACCommandIdDataInd: "DataInd",
	MACCommandIdPurgeCnf: "PurgeCnf", MACCommandIdWSAsyncInd: "WSAsyncInd",
	MACCommandIdSyncLossInd: "SyncLossInd", MACCommandIdAssociateInd: "AssociateInd",
	MACCommandIdAssociateCnf: "AssociateCnf", MACCommandIdBeaconNotifyInd: "BeaconNotifyInd",
	MACCommandIdDisassociateInd: "DisassociateInd", MACCommandIdDisassociateCnf: "DisassociateCnf",
	MACCommandIdOrphanInd: "OrphanInd", MACCommandIdPollCnf: "PollCnf",
	MACCommandIdPollInd: "PollInd", MACCommandIdScanCnf: "ScanCnf",
	MACCommandIdCommStatusInd: "CommStatusInd", MACCommandIdStartCnf: "StartCnf",
	MACCommandIdWSAsyncCnf: "WSAsyncCnf", MACCommandIdInit: "Init",
	MACCommandIdDataReq: "DataReq", MACCommandIdPurgeReq: "PurgeReq",
	MACCommandIdAssociateReq: "AssociateReq", MACCommandIdAssociateRsp: "AssociateRsp",
	MACCommandIdDisassociateReq: "DisassociateReq", MACCommandIdGetReq: "GetReq",
	MACCommandIdSetReq: "SetReq", MACCommandIdSecurityGetReq: "SecurityGetReq",
	MACCommandIdSecuritySetReq: "SecuritySetReq", MACCommandIdUpdatePANIdReq: "UpdatePANIdReq",
	MACCommandIdAddDeviceReq: "AddDeviceReq", MACCommandIdDeleteDeviceReq: "DeleteDeviceReq",
	MACCommandIdDeleteAllDevicesReq: "DeleteAllDevicesReq", MACCommandIdDeleteKeyReq: "DeleteKeyReq",
	MACCommandIdReadKeyReq: "ReadKeyReq", MACCommandIdWriteKeyReq: "WriteKeyReq",
	MACCommandIdOrphanRsp: "OrphanRsp", MACCommandIdPollReq: "PollReq",
	MACCommandIdResetReq: "ResetReq", MACCommandIdScanReq: "ScanReq",
	MACCommandIdStartReq: "StartReq", MACCommandIdSyncReq: "SyncReq",
	MACCommandIdSetRxGainReq: "SetRxGainReq", MACCommandIdWSAsyncReq: "WSAsyncReq",
	MACCommandIdFHEnableReq: "FHEnableReq", MACCommandIdFHStartReq: "FHStartReq",
	MACCommandIdFHGetReq: "FHGetReq", MACCommandIdFHSetReq: "FHSetReq",
}

func decodeMACCommandId(v byte) (MACCommandId, error) {
	id := MACCommandId(v)
	if _, ok := macCommandIdNames[id]; !ok {
		return 0, newErrorValue(ErrKindInvalidCommandID, uint32(v))
	}
	return id, nil
}

func macFrame(cmdType CommandType, id MACCommandId, payload []byte) *MTFrame {
	return NewMTFrame(CommandCode{CmdType: cmdType, Subsystem: SubsystemMAC, Id: byte(id)}, nil, payload)
}

// keySecurity is the (key_source, security_level, key_id_mode, key_index)
// quartet repeated across nearly every MAC command that can apply link
// security to its operation.
type keySecurity struct {
	KeySource     KeySource
	SecurityLevel SecurityLevel
	KeyIdMode     KeyIdMode
	KeyIndex      byte
}

func decodeKeySecurity(c *cursor) (keySecurity, error) {
	ks, err := decodeKeySource(c)
	if err != nil {
		return keySecurity{}, err
	}
	slB, err := c.readU8()
	if err != nil {
		return keySecurity{}, err
	}
	sl, err := decodeSecurityLevel(slB)
	if err != nil {
		return keySecurity{}, err
	}
	kimB, err := c.readU8()
	if err != nil {
		return keySecurity{}, err
	}
	kim, err := decodeKeyIdMode(kimB)
	if err != nil {
		return keySecurity{}, err
	}
	ki, err := c.readU8()
	if err != nil {
		return keySecurity{}, err
	}
	return keySecurity{KeySource: ks, SecurityLevel: sl, KeyIdMode: kim, KeyIndex: ki}, nil
}

func (k keySecurity) encodeInto(e *encoder) {
	k.KeySource.encodeInto(e)
	e.u8(byte(k.SecurityLevel)).u8(byte(k.KeyIdMode)).u8(k.KeyIndex)
}

func decodeStatusOnly(c *cursor) (Status, error) {
	b, err := c.readU8()
	if err != nil {
		return 0, err
	}
	return decodeStatus(b)
}

// Init carries no fields; it brings the MAC layer up after ResetReq.
type Init struct{}

func decodeInit(c *cursor) (*Init, error) { return &Init{}, nil }
func (r *Init) Encode() []byte            { return nil }
func (r *Init) ToMTFrame() *MTFrame       { return macFrame(CommandTypeSREQ, MACCommandIdInit, r.Encode()) }

// InitSRSP reports the result of Init.
type InitSRSP struct{ Status Status }

func decodeInitSRSP(c *cursor) (*InitSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &InitSRSP{Status: s}, nil
}
func (r *InitSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *InitSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdInit, r.Encode())
}

// DataReq transmits a data frame to DestAddress. IELength sizes IEPayload.
type DataReq struct {
	DestAddress     Address
	DestPANId       uint16
	SrcAddressMode  AddressMode
	Handle          byte
	TxOption        TxOption
	Channel         byte
	Power           byte
	KeySource       KeySource
	SecurityLevel   SecurityLevel
	KeyIdMode       KeyIdMode
	KeyIndex        byte
	IncludeFHIEs    uint32
	DataLength      uint16
	IELength        uint16
	DataPayload     []byte
	IEPayload       []byte
}

func decodeDataReq(c *cursor) (*DataReq, error) {
	destAddress, err := decodeAddress(c)
	if err != nil {
		return nil, err
	}
	destPANId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	srcModeB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	srcMode, err := decodeAddressMode(srcModeB)
	if err != nil {
		return nil, err
	}
	handle, err := c.readU8()
	if err != nil {
		return nil, err
	}
	txOptionB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	txOption, err := decodeTxOption(txOptionB)
	if err != nil {
		return nil, err
	}
	channel, err := c.readU8()
	if err != nil {
		return nil, err
	}
	power, err := c.readU8()
	if err != nil {
		return nil, err
	}
	keySource, err := decodeKeySource(c)
	if err != nil {
		return nil, err
	}
	slB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	securityLevel, err := decodeSecurityLevel(slB)
	if err != nil {
		return nil, err
	}
	kimB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	keyIdMode, err := decodeKeyIdMode(kimB)
	if err != nil {
		return nil, err
	}
	keyIndex, err := c.readU8()
	if err != nil {
		return nil, err
	}
	includeFHIEs, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	dataLength, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	ieLength, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	dataPayload, err := c.readFixed(int(dataLength))
	if err != nil {
		return nil, err
	}
	iePayload, err := c.readFixed(int(ieLength))
	if err != nil {
		return nil, err
	}
	return &DataReq{
		DestAddress: destAddress, DestPANId: destPANId, SrcAddressMode: srcMode,
		Handle: handle, TxOption: txOption, Channel: channel, Power: power,
		KeySource: keySource, SecurityLevel: securityLevel, KeyIdMode: keyIdMode, KeyIndex: keyIndex,
		IncludeFHIEs: includeFHIEs, DataLength: dataLength, IELength: ieLength,
		DataPayload: dataPayload, IEPayload: iePayload,
	}, nil
}

func (r *DataReq) Encode() []byte {
	e := newEncoder()
	r.DestAddress.encodeInto(e)
	e.u16le(r.DestPANId).u8(byte(r.SrcAddressMode)).u8(r.Handle).u8(byte(r.TxOption)).u8(r.Channel).u8(r.Power)
	r.KeySource.encodeInto(e)
	e.u8(byte(r.SecurityLevel)).u8(byte(r.KeyIdMode)).u8(r.KeyIndex).u32le(r.IncludeFHIEs)
	e.u16le(r.DataLength).u16le(r.IELength).fixed(r.DataPayload).fixed(r.IEPayload)
	return e.bytes()
}

func (r *DataReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdDataReq, r.Encode())
}

// DataReqSRSP reports the result of DataReq.
type DataReqSRSP struct{ Status Status }

func decodeDataReqSRSP(c *cursor) (*DataReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &DataReqSRSP{Status: s}, nil
}
func (r *DataReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *DataReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdDataReq, r.Encode())
}

// DataCnf is the device's confirmation that a DataReq finished transmitting.
type DataCnf struct {
	Status        Status
	Handle        byte
	Timestamp     uint32
	Timestamp2    uint16
	Retries       byte
	LinkQuality   byte
	Correlation   byte
	RSSI          byte
	FrameCounter  uint32
}

func decodeDataCnf(c *cursor) (*DataCnf, error) {
	status, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	handle, err := c.readU8()
	if err != nil {
		return nil, err
	}
	timestamp, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	timestamp2, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	retries, err := c.readU8()
	if err != nil {
		return nil, err
	}
	linkQuality, err := c.readU8()
	if err != nil {
		return nil, err
	}
	correlation, err := c.readU8()
	if err != nil {
		return nil, err
	}
	rssi, err := c.readU8()
	if err != nil {
		return nil, err
	}
	frameCounter, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	return &DataCnf{Status: status, Handle: handle, Timestamp: timestamp, Timestamp2: timestamp2,
		Retries: retries, LinkQuality: linkQuality, Correlation: correlation, RSSI: rssi, FrameCounter: frameCounter}, nil
}

func (r *DataCnf) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.Status)).u8(r.Handle).u32le(r.Timestamp).u16le(r.Timestamp2).u8(r.Retries)
	e.u8(r.LinkQuality).u8(r.Correlation).u8(r.RSSI).u32le(r.FrameCounter)
	return e.bytes()
}

func (r *DataCnf) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdDataCnf, r.Encode())
}

// DataInd is an unsolicited report of a received data frame. IEPayload is
// sized by IELength, not DataLength — the two fields cover distinct spans
// of the frame and must not be conflated.
type DataInd struct {
	SrcAddress    Address
	DestAddress   Address
	Timestamp     uint32
	Timestamp2    uint16
	SrcPANId      uint16
	DestPANId     uint16
	LinkQuality   byte
	Correlation   byte
	RSSI          byte
	DSN           byte
	KeySource     KeySource
	SecurityLevel SecurityLevel
	KeyIdMode     KeyIdMode
	KeyIndex      byte
	FrameCounter  uint32
	DataLength    uint16
	IELength      uint16
	DataPayload   []byte
	IEPayload     []byte
}

func decodeDataInd(c *cursor) (*DataInd, error) {
	srcAddress, err := decodeAddress(c)
	if err != nil {
		return nil, err
	}
	destAddress, err := decodeAddress(c)
	if err != nil {
		return nil, err
	}
	timestamp, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	timestamp2, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	srcPANId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	destPANId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	linkQuality, err := c.readU8()
	if err != nil {
		return nil, err
	}
	correlation, err := c.readU8()
	if err != nil {
		return nil, err
	}
	rssi, err := c.readU8()
	if err != nil {
		return nil, err
	}
	dsn, err := c.readU8()
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	frameCounter, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	dataLength, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	ieLength, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	dataPayload, err := c.readFixed(int(dataLength))
	if err != nil {
		return nil, err
	}
	iePayload, err := c.readFixed(int(ieLength))
	if err != nil {
		return nil, err
	}
	return &DataInd{SrcAddress: srcAddress, DestAddress: destAddress, Timestamp: timestamp, Timestamp2: timestamp2,
		SrcPANId: srcPANId, DestPANId: destPANId, LinkQuality: linkQuality, Correlation: correlation, RSSI: rssi, DSN: dsn,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex,
		FrameCounter: frameCounter, DataLength: dataLength, IELength: ieLength, DataPayload: dataPayload, IEPayload: iePayload}, nil
}

func (r *DataInd) Encode() []byte {
	e := newEncoder()
	r.SrcAddress.encodeInto(e)
	r.DestAddress.encodeInto(e)
	e.u32le(r.Timestamp).u16le(r.Timestamp2).u16le(r.SrcPANId).u16le(r.DestPANId)
	e.u8(r.LinkQuality).u8(r.Correlation).u8(r.RSSI).u8(r.DSN)
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	e.u32le(r.FrameCounter).u16le(r.DataLength).u16le(r.IELength).fixed(r.DataPayload).fixed(r.IEPayload)
	return e.bytes()
}

func (r *DataInd) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdDataInd, r.Encode())
}

// PurgeReq cancels a queued DataReq identified by Handle.
type PurgeReq struct{ Handle byte }

func decodePurgeReq(c *cursor) (*PurgeReq, error) {
	h, err := c.readU8()
	if err != nil {
		return nil, err
	}
	return &PurgeReq{Handle: h}, nil
}
func (r *PurgeReq) Encode() []byte { return newEncoder().u8(r.Handle).bytes() }
func (r *PurgeReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdPurgeReq, r.Encode())
}

// PurgeReqSRSP reports the result of PurgeReq.
type PurgeReqSRSP struct{ Status Status }

func decodePurgeReqSRSP(c *cursor) (*PurgeReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &PurgeReqSRSP{Status: s}, nil
}
func (r *PurgeReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *PurgeReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdPurgeReq, r.Encode())
}

// PurgeCnf confirms a PurgeReq once the queued frame has actually been
// dropped.
type PurgeCnf struct {
	Status Status
	Handle byte
}

func decodePurgeCnf(c *cursor) (*PurgeCnf, error) {
	status, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	handle, err := c.readU8()
	if err != nil {
		return nil, err
	}
	return &PurgeCnf{Status: status, Handle: handle}, nil
}
func (r *PurgeCnf) Encode() []byte { return newEncoder().u8(byte(r.Status)).u8(r.Handle).bytes() }
func (r *PurgeCnf) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdPurgeCnf, r.Encode())
}

// AssociateReq starts an association attempt with a PAN coordinator.
// PhyId is decoded and validated as the PhyId enum, not a raw byte.
type AssociateReq struct {
	LogicalChannel   byte
	ChannelPage      byte
	PhyId            PhyId
	CoordAddress     Address
	CoordPANId       uint16
	CapabilityInfo   byte
	KeySource        KeySource
	SecurityLevel    SecurityLevel
	KeyIdMode        KeyIdMode
	KeyIndex         byte
}

func decodeAssociateReq(c *cursor) (*AssociateReq, error) {
	logicalChannel, err := c.readU8()
	if err != nil {
		return nil, err
	}
	channelPage, err := c.readU8()
	if err != nil {
		return nil, err
	}
	phyIdB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	phyId, err := decodePhyId(phyIdB)
	if err != nil {
		return nil, err
	}
	coordAddress, err := decodeAddress(c)
	if err != nil {
		return nil, err
	}
	coordPANId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	capabilityInfo, err := c.readU8()
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	return &AssociateReq{LogicalChannel: logicalChannel, ChannelPage: channelPage, PhyId: phyId,
		CoordAddress: coordAddress, CoordPANId: coordPANId, CapabilityInfo: capabilityInfo,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex}, nil
}

func (r *AssociateReq) Encode() []byte {
	e := newEncoder()
	e.u8(r.LogicalChannel).u8(r.ChannelPage).u8(byte(r.PhyId))
	r.CoordAddress.encodeInto(e)
	e.u16le(r.CoordPANId).u8(r.CapabilityInfo)
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	return e.bytes()
}

func (r *AssociateReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdAssociateReq, r.Encode())
}

// AssociateReqSRSP reports the result of AssociateReq.
type AssociateReqSRSP struct{ Status Status }

func decodeAssociateReqSRSP(c *cursor) (*AssociateReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &AssociateReqSRSP{Status: s}, nil
}
func (r *AssociateReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *AssociateReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdAssociateReq, r.Encode())
}

// AssociateInd notifies the host that a device is requesting association.
type AssociateInd struct {
	ExtendedAddress ExtendedAddress
	Capabilities    byte
	KeySource       KeySource
	SecurityLevel   SecurityLevel
	KeyIdMode       KeyIdMode
	KeyIndex        byte
}

func decodeAssociateInd(c *cursor) (*AssociateInd, error) {
	extendedAddress, err := decodeExtendedAddress(c)
	if err != nil {
		return nil, err
	}
	capabilities, err := c.readU8()
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	return &AssociateInd{ExtendedAddress: extendedAddress, Capabilities: capabilities,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex}, nil
}

func (r *AssociateInd) Encode() []byte {
	e := newEncoder()
	r.ExtendedAddress.encodeInto(e)
	e.u8(r.Capabilities)
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	return e.bytes()
}

func (r *AssociateInd) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdAssociateInd, r.Encode())
}

// AssociateCnf reports the outcome of an association attempt this device
// initiated.
type AssociateCnf struct {
	Status        Status
	ShortAddress  ShortAddress
	KeySource     KeySource
	SecurityLevel SecurityLevel
	KeyIdMode     KeyIdMode
	KeyIndex      byte
}

func decodeAssociateCnf(c *cursor) (*AssociateCnf, error) {
	status, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	shortAddress, err := decodeShortAddress(c)
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	return &AssociateCnf{Status: status, ShortAddress: shortAddress,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex}, nil
}

func (r *AssociateCnf) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.Status))
	r.ShortAddress.encodeInto(e)
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	return e.bytes()
}

func (r *AssociateCnf) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdAssociateCnf, r.Encode())
}

// AssociateRsp answers an AssociateInd, admitting or rejecting the device.
type AssociateRsp struct {
	ExtendedAddress   ExtendedAddress
	AssocShortAddress ShortAddress
	AssocStatus       AssociationStatus
	KeySource         KeySource
	SecurityLevel     SecurityLevel
	KeyIdMode         KeyIdMode
	KeyIndex          byte
}

func decodeAssociateRsp(c *cursor) (*AssociateRsp, error) {
	extendedAddress, err := decodeExtendedAddress(c)
	if err != nil {
		return nil, err
	}
	assocShortAddress, err := decodeShortAddress(c)
	if err != nil {
		return nil, err
	}
	assocStatusB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	assocStatus, err := decodeAssociationStatus(assocStatusB)
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	return &AssociateRsp{ExtendedAddress: extendedAddress, AssocShortAddress: assocShortAddress, AssocStatus: assocStatus,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex}, nil
}

func (r *AssociateRsp) Encode() []byte {
	e := newEncoder()
	r.ExtendedAddress.encodeInto(e)
	r.AssocShortAddress.encodeInto(e)
	e.u8(byte(r.AssocStatus))
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	return e.bytes()
}

func (r *AssociateRsp) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdAssociateRsp, r.Encode())
}

// AssociateRspSRSP reports the result of AssociateRsp.
type AssociateRspSRSP struct{ Status Status }

func decodeAssociateRspSRSP(c *cursor) (*AssociateRspSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &AssociateRspSRSP{Status: s}, nil
}
func (r *AssociateRspSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *AssociateRspSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdAssociateRsp, r.Encode())
}

// DisassociateReq asks a device to leave the PAN.
type DisassociateReq struct {
	DeviceAddress      Address
	DevicePANId        uint16
	DisassociateReason DisassociateReason
	TxIndirect         byte
	KeySource          KeySource
	SecurityLevel      SecurityLevel
	KeyIdMode          KeyIdMode
	KeyIndex           byte
}

func decodeDisassociateReq(c *cursor) (*DisassociateReq, error) {
	deviceAddress, err := decodeAddress(c)
	if err != nil {
		return nil, err
	}
	devicePANId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	reasonB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	reason, err := decodeDisassociateReason(reasonB)
	if err != nil {
		return nil, err
	}
	txIndirect, err := c.readU8()
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	return &DisassociateReq{DeviceAddress: deviceAddress, DevicePANId: devicePANId, DisassociateReason: reason, TxIndirect: txIndirect,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex}, nil
}

func (r *DisassociateReq) Encode() []byte {
	e := newEncoder()
	r.DeviceAddress.encodeInto(e)
	e.u16le(r.DevicePANId).u8(byte(r.DisassociateReason)).u8(r.TxIndirect)
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	return e.bytes()
}

func (r *DisassociateReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdDisassociateReq, r.Encode())
}

// DisassociateReqSRSP reports the result of DisassociateReq.
type DisassociateReqSRSP struct{ Status Status }

func decodeDisassociateReqSRSP(c *cursor) (*DisassociateReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &DisassociateReqSRSP{Status: s}, nil
}
func (r *DisassociateReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *DisassociateReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdDisassociateReq, r.Encode())
}

// DisassociateInd notifies the host that a device has left the PAN.
type DisassociateInd struct {
	ExtendedAddress    ExtendedAddress
	DisassociateReason DisassociateReason
	KeySource          KeySource
	SecurityLevel      SecurityLevel
	KeyIdMode          KeyIdMode
	KeyIndex           byte
}

func decodeDisassociateInd(c *cursor) (*DisassociateInd, error) {
	extendedAddress, err := decodeExtendedAddress(c)
	if err != nil {
		return nil, err
	}
	reasonB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	reason, err := decodeDisassociateReason(reasonB)
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	return &DisassociateInd{ExtendedAddress: extendedAddress, DisassociateReason: reason,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex}, nil
}

func (r *DisassociateInd) Encode() []byte {
	e := newEncoder()
	r.ExtendedAddress.encodeInto(e)
	e.u8(byte(r.DisassociateReason))
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	return e.bytes()
}

func (r *DisassociateInd) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdDisassociateInd, r.Encode())
}

// DisassociateCnf confirms a disassociation this device initiated.
type DisassociateCnf struct {
	Status      Status
	DeviceAddr  Address
	DevicePANId uint16
}

func decodeDisassociateCnf(c *cursor) (*DisassociateCnf, error) {
	status, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	deviceAddr, err := decodeAddress(c)
	if err != nil {
		return nil, err
	}
	devicePANId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	return &DisassociateCnf{Status: status, DeviceAddr: deviceAddr, DevicePANId: devicePANId}, nil
}

func (r *DisassociateCnf) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.Status))
	r.DeviceAddr.encodeInto(e)
	e.u16le(r.DevicePANId)
	return e.bytes()
}

func (r *DisassociateCnf) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdDisassociateCnf, r.Encode())
}

// GetReq reads a single MAC PIB attribute.
type GetReq struct{ AttributeId MACPIBAttributeId }

func decodeGetReq(c *cursor) (*GetReq, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	id, err := decodeMACPIBAttributeId(b)
	if err != nil {
		return nil, err
	}
	return &GetReq{AttributeId: id}, nil
}
func (r *GetReq) Encode() []byte { return newEncoder().u8(byte(r.AttributeId)).bytes() }
func (r *GetReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdGetReq, r.Encode())
}

// GetReqSRSP carries the requested attribute's 16-byte value, byte-reversed
// on the wire like every other fixed PIB-value field.
type GetReqSRSP struct {
	Status Status
	Data   []byte
}

func decodeGetReqSRSP(c *cursor) (*GetReqSRSP, error) {
	status, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	data, err := decodeFixedReversed(c, 16)
	if err != nil {
		return nil, err
	}
	return &GetReqSRSP{Status: status, Data: data}, nil
}

func (r *GetReqSRSP) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.Status))
	encodeFixedReversed(e, r.Data)
	return e.bytes()
}

func (r *GetReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdGetReq, r.Encode())
}

// SetReq writes a 16-byte MAC PIB attribute value, byte-reversed on the
// wire.
type SetReq struct {
	AttributeId    MACPIBAttributeId
	AttributeValue []byte
}

func decodeSetReq(c *cursor) (*SetReq, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	id, err := decodeMACPIBAttributeId(b)
	if err != nil {
		return nil, err
	}
	value, err := decodeFixedReversed(c, 16)
	if err != nil {
		return nil, err
	}
	return &SetReq{AttributeId: id, AttributeValue: value}, nil
}

func (r *SetReq) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.AttributeId))
	encodeFixedReversed(e, r.AttributeValue)
	return e.bytes()
}

func (r *SetReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdSetReq, r.Encode())
}

// SetReqSRSP reports the result of SetReq.
type SetReqSRSP struct{ Status Status }

func decodeSetReqSRSP(c *cursor) (*SetReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &SetReqSRSP{Status: s}, nil
}
func (r *SetReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *SetReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdSetReq, r.Encode())
}

// SecurityGetReq reads a security PIB attribute, optionally indexed.
type SecurityGetReq struct {
	AttributeId SecurityPIBAttributeId
	Index1      byte
	Index2      byte
}

func decodeSecurityGetReq(c *cursor) (*SecurityGetReq, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	id, err := decodeSecurityPIBAttributeId(b)
	if err != nil {
		return nil, err
	}
	index1, err := c.readU8()
	if err != nil {
		return nil, err
	}
	index2, err := c.readU8()
	if err != nil {
		return nil, err
	}
	return &SecurityGetReq{AttributeId: id, Index1: index1, Index2: index2}, nil
}

func (r *SecurityGetReq) Encode() []byte {
	return newEncoder().u8(byte(r.AttributeId)).u8(r.Index1).u8(r.Index2).bytes()
}

func (r *SecurityGetReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdSecurityGetReq, r.Encode())
}

// SecurityGetReqSRSP carries the requested security attribute's
// variable-length value.
type SecurityGetReqSRSP struct {
	Status Status
	Index1 byte
	Index2 byte
	Data   []byte
}

func decodeSecurityGetReqSRSP(c *cursor) (*SecurityGetReqSRSP, error) {
	status, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	index1, err := c.readU8()
	if err != nil {
		return nil, err
	}
	index2, err := c.readU8()
	if err != nil {
		return nil, err
	}
	data := c.readToEnd()
	return &SecurityGetReqSRSP{Status: status, Index1: index1, Index2: index2, Data: data}, nil
}

func (r *SecurityGetReqSRSP) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.Status)).u8(r.Index1).u8(r.Index2).fixed(r.Data)
	return e.bytes()
}

func (r *SecurityGetReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdSecurityGetReq, r.Encode())
}

// SecuritySetReq writes a security PIB attribute.
type SecuritySetReq struct {
	AttributeId    SecurityPIBAttributeId
	Index1         byte
	Index2         byte
	AttributeValue []byte
}

func decodeSecuritySetReq(c *cursor) (*SecuritySetReq, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	id, err := decodeSecurityPIBAttributeId(b)
	if err != nil {
		return nil, err
	}
	index1, err := c.readU8()
	if err != nil {
		return nil, err
	}
	index2, err := c.readU8()
	if err != nil {
		return nil, err
	}
	value := c.readToEnd()
	return &SecuritySetReq{AttributeId: id, Index1: index1, Index2: index2, AttributeValue: value}, nil
}

func (r *SecuritySetReq) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.AttributeId)).u8(r.Index1).u8(r.Index2).fixed(r.AttributeValue)
	return e.bytes()
}

func (r *SecuritySetReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdSecuritySetReq, r.Encode())
}

// SecuritySetReqSRSP reports the result of SecuritySetReq.
type SecuritySetReqSRSP struct{ Status Status }

func decodeSecuritySetReqSRSP(c *cursor) (*SecuritySetReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &SecuritySetReqSRSP{Status: s}, nil
}
func (r *SecuritySetReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *SecuritySetReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdSecuritySetReq, r.Encode())
}

// UpdatePANIdReq changes the PAN identifier in use.
type UpdatePANIdReq struct{ PANId uint16 }

func decodeUpdatePANIdReq(c *cursor) (*UpdatePANIdReq, error) {
	v, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	return &UpdatePANIdReq{PANId: v}, nil
}
func (r *UpdatePANIdReq) Encode() []byte { return newEncoder().u16le(r.PANId).bytes() }
func (r *UpdatePANIdReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdUpdatePANIdReq, r.Encode())
}

// UpdatePANIdReqSRSP reports the result of UpdatePANIdReq.
type UpdatePANIdReqSRSP struct{ Status Status }

func decodeUpdatePANIdReqSRSP(c *cursor) (*UpdatePANIdReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &UpdatePANIdReqSRSP{Status: s}, nil
}
func (r *UpdatePANIdReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *UpdatePANIdReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdUpdatePANIdReq, r.Encode())
}

// AddDeviceReq installs a device's security material into the MAC security
// table, used by frame counter/key lookup on receive.
type AddDeviceReq struct {
	PANId        uint16
	ShortAddr    ShortAddress
	ExtAddr      ExtendedAddress
	FrameCounter uint32
	Exempt       bool
	Unique       bool
	Duplicate    bool
	DataSize     byte
	LookupData   []byte
}

func decodeAddDeviceReq(c *cursor) (*AddDeviceReq, error) {
	panId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	shortAddr, err := decodeShortAddress(c)
	if err != nil {
		return nil, err
	}
	extAddr, err := decodeExtendedAddress(c)
	if err != nil {
		return nil, err
	}
	frameCounter, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	exemptB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	uniqueB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	duplicateB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	dataSize, err := c.readU8()
	if err != nil {
		return nil, err
	}
	lookupData, err := decodeFixedReversed(c, 9)
	if err != nil {
		return nil, err
	}
	return &AddDeviceReq{PANId: panId, ShortAddr: shortAddr, ExtAddr: extAddr, FrameCounter: frameCounter,
		Exempt: exemptB != 0, Unique: uniqueB != 0, Duplicate: duplicateB != 0, DataSize: dataSize, LookupData: lookupData}, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func (r *AddDeviceReq) Encode() []byte {
	e := newEncoder()
	e.u16le(r.PANId)
	r.ShortAddr.encodeInto(e)
	r.ExtAddr.encodeInto(e)
	e.u32le(r.FrameCounter).u8(boolByte(r.Exempt)).u8(boolByte(r.Unique)).u8(boolByte(r.Duplicate)).u8(r.DataSize)
	encodeFixedReversed(e, r.LookupData)
	return e.bytes()
}

func (r *AddDeviceReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdAddDeviceReq, r.Encode())
}

// AddDeviceReqSRSP reports the result of AddDeviceReq.
type AddDeviceReqSRSP struct{ Status Status }

func decodeAddDeviceReqSRSP(c *cursor) (*AddDeviceReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &AddDeviceReqSRSP{Status: s}, nil
}
func (r *AddDeviceReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *AddDeviceReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdAddDeviceReq, r.Encode())
}

// DeleteDeviceReq removes a device's security material by extended address.
type DeleteDeviceReq struct{ ExtAddr ExtendedAddress }

func decodeDeleteDeviceReq(c *cursor) (*DeleteDeviceReq, error) {
	extAddr, err := decodeExtendedAddress(c)
	if err != nil {
		return nil, err
	}
	return &DeleteDeviceReq{ExtAddr: extAddr}, nil
}
func (r *DeleteDeviceReq) Encode() []byte {
	e := newEncoder()
	r.ExtAddr.encodeInto(e)
	return e.bytes()
}
func (r *DeleteDeviceReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdDeleteDeviceReq, r.Encode())
}

// DeleteDeviceReqSRSP reports the result of DeleteDeviceReq.
type DeleteDeviceReqSRSP struct{ Status Status }

func decodeDeleteDeviceReqSRSP(c *cursor) (*DeleteDeviceReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &DeleteDeviceReqSRSP{Status: s}, nil
}
func (r *DeleteDeviceReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *DeleteDeviceReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdDeleteDeviceReq, r.Encode())
}

// DeleteAllDevicesReq clears the entire device security table.
type DeleteAllDevicesReq struct{}

func decodeDeleteAllDevicesReq(c *cursor) (*DeleteAllDevicesReq, error) {
	return &DeleteAllDevicesReq{}, nil
}
func (r *DeleteAllDevicesReq) Encode() []byte { return nil }
func (r *DeleteAllDevicesReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdDeleteAllDevicesReq, r.Encode())
}

// DeleteAllDevicesReqSRSP reports the result of DeleteAllDevicesReq.
type DeleteAllDevicesReqSRSP struct{ Status Status }

func decodeDeleteAllDevicesReqSRSP(c *cursor) (*DeleteAllDevicesReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &DeleteAllDevicesReqSRSP{Status: s}, nil
}
func (r *DeleteAllDevicesReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *DeleteAllDevicesReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdDeleteAllDevicesReq, r.Encode())
}

// DeleteKeyReq removes a key-table entry by Index.
type DeleteKeyReq struct{ Index byte }

func decodeDeleteKeyReq(c *cursor) (*DeleteKeyReq, error) {
	v, err := c.readU8()
	if err != nil {
		return nil, err
	}
	return &DeleteKeyReq{Index: v}, nil
}
func (r *DeleteKeyReq) Encode() []byte { return newEncoder().u8(r.Index).bytes() }
func (r *DeleteKeyReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdDeleteKeyReq, r.Encode())
}

// DeleteKeyReqSRSP reports the result of DeleteKeyReq.
type DeleteKeyReqSRSP struct{ Status Status }

func decodeDeleteKeyReqSRSP(c *cursor) (*DeleteKeyReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &DeleteKeyReqSRSP{Status: s}, nil
}
func (r *DeleteKeyReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *DeleteKeyReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdDeleteKeyReq, r.Encode())
}

// ReadKeyReq reads a key-table entry's frame counter by Index.
type ReadKeyReq struct{ Index byte }

func decodeReadKeyReq(c *cursor) (*ReadKeyReq, error) {
	v, err := c.readU8()
	if err != nil {
		return nil, err
	}
	return &ReadKeyReq{Index: v}, nil
}
func (r *ReadKeyReq) Encode() []byte { return newEncoder().u8(r.Index).bytes() }
func (r *ReadKeyReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdReadKeyReq, r.Encode())
}

// ReadKeyReqSRSP carries the requested key-table entry's frame counter.
type ReadKeyReqSRSP struct {
	Status       Status
	FrameCounter uint32
}

func decodeReadKeyReqSRSP(c *cursor) (*ReadKeyReqSRSP, error) {
	status, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	frameCounter, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	return &ReadKeyReqSRSP{Status: status, FrameCounter: frameCounter}, nil
}
func (r *ReadKeyReqSRSP) Encode() []byte {
	return newEncoder().u8(byte(r.Status)).u32le(r.FrameCounter).bytes()
}
func (r *ReadKeyReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdReadKeyReq, r.Encode())
}

// WriteKeyReq installs or replaces a key-table entry.
type WriteKeyReq struct {
	New          bool
	Index        uint16
	Key          []byte
	FrameCounter uint32
	DataSize     byte
	LookupData   []byte
}

func decodeWriteKeyReq(c *cursor) (*WriteKeyReq, error) {
	newB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	index, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	key, err := decodeFixedReversed(c, 16)
	if err != nil {
		return nil, err
	}
	frameCounter, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	dataSize, err := c.readU8()
	if err != nil {
		return nil, err
	}
	lookupData, err := decodeFixedReversed(c, 9)
	if err != nil {
		return nil, err
	}
	return &WriteKeyReq{New: newB != 0, Index: index, Key: key, FrameCounter: frameCounter, DataSize: dataSize, LookupData: lookupData}, nil
}

func (r *WriteKeyReq) Encode() []byte {
	e := newEncoder()
	e.u8(boolByte(r.New)).u16le(r.Index)
	encodeFixedReversed(e, r.Key)
	e.u32le(r.FrameCounter).u8(r.DataSize)
	encodeFixedReversed(e, r.LookupData)
	return e.bytes()
}

func (r *WriteKeyReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdWriteKeyReq, r.Encode())
}

// WriteKeyReqSRSP reports the result of WriteKeyReq.
type WriteKeyReqSRSP struct{ Status Status }

func decodeWriteKeyReqSRSP(c *cursor) (*WriteKeyReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &WriteKeyReqSRSP{Status: s}, nil
}
func (r *WriteKeyReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *WriteKeyReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdWriteKeyReq, r.Encode())
}

// OrphanRsp answers an OrphanInd, telling the device whether the orphaned
// node is still a known child.
type OrphanRsp struct {
	ExtendedAddress    ExtendedAddress
	AssocShortAddress  ShortAddress
	AssociatedMember   bool
	KeySource          KeySource
	SecurityLevel      SecurityLevel
	KeyIdMode          KeyIdMode
	KeyIndex           byte
}

func decodeOrphanRsp(c *cursor) (*OrphanRsp, error) {
	extendedAddress, err := decodeExtendedAddress(c)
	if err != nil {
		return nil, err
	}
	assocShortAddress, err := decodeShortAddress(c)
	if err != nil {
		return nil, err
	}
	memberB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	return &OrphanRsp{ExtendedAddress: extendedAddress, AssocShortAddress: assocShortAddress, AssociatedMember: memberB != 0,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex}, nil
}

func (r *OrphanRsp) Encode() []byte {
	e := newEncoder()
	r.ExtendedAddress.encodeInto(e)
	r.AssocShortAddress.encodeInto(e)
	e.u8(boolByte(r.AssociatedMember))
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	return e.bytes()
}

func (r *OrphanRsp) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdOrphanRsp, r.Encode())
}

// OrphanRspSRSP reports the result of OrphanRsp.
type OrphanRspSRSP struct{ Status Status }

func decodeOrphanRspSRSP(c *cursor) (*OrphanRspSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &OrphanRspSRSP{Status: s}, nil
}
func (r *OrphanRspSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *OrphanRspSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdOrphanRsp, r.Encode())
}

// OrphanInd notifies the host that an orphaned device is seeking its
// former coordinator.
type OrphanInd struct {
	ExtendedAddress ExtendedAddress
	KeySource       KeySource
	SecurityLevel   SecurityLevel
	KeyIdMode       KeyIdMode
	KeyIndex        byte
}

func decodeOrphanInd(c *cursor) (*OrphanInd, error) {
	extendedAddress, err := decodeExtendedAddress(c)
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	return &OrphanInd{ExtendedAddress: extendedAddress,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex}, nil
}

func (r *OrphanInd) Encode() []byte {
	e := newEncoder()
	r.ExtendedAddress.encodeInto(e)
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	return e.bytes()
}

func (r *OrphanInd) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdOrphanInd, r.Encode())
}

// PollReq polls a coordinator for pending data.
type PollReq struct {
	CoordAddress  Address
	CoordPANId    uint16
	KeySource     KeySource
	SecurityLevel SecurityLevel
	KeyIdMode     KeyIdMode
	KeyIndex      byte
}

func decodePollReq(c *cursor) (*PollReq, error) {
	coordAddress, err := decodeAddress(c)
	if err != nil {
		return nil, err
	}
	coordPANId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	return &PollReq{CoordAddress: coordAddress, CoordPANId: coordPANId,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex}, nil
}

func (r *PollReq) Encode() []byte {
	e := newEncoder()
	r.CoordAddress.encodeInto(e)
	e.u16le(r.CoordPANId)
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	return e.bytes()
}

func (r *PollReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdPollReq, r.Encode())
}

// PollReqSRSP reports the result of PollReq.
type PollReqSRSP struct{ Status Status }

func decodePollReqSRSP(c *cursor) (*PollReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &PollReqSRSP{Status: s}, nil
}
func (r *PollReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *PollReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdPollReq, r.Encode())
}

// PollCnf reports whether a PollReq found pending data.
type PollCnf struct {
	Status       Status
	FramePending bool
}

func decodePollCnf(c *cursor) (*PollCnf, error) {
	status, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	return &PollCnf{Status: status, FramePending: b != 0}, nil
}
func (r *PollCnf) Encode() []byte {
	return newEncoder().u8(byte(r.Status)).u8(boolByte(r.FramePending)).bytes()
}
func (r *PollCnf) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdPollCnf, r.Encode())
}

// PollInd notifies the host that a device polled this coordinator.
type PollInd struct {
	DevAddr    Address
	PANId      uint16
	NoResponse bool
}

func decodePollInd(c *cursor) (*PollInd, error) {
	devAddr, err := decodeAddress(c)
	if err != nil {
		return nil, err
	}
	panId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	return &PollInd{DevAddr: devAddr, PANId: panId, NoResponse: b != 0}, nil
}

func (r *PollInd) Encode() []byte {
	e := newEncoder()
	r.DevAddr.encodeInto(e)
	e.u16le(r.PANId).u8(boolByte(r.NoResponse))
	return e.bytes()
}

func (r *PollInd) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdPollInd, r.Encode())
}

// ResetReq resets the MAC layer; SetDefault additionally restores PIB
// defaults.
type ResetReq struct{ SetDefault bool }

func decodeResetReq(c *cursor) (*ResetReq, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	return &ResetReq{SetDefault: b != 0}, nil
}
func (r *ResetReq) Encode() []byte { return newEncoder().u8(boolByte(r.SetDefault)).bytes() }
func (r *ResetReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdResetReq, r.Encode())
}

// ResetReqSRSP reports the result of ResetReq.
type ResetReqSRSP struct{ Status Status }

func decodeResetReqSRSP(c *cursor) (*ResetReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &ResetReqSRSP{Status: s}, nil
}
func (r *ResetReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *ResetReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdResetReq, r.Encode())
}

// ScanReq starts an energy detect, active, or passive channel scan.
type ScanReq struct {
	ScanType      ScanType
	ScanDuration  byte
	ChannelPage   byte
	PhyId         PhyId
	MaxResults    byte
	PermitJoin    PermitJoin
	LinkQuality   byte
	RspFilter     byte
	MPMScan       MPMScan
	MPMType       MPMType
	MPMDuration   uint16
	KeySource     KeySource
	SecurityLevel SecurityLevel
	KeyIdMode     KeyIdMode
	KeyIndex      byte
	Channels      ChannelsBitMap
}

func decodeScanReq(c *cursor) (*ScanReq, error) {
	stB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	scanType, err := decodeScanType(stB)
	if err != nil {
		return nil, err
	}
	scanDuration, err := c.readU8()
	if err != nil {
		return nil, err
	}
	channelPage, err := c.readU8()
	if err != nil {
		return nil, err
	}
	phyIdB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	phyId, err := decodePhyId(phyIdB)
	if err != nil {
		return nil, err
	}
	maxResults, err := c.readU8()
	if err != nil {
		return nil, err
	}
	pjB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	permitJoin, err := decodePermitJoin(pjB)
	if err != nil {
		return nil, err
	}
	linkQuality, err := c.readU8()
	if err != nil {
		return nil, err
	}
	rspFilter, err := c.readU8()
	if err != nil {
		return nil, err
	}
	mpmScanB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	mpmScan, err := decodeMPMScan(mpmScanB)
	if err != nil {
		return nil, err
	}
	mpmTypeB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	mpmType, err := decodeMPMType(mpmTypeB)
	if err != nil {
		return nil, err
	}
	mpmDuration, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	channels, err := decodeChannelsBitMap(c)
	if err != nil {
		return nil, err
	}
	return &ScanReq{ScanType: scanType, ScanDuration: scanDuration, ChannelPage: channelPage, PhyId: phyId,
		MaxResults: maxResults, PermitJoin: permitJoin, LinkQuality: linkQuality, RspFilter: rspFilter,
		MPMScan: mpmScan, MPMType: mpmType, MPMDuration: mpmDuration,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex,
		Channels: channels}, nil
}

func (r *ScanReq) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.ScanType)).u8(r.ScanDuration).u8(r.ChannelPage).u8(byte(r.PhyId)).u8(r.MaxResults)
	e.u8(byte(r.PermitJoin)).u8(r.LinkQuality).u8(r.RspFilter).u8(byte(r.MPMScan)).u8(byte(r.MPMType)).u16le(r.MPMDuration)
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	r.Channels.encodeInto(e)
	return e.bytes()
}

func (r *ScanReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdScanReq, r.Encode())
}

// ScanReqSRSP reports the result of ScanReq.
type ScanReqSRSP struct{ Status Status }

func decodeScanReqSRSP(c *cursor) (*ScanReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &ScanReqSRSP{Status: s}, nil
}
func (r *ScanReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *ScanReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdScanReq, r.Encode())
}

// ScanCnf reports a scan's results once it completes.
type ScanCnf struct {
	Status            Status
	ScanType          ScanType
	ChannelPage       byte
	PhyId             PhyId
	UnscannedChannels ChannelsBitMap
	ResultListCount   byte
	ResultList        []byte
}

func decodeScanCnf(c *cursor) (*ScanCnf, error) {
	status, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	stB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	scanType, err := decodeScanType(stB)
	if err != nil {
		return nil, err
	}
	channelPage, err := c.readU8()
	if err != nil {
		return nil, err
	}
	phyIdB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	phyId, err := decodePhyId(phyIdB)
	if err != nil {
		return nil, err
	}
	unscannedChannels, err := decodeChannelsBitMap(c)
	if err != nil {
		return nil, err
	}
	resultListCount, err := c.readU8()
	if err != nil {
		return nil, err
	}
	resultList := c.readToEnd()
	return &ScanCnf{Status: status, ScanType: scanType, ChannelPage: channelPage, PhyId: phyId,
		UnscannedChannels: unscannedChannels, ResultListCount: resultListCount, ResultList: resultList}, nil
}

func (r *ScanCnf) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.Status)).u8(byte(r.ScanType)).u8(r.ChannelPage).u8(byte(r.PhyId))
	r.UnscannedChannels.encodeInto(e)
	e.u8(r.ResultListCount).fixed(r.ResultList)
	return e.bytes()
}

func (r *ScanCnf) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdScanCnf, r.Encode())
}

// StartReq starts this device operating as a PAN coordinator.
type StartReq struct {
	StartTime            uint32
	PANId                uint16
	LogicalChannel       byte
	ChannelPage          byte
	PhyId                PhyId
	BeaconOrder          byte
	SuperFrameOrder      byte
	PANCoordinator       bool
	BatteryLifeExt       bool
	CoordRealignment     bool
	RealignKeySource     KeySource
	RealignSecurityLevel SecurityLevel
	RealignKeyIdMode     KeyIdMode
	RealignKeyIndex      byte
	BeaconKeySource      KeySource
	BeaconSecurityLevel  SecurityLevel
	BeaconKeyIdMode      KeyIdMode
	BeaconKeyIndex       byte
	StartFH              bool
	EnhBeaconOrder       byte
	OfsTimeSlot          byte
	NonBeaconOrder       uint16
	NumIEs               byte
	IEIdList             []byte
}

func decodeStartReq(c *cursor) (*StartReq, error) {
	startTime, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	panId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	logicalChannel, err := c.readU8()
	if err != nil {
		return nil, err
	}
	channelPage, err := c.readU8()
	if err != nil {
		return nil, err
	}
	phyIdB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	phyId, err := decodePhyId(phyIdB)
	if err != nil {
		return nil, err
	}
	beaconOrder, err := c.readU8()
	if err != nil {
		return nil, err
	}
	superFrameOrder, err := c.readU8()
	if err != nil {
		return nil, err
	}
	panCoordB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	batteryB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	realignB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	realignKS, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	beaconKS, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	startFHB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	enhBeaconOrder, err := c.readU8()
	if err != nil {
		return nil, err
	}
	ofsTimeSlot, err := c.readU8()
	if err != nil {
		return nil, err
	}
	nonBeaconOrder, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	numIEs, err := c.readU8()
	if err != nil {
		return nil, err
	}
	ieIdList, err := c.readFixed(int(numIEs))
	if err != nil {
		return nil, err
	}
	return &StartReq{
		StartTime: startTime, PANId: panId, LogicalChannel: logicalChannel, ChannelPage: channelPage, PhyId: phyId,
		BeaconOrder: beaconOrder, SuperFrameOrder: superFrameOrder,
		PANCoordinator: panCoordB != 0, BatteryLifeExt: batteryB != 0, CoordRealignment: realignB != 0,
		RealignKeySource: realignKS.KeySource, RealignSecurityLevel: realignKS.SecurityLevel,
		RealignKeyIdMode: realignKS.KeyIdMode, RealignKeyIndex: realignKS.KeyIndex,
		BeaconKeySource: beaconKS.KeySource, BeaconSecurityLevel: beaconKS.SecurityLevel,
		BeaconKeyIdMode: beaconKS.KeyIdMode, BeaconKeyIndex: beaconKS.KeyIndex,
		StartFH: startFHB != 0, EnhBeaconOrder: enhBeaconOrder, OfsTimeSlot: ofsTimeSlot,
		NonBeaconOrder: nonBeaconOrder, NumIEs: numIEs, IEIdList: ieIdList,
	}, nil
}

func (r *StartReq) Encode() []byte {
	e := newEncoder()
	e.u32le(r.StartTime).u16le(r.PANId).u8(r.LogicalChannel).u8(r.ChannelPage).u8(byte(r.PhyId))
	e.u8(r.BeaconOrder).u8(r.SuperFrameOrder)
	e.u8(boolByte(r.PANCoordinator)).u8(boolByte(r.BatteryLifeExt)).u8(boolByte(r.CoordRealignment))
	keySecurity{r.RealignKeySource, r.RealignSecurityLevel, r.RealignKeyIdMode, r.RealignKeyIndex}.encodeInto(e)
	keySecurity{r.BeaconKeySource, r.BeaconSecurityLevel, r.BeaconKeyIdMode, r.BeaconKeyIndex}.encodeInto(e)
	e.u8(boolByte(r.StartFH)).u8(r.EnhBeaconOrder).u8(r.OfsTimeSlot).u16le(r.NonBeaconOrder).u8(r.NumIEs).fixed(r.IEIdList)
	return e.bytes()
}

func (r *StartReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdStartReq, r.Encode())
}

// StartReqSRSP reports the result of StartReq.
type StartReqSRSP struct{ Status Status }

func decodeStartReqSRSP(c *cursor) (*StartReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &StartReqSRSP{Status: s}, nil
}
func (r *StartReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *StartReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdStartReq, r.Encode())
}

// StartCnf reports the final result of StartReq asynchronously.
type StartCnf struct{ Status Status }

func decodeStartCnf(c *cursor) (*StartCnf, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &StartCnf{Status: s}, nil
}
func (r *StartCnf) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *StartCnf) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdStartCnf, r.Encode())
}

// SyncReq requests the device track (or stop tracking) beacons on a channel.
type SyncReq struct {
	LogicalChannel byte
	ChannelPage    byte
	TrackBeacon    bool
	PhyId          PhyId
}

func decodeSyncReq(c *cursor) (*SyncReq, error) {
	logicalChannel, err := c.readU8()
	if err != nil {
		return nil, err
	}
	channelPage, err := c.readU8()
	if err != nil {
		return nil, err
	}
	trackB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	phyIdB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	phyId, err := decodePhyId(phyIdB)
	if err != nil {
		return nil, err
	}
	return &SyncReq{LogicalChannel: logicalChannel, ChannelPage: channelPage, TrackBeacon: trackB != 0, PhyId: phyId}, nil
}

func (r *SyncReq) Encode() []byte {
	return newEncoder().u8(r.LogicalChannel).u8(r.ChannelPage).u8(boolByte(r.TrackBeacon)).u8(byte(r.PhyId)).bytes()
}

func (r *SyncReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdSyncReq, r.Encode())
}

// SyncReqSRSP reports the result of SyncReq.
type SyncReqSRSP struct{ Status Status }

func decodeSyncReqSRSP(c *cursor) (*SyncReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &SyncReqSRSP{Status: s}, nil
}
func (r *SyncReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *SyncReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdSyncReq, r.Encode())
}

// SyncLossInd reports that beacon tracking (SyncReq) has lost sync.
type SyncLossInd struct {
	Status         Status
	PANId          uint16
	LogicalChannel byte
	ChannelPage    byte
	PhyId          PhyId
	KeySource      KeySource
	SecurityLevel  SecurityLevel
	KeyIdMode      KeyIdMode
	KeyIndex       byte
}

func decodeSyncLossInd(c *cursor) (*SyncLossInd, error) {
	status, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	panId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	logicalChannel, err := c.readU8()
	if err != nil {
		return nil, err
	}
	channelPage, err := c.readU8()
	if err != nil {
		return nil, err
	}
	phyIdB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	phyId, err := decodePhyId(phyIdB)
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	return &SyncLossInd{Status: status, PANId: panId, LogicalChannel: logicalChannel, ChannelPage: channelPage, PhyId: phyId,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex}, nil
}

func (r *SyncLossInd) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.Status)).u16le(r.PANId).u8(r.LogicalChannel).u8(r.ChannelPage).u8(byte(r.PhyId))
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	return e.bytes()
}

func (r *SyncLossInd) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdSyncLossInd, r.Encode())
}

// SetRxGainReq toggles the receiver's high-gain mode.
type SetRxGainReq struct{ Mode bool }

func decodeSetRxGainReq(c *cursor) (*SetRxGainReq, error) {
	b, err := c.readU8()
	if err != nil {
		return nil, err
	}
	return &SetRxGainReq{Mode: b != 0}, nil
}
func (r *SetRxGainReq) Encode() []byte { return newEncoder().u8(boolByte(r.Mode)).bytes() }
func (r *SetRxGainReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdSetRxGainReq, r.Encode())
}

// SetRxGainReqSRSP reports the result of SetRxGainReq.
type SetRxGainReqSRSP struct{ Status Status }

func decodeSetRxGainReqSRSP(c *cursor) (*SetRxGainReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &SetRxGainReqSRSP{Status: s}, nil
}
func (r *SetRxGainReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *SetRxGainReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdSetRxGainReq, r.Encode())
}

// WSAsyncReq transmits a Wi-SUN asynchronous frame across Channels.
type WSAsyncReq struct {
	Operation     WiSUNAsyncOperation
	FrameType     WiSUNAsyncFrameType
	KeySource     KeySource
	SecurityLevel SecurityLevel
	KeyIdMode     KeyIdMode
	KeyIndex      byte
	Channels      ChannelsBitMap
}

func decodeWSAsyncReq(c *cursor) (*WSAsyncReq, error) {
	opB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	op, err := decodeWiSUNAsyncOperation(opB)
	if err != nil {
		return nil, err
	}
	ftB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	ft, err := decodeWiSUNAsyncFrameType(ftB)
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	channels, err := decodeChannelsBitMap(c)
	if err != nil {
		return nil, err
	}
	return &WSAsyncReq{Operation: op, FrameType: ft,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex,
		Channels: channels}, nil
}

func (r *WSAsyncReq) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.Operation)).u8(byte(r.FrameType))
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	r.Channels.encodeInto(e)
	return e.bytes()
}

func (r *WSAsyncReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdWSAsyncReq, r.Encode())
}

// WSAsyncReqSRSP reports the result of WSAsyncReq.
type WSAsyncReqSRSP struct{ Status Status }

func decodeWSAsyncReqSRSP(c *cursor) (*WSAsyncReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &WSAsyncReqSRSP{Status: s}, nil
}
func (r *WSAsyncReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *WSAsyncReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdWSAsyncReq, r.Encode())
}

// WSAsyncCnf reports that a WSAsyncReq finished transmitting.
type WSAsyncCnf struct{ Status Status }

func decodeWSAsyncCnf(c *cursor) (*WSAsyncCnf, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &WSAsyncCnf{Status: s}, nil
}
func (r *WSAsyncCnf) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *WSAsyncCnf) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdWSAsyncCnf, r.Encode())
}

// WSAsyncInd is an unsolicited report of a received Wi-SUN asynchronous
// frame. IELength sizes IEPayload.
type WSAsyncInd struct {
	SrcAddress    Address
	DestAddress   Address
	Timestamp     uint32
	Timestamp2    uint16
	SrcPANId      uint16
	DestPANId     uint16
	LinkQuality   byte
	Correlation   byte
	RSSI          byte
	DSN           byte
	KeySource     KeySource
	SecurityLevel SecurityLevel
	KeyIdMode     KeyIdMode
	KeyIndex      byte
	FrameCounter  uint32
	FrameType     WiSUNAsyncFrameType
	DataLength    uint16
	IELength      uint16
	DataPayload   []byte
	IEPayload     []byte
}

func decodeWSAsyncInd(c *cursor) (*WSAsyncInd, error) {
	srcAddress, err := decodeAddress(c)
	if err != nil {
		return nil, err
	}
	destAddress, err := decodeAddress(c)
	if err != nil {
		return nil, err
	}
	timestamp, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	timestamp2, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	srcPANId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	destPANId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	linkQuality, err := c.readU8()
	if err != nil {
		return nil, err
	}
	correlation, err := c.readU8()
	if err != nil {
		return nil, err
	}
	rssi, err := c.readU8()
	if err != nil {
		return nil, err
	}
	dsn, err := c.readU8()
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	frameCounter, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	ftB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	frameType, err := decodeWiSUNAsyncFrameType(ftB)
	if err != nil {
		return nil, err
	}
	dataLength, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	ieLength, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	dataPayload, err := c.readFixed(int(dataLength))
	if err != nil {
		return nil, err
	}
	iePayload, err := c.readFixed(int(ieLength))
	if err != nil {
		return nil, err
	}
	return &WSAsyncInd{SrcAddress: srcAddress, DestAddress: destAddress, Timestamp: timestamp, Timestamp2: timestamp2,
		SrcPANId: srcPANId, DestPANId: destPANId, LinkQuality: linkQuality, Correlation: correlation, RSSI: rssi, DSN: dsn,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex,
		FrameCounter: frameCounter, FrameType: frameType, DataLength: dataLength, IELength: ieLength,
		DataPayload: dataPayload, IEPayload: iePayload}, nil
}

func (r *WSAsyncInd) Encode() []byte {
	e := newEncoder()
	r.SrcAddress.encodeInto(e)
	r.DestAddress.encodeInto(e)
	e.u32le(r.Timestamp).u16le(r.Timestamp2).u16le(r.SrcPANId).u16le(r.DestPANId)
	e.u8(r.LinkQuality).u8(r.Correlation).u8(r.RSSI).u8(r.DSN)
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	e.u32le(r.FrameCounter).u8(byte(r.FrameType)).u16le(r.DataLength).u16le(r.IELength).fixed(r.DataPayload).fixed(r.IEPayload)
	return e.bytes()
}

func (r *WSAsyncInd) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdWSAsyncInd, r.Encode())
}

// FHEnableReq enables frequency hopping.
type FHEnableReq struct{}

func decodeFHEnableReq(c *cursor) (*FHEnableReq, error) { return &FHEnableReq{}, nil }
func (r *FHEnableReq) Encode() []byte                   { return nil }
func (r *FHEnableReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdFHEnableReq, r.Encode())
}

// FHEnableReqSRSP reports the result of FHEnableReq.
type FHEnableReqSRSP struct{ Status Status }

func decodeFHEnableReqSRSP(c *cursor) (*FHEnableReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &FHEnableReqSRSP{Status: s}, nil
}
func (r *FHEnableReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *FHEnableReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdFHEnableReq, r.Encode())
}

// FHStartReq starts frequency hopping operation.
type FHStartReq struct{}

func decodeFHStartReq(c *cursor) (*FHStartReq, error) { return &FHStartReq{}, nil }
func (r *FHStartReq) Encode() []byte                  { return nil }
func (r *FHStartReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdFHStartReq, r.Encode())
}

// FHStartReqSRSP reports the result of FHStartReq.
type FHStartReqSRSP struct{ Status Status }

func decodeFHStartReqSRSP(c *cursor) (*FHStartReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &FHStartReqSRSP{Status: s}, nil
}
func (r *FHStartReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *FHStartReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdFHStartReq, r.Encode())
}

// FHGetReq reads a frequency-hopping PIB attribute (16-bit, LE attribute id
// per the FH PIB's wider ID space).
type FHGetReq struct{ AttributeId FHPIBAttributeId }

func decodeFHGetReq(c *cursor) (*FHGetReq, error) {
	v, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	id, err := decodeFHPIBAttributeId(v)
	if err != nil {
		return nil, err
	}
	return &FHGetReq{AttributeId: id}, nil
}
func (r *FHGetReq) Encode() []byte { return newEncoder().u16le(uint16(r.AttributeId)).bytes() }
func (r *FHGetReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdFHGetReq, r.Encode())
}

// FHGetReqSRSP carries the requested FH PIB attribute's value.
type FHGetReqSRSP struct {
	Status Status
	Data   []byte
}

func decodeFHGetReqSRSP(c *cursor) (*FHGetReqSRSP, error) {
	status, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	data := c.readToEnd()
	return &FHGetReqSRSP{Status: status, Data: data}, nil
}
func (r *FHGetReqSRSP) Encode() []byte {
	return newEncoder().u8(byte(r.Status)).fixed(r.Data).bytes()
}
func (r *FHGetReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdFHGetReq, r.Encode())
}

// FHSetReq writes a frequency-hopping PIB attribute.
type FHSetReq struct {
	AttributeId FHPIBAttributeId
	Data        []byte
}

func decodeFHSetReq(c *cursor) (*FHSetReq, error) {
	v, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	id, err := decodeFHPIBAttributeId(v)
	if err != nil {
		return nil, err
	}
	data := c.readToEnd()
	return &FHSetReq{AttributeId: id, Data: data}, nil
}

func (r *FHSetReq) Encode() []byte {
	return newEncoder().u16le(uint16(r.AttributeId)).fixed(r.Data).bytes()
}

func (r *FHSetReq) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSREQ, MACCommandIdFHSetReq, r.Encode())
}

// FHSetReqSRSP reports the result of FHSetReq.
type FHSetReqSRSP struct{ Status Status }

func decodeFHSetReqSRSP(c *cursor) (*FHSetReqSRSP, error) {
	s, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	return &FHSetReqSRSP{Status: s}, nil
}
func (r *FHSetReqSRSP) Encode() []byte { return newEncoder().u8(byte(r.Status)).bytes() }
func (r *FHSetReqSRSP) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeSRSP, MACCommandIdFHSetReq, r.Encode())
}

// CommStatusInd notifies the host of a communication status event
// (association failure, security failure, transmission failure) observed
// during an exchange with another device.
type CommStatusInd struct {
	Status        Status
	SrcAddr       Address
	DstAddr       Address
	DevicePANId   uint16
	Reason        CommEventReason
	KeySource     KeySource
	SecurityLevel SecurityLevel
	KeyIdMode     KeyIdMode
	KeyIndex      byte
}

func decodeCommStatusInd(c *cursor) (*CommStatusInd, error) {
	status, err := decodeStatusOnly(c)
	if err != nil {
		return nil, err
	}
	srcAddr, err := decodeAddress(c)
	if err != nil {
		return nil, err
	}
	dstAddr, err := decodeAddress(c)
	if err != nil {
		return nil, err
	}
	devicePANId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	reasonB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	reason, err := decodeCommEventReason(reasonB)
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	return &CommStatusInd{Status: status, SrcAddr: srcAddr, DstAddr: dstAddr, DevicePANId: devicePANId, Reason: reason,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex}, nil
}

func (r *CommStatusInd) Encode() []byte {
	e := newEncoder()
	e.u8(byte(r.Status))
	r.SrcAddr.encodeInto(e)
	r.DstAddr.encodeInto(e)
	e.u16le(r.DevicePANId).u8(byte(r.Reason))
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	return e.bytes()
}

func (r *CommStatusInd) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdCommStatusInd, r.Encode())
}

// StandardBeaconFrame is a legacy (non-enhanced) 802.15.4 beacon payload.
type StandardBeaconFrame struct {
	BSN                   byte
	Timestamp             uint32
	CoordAddressMode      AddressMode
	CoordExtendedAddress  ExtendedAddress
	PANId                 uint16
	SuperframeSpec        uint16
	LogicalChannel        byte
	ChannelPage           byte
	GTSPermit             bool
	LinkQuality           byte
	SecurityFailure       bool
	KeySource             KeySource
	SecurityLevel         SecurityLevel
	KeyIdMode             KeyIdMode
	KeyIndex              byte
	ShortAddrs            byte
	ExtAddrs              byte
	SDULength             byte
	ShortAddrList         []ShortAddress
	ExtAddrList           []ExtendedAddress
	NSDU                  []byte
}

func decodeStandardBeaconFrame(c *cursor) (*StandardBeaconFrame, error) {
	bsn, err := c.readU8()
	if err != nil {
		return nil, err
	}
	timestamp, err := c.readU32LE()
	if err != nil {
		return nil, err
	}
	camB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	cam, err := decodeAddressMode(camB)
	if err != nil {
		return nil, err
	}
	coordExt, err := decodeExtendedAddress(c)
	if err != nil {
		return nil, err
	}
	panId, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	superframeSpec, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	logicalChannel, err := c.readU8()
	if err != nil {
		return nil, err
	}
	channelPage, err := c.readU8()
	if err != nil {
		return nil, err
	}
	gtsB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	linkQuality, err := c.readU8()
	if err != nil {
		return nil, err
	}
	secFailB, err := c.readU8()
	if err != nil {
		return nil, err
	}
	ks, err := decodeKeySecurity(c)
	if err != nil {
		return nil, err
	}
	shortAddrs, err := c.readU8()
	if err != nil {
		return nil, err
	}
	extAddrs, err := c.readU8()
	if err != nil {
		return nil, err
	}
	sduLength, err := c.readU8()
	if err != nil {
		return nil, err
	}
	shortAddrList := make([]ShortAddress, 0, shortAddrs)
	for i := byte(0); i < shortAddrs; i++ {
		a, err := decodeShortAddress(c)
		if err != nil {
			return nil, err
		}
		shortAddrList = append(shortAddrList, a)
	}
	extAddrList := make([]ExtendedAddress, 0, extAddrs)
	for i := byte(0); i < extAddrs; i++ {
		a, err := decodeExtendedAddress(c)
		if err != nil {
			return nil, err
		}
		extAddrList = append(extAddrList, a)
	}
	nsdu, err := c.readFixed(int(sduLength))
	if err != nil {
		return nil, err
	}
	return &StandardBeaconFrame{BSN: bsn, Timestamp: timestamp, CoordAddressMode: cam, CoordExtendedAddress: coordExt,
		PANId: panId, SuperframeSpec: superframeSpec, LogicalChannel: logicalChannel, ChannelPage: channelPage,
		GTSPermit: gtsB != 0, LinkQuality: linkQuality, SecurityFailure: secFailB != 0,
		KeySource: ks.KeySource, SecurityLevel: ks.SecurityLevel, KeyIdMode: ks.KeyIdMode, KeyIndex: ks.KeyIndex,
		ShortAddrs: shortAddrs, ExtAddrs: extAddrs, SDULength: sduLength,
		ShortAddrList: shortAddrList, ExtAddrList: extAddrList, NSDU: nsdu}, nil
}

func (r *StandardBeaconFrame) Encode() []byte {
	e := newEncoder()
	e.u8(r.BSN).u32le(r.Timestamp).u8(byte(r.CoordAddressMode))
	r.CoordExtendedAddress.encodeInto(e)
	e.u16le(r.PANId).u16le(r.SuperframeSpec).u8(r.LogicalChannel).u8(r.ChannelPage)
	e.u8(boolByte(r.GTSPermit)).u8(r.LinkQuality).u8(boolByte(r.SecurityFailure))
	keySecurity{r.KeySource, r.SecurityLevel, r.KeyIdMode, r.KeyIndex}.encodeInto(e)
	e.u8(r.ShortAddrs).u8(r.ExtAddrs).u8(r.SDULength)
	for _, a := range r.ShortAddrList {
		a.encodeInto(e)
	}
	for _, a := range r.ExtAddrList {
		a.encodeInto(e)
	}
	e.fixed(r.NSDU)
	return e.bytes()
}

// EnhancedBeaconFrame is an IEEE 802.15.4e enhanced beacon payload.
type EnhancedBeaconFrame struct {
	BSN             byte
	BeaconOrder     byte
	SuperFrameOrder byte
	FinalCapSlot    byte
	EnhBeaconOrder  byte
	OfsTimeSlot     byte
	CapBackOff      byte
	NonBeaconOrder  uint16
}

func decodeEnhancedBeaconFrame(c *cursor) (*EnhancedBeaconFrame, error) {
	bsn, err := c.readU8()
	if err != nil {
		return nil, err
	}
	beaconOrder, err := c.readU8()
	if err != nil {
		return nil, err
	}
	superFrameOrder, err := c.readU8()
	if err != nil {
		return nil, err
	}
	finalCapSlot, err := c.readU8()
	if err != nil {
		return nil, err
	}
	enhBeaconOrder, err := c.readU8()
	if err != nil {
		return nil, err
	}
	ofsTimeSlot, err := c.readU8()
	if err != nil {
		return nil, err
	}
	capBackOff, err := c.readU8()
	if err != nil {
		return nil, err
	}
	nonBeaconOrder, err := c.readU16LE()
	if err != nil {
		return nil, err
	}
	return &EnhancedBeaconFrame{BSN: bsn, BeaconOrder: beaconOrder, SuperFrameOrder: superFrameOrder,
		FinalCapSlot: finalCapSlot, EnhBeaconOrder: enhBeaconOrder, OfsTimeSlot: ofsTimeSlot,
		CapBackOff: capBackOff, NonBeaconOrder: nonBeaconOrder}, nil
}

func (r *EnhancedBeaconFrame) Encode() []byte {
	e := newEncoder()
	e.u8(r.BSN).u8(r.BeaconOrder).u8(r.SuperFrameOrder).u8(r.FinalCapSlot)
	e.u8(r.EnhBeaconOrder).u8(r.OfsTimeSlot).u8(r.CapBackOff).u16le(r.NonBeaconOrder)
	return e.bytes()
}

// BeaconNotifyInd is a tagged union over the two beacon frame shapes the
// device can report, discriminated by a leading byte (0 = standard,
// 1 = enhanced).
type BeaconNotifyInd struct {
	Standard *StandardBeaconFrame
	Enhanced *EnhancedBeaconFrame
}

func decodeBeaconNotifyInd(c *cursor) (*BeaconNotifyInd, error) {
	beaconType, err := c.readU8()
	if err != nil {
		return nil, err
	}
	switch beaconType {
	case 0:
		f, err := decodeStandardBeaconFrame(c)
		if err != nil {
			return nil, err
		}
		return &BeaconNotifyInd{Standard: f}, nil
	case 1:
		f, err := decodeEnhancedBeaconFrame(c)
		if err != nil {
			return nil, err
		}
		return &BeaconNotifyInd{Enhanced: f}, nil
	default:
		return nil, newErrorValue(ErrKindInvalidBeaconType, uint32(beaconType))
	}
}

func (r *BeaconNotifyInd) Encode() []byte {
	e := newEncoder()
	switch {
	case r.Standard != nil:
		e.u8(0).fixed(r.Standard.Encode())
	case r.Enhanced != nil:
		e.u8(1).fixed(r.Enhanced.Encode())
	}
	return e.bytes()
}

func (r *BeaconNotifyInd) ToMTFrame() *MTFrame {
	return macFrame(CommandTypeAREQ, MACCommandIdBeaconNotifyInd, r.Encode())
}
