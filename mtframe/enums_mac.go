// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

import "fmt"

// TxOption is a bitmask of MAC data-request transmission options; it is
// still validated as a closed set the way every other enum here is: only
// the single option values below are accepted, and a byte combining
// several option bits is rejected.
type TxOption uint8

const (
	TxOptionNoAck     TxOption = 0x00
	TxOptionAck       TxOption = 0x01
	TxOptionGTS       TxOption = 0x02
	TxOptionIndirect  TxOption = 0x04
	TxOptionPendBit   TxOption = 0x08
	TxOptionNoRetrans TxOption = 0x10
	TxOptionNoCNF     TxOption = 0x20
	TxOptionAltBE     TxOption = 0x40
	TxOptionPwrChan   TxOption = 0x80
)

var txOptionNames = map[TxOption]string{
	TxOptionNoAck: "NoAck", TxOptionAck: "Ack", TxOptionGTS: "GTS",
	TxOptionIndirect: "Indirect", TxOptionPendBit: "PendBit", TxOptionNoRetrans: "NoRetrans",
	TxOptionNoCNF: "NoCNF", TxOptionAltBE: "AltBE", TxOptionPwrChan: "PwrChan",
}

func (t TxOption) String() string {
	if n, ok := txOptionNames[t]; ok {
		return n
	}
	return fmt.Sprintf("TxOption(0x%02x)", uint8(t))
}

func decodeTxOption(v byte) (TxOption, error) {
	t := TxOption(v)
	if _, ok := txOptionNames[t]; !ok {
		return 0, newErrorValue(ErrKindInvalidTxOption, uint32(v))
	}
	return t, nil
}

type SecurityLevel uint8

const (
	SecurityLevelNoSecurity          SecurityLevel = 0x00
	SecurityLevelMIC32Auth           SecurityLevel = 0x01
	SecurityLevelMIC64Auth           SecurityLevel = 0x02
	SecurityLevelMIC128Auth          SecurityLevel = 0x03
	SecurityLevelAESEncryption       SecurityLevel = 0x04
	SecurityLevelAESEncryptionMIC32  SecurityLevel = 0x05
	SecurityLevelAESEncryptionMIC64  SecurityLevel = 0x06
	SecurityLevelAESEncryptionMIC128 SecurityLevel = 0x07
)

var securityLevelNames = map[SecurityLevel]string{
	SecurityLevelNoSecurity: "NoSecurity", SecurityLevelMIC32Auth: "MIC32Auth",
	SecurityLevelMIC64Auth: "MIC64Auth", SecurityLevelMIC128Auth: "MIC128Auth",
	SecurityLevelAESEncryption: "AESEncryption", SecurityLevelAESEncryptionMIC32: "AESEncryptionMIC32",
	SecurityLevelAESEncryptionMIC64: "AESEncryptionMIC64", SecurityLevelAESEncryptionMIC128: "AESEncryptionMIC128",
}

func (s SecurityLevel) String() string {
	if n, ok := securityLevelNames[s]; ok {
		return n
	}
	return fmt.Sprintf("SecurityLevel(%d)", uint8(s))
}

func decodeSecurityLevel(v byte) (SecurityLevel, error) {
	s := SecurityLevel(v)
	if _, ok := securityLevelNames[s]; !ok {
		return 0, newErrorValue(ErrKindInvalidSecurityLevel, uint32(v))
	}
	return s, nil
}

type KeyIdMode uint8

const (
	KeyIdModeNotUsed       KeyIdMode = 0x00
	KeyIdModeKey1ByteIndex KeyIdMode = 0x01
	KeyIdModeKey4ByteIndex KeyIdMode = 0x02
	KeyIdModeKey8ByteIndex KeyIdMode = 0x03
)

var keyIdModeNames = map[KeyIdMode]string{
	KeyIdModeNotUsed: "NotUsed", KeyIdModeKey1ByteIndex: "Key1ByteIndex",
	KeyIdModeKey4ByteIndex: "Key4ByteIndex", KeyIdModeKey8ByteIndex: "Key8ByteIndex",
}

func (k KeyIdMode) String() string {
	if n, ok := keyIdModeNames[k]; ok {
		return n
	}
	return fmt.Sprintf("KeyIdMode(%d)", uint8(k))
}

func decodeKeyIdMode(v byte) (KeyIdMode, error) {
	k := KeyIdMode(v)
	if _, ok := keyIdModeNames[k]; !ok {
		return 0, newErrorValue(ErrKindInvalidKeyIdMode, uint32(v))
	}
	return k, nil
}

type WiSUNAsyncFrameType uint8

const (
	WiSUNAsyncFrameTypePANAdvert    WiSUNAsyncFrameType = 0x00
	WiSUNAsyncFrameTypePANAdvertSOL WiSUNAsyncFrameType = 0x01
	WiSUNAsyncFrameTypePANConfig    WiSUNAsyncFrameType = 0x02
	WiSUNAsyncFrameTypePANConfigSOL WiSUNAsyncFrameType = 0x03
	WiSUNAsyncFrameTypeData         WiSUNAsyncFrameType = 0x04
	WiSUNAsyncFrameTypeAck          WiSUNAsyncFrameType = 0x05
	WiSUNAsyncFrameTypeEAPOL        WiSUNAsyncFrameType = 0x06
	WiSUNAsyncFrameTypeInvalid      WiSUNAsyncFrameType = 0xFF
)

var wiSUNAsyncFrameTypeNames = map[WiSUNAsyncFrameType]string{
	WiSUNAsyncFrameTypePANAdvert: "PANAdvert", WiSUNAsyncFrameTypePANAdvertSOL: "PANAdvertSOL",
	WiSUNAsyncFrameTypePANConfig: "PANConfig", WiSUNAsyncFrameTypePANConfigSOL: "PANConfigSOL",
	WiSUNAsyncFrameTypeData: "Data", WiSUNAsyncFrameTypeAck: "Ack",
	WiSUNAsyncFrameTypeEAPOL: "EAPOL", WiSUNAsyncFrameTypeInvalid: "Invalid",
}

func (t WiSUNAsyncFrameType) String() string {
	if n, ok := wiSUNAsyncFrameTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("WiSUNAsyncFrameType(%d)", uint8(t))
}

func decodeWiSUNAsyncFrameType(v byte) (WiSUNAsyncFrameType, error) {
	t := WiSUNAsyncFrameType(v)
	if _, ok := wiSUNAsyncFrameTypeNames[t]; !ok {
		return 0, newErrorValue(ErrKindInvalidWiSUNAsyncFrameType, uint32(v))
	}
	return t, nil
}

type AssociationStatus uint8

const (
	AssociationStatusSuccessful     AssociationStatus = 0x00
	AssociationStatusPANAtCapacity  AssociationStatus = 0x01
	AssociationStatusPANAccessDenied AssociationStatus = 0x02
)

var associationStatusNames = map[AssociationStatus]string{
	AssociationStatusSuccessful: "Successful", AssociationStatusPANAtCapacity: "PANAtCapacity",
	AssociationStatusPANAccessDenied: "PANAccessDenied",
}

func (a AssociationStatus) String() string {
	if n, ok := associationStatusNames[a]; ok {
		return n
	}
	return fmt.Sprintf("AssociationStatus(%d)", uint8(a))
}

func decodeAssociationStatus(v byte) (AssociationStatus, error) {
	a := AssociationStatus(v)
	if _, ok := associationStatusNames[a]; !ok {
		return 0, newErrorValue(ErrKindInvalidAssociationStatus, uint32(v))
	}
	return a, nil
}

type DisassociateReason uint8

const (
	DisassociateReasonReserved           DisassociateReason = 0x00
	DisassociateReasonCoorWishesDevLeave DisassociateReason = 0x01
	DisassociateReasonDevWishesLeave     DisassociateReason = 0x02
)

var disassociateReasonNames = map[DisassociateReason]string{
	DisassociateReasonReserved: "Reserved", DisassociateReasonCoorWishesDevLeave: "CoorWishesDevLeave",
	DisassociateReasonDevWishesLeave: "DevWishesLeave",
}

func (r DisassociateReason) String() string {
	if n, ok := disassociateReasonNames[r]; ok {
		return n
	}
	return fmt.Sprintf("DisassociateReason(%d)", uint8(r))
}

func decodeDisassociateReason(v byte) (DisassociateReason, error) {
	r := DisassociateReason(v)
	if _, ok := disassociateReasonNames[r]; !ok {
		return 0, newErrorValue(ErrKindInvalidDisassociationReason, uint32(v))
	}
	return r, nil
}

type MACPIBAttributeId uint8

const (
	MACPIBAckWaitDuration             MACPIBAttributeId = 0x40
	MACPIBAssociationPermit           MACPIBAttributeId = 0x41
	MACPIBAutoRequest                 MACPIBAttributeId = 0x42
	MACPIBBattLifeExt                 MACPIBAttributeId = 0x43
	MACPIBBattLeftExtPeriods          MACPIBAttributeId = 0x44
	MACPIBBeaconPayload               MACPIBAttributeId = 0x45
	MACPIBBeaconPayloadLength         MACPIBAttributeId = 0x46
	MACPIBBeaconOrder                 MACPIBAttributeId = 0x47
	MACPIBBeaconTxTime                MACPIBAttributeId = 0x48
	MACPIBBSN                         MACPIBAttributeId = 0x49
	MACPIBCoordExtendedAddress        MACPIBAttributeId = 0x4A
	MACPIBCoordShortAddress           MACPIBAttributeId = 0x4B
	MACPIBDSN                         MACPIBAttributeId = 0x4C
	MACPIBGTSPermit                   MACPIBAttributeId = 0x4D
	MACPIBMaxCSMABackoffs             MACPIBAttributeId = 0x4E
	MACPIBMinBE                       MACPIBAttributeId = 0x4F
	MACPIBPANId                       MACPIBAttributeId = 0x50
	MACPIBPromiscuousMode             MACPIBAttributeId = 0x51
	MACPIBRxOnWhenIdle                MACPIBAttributeId = 0x52
	MACPIBShortAddress                MACPIBAttributeId = 0x53
	MACPIBSuperframeOrder             MACPIBAttributeId = 0x54
	MACPIBTransactionPersistenceTime  MACPIBAttributeId = 0x55
	MACPIBAssociatedPANCoord          MACPIBAttributeId = 0x56
	MACPIBMaxBE                       MACPIBAttributeId = 0x57
	MACPIBFrameTotalWaitTime          MACPIBAttributeId = 0x58
	MACPIBMaxFrameRetries             MACPIBAttributeId = 0x59
	MACPIBResponseWaitTime            MACPIBAttributeId = 0x5A
	MACPIBSyncSymbolOffset            MACPIBAttributeId = 0x5B
	MACPIBTimestampSupported          MACPIBAttributeId = 0x5C
	MACPIBSecurityEnabled             MACPIBAttributeId = 0x5D
	MACPIBEBSN                        MACPIBAttributeId = 0x5E
	MACPIBEBeaconOrder                MACPIBAttributeId = 0x5F
	MACPIBEBeaconOrderNBPAN           MACPIBAttributeId = 0x60
	MACPIBOffsetTimeslot              MACPIBAttributeId = 0x61
	MACPIBIncludeMPMIE                MACPIBAttributeId = 0x62
	MACPIBPhyFSKPreambleLen           MACPIBAttributeId = 0x63
	MACPIBPhyMRFSKSFD                 MACPIBAttributeId = 0x64
	MACPIBPhyTransmitPowerSigned      MACPIBAttributeId = 0xE0
	MACPIBLogicalChannel              MACPIBAttributeId = 0xE1
	MACPIBExtendedAddress             MACPIBAttributeId = 0xE2
	MACPIBAltBE                       MACPIBAttributeId = 0xE3
	MACPIBDeviceBeaconOrder           MACPIBAttributeId = 0xE4
	MACPIBRF4CEPowerSavings           MACPIBAttributeId = 0xE5
	MACPIBFrameVersionSupport         MACPIBAttributeId = 0xE6
	MACPIBChannelPage                 MACPIBAttributeId = 0xE7
	MACPIBPhyCurrentDescriptorId      MACPIBAttributeId = 0xE8
	MACPIBFCSType                     MACPIBAttributeId = 0xE9
)

var macPIBAttributeIdNames = map[MACPIBAttributeId]string{
	MACPIBAckWaitDuration: "AckWaitDuration", MACPIBAssociationPermit: "AssociationPermit",
	MACPIBAutoRequest: "AutoRequest", MACPIBBattLifeExt: "BattLifeExt",
	MACPIBBattLeftExtPeriods: "BattLeftExtPeriods", MACPIBBeaconPayload: "BeaconPayload",
	MACPIBBeaconPayloadLength: "BeaconPayloadLength", MACPIBBeaconOrder: "BeaconOrder",
	MACPIBBeaconTxTime: "BeaconTxTime", MACPIBBSN: "BSN",
	MACPIBCoordExtendedAddress: "CoordExtendedAddress", MACPIBCoordShortAddress: "CoordShortAddress",
	MACPIBDSN: "DSN", MACPIBGTSPermit: "GTSPermit",
	MACPIBMaxCSMABackoffs: "MaxCSMABackoffs", MACPIBMinBE: "MinBE",
	MACPIBPANId: "PANId", MACPIBPromiscuousMode: "PromiscuousMode",
	MACPIBRxOnWhenIdle: "RxOnWhenIdle", MACPIBShortAddress: "ShortAddress",
	MACPIBSuperframeOrder: "SuperframeOrder", MACPIBTransactionPersistenceTime: "TransactionPersistenceTime",
	MACPIBAssociatedPANCoord: "AssociatedPANCoord", MACPIBMaxBE: "MaxBE",
	MACPIBFrameTotalWaitTime: "FrameTotalWaitTime", MACPIBMaxFrameRetries: "MaxFrameRetries",
	MACPIBResponseWaitTime: "ResponseWaitTime", MACPIBSyncSymbolOffset: "SyncSymbolOffset",
	MACPIBTimestampSupported: "TimestampSupported", MACPIBSecurityEnabled: "SecurityEnabled",
	MACPIBEBSN: "EBSN", MACPIBEBeaconOrder: "EBeaconOrder",
	MACPIBEBeaconOrderNBPAN: "EBeaconOrderNBPAN", MACPIBOffsetTimeslot: "OffsetTimeslot",
	MACPIBIncludeMPMIE: "IncludeMPMIE", MACPIBPhyFSKPreambleLen: "PhyFSKPreambleLen",
	MACPIBPhyMRFSKSFD: "PhyMRFSKSFD", MACPIBPhyTransmitPowerSigned: "PhyTransmitPowerSigned",
	MACPIBLogicalChannel: "LogicalChannel", MACPIBExtendedAddress: "ExtendedAddress",
	MACPIBAltBE: "AltBE", MACPIBDeviceBeaconOrder: "DeviceBeaconOrder",
	MACPIBRF4CEPowerSavings: "RF4CEPowerSavings", MACPIBFrameVersionSupport: "FrameVersionSupport",
	MACPIBChannelPage: "ChannelPage", MACPIBPhyCurrentDescriptorId: "PhyCurrentDescriptorId",
	MACPIBFCSType: "FCSType",
}

func (a MACPIBAttributeId) String() string {
	if n, ok := macPIBAttributeIdNames[a]; ok {
		return n
	}
	return fmt.Sprintf("MACPIBAttributeId(0x%02x)", uint8(a))
}

func decodeMACPIBAttributeId(v byte) (MACPIBAttributeId, error) {
	a := MACPIBAttributeId(v)
	if _, ok := macPIBAttributeIdNames[a]; !ok {
		return 0, newErrorValue(ErrKindInvalidMACPIBAttributeId, uint32(v))
	}
	return a, nil
}

// FHPIBAttributeId is u16-little-endian on the wire, unlike every other
// attribute-id enum here.
type FHPIBAttributeId uint16

const (
	FHPIBTrackParentEUI      FHPIBAttributeId = 0x2000
	FHPIBBCInterval          FHPIBAttributeId = 0x2001
	FHPIBUCExcludedChannels  FHPIBAttributeId = 0x2002
	FHPIBBCExcludedChannels  FHPIBAttributeId = 0x2003
	FHPIBUCDwellInterval     FHPIBAttributeId = 0x2004
	FHPIBBCDwellInterval     FHPIBAttributeId = 0x2005
	FHPIBClockDrift          FHPIBAttributeId = 0x2006
	FHPIBTimingAccuracy      FHPIBAttributeId = 0x2007
	FHPIBUCChannelFunction   FHPIBAttributeId = 0x2008
	FHPIBBCChannelFunction   FHPIBAttributeId = 0x2009
	FHPIBUseParentBSIE       FHPIBAttributeId = 0x200A
	FHPIBBrocastSchedId      FHPIBAttributeId = 0x200B
	FHPIBUCFixedChannel      FHPIBAttributeId = 0x200C
	FHPIBBCFixedChannel      FHPIBAttributeId = 0x200D
	FHPIBPANSize             FHPIBAttributeId = 0x200E
	FHPIBRoutingCost         FHPIBAttributeId = 0x200F
	FHPIBRoutingMethod       FHPIBAttributeId = 0x2010
	FHPIBEAPOLReady          FHPIBAttributeId = 0x2011
	FHPIBFANTPSVersion       FHPIBAttributeId = 0x2012
	FHPIBNetName             FHPIBAttributeId = 0x2013
	FHPIBPANVersion          FHPIBAttributeId = 0x2014
	FHPIBGTK0Hash            FHPIBAttributeId = 0x2015
	FHPIBGTK1Hash            FHPIBAttributeId = 0x2016
	FHPIBGTK2Hash            FHPIBAttributeId = 0x2017
	FHPIBGTK3Hash            FHPIBAttributeId = 0x2018
	FHPIBNeighborValidTime   FHPIBAttributeId = 0x2019
)

var fhPIBAttributeIdNames = map[FHPIBAttributeId]string{
	FHPIBTrackParentEUI: "TrackParentEUI", FHPIBBCInterval: "BCInterval",
	FHPIBUCExcludedChannels: "UCExcludedChannels", FHPIBBCExcludedChannels: "BCExcludedChannels",
	FHPIBUCDwellInterval: "UCDwellInterval", FHPIBBCDwellInterval: "BCDwellInterval",
	FHPIBClockDrift: "ClockDrift", FHPIBTimingAccuracy: "TimingAccuracy",
	FHPIBUCChannelFunction: "UCChannelFunction", FHPIBBCChannelFunction: "BCChannelFunction",
	FHPIBUseParentBSIE: "UseParentBSIE", FHPIBBrocastSchedId: "BrocastSchedId",
	FHPIBUCFixedChannel: "UCFixedChannel", FHPIBBCFixedChannel: "BCFixedChannel",
	FHPIBPANSize: "PANSize", FHPIBRoutingCost: "RoutingCost",
	FHPIBRoutingMethod: "RoutingMethod", FHPIBEAPOLReady: "EAPOLReady",
	FHPIBFANTPSVersion: "FANTPSVersion", FHPIBNetName: "NetName",
	FHPIBPANVersion: "PANVersion", FHPIBGTK0Hash: "GTK0Hash",
	FHPIBGTK1Hash: "GTK1Hash", FHPIBGTK2Hash: "GTK2Hash",
	FHPIBGTK3Hash: "GTK3Hash", FHPIBNeighborValidTime: "NeighborValidTime",
}

func (a FHPIBAttributeId) String() string {
	if n, ok := fhPIBAttributeIdNames[a]; ok {
		return n
	}
	return fmt.Sprintf("FHPIBAttributeId(0x%04x)", uint16(a))
}

func decodeFHPIBAttributeId(v uint16) (FHPIBAttributeId, error) {
	a := FHPIBAttributeId(v)
	if _, ok := fhPIBAttributeIdNames[a]; !ok {
		return 0, newErrorValue(ErrKindInvalidFHPIBAttributeId, uint32(v))
	}
	return a, nil
}

type SecurityPIBAttributeId uint8

const (
	SecurityPIBKeyTable                 SecurityPIBAttributeId = 0x71
	SecurityPIBKeyTableEntries          SecurityPIBAttributeId = 0x81
	SecurityPIBDeviceTableEntries       SecurityPIBAttributeId = 0x82
	SecurityPIBSecurityLevelTableEntries SecurityPIBAttributeId = 0x83
	SecurityPIBFrameCounter             SecurityPIBAttributeId = 0x84
	SecurityPIBAutoRequestSecurityLevel SecurityPIBAttributeId = 0x85
	SecurityPIBAutoRequestKeyIdMode     SecurityPIBAttributeId = 0x86
	SecurityPIBAutoRequestKeySource     SecurityPIBAttributeId = 0x87
	SecurityPIBAutoRequestKeyIndex      SecurityPIBAttributeId = 0x88
	SecurityPIBDefaultKeySource         SecurityPIBAttributeId = 0x89
	SecurityPIBPANCoordExtendedAddress  SecurityPIBAttributeId = 0x8A
	SecurityPIBPANCoordShortAddress     SecurityPIBAttributeId = 0x8B
	SecurityPIBKeyIdLookupEntry         SecurityPIBAttributeId = 0xD0
	SecurityPIBKeyIdDeviceEntry         SecurityPIBAttributeId = 0xD1
	SecurityPIBKeyIdUsageEntry          SecurityPIBAttributeId = 0xD2
	SecurityPIBKeyEntry                 SecurityPIBAttributeId = 0xD3
	SecurityPIBDeviceEntry              SecurityPIBAttributeId = 0xD4
	SecurityPIBSecurityLevelEntry       SecurityPIBAttributeId = 0xD5
)

var securityPIBAttributeIdNames = map[SecurityPIBAttributeId]string{
	SecurityPIBKeyTable: "KeyTable", SecurityPIBKeyTableEntries: "KeyTableEntries",
	SecurityPIBDeviceTableEntries: "DeviceTableEntries", SecurityPIBSecurityLevelTableEntries: "SecurityLevelTableEntries",
	SecurityPIBFrameCounter: "FrameCounter", SecurityPIBAutoRequestSecurityLevel: "AutoRequestSecurityLevel",
	SecurityPIBAutoRequestKeyIdMode: "AutoRequestKeyIdMode", SecurityPIBAutoRequestKeySource: "AutoRequestKeySource",
	SecurityPIBAutoRequestKeyIndex: "AutoRequestKeyIndex", SecurityPIBDefaultKeySource: "DefaultKeySource",
	SecurityPIBPANCoordExtendedAddress: "PANCoordExtendedAddress", SecurityPIBPANCoordShortAddress: "PANCoordShortAddress",
	SecurityPIBKeyIdLookupEntry: "KeyIdLookupEntry", SecurityPIBKeyIdDeviceEntry: "KeyIdDeviceEntry",
	SecurityPIBKeyIdUsageEntry: "KeyIdUsageEntry", SecurityPIBKeyEntry: "KeyEntry",
	SecurityPIBDeviceEntry: "DeviceEntry", SecurityPIBSecurityLevelEntry: "SecurityLevelEntry",
}

func (a SecurityPIBAttributeId) String() string {
	if n, ok := securityPIBAttributeIdNames[a]; ok {
		return n
	}
	return fmt.Sprintf("SecurityPIBAttributeId(0x%02x)", uint8(a))
}

func decodeSecurityPIBAttributeId(v byte) (SecurityPIBAttributeId, error) {
	a := SecurityPIBAttributeId(v)
	if _, ok := securityPIBAttributeIdNames[a]; !ok {
		return 0, newErrorValue(ErrKindInvalidSecurityPIBAttributeId, uint32(v))
	}
	return a, nil
}

type ScanType uint8

const (
	ScanTypeEnergyDetect ScanType = 0x00
	ScanTypeActive       ScanType = 0x01
	ScanTypePassive      ScanType = 0x02
	ScanTypeOrphan       ScanType = 0x03
	ScanTypeActive2      ScanType = 0x05
)

var scanTypeNames = map[ScanType]string{
	ScanTypeEnergyDetect: "EnergyDetect", ScanTypeActive: "Active",
	ScanTypePassive: "Passive", ScanTypeOrphan: "Orphan", ScanTypeActive2: "Active2",
}

func (s ScanType) String() string {
	if n, ok := scanTypeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("ScanType(%d)", uint8(s))
}

func decodeScanType(v byte) (ScanType, error) {
	s := ScanType(v)
	if _, ok := scanTypeNames[s]; !ok {
		return 0, newErrorValue(ErrKindInvalidScanType, uint32(v))
	}
	return s, nil
}

type PhyId uint8

const (
	PhyIdNone                     PhyId = 0
	PhyIdStdUS915Phy1             PhyId = 0x01
	PhyIdStdETSI863Phy3           PhyId = 0x03
	PhyIdMRFSKGenericPhyIdBegin   PhyId = 0x04
	PhyIdMRFSKGenericPhyIdEnd     PhyId = 0x06
	PhyIdGenericChina433Phy128    PhyId = 128
	PhyIdGenericUSLRM915Phy129    PhyId = 129
	PhyIdGenericChinaLRM433Phy130 PhyId = 130
	PhyIdGenericETSILRM863Phy131  PhyId = 131
	PhyIdGenericUS915Phy132       PhyId = 132
	PhyIdGenericETSI863Phy133     PhyId = 133
)

var phyIdNames = map[PhyId]string{
	PhyIdNone: "None", PhyIdStdUS915Phy1: "StdUS915Phy1", PhyIdStdETSI863Phy3: "StdETSI863Phy3",
	PhyIdMRFSKGenericPhyIdBegin: "MRFSKGenericPhyIdBegin", PhyIdMRFSKGenericPhyIdEnd: "MRFSKGenericPhyIdEnd",
	PhyIdGenericChina433Phy128: "GenericChina433Phy128", PhyIdGenericUSLRM915Phy129: "GenericUSLRM915Phy129",
	PhyIdGenericChinaLRM433Phy130: "GenericChinaLRM433Phy130", PhyIdGenericETSILRM863Phy131: "GenericETSILRM863Phy131",
	PhyIdGenericUS915Phy132: "GenericUS915Phy132", PhyIdGenericETSI863Phy133: "GenericETSI863Phy133",
}

func (p PhyId) String() string {
	if n, ok := phyIdNames[p]; ok {
		return n
	}
	return fmt.Sprintf("PhyId(%d)", uint8(p))
}

func decodePhyId(v byte) (PhyId, error) {
	p := PhyId(v)
	if _, ok := phyIdNames[p]; !ok {
		return 0, newErrorValue(ErrKindInvalidPhyId, uint32(v))
	}
	return p, nil
}

// PermitJoin, MPMScan, MPMType, WiSUNAsyncOperation, CommEventReason,
// ResetType, ResetReason, TransportProtocolRevision, and ProductIdCode each
// get their own correctly-named ErrorKind below rather than sharing one
// generic "invalid phy id" kind across unrelated enum families.

type PermitJoin uint8

const (
	PermitJoinAllBeaconRequests         PermitJoin = 0x00
	PermitJoinOnlyIfPermitJoinIsEnabled PermitJoin = 0x01
)

var permitJoinNames = map[PermitJoin]string{
	PermitJoinAllBeaconRequests: "AllBeaconRequests", PermitJoinOnlyIfPermitJoinIsEnabled: "OnlyIfPermitJoinIsEnabled",
}

func (p PermitJoin) String() string {
	if n, ok := permitJoinNames[p]; ok {
		return n
	}
	return fmt.Sprintf("PermitJoin(%d)", uint8(p))
}

func decodePermitJoin(v byte) (PermitJoin, error) {
	p := PermitJoin(v)
	if _, ok := permitJoinNames[p]; !ok {
		return 0, newErrorValue(ErrKindInvalidPermitJoin, uint32(v))
	}
	return p, nil
}

type MPMScan uint8

const (
	MPMScanDisabled MPMScan = 0x00
	MPMScanEnabled  MPMScan = 0x01
)

var mpmScanNames = map[MPMScan]string{MPMScanDisabled: "Disabled", MPMScanEnabled: "Enabled"}

func (s MPMScan) String() string {
	if n, ok := mpmScanNames[s]; ok {
		return n
	}
	return fmt.Sprintf("MPMScan(%d)", uint8(s))
}

func decodeMPMScan(v byte) (MPMScan, error) {
	s := MPMScan(v)
	if _, ok := mpmScanNames[s]; !ok {
		return 0, newErrorValue(ErrKindInvalidMPMScan, uint32(v))
	}
	return s, nil
}

type MPMType uint8

const (
	MPMTypeBPAN  MPMType = 0x01
	MPMTypeNBPAN MPMType = 0x02
)

var mpmTypeNames = map[MPMType]string{MPMTypeBPAN: "BPAN", MPMTypeNBPAN: "NBPAN"}

func (t MPMType) String() string {
	if n, ok := mpmTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("MPMType(%d)", uint8(t))
}

func decodeMPMType(v byte) (MPMType, error) {
	t := MPMType(v)
	if _, ok := mpmTypeNames[t]; !ok {
		return 0, newErrorValue(ErrKindInvalidMPMType, uint32(v))
	}
	return t, nil
}

type WiSUNAsyncOperation uint8

const (
	WiSUNAsyncOperationStart WiSUNAsyncOperation = 0x00
	WiSUNAsyncOperationStop  WiSUNAsyncOperation = 0x01
)

var wiSUNAsyncOperationNames = map[WiSUNAsyncOperation]string{
	WiSUNAsyncOperationStart: "Start", WiSUNAsyncOperationStop: "Stop",
}

func (o WiSUNAsyncOperation) String() string {
	if n, ok := wiSUNAsyncOperationNames[o]; ok {
		return n
	}
	return fmt.Sprintf("WiSUNAsyncOperation(%d)", uint8(o))
}

func decodeWiSUNAsyncOperation(v byte) (WiSUNAsyncOperation, error) {
	o := WiSUNAsyncOperation(v)
	if _, ok := wiSUNAsyncOperationNames[o]; !ok {
		return 0, newErrorValue(ErrKindInvalidWiSUNAsyncOperation, uint32(v))
	}
	return o, nil
}

type CommEventReason uint8

const (
	CommEventReasonAssociateRsp CommEventReason = 0x00
	CommEventReasonOrphanRsp    CommEventReason = 0x01
	CommEventReasonRxSecure     CommEventReason = 0x02
)

var commEventReasonNames = map[CommEventReason]string{
	CommEventReasonAssociateRsp: "AssociateRsp", CommEventReasonOrphanRsp: "OrphanRsp",
	CommEventReasonRxSecure: "RxSecure",
}

func (r CommEventReason) String() string {
	if n, ok := commEventReasonNames[r]; ok {
		return n
	}
	return fmt.Sprintf("CommEventReason(%d)", uint8(r))
}

func decodeCommEventReason(v byte) (CommEventReason, error) {
	r := CommEventReason(v)
	if _, ok := commEventReasonNames[r]; !ok {
		return 0, newErrorValue(ErrKindInvalidCommEventReason, uint32(v))
	}
	return r, nil
}

type ResetType uint8

const (
	ResetTypeHard ResetType = 0
	ResetTypeSoft ResetType = 1
)

var resetTypeNames = map[ResetType]string{ResetTypeHard: "Hard", ResetTypeSoft: "Soft"}

func (t ResetType) String() string {
	if n, ok := resetTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("ResetType(%d)", uint8(t))
}

func decodeResetType(v byte) (ResetType, error) {
	t := ResetType(v)
	if _, ok := resetTypeNames[t]; !ok {
		return 0, newErrorValue(ErrKindInvalidResetType, uint32(v))
	}
	return t, nil
}

type ResetReason uint8

const (
	ResetReasonHardware    ResetReason = 0
	ResetReasonHostRequest ResetReason = 1
	ResetReasonHALAssert   ResetReason = 2
	ResetReasonMACAssert   ResetReason = 3
	ResetReasonRTOSAssert  ResetReason = 4
)

var resetReasonNames = map[ResetReason]string{
	ResetReasonHardware: "Hardware", ResetReasonHostRequest: "HostRequest",
	ResetReasonHALAssert: "HALAssert", ResetReasonMACAssert: "MACAssert", ResetReasonRTOSAssert: "RTOSAssert",
}

func (r ResetReason) String() string {
	if n, ok := resetReasonNames[r]; ok {
		return n
	}
	return fmt.Sprintf("ResetReason(%d)", uint8(r))
}

func decodeResetReason(v byte) (ResetReason, error) {
	r := ResetReason(v)
	if _, ok := resetReasonNames[r]; !ok {
		return 0, newErrorValue(ErrKindInvalidResetReason, uint32(v))
	}
	return r, nil
}

type TransportProtocolRevision uint8

const (
	TransportProtocolRevisionStandardRPCFrame TransportProtocolRevision = 2
	TransportProtocolRevisionExtendedRPCFrame TransportProtocolRevision = 3
)

var transportProtocolRevisionNames = map[TransportProtocolRevision]string{
	TransportProtocolRevisionStandardRPCFrame: "StandardRPCFrame",
	TransportProtocolRevisionExtendedRPCFrame: "ExtendedRPCFrame",
}

func (t TransportProtocolRevision) String() string {
	if n, ok := transportProtocolRevisionNames[t]; ok {
		return n
	}
	return fmt.Sprintf("TransportProtocolRevision(%d)", uint8(t))
}

func decodeTransportProtocolRevision(v byte) (TransportProtocolRevision, error) {
	t := TransportProtocolRevision(v)
	if _, ok := transportProtocolRevisionNames[t]; !ok {
		return 0, newErrorValue(ErrKindInvalidTransportProtocolRevision, uint32(v))
	}
	return t, nil
}

type ProductIdCode uint8

const (
	ProductIdCodeZStack     ProductIdCode = 0
	ProductIdCodeTI154Stack ProductIdCode = 1
)

var productIdCodeNames = map[ProductIdCode]string{
	ProductIdCodeZStack: "ZStack", ProductIdCodeTI154Stack: "TI154Stack",
}

func (p ProductIdCode) String() string {
	if n, ok := productIdCodeNames[p]; ok {
		return n
	}
	return fmt.Sprintf("ProductIdCode(%d)", uint8(p))
}

func decodeProductIdCode(v byte) (ProductIdCode, error) {
	p := ProductIdCode(v)
	if _, ok := productIdCodeNames[p]; !ok {
		return 0, newErrorValue(ErrKindInvalidProductIdCode, uint32(v))
	}
	return p, nil
}

// Status is the ~60-code result enum shared by most SRSP payloads.
type Status uint8

const (
	StatusSuccess                   Status = 0x00
	StatusUnsupported                Status = 0x18
	StatusBadState                   Status = 0x19
	StatusNoResources                Status = 0x1A
	StatusRPCCommandSubsystemError   Status = 0x25
	StatusRPCCommandIdError          Status = 0x26
	StatusRPCCommandLengthError      Status = 0x27
	StatusRPCCommandUnsupportedType  Status = 0x28
	StatusFHAPIError                 Status = 0x61
	StatusFHAPINotSupportedIE        Status = 0x62
	StatusFHAPINotInAsync            Status = 0x63
	StatusFHAPINoEntryInTheNeighbor  Status = 0x64
	StatusFHAPIOutSlot               Status = 0x65
	StatusFHAPIInvalidAddress        Status = 0x66
	StatusFHAPIInvalidFormat         Status = 0x67
	StatusFHAPINotSupportedPIB       Status = 0x68
	StatusFHAPIReadOnlyPIB           Status = 0x69
	StatusFHAPIInvalidParamPIB       Status = 0x6A
	StatusFHAPIInvalidFrameType      Status = 0x6B
	StatusFHAPIExpiredNode           Status = 0x6C
	StatusCounterError               Status = 0xDB
	StatusImproperKeyType            Status = 0xDC
	StatusImproperSecurityLevel      Status = 0xDD
	StatusUnsupportedLegacy          Status = 0xDE
	StatusUnsupportedSecurity        Status = 0xDF
	StatusBeaconLoss                 Status = 0xE0
	StatusChannelAccessFailure       Status = 0xE1
	StatusDenied                     Status = 0xE2
	StatusDisableTRXFailure          Status = 0xE3
	StatusSecurityError              Status = 0xE4
	StatusFrameTooLong               Status = 0xE5
	StatusInvalidGTS                 Status = 0xE6
	StatusInvalidHandle              Status = 0xE7
	StatusInvalidParameter           Status = 0xE8
	StatusNoAck                      Status = 0xE9
	StatusNoBeacon                   Status = 0xEA
	StatusNoData                     Status = 0xEB
	StatusNoShortAddress             Status = 0xEC
	StatusOutOfCAP                   Status = 0xED
	StatusPANIdConflict              Status = 0xEE
	StatusRealignment                Status = 0xEF
	StatusTransactionExpired         Status = 0xF0
	StatusTransactionOverflow        Status = 0xF1
	StatusTxActive                   Status = 0xF2
	StatusUnavailableKey             Status = 0xF3
	StatusUnsupportedAttribute       Status = 0xF4
	StatusInvalidAddress             Status = 0xF5
	StatusOnTimeTooLong              Status = 0xF6
	StatusPastTime                   Status = 0xF7
	StatusTrackingOff                Status = 0xF8
	StatusInvalidIndex               Status = 0xF9
	StatusLimitReached               Status = 0xFA
	StatusReadOnly                   Status = 0xFB
	StatusScanInProgress             Status = 0xFC
	StatusSuperframeOverlap          Status = 0xFD
	StatusAutoAckPendingAllOn        Status = 0xFE
	StatusAutoAckPendingAllOff       Status = 0xFF
)

var statusNames = map[Status]string{
	StatusSuccess: "Success", StatusUnsupported: "Unsupported", StatusBadState: "BadState",
	StatusNoResources: "NoResources", StatusRPCCommandSubsystemError: "RPCCommandSubsystemError",
	StatusRPCCommandIdError: "RPCCommandIdError", StatusRPCCommandLengthError: "RPCCommandLengthError",
	StatusRPCCommandUnsupportedType: "RPCCommandUnsupportedType", StatusFHAPIError: "FHAPIError",
	StatusFHAPINotSupportedIE: "FHAPINotSupportedIE", StatusFHAPINotInAsync: "FHAPINotInAsync",
	StatusFHAPINoEntryInTheNeighbor: "FHAPINoEntryInTheNeighbor", StatusFHAPIOutSlot: "FHAPIOutSlot",
	StatusFHAPIInvalidAddress: "FHAPIInvalidAddress", StatusFHAPIInvalidFormat: "FHAPIInvalidFormat",
	StatusFHAPINotSupportedPIB: "FHAPINotSupportedPIB", StatusFHAPIReadOnlyPIB: "FHAPIReadOnlyPIB",
	StatusFHAPIInvalidParamPIB: "FHAPIInvalidParamPIB", StatusFHAPIInvalidFrameType: "FHAPIInvalidFrameType",
	StatusFHAPIExpiredNode: "FHAPIExpiredNode", StatusCounterError: "CounterError",
	StatusImproperKeyType: "ImproperKeyType", StatusImproperSecurityLevel: "ImproperSecurityLevel",
	StatusUnsupportedLegacy: "UnsupportedLegacy", StatusUnsupportedSecurity: "UnsupportedSecurity",
	StatusBeaconLoss: "BeaconLoss", StatusChannelAccessFailure: "ChannelAccessFailure",
	StatusDenied: "Denied", StatusDisableTRXFailure: "DisableTRXFailure",
	StatusSecurityError: "SecurityError", StatusFrameTooLong: "FrameTooLong",
	StatusInvalidGTS: "InvalidGTS", StatusInvalidHandle: "InvalidHandle",
	StatusInvalidParameter: "InvalidParameter", StatusNoAck: "NoAck",
	StatusNoBeacon: "NoBeacon", StatusNoData: "NoData",
	StatusNoShortAddress: "NoShortAddress", StatusOutOfCAP: "OutOfCAP",
	StatusPANIdConflict: "PANIdConflict", StatusRealignment: "Realignment",
	StatusTransactionExpired: "TransactionExpired", StatusTransactionOverflow: "TransactionOverflow",
	StatusTxActive: "TxActive", StatusUnavailableKey: "UnavailableKey",
	StatusUnsupportedAttribute: "UnsupportedAttribute", StatusInvalidAddress: "InvalidAddress",
	StatusOnTimeTooLong: "OnTimeTooLong", StatusPastTime: "PastTime",
	StatusTrackingOff: "TrackingOff", StatusInvalidIndex: "InvalidIndex",
	StatusLimitReached: "LimitReached", StatusReadOnly: "ReadOnly",
	StatusScanInProgress: "ScanInProgress", StatusSuperframeOverlap: "SuperframeOverlap",
	StatusAutoAckPendingAllOn: "AutoAckPendingAllOn", StatusAutoAckPendingAllOff: "AutoAckPendingAllOff",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Status(0x%02x)", uint8(s))
}

func decodeStatus(v byte) (Status, error) {
	s := Status(v)
	if _, ok := statusNames[s]; !ok {
		return 0, newErrorValue(ErrKindInvalidStatus, uint32(v))
	}
	return s, nil
}
