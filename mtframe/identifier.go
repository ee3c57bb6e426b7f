// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

import "fmt"

// CommandType is the 2-bit command-type field packed into byte0 of a
// CommandCode (bits 5-6).
type CommandType uint8

const (
	CommandTypePoll CommandType = 0
	CommandTypeSREQ CommandType = 1
	CommandTypeAREQ CommandType = 2
	CommandTypeSRSP CommandType = 3
)

var commandTypeNames = map[CommandType]string{
	CommandTypePoll: "POLL",
	CommandTypeSREQ: "SREQ",
	CommandTypeAREQ: "AREQ",
	CommandTypeSRSP: "SRSP",
}

func (c CommandType) String() string {
	if s, ok := commandTypeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("CommandType(%d)", uint8(c))
}

func decodeCommandType(v byte) (CommandType, error) {
	c := CommandType(v)
	if _, ok := commandTypeNames[c]; !ok {
		return 0, newErrorValue(ErrKindInvalidCommandType, uint32(v))
	}
	return c, nil
}

// Subsystem is the 5-bit subsystem field packed into byte0 of a CommandCode
// (bits 0-4). Declared once here rather than duplicated per-package.
type Subsystem uint8

const (
	SubsystemRPC  Subsystem = 0
	SubsystemSYS  Subsystem = 1
	SubsystemMAC  Subsystem = 2
	SubsystemUTIL Subsystem = 7
)

var subsystemNames = map[Subsystem]string{
	SubsystemRPC:  "RPC",
	SubsystemSYS:  "SYS",
	SubsystemMAC:  "MAC",
	SubsystemUTIL: "UTIL",
}

func (s Subsystem) String() string {
	if n, ok := subsystemNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Subsystem(%d)", uint8(s))
}

func decodeSubsystem(v byte) (Subsystem, error) {
	s := Subsystem(v)
	if _, ok := subsystemNames[s]; !ok {
		return 0, newErrorValue(ErrKindInvalidSubsystem, uint32(v))
	}
	return s, nil
}

// MTExtendedHeaderStatus is the fragmentation/ack status carried by V3/V4
// extended headers.
type MTExtendedHeaderStatus uint8

const (
	ExtStatusSuccess                           MTExtendedHeaderStatus = 0
	ExtStatusResendLastFrame                   MTExtendedHeaderStatus = 1
	ExtStatusUnsupportedStackId                MTExtendedHeaderStatus = 2
	ExtStatusBlockOutOfOrder                   MTExtendedHeaderStatus = 3
	ExtStatusBlockLengthChanged                MTExtendedHeaderStatus = 4
	ExtStatusMemoryAllocationError              MTExtendedHeaderStatus = 5
	ExtStatusFragmentationSequenceCompleted    MTExtendedHeaderStatus = 6
	ExtStatusFragmentationSequenceAborted      MTExtendedHeaderStatus = 7
	ExtStatusUnsupportedFragmentationAckStatus MTExtendedHeaderStatus = 8
)

var extStatusNames = map[MTExtendedHeaderStatus]string{
	ExtStatusSuccess:                           "Success",
	ExtStatusResendLastFrame:                   "ResendLastFrame",
	ExtStatusUnsupportedStackId:                "UnsupportedStackId",
	ExtStatusBlockOutOfOrder:                   "BlockOutOfOrder",
	ExtStatusBlockLengthChanged:                "BlockLengthChanged",
	ExtStatusMemoryAllocationError:             "MemoryAllocationError",
	ExtStatusFragmentationSequenceCompleted:    "FragmentationSequenceCompleted",
	ExtStatusFragmentationSequenceAborted:      "FragmentationSequenceAborted",
	ExtStatusUnsupportedFragmentationAckStatus: "UnsupportedFragmentationAckStatus",
}

func (s MTExtendedHeaderStatus) String() string {
	if n, ok := extStatusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("MTExtendedHeaderStatus(%d)", uint8(s))
}

func decodeExtStatus(v byte) (MTExtendedHeaderStatus, error) {
	s := MTExtendedHeaderStatus(v)
	if _, ok := extStatusNames[s]; !ok {
		return 0, newErrorValue(ErrKindInvalidExtendedHeaderStatus, uint32(v))
	}
	return s, nil
}

// AddressMode discriminates the Address tagged union on the wire.
type AddressMode uint8

const (
	AddressModeShort    AddressMode = 0x02
	AddressModeExtended AddressMode = 0x03
)

var addressModeNames = map[AddressMode]string{
	AddressModeShort:    "Short",
	AddressModeExtended: "Extended",
}

func (m AddressMode) String() string {
	if n, ok := addressModeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("AddressMode(%d)", uint8(m))
}

func decodeAddressMode(v byte) (AddressMode, error) {
	m := AddressMode(v)
	if _, ok := addressModeNames[m]; !ok {
		return 0, newErrorValue(ErrKindInvalidAddressMode, uint32(v))
	}
	return m, nil
}

// ErrorCode is carried by the RPC subsystem's MTCommandError payload.
type ErrorCode uint8

const (
	ErrorCodeInvalidSubsystem                 ErrorCode = 0x01
	ErrorCodeInvalidCommandId                 ErrorCode = 0x02
	ErrorCodeInvalidParameter                 ErrorCode = 0x03
	ErrorCodeInvalidLength                    ErrorCode = 0x04
	ErrorCodeUnsupportedExtendedHeaderType     ErrorCode = 0x05
	ErrorCodeMemoryAllocationFailure           ErrorCode = 0x06
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeInvalidSubsystem:             "InvalidSubsystem",
	ErrorCodeInvalidCommandId:             "InvalidCommandId",
	ErrorCodeInvalidParameter:             "InvalidParameter",
	ErrorCodeInvalidLength:                "InvalidLength",
	ErrorCodeUnsupportedExtendedHeaderType: "UnsupportedExtendedHeaderType",
	ErrorCodeMemoryAllocationFailure:       "MemoryAllocationFailure",
}

func (c ErrorCode) String() string {
	if n, ok := errorCodeNames[c]; ok {
		return n
	}
	return fmt.Sprintf("ErrorCode(%d)", uint8(c))
}

func decodeErrorCode(v byte) (ErrorCode, error) {
	c := ErrorCode(v)
	if _, ok := errorCodeNames[c]; !ok {
		return 0, newErrorValue(ErrKindInvalidErrorCode, uint32(v))
	}
	return c, nil
}

// SubsystemId is the byte-wide subsystem identifier used by UTIL's
// CallbackSubCmd (distinct width/role from the 5-bit Subsystem packed into
// CommandCode; the device exposes both).
type SubsystemId uint8

const (
	SubsystemIdSys           SubsystemId = 0x01
	SubsystemIdMAC           SubsystemId = 0x02
	SubsystemIdUtil          SubsystemId = 0x07
	SubsystemIdAllSubsystems SubsystemId = 0xFF
)

var subsystemIdNames = map[SubsystemId]string{
	SubsystemIdSys:           "Sys",
	SubsystemIdMAC:           "MAC",
	SubsystemIdUtil:          "Util",
	SubsystemIdAllSubsystems: "AllSubsystems",
}

func (s SubsystemId) String() string {
	if n, ok := subsystemIdNames[s]; ok {
		return n
	}
	return fmt.Sprintf("SubsystemId(%d)", uint8(s))
}

func decodeSubsystemId(v byte) (SubsystemId, error) {
	s := SubsystemId(v)
	if _, ok := subsystemIdNames[s]; !ok {
		return 0, newErrorValue(ErrKindInvalidSubsystemId, uint32(v))
	}
	return s, nil
}

// ExtendedAddressType selects which on-device extended address GetExtAddr
// reads back.
type ExtendedAddressType uint8

const (
	ExtendedAddressTypeDeviceMACPIB   ExtendedAddressType = 0x00
	ExtendedAddressTypeDevicePrimary  ExtendedAddressType = 0x01
	ExtendedAddressTypeDeviceUserCCFG ExtendedAddressType = 0x02
	ExtendedAddressTypeUnknown        ExtendedAddressType = 0xFF
)

var extendedAddressTypeNames = map[ExtendedAddressType]string{
	ExtendedAddressTypeDeviceMACPIB:   "DeviceMACPIB",
	ExtendedAddressTypeDevicePrimary:  "DevicePrimary",
	ExtendedAddressTypeDeviceUserCCFG: "DeviceUserCCFG",
	ExtendedAddressTypeUnknown:        "Unknown",
}

func (t ExtendedAddressType) String() string {
	if n, ok := extendedAddressTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("ExtendedAddressType(%d)", uint8(t))
}

func decodeExtendedAddressType(v byte) (ExtendedAddressType, error) {
	t := ExtendedAddressType(v)
	if _, ok := extendedAddressTypeNames[t]; !ok {
		return 0, newErrorValue(ErrKindInvalidExtendedAddressType, uint32(v))
	}
	return t, nil
}
