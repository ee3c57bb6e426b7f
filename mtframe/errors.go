// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

import "fmt"

// ErrorKind identifies the flat taxonomy of failures a decode or dispatch
// operation can produce. Every kind below corresponds to one named failure
// in the frame format or one closed enum family in the command catalog.
type ErrorKind int

const (
	ErrKindNotEnoughBytes ErrorKind = iota
	ErrKindInvalidStartOfFrame
	ErrKindInvalidFrameCheckSequence
	ErrKindInvalidCommandType
	ErrKindInvalidSubsystem
	ErrKindInvalidExtendedHeaderVersion
	ErrKindInvalidExtendedHeaderStatus
	ErrKindInvalidCommandID
	ErrKindInvalidAddressMode
	ErrKindInvalidTxOption
	ErrKindInvalidSecurityLevel
	ErrKindInvalidKeyIdMode
	ErrKindInvalidFrameType
	ErrKindInvalidAssociationStatus
	ErrKindInvalidStatus
	ErrKindInvalidDisassociationReason
	ErrKindInvalidMACPIBAttributeId
	ErrKindInvalidFHPIBAttributeId
	ErrKindInvalidSecurityPIBAttributeId
	ErrKindInvalidScanType
	ErrKindInvalidPhyId
	ErrKindInvalidBeaconType
	ErrKindInvalidErrorCode
	ErrKindInvalidResetType
	ErrKindInvalidResetReason
	ErrKindInvalidTransportProtocolRevision
	ErrKindInvalidProductIdCode
	ErrKindInvalidPermitJoin
	ErrKindInvalidMPMScan
	ErrKindInvalidMPMType
	ErrKindInvalidWiSUNAsyncOperation
	ErrKindInvalidWiSUNAsyncFrameType
	ErrKindInvalidCommEventReason
	ErrKindInvalidSubsystemId
	ErrKindInvalidExtendedAddressType
	ErrKindNotImplemented
)

var errKindNames = map[ErrorKind]string{
	ErrKindNotEnoughBytes:                   "not enough bytes",
	ErrKindInvalidStartOfFrame:               "invalid start of frame",
	ErrKindInvalidFrameCheckSequence:         "invalid frame check sequence",
	ErrKindInvalidCommandType:                "invalid command type",
	ErrKindInvalidSubsystem:                  "invalid subsystem",
	ErrKindInvalidExtendedHeaderVersion:      "invalid extended header version",
	ErrKindInvalidExtendedHeaderStatus:       "invalid extended header status",
	ErrKindInvalidCommandID:                  "invalid command id",
	ErrKindInvalidAddressMode:                "invalid address mode",
	ErrKindInvalidTxOption:                   "invalid tx option",
	ErrKindInvalidSecurityLevel:              "invalid security level",
	ErrKindInvalidKeyIdMode:                  "invalid key id mode",
	ErrKindInvalidFrameType:                  "invalid frame type",
	ErrKindInvalidAssociationStatus:          "invalid association status",
	ErrKindInvalidStatus:                     "invalid status",
	ErrKindInvalidDisassociationReason:       "invalid disassociation reason",
	ErrKindInvalidMACPIBAttributeId:          "invalid MAC PIB attribute id",
	ErrKindInvalidFHPIBAttributeId:           "invalid FH PIB attribute id",
	ErrKindInvalidSecurityPIBAttributeId:     "invalid security PIB attribute id",
	ErrKindInvalidScanType:                   "invalid scan type",
	ErrKindInvalidPhyId:                      "invalid phy id",
	ErrKindInvalidBeaconType:                 "invalid beacon type",
	ErrKindInvalidErrorCode:                  "invalid error code",
	ErrKindInvalidResetType:                  "invalid reset type",
	ErrKindInvalidResetReason:                "invalid reset reason",
	ErrKindInvalidTransportProtocolRevision:  "invalid transport protocol revision",
	ErrKindInvalidProductIdCode:              "invalid product id code",
	ErrKindInvalidPermitJoin:                 "invalid permit join",
	ErrKindInvalidMPMScan:                    "invalid MPM scan",
	ErrKindInvalidMPMType:                    "invalid MPM type",
	ErrKindInvalidWiSUNAsyncOperation:        "invalid Wi-SUN async operation",
	ErrKindInvalidWiSUNAsyncFrameType:        "invalid Wi-SUN async frame type",
	ErrKindInvalidCommEventReason:            "invalid comm event reason",
	ErrKindInvalidSubsystemId:                "invalid subsystem id",
	ErrKindInvalidExtendedAddressType:        "invalid extended address type",
	ErrKindNotImplemented:                    "not implemented",
}

func (k ErrorKind) String() string {
	if s, ok := errKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error type returned by every decode operation in mtframe;
// Dispatch returns it wrapped with the command triple, and mtstream's
// Parser reports its own reassembly failures with mtstream.Error. Value and Buf are populated
// only for the kinds that carry diagnostic payload (an offending byte, or
// the accumulated frame buffer on an FCS mismatch); both are zero otherwise.
type Error struct {
	Kind  ErrorKind
	Value uint32
	Buf   []byte
	cause error
}

func newError(kind ErrorKind) *Error {
	return &Error{Kind: kind}
}

func newErrorValue(kind ErrorKind, value uint32) *Error {
	return &Error{Kind: kind, Value: value}
}

func newErrorBuf(kind ErrorKind, buf []byte) *Error {
	return &Error{Kind: kind, Buf: append([]byte(nil), buf...)}
}

func (e *Error) Error() string {
	switch {
	case e.Buf != nil:
		return fmt.Sprintf("%s: %x", e.Kind, e.Buf)
	case e.Kind == ErrKindNotEnoughBytes:
		return e.Kind.String()
	default:
		return fmt.Sprintf("%s: 0x%x", e.Kind, e.Value)
	}
}

func (e *Error) Unwrap() error { return e.cause }

// ErrNotEnoughBytes is returned whenever a read operation would advance a
// cursor past the end of its input slice.
var ErrNotEnoughBytes = newError(ErrKindNotEnoughBytes)

// ErrNotImplemented is returned by Dispatch for a (subsystem, cmd_type, id)
// triple whose id the catalog recognizes but which has no decoder registered
// under its command type — the POLL command type in every subsystem, and
// any other command type a recognized id has no decoder for.
var ErrNotImplemented = newError(ErrKindNotImplemented)
