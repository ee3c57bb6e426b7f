// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package mtframe

import "github.com/pkg/errors"

// Command is satisfied by every decoded command payload in this package:
// it can re-encode its fields and rebuild the MTFrame it came from.
type Command interface {
	Encode() []byte
	ToMTFrame() *MTFrame
}

// Dispatch decodes an MTFrame's payload into its typed Command, keyed by
// the (Subsystem, CmdType, Id) triple carried in the header. The POLL
// command type in every subsystem, and any recognized id with no decoder
// registered under the frame's command type, report ErrKindNotImplemented;
// an id the catalog does not recognize reports ErrKindInvalidCommandID and
// an unknown subsystem ErrKindInvalidSubsystem, rather than panicking. Every
// returned error is wrapped with the triple that produced it, so a caller
// logging err.Error() sees which command failed without extra plumbing.
func Dispatch(frame *MTFrame) (Command, error) {
	sub := frame.Header.Command.Subsystem
	cmdType := frame.Header.Command.CmdType
	id := frame.Header.Command.Id
	c := newCursor(frame.Payload)

	var cmd Command
	var err error
	switch sub {
	case SubsystemRPC:
		cmd, err = dispatchRPC(cmdType, id, c)
	case SubsystemSYS:
		cmd, err = dispatchSYS(cmdType, id, c)
	case SubsystemUTIL:
		cmd, err = dispatchUTIL(cmdType, id, c)
	case SubsystemMAC:
		cmd, err = dispatchMAC(cmdType, id, c)
	default:
		err = newErrorValue(ErrKindInvalidSubsystem, uint32(sub))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "dispatch subsystem=%d cmd_type=%d id=0x%02x", sub, cmdType, id)
	}
	return cmd, nil
}

func dispatchRPC(cmdType CommandType, id byte, c *cursor) (Command, error) {
	rid, err := decodeRPCCommandId(id)
	if err != nil {
		return nil, err
	}
	switch cmdType {
	case CommandTypeSRSP:
		switch rid {
		case RPCCommandIdMTCommandError:
			return decodeMTCommandError(c)
		}
	}
	return nil, ErrNotImplemented
}

func dispatchSYS(cmdType CommandType, id byte, c *cursor) (Command, error) {
	sid, err := decodeSYSCommandId(id)
	if err != nil {
		return nil, err
	}
	switch cmdType {
	case CommandTypeAREQ:
		switch sid {
		case SYSCommandIdResetReq:
			return decodeResetReqAREQ(c)
		case SYSCommandIdResetInd:
			return decodeResetIndAREQ(c)
		}
	case CommandTypeSREQ:
		switch sid {
		case SYSCommandIdPingReq:
			return decodePingReqSREQ(c)
		case SYSCommandIdVersionReq:
			return decodeVersionReqSREQ(c)
		case SYSCommandIdNVCreateReq:
			return decodeNVCreateReqSREQ(c)
		case SYSCommandIdNVDeleteReq:
			return decodeNVDeleteReqSREQ(c)
		case SYSCommandIdNVLengthReq:
			return decodeNVLengthReqSREQ(c)
		case SYSCommandIdNVReadReq:
			return decodeNVReadReqSREQ(c)
		case SYSCommandIdNVWriteReq:
			return decodeNVWriteReqSREQ(c)
		case SYSCommandIdNVUpdateReq:
			return decodeNVUpdateReqSREQ(c)
		case SYSCommandIdNVCompactReq:
			return decodeNVCompactReqSREQ(c)
		}
	case CommandTypeSRSP:
		switch sid {
		case SYSCommandIdPingReq:
			return decodePingReqSRSP(c)
		case SYSCommandIdVersionReq:
			return decodeVersionReqSRSP(c)
		case SYSCommandIdNVCreateReq:
			return decodeNVCreateReqSRSP(c)
		case SYSCommandIdNVDeleteReq:
			return decodeNVDeleteReqSRSP(c)
		case SYSCommandIdNVLengthReq:
			return decodeNVLengthReqSRSP(c)
		case SYSCommandIdNVReadReq:
			return decodeNVReadReqSRSP(c)
		case SYSCommandIdNVWriteReq:
			return decodeNVWriteReqSRSP(c)
		case SYSCommandIdNVUpdateReq:
			return decodeNVUpdateReqSRSP(c)
		case SYSCommandIdNVCompactReq:
			return decodeNVCompactReqSRSP(c)
		}
	}
	return nil, ErrNotImplemented
}

func dispatchUTIL(cmdType CommandType, id byte, c *cursor) (Command, error) {
	uid, err := decodeUTILCommandId(id)
	if err != nil {
		return nil, err
	}
	switch cmdType {
	case CommandTypeAREQ:
		switch uid {
		case UTILCommandIdLoopback:
			return decodeLoopbackAREQ(c)
		}
	case CommandTypeSREQ:
		switch uid {
		case UTILCommandIdCallbackSubCmd:
			return decodeCallbackSubCmdSREQ(c)
		case UTILCommandIdGetExtAddr:
			return decodeGetExtAddrSREQ(c)
		case UTILCommandIdLoopback:
			return decodeLoopbackSREQ(c)
		case UTILCommandIdRandom:
			return decodeRandomSREQ(c)
		}
	case CommandTypeSRSP:
		switch uid {
		case UTILCommandIdCallbackSubCmd:
			return decodeCallbackSubCmdSRSP(c)
		case UTILCommandIdGetExtAddr:
			return decodeGetExtAddrSRSP(c)
		case UTILCommandIdLoopback:
			return decodeLoopbackSRSP(c)
		case UTILCommandIdRandom:
			return decodeRandomSRSP(c)
		}
	}
	return nil, ErrNotImplemented
}

// dispatchMAC covers every command the MAC catalog defines. MAC's POLL
// command type reports not-implemented through an explicit arm; the other
// subsystems' dispatchers give the same result for POLL by falling through
// their switch to the final ErrNotImplemented return.
func dispatchMAC(cmdType CommandType, id byte, c *cursor) (Command, error) {
	mid, err := decodeMACCommandId(id)
	if err != nil {
		return nil, err
	}
	switch cmdType {
	case CommandTypePoll:
		return nil, ErrNotImplemented
	case CommandTypeAREQ:
		switch mid {
		case MACCommandIdDataCnf:
			return decodeDataCnf(c)
		case MACCommandIdDataInd:
			return decodeDataInd(c)
		case MACCommandIdPurgeCnf:
			return decodePurgeCnf(c)
		case MACCommandIdWSAsyncInd:
			return decodeWSAsyncInd(c)
		case MACCommandIdSyncLossInd:
			return decodeSyncLossInd(c)
		case MACCommandIdAssociateInd:
			return decodeAssociateInd(c)
		case MACCommandIdAssociateCnf:
			return decodeAssociateCnf(c)
		case MACCommandIdBeaconNotifyInd:
			return decodeBeaconNotifyInd(c)
		case MACCommandIdDisassociateInd:
			return decodeDisassociateInd(c)
		case MACCommandIdDisassociateCnf:
			return decodeDisassociateCnf(c)
		case MACCommandIdOrphanInd:
			return decodeOrphanInd(c)
		case MACCommandIdPollCnf:
			return decodePollCnf(c)
		case MACCommandIdPollInd:
			return decodePollInd(c)
		case MACCommandIdScanCnf:
			return decodeScanCnf(c)
		case MACCommandIdCommStatusInd:
			return decodeCommStatusInd(c)
		case MACCommandIdStartCnf:
			return decodeStartCnf(c)
		case MACCommandIdWSAsyncCnf:
			return decodeWSAsyncCnf(c)
		}
	case CommandTypeSREQ:
		switch mid {
		case MACCommandIdInit:
			return decodeInit(c)
		case MACCommandIdDataReq:
			return decodeDataReq(c)
		case MACCommandIdPurgeReq:
			return decodePurgeReq(c)
		case MACCommandIdAssociateReq:
			return decodeAssociateReq(c)
		case MACCommandIdAssociateRsp:
			return decodeAssociateRsp(c)
		case MACCommandIdDisassociateReq:
			return decodeDisassociateReq(c)
		case MACCommandIdGetReq:
			return decodeGetReq(c)
		case MACCommandIdSetReq:
			return decodeSetReq(c)
		case MACCommandIdSecurityGetReq:
			return decodeSecurityGetReq(c)
		case MACCommandIdSecuritySetReq:
			return decodeSecuritySetReq(c)
		case MACCommandIdUpdatePANIdReq:
			return decodeUpdatePANIdReq(c)
		case MACCommandIdAddDeviceReq:
			return decodeAddDeviceReq(c)
		case MACCommandIdDeleteDeviceReq:
			return decodeDeleteDeviceReq(c)
		case MACCommandIdDeleteAllDevicesReq:
			return decodeDeleteAllDevicesReq(c)
		case MACCommandIdDeleteKeyReq:
			return decodeDeleteKeyReq(c)
		case MACCommandIdReadKeyReq:
			return decodeReadKeyReq(c)
		case MACCommandIdWriteKeyReq:
			return decodeWriteKeyReq(c)
		case MACCommandIdOrphanRsp:
			return decodeOrphanRsp(c)
		case MACCommandIdPollReq:
			return decodePollReq(c)
		case MACCommandIdResetReq:
			return decodeResetReq(c)
		case MACCommandIdScanReq:
			return decodeScanReq(c)
		case MACCommandIdStartReq:
			return decodeStartReq(c)
		case MACCommandIdSyncReq:
			return decodeSyncReq(c)
		case MACCommandIdSetRxGainReq:
			return decodeSetRxGainReq(c)
		case MACCommandIdWSAsyncReq:
			return decodeWSAsyncReq(c)
		case MACCommandIdFHEnableReq:
			return decodeFHEnableReq(c)
		case MACCommandIdFHStartReq:
			return decodeFHStartReq(c)
		case MACCommandIdFHGetReq:
			return decodeFHGetReq(c)
		case MACCommandIdFHSetReq:
			return decodeFHSetReq(c)
		}
	case CommandTypeSRSP:
		switch mid {
		case MACCommandIdInit:
			return decodeInitSRSP(c)
		case MACCommandIdDataReq:
			return decodeDataReqSRSP(c)
		case MACCommandIdPurgeReq:
			return decodePurgeReqSRSP(c)
		case MACCommandIdAssociateReq:
			return decodeAssociateReqSRSP(c)
		case MACCommandIdAssociateRsp:
			return decodeAssociateRspSRSP(c)
		case MACCommandIdDisassociateReq:
			return decodeDisassociateReqSRSP(c)
		case MACCommandIdGetReq:
			return decodeGetReqSRSP(c)
		case MACCommandIdSetReq:
			return decodeSetReqSRSP(c)
		case MACCommandIdSecurityGetReq:
			return decodeSecurityGetReqSRSP(c)
		case MACCommandIdSecuritySetReq:
			return decodeSecuritySetReqSRSP(c)
		case MACCommandIdUpdatePANIdReq:
			return decodeUpdatePANIdReqSRSP(c)
		case MACCommandIdAddDeviceReq:
			return decodeAddDeviceReqSRSP(c)
		case MACCommandIdDeleteDeviceReq:
			return decodeDeleteDeviceReqSRSP(c)
		case MACCommandIdDeleteAllDevicesReq:
			return decodeDeleteAllDevicesReqSRSP(c)
		case MACCommandIdDeleteKeyReq:
			return decodeDeleteKeyReqSRSP(c)
		case MACCommandIdReadKeyReq:
			return decodeReadKeyReqSRSP(c)
		case MACCommandIdWriteKeyReq:
			return decodeWriteKeyReqSRSP(c)
		case MACCommandIdOrphanRsp:
			return decodeOrphanRspSRSP(c)
		case MACCommandIdPollReq:
			return decodePollReqSRSP(c)
		case MACCommandIdResetReq:
			return decodeResetReqSRSP(c)
		case MACCommandIdScanReq:
			return decodeScanReqSRSP(c)
		case MACCommandIdStartReq:
			return decodeStartReqSRSP(c)
		case MACCommandIdSyncReq:
			return decodeSyncReqSRSP(c)
		case MACCommandIdSetRxGainReq:
			return decodeSetRxGainReqSRSP(c)
		case MACCommandIdWSAsyncReq:
			return decodeWSAsyncReqSRSP(c)
		case MACCommandIdFHEnableReq:
			return decodeFHEnableReqSRSP(c)
		case MACCommandIdFHStartReq:
			return decodeFHStartReqSRSP(c)
		case MACCommandIdFHGetReq:
			return decodeFHGetReqSRSP(c)
		case MACCommandIdFHSetReq:
			return decodeFHSetReqSRSP(c)
		}
	}
	return nil, ErrNotImplemented
}
