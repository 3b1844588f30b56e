package types

import (
	errorsmod "cosmossdk.io/errors"
)

// IBC counter sentinel errors
var (
	ErrChannelNotFound        = errorsmod.Register(ModuleName, 2, "channel not found")
	ErrInvalidPacketData      = errorsmod.Register(ModuleName, 3, "invalid packet data")
	ErrInvalidAcknowledgement = errorsmod.Register(ModuleName, 4, "invalid acknowledgement")
	ErrInvalidVersion         = errorsmod.Register(ModuleName, 5, "invalid counter version")
	ErrInvalidParams          = errorsmod.Register(ModuleName, 6, "invalid params")
	ErrUnknownMsg             = errorsmod.Register(ModuleName, 7, "unknown counter message")
	ErrInvalidGenesis         = errorsmod.Register(ModuleName, 8, "invalid genesis state")
	ErrCallbackDispatchFailed = errorsmod.Register(ModuleName, 9, "callback dispatch failed")
)

// AckErrInvalidPayload is the error string written into the acknowledgement
// of a packet whose payload cannot be decoded.
const AckErrInvalidPayload = "invalid payload"
