package types

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"
)

// MsgIncrement requests an increment packet to be sent on Channel.
type MsgIncrement struct {
	Sender string `json:"sender"`
	// Channel is the local channel identifier the packet is sent on.
	Channel string `json:"channel"`
	// Callback asks the counterparty to acknowledge with callback set, which
	// triggers the callback counter on this chain.
	Callback bool `json:"callback"`
}

// MsgIncrementResponse defines the response of MsgIncrement.
type MsgIncrementResponse struct {
	Sequence uint64 `json:"sequence"`
}

// NewMsgIncrement creates a new MsgIncrement instance
func NewMsgIncrement(sender, channel string, callback bool) *MsgIncrement {
	return &MsgIncrement{
		Sender:   sender,
		Channel:  channel,
		Callback: callback,
	}
}

// ValidateBasic performs a basic check of the MsgIncrement fields.
func (msg MsgIncrement) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}
	if err := host.ChannelIdentifierValidator(msg.Channel); err != nil {
		return errorsmod.Wrapf(err, "invalid channel ID %s", msg.Channel)
	}
	return nil
}

// MsgIncrementCallback increments the callback counter. The module executes
// it on itself after a callback acknowledgement when enabled by params.
type MsgIncrementCallback struct {
	Sender string `json:"sender"`
}

// MsgIncrementCallbackResponse defines the response of MsgIncrementCallback.
type MsgIncrementCallbackResponse struct {
	Count uint64 `json:"count"`
}

// NewMsgIncrementCallback creates a new MsgIncrementCallback instance
func NewMsgIncrementCallback(sender string) *MsgIncrementCallback {
	return &MsgIncrementCallback{Sender: sender}
}

// ValidateBasic performs a basic check of the MsgIncrementCallback fields.
func (msg MsgIncrementCallback) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}
	return nil
}

// MsgUpdateParams replaces the module params. Signer must be the module authority.
type MsgUpdateParams struct {
	Signer string `json:"signer"`
	Params Params `json:"params"`
}

// MsgUpdateParamsResponse defines the response of MsgUpdateParams.
type MsgUpdateParamsResponse struct{}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(signer string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{
		Signer: signer,
		Params: params,
	}
}

// ValidateBasic implements sdk.HasValidateBasic
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}
	return msg.Params.Validate()
}
