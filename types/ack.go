package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// Acknowledgement is the result of processing a counter packet on the
// receiving chain. It is either an AckSuccess or an AckError.
type Acknowledgement interface {
	Success() bool
	ValidateBasic() error

	isAcknowledgement()
}

var (
	_ Acknowledgement = AckSuccess{}
	_ Acknowledgement = AckError{}
)

// AckSuccess is returned when the packet was applied. Count is the receive
// counter of the channel after the increment.
type AckSuccess struct {
	Count    uint64 `json:"count"`
	Callback bool   `json:"callback"`
}

// NewAckSuccess returns a success acknowledgement.
func NewAckSuccess(count uint64, callback bool) AckSuccess {
	return AckSuccess{
		Count:    count,
		Callback: callback,
	}
}

// Success implements Acknowledgement.
func (AckSuccess) Success() bool { return true }

// ValidateBasic implements Acknowledgement.
func (AckSuccess) ValidateBasic() error { return nil }

func (AckSuccess) isAcknowledgement() {}

// UnmarshalJSON implements json.Unmarshaler. Both count and callback are
// required.
func (ack *AckSuccess) UnmarshalJSON(bz []byte) error {
	var raw struct {
		Count    *uint64 `json:"count"`
		Callback *bool   `json:"callback"`
	}
	if err := decodeStrictJSON(bz, &raw); err != nil {
		return err
	}
	switch {
	case raw.Count == nil:
		return errors.New("missing field count")
	case raw.Callback == nil:
		return errors.New("missing field callback")
	}

	ack.Count = *raw.Count
	ack.Callback = *raw.Callback
	return nil
}

// AckError is returned when the packet could not be applied. An AckError with
// a blank message fails ValidateBasic: it still encodes, but the encoding
// does not decode back.
type AckError struct {
	Message string
}

// NewAckError returns an error acknowledgement.
func NewAckError(message string) AckError {
	return AckError{Message: message}
}

// Success implements Acknowledgement.
func (AckError) Success() bool { return false }

// ValidateBasic implements Acknowledgement.
func (ack AckError) ValidateBasic() error {
	if strings.TrimSpace(ack.Message) == "" {
		return errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement error cannot be empty")
	}
	return nil
}

func (AckError) isAcknowledgement() {}

// ToChannelAcknowledgement wraps ack into the ICS-04 acknowledgement envelope.
func ToChannelAcknowledgement(ack Acknowledgement) channeltypes.Acknowledgement {
	switch ack := ack.(type) {
	case AckSuccess:
		bz, err := json.Marshal(ack)
		if err != nil {
			panic(err)
		}
		return channeltypes.NewResultAcknowledgement(sdk.MustSortJSON(bz))
	case AckError:
		return channeltypes.Acknowledgement{
			Response: &channeltypes.Acknowledgement_Error{
				Error: ack.Message,
			},
		}
	default:
		panic(fmt.Errorf("unsupported acknowledgement type %T", ack))
	}
}

// FromChannelAcknowledgement unwraps an ICS-04 acknowledgement envelope.
func FromChannelAcknowledgement(ack channeltypes.Acknowledgement) (Acknowledgement, error) {
	switch resp := ack.Response.(type) {
	case *channeltypes.Acknowledgement_Result:
		if len(resp.Result) == 0 {
			return nil, errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement result cannot be empty")
		}

		var success AckSuccess
		if err := decodeStrictJSON(resp.Result, &success); err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidAcknowledgement, "cannot unmarshal acknowledgement result: %s", err)
		}
		return success, nil
	case *channeltypes.Acknowledgement_Error:
		errAck := NewAckError(resp.Error)
		if err := errAck.ValidateBasic(); err != nil {
			return nil, err
		}
		return errAck, nil
	default:
		return nil, errorsmod.Wrapf(ErrInvalidAcknowledgement, "unsupported acknowledgement response type %T", resp)
	}
}

// EncodeAcknowledgement returns the bytes written to the chain for ack.
// DecodeAcknowledgement inverts it for every ack passing ValidateBasic.
func EncodeAcknowledgement(ack Acknowledgement) []byte {
	channelAck := ToChannelAcknowledgement(ack)
	return channelAck.Acknowledgement()
}

// DecodeAcknowledgement decodes acknowledgement bytes produced by
// EncodeAcknowledgement. The bytes must be the canonical encoding of the
// envelope they decode to.
func DecodeAcknowledgement(bz []byte) (Acknowledgement, error) {
	if len(bz) == 0 {
		return nil, errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement cannot be empty")
	}

	var channelAck channeltypes.Acknowledgement
	if err := ModuleCdc.UnmarshalJSON(bz, &channelAck); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAcknowledgement, "cannot unmarshal counter packet acknowledgement: %v", err)
	}

	if canonical := channelAck.Acknowledgement(); !bytes.Equal(canonical, bz) {
		return nil, errorsmod.Wrapf(ErrInvalidAcknowledgement, "acknowledgement did not marshal to expected bytes: %X ≠ %X", canonical, bz)
	}

	return FromChannelAcknowledgement(channelAck)
}
