package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PacketKind identifies the message carried by a counter packet.
type PacketKind int

const (
	KindUnknown PacketKind = iota
	KindIncrement
)

// String implements fmt.Stringer.
func (k PacketKind) String() string {
	switch k {
	case KindIncrement:
		return "increment"
	default:
		return "unknown"
	}
}

// IncrementPacket asks the receiving application to increment the counter of
// the channel the packet arrives on. Callback is echoed back in the
// acknowledgement and decides whether the origin runs its callback.
type IncrementPacket struct {
	Callback bool `json:"callback"`
}

// UnmarshalJSON implements json.Unmarshaler. The callback field is required.
func (p *IncrementPacket) UnmarshalJSON(bz []byte) error {
	var raw struct {
		Callback *bool `json:"callback"`
	}
	if err := decodeStrictJSON(bz, &raw); err != nil {
		return err
	}
	if raw.Callback == nil {
		return errors.New("missing field callback")
	}

	p.Callback = *raw.Callback
	return nil
}

// PacketData is the payload of a counter packet. Exactly one message must be set.
type PacketData struct {
	Increment *IncrementPacket `json:"increment,omitempty"`
}

// NewIncrementPacketData returns the packet data of an increment message.
func NewIncrementPacketData(callback bool) PacketData {
	return PacketData{
		Increment: &IncrementPacket{Callback: callback},
	}
}

// Kind returns the kind of message carried by the packet data.
func (pd PacketData) Kind() PacketKind {
	if pd.Increment != nil {
		return KindIncrement
	}
	return KindUnknown
}

// RequestsCallback reports whether the sender asked for a callback once the
// packet is acknowledged.
func (pd PacketData) RequestsCallback() bool {
	return pd.Increment != nil && pd.Increment.Callback
}

// ValidateBasic is used for validating the counter packet data.
func (pd PacketData) ValidateBasic() error {
	if pd.Kind() == KindUnknown {
		return errorsmod.Wrap(ErrInvalidPacketData, "packet data does not carry a known message")
	}
	return nil
}

// GetBytes is a helper for serialising the packet data.
func (pd PacketData) GetBytes() []byte {
	return EncodePacketData(pd)
}

// EncodePacketData returns the sorted JSON encoding of the packet data,
// e.g. {"increment":{"callback":true}}.
func EncodePacketData(pd PacketData) []byte {
	bz, err := json.Marshal(pd)
	if err != nil {
		panic(err)
	}
	return sdk.MustSortJSON(bz)
}

// DecodePacketData decodes counter packet data. Empty input, malformed JSON,
// unknown or missing fields, trailing data and packets without a known
// message are all rejected with ErrInvalidPacketData.
func DecodePacketData(bz []byte) (PacketData, error) {
	if len(bz) == 0 {
		return PacketData{}, errorsmod.Wrap(ErrInvalidPacketData, "packet data cannot be empty")
	}

	var pd PacketData
	if err := decodeStrictJSON(bz, &pd); err != nil {
		return PacketData{}, errorsmod.Wrapf(ErrInvalidPacketData, "cannot unmarshal counter packet data: %s", err)
	}

	if err := pd.ValidateBasic(); err != nil {
		return PacketData{}, err
	}

	return pd, nil
}

// decodeStrictJSON unmarshals a single JSON value into v, refusing unknown
// fields and anything after the value.
func decodeStrictJSON(bz []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(bz))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return err
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON value")
	}

	return nil
}
