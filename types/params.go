package types

import (
	"encoding/json"
	"fmt"
	"time"

	collcodec "cosmossdk.io/collections/codec"
	errorsmod "cosmossdk.io/errors"
)

const (
	// DefaultDispatchCallbackMsg enables the follow-up callback message by default
	DefaultDispatchCallbackMsg = true
	// DefaultPacketTimeoutSeconds is the relative timeout, in seconds, of sent packets
	DefaultPacketTimeoutSeconds uint64 = 300

	// maxPacketTimeout keeps block time plus timeout inside the range of a
	// nanosecond unix timestamp.
	maxPacketTimeout = 365 * 24 * time.Hour
)

// Params defines the counter module parameters.
type Params struct {
	// DispatchCallbackMsg makes the origin execute a MsgIncrementCallback on
	// itself, in addition to its own callback increment, whenever a success
	// acknowledgement requests a callback.
	DispatchCallbackMsg bool `json:"dispatch_callback_msg"`
	// PacketTimeoutSeconds is added to the block time to compute the timeout
	// timestamp of outgoing packets.
	PacketTimeoutSeconds uint64 `json:"packet_timeout_seconds"`
}

// NewParams creates a new parameter configuration for the counter module
func NewParams(dispatchCallbackMsg bool, packetTimeoutSeconds uint64) Params {
	return Params{
		DispatchCallbackMsg:  dispatchCallbackMsg,
		PacketTimeoutSeconds: packetTimeoutSeconds,
	}
}

// DefaultParams is the default parameter configuration for the counter module
func DefaultParams() Params {
	return NewParams(DefaultDispatchCallbackMsg, DefaultPacketTimeoutSeconds)
}

// Validate all counter module parameters
func (p Params) Validate() error {
	if p.PacketTimeoutSeconds == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "packet timeout must be greater than zero")
	}
	if p.PacketTimeoutSeconds > uint64(maxPacketTimeout/time.Second) {
		return errorsmod.Wrapf(ErrInvalidParams, "packet timeout must not exceed %s", maxPacketTimeout)
	}
	return nil
}

// PacketTimeout returns the relative packet timeout as a duration.
func (p Params) PacketTimeout() time.Duration {
	return time.Duration(p.PacketTimeoutSeconds) * time.Second
}

// ParamsValue is the collections value codec of Params. Params are stored as
// JSON.
var ParamsValue collcodec.ValueCodec[Params] = paramsValueCodec{}

type paramsValueCodec struct{}

func (paramsValueCodec) Encode(value Params) ([]byte, error) {
	return json.Marshal(value)
}

func (paramsValueCodec) Decode(bz []byte) (Params, error) {
	var params Params
	if err := decodeStrictJSON(bz, &params); err != nil {
		return Params{}, err
	}
	return params, nil
}

func (c paramsValueCodec) EncodeJSON(value Params) ([]byte, error) {
	return c.Encode(value)
}

func (c paramsValueCodec) DecodeJSON(bz []byte) (Params, error) {
	return c.Decode(bz)
}

func (paramsValueCodec) Stringify(value Params) string {
	return fmt.Sprintf("%+v", value)
}

func (paramsValueCodec) ValueType() string {
	return "counter/params"
}
