package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// ModuleCdc references the global counter module codec. It is only used to
// decode the ICS-04 acknowledgement envelope, which is a protobuf message
// encoded as JSON.
var ModuleCdc = codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
