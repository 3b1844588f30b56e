package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the IBC counter name
	ModuleName = "counter"

	// PortID is the default port id that the counter module binds to
	PortID = "counter"

	// StoreKey is the store key string for IBC counter
	StoreKey = ModuleName

	// RouterKey is the message route for IBC counter
	RouterKey = ModuleName

	// Version defines the channel version the counter application speaks.
	// Both channel ends must agree on it.
	Version = "simple-ibc-callback"

	// CallbackCounterKey is the reserved query key under which the global
	// callback counter is reported. It is never interpreted as a channel ID.
	CallbackCounterKey = "callback_counter"
)

var (
	// ChannelCountsPrefix is the store prefix of per-channel receive counts
	ChannelCountsPrefix = collections.NewPrefix(1)
	// CallbackCountKey is the store key of the callback counter singleton
	CallbackCountKey = collections.NewPrefix(2)
	// ParamsKey is the store key of the module params
	ParamsKey = collections.NewPrefix(3)
	// PortKey defines the key to store the port ID in store
	PortKey = collections.NewPrefix(4)
)
