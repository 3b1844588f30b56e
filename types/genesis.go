package types

import (
	errorsmod "cosmossdk.io/errors"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
)

// ChannelCount is the receive count of a single channel.
type ChannelCount struct {
	ChannelID string `json:"channel_id"`
	Count     uint64 `json:"count"`
}

// GenesisState defines the counter genesis state
type GenesisState struct {
	PortID        string         `json:"port_id"`
	Params        Params         `json:"params"`
	ChannelCounts []ChannelCount `json:"channel_counts"`
	CallbackCount uint64         `json:"callback_count"`
}

// NewGenesisState creates a new counter GenesisState instance.
func NewGenesisState(portID string, params Params, channelCounts []ChannelCount, callbackCount uint64) *GenesisState {
	return &GenesisState{
		PortID:        portID,
		Params:        params,
		ChannelCounts: channelCounts,
		CallbackCount: callbackCount,
	}
}

// DefaultGenesisState returns a GenesisState with "counter" as the default PortID.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		PortID:        PortID,
		Params:        DefaultParams(),
		ChannelCounts: []ChannelCount{},
		CallbackCount: 0,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := host.PortIdentifierValidator(gs.PortID); err != nil {
		return err
	}

	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(gs.ChannelCounts))
	for _, cc := range gs.ChannelCounts {
		if err := host.ChannelIdentifierValidator(cc.ChannelID); err != nil {
			return errorsmod.Wrapf(err, "invalid channel ID %s", cc.ChannelID)
		}
		if _, ok := seen[cc.ChannelID]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate count for channel %s", cc.ChannelID)
		}
		seen[cc.ChannelID] = struct{}{}
	}

	return nil
}
