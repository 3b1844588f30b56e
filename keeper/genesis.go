package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

// InitGenesis initializes the counter module state from a genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, state *types.GenesisState) error {
	if err := state.Validate(); err != nil {
		return err
	}

	k.SetPort(ctx, state.PortID)
	k.SetParams(ctx, state.Params)

	for _, cc := range state.ChannelCounts {
		if err := k.ChannelCounts.Set(ctx, cc.ChannelID, cc.Count); err != nil {
			return err
		}
	}

	return k.CallbackCount.Set(ctx, state.CallbackCount)
}

// ExportGenesis exports the counter module state to a genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	channelCounts := []types.ChannelCount{}
	if err := k.ChannelCounts.Walk(ctx, nil, func(channelID string, count uint64) (bool, error) {
		channelCounts = append(channelCounts, types.ChannelCount{
			ChannelID: channelID,
			Count:     count,
		})

		return false, nil
	}); err != nil {
		return nil, err
	}

	return types.NewGenesisState(
		k.GetPort(ctx),
		k.GetParams(ctx),
		channelCounts,
		k.GetCallbackCount(ctx),
	), nil
}
