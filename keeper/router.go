package keeper

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

// Execute routes a JSON command envelope to its handler on behalf of sender
// and returns the JSON encoded handler response.
func (k Keeper) Execute(ctx sdk.Context, sender string, bz []byte) ([]byte, error) {
	msg, err := types.DecodeExecuteMsg(bz)
	if err != nil {
		return nil, err
	}

	var res any
	switch {
	case msg.Increment != nil:
		res, err = k.Increment(ctx, types.NewMsgIncrement(sender, msg.Increment.Channel, msg.Increment.Callback))
	case msg.FirstIncrementCallback != nil:
		res, err = k.IncrementCallback(ctx, types.NewMsgIncrementCallback(sender))
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(res)
}

// Query routes a JSON query envelope and returns the JSON encoded result,
// e.g. {"count":2}.
func (k Keeper) Query(ctx sdk.Context, bz []byte) ([]byte, error) {
	msg, err := types.DecodeQueryMsg(bz)
	if err != nil {
		return nil, err
	}

	res, err := k.Count(ctx, &types.QueryCountRequest{Count: msg.GetCount.Count})
	if err != nil {
		return nil, err
	}

	return json.Marshal(res)
}
