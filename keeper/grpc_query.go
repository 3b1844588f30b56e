package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

// Count implements the Query/Count method. The reserved key
// types.CallbackCounterKey reads the callback counter, any other key is looked
// up as a channel ID. Unknown channels count zero.
func (k Keeper) Count(goCtx context.Context, req *types.QueryCountRequest) (*types.QueryCountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if req.Count == types.CallbackCounterKey {
		return &types.QueryCountResponse{Count: k.GetCallbackCount(ctx)}, nil
	}

	return &types.QueryCountResponse{Count: k.GetChannelCount(ctx, req.Count)}, nil
}

// Params implements the Query/Params method
func (k Keeper) Params(goCtx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	params := k.GetParams(ctx)

	return &types.QueryParamsResponse{
		Params: &params,
	}, nil
}
