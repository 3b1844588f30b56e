package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/apps/counter/internal/events"
	"github.com/cosmos/ibc-go/modules/apps/counter/types"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"
)

// Increment defines the handler for the MsgIncrement message. It sends an
// increment packet on the given channel and returns its sequence.
func (k Keeper) Increment(goCtx context.Context, msg *types.MsgIncrement) (*types.MsgIncrementResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	sequence, err := k.sendIncrement(ctx, msg.Channel, msg.Callback)
	if err != nil {
		return nil, err
	}

	events.EmitIncrementEvent(ctx, msg.Sender, msg.Channel, msg.Callback, sequence)

	k.Logger(ctx).Info("IBC increment packet sent", "sender", msg.Sender, "channel", msg.Channel, "callback", msg.Callback, "sequence", sequence)

	return &types.MsgIncrementResponse{Sequence: sequence}, nil
}

// IncrementCallback defines the handler for the MsgIncrementCallback message.
func (k Keeper) IncrementCallback(goCtx context.Context, msg *types.MsgIncrementCallback) (*types.MsgIncrementCallbackResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	count, err := k.IncrementCallbackCount(ctx)
	if err != nil {
		return nil, err
	}

	events.EmitIncrementCallbackEvent(ctx, count)

	k.Logger(ctx).Debug("callback counter incremented", "sender", msg.Sender, "count", count)

	return &types.MsgIncrementCallbackResponse{Count: count}, nil
}

// UpdateParams defines an rpc handler method for MsgUpdateParams. Updates the counter module's parameters.
func (k Keeper) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if k.GetAuthority() != msg.Signer {
		return nil, errorsmod.Wrapf(ibcerrors.ErrUnauthorized, "expected %s, got %s", k.GetAuthority(), msg.Signer)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	k.SetParams(ctx, msg.Params)

	return &types.MsgUpdateParamsResponse{}, nil
}
