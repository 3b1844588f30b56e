package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/apps/counter/internal/events"
	"github.com/cosmos/ibc-go/modules/apps/counter/internal/telemetry"
	"github.com/cosmos/ibc-go/modules/apps/counter/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// sendIncrement hands an increment packet to core IBC on sourceChannel. It
// does not touch any counter: the receive count moves on the counterparty
// once the packet is relayed, and the callback count only once the
// acknowledgement comes back.
func (k Keeper) sendIncrement(ctx sdk.Context, sourceChannel string, callback bool) (uint64, error) {
	sourcePort := k.GetPort(ctx)

	channel, found := k.channelKeeper.GetChannel(ctx, sourcePort, sourceChannel)
	if !found {
		return 0, errorsmod.Wrapf(types.ErrChannelNotFound, "port ID (%s) channel ID (%s)", sourcePort, sourceChannel)
	}
	if channel.State != channeltypes.OPEN {
		return 0, errorsmod.Wrapf(types.ErrChannelNotFound, "port ID (%s) channel ID (%s) is %s, expected %s", sourcePort, sourceChannel, channel.State, channeltypes.OPEN)
	}

	params := k.GetParams(ctx)
	timeoutTimestamp := uint64(ctx.BlockTime().Add(params.PacketTimeout()).UnixNano())

	packetData := types.NewIncrementPacketData(callback)
	sequence, err := k.ics4Wrapper.SendPacket(ctx, sourcePort, sourceChannel, clienttypes.ZeroHeight(), timeoutTimestamp, packetData.GetBytes())
	if err != nil {
		return 0, errorsmod.Wrapf(err, "failed to send increment packet on channel %s", sourceChannel)
	}

	telemetry.ReportSend(sourcePort, sourceChannel, channel.Counterparty.PortId, channel.Counterparty.ChannelId, callback)

	return sequence, nil
}

// OnRecvPacket applies a received increment packet: it adds one to the
// counter of the destination channel, whatever the callback flag says, and
// returns the success acknowledgement echoing that flag.
func (k Keeper) OnRecvPacket(
	ctx sdk.Context,
	data types.PacketData,
	sourcePort,
	sourceChannel,
	destPort,
	destChannel string,
) (types.AckSuccess, error) {
	if err := data.ValidateBasic(); err != nil {
		return types.AckSuccess{}, err
	}

	count, err := k.IncrementChannelCount(ctx, destChannel)
	if err != nil {
		return types.AckSuccess{}, err
	}

	telemetry.ReportOnRecvPacket(sourcePort, sourceChannel, destPort, destChannel, count)

	return types.NewAckSuccess(count, data.RequestsCallback()), nil
}

// OnAcknowledgementPacket runs on the chain that sent the packet. An error
// acknowledgement or a success one without callback changes nothing. A success
// acknowledgement with callback set increments the callback counter and, if
// enabled by params, dispatches the follow-up MsgIncrementCallback.
func (k Keeper) OnAcknowledgementPacket(
	ctx sdk.Context,
	sourcePort,
	sourceChannel string,
	ack types.Acknowledgement,
) error {
	switch ack := ack.(type) {
	case types.AckError:
		k.Logger(ctx).Error("counter packet failed on counterparty", "port-id", sourcePort, "channel-id", sourceChannel, "error", ack.Message)
		return nil
	case types.AckSuccess:
		if !ack.Callback {
			return nil
		}

		count, err := k.IncrementCallbackCount(ctx)
		if err != nil {
			return err
		}

		events.EmitIncrementCallbackEvent(ctx, count)
		telemetry.ReportCallback(sourcePort, sourceChannel, count)

		if k.GetParams(ctx).DispatchCallbackMsg {
			return k.dispatchCallbackMsg(ctx)
		}

		return nil
	default:
		return errorsmod.Wrapf(types.ErrInvalidAcknowledgement, "unsupported acknowledgement type %T", ack)
	}
}

// OnTimeoutPacket runs when a sent packet times out. Nothing was mutated
// when the packet was sent, so there is nothing to revert.
func (k Keeper) OnTimeoutPacket(ctx sdk.Context, sourcePort, sourceChannel string, sequence uint64) error {
	k.Logger(ctx).Info("counter packet timed out", "port-id", sourcePort, "channel-id", sourceChannel, "sequence", sequence)
	return nil
}

// dispatchCallbackMsg executes MsgIncrementCallback with the module account as
// sender. The message runs in a cached context whose writes are only
// committed if it succeeds.
func (k Keeper) dispatchCallbackMsg(ctx sdk.Context) error {
	msg := types.NewMsgIncrementCallback(k.GetModuleAddress().String())

	cachedCtx, writeFn := ctx.CacheContext()
	if _, err := k.IncrementCallback(cachedCtx, msg); err != nil {
		return errorsmod.Wrapf(types.ErrCallbackDispatchFailed, "failed to execute %T: %v", msg, err)
	}

	writeFn()

	return nil
}
