package events

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

// EmitIncrementEvent emits an increment event once the packet has been handed
// to core IBC.
func EmitIncrementEvent(ctx sdk.Context, sender, channel string, callback bool, sequence uint64) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeIncrement,
			sdk.NewAttribute(sdk.AttributeKeySender, sender),
			sdk.NewAttribute(types.AttributeKeyChannel, channel),
			sdk.NewAttribute(types.AttributeKeyCallback, strconv.FormatBool(callback)),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitOnRecvPacketEvent emits a counter packet event in the OnRecvPacket callback
func EmitOnRecvPacketEvent(ctx sdk.Context, channel string, packetData types.PacketData, ack types.Acknowledgement) {
	eventAttributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyMethod, "on_recv_packet"),
		sdk.NewAttribute(types.AttributeKeyChannel, channel),
		sdk.NewAttribute(types.AttributeKeyCallback, strconv.FormatBool(packetData.RequestsCallback())),
		sdk.NewAttribute(types.AttributeKeyAckSuccess, strconv.FormatBool(ack.Success())),
	}

	switch ack := ack.(type) {
	case types.AckSuccess:
		eventAttributes = append(eventAttributes, sdk.NewAttribute(types.AttributeKeyCount, strconv.FormatUint(ack.Count, 10)))
	case types.AckError:
		eventAttributes = append(eventAttributes, sdk.NewAttribute(types.AttributeKeyAckError, ack.Message))
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePacket,
			eventAttributes...,
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitOnAcknowledgementPacketEvent emits a counter packet event in the OnAcknowledgementPacket callback
func EmitOnAcknowledgementPacketEvent(ctx sdk.Context, channel string, packetData types.PacketData, ack types.Acknowledgement) {
	eventAttributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyMethod, "on_acknowledgement_packet"),
		sdk.NewAttribute(types.AttributeKeyChannel, channel),
		sdk.NewAttribute(types.AttributeKeyAckSuccess, strconv.FormatBool(ack.Success())),
	}

	switch ack := ack.(type) {
	case types.AckSuccess:
		eventAttributes = append(eventAttributes, sdk.NewAttribute(types.AttributeKeyCallback, strconv.FormatBool(ack.Callback)))
	case types.AckError:
		eventAttributes = append(eventAttributes, sdk.NewAttribute(types.AttributeKeyAckError, ack.Message))
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePacket,
			eventAttributes...,
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitIncrementCallbackEvent emits an event when the callback counter moves.
func EmitIncrementCallbackEvent(ctx sdk.Context, count uint64) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeIncrementCallback,
			sdk.NewAttribute(types.AttributeKeyCount, strconv.FormatUint(count, 10)),
		),
	)
}

// EmitOnTimeoutEvent emits a counter timeout event
func EmitOnTimeoutEvent(ctx sdk.Context, channel string, sequence uint64) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeTimeout,
			sdk.NewAttribute(types.AttributeKeyChannel, channel),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitChannelConnectEvent emits an event when a channel counter is initialised.
func EmitChannelConnectEvent(ctx sdk.Context, channel string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChannelConnect,
			sdk.NewAttribute(types.AttributeKeyChannel, channel),
		),
	)
}
