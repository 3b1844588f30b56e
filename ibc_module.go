package counter

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/apps/counter/internal/events"
	"github.com/cosmos/ibc-go/modules/apps/counter/keeper"
	"github.com/cosmos/ibc-go/modules/apps/counter/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v10/modules/core/05-port/types"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"
	ibcexported "github.com/cosmos/ibc-go/v10/modules/core/exported"
)

var (
	_ porttypes.IBCModule             = (*IBCModule)(nil)
	_ porttypes.PacketDataUnmarshaler = (*IBCModule)(nil)
)

// IBCModule implements the ICS26 interface for the counter application given
// the counter keeper.
type IBCModule struct {
	keeper keeper.Keeper
}

// NewIBCModule creates a new IBCModule given the keeper
func NewIBCModule(k keeper.Keeper) IBCModule {
	return IBCModule{
		keeper: k,
	}
}

// ValidateCounterChannelParams does validation of a newly created counter
// channel. A counter channel must be UNORDERED and use the port the counter
// module is bound to. An ordered channel would stop working for good as soon
// as a single packet is lost.
func ValidateCounterChannelParams(
	ctx sdk.Context,
	counterKeeper keeper.Keeper,
	order channeltypes.Order,
	portID string,
) error {
	if order != channeltypes.UNORDERED {
		return errorsmod.Wrapf(channeltypes.ErrInvalidChannelOrdering, "expected %s channel, got %s ", channeltypes.UNORDERED, order)
	}

	// Require portID is the portID the counter module is bound to
	boundPort := counterKeeper.GetPort(ctx)
	if boundPort != portID {
		return errorsmod.Wrapf(porttypes.ErrInvalidPort, "invalid port: %s, expected %s", portID, boundPort)
	}

	return nil
}

// OnChanOpenInit implements the IBCModule interface
func (im IBCModule) OnChanOpenInit(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID string,
	channelID string,
	counterparty channeltypes.Counterparty,
	version string,
) (string, error) {
	if err := ValidateCounterChannelParams(ctx, im.keeper, order, portID); err != nil {
		return "", err
	}

	if strings.TrimSpace(version) == "" {
		version = types.Version
	}

	if version != types.Version {
		return "", errorsmod.Wrapf(types.ErrInvalidVersion, "expected %s, got %s", types.Version, version)
	}

	return version, nil
}

// OnChanOpenTry implements the IBCModule interface.
func (im IBCModule) OnChanOpenTry(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID,
	channelID string,
	counterparty channeltypes.Counterparty,
	counterpartyVersion string,
) (string, error) {
	if err := ValidateCounterChannelParams(ctx, im.keeper, order, portID); err != nil {
		return "", err
	}

	// the counterparty must speak the same protocol as us
	if counterpartyVersion != types.Version {
		return "", errorsmod.Wrapf(types.ErrInvalidVersion, "invalid counterparty version: expected %s, got %s", types.Version, counterpartyVersion)
	}

	return types.Version, nil
}

// OnChanOpenAck implements the IBCModule interface
func (im IBCModule) OnChanOpenAck(
	ctx sdk.Context,
	portID,
	channelID string,
	_ string,
	counterpartyVersion string,
) error {
	if counterpartyVersion != types.Version {
		return errorsmod.Wrapf(types.ErrInvalidVersion, "invalid counterparty version: expected %s, got %s", types.Version, counterpartyVersion)
	}

	return im.initChannel(ctx, channelID)
}

// OnChanOpenConfirm implements the IBCModule interface
func (im IBCModule) OnChanOpenConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return im.initChannel(ctx, channelID)
}

// OnChanCloseInit implements the IBCModule interface
func (IBCModule) OnChanCloseInit(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return nil
}

// OnChanCloseConfirm implements the IBCModule interface. Counters of closed
// channels are kept.
func (IBCModule) OnChanCloseConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return nil
}

// OnRecvPacket implements the IBCModule interface. Whatever happens an
// acknowledgement is returned: a packet that cannot be decoded gets an error
// acknowledgement and leaves the counters untouched, so the channel keeps
// working for the packets after it.
func (im IBCModule) OnRecvPacket(
	ctx sdk.Context,
	channelVersion string,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) ibcexported.Acknowledgement {
	var (
		ack  types.Acknowledgement
		data types.PacketData
	)

	// we are explicitly wrapping this emit event call in an anonymous function so that
	// the packet data is evaluated after it has been assigned a value.
	defer func() {
		events.EmitOnRecvPacketEvent(ctx, packet.DestinationChannel, data, ack)
	}()

	data, err := types.DecodePacketData(packet.GetData())
	if err != nil {
		ack = types.NewAckError(types.AckErrInvalidPayload)
		im.keeper.Logger(ctx).Error(fmt.Sprintf("%s sequence %d", err.Error(), packet.Sequence))
		return types.ToChannelAcknowledgement(ack)
	}

	success, err := im.keeper.OnRecvPacket(
		ctx,
		data,
		packet.SourcePort,
		packet.SourceChannel,
		packet.DestinationPort,
		packet.DestinationChannel,
	)
	if err != nil {
		ack = types.NewAckError(err.Error())
		im.keeper.Logger(ctx).Error(fmt.Sprintf("%s sequence %d", err.Error(), packet.Sequence))
		return types.ToChannelAcknowledgement(ack)
	}

	ack = success

	im.keeper.Logger(ctx).Info("successfully handled counter packet", "sequence", packet.Sequence, "count", success.Count, "callback", success.Callback)

	// NOTE: acknowledgement will be written synchronously during IBC handler execution.
	return types.ToChannelAcknowledgement(ack)
}

// OnAcknowledgementPacket implements the IBCModule interface
func (im IBCModule) OnAcknowledgementPacket(
	ctx sdk.Context,
	channelVersion string,
	packet channeltypes.Packet,
	acknowledgement []byte,
	relayer sdk.AccAddress,
) error {
	ack, err := types.DecodeAcknowledgement(acknowledgement)
	if err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrUnknownRequest, "cannot unmarshal counter packet acknowledgement: %v", err)
	}

	data, err := types.DecodePacketData(packet.GetData())
	if err != nil {
		return err
	}

	if err := im.keeper.OnAcknowledgementPacket(ctx, packet.SourcePort, packet.SourceChannel, ack); err != nil {
		return err
	}

	events.EmitOnAcknowledgementPacketEvent(ctx, packet.SourceChannel, data, ack)

	return nil
}

// OnTimeoutPacket implements the IBCModule interface
func (im IBCModule) OnTimeoutPacket(
	ctx sdk.Context,
	channelVersion string,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) error {
	if _, err := types.DecodePacketData(packet.GetData()); err != nil {
		return err
	}

	if err := im.keeper.OnTimeoutPacket(ctx, packet.SourcePort, packet.SourceChannel, packet.Sequence); err != nil {
		return err
	}

	events.EmitOnTimeoutEvent(ctx, packet.SourceChannel, packet.Sequence)

	return nil
}

// UnmarshalPacketData attempts to unmarshal the provided packet data bytes
// into a PacketData. This function implements the optional
// PacketDataUnmarshaler interface required for ADR 008 support.
func (im IBCModule) UnmarshalPacketData(ctx sdk.Context, portID string, channelID string, bz []byte) (interface{}, string, error) {
	version, found := im.keeper.GetICS4Wrapper().GetAppVersion(ctx, portID, channelID)
	if !found {
		return types.PacketData{}, "", errorsmod.Wrapf(ibcerrors.ErrNotFound, "app version not found for port %s and channel %s", portID, channelID)
	}

	if version != types.Version {
		return types.PacketData{}, "", errorsmod.Wrapf(types.ErrInvalidVersion, "expected %s, got %s", types.Version, version)
	}

	data, err := types.DecodePacketData(bz)
	return data, version, err
}

func (im IBCModule) initChannel(ctx sdk.Context, channelID string) error {
	if err := im.keeper.InitChannelCount(ctx, channelID); err != nil {
		return err
	}

	events.EmitChannelConnectEvent(ctx, channelID)

	return nil
}
