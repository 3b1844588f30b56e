package ibctesting

import (
	"fmt"
	"maps"
	"slices"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v10/modules/core/05-port/types"
	ibcexported "github.com/cosmos/ibc-go/v10/modules/core/exported"
)

var (
	_ types.ChannelKeeper   = (*ChannelKeeper)(nil)
	_ porttypes.ICS4Wrapper = (*ChannelKeeper)(nil)
)

// pendingPacket is a sent packet waiting to be relayed.
type pendingPacket struct {
	index  uint64
	packet channeltypes.Packet
}

// ChannelKeeper stands in for core IBC on a TestChain. It stores channel ends,
// hands out send sequences, keeps the outbox of sent packets and records the
// acknowledgements written for received ones.
type ChannelKeeper struct {
	coord *Coordinator

	channels       map[string]channeltypes.Channel
	nextSequence   map[string]uint64
	acks           map[string][]byte
	outbox         []pendingPacket
	channelCounter uint64
}

// keeperSnapshot is the in-memory state of a ChannelKeeper at the start of an
// invocation, restored when the invocation fails.
type keeperSnapshot struct {
	outbox         int
	nextSequence   map[string]uint64
	channelCounter uint64
}

// NewChannelKeeper returns an empty ChannelKeeper.
func NewChannelKeeper(coord *Coordinator) *ChannelKeeper {
	return &ChannelKeeper{
		coord:        coord,
		channels:     make(map[string]channeltypes.Channel),
		nextSequence: make(map[string]uint64),
		acks:         make(map[string][]byte),
	}
}

// GenerateChannelIdentifier returns the next free channel identifier.
func (ck *ChannelKeeper) GenerateChannelIdentifier() string {
	channelID := channeltypes.FormatChannelIdentifier(ck.channelCounter)
	ck.channelCounter++
	return channelID
}

// SetChannel stores a channel end.
func (ck *ChannelKeeper) SetChannel(portID, channelID string, channel channeltypes.Channel) {
	ck.channels[channelKey(portID, channelID)] = channel
}

// GetChannel implements types.ChannelKeeper.
func (ck *ChannelKeeper) GetChannel(_ sdk.Context, portID, channelID string) (channeltypes.Channel, bool) {
	channel, found := ck.channels[channelKey(portID, channelID)]
	return channel, found
}

// SendPacket implements porttypes.ICS4Wrapper. The packet is queued in the
// outbox with the next sequence of the channel.
func (ck *ChannelKeeper) SendPacket(
	ctx sdk.Context,
	sourcePort string,
	sourceChannel string,
	timeoutHeight clienttypes.Height,
	timeoutTimestamp uint64,
	data []byte,
) (uint64, error) {
	channel, found := ck.GetChannel(ctx, sourcePort, sourceChannel)
	if !found {
		return 0, errorsmod.Wrap(channeltypes.ErrChannelNotFound, sourceChannel)
	}

	if channel.State != channeltypes.OPEN {
		return 0, errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel state is not OPEN (got %s)", channel.State)
	}

	if timeoutHeight.IsZero() && timeoutTimestamp == 0 {
		return 0, errorsmod.Wrap(channeltypes.ErrInvalidPacket, "packet timeout height and packet timeout timestamp cannot both be 0")
	}

	if timeoutTimestamp != 0 && uint64(ctx.BlockTime().UnixNano()) >= timeoutTimestamp {
		return 0, errorsmod.Wrapf(channeltypes.ErrTimeoutElapsed, "timeout timestamp %d has already passed", timeoutTimestamp)
	}

	key := channelKey(sourcePort, sourceChannel)
	sequence, ok := ck.nextSequence[key]
	if !ok {
		sequence = 1
	}
	ck.nextSequence[key] = sequence + 1

	packet := channeltypes.NewPacket(
		data, sequence,
		sourcePort, sourceChannel,
		channel.Counterparty.PortId, channel.Counterparty.ChannelId,
		timeoutHeight, timeoutTimestamp,
	)

	ck.outbox = append(ck.outbox, pendingPacket{index: ck.coord.nextPacketIndex(), packet: packet})

	return sequence, nil
}

// WriteAcknowledgement implements porttypes.ICS4Wrapper.
func (ck *ChannelKeeper) WriteAcknowledgement(_ sdk.Context, packet ibcexported.PacketI, ack ibcexported.Acknowledgement) error {
	if ack == nil {
		return errorsmod.Wrap(channeltypes.ErrInvalidAcknowledgement, "acknowledgement cannot be nil")
	}

	key := packetKey(packet.GetDestPort(), packet.GetDestChannel(), packet.GetSequence())
	if _, found := ck.acks[key]; found {
		return channeltypes.ErrAcknowledgementExists
	}

	ck.acks[key] = ack.Acknowledgement()

	return nil
}

// GetAppVersion implements porttypes.ICS4Wrapper.
func (ck *ChannelKeeper) GetAppVersion(ctx sdk.Context, portID, channelID string) (string, bool) {
	channel, found := ck.GetChannel(ctx, portID, channelID)
	if !found {
		return "", false
	}
	return channel.Version, true
}

// GetAcknowledgement returns the acknowledgement bytes written for the packet
// received on the given destination port and channel.
func (ck *ChannelKeeper) GetAcknowledgement(portID, channelID string, sequence uint64) ([]byte, bool) {
	ack, found := ck.acks[packetKey(portID, channelID, sequence)]
	return ack, found
}

// PendingPackets returns the number of packets waiting in the outbox.
func (ck *ChannelKeeper) PendingPackets() int {
	return len(ck.outbox)
}

// takePending removes every queued packet sent on the given channel and
// returns them.
func (ck *ChannelKeeper) takePending(portID, channelID string) []pendingPacket {
	var taken, kept []pendingPacket
	for _, p := range ck.outbox {
		if p.packet.SourcePort == portID && p.packet.SourceChannel == channelID {
			taken = append(taken, p)
			continue
		}
		kept = append(kept, p)
	}
	ck.outbox = kept
	return taken
}

func (ck *ChannelKeeper) snapshot() keeperSnapshot {
	return keeperSnapshot{
		outbox:         len(ck.outbox),
		nextSequence:   maps.Clone(ck.nextSequence),
		channelCounter: ck.channelCounter,
	}
}

func (ck *ChannelKeeper) restore(s keeperSnapshot) {
	ck.outbox = slices.Clip(ck.outbox[:s.outbox])
	ck.nextSequence = s.nextSequence
	ck.channelCounter = s.channelCounter
}

func channelKey(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", portID, channelID)
}

func packetKey(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("%s/%s/%d", portID, channelID, sequence)
}
