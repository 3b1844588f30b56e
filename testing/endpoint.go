package ibctesting

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	ibcexported "github.com/cosmos/ibc-go/v10/modules/core/exported"
	coretypes "github.com/cosmos/ibc-go/v10/modules/core/types"
)

// Endpoint represents one end of a counter channel on a TestChain. Endpoint
// functions run the counter module's callbacks the way core IBC would and
// update the channel end stored in the chain's ChannelKeeper.
type Endpoint struct {
	Chain        *TestChain
	Counterparty *Endpoint
	ConnectionID string
	ChannelID    string

	ChannelConfig *ChannelConfig
}

// NewEndpoint constructs a new endpoint without the counterparty.
// CONTRACT: the counterparty endpoint must be set by the caller.
func NewEndpoint(chain *TestChain, channelConfig *ChannelConfig) *Endpoint {
	return &Endpoint{
		Chain:         chain,
		ConnectionID:  DefaultConnectionID,
		ChannelConfig: channelConfig,
	}
}

// NewDefaultEndpoint constructs a new endpoint using default values.
// CONTRACT: the counterparty endpoint must be set by the caller.
func NewDefaultEndpoint(chain *TestChain) *Endpoint {
	return NewEndpoint(chain, NewChannelConfig())
}

// ChanOpenInit runs the OnChanOpenInit callback and stores the channel end in
// INIT state.
func (endpoint *Endpoint) ChanOpenInit() error {
	cfg := endpoint.ChannelConfig

	return endpoint.Chain.Execute(func(ctx sdk.Context) error {
		channelID := endpoint.Chain.ChannelKeeper.GenerateChannelIdentifier()
		version, err := endpoint.Chain.Module.OnChanOpenInit(
			ctx, cfg.Order, []string{endpoint.ConnectionID},
			cfg.PortID, channelID,
			channeltypes.NewCounterparty(endpoint.Counterparty.ChannelConfig.PortID, ""),
			cfg.Version,
		)
		if err != nil {
			return err
		}

		endpoint.ChannelID = channelID
		cfg.Version = version
		endpoint.setChannel(channeltypes.INIT, "")

		return nil
	})
}

// ChanOpenTry runs the OnChanOpenTry callback and stores the channel end in
// TRYOPEN state.
func (endpoint *Endpoint) ChanOpenTry() error {
	cfg := endpoint.ChannelConfig
	counterparty := endpoint.Counterparty

	return endpoint.Chain.Execute(func(ctx sdk.Context) error {
		channelID := endpoint.Chain.ChannelKeeper.GenerateChannelIdentifier()
		version, err := endpoint.Chain.Module.OnChanOpenTry(
			ctx, cfg.Order, []string{endpoint.ConnectionID},
			cfg.PortID, channelID,
			channeltypes.NewCounterparty(counterparty.ChannelConfig.PortID, counterparty.ChannelID),
			counterparty.ChannelConfig.Version,
		)
		if err != nil {
			return err
		}

		endpoint.ChannelID = channelID
		cfg.Version = version
		endpoint.setChannel(channeltypes.TRYOPEN, counterparty.ChannelID)

		return nil
	})
}

// ChanOpenAck runs the OnChanOpenAck callback and moves the channel end to
// OPEN.
func (endpoint *Endpoint) ChanOpenAck() error {
	counterparty := endpoint.Counterparty

	return endpoint.Chain.Execute(func(ctx sdk.Context) error {
		if err := endpoint.Chain.Module.OnChanOpenAck(
			ctx, endpoint.ChannelConfig.PortID, endpoint.ChannelID,
			counterparty.ChannelID, counterparty.ChannelConfig.Version,
		); err != nil {
			return err
		}

		endpoint.ChannelConfig.Version = counterparty.ChannelConfig.Version
		endpoint.setChannel(channeltypes.OPEN, counterparty.ChannelID)

		return nil
	})
}

// ChanOpenConfirm runs the OnChanOpenConfirm callback and moves the channel
// end to OPEN.
func (endpoint *Endpoint) ChanOpenConfirm() error {
	return endpoint.Chain.Execute(func(ctx sdk.Context) error {
		if err := endpoint.Chain.Module.OnChanOpenConfirm(ctx, endpoint.ChannelConfig.PortID, endpoint.ChannelID); err != nil {
			return err
		}

		endpoint.setChannel(channeltypes.OPEN, endpoint.Counterparty.ChannelID)

		return nil
	})
}

// ChanCloseInit runs the OnChanCloseInit callback and moves the channel end
// to CLOSED.
func (endpoint *Endpoint) ChanCloseInit() error {
	return endpoint.Chain.Execute(func(ctx sdk.Context) error {
		if err := endpoint.Chain.Module.OnChanCloseInit(ctx, endpoint.ChannelConfig.PortID, endpoint.ChannelID); err != nil {
			return err
		}

		endpoint.setChannel(channeltypes.CLOSED, endpoint.Counterparty.ChannelID)

		return nil
	})
}

// ChanCloseConfirm runs the OnChanCloseConfirm callback and moves the channel
// end to CLOSED.
func (endpoint *Endpoint) ChanCloseConfirm() error {
	return endpoint.Chain.Execute(func(ctx sdk.Context) error {
		if err := endpoint.Chain.Module.OnChanCloseConfirm(ctx, endpoint.ChannelConfig.PortID, endpoint.ChannelID); err != nil {
			return err
		}

		endpoint.setChannel(channeltypes.CLOSED, endpoint.Counterparty.ChannelID)

		return nil
	})
}

// GetChannel returns the channel end of the endpoint.
func (endpoint *Endpoint) GetChannel() (channeltypes.Channel, bool) {
	return endpoint.Chain.ChannelKeeper.GetChannel(endpoint.Chain.GetContext(), endpoint.ChannelConfig.PortID, endpoint.ChannelID)
}

// SendIncrement executes an increment command from the chain's sender account
// on the endpoint's channel and returns the packet sequence.
func (endpoint *Endpoint) SendIncrement(callback bool) (uint64, error) {
	var sequence uint64
	err := endpoint.Chain.Execute(func(ctx sdk.Context) error {
		res, err := endpoint.Chain.Keeper.Increment(ctx, types.NewMsgIncrement(endpoint.Chain.SenderAccount.String(), endpoint.ChannelID, callback))
		if err != nil {
			return err
		}

		sequence = res.Sequence

		return nil
	})

	return sequence, err
}

// Execute routes a JSON command through the counter keeper on behalf of the
// chain's sender account.
func (endpoint *Endpoint) Execute(bz []byte) ([]byte, error) {
	var res []byte
	err := endpoint.Chain.Execute(func(ctx sdk.Context) error {
		var err error
		res, err = endpoint.Chain.Keeper.Execute(ctx, endpoint.Chain.SenderAccount.String(), bz)
		return err
	})

	return res, err
}

// QueryCount returns the receive count of the endpoint's channel.
func (endpoint *Endpoint) QueryCount() (uint64, error) {
	return endpoint.Chain.QueryCount(endpoint.ChannelID)
}

// RecvPacket delivers packet to the endpoint's chain and writes the returned
// acknowledgement. The state changes of the receive callback are committed
// only if the acknowledgement is successful, as core IBC does. The events of
// a failed receive are recorded as error events.
func (endpoint *Endpoint) RecvPacket(packet channeltypes.Packet) (ibcexported.Acknowledgement, error) {
	var ack ibcexported.Acknowledgement

	cacheMS := endpoint.Chain.CMS.CacheMultiStore()
	ctx := endpoint.Chain.newContext(cacheMS)
	snapshot := endpoint.Chain.ChannelKeeper.snapshot()

	ack = endpoint.Chain.Module.OnRecvPacket(ctx, endpoint.ChannelConfig.Version, packet, endpoint.Chain.SenderAccount)
	if ack == nil {
		endpoint.Chain.ChannelKeeper.restore(snapshot)
		return nil, fmt.Errorf("no acknowledgement returned for packet %d", packet.Sequence)
	}

	if ack.Success() {
		cacheMS.Write()
		endpoint.Chain.Events = append(endpoint.Chain.Events, ctx.EventManager().Events()...)
	} else {
		endpoint.Chain.ChannelKeeper.restore(snapshot)
		endpoint.Chain.Events = append(endpoint.Chain.Events, coretypes.ConvertToErrorEvents(ctx.EventManager().Events())...)
	}

	if err := endpoint.Chain.ChannelKeeper.WriteAcknowledgement(ctx, packet, ack); err != nil {
		return nil, err
	}

	return ack, nil
}

// RecvRawPacket builds a packet carrying data from the counterparty channel
// to this endpoint and delivers it. The counterparty outbox is bypassed, so
// malformed payloads can be delivered without being sent first.
func (endpoint *Endpoint) RecvRawPacket(sequence uint64, data []byte) (ibcexported.Acknowledgement, error) {
	counterparty := endpoint.Counterparty
	timeout := uint64(endpoint.Chain.Coordinator.CurrentTime.Add(types.DefaultParams().PacketTimeout()).UnixNano())

	packet := channeltypes.NewPacket(
		data, sequence,
		counterparty.ChannelConfig.PortID, counterparty.ChannelID,
		endpoint.ChannelConfig.PortID, endpoint.ChannelID,
		clienttypes.ZeroHeight(), timeout,
	)

	return endpoint.RecvPacket(packet)
}

// AcknowledgePacket delivers the acknowledgement of packet, previously sent
// from this endpoint, to the endpoint's chain.
func (endpoint *Endpoint) AcknowledgePacket(packet channeltypes.Packet, ack []byte) error {
	return endpoint.Chain.Execute(func(ctx sdk.Context) error {
		return endpoint.Chain.Module.OnAcknowledgementPacket(ctx, endpoint.ChannelConfig.Version, packet, ack, endpoint.Chain.SenderAccount)
	})
}

// TimeoutPacket runs the timeout callback for packet, previously sent from
// this endpoint.
func (endpoint *Endpoint) TimeoutPacket(packet channeltypes.Packet) error {
	return endpoint.Chain.Execute(func(ctx sdk.Context) error {
		return endpoint.Chain.Module.OnTimeoutPacket(ctx, endpoint.ChannelConfig.Version, packet, endpoint.Chain.SenderAccount)
	})
}

func (endpoint *Endpoint) setChannel(state channeltypes.State, counterpartyChannelID string) {
	channel := channeltypes.NewChannel(
		state, endpoint.ChannelConfig.Order,
		channeltypes.NewCounterparty(endpoint.Counterparty.ChannelConfig.PortID, counterpartyChannelID),
		[]string{endpoint.ConnectionID}, endpoint.ChannelConfig.Version,
	)
	endpoint.Chain.ChannelKeeper.SetChannel(endpoint.ChannelConfig.PortID, endpoint.ChannelID, channel)
}
