package ibctesting

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// RelayedAck is an acknowledgement delivered back to the chain that sent the
// packet.
type RelayedAck struct {
	Packet channeltypes.Packet
	Raw    []byte
	Ack    types.Acknowledgement
}

// RelayInfo reports everything a call to RelayAll moved between the two
// chains. AcksFromB holds the acknowledgements written on chain B for packets
// sent by chain A, and the other way round.
type RelayInfo struct {
	PacketsFromA []channeltypes.Packet
	PacketsFromB []channeltypes.Packet
	AcksFromA    []RelayedAck
	AcksFromB    []RelayedAck
	Timeouts     []channeltypes.Packet
}

// RelayAll delivers every pending packet of the path in emission order and
// brings each acknowledgement back to the sender. Packets whose timeout has
// passed on the receiving chain are timed out on the sender instead. Relaying
// goes on until neither end has anything left to send.
func (path *Path) RelayAll() (RelayInfo, error) {
	var info RelayInfo

	for {
		fromA := path.EndpointA.takePending()
		fromB := path.EndpointB.takePending()
		if len(fromA) == 0 && len(fromB) == 0 {
			return info, nil
		}

		type queued struct {
			pendingPacket
			src *Endpoint
		}

		queue := make([]queued, 0, len(fromA)+len(fromB))
		for _, p := range fromA {
			queue = append(queue, queued{p, path.EndpointA})
		}
		for _, p := range fromB {
			queue = append(queue, queued{p, path.EndpointB})
		}
		slices.SortFunc(queue, func(a, b queued) int { return cmp.Compare(a.index, b.index) })

		for _, q := range queue {
			relayed, timedOut, err := relayPacket(q.src, q.packet)
			if err != nil {
				return info, err
			}

			if q.src == path.EndpointA {
				info.PacketsFromA = append(info.PacketsFromA, q.packet)
			} else {
				info.PacketsFromB = append(info.PacketsFromB, q.packet)
			}

			switch {
			case timedOut:
				info.Timeouts = append(info.Timeouts, q.packet)
			case q.src == path.EndpointA:
				info.AcksFromB = append(info.AcksFromB, relayed)
			default:
				info.AcksFromA = append(info.AcksFromA, relayed)
			}
		}
	}
}

// relayPacket moves a single packet from src to its counterparty and the
// acknowledgement back. It reports whether the packet timed out instead.
func relayPacket(src *Endpoint, packet channeltypes.Packet) (RelayedAck, bool, error) {
	dst := src.Counterparty

	if packet.TimeoutTimestamp != 0 && uint64(dst.Chain.Coordinator.CurrentTime.UnixNano()) >= packet.TimeoutTimestamp {
		if err := src.TimeoutPacket(packet); err != nil {
			return RelayedAck{}, false, fmt.Errorf("timeout packet %d: %w", packet.Sequence, err)
		}
		return RelayedAck{}, true, nil
	}

	ack, err := dst.RecvPacket(packet)
	if err != nil {
		return RelayedAck{}, false, fmt.Errorf("recv packet %d: %w", packet.Sequence, err)
	}

	raw := ack.Acknowledgement()
	if err := src.AcknowledgePacket(packet, raw); err != nil {
		return RelayedAck{}, false, fmt.Errorf("acknowledge packet %d: %w", packet.Sequence, err)
	}

	decoded, err := types.DecodeAcknowledgement(raw)
	if err != nil {
		return RelayedAck{}, false, err
	}

	return RelayedAck{Packet: packet, Raw: raw, Ack: decoded}, false, nil
}

func (endpoint *Endpoint) takePending() []pendingPacket {
	return endpoint.Chain.ChannelKeeper.takePending(endpoint.ChannelConfig.PortID, endpoint.ChannelID)
}
