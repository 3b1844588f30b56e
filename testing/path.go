package ibctesting

import (
	"fmt"
)

// Path contains two endpoints representing two chains connected over a
// counter channel.
type Path struct {
	EndpointA *Endpoint
	EndpointB *Endpoint
}

// NewPath constructs an endpoint for each chain using the default values
// for the endpoints. Each endpoint is updated to have a pointer to the
// counterparty endpoint.
func NewPath(chainA, chainB *TestChain) *Path {
	endpointA := NewDefaultEndpoint(chainA)
	endpointB := NewDefaultEndpoint(chainB)

	endpointA.Counterparty = endpointB
	endpointB.Counterparty = endpointA

	return &Path{
		EndpointA: endpointA,
		EndpointB: endpointB,
	}
}

// Setup runs the channel handshake so that both endpoints end up with an
// OPEN channel.
func (path *Path) Setup() error {
	if err := path.EndpointA.ChanOpenInit(); err != nil {
		return fmt.Errorf("chan open init: %w", err)
	}

	if err := path.EndpointB.ChanOpenTry(); err != nil {
		return fmt.Errorf("chan open try: %w", err)
	}

	if err := path.EndpointA.ChanOpenAck(); err != nil {
		return fmt.Errorf("chan open ack: %w", err)
	}

	if err := path.EndpointB.ChanOpenConfirm(); err != nil {
		return fmt.Errorf("chan open confirm: %w", err)
	}

	path.EndpointA.Chain.Coordinator.CommitBlock(path.EndpointA.Chain, path.EndpointB.Chain)

	return nil
}

// Close closes the channel on both ends.
func (path *Path) Close() error {
	if err := path.EndpointA.ChanCloseInit(); err != nil {
		return fmt.Errorf("chan close init: %w", err)
	}

	if err := path.EndpointB.ChanCloseConfirm(); err != nil {
		return fmt.Errorf("chan close confirm: %w", err)
	}

	return nil
}

// Invert swaps the endpoints of the path.
func (path *Path) Invert() *Path {
	return &Path{
		EndpointA: path.EndpointB,
		EndpointB: path.EndpointA,
	}
}
