package ibctesting

import (
	"fmt"
	"strconv"
	"time"

	"cosmossdk.io/log"
)

// Coordinator holds N TestChain's and keeps them in sync with regards to time.
// It also numbers every packet sent on any of its chains so they can be
// relayed in emission order.
type Coordinator struct {
	CurrentTime time.Time
	Chains      map[string]*TestChain

	logger      log.Logger
	packetIndex uint64
}

// NewCoordinator initializes a Coordinator with N TestChain's.
func NewCoordinator(logger log.Logger, n int) (*Coordinator, error) {
	coord := &Coordinator{
		CurrentTime: globalStartTime,
		Chains:      make(map[string]*TestChain, n),
		logger:      logger,
	}

	for i := 1; i <= n; i++ {
		chainID := GetChainID(i)
		chain, err := NewTestChain(coord, chainID)
		if err != nil {
			return nil, fmt.Errorf("failed to create chain %s: %w", chainID, err)
		}
		coord.Chains[chainID] = chain
	}

	return coord, nil
}

// IncrementTime increments the global time by TimeIncrement.
func (coord *Coordinator) IncrementTime() {
	coord.IncrementTimeBy(TimeIncrement)
}

// IncrementTimeBy increments the global time by the specified duration.
func (coord *Coordinator) IncrementTimeBy(increment time.Duration) {
	coord.CurrentTime = coord.CurrentTime.Add(increment).UTC()
}

// GetChain returns the TestChain using the given chainID and returns an error if it does
// not exist.
func (coord *Coordinator) GetChain(chainID string) (*TestChain, error) {
	chain, found := coord.Chains[chainID]
	if !found {
		return nil, fmt.Errorf("%s chain does not exist", chainID)
	}
	return chain, nil
}

// CommitBlock commits a block on the provided chains and then increments the global time.
func (coord *Coordinator) CommitBlock(chains ...*TestChain) {
	for _, chain := range chains {
		chain.NextBlock()
	}
	coord.IncrementTime()
}

func (coord *Coordinator) nextPacketIndex() uint64 {
	coord.packetIndex++
	return coord.packetIndex
}

// GetChainID returns the chainID used for the provided index.
func GetChainID(index int) string {
	return ChainIDPrefix + strconv.Itoa(index) + ChainIDSuffix
}
