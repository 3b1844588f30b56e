package ibctesting

import (
	"time"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

const (
	// DefaultConnectionID is the connection hop every test channel is opened on.
	DefaultConnectionID = "connection-0"
	// InvalidID is a syntactically valid channel identifier that no chain knows.
	InvalidID = "channel-999"
)

var (
	ChainIDPrefix = "testchain"
	// to disable revision format, set ChainIDSuffix to ""
	ChainIDSuffix   = "-1"
	globalStartTime = time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	TimeIncrement   = time.Second * 5
)

// ChannelConfig holds the parameters an endpoint opens its channel with.
type ChannelConfig struct {
	PortID  string
	Version string
	Order   channeltypes.Order
}

// NewChannelConfig returns the configuration of a counter channel.
func NewChannelConfig() *ChannelConfig {
	return &ChannelConfig{
		PortID:  types.PortID,
		Version: types.Version,
		Order:   channeltypes.UNORDERED,
	}
}
