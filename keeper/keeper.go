package keeper

import (
	"errors"
	"strings"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
	porttypes "github.com/cosmos/ibc-go/v10/modules/core/05-port/types"
	ibcexported "github.com/cosmos/ibc-go/v10/modules/core/exported"
)

// Keeper defines the IBC counter keeper
type Keeper struct {
	storeService corestore.KVStoreService

	ics4Wrapper   porttypes.ICS4Wrapper
	channelKeeper types.ChannelKeeper

	// the address capable of executing a MsgUpdateParams message. Typically, this
	// should be the x/gov module account.
	authority string

	// state management
	Schema collections.Schema
	// ChannelCounts maps a local channel ID to the number of increment packets
	// received on it.
	ChannelCounts collections.Map[string, uint64]
	// CallbackCount counts the callbacks run on this chain.
	CallbackCount collections.Item[uint64]

	port   collections.Item[string]
	params collections.Item[types.Params]
}

// NewKeeper creates a new IBC counter Keeper instance
func NewKeeper(
	storeService corestore.KVStoreService,
	ics4Wrapper porttypes.ICS4Wrapper,
	channelKeeper types.ChannelKeeper,
	authority string,
) Keeper {
	if strings.TrimSpace(authority) == "" {
		panic(errors.New("authority must be non-empty"))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService:  storeService,
		ics4Wrapper:   ics4Wrapper,
		channelKeeper: channelKeeper,
		authority:     authority,
		ChannelCounts: collections.NewMap(sb, types.ChannelCountsPrefix, "channel_counts", collections.StringKey, collections.Uint64Value),
		CallbackCount: collections.NewItem(sb, types.CallbackCountKey, "callback_count", collections.Uint64Value),
		port:          collections.NewItem(sb, types.PortKey, "port", collections.StringValue),
		params:        collections.NewItem(sb, types.ParamsKey, "params", types.ParamsValue),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	k.Schema = schema

	return k
}

// WithICS4Wrapper sets the ICS4Wrapper. This function may be used after
// the keepers creation to set the middleware which is above this module
// in the IBC application stack.
func (k *Keeper) WithICS4Wrapper(wrapper porttypes.ICS4Wrapper) {
	k.ics4Wrapper = wrapper
}

// GetICS4Wrapper returns the ICS4Wrapper.
func (k Keeper) GetICS4Wrapper() porttypes.ICS4Wrapper {
	return k.ics4Wrapper
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+ibcexported.ModuleName+"-"+types.ModuleName)
}

// GetModuleAddress returns the address the module uses as sender of the
// messages it executes on itself.
func (Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// GetPort returns the portID for the counter module.
func (k Keeper) GetPort(ctx sdk.Context) string {
	port, err := k.port.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.PortID
		}
		panic(err)
	}
	return port
}

// SetPort sets the portID for the counter module.
func (k Keeper) SetPort(ctx sdk.Context, portID string) {
	if err := k.port.Set(ctx, portID); err != nil {
		panic(err)
	}
}

// GetParams returns the current counter module parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	params, err := k.params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams()
		}
		panic(err)
	}
	return params
}

// SetParams sets the counter module parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	if err := k.params.Set(ctx, params); err != nil {
		panic(err)
	}
}

// GetChannelCount returns the number of increment packets received on
// channelID. A channel that never received one counts zero.
func (k Keeper) GetChannelCount(ctx sdk.Context, channelID string) uint64 {
	count, err := k.ChannelCounts.Get(ctx, channelID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0
		}
		panic(err)
	}
	return count
}

// IncrementChannelCount adds one to the counter of channelID and returns the
// new value.
func (k Keeper) IncrementChannelCount(ctx sdk.Context, channelID string) (uint64, error) {
	count := k.GetChannelCount(ctx, channelID) + 1
	if err := k.ChannelCounts.Set(ctx, channelID, count); err != nil {
		return 0, err
	}
	return count, nil
}

// InitChannelCount stores a zero counter for channelID unless one exists.
func (k Keeper) InitChannelCount(ctx sdk.Context, channelID string) error {
	has, err := k.ChannelCounts.Has(ctx, channelID)
	if err != nil || has {
		return err
	}
	return k.ChannelCounts.Set(ctx, channelID, 0)
}

// GetCallbackCount returns the callback counter.
func (k Keeper) GetCallbackCount(ctx sdk.Context) uint64 {
	count, err := k.CallbackCount.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0
		}
		panic(err)
	}
	return count
}

// IncrementCallbackCount adds one to the callback counter and returns the new
// value.
func (k Keeper) IncrementCallbackCount(ctx sdk.Context) (uint64, error) {
	count := k.GetCallbackCount(ctx) + 1
	if err := k.CallbackCount.Set(ctx, count); err != nil {
		return 0, err
	}
	return count, nil
}
