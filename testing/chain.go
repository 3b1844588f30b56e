package ibctesting

import (
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"

	dbm "github.com/cosmos/cosmos-db"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	counter "github.com/cosmos/ibc-go/modules/apps/counter"
	"github.com/cosmos/ibc-go/modules/apps/counter/keeper"
	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

// TestChain is an in-process chain running the counter application on top of
// a real multistore. Every invocation runs against a cached branch of the
// store that is written back only when the invocation succeeds.
type TestChain struct {
	Coordinator *Coordinator
	ChainID     string

	CMS           storetypes.CommitMultiStore
	StoreKey      *storetypes.KVStoreKey
	Keeper        keeper.Keeper
	Module        counter.IBCModule
	ChannelKeeper *ChannelKeeper

	// Header is the header of the block currently being built.
	Header cmtproto.Header
	// SenderAccount signs the messages the chain executes for tests.
	SenderAccount sdk.AccAddress
	// Events holds the events of every successful invocation since the last
	// call to ClearEvents.
	Events sdk.Events

	logger log.Logger
}

// NewTestChain initializes a new TestChain with a fresh in-memory store and
// the module genesis applied.
func NewTestChain(coord *Coordinator, chainID string) (*TestChain, error) {
	logger := coord.logger.With("chain-id", chainID)

	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())

	key := storetypes.NewKVStoreKey(types.StoreKey)
	cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	channelKeeper := NewChannelKeeper(coord)
	counterKeeper := keeper.NewKeeper(
		runtime.NewKVStoreService(key),
		channelKeeper,
		channelKeeper,
		authtypes.NewModuleAddress(govtypes.ModuleName).String(),
	)

	chain := &TestChain{
		Coordinator:   coord,
		ChainID:       chainID,
		CMS:           cms,
		StoreKey:      key,
		Keeper:        counterKeeper,
		Module:        counter.NewIBCModule(counterKeeper),
		ChannelKeeper: channelKeeper,
		Header: cmtproto.Header{
			ChainID: chainID,
			Height:  1,
			Time:    coord.CurrentTime.UTC(),
		},
		SenderAccount: sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()),
		logger:        logger,
	}

	if err := chain.Execute(func(ctx sdk.Context) error {
		return counterKeeper.InitGenesis(ctx, types.DefaultGenesisState())
	}); err != nil {
		return nil, fmt.Errorf("failed to init genesis: %w", err)
	}

	chain.NextBlock()

	return chain, nil
}

// GetContext returns a context over a branch of the latest state. Writes made
// through it are discarded.
func (chain *TestChain) GetContext() sdk.Context {
	return chain.newContext(chain.CMS.CacheMultiStore())
}

// Execute runs fn as a single atomic invocation. Store writes and packets sent
// by fn are kept only if it returns nil.
func (chain *TestChain) Execute(fn func(ctx sdk.Context) error) error {
	cacheMS := chain.CMS.CacheMultiStore()
	ctx := chain.newContext(cacheMS)
	snapshot := chain.ChannelKeeper.snapshot()

	if err := fn(ctx); err != nil {
		chain.ChannelKeeper.restore(snapshot)
		return err
	}

	cacheMS.Write()
	chain.Events = append(chain.Events, ctx.EventManager().Events()...)

	return nil
}

// NextBlock commits the current block and starts the next one at the
// coordinator's current time.
func (chain *TestChain) NextBlock() {
	chain.CMS.Commit()

	chain.Header = cmtproto.Header{
		ChainID: chain.ChainID,
		Height:  chain.Header.Height + 1,
		Time:    chain.Coordinator.CurrentTime.UTC(),
	}
}

// ClearEvents drops the recorded events.
func (chain *TestChain) ClearEvents() {
	chain.Events = nil
}

// QueryCount returns the count stored under key, a channel identifier or
// types.CallbackCounterKey.
func (chain *TestChain) QueryCount(key string) (uint64, error) {
	res, err := chain.Keeper.Count(chain.GetContext(), &types.QueryCountRequest{Count: key})
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// SetParams overrides the module params of the chain.
func (chain *TestChain) SetParams(params types.Params) error {
	return chain.Execute(func(ctx sdk.Context) error {
		_, err := chain.Keeper.UpdateParams(ctx, types.NewMsgUpdateParams(chain.Keeper.GetAuthority(), params))
		return err
	})
}

func (chain *TestChain) newContext(ms storetypes.MultiStore) sdk.Context {
	header := chain.Header
	header.Time = chain.Coordinator.CurrentTime.UTC()

	return sdk.NewContext(ms, header, false, chain.logger).
		WithEventManager(sdk.NewEventManager())
}
