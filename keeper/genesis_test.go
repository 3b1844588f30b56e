package keeper_test

import (
	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

func (suite *KeeperTestSuite) TestGenesis() {
	ctx := suite.chainA.GetContext()
	k := suite.chainA.Keeper

	genesis := types.NewGenesisState(
		"counterport",
		types.NewParams(false, 90),
		[]types.ChannelCount{
			{ChannelID: "channel-0", Count: 2},
			{ChannelID: "channel-3", Count: 9},
		},
		5,
	)

	suite.Require().NoError(k.InitGenesis(ctx, genesis))

	suite.Require().Equal("counterport", k.GetPort(ctx))
	suite.Require().Equal(types.NewParams(false, 90), k.GetParams(ctx))
	suite.Require().Equal(uint64(2), k.GetChannelCount(ctx, "channel-0"))
	suite.Require().Equal(uint64(9), k.GetChannelCount(ctx, "channel-3"))
	suite.Require().Equal(uint64(5), k.GetCallbackCount(ctx))

	exported, err := k.ExportGenesis(ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(genesis, exported)
}

func (suite *KeeperTestSuite) TestExportGenesisAfterHandshake() {
	exported, err := suite.chainB.Keeper.ExportGenesis(suite.chainB.GetContext())
	suite.Require().NoError(err)

	suite.Require().Equal(types.PortID, exported.PortID)
	suite.Require().Equal(types.DefaultParams(), exported.Params)
	suite.Require().Equal([]types.ChannelCount{{ChannelID: suite.path.EndpointB.ChannelID, Count: 0}}, exported.ChannelCounts)
	suite.Require().Zero(exported.CallbackCount)
	suite.Require().NoError(exported.Validate())
}

func (suite *KeeperTestSuite) TestInitGenesisInvalid() {
	ctx := suite.chainA.GetContext()

	err := suite.chainA.Keeper.InitGenesis(ctx, types.NewGenesisState(types.PortID, types.NewParams(true, 0), nil, 0))
	suite.Require().ErrorIs(err, types.ErrInvalidParams)
	suite.Require().Equal(types.DefaultParams(), suite.chainA.Keeper.GetParams(ctx))
}
