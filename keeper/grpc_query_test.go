package keeper_test

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ibctesting "github.com/cosmos/ibc-go/modules/apps/counter/testing"
	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

func (suite *KeeperTestSuite) TestQueryCount() {
	var (
		req      *types.QueryCountRequest
		expCount uint64
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: channel count",
			func() {
				req = &types.QueryCountRequest{Count: suite.path.EndpointB.ChannelID}
				expCount = 3
			},
			nil,
		},
		{
			"success: callback counter",
			func() {
				req = &types.QueryCountRequest{Count: types.CallbackCounterKey}
				expCount = 1
			},
			nil,
		},
		{
			"success: unknown channel counts zero",
			func() {
				req = &types.QueryCountRequest{Count: ibctesting.InvalidID}
				expCount = 0
			},
			nil,
		},
		{
			"success: arbitrary key counts zero",
			func() {
				req = &types.QueryCountRequest{Count: "not a channel"}
				expCount = 0
			},
			nil,
		},
		{
			"failure: nil request",
			func() {
				req = nil
			},
			status.Error(codes.InvalidArgument, "empty request"),
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			ctx := suite.chainB.GetContext()
			for i := 0; i < 3; i++ {
				_, err := suite.chainB.Keeper.IncrementChannelCount(ctx, suite.path.EndpointB.ChannelID)
				suite.Require().NoError(err)
			}
			_, err := suite.chainB.Keeper.IncrementCallbackCount(ctx)
			suite.Require().NoError(err)

			tc.malleate()

			res, err := suite.chainB.Keeper.Count(ctx, req)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(expCount, res.Count)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestQueryParams() {
	ctx := suite.chainA.GetContext()

	res, err := suite.chainA.Keeper.Params(ctx, &types.QueryParamsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(types.DefaultParams(), *res.Params)

	expParams := types.NewParams(false, 30)
	suite.chainA.Keeper.SetParams(ctx, expParams)

	res, err = suite.chainA.Keeper.Params(ctx, &types.QueryParamsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(expParams, *res.Params)
}
