package keeper_test

import (
	"fmt"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

func (suite *KeeperTestSuite) TestExecute() {
	var cmd []byte

	testCases := []struct {
		name     string
		malleate func()
		expRes   string
		expErr   error
	}{
		{
			"success: increment",
			func() {
				cmd = []byte(fmt.Sprintf(`{"increment":{"channel":"%s","callback":true}}`, suite.path.EndpointA.ChannelID))
			},
			`{"sequence":1}`,
			nil,
		},
		{
			"success: first increment callback",
			func() {
				cmd = []byte(`{"first_increment_callback":{}}`)
			},
			`{"count":1}`,
			nil,
		},
		{
			"failure: increment on unknown channel",
			func() {
				cmd = []byte(`{"increment":{"channel":"channel-999","callback":true}}`)
			},
			"",
			types.ErrChannelNotFound,
		},
		{
			"failure: unknown command",
			func() {
				cmd = []byte(`{"decrement":{}}`)
			},
			"",
			types.ErrUnknownMsg,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			tc.malleate()

			res, err := suite.path.EndpointA.Execute(cmd)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().JSONEq(tc.expRes, string(res))
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Zero(suite.chainA.ChannelKeeper.PendingPackets())
			}
		})
	}
}

func (suite *KeeperTestSuite) TestQuery() {
	ctx := suite.chainB.GetContext()
	_, err := suite.chainB.Keeper.IncrementChannelCount(ctx, suite.path.EndpointB.ChannelID)
	suite.Require().NoError(err)

	res, err := suite.chainB.Keeper.Query(ctx, []byte(fmt.Sprintf(`{"get_count":{"count":"%s"}}`, suite.path.EndpointB.ChannelID)))
	suite.Require().NoError(err)
	suite.Require().JSONEq(`{"count":1}`, string(res))

	res, err = suite.chainB.Keeper.Query(ctx, []byte(`{"get_count":{"count":"callback_counter"}}`))
	suite.Require().NoError(err)
	suite.Require().JSONEq(`{"count":0}`, string(res))

	_, err = suite.chainB.Keeper.Query(ctx, []byte(`{"get_total":{}}`))
	suite.Require().ErrorIs(err, types.ErrUnknownMsg)
}
