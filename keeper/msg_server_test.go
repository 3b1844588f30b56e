package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	ibctesting "github.com/cosmos/ibc-go/modules/apps/counter/testing"
	"github.com/cosmos/ibc-go/modules/apps/counter/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"
)

func (suite *KeeperTestSuite) TestMsgIncrement() {
	var msg *types.MsgIncrement

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success",
			func() {},
			nil,
		},
		{
			"success: no callback",
			func() {
				msg.Callback = false
			},
			nil,
		},
		{
			"failure: invalid sender",
			func() {
				msg.Sender = "address"
			},
			ibcerrors.ErrInvalidAddress,
		},
		{
			"failure: invalid channel identifier",
			func() {
				msg.Channel = "chan"
			},
			host.ErrInvalidID,
		},
		{
			"failure: channel does not exist",
			func() {
				msg.Channel = ibctesting.InvalidID
			},
			types.ErrChannelNotFound,
		},
		{
			"failure: channel is not open",
			func() {
				channel, found := suite.path.EndpointA.GetChannel()
				suite.Require().True(found)
				channel.State = channeltypes.CLOSED
				suite.chainA.ChannelKeeper.SetChannel(suite.path.EndpointA.ChannelConfig.PortID, suite.path.EndpointA.ChannelID, channel)
			},
			types.ErrChannelNotFound,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			msg = types.NewMsgIncrement(suite.chainA.SenderAccount.String(), suite.path.EndpointA.ChannelID, true)
			tc.malleate()

			ctx := suite.chainA.GetContext()
			res, err := suite.chainA.Keeper.Increment(ctx, msg)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(uint64(1), res.Sequence)
				suite.Require().Equal(1, suite.chainA.ChannelKeeper.PendingPackets())

				ibctesting.AssertEvents(&suite.Suite, sdk.Events{
					sdk.NewEvent(
						types.EventTypeIncrement,
						sdk.NewAttribute(types.AttributeKeyChannel, msg.Channel),
					),
				}.ToABCIEvents(), ctx.EventManager().Events())
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Nil(res)
				suite.Require().Zero(suite.chainA.ChannelKeeper.PendingPackets())
			}

			// sending never touches the counters of the sender
			suite.Require().Zero(suite.chainA.Keeper.GetChannelCount(ctx, suite.path.EndpointA.ChannelID))
			suite.Require().Zero(suite.chainA.Keeper.GetCallbackCount(ctx))
		})
	}
}

func (suite *KeeperTestSuite) TestMsgIncrementSequences() {
	for i := uint64(1); i <= 3; i++ {
		sequence, err := suite.path.EndpointA.SendIncrement(i%2 == 1)
		suite.Require().NoError(err)
		suite.Require().Equal(i, sequence)
	}
	suite.Require().Equal(3, suite.chainA.ChannelKeeper.PendingPackets())
}

func (suite *KeeperTestSuite) TestMsgIncrementCallback() {
	ctx := suite.chainA.GetContext()

	res, err := suite.chainA.Keeper.IncrementCallback(ctx, types.NewMsgIncrementCallback(suite.chainA.SenderAccount.String()))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), res.Count)
	suite.Require().Equal(uint64(1), suite.chainA.Keeper.GetCallbackCount(ctx))

	_, err = suite.chainA.Keeper.IncrementCallback(ctx, types.NewMsgIncrementCallback("invalid"))
	suite.Require().ErrorIs(err, ibcerrors.ErrInvalidAddress)
	suite.Require().Equal(uint64(1), suite.chainA.Keeper.GetCallbackCount(ctx))
}

func (suite *KeeperTestSuite) TestMsgUpdateParams() {
	var msg *types.MsgUpdateParams

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success",
			func() {},
			nil,
		},
		{
			"failure: signer is not the authority",
			func() {
				msg.Signer = authtypes.NewModuleAddress("someone").String()
			},
			ibcerrors.ErrUnauthorized,
		},
		{
			"failure: invalid params",
			func() {
				msg.Params.PacketTimeoutSeconds = 0
			},
			types.ErrInvalidParams,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			msg = types.NewMsgUpdateParams(suite.chainA.Keeper.GetAuthority(), types.NewParams(false, 42))
			tc.malleate()

			ctx := suite.chainA.GetContext()
			_, err := suite.chainA.Keeper.UpdateParams(ctx, msg)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(msg.Params, suite.chainA.Keeper.GetParams(ctx))
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Equal(types.DefaultParams(), suite.chainA.Keeper.GetParams(ctx))
			}
		})
	}
}
