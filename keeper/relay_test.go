package keeper_test

import (
	"time"

	ibctesting "github.com/cosmos/ibc-go/modules/apps/counter/testing"
	"github.com/cosmos/ibc-go/modules/apps/counter/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

func (suite *KeeperTestSuite) TestOnRecvPacket() {
	var data types.PacketData

	testCases := []struct {
		name     string
		malleate func()
		expAck   types.AckSuccess
		expErr   error
	}{
		{
			"success: callback requested",
			func() {},
			types.NewAckSuccess(1, true),
			nil,
		},
		{
			"success: no callback still increments",
			func() {
				data = types.NewIncrementPacketData(false)
			},
			types.NewAckSuccess(1, false),
			nil,
		},
		{
			"failure: packet data without message",
			func() {
				data = types.PacketData{}
			},
			types.AckSuccess{},
			types.ErrInvalidPacketData,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			data = types.NewIncrementPacketData(true)
			tc.malleate()

			ctx := suite.chainB.GetContext()
			endpointA, endpointB := suite.path.EndpointA, suite.path.EndpointB

			ack, err := suite.chainB.Keeper.OnRecvPacket(
				ctx, data,
				endpointA.ChannelConfig.PortID, endpointA.ChannelID,
				endpointB.ChannelConfig.PortID, endpointB.ChannelID,
			)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(tc.expAck, ack)
				suite.Require().Equal(tc.expAck.Count, suite.chainB.Keeper.GetChannelCount(ctx, endpointB.ChannelID))
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Zero(suite.chainB.Keeper.GetChannelCount(ctx, endpointB.ChannelID))
			}

			// the receiving chain never touches its callback counter
			suite.Require().Zero(suite.chainB.Keeper.GetCallbackCount(ctx))
		})
	}
}

func (suite *KeeperTestSuite) TestOnRecvPacketCountsPerChannel() {
	ctx := suite.chainB.GetContext()
	endpointA, endpointB := suite.path.EndpointA, suite.path.EndpointB

	for i := uint64(1); i <= 5; i++ {
		ack, err := suite.chainB.Keeper.OnRecvPacket(
			ctx, types.NewIncrementPacketData(i%2 == 0),
			endpointA.ChannelConfig.PortID, endpointA.ChannelID,
			endpointB.ChannelConfig.PortID, endpointB.ChannelID,
		)
		suite.Require().NoError(err)
		suite.Require().Equal(i, ack.Count)
	}

	suite.Require().Equal(uint64(5), suite.chainB.Keeper.GetChannelCount(ctx, endpointB.ChannelID))
	suite.Require().Zero(suite.chainB.Keeper.GetChannelCount(ctx, ibctesting.InvalidID))
}

func (suite *KeeperTestSuite) TestOnAcknowledgementPacket() {
	var (
		ack    types.Acknowledgement
		params types.Params
	)

	testCases := []struct {
		name             string
		malleate         func()
		expCallbackCount uint64
		expErr           error
	}{
		{
			"success: callback ack dispatches the follow-up message",
			func() {},
			2,
			nil,
		},
		{
			"success: callback ack without follow-up dispatch",
			func() {
				params.DispatchCallbackMsg = false
			},
			1,
			nil,
		},
		{
			"success: ack without callback changes nothing",
			func() {
				ack = types.NewAckSuccess(1, false)
			},
			0,
			nil,
		},
		{
			"success: error ack changes nothing",
			func() {
				ack = types.NewAckError(types.AckErrInvalidPayload)
			},
			0,
			nil,
		},
		{
			"failure: nil acknowledgement",
			func() {
				ack = nil
			},
			0,
			types.ErrInvalidAcknowledgement,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			ack = types.NewAckSuccess(1, true)
			params = types.DefaultParams()
			tc.malleate()

			ctx := suite.chainA.GetContext()
			suite.chainA.Keeper.SetParams(ctx, params)

			endpointA := suite.path.EndpointA
			err := suite.chainA.Keeper.OnAcknowledgementPacket(ctx, endpointA.ChannelConfig.PortID, endpointA.ChannelID, ack)

			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}

			suite.Require().Equal(tc.expCallbackCount, suite.chainA.Keeper.GetCallbackCount(ctx))
			// acknowledgements never touch channel counts
			suite.Require().Zero(suite.chainA.Keeper.GetChannelCount(ctx, endpointA.ChannelID))
		})
	}
}

func (suite *KeeperTestSuite) TestOnAcknowledgementPacketAccumulates() {
	ctx := suite.chainA.GetContext()
	suite.chainA.Keeper.SetParams(ctx, types.NewParams(false, types.DefaultPacketTimeoutSeconds))

	endpointA := suite.path.EndpointA
	acks := []types.Acknowledgement{
		types.NewAckSuccess(1, true),
		types.NewAckSuccess(2, false),
		types.NewAckSuccess(3, true),
		types.NewAckError(types.AckErrInvalidPayload),
		types.NewAckSuccess(4, true),
		types.NewAckSuccess(5, false),
	}

	for _, ack := range acks {
		suite.Require().NoError(suite.chainA.Keeper.OnAcknowledgementPacket(ctx, endpointA.ChannelConfig.PortID, endpointA.ChannelID, ack))
	}

	suite.Require().Equal(uint64(3), suite.chainA.Keeper.GetCallbackCount(ctx))
}

func (suite *KeeperTestSuite) TestOnTimeoutPacket() {
	ctx := suite.chainA.GetContext()
	endpointA := suite.path.EndpointA

	suite.Require().NoError(suite.chainA.Keeper.OnTimeoutPacket(ctx, endpointA.ChannelConfig.PortID, endpointA.ChannelID, 1))
	suite.Require().Zero(suite.chainA.Keeper.GetCallbackCount(ctx))
	suite.Require().Zero(suite.chainA.Keeper.GetChannelCount(ctx, endpointA.ChannelID))
}

func (suite *KeeperTestSuite) TestSendIncrementTimeout() {
	params := types.NewParams(true, 60)
	suite.Require().NoError(suite.chainA.SetParams(params))

	_, err := suite.path.EndpointA.SendIncrement(true)
	suite.Require().NoError(err)

	info, err := suite.path.RelayAll()
	suite.Require().NoError(err)
	suite.Require().Len(info.PacketsFromA, 1)

	packet := info.PacketsFromA[0]
	expTimeout := uint64(suite.coordinator.CurrentTime.Add(60 * time.Second).UnixNano())
	suite.Require().Equal(expTimeout, packet.TimeoutTimestamp)
	suite.Require().True(packet.TimeoutHeight.IsZero())
	suite.Require().Equal(types.EncodePacketData(types.NewIncrementPacketData(true)), packet.Data)
	suite.Require().Equal(suite.path.EndpointB.ChannelID, packet.DestinationChannel)
	suite.Require().Equal(channeltypes.UNORDERED, suite.path.EndpointA.ChannelConfig.Order)
}
