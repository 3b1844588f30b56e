package counter_test

import (
	ibctesting "github.com/cosmos/ibc-go/modules/apps/counter/testing"
	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

func (suite *CounterTestSuite) requireCounts(expChannelCountB, expCallbackCountA uint64) {
	suite.T().Helper()

	channelCount, err := suite.path.EndpointB.QueryCount()
	suite.Require().NoError(err)
	suite.Require().Equal(expChannelCountB, channelCount, "channel count on chain B")

	callbackCount, err := suite.chainA.QueryCount(types.CallbackCounterKey)
	suite.Require().NoError(err)
	suite.Require().Equal(expCallbackCountA, callbackCount, "callback count on chain A")
}

func (suite *CounterTestSuite) TestUntouchedChannelsCountZero() {
	suite.Require().NoError(suite.path.Setup())

	for _, chain := range []*ibctesting.TestChain{suite.chainA, suite.chainB} {
		for _, key := range []string{suite.path.EndpointA.ChannelID, suite.path.EndpointB.ChannelID, ibctesting.InvalidID, types.CallbackCounterKey} {
			count, err := chain.QueryCount(key)
			suite.Require().NoError(err)
			suite.Require().Zero(count)
		}
	}
}

func (suite *CounterTestSuite) TestIncrementRounds() {
	suite.Require().NoError(suite.path.Setup())

	// each round increments the channel count once and, with the follow-up
	// message dispatched, the callback counter twice
	for round, exp := range []struct{ channel, callback uint64 }{{1, 2}, {2, 4}} {
		sequence, err := suite.path.EndpointA.SendIncrement(true)
		suite.Require().NoError(err)
		suite.Require().Equal(uint64(round+1), sequence)

		info, err := suite.path.RelayAll()
		suite.Require().NoError(err)
		suite.Require().Len(info.PacketsFromA, 1)
		suite.Require().Len(info.AcksFromB, 1)
		suite.Require().Equal(types.NewAckSuccess(exp.channel, true), info.AcksFromB[0].Ack)

		suite.requireCounts(exp.channel, exp.callback)
	}

	// the sending side never counts receives, the receiving side never counts callbacks
	countA, err := suite.path.EndpointA.QueryCount()
	suite.Require().NoError(err)
	suite.Require().Zero(countA)

	callbacksB, err := suite.chainB.QueryCount(types.CallbackCounterKey)
	suite.Require().NoError(err)
	suite.Require().Zero(callbacksB)
}

func (suite *CounterTestSuite) TestCallbackCountEqualsCallbackAcks() {
	suite.Require().NoError(suite.chainA.SetParams(types.NewParams(false, types.DefaultPacketTimeoutSeconds)))
	suite.Require().NoError(suite.path.Setup())

	callbacks := []bool{true, false, true, true, false, false, true}
	for _, callback := range callbacks {
		_, err := suite.path.EndpointA.SendIncrement(callback)
		suite.Require().NoError(err)
	}

	info, err := suite.path.RelayAll()
	suite.Require().NoError(err)
	suite.Require().Len(info.AcksFromB, len(callbacks))

	// packets are delivered in the order they were sent
	for i, relayed := range info.AcksFromB {
		suite.Require().Equal(uint64(i+1), relayed.Packet.Sequence)
		suite.Require().Equal(types.NewAckSuccess(uint64(i+1), callbacks[i]), relayed.Ack)
	}

	suite.requireCounts(uint64(len(callbacks)), 4)
}

func (suite *CounterTestSuite) TestNoCallbackLeavesCallbackCounter() {
	suite.Require().NoError(suite.path.Setup())

	for i := 0; i < 3; i++ {
		_, err := suite.path.EndpointA.SendIncrement(false)
		suite.Require().NoError(err)
	}

	_, err := suite.path.RelayAll()
	suite.Require().NoError(err)

	suite.requireCounts(3, 0)
	suite.Require().Zero(ibctesting.CountEvents(suite.chainA.Events, types.EventTypeIncrementCallback))
}

func (suite *CounterTestSuite) TestMalformedPayloadLeavesCount() {
	suite.Require().NoError(suite.path.Setup())

	_, err := suite.path.EndpointA.SendIncrement(false)
	suite.Require().NoError(err)
	_, err = suite.path.RelayAll()
	suite.Require().NoError(err)

	for i, payload := range []string{
		`{"increment":`,
		`{"increment":{}}`,
		`{"increment":{"callback":null}}`,
	} {
		ack, err := suite.path.EndpointB.RecvRawPacket(uint64(100+i), []byte(payload))
		suite.Require().NoError(err)
		suite.Require().False(ack.Success(), payload)
		suite.Require().Equal(`{"error":"invalid payload"}`, string(ack.Acknowledgement()))

		suite.requireCounts(1, 0)
	}

	// the channel keeps working after an invalid packet
	_, err = suite.path.EndpointA.SendIncrement(true)
	suite.Require().NoError(err)
	_, err = suite.path.RelayAll()
	suite.Require().NoError(err)

	suite.requireCounts(2, 2)
}

func (suite *CounterTestSuite) TestBidirectionalCounting() {
	suite.Require().NoError(suite.path.Setup())

	_, err := suite.path.EndpointA.SendIncrement(true)
	suite.Require().NoError(err)
	_, err = suite.path.EndpointB.SendIncrement(false)
	suite.Require().NoError(err)
	_, err = suite.path.EndpointB.SendIncrement(true)
	suite.Require().NoError(err)

	info, err := suite.path.RelayAll()
	suite.Require().NoError(err)
	suite.Require().Len(info.PacketsFromA, 1)
	suite.Require().Len(info.PacketsFromB, 2)
	suite.Require().Len(info.AcksFromA, 2)
	suite.Require().Len(info.AcksFromB, 1)

	countA, err := suite.path.EndpointA.QueryCount()
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), countA)

	countB, err := suite.path.EndpointB.QueryCount()
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), countB)

	callbacksA, err := suite.chainA.QueryCount(types.CallbackCounterKey)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), callbacksA)

	callbacksB, err := suite.chainB.QueryCount(types.CallbackCounterKey)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), callbacksB)
}

func (suite *CounterTestSuite) TestCountersPerChannel() {
	suite.Require().NoError(suite.path.Setup())

	second := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.Require().NoError(second.Setup())
	suite.Require().NotEqual(suite.path.EndpointB.ChannelID, second.EndpointB.ChannelID)

	for i := 0; i < 2; i++ {
		_, err := suite.path.EndpointA.SendIncrement(false)
		suite.Require().NoError(err)
	}
	_, err := second.EndpointA.SendIncrement(false)
	suite.Require().NoError(err)

	_, err = suite.path.RelayAll()
	suite.Require().NoError(err)
	_, err = second.RelayAll()
	suite.Require().NoError(err)

	count, err := suite.path.EndpointB.QueryCount()
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), count)

	count, err = second.EndpointB.QueryCount()
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), count)
}
