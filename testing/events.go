package ibctesting

import (
	"slices"

	testifysuite "github.com/stretchr/testify/suite"

	abci "github.com/cometbft/cometbft/abci/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssertEvents asserts that each expected event is present in the actual
// events. An expected event matches an actual one of the same type that
// carries all of its attributes. Extra actual events are ignored.
func AssertEvents(
	suite *testifysuite.Suite,
	expected []abci.Event,
	actual sdk.Events,
) {
	abciEvents := actual.ToABCIEvents()
	foundEvents := make(map[int]bool)

	for i, expectedEvent := range expected {
		for _, actualEvent := range abciEvents {
			if expectedEvent.Type != actualEvent.Type {
				continue
			}

			attributeMatch := true
			for _, expectedAttr := range expectedEvent.Attributes {
				// any expected attributes that are not contained in the actual events will cause this event
				// not to match
				attributeMatch = attributeMatch && containsAttribute(actualEvent.Attributes, expectedAttr.Key, expectedAttr.Value)
			}

			if attributeMatch {
				foundEvents[i] = true
			}
		}
	}

	for i, expectedEvent := range expected {
		suite.Require().True(foundEvents[i], "event: %s was not found in events", expectedEvent.Type)
	}
}

// CountEvents returns how many of the events are of the given type.
func CountEvents(events sdk.Events, eventType string) int {
	n := 0
	for _, ev := range events {
		if ev.Type == eventType {
			n++
		}
	}
	return n
}

// AttributeValue returns the value of the first attribute with the given key
// in the first event of the given type.
func AttributeValue(events sdk.Events, eventType, key string) (string, bool) {
	for _, ev := range events.ToABCIEvents() {
		if ev.Type != eventType {
			continue
		}
		if attribute, found := attributeByKey(ev.Attributes, key); found {
			return attribute.Value, true
		}
	}
	return "", false
}

// containsAttribute returns true if the given key/value pair is contained in the given attributes.
func containsAttribute(attrs []abci.EventAttribute, key, value string) bool {
	return slices.ContainsFunc(attrs, func(attr abci.EventAttribute) bool {
		return attr.Key == key && attr.Value == value
	})
}

func attributeByKey(attributes []abci.EventAttribute, key string) (abci.EventAttribute, bool) {
	idx := slices.IndexFunc(attributes, func(a abci.EventAttribute) bool { return a.Key == key })
	if idx == -1 {
		return abci.EventAttribute{}, false
	}
	return attributes[idx], true
}
