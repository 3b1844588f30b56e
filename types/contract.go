package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ExecuteMsg is the JSON command envelope accepted by Keeper.Execute, e.g.
// {"increment":{"channel":"channel-0","callback":true}}.
type ExecuteMsg struct {
	Increment              *IncrementCommand `json:"increment,omitempty"`
	FirstIncrementCallback *EmptyCommand     `json:"first_increment_callback,omitempty"`
}

// IncrementCommand is the body of an increment command.
type IncrementCommand struct {
	Channel  string `json:"channel"`
	Callback bool   `json:"callback"`
}

// EmptyCommand is the body of a command without arguments.
type EmptyCommand struct{}

// QueryMsg is the JSON query envelope accepted by Keeper.Query, e.g.
// {"get_count":{"count":"callback_counter"}}.
type QueryMsg struct {
	GetCount *GetCountQuery `json:"get_count,omitempty"`
}

// GetCountQuery names the counter to read, a channel identifier or
// CallbackCounterKey.
type GetCountQuery struct {
	Count string `json:"count"`
}

// DecodeExecuteMsg decodes a command envelope. Exactly one command must be set.
func DecodeExecuteMsg(bz []byte) (ExecuteMsg, error) {
	var msg ExecuteMsg
	if err := decodeStrictJSON(bz, &msg); err != nil {
		return ExecuteMsg{}, errorsmod.Wrapf(ErrUnknownMsg, "cannot unmarshal execute message: %s", err)
	}

	set := 0
	if msg.Increment != nil {
		set++
	}
	if msg.FirstIncrementCallback != nil {
		set++
	}
	if set != 1 {
		return ExecuteMsg{}, errorsmod.Wrapf(ErrUnknownMsg, "execute message must set exactly one command, got %d", set)
	}

	return msg, nil
}

// DecodeQueryMsg decodes a query envelope.
func DecodeQueryMsg(bz []byte) (QueryMsg, error) {
	var msg QueryMsg
	if err := decodeStrictJSON(bz, &msg); err != nil {
		return QueryMsg{}, errorsmod.Wrapf(ErrUnknownMsg, "cannot unmarshal query message: %s", err)
	}

	if msg.GetCount == nil {
		return QueryMsg{}, errorsmod.Wrap(ErrUnknownMsg, "query message must set a query")
	}

	return msg, nil
}
