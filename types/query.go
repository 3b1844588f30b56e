package types

// QueryCountRequest asks for a counter. Count is either a channel identifier
// or the reserved CallbackCounterKey.
type QueryCountRequest struct {
	Count string `json:"count"`
}

// QueryCountResponse holds the value of the requested counter.
type QueryCountResponse struct {
	Count uint64 `json:"count"`
}

// QueryParamsRequest is the request type for the Query/Params method.
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params method.
type QueryParamsResponse struct {
	Params *Params `json:"params"`
}
