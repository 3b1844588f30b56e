/*
Package counter implements a minimal IBC application that counts increment
packets. Every increment packet received on a channel adds one to the counter
of that channel. A packet sent with the callback flag set makes the success
acknowledgement carry the flag back, and handling that acknowledgement on the
sending chain increments its callback counter.

The module binds the "counter" port and speaks the "simple-ibc-callback"
channel version over UNORDERED channels only.

The message and query types are plain Go structs rather than generated
protobuf, so the module registers no Msg or Query services. An application
routes contract-style JSON commands and queries to Keeper.Execute and
Keeper.Query, or calls the keeper's message handlers directly.
*/
package counter
