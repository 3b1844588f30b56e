package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

// NewEncodePacketCmd returns the command printing the wire bytes of an
// increment packet.
func NewEncodePacketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encode-packet",
		Short:   "Print the JSON payload of an increment packet",
		Example: "counter-sim encode-packet --callback",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			callback, err := cmd.Flags().GetBool(flagCallback)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(types.EncodePacketData(types.NewIncrementPacketData(callback))))
			return err
		},
	}

	cmd.Flags().Bool(flagCallback, false, "request a callback")

	return cmd
}

// decodedAck is the printable form of a decoded acknowledgement.
type decodedAck struct {
	Success  bool   `json:"success"`
	Count    uint64 `json:"count,omitempty"`
	Callback bool   `json:"callback,omitempty"`
	Error    string `json:"error,omitempty"`
}

// NewDecodeAckCmd returns the command decoding acknowledgement bytes.
func NewDecodeAckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "decode-ack [acknowledgement]",
		Short:   "Decode a counter acknowledgement",
		Example: `counter-sim decode-ack '{"result":"eyJjYWxsYmFjayI6dHJ1ZSwiY291bnQiOjF9"}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ack, err := types.DecodeAcknowledgement([]byte(args[0]))
			if err != nil {
				return err
			}

			var out decodedAck
			switch ack := ack.(type) {
			case types.AckSuccess:
				out = decodedAck{Success: true, Count: ack.Count, Callback: ack.Callback}
			case types.AckError:
				out = decodedAck{Error: ack.Message}
			}

			bz, err := json.Marshal(out)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}
}
