package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cosmossdk.io/log"

	ibctesting "github.com/cosmos/ibc-go/modules/apps/counter/testing"
	"github.com/cosmos/ibc-go/modules/apps/counter/types"
)

// RoundResult is the state of both chains after one round of increments.
type RoundResult struct {
	Round          int    `json:"round"`
	Sequence       uint64 `json:"sequence"`
	AckSuccess     bool   `json:"ack_success"`
	ChannelCountB  uint64 `json:"channel_count_b"`
	CallbackCountA uint64 `json:"callback_count_a"`
}

// NewRunCmd returns the command running increment rounds from chain A to
// chain B.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a counter channel and relay increment packets over it",
		Long: `Open a counter channel between two in-process chains, send one increment
packet from chain A per round, relay it and its acknowledgement, and print
the counters after each round as a JSON line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return runSimulation(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	addSimFlags(cmd)

	return cmd
}

func runSimulation(out, logOut io.Writer, cfg Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	opts := []log.Option{log.LevelOption(level)}
	if cfg.LogJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	logger := log.NewLogger(logOut, opts...)

	coord, err := ibctesting.NewCoordinator(logger, 2)
	if err != nil {
		return err
	}

	chainA, err := coord.GetChain(ibctesting.GetChainID(1))
	if err != nil {
		return err
	}
	chainB, err := coord.GetChain(ibctesting.GetChainID(2))
	if err != nil {
		return err
	}

	for _, chain := range []*ibctesting.TestChain{chainA, chainB} {
		if err := chain.SetParams(cfg.Params()); err != nil {
			return fmt.Errorf("failed to set params on %s: %w", chain.ChainID, err)
		}
	}

	path := ibctesting.NewPath(chainA, chainB)
	if err := path.Setup(); err != nil {
		return err
	}

	logger.Info("channel open", "channel-a", path.EndpointA.ChannelID, "channel-b", path.EndpointB.ChannelID)

	enc := json.NewEncoder(out)
	for round := 1; round <= cfg.Rounds; round++ {
		sequence, err := path.EndpointA.SendIncrement(cfg.Callback)
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}

		info, err := path.RelayAll()
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}

		coord.CommitBlock(chainA, chainB)

		result := RoundResult{
			Round:    round,
			Sequence: sequence,
		}
		for _, relayed := range info.AcksFromB {
			result.AckSuccess = relayed.Ack.Success()
		}

		if result.ChannelCountB, err = path.EndpointB.QueryCount(); err != nil {
			return err
		}
		if result.CallbackCountA, err = chainA.QueryCount(types.CallbackCounterKey); err != nil {
			return err
		}

		if err := enc.Encode(result); err != nil {
			return err
		}
	}

	return nil
}
