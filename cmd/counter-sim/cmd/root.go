package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the counter-sim root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "counter-sim",
		Short:         "Simulate the counter IBC application between two in-process chains",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		NewRunCmd(),
		NewEncodePacketCmd(),
		NewDecodeAckCmd(),
	)

	return rootCmd
}
