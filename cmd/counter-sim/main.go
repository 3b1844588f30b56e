package main

import (
	"fmt"
	"os"

	"github.com/cosmos/ibc-go/modules/apps/counter/cmd/counter-sim/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
