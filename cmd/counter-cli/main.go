// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"

	"github.com/ava-labs/counterprog/consts"
)

var (
	statePath string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "counter-cli",
	Short: "Drive the counter program against a local ledger",
	Long:  `A local host for the counter program: creates accounts, submits instructions, and persists the ledger between runs.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "counter.json", "Ledger snapshot file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log instruction processing")

	rootCmd.AddCommand(
		createCmd(),
		fundCmd(),
		initializeCmd(),
		incrementCmd(),
		decrementCmd(),
		readCmd(),
		versionCmd(),
	)
}

func newLogger() logging.Logger {
	level := logging.Info
	if verbose {
		level = logging.Debug
	}
	return logging.NewLogger(
		consts.Name,
		logging.NewWrappedCore(
			level,
			os.Stderr,
			logging.Plain.ConsoleEncoder(),
		))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}
