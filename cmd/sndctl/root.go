// ABOUTME: Root cobra command wiring: global flags and subcommand registration.

package main

import (
	"github.com/spf13/cobra"

	"github.com/sndctl/sndctl/internal/logging"
)

const version = "1.0.0"

func newRootCommand() *cobra.Command {
	var configFlag string
	var formatFlag string
	var verboseFlag bool

	ctx := newCommandContext(&configFlag, &formatFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:           "sndctl",
		Short:         "Select audio devices by name, fuzzy name, id, or uid fragment",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(verboseFlag)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "human", "Output format: human, cli, json, table")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newCurrentCommand(ctx))
	rootCmd.AddCommand(newSetCommand(ctx))
	rootCmd.AddCommand(newNextCommand(ctx))
	rootCmd.AddCommand(newMuteCommand(ctx))
	rootCmd.AddCommand(newPlayCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
