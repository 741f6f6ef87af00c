package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var saveDirFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &saveDirFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "hctool",
		Short:         "Save multitool for Hardcoded",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&saveDirFlag, "save-dir", "", "Directory holding the game's save files")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(newConvertCommand(ctx))
	rootCmd.AddCommand(newOrganiseCommand(ctx))
	rootCmd.AddCommand(newOutfitsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
