// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/LeeDigitalWorks/bucketmd/pkg/env"
	"github.com/LeeDigitalWorks/bucketmd/pkg/logger"
	"github.com/LeeDigitalWorks/bucketmd/pkg/utils"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bucketmd",
	Short: "bucketmd - bucket metadata tooling",
	Long: `bucketmd builds, inspects and edits bucket metadata records.
Records are read and written in their canonical JSON encoding, the same form
the metadata store persists.`,
	SilenceUsage:      true,
	PersistentPreRunE: initialize,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&utils.ConfigurationFileDirectory, "config_dir", ".", "Directory for configuration files")
	rootCmd.PersistentFlags().String("log_level", "", "Log level: debug, info, warn, error (or set LOG_LEVEL)")
}

// initialize loads the optional bucketmd config file and applies the log level.
// Production logs are plain JSON lines instead of console output.
func initialize(cmd *cobra.Command, args []string) error {
	if _, err := utils.LoadConfiguration("bucketmd", false); err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if env.Load() == env.Production {
		logger.Init(os.Stderr, logger.Level())
	}
	if err := logger.Configure(NewFlagLoader(cmd).String("log_level")); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
