/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for hike.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/hike/cmd/entries"
	"bennypowers.dev/hike/cmd/find"
	"bennypowers.dev/hike/cmd/info"
	"bennypowers.dev/hike/cmd/setup"
	"bennypowers.dev/hike/cmd/stat"
	"bennypowers.dev/hike/cmd/version"
	"bennypowers.dev/hike/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "hike",
	Short: "Resolve logical paths to files",
	Long: `hike finds files by logical path: a name with an optional, partial or
aliased extension, looked up across an ordered list of search roots.

Settings come from .config/hike.{yaml,yml,json} in the root, HIKE_*
environment variables and flags, with flags winning.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setup.ApplyLogging(setup.Viper)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := setup.AddFlags(setup.Viper, rootCmd.PersistentFlags()); err != nil {
		logger.Error("binding flags: %v", err)
	}

	rootCmd.AddCommand(find.Cmd)
	rootCmd.AddCommand(entries.Cmd)
	rootCmd.AddCommand(stat.Cmd)
	rootCmd.AddCommand(info.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
