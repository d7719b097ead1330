/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package entries provides the entries command for hike.
package entries

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/hike/cmd/setup"
	"bennypowers.dev/hike/fs"
	"bennypowers.dev/hike/trail"
)

// Cmd is the entries cobra command.
var Cmd = &cobra.Command{
	Use:   "entries <dir>",
	Short: "List the names a lookup in a directory can see",
	Long: `List the visible entries of a directory, sorted. Hidden files, editor
backups ending in ~ and #lock# files are left out. A relative directory is
taken relative to the trail root. A missing directory lists nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	t, err := setup.Trail(setup.Viper, fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	return List(cmd.OutOrStdout(), t, args[0], format)
}

// List writes the entries of dir to w. A relative dir is joined to the
// resolver's root.
func List(w io.Writer, r trail.Resolver, dir, format string) error {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(r.Root(), dir)
	}

	names, err := r.Entries(dir)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		if names == nil {
			names = []string{}
		}
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "text", "":
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
