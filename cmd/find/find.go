/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package find provides the find command for hike.
package find

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/hike/cmd/setup"
	"bennypowers.dev/hike/fs"
	"bennypowers.dev/hike/trail"
)

// ErrNoMatch is returned when no logical path resolves.
var ErrNoMatch = errors.New("no match")

// Cmd is the find cobra command.
var Cmd = &cobra.Command{
	Use:   "find <logical-path> [fallback...]",
	Short: "Resolve logical paths to files",
	Long: `Resolve a logical path to a file on disk. Later arguments are fallbacks,
tried in order when earlier ones match nothing.

  hike find -p app/views -e erb projects/index.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("all", false, "Print every match of the first fallback that has any")
	Cmd.Flags().StringP("base-path", "b", "", "Base directory for ./ and ../ logical paths (default: trail root)")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

// Options controls how results are collected and printed.
type Options struct {
	All      bool
	BasePath string
	Format   string
}

func run(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	basePath, _ := cmd.Flags().GetString("base-path")
	format, _ := cmd.Flags().GetString("format")

	if basePath != "" {
		abs, err := filepath.Abs(basePath)
		if err != nil {
			return fmt.Errorf("invalid base path: %w", err)
		}
		basePath = abs
	}

	t, err := setup.Trail(setup.Viper, fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	return Find(cmd.OutOrStdout(), t, args, Options{All: all, BasePath: basePath, Format: format})
}

// Find resolves logicalPaths with r and writes the matches to w.
// It returns ErrNoMatch when nothing resolves.
func Find(w io.Writer, r trail.Resolver, logicalPaths []string, opts Options) error {
	q := trail.Query{LogicalPaths: logicalPaths, BasePath: opts.BasePath}

	var matches []string
	if opts.All {
		all, err := r.FindAllQuery(q)
		if err != nil {
			return err
		}
		matches = all
	} else {
		found, err := r.FindQuery(q)
		if err != nil {
			return err
		}
		if found != "" {
			matches = []string{found}
		}
	}

	switch opts.Format {
	case "json":
		if err := outputJSON(w, logicalPaths, matches); err != nil {
			return err
		}
	case "text", "":
		for _, m := range matches {
			fmt.Fprintln(w, m)
		}
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}

	if len(matches) == 0 {
		return fmt.Errorf("%w: %v", ErrNoMatch, logicalPaths)
	}
	return nil
}

func outputJSON(w io.Writer, logicalPaths, matches []string) error {
	type findOutput struct {
		LogicalPaths []string `json:"logicalPaths"`
		Matches      []string `json:"matches"`
	}

	if matches == nil {
		matches = []string{}
	}
	data, err := json.MarshalIndent(findOutput{LogicalPaths: logicalPaths, Matches: matches}, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
