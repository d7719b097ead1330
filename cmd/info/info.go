/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package info provides the info command for hike.
package info

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/hike/cmd/setup"
	"bennypowers.dev/hike/fs"
	"bennypowers.dev/hike/trail"
)

// Cmd is the info cobra command.
var Cmd = &cobra.Command{
	Use:   "info",
	Short: "Print the effective lookup configuration",
	Long:  `Print the root, search paths, extensions and aliases after merging the config file, environment and flags.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json, yaml")
}

// Summary is the printed form of a resolver's configuration.
type Summary struct {
	Root       string              `json:"root" yaml:"root"`
	Paths      []string            `json:"paths" yaml:"paths"`
	Extensions []string            `json:"extensions" yaml:"extensions"`
	Aliases    map[string][]string `json:"aliases" yaml:"aliases"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	t, err := setup.Trail(setup.Viper, fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	return Print(cmd.OutOrStdout(), t, format)
}

// Summarize collects the configuration of r.
func Summarize(r trail.Resolver) Summary {
	return Summary{
		Root:       r.Root(),
		Paths:      r.Paths(),
		Extensions: r.Extensions(),
		Aliases:    r.Aliases(),
	}
}

// Print writes the configuration of r to w.
func Print(w io.Writer, r trail.Resolver, format string) error {
	s := Summarize(r)

	switch format {
	case "json":
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("error marshaling YAML: %w", err)
		}
		return enc.Close()
	case "text", "":
		printText(w, s)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func printText(w io.Writer, s Summary) {
	fmt.Fprintf(w, "root:        %s\n", s.Root)
	fmt.Fprintf(w, "paths:       %s\n", strings.Join(s.Paths, "\n             "))
	fmt.Fprintf(w, "extensions:  %s\n", strings.Join(s.Extensions, " "))

	canonicals := make([]string, 0, len(s.Aliases))
	for canonical := range s.Aliases {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	for i, canonical := range canonicals {
		label := "aliases:"
		if i > 0 {
			label = ""
		}
		fmt.Fprintf(w, "%-12s %s <- %s\n", label, canonical, strings.Join(s.Aliases[canonical], " "))
	}
}
