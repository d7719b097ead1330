/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package stat provides the stat command for hike.
package stat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"bennypowers.dev/hike/cmd/setup"
	"bennypowers.dev/hike/fs"
	"bennypowers.dev/hike/trail"
)

// ErrNotFound is returned when the path does not exist.
var ErrNotFound = errors.New("not found")

// Cmd is the stat cobra command.
var Cmd = &cobra.Command{
	Use:   "stat <path>",
	Short: "Print file metadata for a path",
	Long:  `Print file metadata for a path. A relative path is taken relative to the trail root.`,
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

// Info is the printed form of a stat result.
type Info struct {
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	Mode    string    `json:"mode"`
	ModTime time.Time `json:"modTime"`
	IsDir   bool      `json:"isDir"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	t, err := setup.Trail(setup.Viper, fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	return Stat(cmd.OutOrStdout(), t, args[0], format)
}

// Stat writes metadata for path to w, or returns ErrNotFound.
func Stat(w io.Writer, r trail.Resolver, path, format string) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.Root(), path)
	}

	fi, err := r.Stat(path)
	if err != nil {
		return err
	}
	if fi == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	info := Info{
		Path:    path,
		Size:    fi.Size(),
		Mode:    fi.Mode().String(),
		ModTime: fi.ModTime(),
		IsDir:   fi.IsDir(),
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "text", "":
		fmt.Fprintf(w, "%s  %d  %s  %s\n", info.Mode, info.Size, info.ModTime.Format(time.RFC3339), info.Path)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
