/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for juice.
package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/juice/internal/version"
)

// Cmd is the version cobra command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	return write(cmd.OutOrStdout(), format, version.Info())
}

func write(w io.Writer, format string, info version.BuildInfo) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "text":
		line := "juice " + info.Version
		if info.GitCommit != "" {
			commit := info.GitCommit
			if len(commit) > 7 {
				commit = commit[:7]
			}
			if info.Modified {
				commit += "-dirty"
			}
			line += " (" + commit + ")"
		}
		_, err := fmt.Fprintln(w, line)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
