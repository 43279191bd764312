/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package options provides the options command for juice.
package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/juice/cmd/project"
	"bennypowers.dev/juice/config"
	"bennypowers.dev/juice/fs"
	optionset "bennypowers.dev/juice/options"
)

// Cmd is the options cobra command.
var Cmd = &cobra.Command{
	Use:   "options",
	Short: "List the build options declared in the manifest",
	Long: `List the build options declared in the manifest with their
effective values and help text. --enable and --disable overrides are
applied, so the output shows what a build with the same flags would see.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	project.AddOverrideFlags(Cmd)
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
}

// Row is one option in the listing.
type Row struct {
	Name    string `json:"name"`
	Value   bool   `json:"value"`
	Default bool   `json:"default"`
	Help    string `json:"help,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	p, err := project.Load(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	set, err := p.OptionSet(cmd)
	if err != nil {
		return err
	}

	rows := Rows(p.Config, set)
	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), rows)
	case "table":
		return outputTable(cmd.OutOrStdout(), rows)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Rows lists the manifest options sorted by name, with values taken from set.
func Rows(cfg *config.Config, set optionset.Set) []Row {
	rows := make([]Row, 0, len(set))
	for _, name := range set.Names() {
		rows = append(rows, Row{
			Name:    name,
			Value:   set[name],
			Default: cfg.Options[name].Value,
			Help:    cfg.Options[name].Help,
		})
	}
	return rows
}

func outputTable(w io.Writer, rows []Row) error {
	caser := cases.Title(language.English)
	for _, row := range rows {
		state := caser.String(status(row.Value))
		if row.Value != row.Default {
			state += "*"
		}
		help := row.Help
		if help == "" {
			help = "-"
		}
		if _, err := fmt.Fprintf(w, "%-24s %-10s %s\n", row.Name, state, help); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func status(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
