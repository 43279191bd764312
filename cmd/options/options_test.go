/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package options

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/juice/config"
	"bennypowers.dev/juice/testutil"
)

func loadRows(t *testing.T, enable ...string) []Row {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, "project", "/project")
	cfg, err := config.Load(mfs, "/project")
	require.NoError(t, err)

	set := cfg.OptionSet()
	for _, name := range enable {
		require.NoError(t, set.Enable(name))
	}
	return Rows(cfg, set)
}

func TestRows(t *testing.T) {
	rows := loadRows(t, "debug")
	assert.Equal(t, []Row{
		{Name: "debug", Value: true, Default: false, Help: "include debugging helpers"},
		{Name: "legacy", Value: true, Default: true},
	}, rows)
}

func TestOutputTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, outputTable(&buf, loadRows(t, "debug")))

	want := "debug                    Enabled*   include debugging helpers\n" +
		"legacy                   Enabled    -\n"
	assert.Equal(t, want, buf.String())
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, outputJSON(&buf, loadRows(t)))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "debug", got[0]["name"])
	assert.Equal(t, false, got[0]["value"])
	assert.Equal(t, "include debugging helpers", got[0]["help"])
	assert.NotContains(t, got[1], "help")
}
