/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/juice/options"
	"bennypowers.dev/juice/testutil"
)

func TestNormalizeArgs(t *testing.T) {
	got := NormalizeArgs([]string{"build", "--enable-debug", "--disable-legacy", "--enable", "x", "--enable-", "-v"})
	want := []string{"build", "--enable=debug", "--disable=legacy", "--enable", "x", "--enable-", "-v"}
	assert.Equal(t, want, got)
}

func TestLoadAndOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("root", "/project")

	mfs := testutil.NewFixtureFS(t, "project", "/project")
	p, err := Load(mfs)
	require.NoError(t, err)
	assert.Equal(t, "/project", p.Root)

	cmd := &cobra.Command{Use: "test"}
	AddOverrideFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--enable=debug", "--disable", "legacy"}))

	set, err := p.OptionSet(cmd)
	require.NoError(t, err)
	assert.Equal(t, options.Set{"debug": true, "legacy": false}, set)

	require.NoError(t, cmd.Flags().Set("enable", "ghost"))
	_, err = p.OptionSet(cmd)
	assert.ErrorIs(t, err, options.ErrUnknownOption)
}

func TestLoad_ExplicitManifest(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("manifest", "/project/juice.yaml")

	mfs := testutil.NewFixtureFS(t, "yaml", "/project")
	p, err := Load(mfs)
	require.NoError(t, err)
	assert.Equal(t, "/project", p.Root)
	assert.Equal(t, "dist", p.Config.OutDir())
}

func TestLoad_Missing(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("root", "/nowhere")

	mfs := testutil.NewFixtureFS(t, "yaml", "/project")
	_, err := Load(mfs)
	assert.ErrorContains(t, err, "no juice.{yaml,yml,json} manifest found")
}
