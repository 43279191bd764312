/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/juice/internal/version"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name   string
		format string
		info   version.BuildInfo
		want   string
	}{
		{
			name:   "dev",
			format: "text",
			info:   version.BuildInfo{Version: "dev"},
			want:   "juice dev\n",
		},
		{
			name:   "commit",
			format: "text",
			info:   version.BuildInfo{Version: "v1.0.0", GitCommit: "0123456789abcdef", Modified: true},
			want:   "juice v1.0.0 (0123456-dirty)\n",
		},
		{
			name:   "json",
			format: "json",
			info:   version.BuildInfo{Version: "v1.0.0", GoVersion: "go1.25.5"},
			want:   "{\n  \"version\": \"v1.0.0\",\n  \"goVersion\": \"go1.25.5\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, write(&buf, tt.format, tt.info))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	assert.Error(t, write(&bytes.Buffer{}, "xml", version.BuildInfo{}))
}
