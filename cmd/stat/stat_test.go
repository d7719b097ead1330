/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stat

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/hike/testutil"
	"bennypowers.dev/hike/trail"
)

func TestStat(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")
	tr, err := trail.New(mfs, "/project")
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Stat(&buf, tr, "app/views/index.html.erb", "text"))
		assert.Equal(t, "-rw-r--r--  30  2025-01-01T00:00:00Z  /project/app/views/index.html.erb\n", buf.String())
	})

	t.Run("json directory", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Stat(&buf, tr, "/project/app/views", "json"))

		var info Info
		require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
		assert.Equal(t, "/project/app/views", info.Path)
		assert.True(t, info.IsDir)
	})

	t.Run("missing", func(t *testing.T) {
		var buf bytes.Buffer
		err := Stat(&buf, tr, "app/views/missing.html", "text")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, buf.String())
	})
}
