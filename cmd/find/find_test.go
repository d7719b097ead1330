/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package find

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/hike/config"
	"bennypowers.dev/hike/testutil"
	"bennypowers.dev/hike/trail"
)

func newResolver(t *testing.T) trail.Resolver {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")
	tr, err := config.LoadOrDefault(mfs, "/project").NewTrail(mfs, "/project")
	require.NoError(t, err)
	return tr
}

func TestFind_Text(t *testing.T) {
	var buf bytes.Buffer
	err := Find(&buf, newResolver(t), []string{"people.html"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "/project/src/views/people.htm\n", buf.String())
}

func TestFind_All(t *testing.T) {
	var buf bytes.Buffer
	err := Find(&buf, newResolver(t), []string{"people.html"}, Options{All: true})
	require.NoError(t, err)
	assert.Equal(t, "/project/src/views/people.htm\n/project/lib/views/people.html.erb\n", buf.String())
}

func TestFind_Fallbacks(t *testing.T) {
	var buf bytes.Buffer
	err := Find(&buf, newResolver(t), []string{"missing.html", "people.html"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "/project/src/views/people.htm\n", buf.String())
}

func TestFind_RelativeWithBasePath(t *testing.T) {
	var buf bytes.Buffer
	err := Find(&buf, newResolver(t), []string{"./people.html"}, Options{BasePath: "/project/lib/views"})
	require.NoError(t, err)
	assert.Equal(t, "/project/lib/views/people.html.erb\n", buf.String())
}

func TestFind_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := Find(&buf, newResolver(t), []string{"people.html"}, Options{All: true, Format: "json"})
	require.NoError(t, err)

	var out struct {
		LogicalPaths []string `json:"logicalPaths"`
		Matches      []string `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, []string{"people.html"}, out.LogicalPaths)
	assert.Len(t, out.Matches, 2)
}

func TestFind_NoMatch(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		err := Find(&buf, newResolver(t), []string{"nothing.html"}, Options{})
		assert.ErrorIs(t, err, ErrNoMatch)
		assert.Empty(t, buf.String())
	})

	t.Run("json still prints", func(t *testing.T) {
		var buf bytes.Buffer
		err := Find(&buf, newResolver(t), []string{"nothing.html"}, Options{Format: "json"})
		assert.ErrorIs(t, err, ErrNoMatch)
		assert.Contains(t, buf.String(), `"matches": []`)
	})
}

func TestFind_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Find(&buf, newResolver(t), []string{"people.html"}, Options{Format: "yaml"})
	assert.ErrorContains(t, err, "unknown format")
}
