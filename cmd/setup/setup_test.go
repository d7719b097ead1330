/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package setup

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/hike/testutil"
	"bennypowers.dev/hike/trail"
)

func TestParseAlias(t *testing.T) {
	tests := []struct {
		name          string
		pair          string
		wantAlias     string
		wantCanonical string
		wantErr       bool
	}{
		{"plain", "htm:html", "htm", "html", false},
		{"dotted", ".htm:.html", ".htm", ".html", false},
		{"spaces", " htm : html ", "htm", "html", false},
		{"missing colon", "htm", "", "", true},
		{"missing alias", ":html", "", "", true},
		{"missing canonical", "htm:", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alias, canonical, err := ParseAlias(tt.pair)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAliasFlag)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAlias, alias)
			assert.Equal(t, tt.wantCanonical, canonical)
		})
	}
}

func TestTrail_FromConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")
	v := New()
	v.Set(KeyRoot, "/project")

	tr, err := Trail(v, mfs)
	require.NoError(t, err)
	assert.Equal(t, "/project", tr.Root())
	assert.Equal(t, []string{".builder", ".coffee", ".str", ".erb"}, tr.Extensions())
	assert.Len(t, tr.Paths(), 4)
}

func TestTrail_FlagsTakePriority(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")
	v := New()
	v.Set(KeyRoot, "/project")
	v.Set(KeyPath, []string{"vendor/plugins/beta/app/views"})
	v.Set(KeyExt, []string{"md", "erb"})
	v.Set(KeyAlias, []string{"markdown:md"})

	tr, err := Trail(v, mfs)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/project/vendor/plugins/beta/app/views",
		"/project/app/views",
		"/project/vendor/plugins/alpha/app/views",
		"/project",
	}, tr.Paths())
	assert.Equal(t, []string{".md", ".erb", ".builder", ".coffee", ".str"}, tr.Extensions())
	assert.Equal(t, []string{".markdown"}, tr.Aliases()[".md"])
}

func TestTrail_NoConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")
	v := New()
	v.Set(KeyRoot, "/project")
	v.Set(KeyNoConfig, true)

	tr, err := Trail(v, mfs)
	require.NoError(t, err)
	assert.Equal(t, []string{"/project"}, tr.Paths())
	assert.Empty(t, tr.Extensions())
	assert.Empty(t, tr.Aliases())
}

func TestTrail_Errors(t *testing.T) {
	t.Run("bad alias flag", func(t *testing.T) {
		v := New()
		v.Set(KeyRoot, "/project")
		v.Set(KeyNoConfig, true)
		v.Set(KeyAlias, []string{"htm"})

		_, err := Trail(v, testutil.NewFixtureFS(t, "fixtures/config/empty", "/project"))
		assert.ErrorIs(t, err, ErrInvalidAliasFlag)
	})

	t.Run("self alias flag", func(t *testing.T) {
		v := New()
		v.Set(KeyRoot, "/project")
		v.Set(KeyNoConfig, true)
		v.Set(KeyAlias, []string{"html:html"})

		_, err := Trail(v, testutil.NewFixtureFS(t, "fixtures/config/empty", "/project"))
		assert.ErrorIs(t, err, trail.ErrSelfAlias)
	})

	t.Run("alias chain in config", func(t *testing.T) {
		v := New()
		v.Set(KeyRoot, "/project")

		_, err := Trail(v, testutil.NewFixtureFS(t, "fixtures/config/chain", "/project"))
		assert.ErrorIs(t, err, trail.ErrAliasChain)
	})
}

func TestAddFlags_BindsToViper(t *testing.T) {
	v := New()
	flags := pflag.NewFlagSet("hike", pflag.ContinueOnError)
	require.NoError(t, AddFlags(v, flags))

	require.NoError(t, flags.Parse([]string{"-r", "/srv", "-p", "a", "--path", "b", "-e", "erb", "-v"}))
	assert.Equal(t, "/srv", v.GetString(KeyRoot))
	assert.Equal(t, []string{"a", "b"}, v.GetStringSlice(KeyPath))
	assert.Equal(t, []string{"erb"}, v.GetStringSlice(KeyExt))
	assert.True(t, v.GetBool(KeyVerbose))
	assert.False(t, v.GetBool(KeyNoConfig))
}

func TestNew_ReadsEnvironment(t *testing.T) {
	t.Setenv("HIKE_ROOT", "/from/env")
	t.Setenv("HIKE_NO_CONFIG", "true")

	v := New()
	assert.Equal(t, "/from/env", v.GetString(KeyRoot))
	assert.True(t, v.GetBool(KeyNoConfig))
}
