/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"testing"

	"bennypowers.dev/hike/internal/mapfs"
)

func TestLocalResolver(t *testing.T) {
	resolver := NewLocalResolver("/project")

	tests := []struct {
		spec string
		want string
	}{
		{"app/views", "/project/app/views"},
		{".", "/project"},
		{"/srv/views/", "/srv/views"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := resolver.Resolve(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.spec, got, tt.want)
			}
		})
	}

	if resolver.CanResolve("npm:widgets") {
		t.Error("expected CanResolve to return false for npm specifier")
	}
}

func TestNPMResolver_WalksUp(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/@scope/widgets/templates/card.html", "", 0644)
	mfs.AddFile("/node_modules/widgets/views/list.html", "", 0644)

	resolver := NewNPMResolver(mfs, "/project/packages/site")

	got, err := resolver.Resolve("npm:@scope/widgets/templates")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/project/node_modules/@scope/widgets/templates" {
		t.Errorf("got %q", got)
	}

	got, err = resolver.Resolve("npm:widgets/views")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/node_modules/widgets/views" {
		t.Errorf("got %q", got)
	}
}

func TestNPMResolver_NearestWins(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/widgets/views/a.html", "", 0644)
	mfs.AddFile("/project/site/node_modules/widgets/views/b.html", "", 0644)

	got, err := NewNPMResolver(mfs, "/project/site").Resolve("npm:widgets/views")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/project/site/node_modules/widgets/views" {
		t.Errorf("got %q", got)
	}
}

func TestNPMResolver_Errors(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/widgets/views", "a file, not a directory", 0644)
	resolver := NewNPMResolver(mfs, "/project")

	_, err := resolver.Resolve("npm:widgets/views")
	if !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("expected ErrPackageNotFound for a file, got %v", err)
	}

	_, err = resolver.Resolve("npm:missing")
	if !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("expected ErrPackageNotFound, got %v", err)
	}

	if _, err := resolver.Resolve("app/views"); err == nil {
		t.Error("expected error for a local path")
	}
}

func TestDefaultResolver(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/widgets/views/list.html", "", 0644)
	resolver := NewDefaultResolver(mfs, "/project")

	for spec, want := range map[string]string{
		"npm:widgets/views": "/project/node_modules/widgets/views",
		"app/views":         "/project/app/views",
	} {
		got, err := resolver.Resolve(spec)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", spec, err)
		}
		if got != want {
			t.Errorf("Resolve(%q) = %q, want %q", spec, got, want)
		}
	}
}
