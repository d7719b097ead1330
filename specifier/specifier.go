/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier turns search root entries into directories. An entry
// is either a filesystem path or an npm package specifier naming a
// directory inside an installed package:
//
//	npm:@scope/widgets/templates
//	npm:widgets
package specifier

import (
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a filesystem path.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
)

// Specifier represents a parsed search root entry.
type Specifier struct {
	Kind Kind

	// Package is the package name ("@scope/pkg" or "pkg"). Empty for
	// local paths.
	Package string

	// Dir is the directory within the package, or the local path.
	Dir string

	// Raw is the original entry.
	Raw string
}

// npmPattern matches npm:@scope/pkg/dir, npm:pkg/dir, or bare npm:pkg
var npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/@][^/]*)(/.*)?$`)

// Parse parses a search root entry.
func Parse(spec string) *Specifier {
	if strings.HasPrefix(spec, "npm:") {
		if m := npmPattern.FindStringSubmatch(spec); m != nil {
			return &Specifier{
				Kind:    KindNPM,
				Package: m[1],
				Dir:     strings.Trim(m[2], "/"),
				Raw:     spec,
			}
		}
	}

	return &Specifier{Kind: KindLocal, Dir: spec, Raw: spec}
}

// IsPackageSpecifier returns true if spec is a well-formed npm specifier.
func IsPackageSpecifier(spec string) bool {
	return Parse(spec).Kind == KindNPM
}
