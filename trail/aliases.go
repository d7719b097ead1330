/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package trail

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// NormalizeExtension returns ext with a leading dot.
func NormalizeExtension(ext string) string {
	if strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// AliasMap maps a canonical extension to the extensions that may stand in
// for it, in registration order.
//
//	m.Alias("htm", "html")
//	m.Alias("php", "html")
//	m.AliasesFor(".html") // [.htm .php]
//
// The zero value is an empty map ready to use.
type AliasMap struct {
	groups map[string][]string
}

// Alias registers alias as a substitute for canonical. Both are normalized.
// Registering the same pair twice is a no-op.
func (m *AliasMap) Alias(alias, canonical string) error {
	alias = NormalizeExtension(alias)
	canonical = NormalizeExtension(canonical)

	if alias == canonical {
		return fmt.Errorf("%w: %s", ErrSelfAlias, alias)
	}
	if owners := m.CanonicalsFor(canonical); len(owners) > 0 {
		return fmt.Errorf("%w: %s is already an alias of %s", ErrAliasChain, canonical, strings.Join(owners, ", "))
	}
	if len(m.groups[alias]) > 0 {
		return fmt.Errorf("%w: %s already has aliases", ErrAliasChain, alias)
	}

	if m.groups == nil {
		m.groups = make(map[string][]string)
	}
	if !slices.Contains(m.groups[canonical], alias) {
		m.groups[canonical] = append(m.groups[canonical], alias)
	}
	return nil
}

// Unalias removes ext as an alias from every canonical extension.
// Canonical extensions left without aliases are dropped.
func (m *AliasMap) Unalias(ext string) {
	ext = NormalizeExtension(ext)
	for canonical, aliases := range m.groups {
		aliases = slices.DeleteFunc(aliases, func(a string) bool { return a == ext })
		if len(aliases) == 0 {
			delete(m.groups, canonical)
			continue
		}
		m.groups[canonical] = aliases
	}
}

// AliasesFor returns the aliases of canonical in registration order.
// The result must not be modified.
func (m *AliasMap) AliasesFor(canonical string) []string {
	return m.groups[canonical]
}

// CanonicalsFor returns, sorted, every canonical extension ext is an
// alias of.
func (m *AliasMap) CanonicalsFor(ext string) []string {
	var owners []string
	for canonical, aliases := range m.groups {
		if slices.Contains(aliases, ext) {
			owners = append(owners, canonical)
		}
	}
	slices.Sort(owners)
	return owners
}

// Map returns a deep copy of the canonical-to-aliases mapping.
func (m *AliasMap) Map() map[string][]string {
	out := make(map[string][]string, len(m.groups))
	for canonical, aliases := range m.groups {
		out[canonical] = slices.Clone(aliases)
	}
	return out
}

// Clone returns an independent copy.
func (m *AliasMap) Clone() *AliasMap {
	return &AliasMap{groups: m.Map()}
}

// Len returns the number of canonical extensions with aliases.
func (m *AliasMap) Len() int {
	return len(m.groups)
}

// Canonicals returns the canonical extensions, sorted.
func (m *AliasMap) Canonicals() []string {
	return slices.Sorted(maps.Keys(m.groups))
}
