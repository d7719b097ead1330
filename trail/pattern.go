/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package trail

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// compilePattern builds the matcher for every on-disk name that can satisfy
// basename: the basename itself (or its stem plus the extension or one of
// its aliases), followed by any run of configured extensions.
//
//	compilePattern("index.html", [.builder .erb], [.htm .php])
//	// ^index(?:\.html|\.htm|\.php)(?:\.builder|\.erb)*$
func compilePattern(basename string, extensions, aliases []string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")

	if len(aliases) == 0 {
		b.WriteString(regexp.QuoteMeta(basename))
	} else {
		ext := filepath.Ext(basename)
		b.WriteString(regexp.QuoteMeta(strings.TrimSuffix(basename, ext)))
		b.WriteString(alternation(append([]string{ext}, aliases...)))
	}

	if len(extensions) > 0 {
		b.WriteString(alternation(extensions))
		b.WriteString("*")
	}

	b.WriteString("$")
	return regexp.MustCompile(b.String())
}

func alternation(literals []string) string {
	quoted := make([]string, len(literals))
	for i, l := range literals {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

// patternCache holds compiled matchers by requested basename. Clearing it
// changes cost, never results.
type patternCache struct {
	mu       sync.Mutex
	patterns map[string]*regexp.Regexp
}

func newPatternCache() *patternCache {
	return &patternCache{patterns: make(map[string]*regexp.Regexp)}
}

func (c *patternCache) get(basename string, compile func() *regexp.Regexp) *regexp.Regexp {
	c.mu.Lock()
	defer c.mu.Unlock()

	if re, ok := c.patterns[basename]; ok {
		return re
	}
	re := compile()
	c.patterns[basename] = re
	return re
}

func (c *patternCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.patterns)
}

func (c *patternCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.patterns)
}
