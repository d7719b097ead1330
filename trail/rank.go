/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package trail

import (
	"slices"
	"strings"
)

// aliasWeightOffset keeps any alias token heavier than an extension token
// at a comparable position.
const aliasWeightOffset = 11

// weigh scores a matched entry. The text left after removing the requested
// basename is split on dots; every token that is a configured extension adds
// its index+1, every token that is an alias of the requested extension adds
// its index+11. Tokens are summed, so stacked extensions all count.
func weigh(name, basename string, extensions, aliases []string) int {
	rest := strings.Replace(name, basename, "", 1)

	weight := 0
	for _, token := range strings.Split(rest, ".") {
		if token == "" {
			continue
		}
		ext := "." + token
		if i := slices.Index(extensions, ext); i >= 0 {
			weight += i + 1
		} else if i := slices.Index(aliases, ext); i >= 0 {
			weight += i + aliasWeightOffset
		}
	}
	return weight
}

// candidate is a directory entry that matched a requested basename.
type candidate struct {
	name   string
	weight int
}

// rank orders names lightest first. Equal weights keep directory order.
func rank(names []string, basename string, extensions, aliases []string) []candidate {
	candidates := make([]candidate, len(names))
	for i, name := range names {
		candidates[i] = candidate{name: name, weight: weigh(name, basename, extensions, aliases)}
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.weight - b.weight
	})
	return candidates
}
