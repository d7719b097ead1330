/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package trail

import "errors"

// Sentinel errors for trail operations.
var (
	// SkipAll is returned by a WalkFunc to stop the walk early. Walk then
	// returns nil and issues no further filesystem calls.
	SkipAll = errors.New("skip all remaining matches")

	// ErrSelfAlias indicates an extension was aliased to itself.
	ErrSelfAlias = errors.New("extension cannot alias itself")

	// ErrAliasChain indicates an alias would point at another alias, or
	// a canonical extension would become an alias. Chains have no defined
	// precedence, so they are refused.
	ErrAliasChain = errors.New("alias chains are not supported")
)
