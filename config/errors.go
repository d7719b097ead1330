/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import "errors"

// ErrInvalidAlias is returned for an aliases entry that is neither a
// string nor a list of strings.
var ErrInvalidAlias = errors.New("invalid alias configuration")
