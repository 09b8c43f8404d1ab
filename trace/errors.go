// SPDX-License-Identifier: MIT
// Package trace: sentinel error set.

package trace

import "errors"

// ErrUnknownChannel indicates a channel name that is not present in the Trace.
var ErrUnknownChannel = errors.New("trace: unknown channel")
