// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only construction preconditions are errors; problems with individual
//     records are Warnings and never stop a build.
//   • Callers use errors.Is(err, ErrX).

package builder

import (
	"errors"
	"fmt"
)

// ErrNilRegistry indicates that a build was started without a station registry.
var ErrNilRegistry = errors.New("builder: registry is nil")

// ErrNilStep indicates a nil Step passed to BuildGraph.
var ErrNilStep = errors.New("builder: nil step")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
