// SPDX-License-Identifier: MIT
// Package: cycletsp/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (see builderErrorf).
//   • Generators never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that the requested instance order is below 1.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1] passed as a
// generator argument (options panic instead).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a random generator was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadInstance indicates an instance that cannot be solved: empty weights,
// empty cover or a malformed file.
var ErrBadInstance = errors.New("builder: malformed instance")

// Method tokens used as error context.
const (
	MethodPlanted = "Planted"
	MethodPerturb = "Perturb"
	MethodLoad    = "Load"
	MethodSave    = "Save"
)

// builderErrorf prefixes err with the method token and a formatted message,
// keeping err reachable for errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
