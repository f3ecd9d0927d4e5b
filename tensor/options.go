// SPDX-License-Identifier: MIT

// Package tensor: functional configuration for composite construction
// (Compose, Stack).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values.
package tensor

import "github.com/katalvlaran/lvtensor/shape"

// DefaultAliasCheck rejects composites in which one nested tensor instance
// occupies more than one cell.
const DefaultAliasCheck = true

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective composition configuration.
type Options struct {
	aliasCheck bool        // DefaultAliasCheck
	inner      shape.Shape // declared inner shape; nil means "take it from block (0,0)"
}

// WithAliasCheck toggles the shared-instance check. Disable it only when the
// element type is a value type whose copies are independent anyway, or when
// the caller guarantees distinct instances and wants to skip the O(n) map.
func WithAliasCheck(enabled bool) Option {
	return func(o *Options) { o.aliasCheck = enabled }
}

// WithInnerShape declares the shape every nested tensor must have. Without
// it the shape of block (0,0) is the reference.
// Panics when s is not a valid shape (programmer error).
func WithInnerShape(s shape.Shape) Option {
	if err := s.Validate(); err != nil {
		panic(panicInvalidInnerShape)
	}
	declared := s.Clone()

	return func(o *Options) { o.inner = declared }
}

// gatherOptions applies user options over the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := Options{aliasCheck: DefaultAliasCheck}
	for _, set := range user {
		set(&o)
	}

	return o
}
