// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes Format output and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultColumnSeparator separates cells within a row.
	DefaultColumnSeparator = ", "

	// DefaultRowOpen is written before the first cell of each row.
	DefaultRowOpen = "["

	// DefaultRowClose is written after the last cell of each row.
	DefaultRowClose = "]"

	// DefaultRowSeparator is written after every row, including the last.
	DefaultRowSeparator = "\n"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective rendering configuration. Fields are
// unexported; public entry points accept ...Option and resolve them via
// gatherOptions.
type Options struct {
	colSep   string
	rowOpen  string
	rowClose string
	rowSep   string
	cell     func(v any) string
}

// WithColumnSeparator sets the text between two cells of a row.
func WithColumnSeparator(sep string) Option {
	return func(o *Options) { o.colSep = sep }
}

// WithRowSeparator sets the text written after each row.
func WithRowSeparator(sep string) Option {
	return func(o *Options) { o.rowSep = sep }
}

// WithBrackets sets the text written around each row. Pass empty strings
// for a bare grid.
func WithBrackets(left, right string) Option {
	return func(o *Options) {
		o.rowOpen = left
		o.rowClose = right
	}
}

// WithCellFormatter sets the function rendering one element.
// Implementation:
//   - Stage 1: reject nil (programmer error → panic).
//   - Stage 2: return a setter storing f.
//
// Notes:
//   - The element is passed as any; type-switch or use fmt verbs inside f.
func WithCellFormatter(f func(v any) string) Option {
	if f == nil {
		panic(panicNilFormatter)
	}

	return func(o *Options) { o.cell = f }
}

// gatherOptions applies user options over the documented defaults, in order
// (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		colSep:   DefaultColumnSeparator,
		rowOpen:  DefaultRowOpen,
		rowClose: DefaultRowClose,
		rowSep:   DefaultRowSeparator,
		cell:     defaultCell,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// defaultCell renders with %v, which prints floats in %g form.
func defaultCell(v any) string { return fmt.Sprint(v) }
