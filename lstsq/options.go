// SPDX-License-Identifier: MIT

// Package lstsq: functional configuration shared by every operation.
// This file defines:
//   - Option (functional options over an unexported config),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions, which resolves a call's options.
//
// Design goals:
//   - Deterministic behavior: no global state; options are resolved per call.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package lstsq

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDomainLo and DefaultDomainHi bound the sample grid: [0, 1].
	DefaultDomainLo = 0.0
	DefaultDomainHi = 1.0

	// DefaultDescending selects the power order of design columns.
	// false ⇒ column j holds t^j (increasing powers).
	DefaultDescending = false

	// DefaultEpsilon is the symmetry tolerance applied to AᵗA.
	DefaultEpsilon = 1e-9

	// DefaultFiniteCheck rejects NaN/±Inf entries in A, b and x.
	DefaultFiniteCheck = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDomainInvalid  = "lstsq: WithDomain: bounds must be finite"
	panicEpsilonInvalid = "lstsq: WithTolerance: eps must be finite, non-negative"
)

// Option mutates the per-call configuration. Safe to apply repeatedly.
type Option func(*config)

// config stores the effective configuration after applying Option setters.
type config struct {
	lo, hi      float64     // sample domain
	descending  bool        // design power order
	eps         float64     // symmetry tolerance, >= 0
	finiteCheck bool        // numeric policy for inputs
	logger      *zap.Logger // never nil after gatherOptions
}

// defaultConfig returns the documented defaults.
func defaultConfig() config {
	return config{
		lo:          DefaultDomainLo,
		hi:          DefaultDomainHi,
		descending:  DefaultDescending,
		eps:         DefaultEpsilon,
		finiteCheck: DefaultFiniteCheck,
		logger:      zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	return cfg
}

// WithDomain sets the closed interval the sample vector spans.
// lo > hi is allowed and yields a decreasing grid.
// Panics if either bound is NaN or ±Inf.
func WithDomain(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		panic(panicDomainInvalid)
	}

	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}

// WithDescending orders design columns by decreasing power
// (column j holds t^(n-1-j)), the numpy.vander default.
func WithDescending() Option {
	return func(c *config) { c.descending = true }
}

// WithTolerance sets the symmetry tolerance used when verifying AᵗA.
// Panics if eps is negative, NaN or ±Inf.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(c *config) { c.eps = eps }
}

// WithFiniteCheck toggles rejection of NaN/±Inf input entries.
// With the check off, non-finite values propagate into the result.
func WithFiniteCheck(enabled bool) Option {
	return func(c *config) { c.finiteCheck = enabled }
}

// WithLogger routes diagnostics to l. A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}
