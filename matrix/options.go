// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for random generation and the
// linear solver. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective settings.
//
// Design goals:
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Deterministic on request: WithSeed/WithRand pin the random stream;
//     without them Random/FillRandom draw from the auto-seeded math/rand source.
//
// Notes:
//   - Solver numeric policy is explicit: by default a zero pivot is NOT an
//     error (±Inf/NaN propagate into the solution and a warning is logged).
//     WithPivotTolerance opts into ErrSingular.
package matrix

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRNGSeed is the fixed seed substituted when WithSeed(0) is requested.
	DefaultRNGSeed int64 = 1

	// DefaultStrictPivot disables the singularity check in Solve.
	// false ⇒ zero pivots divide through and yield ±Inf/NaN.
	DefaultStrictPivot = false

	// DefaultPivotTolerance is the threshold stored when strict mode is off.
	// It is unused unless WithPivotTolerance enables strict mode.
	DefaultPivotTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRandNil               = "matrix: WithRand: rand source must be non-nil"
	panicLoggerNil             = "matrix: WithLogger: logger must be non-nil"
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	// random generation
	rng *rand.Rand // nil ⇒ top-level math/rand source

	// solver policy
	strictPivot bool    // DefaultStrictPivot
	pivotTol    float64 // >= 0; DefaultPivotTolerance

	// diagnostics
	logger logrus.FieldLogger // logrus.StandardLogger() by default
}

// ---------- Constructors (WithX) ----------

// WithSeed pins Random/FillRandom to a deterministic stream.
// Policy: seed==0 ⇒ DefaultRNGSeed; otherwise the seed is used verbatim.
//
// Notes:
//   - Each call to the returned Option creates a fresh stream, so two
//     Random calls with the same WithSeed value produce identical matrices.
//
// Complexity: O(1).
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = DefaultRNGSeed
	}

	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses a caller-owned *rand.Rand for Random/FillRandom.
// The source is advanced by each draw; *rand.Rand is not goroutine-safe.
// Panics when r is nil.
//
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

// WithLogger routes diagnostics (zero-pivot warnings from Solve) to l.
// Panics when l is nil.
//
// AI-Hints:
//   - Pass a logrus.Entry with preset fields to tag warnings by caller.
//   - Tests can use logrus/hooks/test.NewNullLogger to capture entries.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithPivotTolerance enables strict mode in Solve: a pivot p with |p| <= eps
// aborts elimination with ErrSingular instead of dividing through.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that enables strict mode with eps.
//
// Behavior highlights:
//   - eps == 0 rejects exact zero pivots only.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use a small relative scale (e.g. 1e-12 * max|A|) for ill-conditioned inputs.
func WithPivotTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) {
		o.strictPivot = true
		o.pivotTol = eps
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
//
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		strictPivot: DefaultStrictPivot,
		pivotTol:    DefaultPivotTolerance,
		logger:      logrus.StandardLogger(),
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// float64 draws one uniform value in [0, 1) from the configured stream.
func (o *Options) float64() float64 {
	if o.rng == nil {
		return rand.Float64()
	}

	return o.rng.Float64()
}
