// Package lstsq solves overdetermined linear least-squares problems.
//
// 🚀 What is inside?
//
//	Three stateless operations, each returning a tagged Result:
//	  • DesignSystem(m, n) : Vandermonde design matrix over m sample points
//	  • NormalEquations(A, b) : reduce (A, b) to the square system (AᵗA, Aᵗb)
//	  • ResidualNorm(A, x, b) : ‖b − A·x‖₂ for a candidate solution x
//
//	plus solvers built on them:
//	  • SolveNormal(A, b) : Cholesky solve of the normal equations
//	  • SolveQR(A, b) : QR solve of the rectangular system
//	  • Fit(m, n, f) : sample f on the design grid and fit a polynomial
//
// ✨ Contract:
//   - Invalid input never panics. It yields an Invalid Result whose Err()
//     matches ErrInvalidInput plus a specific cause under errors.Is.
//   - Inputs are never mutated; every result is freshly allocated.
//   - Conventions: samples span [0, 1] with both endpoints; design columns
//     hold increasing powers (t⁰, t¹, …). WithDomain and WithDescending
//     change them.
//
// ⚙️ Usage:
//
//	d := lstsq.DesignSystem(3, 2)
//	design, ok := d.Value()      // design.T = [0 0.5 1]
//	sys, err := lstsq.NormalEquations(design.A, []float64{1, 2, 3}).Get()
//
// Untyped callers (decoded fixtures, interface values) use DesignSystemOf,
// NormalEquationsOf and ResidualNormOf, where a wrong argument type is just
// another Invalid Result.
package lstsq
