// Package matrix provides the dense linear-algebra kernels behind lstsq.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Constructors from explicit rows (NewDenseFromRows) or a flat buffer.
//   - Kernels: Transpose, Mul, Gram, MatVec, TMatVec, SubVec.
//   - Validators shared by every kernel (nil, shape, length, symmetry, finiteness).
//   - Comparison helpers (AllClose, VecAllClose) for tolerant equality.
//
// All kernels allocate fresh results and never mutate their operands.
// Errors are plain sentinels wrapped with an operation tag, so callers
// match them with errors.Is.
//
// Complexity:
//
//	At/Set: O(1). Transpose, MatVec, TMatVec: O(r*c). Mul: O(r*n*c). Gram: O(r*c²).
package matrix
