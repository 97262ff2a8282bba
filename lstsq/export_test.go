// SPDX-License-Identifier: MIT
package lstsq

// Exported aliases of the per-argument predicates, so that each one can be
// tested on its own from package lstsq_test.
var (
	CheckDim          = checkDim
	CheckCoefficients = checkCoefficients
	CheckVector       = checkVector
	Linspace          = linspace
	AsInt             = asInt
	AsVector          = asVector
	AsMatrix          = asMatrix
)
