//go:build amd64 && goexperiment.simd && !scimd_nosse && !(amd64.v3 && !scimd_noavx) && !(amd64.v4 && !scimd_noavx512)

package scimd

import "github.com/ajroetker/go-scimd/internal/backend/x86"

type (
	reg32 = x86.Float32x4
	reg64 = x86.Float64x2
)

type category[T Floats] = Tag128[T]

const (
	currentLevel = LevelSSE

	// Lanes32 is the number of float32 lanes in a Float32.
	Lanes32 = 4
	// Lanes64 is the number of float64 lanes in a Float64.
	Lanes64 = 2
)
