//go:build amd64 && goexperiment.simd && amd64.v4 && !scimd_noavx512

package scimd

import "github.com/ajroetker/go-scimd/internal/backend/x86"

type (
	reg32 = x86.Float32x16
	reg64 = x86.Float64x8
)

type category[T Floats] = Tag512[T]

const (
	currentLevel = LevelAVX512

	// Lanes32 is the number of float32 lanes in a Float32.
	Lanes32 = 16
	// Lanes64 is the number of float64 lanes in a Float64.
	Lanes64 = 8
)
