//go:build !(amd64 && goexperiment.simd) || (scimd_nosse && !(amd64.v3 && !scimd_noavx) && !(amd64.v4 && !scimd_noavx512))

package scimd

type (
	reg32 = ScalarReg32
	reg64 = ScalarReg64
)

type category[T Floats] = TagScalar[T]

const (
	currentLevel = LevelScalar

	// Lanes32 is the number of float32 lanes in a Float32.
	Lanes32 = 1
	// Lanes64 is the number of float64 lanes in a Float64.
	Lanes64 = 1
)
