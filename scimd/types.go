// Package scimd provides a SIMD floating-point value type whose backend is
// fixed at compile time.
//
// A [Vec] holds one native vector register of float32 or float64 lanes and
// offers scalar-like arithmetic, comparisons that produce a [Mask], blending
// and a fast reciprocal square root. Exactly one backend is compiled into a
// binary, selected from build constraints in priority order:
//
//	amd64.v4 + GOEXPERIMENT=simd   512-bit (AVX-512)
//	amd64.v3 + GOEXPERIMENT=simd   256-bit (AVX2)
//	amd64    + GOEXPERIMENT=simd   128-bit
//	otherwise                      scalar, one lane
//
// The build tags scimd_noavx512, scimd_noavx and scimd_nosse disable a tier
// and fall through to the next narrower one.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-scimd/scimd"
//
//	x := scimd.LoadFloat32(xs)
//	y := scimd.NewFloat32(17)
//	r := x.DivSqrt(scimd.Sqrt(y)) // fast x * rsqrt(y)
//	if scimd.All(x.Less(y)) {
//		r.Store(out)
//	}
//
// Masks are full-width lane patterns (all ones or all zeros), so they combine
// with the same bitwise primitives as values and feed [Vec.Blend] directly.
//
// Comparison NaN handling: every comparison is ordered, so a NaN operand
// yields false. Less and Greater are specified as signaling comparisons and
// Equal as a quiet one; Go exposes no floating-point exception state, so the
// two kinds produce identical results.
package scimd

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// MaxLanes is the largest lane count of any backend (16 float32 lanes in a
// 512-bit register). Lane-sized scratch buffers use it as their length.
const MaxLanes = 16
