package scimd

import (
	"math"
	"testing"
	"unsafe"
)

// rsqrtTol is the relative error the tests accept from RSqrt: the refinement
// bound plus rounding of the last steps.
func rsqrtTol[T Floats]() float64 {
	var dummy T
	if unsafe.Sizeof(dummy) == 4 {
		return 5e-7
	}
	return 1e-15
}

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func bitsOf[T Floats](x T) uint64 {
	switch v := any(x).(type) {
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	}
	panic("unreachable")
}

// maskFromBits builds a mask whose lane i is bit i of b.
func maskFromBits[T Floats, R Register[T, R]](b uint64) Mask[T, R] {
	var buf [MaxLanes]T
	for i := range buf {
		if b&(1<<uint(i)) != 0 {
			buf[i] = 1
		}
	}
	var v Vec[T, R]
	v.Load(buf[:])
	return v.GreaterScalar(0)
}

// runBackends runs one generic test body per backend: the compiled tier and
// the scalar tier, each in both precisions.
func runBackends(t *testing.T, f32, f64, s32, s64 func(*testing.T)) {
	t.Helper()
	t.Run(CurrentName()+"/float32", f32)
	t.Run(CurrentName()+"/float64", f64)
	t.Run("scalar/float32", s32)
	t.Run("scalar/float64", s64)
}
