package scimd

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// apply runs op over whole slices, one vector at a time, padding the tail
// with ones so that Div and Sqrt stay finite in the unused lanes.
func apply[T Floats, R Register[T, R]](op func(a, b Vec[T, R]) Vec[T, R], x, y []T) []T {
	out := make([]T, len(x))
	ProcessWithTail[T, R](len(x),
		func(offset int) {
			var a, b Vec[T, R]
			a.Load(x[offset:])
			b.Load(y[offset:])
			op(a, b).Store(out[offset:])
		},
		func(offset, count int) {
			var a, b Vec[T, R]
			id := func(v T) T { return v }
			Pack(&a, x[offset:], id, 1)
			Pack(&b, y[offset:], id, 1)
			Unpack(op(a, b), out[offset:], func(p *T, v T) { *p = v })
		},
	)
	return out
}

func randomOperands[T Floats](n int) (x, y []T) {
	rng := rand.New(rand.NewPCG(1, 2))
	x, y = make([]T, n), make([]T, n)
	for i := range n {
		x[i] = T(rng.Float64()*200 - 100)
		y[i] = T(rng.Float64()*100 + 0.01)
	}
	return x, y
}

func compareSlices[T Floats](t *testing.T, name string, got, want []T, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d elements, want %d", name, len(got), len(want))
	}
	for i := range got {
		if e := relErr(float64(got[i]), float64(want[i])); e > tol {
			t.Errorf("%s: element %d: got %v, want %v", name, i, got[i], want[i])
			return
		}
	}
}

// elementwise is the plain Go loop the vector results must match bit for bit.
func elementwise[T Floats](x, y []T, f func(a, b T) T) []T {
	out := make([]T, len(x))
	for i := range x {
		out[i] = f(x[i], y[i])
	}
	return out
}

func TestBulkMatchesLoop(t *testing.T) {
	runBackends(t,
		testBulkLoop[float32, Reg32], testBulkLoop[float64, Reg64],
		testBulkLoop[float32, ScalarReg32], testBulkLoop[float64, ScalarReg64])
}

func testBulkLoop[T Floats, R Register[T, R]](t *testing.T) {
	x, y := randomOperands[T](1003)
	sqrtOp := func(a, _ Vec[T, R]) Vec[T, R] { return Sqrt(a.Mul(a)).Value() }

	compareSlices(t, "Add", apply(Vec[T, R].Add, x, y), elementwise(x, y, func(a, b T) T { return a + b }), 0)
	compareSlices(t, "Sub", apply(Vec[T, R].Sub, x, y), elementwise(x, y, func(a, b T) T { return a - b }), 0)
	compareSlices(t, "Mul", apply(Vec[T, R].Mul, x, y), elementwise(x, y, func(a, b T) T { return a * b }), 0)
	compareSlices(t, "Div", apply(Vec[T, R].Div, x, y), elementwise(x, y, func(a, b T) T { return a / b }), 0)
	compareSlices(t, "Sqrt", apply(sqrtOp, x, y), elementwise(x, y, func(a, _ T) T {
		sq := a * a
		return T(math.Sqrt(float64(sq)))
	}), 0)
}

// vek32 takes approximate division and square root paths on AVX2, so only
// Add, Sub and Mul are held to exact agreement.
func TestBulkMatchesVek32(t *testing.T) {
	x, y := randomOperands[float32](1003)
	sqrtOp := func(a, _ Float32) Float32 { return Sqrt(a.Mul(a)).Value() }
	absX := make([]float32, len(x))
	for i, v := range x {
		absX[i] = max(v, -v)
	}

	compareSlices(t, "Add", apply(Float32.Add, x, y), vek32.Add(x, y), 0)
	compareSlices(t, "Sub", apply(Float32.Sub, x, y), vek32.Sub(x, y), 0)
	compareSlices(t, "Mul", apply(Float32.Mul, x, y), vek32.Mul(x, y), 0)
	compareSlices(t, "Div", apply(Float32.Div, x, y), vek32.Div(x, y), 5e-7)
	compareSlices(t, "Sqrt", apply(sqrtOp, x, y), vek32.Sqrt(vek32.Mul(x, x)), 5e-7)
	compareSlices(t, "Sqrt(x*x) == |x|", apply(sqrtOp, x, y), absX, 2e-7)

	scalarAdd := apply(Scalar32.Add, x, y)
	compareSlices(t, "scalar Add", scalarAdd, vek32.Add(x, y), 0)
}

func TestBulkMatchesVek(t *testing.T) {
	x, y := randomOperands[float64](1001)
	rsqrtMul := func(a, b Float64) Float64 { return a.DivSqrt(Sqrt(b)) }

	compareSlices(t, "Add", apply(Float64.Add, x, y), vek.Add(x, y), 0)
	compareSlices(t, "Sub", apply(Float64.Sub, x, y), vek.Sub(x, y), 0)
	compareSlices(t, "Mul", apply(Float64.Mul, x, y), vek.Mul(x, y), 0)
	compareSlices(t, "Div", apply(Float64.Div, x, y), vek.Div(x, y), 1e-15)
	compareSlices(t, "x/sqrt(y)", apply(rsqrtMul, x, y), vek.Div(x, vek.Sqrt(y)), 2*rsqrtTol[float64]())

	scalarDiv := apply(Scalar64.Div, x, y)
	compareSlices(t, "scalar Div", scalarDiv, vek.Div(x, y), 1e-15)
}

func BenchmarkBulkAdd(b *testing.B) {
	x, y := randomOperands[float32](4096)
	b.Run("scimd", func(b *testing.B) {
		for b.Loop() {
			_ = apply(Float32.Add, x, y)
		}
	})
	b.Run("vek32", func(b *testing.B) {
		for b.Loop() {
			_ = vek32.Add(x, y)
		}
	})
}
