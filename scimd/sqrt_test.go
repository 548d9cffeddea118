package scimd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var rsqrtInputs = []float64{1e-6, 1e-3, 0.25, 0.5, 1, 2, 3, 17, 1234.5, 1e6, 3.4e30}

func TestRSqrtTolerance(t *testing.T) {
	runBackends(t,
		testRSqrt[float32, Reg32], testRSqrt[float64, Reg64],
		testRSqrt[float32, ScalarReg32], testRSqrt[float64, ScalarReg64])
}

func testRSqrt[T Floats, R Register[T, R]](t *testing.T) {
	tol := rsqrtTol[T]()
	for _, in := range rsqrtInputs {
		x := T(in)
		want := 1 / math.Sqrt(float64(x))
		v := Splat[T, R](x)

		fast := RSqrt(v)
		exact := ScalarDiv(1, Sqrt(v).Value())
		for i := range v.Lanes() {
			if e := relErr(float64(fast.Lane(i)), want); e > tol {
				t.Errorf("RSqrt(%v): lane %d: got %v, want %v (rel err %.3g > %.3g)", x, i, fast.Lane(i), want, e, tol)
			}
			if e := relErr(float64(exact.Lane(i)), want); e > tol {
				t.Errorf("1/Sqrt(%v): lane %d: got %v, want %v (rel err %.3g)", x, i, exact.Lane(i), want, e)
			}
		}
	}
}

func TestRSqrtScalarFullRange(t *testing.T) {
	for _, x := range []float64{1e-300, 1e-40, 1e40, 1e300} {
		got := RSqrt(Splat[float64, ScalarReg64](x)).Lane(0)
		assert.InEpsilon(t, 1/math.Sqrt(x), got, 1e-15, "RSqrt(%g)", x)
	}
}

func TestSqrtIsExact(t *testing.T) {
	runBackends(t,
		testSqrtExact[float32, Reg32], testSqrtExact[float64, Reg64],
		testSqrtExact[float32, ScalarReg32], testSqrtExact[float64, ScalarReg64])
}

func testSqrtExact[T Floats, R Register[T, R]](t *testing.T) {
	for _, in := range rsqrtInputs {
		x := T(in)
		// Rounding the float64 root to float32 is correctly rounded for sqrt.
		want := T(math.Sqrt(float64(x)))
		got := Sqrt(Splat[T, R](x)).Value()
		for i := range got.Lanes() {
			if got.Lane(i) != want {
				t.Errorf("Sqrt(%v).Value(): lane %d: got %v, want %v", x, i, got.Lane(i), want)
			}
		}
	}
}

func TestDivSqrtUsesFastPath(t *testing.T) {
	runBackends(t,
		testDivSqrt[float32, Reg32], testDivSqrt[float64, Reg64],
		testDivSqrt[float32, ScalarReg32], testDivSqrt[float64, ScalarReg64])
}

func testDivSqrt[T Floats, R Register[T, R]](t *testing.T) {
	tol := rsqrtTol[T]()
	for _, p := range operandPairs {
		x, y := T(p[0]), T(math.Abs(p[1]))
		xv, yv := Splat[T, R](x), Splat[T, R](y)

		proxy := xv.DivSqrt(Sqrt(yv))
		viaRSqrt := xv.Mul(RSqrt(yv))
		assert.Equal(t, viaRSqrt.Data(), proxy.Data(), "x / sqrt(y) rewrites to x * rsqrt(y)")
		assert.Equal(t, viaRSqrt.Data(), ScalarDivSqrt(x, Sqrt(yv)).Data())

		want := float64(x) / math.Sqrt(float64(y))
		for i := range proxy.Lanes() {
			// one extra rounding from the multiply
			if e := relErr(float64(proxy.Lane(i)), want); e > 2*tol {
				t.Errorf("DivSqrt(%v, %v): lane %d: got %v, want %v (rel err %.3g)", x, y, i, proxy.Lane(i), want, e)
			}
		}
	}
}

// The x = 3, y = 17 scenario, in both precisions and on every backend.
func TestScenario3And17(t *testing.T) {
	runBackends(t,
		testScenario[float32, Reg32], testScenario[float64, Reg64],
		testScenario[float32, ScalarReg32], testScenario[float64, ScalarReg64])
}

func testScenario[T Floats, R Register[T, R]](t *testing.T) {
	x, y := Splat[T, R](3), Splat[T, R](17)
	tol := rsqrtTol[T]()

	exact := []struct {
		name string
		got  Vec[T, R]
		want T
	}{
		{"x+y", x.Add(y), 20},
		{"x-y", x.Sub(y), -14},
		{"x*y", x.Mul(y), 51},
		{"x/y", x.Div(y), T(3) / T(17)},
		{"sqrt(y)", Sqrt(y).Value(), T(math.Sqrt(17))},
	}
	for _, c := range exact {
		for i := range c.got.Lanes() {
			assert.Equal(t, c.want, c.got.Lane(i), "%s lane %d", c.name, i)
		}
	}

	approx := []struct {
		name string
		got  Vec[T, R]
		want float64
	}{
		{"x/y", x.Div(y), 0.17647058823529413},
		{"sqrt(y)", Sqrt(y).Value(), 4.123105625617661},
		{"x/sqrt(y)", x.DivSqrt(Sqrt(y)), 0.7276068751089989},
		{"1/sqrt(y)", RSqrt(y), 0.24253562503633297},
		{"1/sqrt(y) exact", ScalarDiv(1, Sqrt(y).Value()), 0.24253562503633297},
	}
	for _, c := range approx {
		for i := range c.got.Lanes() {
			assert.InEpsilon(t, c.want, float64(c.got.Lane(i)), 2*tol, "%s lane %d", c.name, i)
		}
	}
}

func BenchmarkRSqrt(b *testing.B) {
	v := NewFloat32(17)
	var sink Float32
	for b.Loop() {
		sink = RSqrt(v)
	}
	_ = sink
}

func BenchmarkDivSqrt(b *testing.B) {
	x, y := NewFloat64(3), NewFloat64(17)
	var sink Float64
	for b.Loop() {
		sink = x.DivSqrt(Sqrt(y))
	}
	_ = sink
}

func BenchmarkDivThenSqrt(b *testing.B) {
	x, y := NewFloat64(3), NewFloat64(17)
	var sink Float64
	for b.Loop() {
		sink = x.Div(Sqrt(y).Value())
	}
	_ = sink
}
