package scimd

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskAlgebra(t *testing.T) {
	runBackends(t,
		testMaskAlgebra[float32, Reg32], testMaskAlgebra[float64, Reg64],
		testMaskAlgebra[float32, ScalarReg32], testMaskAlgebra[float64, ScalarReg64])
}

func testMaskAlgebra[T Floats, R Register[T, R]](t *testing.T) {
	idx := LaneIndex[T, R]()
	n := idx.Lanes()
	full := uint64(1)<<uint(n) - 1

	for k := 0; k <= n; k++ {
		m := idx.LessScalar(T(k)) // lanes [0, k)
		want := uint64(1)<<uint(k) - 1

		assert.Equal(t, want, m.Bits(), "k=%d", k)
		assert.Equal(t, k, m.CountTrue(), "k=%d", k)
		assert.Equal(t, n-k, m.Not().CountTrue(), "k=%d", k)
		assert.Equal(t, full&^want, m.Not().Bits(), "k=%d", k)

		assert.Equal(t, Any(m), !None(m), "any == !none, k=%d", k)
		assert.Equal(t, All(m), !Any(m.Not()), "all == !any(!m), k=%d", k)
		assert.Equal(t, k == n, All(m), "k=%d", k)
		assert.Equal(t, k == 0, None(m), "k=%d", k)

		for j := 0; j <= n; j++ {
			o := idx.GreaterEqualScalar(T(j)) // lanes [j, n)
			ob := o.Bits()
			assert.Equal(t, want&ob, m.And(o).Bits(), "And k=%d j=%d", k, j)
			assert.Equal(t, want|ob, m.Or(o).Bits(), "Or k=%d j=%d", k, j)
			assert.Equal(t, want^ob, m.Xor(o).Bits(), "Xor k=%d j=%d", k, j)
			assert.Equal(t, want&^ob, m.AndNot(o).Bits(), "AndNot k=%d j=%d", k, j)
		}

		for i := range n {
			assert.Equal(t, i < k, m.GetBit(i), "GetBit(%d) k=%d", i, k)
		}
		assert.False(t, m.GetBit(-1))
		assert.False(t, m.GetBit(n))
	}

	assert.True(t, TrueMask[T, R]().All())
	assert.Equal(t, n, bits.OnesCount64(TrueMask[T, R]().Bits()))
}

// Comparison results must be canonical all-ones lanes so that they survive
// bitwise combination with values.
func TestMaskCanonical(t *testing.T) {
	runBackends(t,
		testMaskCanonical[float32, Reg32], testMaskCanonical[float64, Reg64],
		testMaskCanonical[float32, ScalarReg32], testMaskCanonical[float64, ScalarReg64])
}

func testMaskCanonical[T Floats, R Register[T, R]](t *testing.T) {
	one := Splat[T, R](1)
	m := one.Less(Splat[T, R](2))
	ones := FromRaw[T](m.Raw())
	// 1<<64 wraps to zero, so this is all ones for float64 too.
	var allBits uint64 = 1<<(8*uint(sizeOf[T]())) - 1
	for i := range ones.Lanes() {
		assert.Equal(t, allBits, bitsOf(ones.Lane(i)), "lane %d", i)
	}

	// value & mask keeps the value where true
	kept := FromRaw[T](one.Raw().And(m.Raw()))
	assert.Equal(t, one.Data(), kept.Data())
	cleared := FromRaw[T](one.Raw().And(m.Not().Raw()))
	assert.Equal(t, Splat[T, R](0).Data(), cleared.Data())
}

func sizeOf[T Floats]() int {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return 4
	}
	return 8
}

func TestBlendAllMasks(t *testing.T) {
	runBackends(t,
		testBlend[float32, Reg32], testBlend[float64, Reg64],
		testBlend[float32, ScalarReg32], testBlend[float64, ScalarReg64])
}

func testBlend[T Floats, R Register[T, R]](t *testing.T) {
	base := LaneIndex[T, R]()
	other := base.AddScalar(100)
	n := base.Lanes()

	var patterns []uint64
	if n <= 8 {
		for b := range uint64(1) << uint(n) {
			patterns = append(patterns, b)
		}
	} else {
		// 16 lanes: a deterministic sample.
		patterns = []uint64{0, 0xffff, 0xaaaa, 0x5555, 0x00ff, 0xff00, 0x8001, 0x7ffe}
		for b := uint64(1); b < 1<<16; b *= 3 {
			patterns = append(patterns, b)
		}
	}

	for _, b := range patterns {
		m := maskFromBits[T, R](b)
		if m.Bits() != b {
			t.Fatalf("maskFromBits(%#x): got %#x", b, m.Bits())
		}

		v := base
		got := v.Blend(other, m)
		sel := IfThenElse(m, other, base)
		for i := range n {
			want := T(i)
			if b&(1<<uint(i)) != 0 {
				want += 100
			}
			if got.Lane(i) != want {
				t.Errorf("Blend(mask=%#x): lane %d: got %v, want %v", b, i, got.Lane(i), want)
			}
			if v.Lane(i) != want {
				t.Errorf("Blend(mask=%#x) receiver: lane %d: got %v, want %v", b, i, v.Lane(i), want)
			}
			if sel.Lane(i) != want {
				t.Errorf("IfThenElse(mask=%#x): lane %d: got %v, want %v", b, i, sel.Lane(i), want)
			}
		}
	}
}
