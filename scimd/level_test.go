package scimd

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		name  string
		width int
	}{
		{LevelScalar, "scalar", 8},
		{LevelSSE, "sse", 16},
		{LevelAVX, "avx", 32},
		{LevelAVX512, "avx512", 64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.level.String())
		assert.Equal(t, tt.width, tt.level.Width())
		l, ok := ParseLevel(tt.name)
		assert.True(t, ok)
		assert.Equal(t, tt.level, l)
	}
	assert.Equal(t, "unknown", Level(99).String())
	_, ok := ParseLevel("neon")
	assert.False(t, ok)
}

func TestCompiledLanes(t *testing.T) {
	assert.Equal(t, Lanes32, LanesOf[float32]())
	assert.Equal(t, Lanes64, LanesOf[float64]())
	assert.Equal(t, Lanes32, Reg32{}.Lanes())
	assert.Equal(t, Lanes64, Reg64{}.Lanes())
	assert.LessOrEqual(t, Lanes32, MaxLanes)

	if CurrentLevel() != LevelScalar {
		assert.Equal(t, CurrentWidth(), Lanes32*4)
		assert.Equal(t, CurrentWidth(), Lanes64*8)
		assert.Equal(t, CurrentWidth(), int(unsafe.Sizeof(Reg32{})))
	}
}

func TestCategory(t *testing.T) {
	var c32 Category[float32]
	var c64 Category[float64]
	assert.Equal(t, CurrentLevel(), c32.Level())
	assert.Equal(t, Lanes32, c32.Lanes())
	assert.Equal(t, Lanes64, c64.Lanes())
	assert.Equal(t, CurrentName()+"/float32", c32.Name())
	assert.Equal(t, CurrentName()+"/float64", c64.Name())
}

func TestTags(t *testing.T) {
	tags := []Tag{
		TagScalar[float32]{}, TagScalar[float64]{},
		Tag128[float32]{}, Tag128[float64]{},
		Tag256[float32]{}, Tag256[float64]{},
		Tag512[float32]{}, Tag512[float64]{},
	}
	wantLanes := []int{1, 1, 4, 2, 8, 4, 16, 8}
	wantNames := []string{
		"scalar/float32", "scalar/float64",
		"sse/float32", "sse/float64",
		"avx/float32", "avx/float64",
		"avx512/float32", "avx512/float64",
	}
	for i, tag := range tags {
		assert.Equal(t, wantLanes[i], tag.Lanes(), tag.Name())
		assert.Equal(t, wantNames[i], tag.Name())
		if tag.Level() != LevelScalar {
			assert.Equal(t, tag.Level().Width(), tag.Width())
		}
	}
}
