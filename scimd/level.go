package scimd

import "unsafe"

// Level identifies the instruction-set tier compiled into this binary.
type Level int

const (
	// LevelScalar is the pure Go fallback, one lane per vector.
	LevelScalar Level = iota

	// LevelSSE uses 128-bit x86 registers.
	LevelSSE

	// LevelAVX uses 256-bit x86 registers (AVX2 and FMA, GOAMD64=v3).
	LevelAVX

	// LevelAVX512 uses 512-bit x86 registers (GOAMD64=v4).
	LevelAVX512
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE:
		return "sse"
	case LevelAVX:
		return "avx"
	case LevelAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// Width returns the register width of the level in bytes. The scalar tier
// reports the size of a float64, its widest lane.
func (l Level) Width() int {
	switch l {
	case LevelSSE:
		return 16
	case LevelAVX:
		return 32
	case LevelAVX512:
		return 64
	default:
		return 8
	}
}

// ParseLevel maps a level name as printed by String back to its Level.
func ParseLevel(s string) (Level, bool) {
	for l := LevelScalar; l <= LevelAVX512; l++ {
		if l.String() == s {
			return l, true
		}
	}
	return LevelScalar, false
}

// CurrentLevel returns the tier selected at compile time.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the register width in bytes of the compiled tier.
func CurrentWidth() int {
	return currentLevel.Width()
}

// CurrentName returns the name of the compiled tier, e.g. "avx" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// LanesOf returns the number of T lanes in a register of the compiled tier.
//
//   - avx512: float32 16, float64 8
//   - avx:    float32 8,  float64 4
//   - sse:    float32 4,  float64 2
//   - scalar: 1
func LanesOf[T Floats]() int {
	if currentLevel == LevelScalar {
		return 1
	}
	var dummy T
	return CurrentWidth() / int(unsafe.Sizeof(dummy))
}
