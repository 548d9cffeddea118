// Copyright 2025 go-scimd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scimd

import "unsafe"

// Tag is a zero-sized marker for one (element type, instruction set) pair.
type Tag interface {
	// Width returns the register width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("sse/float32", "avx512/float64", etc.)
	Name() string

	// Level returns the instruction-set tier of the tag.
	Level() Level

	// Lanes returns the number of elements in one register.
	Lanes() int
}

// Category is the tag of the tier compiled into this binary. Exactly one of
// TagScalar, Tag128, Tag256 and Tag512 is aliased per build.
//
// Usage:
//
//	var tag scimd.Category[float64]
//	fmt.Println(tag.Name(), tag.Lanes())
type Category[T Floats] = category[T]

// TagScalar marks the one-lane pure Go backend.
type TagScalar[T Floats] struct{}

// Width returns the size of one element.
func (TagScalar[T]) Width() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// Name returns "scalar/" followed by the element type.
func (TagScalar[T]) Name() string {
	return "scalar/" + elemName[T]()
}

// Level returns LevelScalar.
func (TagScalar[T]) Level() Level { return LevelScalar }

// Lanes returns 1.
func (TagScalar[T]) Lanes() int { return 1 }

// Tag128 marks 128-bit registers.
type Tag128[T Floats] struct{}

// Width returns 16 bytes (128 bits).
func (Tag128[T]) Width() int {
	return 16
}

// Name returns "sse/" followed by the element type.
func (Tag128[T]) Name() string {
	return "sse/" + elemName[T]()
}

// Level returns LevelSSE.
func (Tag128[T]) Level() Level { return LevelSSE }

// Lanes returns the number of T values that fit in 128 bits.
func (t Tag128[T]) Lanes() int {
	var dummy T
	return 16 / int(unsafe.Sizeof(dummy))
}

// Tag256 marks 256-bit registers.
type Tag256[T Floats] struct{}

// Width returns 32 bytes (256 bits).
func (Tag256[T]) Width() int {
	return 32
}

// Name returns "avx/" followed by the element type.
func (Tag256[T]) Name() string {
	return "avx/" + elemName[T]()
}

// Level returns LevelAVX.
func (Tag256[T]) Level() Level { return LevelAVX }

// Lanes returns the number of T values that fit in 256 bits.
func (t Tag256[T]) Lanes() int {
	var dummy T
	return 32 / int(unsafe.Sizeof(dummy))
}

// Tag512 marks 512-bit registers.
type Tag512[T Floats] struct{}

// Width returns 64 bytes (512 bits).
func (Tag512[T]) Width() int {
	return 64
}

// Name returns "avx512/" followed by the element type.
func (Tag512[T]) Name() string {
	return "avx512/" + elemName[T]()
}

// Level returns LevelAVX512.
func (Tag512[T]) Level() Level { return LevelAVX512 }

// Lanes returns the number of T values that fit in 512 bits.
func (t Tag512[T]) Lanes() int {
	var dummy T
	return 64 / int(unsafe.Sizeof(dummy))
}

func elemName[T Floats]() string {
	var dummy T
	if unsafe.Sizeof(dummy) == 4 {
		return "float32"
	}
	return "float64"
}
