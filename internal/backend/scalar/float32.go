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

package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Float32 is a one-lane float32 register.
type Float32 struct {
	v float32
}

// true32 is the float32 whose bits are all set.
var true32 = math.Float32frombits(math.MaxUint32)

func mask32(b bool) Float32 {
	if b {
		return Float32{true32}
	}
	return Float32{}
}

func (r Float32) bits() uint32 { return math.Float32bits(r.v) }

func fromBits32(b uint32) Float32 { return Float32{math.Float32frombits(b)} }

func (Float32) Lanes() int { return 1 }

func (Float32) Zero() Float32 { return Float32{} }

func (Float32) Set1(x float32) Float32 { return Float32{x} }

// Setr builds a register from its single lane.
func (Float32) Setr(lanes [1]float32) Float32 { return Float32{lanes[0]} }

func (Float32) Load(src []float32) Float32 { return Float32{src[0]} }

func (Float32) LoadAligned(p *float32) Float32 { return Float32{*p} }

func (r Float32) Store(dst []float32) { dst[0] = r.v }

func (r Float32) StoreAligned(p *float32) { *p = r.v }

func (r Float32) Neg() Float32 { return Float32{-r.v} }

func (r Float32) Add(y Float32) Float32 { return Float32{r.v + y.v} }
func (r Float32) Sub(y Float32) Float32 { return Float32{r.v - y.v} }
func (r Float32) Mul(y Float32) Float32 { return Float32{r.v * y.v} }
func (r Float32) Div(y Float32) Float32 { return Float32{r.v / y.v} }

func (r Float32) Min(y Float32) Float32 { return Float32{min(r.v, y.v)} }
func (r Float32) Max(y Float32) Float32 { return Float32{max(r.v, y.v)} }

func (r Float32) Sqrt() Float32 { return Float32{math32.Sqrt(r.v)} }

// RSqrt returns the correctly rounded sqrt followed by an IEEE divide.
func (r Float32) RSqrt() Float32 { return Float32{1 / math32.Sqrt(r.v)} }

func (r Float32) Less(y Float32) Float32         { return mask32(r.v < y.v) }
func (r Float32) Greater(y Float32) Float32      { return mask32(r.v > y.v) }
func (r Float32) LessEqual(y Float32) Float32    { return mask32(r.v <= y.v) }
func (r Float32) GreaterEqual(y Float32) Float32 { return mask32(r.v >= y.v) }
func (r Float32) Equal(y Float32) Float32        { return mask32(r.v == y.v) }

func (r Float32) And(y Float32) Float32    { return fromBits32(r.bits() & y.bits()) }
func (r Float32) Or(y Float32) Float32     { return fromBits32(r.bits() | y.bits()) }
func (r Float32) Xor(y Float32) Float32    { return fromBits32(r.bits() ^ y.bits()) }
func (r Float32) AndNot(y Float32) Float32 { return fromBits32(r.bits() &^ y.bits()) }

// Blend returns y when the sign bit of mask is set, like the x86 blendv
// instructions, and r otherwise.
func (r Float32) Blend(y, mask Float32) Float32 {
	if mask.bits()>>31 != 0 {
		return y
	}
	return r
}

func (r Float32) MoveMask() uint64 { return uint64(r.bits() >> 31) }

func (r Float32) All() bool  { return r.MoveMask() == 1 }
func (r Float32) None() bool { return r.MoveMask() == 0 }
