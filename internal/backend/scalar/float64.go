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

import "math"

// Float64 is a one-lane float64 register.
type Float64 struct {
	v float64
}

// true64 is the float64 whose bits are all set.
var true64 = math.Float64frombits(math.MaxUint64)

func mask64(b bool) Float64 {
	if b {
		return Float64{true64}
	}
	return Float64{}
}

func (r Float64) bits() uint64 { return math.Float64bits(r.v) }

func fromBits64(b uint64) Float64 { return Float64{math.Float64frombits(b)} }

func (Float64) Lanes() int { return 1 }

func (Float64) Zero() Float64 { return Float64{} }

func (Float64) Set1(x float64) Float64 { return Float64{x} }

// Setr builds a register from its single lane.
func (Float64) Setr(lanes [1]float64) Float64 { return Float64{lanes[0]} }

func (Float64) Load(src []float64) Float64 { return Float64{src[0]} }

func (Float64) LoadAligned(p *float64) Float64 { return Float64{*p} }

func (r Float64) Store(dst []float64) { dst[0] = r.v }

func (r Float64) StoreAligned(p *float64) { *p = r.v }

func (r Float64) Neg() Float64 { return Float64{-r.v} }

func (r Float64) Add(y Float64) Float64 { return Float64{r.v + y.v} }
func (r Float64) Sub(y Float64) Float64 { return Float64{r.v - y.v} }
func (r Float64) Mul(y Float64) Float64 { return Float64{r.v * y.v} }
func (r Float64) Div(y Float64) Float64 { return Float64{r.v / y.v} }

func (r Float64) Min(y Float64) Float64 { return Float64{min(r.v, y.v)} }
func (r Float64) Max(y Float64) Float64 { return Float64{max(r.v, y.v)} }

func (r Float64) Sqrt() Float64 { return Float64{math.Sqrt(r.v)} }

// RSqrt returns the correctly rounded sqrt followed by an IEEE divide.
func (r Float64) RSqrt() Float64 { return Float64{1 / math.Sqrt(r.v)} }

func (r Float64) Less(y Float64) Float64         { return mask64(r.v < y.v) }
func (r Float64) Greater(y Float64) Float64      { return mask64(r.v > y.v) }
func (r Float64) LessEqual(y Float64) Float64    { return mask64(r.v <= y.v) }
func (r Float64) GreaterEqual(y Float64) Float64 { return mask64(r.v >= y.v) }
func (r Float64) Equal(y Float64) Float64        { return mask64(r.v == y.v) }

func (r Float64) And(y Float64) Float64    { return fromBits64(r.bits() & y.bits()) }
func (r Float64) Or(y Float64) Float64     { return fromBits64(r.bits() | y.bits()) }
func (r Float64) Xor(y Float64) Float64    { return fromBits64(r.bits() ^ y.bits()) }
func (r Float64) AndNot(y Float64) Float64 { return fromBits64(r.bits() &^ y.bits()) }

// Blend returns y when the sign bit of mask is set, like the x86 blendv
// instructions, and r otherwise.
func (r Float64) Blend(y, mask Float64) Float64 {
	if mask.bits()>>63 != 0 {
		return y
	}
	return r
}

func (r Float64) MoveMask() uint64 { return r.bits() >> 63 }

func (r Float64) All() bool  { return r.MoveMask() == 1 }
func (r Float64) None() bool { return r.MoveMask() == 0 }
