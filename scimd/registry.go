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

import "github.com/ajroetker/go-scimd/internal/backend/scalar"

// Native register types of the compiled tier. Generic kernels are written
// against Vec[T, R] and instantiated with these.
type (
	Reg32 = reg32
	Reg64 = reg64
)

// One-lane registers, available in every build.
type (
	ScalarReg32 = scalar.Float32
	ScalarReg64 = scalar.Float64
)

// Vectors and masks of the compiled tier.
type (
	Float32 = Vec[float32, Reg32]
	Float64 = Vec[float64, Reg64]
	Mask32  = Mask[float32, Reg32]
	Mask64  = Mask[float64, Reg64]
)

// Scalar vectors. They share every method with Float32 and Float64, which
// makes them the reference instantiation for generic kernels.
type (
	Scalar32     = Vec[float32, ScalarReg32]
	Scalar64     = Vec[float64, ScalarReg64]
	ScalarMask32 = Mask[float32, ScalarReg32]
	ScalarMask64 = Mask[float64, ScalarReg64]
)

var (
	_ Register[float32, Reg32]       = Reg32{}
	_ Register[float64, Reg64]       = Reg64{}
	_ Register[float32, ScalarReg32] = ScalarReg32{}
	_ Register[float64, ScalarReg64] = ScalarReg64{}
)

// NewFloat32 broadcasts x to every lane.
func NewFloat32(x float32) Float32 { return Splat[float32, Reg32](x) }

// NewFloat64 broadcasts x to every lane.
func NewFloat64(x float64) Float64 { return Splat[float64, Reg64](x) }

// LoadFloat32 reads Lanes32 elements from src.
func LoadFloat32(src []float32) Float32 {
	var v Float32
	v.Load(src)
	return v
}

// LoadFloat64 reads Lanes64 elements from src.
func LoadFloat64(src []float64) Float64 {
	var v Float64
	v.Load(src)
	return v
}

// SetrFloat32 builds a vector from lanes in order. The array length is the
// compiled lane count, so passing the wrong number of values does not compile.
func SetrFloat32(lanes [Lanes32]float32) Float32 {
	return FromRaw[float32](Reg32{}.Setr(lanes))
}

// SetrFloat64 builds a vector from lanes in order.
func SetrFloat64(lanes [Lanes64]float64) Float64 {
	return FromRaw[float64](Reg64{}.Setr(lanes))
}
