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

// LaneIndex returns the vector whose lane i holds i.
func LaneIndex[T Floats, R Register[T, R]]() Vec[T, R] {
	var buf [MaxLanes]T
	for i := range buf {
		buf[i] = T(i)
	}
	var v Vec[T, R]
	v.Load(buf[:])
	return v
}

// TailMask creates a mask with the first count lanes true. It is the mask
// that pairs with a Pack of count remaining records:
//
//	rest := scimd.Pack(&x, ps, getX)
//	valid := scimd.TailMask[float32, scimd.Reg32](len(ps) - len(rest))
//	sum = sum.Add(scimd.IfThenElse(valid, x, zero))
func TailMask[T Floats, R Register[T, R]](count int) Mask[T, R] {
	return LaneIndex[T, R]().LessScalar(T(count))
}

// ProcessWithTail calls fullFn(offset) for each whole vector in a range of
// size elements, then tailFn(offset, count) once for the remainder if size
// is not a multiple of the lane count of R.
//
// Example:
//
//	scimd.ProcessWithTail[float32, scimd.Reg32](len(data),
//	    func(offset int) {
//	        v := scimd.LoadFloat32(data[offset:])
//	        v.Mul(v).Store(out[offset:])
//	    },
//	    func(offset, count int) {
//	        var v scimd.Float32
//	        scimd.Pack(&v, data[offset:], func(x float32) float32 { return x })
//	        scimd.Unpack(v.Mul(v), out[offset:], func(p *float32, x float32) { *p = x })
//	    },
//	)
func ProcessWithTail[T Floats, R Register[T, R]](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	var r R
	lanes := r.Lanes()

	full := size / lanes
	for i := range full {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(full*lanes, remaining)
	}
}
