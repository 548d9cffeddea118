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

// Pack gathers one field of successive records into the lanes of v: lane i
// becomes get(src[i]). If src has fewer records than v has lanes, every
// remaining lane is set to fill[0], or to zero when fill is omitted.
//
// Pack returns the records it did not consume, so calling it repeatedly
// walks an array of structures one vector at a time:
//
//	for len(ps) > 0 {
//		var x scimd.Float32
//		rest := scimd.Pack(&x, ps, func(p Particle) float32 { return p.X })
//		// ... compute with x, then Unpack into ps
//		ps = rest
//	}
func Pack[T Floats, R Register[T, R], E any](v *Vec[T, R], src []E, get func(E) T, fill ...T) []E {
	var buf [MaxLanes]T
	n := v.val.Lanes()
	i := 0
	for ; i < n && i < len(src); i++ {
		buf[i] = get(src[i])
	}
	if i < n {
		var d T
		if len(fill) > 0 {
			d = fill[0]
		}
		for j := i; j < n; j++ {
			buf[j] = d
		}
	}
	v.val = v.val.Load(buf[:n])
	return src[i:]
}

// PackSeq is Pack over a pull-style iterator, such as one returned by
// iter.Pull. It stops calling next once v is full or next reports false,
// and returns the number of lanes taken from the sequence.
func PackSeq[T Floats, R Register[T, R], E any](v *Vec[T, R], next func() (E, bool), get func(E) T, fill ...T) int {
	var buf [MaxLanes]T
	n := v.val.Lanes()
	i := 0
	for ; i < n; i++ {
		e, ok := next()
		if !ok {
			break
		}
		buf[i] = get(e)
	}
	taken := i
	var d T
	if len(fill) > 0 {
		d = fill[0]
	}
	for ; i < n; i++ {
		buf[i] = d
	}
	v.val = v.val.Load(buf[:n])
	return taken
}

// Unpack scatters the lanes of v into successive records: set(&dst[i], lane i)
// is called until either the lanes or dst run out. It returns the records
// past the last one written.
func Unpack[T Floats, R Register[T, R], E any](v Vec[T, R], dst []E, set func(*E, T)) []E {
	var buf [MaxLanes]T
	n := v.val.Lanes()
	v.val.Store(buf[:n])
	m := min(n, len(dst))
	for i := range m {
		set(&dst[i], buf[i])
	}
	return dst[m:]
}
