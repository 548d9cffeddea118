//go:build amd64 && goexperiment.simd

// Package x86 holds the archsimd-backed registers of the 128-, 256- and
// 512-bit tiers. The register types are generated from backends.yaml; edit
// the table or cmd/scimdgen/register.tmpl and regenerate.
//
// Masks use the blendv convention: a lane is true when its sign bit is set,
// and comparisons produce all-ones lanes, so any comparison result can be
// passed straight to Blend.
package x86

//go:generate go run ../../../cmd/scimdgen -config backends.yaml -output .
