package scimd

import "unsafe"

// Alignment is the byte alignment AllocAligned guarantees. It covers the
// widest register (512 bits), so aligned slices suit every tier.
const Alignment = 64

// AllocAligned returns a slice of n zeroed elements whose first element sits
// at an address divisible by Alignment. Such slices may be passed to
// Vec.LoadAligned and Vec.StoreAligned.
//
// The allocation is slightly larger than requested; the underlying array is
// kept alive by the returned slice. It returns nil for n <= 0.
func AllocAligned[T Floats](n int) []T {
	if n <= 0 {
		return nil
	}

	var dummy T
	size := int(unsafe.Sizeof(dummy))

	// Enough slack to shift the start up to Alignment-1 bytes.
	buf := make([]byte, n*size+Alignment)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return unsafe.Slice((*T)(unsafe.Pointer(&buf[offset])), n)
}

// IsAligned reports whether the first element of s is aligned to the
// register width of the compiled tier. An empty slice is aligned.
func IsAligned[T Floats](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%uintptr(CurrentWidth()) == 0
}
