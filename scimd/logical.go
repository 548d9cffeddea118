package scimd

// Logical is the algebra shared by Mask and Bool. Code written against it
// runs unchanged on a vector mask or on a plain scalar condition:
//
//	func mixed[M scimd.Logical[M]](near, far M) bool {
//		return scimd.Any(near) && scimd.Any(far.And(near.Not()))
//	}
type Logical[M any] interface {
	And(M) M
	Or(M) M
	Xor(M) M
	Not() M
	All() bool
	None() bool
	Any() bool
}

var (
	_ Logical[Bool]   = Bool(false)
	_ Logical[Mask32] = Mask32{}
	_ Logical[Mask64] = Mask64{}
)

// Bool is a one-lane condition with the same methods as Mask.
// All, None and Any of a Bool reduce to the value itself or its negation.
type Bool bool

func (b Bool) And(o Bool) Bool { return b && o }
func (b Bool) Or(o Bool) Bool  { return b || o }
func (b Bool) Xor(o Bool) Bool { return b != o }
func (b Bool) Not() Bool       { return !b }
func (b Bool) All() bool       { return bool(b) }
func (b Bool) None() bool      { return !bool(b) }
func (b Bool) Any() bool       { return bool(b) }

// All reports whether every lane of m is true.
func All[M Logical[M]](m M) bool { return m.All() }

// None reports whether every lane of m is false.
func None[M Logical[M]](m M) bool { return m.None() }

// Any reports whether some lane of m is true. It is always !None(m).
func Any[M Logical[M]](m M) bool { return !m.None() }
