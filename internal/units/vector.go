package units

import "math"

// Vector3 is a bare Cartesian triple in whatever canonical unit its
// owning container uses. It never crosses a unit boundary itself —
// that is the container's job — it only supplies the arithmetic the
// containers build on, the way force_field.go's Vector3 underlies
// foldvedic's energy terms.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns the componentwise sum.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the componentwise difference.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by a scalar factor.
func (v Vector3) Scale(factor float64) Vector3 {
	return Vector3{v.X * factor, v.Y * factor, v.Z * factor}
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// MagnitudeSquared returns |v|^2.
func (v Vector3) MagnitudeSquared() float64 {
	return v.Dot(v)
}

// Magnitude returns |v|.
func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}
