package udd

import "math"

// Vector3 represents a direction (not a position) in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

// Point3 represents a position in 3D space.
type Point3 struct {
	X, Y, Z Real
}

func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product between two vectors.
func (a Vector3) Dot(b Vector3) Real { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return Real(math.Sqrt(float64(v.Dot(v)))) }

// Norm returns a unit-length version of v. Normalizing the zero vector is a
// precondition violation the caller must avoid; no ray in the core carries
// a zero direction.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// Sub returns the vector from b to a, as a Vector3.
func (a Point3) Sub(b Point3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Add translates a Point3 by a Vector3.
func (p Point3) Add(v Vector3) Point3 { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// Component returns the axis-a component of p (0=X, 1=Y, 2=Z).
func (p Point3) Component(a int) Real {
	switch a {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Component returns the axis-a component of v (0=X, 1=Y, 2=Z).
func (v Vector3) Component(a int) Real {
	switch a {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Ray is a half-line (origin, direction). Direction is expected unit-length.
type Ray struct {
	Origin Point3
	Dir    Vector3
}

// RayPoint evaluates p(t) = o + t*r.
func RayPoint(o Point3, r Vector3, t Real) Point3 {
	return o.Add(r.Mul(t))
}
