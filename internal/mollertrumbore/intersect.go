// Package mollertrumbore implements the external ray-triangle intersection
// predicate the core treats as a black box (§1, §6). It is deliberately
// outside internal/udd: the core invokes whatever predicate a caller
// supplies, and this is one such caller-supplied implementation.
package mollertrumbore

import "github.com/voxelray/udd/internal/udd"

const epsilon = udd.Real(1e-7)

// Intersect tests ray (o, r) against triangle t using the
// Möller–Trumbore algorithm: https://en.wikipedia.org/wiki/M%C3%B6ller%E2%80%93Trumbore_intersection_algorithm
// It satisfies udd.IntersectFunc's contract: hit is true iff the ray
// intersects the triangle for some d > 0.
func Intersect(t udd.Triangle, o udd.Point3, r udd.Vector3) (hit bool, d udd.Real) {
	edge1 := t.J.Sub(t.I)
	edge2 := t.K.Sub(t.I)

	h := r.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return false, 0 // ray is parallel to the triangle's plane
	}

	f := 1 / a
	s := o.Sub(t.I)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return false, 0
	}

	q := s.Cross(edge1)
	v := f * r.Dot(q)
	if v < 0 || u+v > 1 {
		return false, 0
	}

	dist := f * edge2.Dot(q)
	if dist <= epsilon {
		return false, 0
	}
	return true, dist
}
