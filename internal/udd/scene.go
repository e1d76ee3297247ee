package udd

// Triangle is built once by the external preprocessor (scene loader) and
// is immutable through the core's lifetime. Identity is the triangle's
// index in the scene's triangle array — the traverser uses that index,
// not a pointer, to let callers skip the "current" triangle a secondary
// ray is leaving.
type Triangle struct {
	I, J, K Point3

	// N is the unit plane normal oriented toward the observer; D is the
	// plane offset with invariant N·I + D = 0 (equivalently for J, K).
	N Vector3
	D Real
}

// Plane returns the triangle's precomputed (normal, offset) pair.
func (t Triangle) Plane() (Vector3, Real) { return t.N, t.D }

// SignedDistance evaluates sigma(p) = N.p + D for the triangle's plane.
func (t Triangle) SignedDistance(p Point3) Real {
	return t.N.Dot(Vector3{p.X, p.Y, p.Z}) + t.D
}

// Scene is a read-only view over a triangle soup: the immutable triangle
// array and the domain bounds (uninflated until BuildGrid inflates them in
// place). The grid borrows from it
// without ownership; callers must keep the scene alive for the grid's
// lifetime.
type Scene struct {
	tris   []Triangle
	bounds Bounds
}

// NewScene builds a Scene view over tris with domain bounds bounds. bounds
// is the *uninflated* extent of the triangle soup; BuildGrid performs the
// §4.3 inflation and writes the inflated bounds back into the scene via
// SetBounds.
func NewScene(tris []Triangle, bounds Bounds) *Scene {
	return &Scene{tris: tris, bounds: bounds}
}

// Triangles returns the scene's triangle array. Callers must not mutate it.
func (s *Scene) Triangles() []Triangle { return s.tris }

// Triangle returns the triangle at index i.
func (s *Scene) Triangle(i int32) Triangle { return s.tris[i] }

// Len returns the number of triangles in the scene.
func (s *Scene) Len() int { return len(s.tris) }

// Bounds returns the scene's domain bounds as last set (uninflated until
// BuildGrid has run; inflated thereafter, since BuildGrid mutates the
// bounds it was given in place via SetBounds).
func (s *Scene) Bounds() Bounds { return s.bounds }

// SetBounds overwrites the scene's bounds. BuildGrid calls this once, with
// the inflated bounds, per §6's "bounds (dmin, dmax) mutable" contract.
func (s *Scene) SetBounds(b Bounds) { s.bounds = b }

// Plane returns triangle i's precomputed (normal, offset) pair.
func (s *Scene) Plane(i int32) (Vector3, Real) { return s.tris[i].Plane() }
