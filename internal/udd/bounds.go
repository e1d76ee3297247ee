package udd

// Bounds is an axis-aligned box [Min, Max]. After BuildGrid inflates it
// (§4.3), the invariant Min[a] < Max[a] holds strictly for every axis and
// is permanent for the grid's lifetime.
type Bounds struct {
	Min, Max Point3
}

// inflate grows the box by eps on every face. Any re-derivation of bounds
// from vertices elsewhere must apply the same epsilon, or voxel indexing
// and voxelization will disagree about where the domain edge is.
func (b Bounds) inflate(eps Real) Bounds {
	return Bounds{
		Min: Point3{b.Min.X - eps, b.Min.Y - eps, b.Min.Z - eps},
		Max: Point3{b.Max.X + eps, b.Max.Y + eps, b.Max.Z + eps},
	}
}

// Contains reports whether p lies within the box on every axis.
func (b Bounds) Contains(p Point3) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y &&
		p.Z >= b.Min.Z && p.Z < b.Max.Z
}

// extent returns Max-Min per axis.
func (b Bounds) extent() Vector3 {
	return b.Max.Sub(b.Min)
}
