package udd

// Real is the core's numeric type. Single precision, per spec: the core
// trades range for the cache density that makes the cube-root voxel-count
// heuristic and the per-voxel triangle-reference lists worth having.
type Real = float32

const (
	// buildEpsilon inflates scene bounds at grid-build time so every
	// triangle vertex ends up strictly interior and floating-point
	// rounding at dmin/dmax cannot produce an out-of-range voxel index.
	buildEpsilon Real = 1e-3

	// planeTolerance is the relative-to-extent tolerance the scene view's
	// plane equation is allowed to violate before a triangle is considered
	// to have a malformed precomputed plane (n, d).
	planeTolerance Real = 1e-5
)
