// Package udd implements a Uniform Domain Division grid over a static
// triangle-mesh scene and a 3D-DDA traversal that returns the nearest
// ray–triangle hit. Build phase (grid construction + voxelization) is
// single-writer; the query phase (locate + traverse) is read-only and safe
// to call concurrently from independent goroutines, provided the caller's
// intersection predicate is itself thread-safe.
package udd
