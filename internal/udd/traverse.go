package udd

import "math"

// NoTriangle is the sentinel "no current triangle" value for Traverse's
// current parameter — pass it for a primary ray that isn't leaving any
// surface.
const NoTriangle int32 = -1

// IntersectFunc is the external, caller-supplied ray–triangle intersection
// predicate (§6). It must be pure and safe to call concurrently from
// independent goroutines on immutable triangles. hit is true iff the ray
// intersects triangle t for some d > 0; d is the parametric distance along
// r to that intersection.
type IntersectFunc func(t int32, o Point3, r Vector3) (hit bool, d Real)

type axisStep struct {
	dt   Real // parametric distance between successive perpendicular-plane crossings
	t    Real // parameter at which the ray next crosses a plane perpendicular to this axis
	step int32
}

func computeAxisStep(dir, dmin, size Real, o Real, idx int32) axisStep {
	if dir == 0 {
		return axisStep{dt: Real(math.Inf(1)), t: 0, step: 0}
	}
	lo := dmin + Real(idx)*size
	hi := lo + size
	tLo := (lo - o) / dir
	tHi := (hi - o) / dir
	dt := tHi - tLo
	if dt < 0 {
		dt = -dt
	}
	t := tLo
	if tHi < tLo {
		t = tHi
	}
	step := int32(1)
	if dir < 0 {
		step = -1
	}
	return axisStep{dt: dt, t: t, step: step}
}

// Traverse implements §4.6: walks voxels front-to-back along ray starting
// at entry voxel (i, j, k) — as returned by FindEntryVoxel — invoking
// intersect on the triangles it visits, skipping current if it is not
// NoTriangle, and returning the globally nearest hit. ok is false for
// NoIntersection (§7): the ray exits the grid without a qualifying hit.
func Traverse(g *Grid, scene *Scene, ray Ray, i, j, k int32, current int32, intersect IntersectFunc) (hitTri int32, ipoint Point3, ok bool) {
	o := ray.Origin
	r := ray.Dir

	ax := computeAxisStep(r.X, g.Dmin.X, g.S.X, o.X, i)
	ay := computeAxisStep(r.Y, g.Dmin.Y, g.S.Y, o.Y, j)
	az := computeAxisStep(r.Z, g.Dmin.Z, g.S.Z, o.Z, k)

	steps := 0
	for {
		steps++
		voxel := g.VoxelAt(i, j, k)
		if len(voxel.tris) > 0 {
			exitDist := minOf3(ax.t+ax.dt, ay.t+ay.dt, az.t+az.dt)
			bestD := exitDist
			nearest := NoTriangle
			for _, tri := range voxel.tris {
				if tri == current {
					continue
				}
				hit, d := intersect(tri, o, r)
				if hit && d > 0 && d < bestD {
					bestD = d
					nearest = tri
				}
			}
			if nearest != NoTriangle {
				instrumentTraversal(g.ID.String(), steps, true)
				return nearest, RayPoint(o, r, bestD), true
			}
		}

		// Step to the neighbor voxel across the nearest upcoming plane;
		// ties resolved by fixed axis priority x < y < z.
		txNext := ax.t + ax.dt
		tyNext := ay.t + ay.dt
		tzNext := az.t + az.dt

		if txNext <= tyNext && txNext <= tzNext {
			i += ax.step
			ax.t = txNext
		} else if tyNext <= tzNext {
			j += ay.step
			ay.t = tyNext
		} else {
			k += az.step
			az.t = tzNext
		}

		if i < 0 || i >= g.NV[0] || j < 0 || j >= g.NV[1] || k < 0 || k >= g.NV[2] {
			instrumentTraversal(g.ID.String(), steps, false)
			return NoTriangle, Point3{}, false
		}
	}
}

func minOf3(a, b, c Real) Real {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
