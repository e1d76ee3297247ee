package udd

import "math"

// pointVoxel returns the voxel indices containing p, or ok=false if the
// indices fall outside the grid. Indices are truncated toward zero, so a
// point less than one voxel below Dmin on an axis maps to index 0 there.
func (g *Grid) pointVoxel(p Point3) (i, j, k int32, ok bool) {
	idx := g.voxelIndex(p)
	if !g.InBounds(idx[0], idx[1], idx[2]) {
		return 0, 0, 0, false
	}
	return idx[0], idx[1], idx[2], true
}

// FindEntryVoxel implements §4.5: given a ray, returns the grid indices of
// the first voxel the ray enters, or ok=false if the ray misses the
// domain entirely.
func FindEntryVoxel(g *Grid, scene *Scene, ray Ray) (i, j, k int32, ok bool) {
	o := ray.Origin
	r := ray.Dir
	b := scene.Bounds()

	if i, j, k, ok = g.pointVoxel(o); ok {
		return i, j, k, true
	}

	t1, t2 := Real(math.Inf(1)), Real(math.Inf(1))
	consider := func(t Real) {
		if t <= 0 {
			return
		}
		if t < t1 {
			t2 = t1
			t1 = t
		} else if t < t2 {
			t2 = t
		}
	}

	dirArr := [3]Real{r.X, r.Y, r.Z}
	minArr := [3]Real{b.Min.X, b.Min.Y, b.Min.Z}
	maxArr := [3]Real{b.Max.X, b.Max.Y, b.Max.Z}
	oArr := [3]Real{o.X, o.Y, o.Z}
	for a := 0; a < 3; a++ {
		if dirArr[a] == 0 {
			continue
		}
		consider((minArr[a] - oArr[a]) / dirArr[a])
		consider((maxArr[a] - oArr[a]) / dirArr[a])
	}

	if !math.IsInf(float64(t1), 1) {
		p := RayPoint(o, r, t1)
		if i, j, k, ok = g.pointVoxel(p); ok {
			return i, j, k, true
		}
	}
	if !math.IsInf(float64(t2), 1) {
		p := RayPoint(o, r, t2)
		if i, j, k, ok = g.pointVoxel(p); ok {
			return i, j, k, true
		}
	}

	return 0, 0, 0, false
}
