package udd

// voxelIndex returns the voxel coordinates containing vertex, truncated
// toward zero per §4.4 step 1. It does not clamp to grid bounds — callers
// that need a bounds-checked lookup use Grid.InBounds first.
func (g *Grid) voxelIndex(vertex Point3) [3]int32 {
	return [3]int32{
		int32((vertex.X - g.Dmin.X) / g.S.X),
		int32((vertex.Y - g.Dmin.Y) / g.S.Y),
		int32((vertex.Z - g.Dmin.Z) / g.S.Z),
	}
}

func minIdx3(a, b, c int32) int32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxIdx3(a, b, c int32) int32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// cornersSameSign reports whether the voxel [x1,x2]x[y1,y2]x[z1,z2] has all
// eight AABB corners on the same strict side of triangle t's plane. When
// true, the voxel is conservatively skipped: t's plane cannot cross it, so
// t cannot intersect it either. This uses the eight genuine corners of the
// box (original_source's voxelize.c computes `bfl` with x2 in the z slot;
// this does not reproduce that bug — see DESIGN.md Open Question i).
func cornersSameSign(t Triangle, x1, x2, y1, y2, z1, z2 Real) bool {
	corners := [8]Point3{
		{x1, y1, z1}, {x2, y1, z1},
		{x1, y1, z2}, {x2, y1, z2},
		{x1, y2, z1}, {x2, y2, z1},
		{x1, y2, z2}, {x2, y2, z2},
	}
	s0 := t.SignedDistance(corners[0])
	for i := 1; i < 8; i++ {
		if s0*t.SignedDistance(corners[i]) <= 0 {
			return false
		}
	}
	return true
}

// voxelize implements §4.4: for every triangle, enumerate the candidate
// AABB of voxels from its three vertices and insert the triangle into
// every voxel not trivially separable from it by the triangle's plane. It
// returns the total number of (voxel, triangle) references created.
func voxelize(g *Grid, scene *Scene) (int, error) {
	chunk := g.opts.ChunkSize
	maxRefs := g.opts.MaxVoxelRefs
	refs := 0

	for ti, t := range scene.Triangles() {
		iIdx := g.voxelIndex(t.I)
		jIdx := g.voxelIndex(t.J)
		kIdx := g.voxelIndex(t.K)

		var lo, hi [3]int32
		for a := 0; a < 3; a++ {
			lo[a] = minIdx3(iIdx[a], jIdx[a], kIdx[a])
			hi[a] = maxIdx3(iIdx[a], jIdx[a], kIdx[a])
		}

		tri := int32(ti)

		// Fast path: all three vertices share a voxel.
		if lo[0] == hi[0] && lo[1] == hi[1] && lo[2] == hi[2] {
			if !g.InBounds(lo[0], lo[1], lo[2]) {
				continue
			}
			g.VoxelAt(lo[0], lo[1], lo[2]).add(tri, chunk)
			refs++
			if maxRefs > 0 && int64(refs) > maxRefs {
				return refs, ErrOutOfMemory
			}
			continue
		}

		for i := lo[0]; i <= hi[0]; i++ {
			if i < 0 || i >= g.NV[0] {
				continue
			}
			x1 := g.Dmin.X + Real(i)*g.S.X
			x2 := x1 + g.S.X
			for j := lo[1]; j <= hi[1]; j++ {
				if j < 0 || j >= g.NV[1] {
					continue
				}
				y1 := g.Dmin.Y + Real(j)*g.S.Y
				y2 := y1 + g.S.Y
				for k := lo[2]; k <= hi[2]; k++ {
					if k < 0 || k >= g.NV[2] {
						continue
					}
					z1 := g.Dmin.Z + Real(k)*g.S.Z
					z2 := z1 + g.S.Z

					if cornersSameSign(t, x1, x2, y1, y2, z1, z2) {
						continue
					}

					g.VoxelAt(i, j, k).add(tri, chunk)
					refs++
					if maxRefs > 0 && int64(refs) > maxRefs {
						return refs, ErrOutOfMemory
					}
				}
			}
		}
	}

	return refs, nil
}
