package udd

// tri builds a Triangle from three vertices, deriving n = normalize((j-i) x (k-i))
// and d = -(n·i), the same derivation internal/scenefile uses.
func tri(i, j, k Point3) Triangle {
	ij := j.Sub(i)
	ik := k.Sub(i)
	n := ij.Cross(ik).Norm()
	d := -n.Dot(Vector3{X: i.X, Y: i.Y, Z: i.Z})
	return Triangle{I: i, J: j, K: k, N: n, D: d}
}

// boundsOf returns the componentwise min/max AABB over a set of triangles.
func boundsOf(tris []Triangle) Bounds {
	b := Bounds{Min: tris[0].I, Max: tris[0].I}
	for _, t := range tris {
		for _, p := range [3]Point3{t.I, t.J, t.K} {
			if p.X < b.Min.X {
				b.Min.X = p.X
			}
			if p.Y < b.Min.Y {
				b.Min.Y = p.Y
			}
			if p.Z < b.Min.Z {
				b.Min.Z = p.Z
			}
			if p.X > b.Max.X {
				b.Max.X = p.X
			}
			if p.Y > b.Max.Y {
				b.Max.Y = p.Y
			}
			if p.Z > b.Max.Z {
				b.Max.Z = p.Z
			}
		}
	}
	return b
}
