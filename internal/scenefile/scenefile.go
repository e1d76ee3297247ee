// Package scenefile loads a triangle-soup scene description from disk and
// turns it into the udd.Scene view the core consumes. It is the "external
// preprocessor" §6 of the core's spec describes as out of the core's
// scope: vertex positions in, per-triangle plane equations and domain
// bounds out.
package scenefile

import (
	"fmt"
	"math"
	"os"

	"github.com/segmentio/encoding/json"

	"github.com/voxelray/udd/internal/udd"
)

// Vertex is a raw (x, y, z) position as it appears on disk.
type Vertex struct {
	X, Y, Z float64
}

// TriangleIndices references three vertices by index into the scene's
// vertex array.
type TriangleIndices struct {
	I, J, K int
}

// Doc is the on-disk JSON shape: a flat vertex array plus triangles
// referencing it by index, mirroring how a real mesh exporter would
// dedupe shared vertices rather than repeating positions per triangle.
type Doc struct {
	Vertices  []Vertex          `json:"vertices"`
	Triangles []TriangleIndices `json:"triangles"`
}

// Load reads path, validates every triangle index, derives each
// triangle's unit plane normal and offset (n, d) with n·i + d = 0, and
// returns a ready-to-build udd.Scene whose bounds are the (uninflated)
// componentwise min/max of its triangles' vertices.
func Load(path string) (*udd.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: reading %s: %w", path, err)
	}

	var doc Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scenefile: decoding %s: %w", path, err)
	}

	tris := make([]udd.Triangle, 0, len(doc.Triangles))
	var bounds udd.Bounds
	first := true

	for n, ti := range doc.Triangles {
		iv, err := vertexAt(doc.Vertices, ti.I)
		if err != nil {
			return nil, fmt.Errorf("scenefile: triangle %d: %w", n, err)
		}
		jv, err := vertexAt(doc.Vertices, ti.J)
		if err != nil {
			return nil, fmt.Errorf("scenefile: triangle %d: %w", n, err)
		}
		kv, err := vertexAt(doc.Vertices, ti.K)
		if err != nil {
			return nil, fmt.Errorf("scenefile: triangle %d: %w", n, err)
		}

		t, err := buildTriangle(iv, jv, kv)
		if err != nil {
			return nil, fmt.Errorf("scenefile: triangle %d: %w", n, err)
		}
		tris = append(tris, t)

		for _, p := range [3]udd.Point3{t.I, t.J, t.K} {
			if first {
				bounds = udd.Bounds{Min: p, Max: p}
				first = false
				continue
			}
			bounds.Min = componentMin(bounds.Min, p)
			bounds.Max = componentMax(bounds.Max, p)
		}
	}

	return udd.NewScene(tris, bounds), nil
}

func vertexAt(vs []Vertex, idx int) (udd.Point3, error) {
	if idx < 0 || idx >= len(vs) {
		return udd.Point3{}, fmt.Errorf("vertex index %d out of range [0,%d)", idx, len(vs))
	}
	v := vs[idx]
	return udd.Point3{X: udd.Real(v.X), Y: udd.Real(v.Y), Z: udd.Real(v.Z)}, nil
}

// buildTriangle derives the plane (n, d) from three vertices the same way
// the original raytracer did: edge vectors ij = j-i, ik = k-i, n =
// normalize(ij × ik), d = -(n·i). The edge vectors themselves aren't kept
// on udd.Triangle — the core never runs a ray-triangle test, so it has no
// use for them — but computing them in this order keeps n's orientation
// faithful to how the original scene format built it.
func buildTriangle(i, j, k udd.Point3) (udd.Triangle, error) {
	ij := j.Sub(i)
	ik := k.Sub(i)
	n := ij.Cross(ik)
	if n.Len() == 0 {
		return udd.Triangle{}, fmt.Errorf("degenerate triangle (zero-area)")
	}
	n = n.Norm()
	d := -n.Dot(udd.Vector3{X: i.X, Y: i.Y, Z: i.Z})

	t := udd.Triangle{I: i, J: j, K: k, N: n, D: d}
	if err := checkPlane(t); err != nil {
		return udd.Triangle{}, err
	}
	return t, nil
}

// checkPlane verifies n·v + d ~ 0 for all three vertices within §4.2's
// tolerance, relative to the triangle's own extent.
func checkPlane(t udd.Triangle) error {
	extent := math.Max(1, math.Max(
		float64(t.J.Sub(t.I).Len()),
		math.Max(float64(t.K.Sub(t.I).Len()), float64(t.K.Sub(t.J).Len())),
	))
	tol := udd.Real(1e-5 * extent)
	for _, v := range [3]udd.Point3{t.I, t.J, t.K} {
		if s := t.SignedDistance(v); absReal(s) > tol {
			return fmt.Errorf("plane equation violated by %.6g (tolerance %.6g)", s, tol)
		}
	}
	return nil
}

func absReal(r udd.Real) udd.Real {
	if r < 0 {
		return -r
	}
	return r
}

func componentMin(a, b udd.Point3) udd.Point3 {
	return udd.Point3{X: minReal(a.X, b.X), Y: minReal(a.Y, b.Y), Z: minReal(a.Z, b.Z)}
}

func componentMax(a, b udd.Point3) udd.Point3 {
	return udd.Point3{X: maxReal(a.X, b.X), Y: maxReal(a.Y, b.Y), Z: maxReal(a.Z, b.Z)}
}

func minReal(a, b udd.Real) udd.Real {
	if a < b {
		return a
	}
	return b
}

func maxReal(a, b udd.Real) udd.Real {
	if a > b {
		return a
	}
	return b
}
