package udd

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// BuildOptions configures grid construction. Zero value uses every
// teacher-faithful default from §4.3/§4.4.
type BuildOptions struct {
	// Epsilon is the bounds-inflation and extent-safety-margin constant
	// (ε in §4.3). Defaults to 1e-3 when zero.
	Epsilon Real

	// ChunkSize is the additive growth increment (B in §4.4) for a
	// voxel's triangle-reference list. Defaults to 10 when zero.
	ChunkSize int32

	// MaxVoxelRefs caps the total number of (voxel, triangle) references
	// the voxelizer may create before it aborts with ErrOutOfMemory. Zero
	// means unbounded. This is the core's stand-in for §7's malloc-failure
	// path (see ErrOutOfMemory).
	MaxVoxelRefs int64

	// MaxVoxels caps nx*ny*nz before the voxel array is allocated. Zero
	// means unbounded. This is the stand-in for a failed allocation of the
	// voxel array itself, the other malloc site §4.3 names.
	MaxVoxels int64
}

func (o BuildOptions) withDefaults() BuildOptions {
	if o.Epsilon == 0 {
		o.Epsilon = buildEpsilon
	}
	if o.ChunkSize == 0 {
		o.ChunkSize = 10
	}
	return o
}

// Voxel is an ordered, append-only collection of triangle references.
// Insertion order carries no meaning; the traverser picks the nearest hit
// by distance, not order.
type Voxel struct {
	tris []int32
	free int32 // free slots left before the next additive growth, mirrors RT_Voxel.p
}

func (v *Voxel) add(t int32, chunk int32) {
	if v.tris == nil {
		v.tris = make([]int32, 0, chunk)
		v.free = chunk
	} else if v.free == 0 {
		grown := make([]int32, len(v.tris), int32(len(v.tris))+chunk)
		copy(grown, v.tris)
		v.tris = grown
		v.free = chunk
	}
	v.tris = append(v.tris, t)
	v.free--
}

// Triangles returns the voxel's triangle-index list. Callers must not
// mutate it.
func (v *Voxel) Triangles() []int32 { return v.tris }

// Grid is the triple (nv, s, voxels): resolution, per-axis voxel size, and
// the row-major-like linearization of the voxel array. Grid exclusively
// owns its voxel array; it borrows (non-owning) from the Scene it was
// built from, which must outlive the Grid.
type Grid struct {
	ID uuid.UUID

	NV     [3]int32 // resolution (nx, ny, nz)
	S      Vector3  // per-axis voxel size
	Dmin   Point3   // inflated domain minimum, cached for index math
	voxels []Voxel

	opts BuildOptions
}

// idx maps 3D voxel coordinates to the grid's 1D array offset.
func (g *Grid) idx(i, j, k int32) int32 {
	return (i*g.NV[1] + j)*g.NV[2] + k
}

// InBounds reports whether (i, j, k) addresses a valid voxel.
func (g *Grid) InBounds(i, j, k int32) bool {
	return i >= 0 && i < g.NV[0] &&
		j >= 0 && j < g.NV[1] &&
		k >= 0 && k < g.NV[2]
}

// VoxelAt returns the voxel at (i, j, k). Caller must ensure InBounds.
func (g *Grid) VoxelAt(i, j, k int32) *Voxel {
	return &g.voxels[g.idx(i, j, k)]
}

// VoxelCount returns the total number of voxels in the grid.
func (g *Grid) VoxelCount() int {
	return len(g.voxels)
}

// BuildGrid performs §4.3's grid-construction algorithm against scene,
// mutating scene's bounds in place with the inflated domain (per §6's
// "bounds ... mutable" contract), then voxelizes every triangle into it
// (§4.4). The returned grid is read-only from then on; concurrent queries
// against it are safe.
func BuildGrid(scene *Scene, opts BuildOptions) (*Grid, error) {
	opts = opts.withDefaults()
	start := time.Now()

	b := scene.Bounds()
	if !(b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z) {
		return nil, ErrPreconditionViolation
	}

	eps := opts.Epsilon
	inflated := b.inflate(eps)
	scene.SetBounds(inflated)

	ext := inflated.extent()
	ds := Vector3{ext.X + eps, ext.Y + eps, ext.Z + eps}
	DebugLog("domain size: x=%.3f, y=%.3f, z=%.3f", ds.X, ds.Y, ds.Z)
	DebugLog("domain min: %+v, max: %+v", inflated.Min, inflated.Max)

	n := Real(scene.Len())
	volume := float64(ds.X) * float64(ds.Y) * float64(ds.Z)
	v := Real(0)
	if volume > 0 {
		v = Real(math.Cbrt(float64(n)/volume)) + eps
	}

	var nv [3]int32
	var s Vector3
	dsArr := [3]Real{ds.X, ds.Y, ds.Z}
	for a := 0; a < 3; a++ {
		count := int32(math.Ceil(float64(dsArr[a] * v)))
		if count < 1 {
			count = 1
		}
		nv[a] = count
		size := dsArr[a] / Real(count)
		switch a {
		case 0:
			s.X = size
		case 1:
			s.Y = size
		case 2:
			s.Z = size
		}
	}
	DebugLog("number of voxels: i=%d, j=%d, k=%d (total %d)", nv[0], nv[1], nv[2], int64(nv[0])*int64(nv[1])*int64(nv[2]))
	DebugLog("size of single voxel: x=%.5f, y=%.5f, z=%.5f", s.X, s.Y, s.Z)

	total := int64(nv[0]) * int64(nv[1]) * int64(nv[2])
	if opts.MaxVoxels > 0 && total > opts.MaxVoxels {
		return nil, ErrOutOfMemory
	}

	g := &Grid{
		ID:     uuid.New(),
		NV:     nv,
		S:      s,
		Dmin:   inflated.Min,
		voxels: make([]Voxel, total),
		opts:   opts,
	}

	refs, err := voxelize(g, scene)
	if err != nil {
		return nil, err
	}

	instrumentBuild(g.ID.String(), time.Since(start).Seconds(), int(total), refs)
	return g, nil
}
