package udd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildGridResolutionInvariants(t *testing.T) {
	tris := []Triangle{
		tri(Point3{0, 0, 0}, Point3{1, 0, 0}, Point3{0, 1, 0}),
	}
	scene := NewScene(tris, boundsOf(tris))

	grid, err := BuildGrid(scene, BuildOptions{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, grid.NV[0], int32(1))
	require.GreaterOrEqual(t, grid.NV[1], int32(1))
	require.GreaterOrEqual(t, grid.NV[2], int32(1))
	require.Len(t, grid.voxels, int(grid.NV[0])*int(grid.NV[1])*int(grid.NV[2]))

	// scene bounds were inflated in place and now strictly invert-free.
	b := scene.Bounds()
	require.Less(t, b.Min.X, b.Max.X)
	require.Less(t, b.Min.Y, b.Max.Y)
	require.Less(t, b.Min.Z, b.Max.Z)
}

func TestBuildGridIdxInjective(t *testing.T) {
	tris := []Triangle{
		tri(Point3{0, 0, 0}, Point3{2, 0, 0}, Point3{0, 2, 0}),
		tri(Point3{0, 0, 1}, Point3{2, 0, 1}, Point3{0, 2, 1}),
	}
	scene := NewScene(tris, boundsOf(tris))
	grid, err := BuildGrid(scene, BuildOptions{})
	require.NoError(t, err)

	seen := make(map[int32]bool)
	for i := int32(0); i < grid.NV[0]; i++ {
		for j := int32(0); j < grid.NV[1]; j++ {
			for k := int32(0); k < grid.NV[2]; k++ {
				idx := grid.idx(i, j, k)
				require.Less(t, idx, int32(len(grid.voxels)))
				require.False(t, seen[idx], "idx(%d,%d,%d)=%d collides", i, j, k, idx)
				seen[idx] = true
			}
		}
	}
}

func TestBuildGridEmptyScene(t *testing.T) {
	scene := NewScene(nil, Bounds{Min: Point3{0, 0, 0}, Max: Point3{1, 1, 1}})
	grid, err := BuildGrid(scene, BuildOptions{})
	require.NoError(t, err)
	for i := range grid.voxels {
		require.Empty(t, grid.voxels[i].tris)
	}

	ray := Ray{Origin: Point3{0.5, 0.5, 2}, Dir: Vector3{0, 0, -1}}
	i, j, k, ok := FindEntryVoxel(grid, scene, ray)
	require.True(t, ok)
	_, _, hit := Traverse(grid, scene, ray, i, j, k, NoTriangle, func(int32, Point3, Vector3) (bool, Real) {
		t.Fatal("intersect should never be called against an empty grid")
		return false, 0
	})
	require.False(t, hit)
}

func TestBuildGridInvertedBoundsIsPreconditionViolation(t *testing.T) {
	scene := NewScene(nil, Bounds{Min: Point3{1, 1, 1}, Max: Point3{0, 0, 0}})
	_, err := BuildGrid(scene, BuildOptions{})
	require.ErrorIs(t, err, ErrPreconditionViolation)
}

func TestBuildGridOutOfMemoryVoxelCap(t *testing.T) {
	tris := []Triangle{
		tri(Point3{0, 0, 0}, Point3{100, 0, 0}, Point3{0, 100, 0}),
	}
	scene := NewScene(tris, boundsOf(tris))
	_, err := BuildGrid(scene, BuildOptions{MaxVoxels: 4})
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestBuildGridOutOfMemoryRefCap(t *testing.T) {
	// A long diagonal triangle, plus enough filler triangles to push the
	// cube-root density heuristic toward a grid fine enough that the
	// diagonal's general voxelization path spans many voxels.
	tris := []Triangle{
		tri(Point3{0, 0, 0}, Point3{10, 0, 0}, Point3{0, 10, 0.01}),
	}
	for n := 0; n < 60; n++ {
		off := Real(n) * 0.01
		tris = append(tris, tri(Point3{off, off, off}, Point3{off + 0.001, off, off}, Point3{off, off + 0.001, off}))
	}
	scene := NewScene(tris, boundsOf(tris))
	_, err := BuildGrid(scene, BuildOptions{MaxVoxelRefs: 4})
	require.ErrorIs(t, err, ErrOutOfMemory)
}
