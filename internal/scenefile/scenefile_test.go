package scenefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelray/udd/internal/udd"
)

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadValidScene(t *testing.T) {
	path := writeDoc(t, `{
		"vertices": [
			{"X":0,"Y":0,"Z":0},
			{"X":1,"Y":0,"Z":0},
			{"X":0,"Y":1,"Z":0}
		],
		"triangles": [{"I":0,"J":1,"K":2}]
	}`)

	scene, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, scene.Len())

	tri := scene.Triangle(0)
	require.InDelta(t, 0, tri.N.X, 1e-6)
	require.InDelta(t, 0, tri.N.Y, 1e-6)
	require.InDelta(t, 1, float64(tri.N.Z), 1e-6)
}

func TestLoadRejectsOutOfRangeIndex(t *testing.T) {
	path := writeDoc(t, `{
		"vertices": [{"X":0,"Y":0,"Z":0}],
		"triangles": [{"I":0,"J":1,"K":2}]
	}`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsDegenerateTriangle(t *testing.T) {
	path := writeDoc(t, `{
		"vertices": [
			{"X":0,"Y":0,"Z":0},
			{"X":1,"Y":0,"Z":0},
			{"X":2,"Y":0,"Z":0}
		],
		"triangles": [{"I":0,"J":1,"K":2}]
	}`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLoadDerivesSceneBounds(t *testing.T) {
	path := writeDoc(t, `{
		"vertices": [
			{"X":-2,"Y":0,"Z":0},
			{"X":3,"Y":0,"Z":0},
			{"X":0,"Y":5,"Z":0},
			{"X":0,"Y":0,"Z":-1},
			{"X":0,"Y":2,"Z":4}
		],
		"triangles": [{"I":0,"J":1,"K":2}, {"I":0,"J":3,"K":4}]
	}`)

	scene, err := Load(path)
	require.NoError(t, err)
	b := scene.Bounds()
	require.Equal(t, udd.Real(-2), b.Min.X)
	require.Equal(t, udd.Real(3), b.Max.X)
	require.Equal(t, udd.Real(-1), b.Min.Z)
	require.Equal(t, udd.Real(4), b.Max.Z)
}
