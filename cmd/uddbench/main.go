package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/pprof"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voxelray/udd/internal/mollertrumbore"
	"github.com/voxelray/udd/internal/scenefile"
	"github.com/voxelray/udd/internal/udd"
)

func main() {
	udd.Debug = os.Getenv("DEBUG") != ""
	profile := os.Getenv("PROFILE") != ""
	metricsAddr := os.Getenv("METRICS_ADDR")

	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			log.Printf("serving metrics on %s/metrics", metricsAddr)
			if err := http.ListenAndServe(metricsAddr, nil); err != nil {
				log.Printf("metrics server stopped: %v", err)
			}
		}()
	}

	scenePath := "scenes/scene.json"
	if len(os.Args) > 1 {
		scenePath = os.Args[1]
	}
	cfgPath := "scenes/build.json"
	if len(os.Args) > 2 {
		cfgPath = os.Args[2]
	}

	if err := run(scenePath, cfgPath); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenePath, cfgPath string) error {
	scene, err := scenefile.Load(scenePath)
	if err != nil {
		return err
	}

	opts := udd.BuildOptions{}
	if cfg, err := udd.LoadBuildConfig(cfgPath); err == nil {
		opts = cfg.ToOptions()
	}

	grid, err := udd.BuildGrid(scene, opts)
	if err != nil {
		return err
	}
	fmt.Printf("built grid %s: resolution=(%d,%d,%d) voxels=%d triangles=%d\n",
		grid.ID, grid.NV[0], grid.NV[1], grid.NV[2], grid.VoxelCount(), scene.Len())

	intersect := func(tri int32, o udd.Point3, r udd.Vector3) (bool, udd.Real) {
		return mollertrumbore.Intersect(scene.Triangle(tri), o, r)
	}

	ray := udd.Ray{
		Origin: udd.Point3{X: scene.Bounds().Min.X - 1, Y: (scene.Bounds().Min.Y + scene.Bounds().Max.Y) / 2, Z: (scene.Bounds().Min.Z + scene.Bounds().Max.Z) / 2},
		Dir:    udd.Vector3{X: 1, Y: 0, Z: 0},
	}
	i, j, k, ok := udd.FindEntryVoxel(grid, scene, ray)
	if !ok {
		fmt.Println("probe ray misses domain")
		return nil
	}
	tri, ipoint, hit := udd.Traverse(grid, scene, ray, i, j, k, udd.NoTriangle, intersect)
	if !hit {
		fmt.Println("probe ray: no intersection")
		return nil
	}
	fmt.Printf("probe ray hit triangle %d at %+v\n", tri, ipoint)
	return nil
}
