package udd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const gridIDLabel = "grid_id"

var (
	buildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "udd_grid_build_duration_seconds",
		Help: "Time spent building and voxelizing a grid.",
	}, []string{gridIDLabel})

	voxelCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "udd_grid_voxel_count",
		Help: "Number of voxels in a built grid.",
	}, []string{gridIDLabel})

	triangleRefCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "udd_grid_triangle_ref_count",
		Help: "Total number of (voxel, triangle) references after voxelization.",
	}, []string{gridIDLabel})

	traversalSteps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "udd_traversal_steps",
		Help:    "Number of voxels visited per traversal.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{gridIDLabel})

	traversalOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "udd_traversal_outcomes_total",
		Help: "Traversal outcomes, labeled hit or miss.",
	}, []string{gridIDLabel, "outcome"})
)

func instrumentBuild(gridID string, seconds float64, voxels, refs int) {
	buildDuration.With(prometheus.Labels{gridIDLabel: gridID}).Observe(seconds)
	voxelCount.With(prometheus.Labels{gridIDLabel: gridID}).Set(float64(voxels))
	triangleRefCount.With(prometheus.Labels{gridIDLabel: gridID}).Set(float64(refs))
}

func instrumentTraversal(gridID string, steps int, hit bool) {
	traversalSteps.With(prometheus.Labels{gridIDLabel: gridID}).Observe(float64(steps))
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	traversalOutcomes.With(prometheus.Labels{gridIDLabel: gridID, "outcome": outcome}).Inc()
}
