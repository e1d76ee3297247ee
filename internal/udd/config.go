package udd

import (
	"fmt"
	"os"

	"github.com/segmentio/encoding/json"
)

// BuildConfig is the on-disk (JSON) form of BuildOptions, following the
// same struct-tag-plus-defaults shape photons4d's json_config.go uses for
// its scene config.
type BuildConfig struct {
	Epsilon      Real  `json:"epsilon,omitempty"`
	ChunkSize    int32 `json:"chunkSize,omitempty"`
	MaxVoxelRefs int64 `json:"maxVoxelRefs,omitempty"`
	MaxVoxels    int64 `json:"maxVoxels,omitempty"`
}

// ToOptions converts the decoded config into BuildOptions. Defaults are
// applied by BuildOptions.withDefaults, not here.
func (c BuildConfig) ToOptions() BuildOptions {
	return BuildOptions{
		Epsilon:      c.Epsilon,
		ChunkSize:    c.ChunkSize,
		MaxVoxelRefs: c.MaxVoxelRefs,
		MaxVoxels:    c.MaxVoxels,
	}
}

// LoadBuildConfig reads and decodes a BuildConfig from a JSON file at
// path, the way photons4d's loadConfig reads scenes/config.json — but
// decoded with segmentio/encoding/json instead of encoding/json.
func LoadBuildConfig(path string) (BuildConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BuildConfig{}, fmt.Errorf("udd: reading build config: %w", err)
	}
	var cfg BuildConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return BuildConfig{}, fmt.Errorf("udd: decoding build config: %w", err)
	}
	DebugLog("loaded build config from %s: epsilon=%v chunkSize=%d maxVoxelRefs=%d maxVoxels=%d", path, cfg.Epsilon, cfg.ChunkSize, cfg.MaxVoxelRefs, cfg.MaxVoxels)
	return cfg, nil
}
