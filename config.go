package quadtree

// Config groups the tunables spec.md §6 lists as compile-time constants.
// The defaults reproduce the spec's named values exactly; a Tree built with
// a nil *Config uses DefaultConfig().
type Config struct {
	// BucketCap is the bucket size that triggers subdivision on Insert.
	BucketCap int
	// RebuildThreshold bounds the optional sparse-rebuild heuristic.
	RebuildThreshold int
	// MinSubdivideArea refuses Subdivide on rectangles below this area.
	MinSubdivideArea float64
	// BulkLeafCutoff stops recursive bulk partitioning at this item count.
	BulkLeafCutoff int
	// MortonQuantisation is the per-axis resolution for Z-order coding.
	MortonQuantisation uint32
	// EnableSparseRebuild toggles the optional rebuild-when-sparse
	// optimisation described in spec.md §4.4; off by default, matching
	// the source's always-false guard (see DESIGN.md Open Question 2).
	EnableSparseRebuild bool
}

// DefaultConfig returns the Config matching spec.md §6's named constants.
func DefaultConfig() Config {
	return Config{
		BucketCap:           10,
		RebuildThreshold:    22,
		MinSubdivideArea:    0.01,
		BulkLeafCutoff:      8,
		MortonQuantisation:  0xFFFF,
		EnableSparseRebuild: false,
	}
}

func resolveConfig(cfg *Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return *cfg
}
