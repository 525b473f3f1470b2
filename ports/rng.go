package ports

// RandomSource produces a uniform stream in [0,1). Implementations carry their own
// state and are owned by exactly one caller; they are not safe for concurrent use.
type RandomSource interface {
	Float64() float64
}

// SourceFactory builds a fresh, independently owned source for a seed.
// Two sources built from the same seed must produce identical streams.
type SourceFactory func(seed int64) RandomSource
