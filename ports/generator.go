package ports

import (
	"context"
	"io"

	"statline/domain/player"
)

// PopulationGenerator produces a deterministic population for a seed.
type PopulationGenerator interface {
	Generate(ctx context.Context, seed int64, count int) ([]player.Record, error)
}

// Exporter serializes a population to one file format.
type Exporter interface {
	Format() string
	ContentType() string
	Export(w io.Writer, records []player.Record) error
}
