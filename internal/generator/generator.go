// Package generator builds populations of synthetic player records from a seed.
//
// Every record is drawn in three stages against a single sampler: attributes,
// then the pitching or batting line, then valuation. The number and order of draws
// per stage is fixed, so a seed identifies a population exactly.
package generator

import (
	"fmt"

	"statline/domain/player"
	"statline/internal/catalog"
	"statline/internal/errors"
	"statline/internal/prng"
	"statline/ports"
)

// DefaultSeed and DefaultCount describe the reference population.
const (
	DefaultSeed  int64 = 42
	DefaultCount       = 250
)

// Config controls one generation run.
type Config struct {
	Seed    int64
	Count   int
	Catalog *catalog.Catalog
	// Source builds the uniform stream; nil means the package LCG.
	Source ports.SourceFactory
	// Strict validates every record as it is drawn.
	Strict bool
}

// DefaultConfig returns seed 42, 250 players and the built-in catalog.
func DefaultConfig() Config {
	return Config{
		Seed:    DefaultSeed,
		Count:   DefaultCount,
		Catalog: catalog.Default(),
	}
}

// Generator owns one sampler and hands out records in id order.
// It is not safe for concurrent use; build one per goroutine.
type Generator struct {
	cfg     Config
	sampler *prng.Sampler
	catalog *catalog.Catalog
	nextID  int
}

// New validates cfg and seeds a generator.
func New(cfg Config) (*Generator, error) {
	if cfg.Count < 0 {
		return nil, errors.ConfigInvalid(fmt.Sprintf("count must be >= 0, got %d", cfg.Count))
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if err := cfg.Catalog.Validate(); err != nil {
		return nil, err
	}
	source := cfg.Source
	if source == nil {
		source = prng.NewSource
	}
	return &Generator{
		cfg:     cfg,
		sampler: prng.NewSampler(source(cfg.Seed)),
		catalog: cfg.Catalog,
		nextID:  player.BaseID,
	}, nil
}

// Next draws one complete record.
func (g *Generator) Next() (player.Record, error) {
	attrs := g.drawAttributes(g.nextID)
	g.nextID++

	rec := player.Record{
		PlayerID:     attrs.id,
		Name:         attrs.firstName + " " + attrs.lastName,
		Team:         attrs.team.Code,
		TeamName:     attrs.team.Name,
		Position:     attrs.position.Code,
		PositionName: attrs.position.Name,
		Age:          attrs.age,
		ServiceTime:  attrs.serviceTime,
		Role:         attrs.position.Code.Role(),
	}

	if attrs.isPitcher() {
		rec.PitchingLine, rec.WAR = g.drawPitching(attrs)
	} else {
		rec.BattingLine, rec.WAR = g.drawBatting(attrs)
	}

	val, err := g.drawValuation(attrs, rec.WAR)
	if err != nil {
		return player.Record{}, fmt.Errorf("valuation for player %d: %w", rec.PlayerID, err)
	}
	rec.Valuation = val

	if g.cfg.Strict {
		if err := rec.Validate(); err != nil {
			return player.Record{}, errors.WithCode(errors.CodeValidationError, err)
		}
	}
	return rec, nil
}

// Generate draws cfg.Count records from the current stream position.
func (g *Generator) Generate() ([]player.Record, error) {
	records := make([]player.Record, 0, g.cfg.Count)
	for i := 0; i < g.cfg.Count; i++ {
		rec, err := g.Next()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Draws reports how many uniforms the generator has consumed.
func (g *Generator) Draws() int {
	return g.sampler.Draws()
}

// Generate is the pure entry point: same seed and count, same records.
func Generate(seed int64, count int) ([]player.Record, error) {
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.Count = count
	return GenerateWith(cfg)
}

// GenerateWith runs a fresh generator over cfg.
func GenerateWith(cfg Config) ([]player.Record, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}
