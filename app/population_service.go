package app

import (
	"context"
	"strings"
	"sync"

	"statline/domain/core"
	"statline/domain/player"
	"statline/internal"
	"statline/internal/analysis"
	"statline/internal/catalog"
	"statline/internal/errors"
	"statline/internal/generator"
	"statline/ports"
)

// DefaultListLimit caps List when the filter sets no limit.
const DefaultListLimit = 100

// Population is one generated snapshot. It is never modified after creation;
// Regenerate swaps in a new one.
type Population struct {
	ID          core.SnapshotID `json:"id"`
	Seed        int64           `json:"seed"`
	Count       int             `json:"count"`
	Fingerprint core.Hash       `json:"fingerprint"`
	GeneratedAt core.Timestamp  `json:"generated_at"`
	Records     []player.Record `json:"-"`
}

// PlayerFilter narrows List. Zero fields match everything.
type PlayerFilter struct {
	Name     string
	Team     string
	Position player.Position
	Role     player.Role
	Skip     int
	Limit    int
}

// PopulationService serves the current population to the API and CLI.
type PopulationService struct {
	mu        sync.RWMutex
	count     int
	generator ports.PopulationGenerator
	catalog   *catalog.Catalog
	current   *Population
	logger    *internal.Logger
}

// NewPopulationService generates the initial population from cfg.
func NewPopulationService(cfg generator.Config, logger *internal.Logger) (*PopulationService, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	s := &PopulationService{
		count:     cfg.Count,
		generator: generator.Engine{Base: cfg},
		catalog:   cfg.Catalog,
		logger:    logger.With("population"),
	}
	if _, err := s.Regenerate(context.Background(), cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate replaces the population with a fresh one for seed. On error the
// current population is kept.
func (s *PopulationService) Regenerate(ctx context.Context, seed int64) (*Population, error) {
	records, err := s.generator.Generate(ctx, seed, s.count)
	if err != nil {
		return nil, errors.Wrapf(err, "generate population for seed %d", seed)
	}
	fp, err := core.HashJSON(records)
	if err != nil {
		return nil, errors.Wrap(err, "fingerprint population")
	}

	pop := &Population{
		ID:          core.NewSnapshotID(),
		Seed:        seed,
		Count:       len(records),
		Fingerprint: fp,
		GeneratedAt: core.Now(),
		Records:     records,
	}

	s.mu.Lock()
	s.current = pop
	s.mu.Unlock()

	s.logger.Info("generated %d players for seed %d (fingerprint %s)", pop.Count, seed, fp.Short())
	return pop, nil
}

// Population returns the current snapshot.
func (s *PopulationService) Population() *Population {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Records returns the current snapshot's records. Callers must not modify them.
func (s *PopulationService) Records() []player.Record {
	return s.Population().Records
}

// Player looks a record up by id.
func (s *PopulationService) Player(id int) (player.Record, error) {
	recs := s.Records()
	idx := id - player.BaseID
	if idx >= 0 && idx < len(recs) && recs[idx].PlayerID == id {
		return recs[idx], nil
	}
	return player.Record{}, errors.WithCode(errors.CodeNotFound, core.NewNotFoundError(core.ErrPlayerNotFound, id))
}

// List returns the records matching f in generation order.
func (s *PopulationService) List(f PlayerFilter) []player.Record {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	name := strings.ToLower(strings.TrimSpace(f.Name))
	team := strings.ToUpper(strings.TrimSpace(f.Team))

	out := []player.Record{}
	skipped := 0
	for _, r := range s.Records() {
		if name != "" && !strings.Contains(strings.ToLower(r.Name), name) {
			continue
		}
		if team != "" && r.Team != team {
			continue
		}
		if f.Position != "" && r.Position != f.Position {
			continue
		}
		if f.Role != "" && r.Role != f.Role {
			continue
		}
		if skipped < f.Skip {
			skipped++
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Teams lists the catalog's teams in catalog order.
func (s *PopulationService) Teams() []player.Team {
	return append([]player.Team(nil), s.catalog.Teams...)
}

// Team looks a team up by code, case-insensitively.
func (s *PopulationService) Team(code string) (player.Team, error) {
	t, ok := s.catalog.Team(strings.ToUpper(strings.TrimSpace(code)))
	if !ok {
		return player.Team{}, errors.WithCode(errors.CodeNotFound, core.NewNotFoundError(core.ErrTeamNotFound, code))
	}
	return t, nil
}

// Roster builds the team's roster from the current population.
func (s *PopulationService) Roster(code string) (analysis.Roster, error) {
	t, err := s.Team(code)
	if err != nil {
		return analysis.Roster{}, err
	}
	return analysis.BuildRoster(t, s.Records()), nil
}
