// Package catalog holds the reference tables player generation draws from:
// name pools, the team list and the weighted position distribution.
package catalog

import (
	"fmt"
	"math"

	"statline/domain/player"
	"statline/internal/errors"
)

// PositionEntry is one category of the weighted position distribution.
type PositionEntry struct {
	Code   player.Position `json:"code" yaml:"code"`
	Name   string          `json:"name" yaml:"name"`
	Weight float64         `json:"weight" yaml:"weight"`
}

// Catalog is the full set of reference tables. Order matters: samplers index into
// these slices, so reordering a list changes every generated population.
type Catalog struct {
	FirstNames []string        `json:"first_names" yaml:"first_names"`
	LastNames  []string        `json:"last_names" yaml:"last_names"`
	Teams      []player.Team   `json:"teams" yaml:"teams"`
	Positions  []PositionEntry `json:"positions" yaml:"positions"`
}

// Validate fails fast on tables that would make generation undefined.
func (c *Catalog) Validate() error {
	if c == nil {
		return errors.ConfigInvalid("catalog is nil")
	}
	if len(c.FirstNames) == 0 {
		return errors.ConfigInvalid("catalog has no first names")
	}
	if len(c.LastNames) == 0 {
		return errors.ConfigInvalid("catalog has no last names")
	}
	if len(c.Teams) == 0 {
		return errors.ConfigInvalid("catalog has no teams")
	}
	if len(c.Positions) == 0 {
		return errors.ConfigInvalid("catalog has no positions")
	}

	seenTeams := make(map[string]bool, len(c.Teams))
	for i, t := range c.Teams {
		if t.Code == "" {
			return errors.ConfigInvalid(fmt.Sprintf("team %d has an empty code", i))
		}
		if seenTeams[t.Code] {
			return errors.ConfigInvalid(fmt.Sprintf("duplicate team code %q", t.Code))
		}
		seenTeams[t.Code] = true
	}

	seenPositions := make(map[player.Position]bool, len(c.Positions))
	total := 0.0
	for _, p := range c.Positions {
		if !p.Code.Valid() {
			return errors.ConfigInvalid(fmt.Sprintf("unknown position code %q", p.Code))
		}
		if seenPositions[p.Code] {
			return errors.ConfigInvalid(fmt.Sprintf("duplicate position code %q", p.Code))
		}
		seenPositions[p.Code] = true
		if p.Weight < 0 || math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) {
			return errors.ConfigInvalid(fmt.Sprintf("position %s has invalid weight %v", p.Code, p.Weight))
		}
		total += p.Weight
	}
	if total <= 0 {
		return errors.ConfigInvalid("position weights sum to zero")
	}
	return nil
}

// PickPosition walks the cumulative weights and returns the first category whose
// cumulative weight reaches r. The last category absorbs any remainder.
func (c *Catalog) PickPosition(r float64) PositionEntry {
	idx := 0
	cum := c.Positions[0].Weight
	for r > cum && idx < len(c.Positions)-1 {
		idx++
		cum += c.Positions[idx].Weight
	}
	return c.Positions[idx]
}

// Team looks up a team by code.
func (c *Catalog) Team(code string) (player.Team, bool) {
	for _, t := range c.Teams {
		if t.Code == code {
			return t, true
		}
	}
	return player.Team{}, false
}

// Position looks up a position entry by code.
func (c *Catalog) Position(code player.Position) (PositionEntry, bool) {
	for _, p := range c.Positions {
		if p.Code == code {
			return p, true
		}
	}
	return PositionEntry{}, false
}

// TotalWeight sums the position weights.
func (c *Catalog) TotalWeight() float64 {
	total := 0.0
	for _, p := range c.Positions {
		total += p.Weight
	}
	return total
}

// Clone returns a deep copy so callers can edit tables without touching Default().
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		FirstNames: append([]string(nil), c.FirstNames...),
		LastNames:  append([]string(nil), c.LastNames...),
		Teams:      append([]player.Team(nil), c.Teams...),
		Positions:  append([]PositionEntry(nil), c.Positions...),
	}
	return out
}
