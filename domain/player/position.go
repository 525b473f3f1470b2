package player

import (
	"fmt"
	"strings"
)

// Position is a fielding or pitching role code.
type Position string

const (
	Catcher          Position = "C"
	FirstBase        Position = "1B"
	SecondBase       Position = "2B"
	ThirdBase        Position = "3B"
	Shortstop        Position = "SS"
	LeftField        Position = "LF"
	CenterField      Position = "CF"
	RightField       Position = "RF"
	DesignatedHitter Position = "DH"
	StartingPitcher  Position = "SP"
	ReliefPitcher    Position = "RP"
)

// AllPositions lists every position in catalog order.
var AllPositions = []Position{
	Catcher, FirstBase, SecondBase, ThirdBase, Shortstop,
	LeftField, CenterField, RightField, DesignatedHitter,
	StartingPitcher, ReliefPitcher,
}

// warAdjustment scales batting WAR by defensive value of the position.
var warAdjustment = map[Position]float64{
	Catcher:          1.2,
	FirstBase:        0.8,
	SecondBase:       1.1,
	ThirdBase:        1.0,
	Shortstop:        1.2,
	LeftField:        0.9,
	CenterField:      1.1,
	RightField:       0.9,
	DesignatedHitter: 0.7,
}

// ParsePosition accepts a position code in any case.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPosition, s)
	}
	return p, nil
}

// Valid reports whether p is one of AllPositions.
func (p Position) Valid() bool {
	for _, known := range AllPositions {
		if p == known {
			return true
		}
	}
	return false
}

func (p Position) String() string { return string(p) }

// IsPitcher is true for SP and RP.
func (p Position) IsPitcher() bool {
	return p == StartingPitcher || p == ReliefPitcher
}

// IsSpeed is true for the up-the-middle positions that run more.
func (p Position) IsSpeed() bool {
	return p == CenterField || p == Shortstop || p == SecondBase
}

// Role returns the stat line this position carries.
func (p Position) Role() Role {
	if p.IsPitcher() {
		return RolePitcher
	}
	return RoleBatter
}

// WARAdjustment returns the batting WAR multiplier; positions without an entry get 1.0.
func (p Position) WARAdjustment() float64 {
	if adj, ok := warAdjustment[p]; ok {
		return adj
	}
	return 1.0
}

// Role discriminates the two stat-line variants of a Record.
type Role string

const (
	RolePitcher Role = "pitcher"
	RoleBatter  Role = "batter"
)

// ParseRole accepts "pitcher"/"pitchers" and "batter"/"batters"/"hitter".
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pitcher", "pitchers", "pitching":
		return RolePitcher, nil
	case "batter", "batters", "hitter", "hitters", "batting":
		return RoleBatter, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Team is a club in the league catalog.
type Team struct {
	Code     string `json:"code" yaml:"code"`
	Name     string `json:"name" yaml:"name"`
	League   string `json:"league" yaml:"league"`
	Division string `json:"division" yaml:"division"`
}
