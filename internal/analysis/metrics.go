// Package analysis derives leaderboards, league summaries, rosters, similarity and
// value assessments from a generated population. Every function is read-only over
// the records it is given.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"statline/domain/core"
	"statline/domain/player"
)

// Metric reads one numeric stat from a record of its role.
type Metric struct {
	Code          string      `json:"code"`
	Label         string      `json:"label"`
	Role          player.Role `json:"role,omitempty"`
	LowerIsBetter bool        `json:"lower_is_better"`
	read          func(r *player.Record) float64
}

// Applies reports whether the metric is defined for r.
func (m Metric) Applies(r *player.Record) bool {
	if m.Role == "" {
		return true
	}
	switch m.Role {
	case player.RolePitcher:
		_, ok := r.Pitching()
		return ok
	case player.RoleBatter:
		_, ok := r.Batting()
		return ok
	}
	return false
}

// Value reads the metric; ok is false when the metric does not apply to r.
func (m Metric) Value(r *player.Record) (float64, bool) {
	if !m.Applies(r) {
		return 0, false
	}
	return m.read(r), true
}

// Better reports whether a ranks ahead of b.
func (m Metric) Better(a, b float64) bool {
	if m.LowerIsBetter {
		return a < b
	}
	return a > b
}

var metrics = []Metric{
	{Code: "HR", Label: "Home Runs", Role: player.RoleBatter, read: func(r *player.Record) float64 { return float64(r.HomeRuns) }},
	{Code: "AVG", Label: "Batting Average", Role: player.RoleBatter, read: func(r *player.Record) float64 { return r.BattingAvg }},
	{Code: "OBP", Label: "On-Base Percentage", Role: player.RoleBatter, read: func(r *player.Record) float64 { return r.OBP }},
	{Code: "SLG", Label: "Slugging Percentage", Role: player.RoleBatter, read: func(r *player.Record) float64 { return r.SLG }},
	{Code: "OPS", Label: "On-Base Plus Slugging", Role: player.RoleBatter, read: func(r *player.Record) float64 { return r.OPS }},
	{Code: "RBI", Label: "Runs Batted In", Role: player.RoleBatter, read: func(r *player.Record) float64 { return float64(r.RBIs) }},
	{Code: "SB", Label: "Stolen Bases", Role: player.RoleBatter, read: func(r *player.Record) float64 { return float64(r.StolenBases) }},
	{Code: "WRC+", Label: "Weighted Runs Created Plus", Role: player.RoleBatter, read: func(r *player.Record) float64 { return float64(r.WRCPlus) }},
	{Code: "EV", Label: "Exit Velocity", Role: player.RoleBatter, read: func(r *player.Record) float64 { return r.ExitVelocity }},
	{Code: "XWOBA", Label: "Expected wOBA", Role: player.RoleBatter, read: func(r *player.Record) float64 { return r.XWOBA }},
	{Code: "ERA", Label: "Earned Run Average", Role: player.RolePitcher, LowerIsBetter: true, read: func(r *player.Record) float64 { return r.ERA }},
	{Code: "WHIP", Label: "Walks Plus Hits per Inning", Role: player.RolePitcher, LowerIsBetter: true, read: func(r *player.Record) float64 { return r.WHIP }},
	{Code: "FIP", Label: "Fielding Independent Pitching", Role: player.RolePitcher, LowerIsBetter: true, read: func(r *player.Record) float64 { return r.FIP }},
	{Code: "K", Label: "Strikeouts", Role: player.RolePitcher, read: func(r *player.Record) float64 { return float64(r.Strikeouts) }},
	{Code: "K/9", Label: "Strikeouts per Nine", Role: player.RolePitcher, read: func(r *player.Record) float64 { return r.KPer9 }},
	{Code: "W", Label: "Wins", Role: player.RolePitcher, read: func(r *player.Record) float64 { return float64(r.Wins) }},
	{Code: "SV", Label: "Saves", Role: player.RolePitcher, read: func(r *player.Record) float64 { return float64(r.Saves) }},
	{Code: "IP", Label: "Innings Pitched", Role: player.RolePitcher, read: func(r *player.Record) float64 { return r.Innings }},
	{Code: "WAR", Label: "Wins Above Replacement", read: func(r *player.Record) float64 { return r.WAR }},
	{Code: "PROJ", Label: "Projected WAR", read: func(r *player.Record) float64 { return r.WARProjection }},
	{Code: "SALARY", Label: "Salary", LowerIsBetter: true, read: func(r *player.Record) float64 { return r.Salary }},
	{Code: "VALUE", Label: "Value Differential", read: func(r *player.Record) float64 { return r.ValueDifferential }},
	{Code: "WAR/$", Label: "WAR per $1M", read: func(r *player.Record) float64 { return r.WARPerDollar }},
}

var metricAliases = map[string]string{
	"HOME_RUNS": "HR", "BATTING_AVG": "AVG", "RBIS": "RBI", "STOLEN_BASES": "SB",
	"WRC_PLUS": "WRC+", "STRIKEOUTS": "K", "SO": "K", "K_PER_9": "K/9", "K9": "K/9",
	"WINS": "W", "SAVES": "SV", "INNINGS": "IP", "EXIT_VELOCITY": "EV", "X_WOBA": "XWOBA",
	"WAR_PROJECTION": "PROJ", "VALUE_DIFFERENTIAL": "VALUE", "WAR_PER_DOLLAR": "WAR/$",
}

// LookupMetric resolves a metric code or alias, case-insensitively.
func LookupMetric(code string) (Metric, error) {
	key := strings.ToUpper(strings.TrimSpace(code))
	if alias, ok := metricAliases[key]; ok {
		key = alias
	}
	for _, m := range metrics {
		if m.Code == key {
			return m, nil
		}
	}
	return Metric{}, fmt.Errorf("%w: %q", core.ErrUnknownCategory, code)
}

// Metrics lists every metric, optionally restricted to those defined for role.
func Metrics(role player.Role) []Metric {
	out := make([]Metric, 0, len(metrics))
	for _, m := range metrics {
		if role == "" || m.Role == "" || m.Role == role {
			out = append(out, m)
		}
	}
	return out
}

// values extracts the metric over every record it applies to, in record order.
func values(records []player.Record, m Metric) ([]float64, []*player.Record) {
	vals := make([]float64, 0, len(records))
	refs := make([]*player.Record, 0, len(records))
	for i := range records {
		if v, ok := m.Value(&records[i]); ok {
			vals = append(vals, v)
			refs = append(refs, &records[i])
		}
	}
	return vals, refs
}

// findRecord returns the record with id or core.ErrPlayerNotFound.
func findRecord(records []player.Record, id int) (*player.Record, error) {
	idx := sort.Search(len(records), func(i int) bool { return records[i].PlayerID >= id })
	if idx < len(records) && records[idx].PlayerID == id {
		return &records[idx], nil
	}
	for i := range records {
		if records[i].PlayerID == id {
			return &records[i], nil
		}
	}
	return nil, core.NewNotFoundError(core.ErrPlayerNotFound, id)
}
