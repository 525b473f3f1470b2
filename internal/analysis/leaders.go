package analysis

import (
	"sort"

	"statline/domain/player"
)

// Leader is one row of a leaderboard.
type Leader struct {
	Rank     int             `json:"rank"`
	PlayerID int             `json:"player_id"`
	Name     string          `json:"name"`
	Team     string          `json:"team"`
	Position player.Position `json:"position"`
	Value    float64         `json:"value"`
}

// Leaderboard is a ranked category.
type Leaderboard struct {
	Metric  Metric   `json:"metric"`
	Leaders []Leader `json:"leaders"`
}

// Leaders ranks the records the category applies to. Ties keep generation order
// and share a rank. A limit of zero or less returns every eligible record.
func Leaders(records []player.Record, category string, limit int) (Leaderboard, error) {
	m, err := LookupMetric(category)
	if err != nil {
		return Leaderboard{}, err
	}

	vals, refs := values(records, m)
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return m.Better(vals[order[i]], vals[order[j]])
	})

	if limit <= 0 || limit > len(order) {
		limit = len(order)
	}
	board := Leaderboard{Metric: m, Leaders: make([]Leader, 0, limit)}
	for pos, idx := range order[:limit] {
		rank := pos + 1
		if pos > 0 && vals[idx] == board.Leaders[pos-1].Value {
			rank = board.Leaders[pos-1].Rank
		}
		r := refs[idx]
		board.Leaders = append(board.Leaders, Leader{
			Rank:     rank,
			PlayerID: r.PlayerID,
			Name:     r.Name,
			Team:     r.Team,
			Position: r.Position,
			Value:    vals[idx],
		})
	}
	return board, nil
}
