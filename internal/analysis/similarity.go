package analysis

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"statline/domain/player"
)

// Similarity is a neighbour of a player in standardized stat space.
type Similarity struct {
	PlayerID int             `json:"player_id"`
	Name     string          `json:"name"`
	Team     string          `json:"team"`
	Position player.Position `json:"position"`
	Distance float64         `json:"distance"`
	Score    float64         `json:"score"`
}

var (
	batterFeatures  = []string{"AVG", "OBP", "SLG", "HR", "SB", "WAR"}
	pitcherFeatures = []string{"ERA", "WHIP", "K/9", "IP", "W", "WAR"}
)

// Similar returns up to limit players of the same role closest to id. Each feature
// is z-scored over the role so no single scale dominates; Score is 1/(1+distance).
func Similar(records []player.Record, id int, limit int) ([]Similarity, error) {
	target, err := findRecord(records, id)
	if err != nil {
		return nil, err
	}

	codes := batterFeatures
	if target.IsPitcher() {
		codes = pitcherFeatures
	}

	var peers []*player.Record
	for i := range records {
		if records[i].Role == target.Role {
			peers = append(peers, &records[i])
		}
	}

	vectors := standardize(peers, codes)
	var targetVec []float64
	for i, p := range peers {
		if p.PlayerID == target.PlayerID {
			targetVec = vectors[i]
		}
	}

	out := make([]Similarity, 0, len(peers))
	for i, p := range peers {
		if p.PlayerID == target.PlayerID {
			continue
		}
		d := floats.Distance(targetVec, vectors[i], 2)
		out = append(out, Similarity{
			PlayerID: p.PlayerID,
			Name:     p.Name,
			Team:     p.Team,
			Position: p.Position,
			Distance: d,
			Score:    1 / (1 + d),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })

	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// standardize returns one z-scored feature vector per peer. Constant features map to 0.
func standardize(peers []*player.Record, codes []string) [][]float64 {
	vectors := make([][]float64, len(peers))
	for i := range vectors {
		vectors[i] = make([]float64, len(codes))
	}
	column := make([]float64, len(peers))
	for j, code := range codes {
		m, _ := LookupMetric(code)
		for i, p := range peers {
			column[i] = m.read(p)
		}
		mean, std := stat.MeanStdDev(column, nil)
		for i := range peers {
			if std > 0 {
				vectors[i][j] = (column[i] - mean) / std
			}
		}
	}
	return vectors
}
