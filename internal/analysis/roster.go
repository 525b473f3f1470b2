package analysis

import (
	"github.com/montanaflynn/stats"

	"statline/domain/player"
)

// RosterEntry is the compact row a roster lists per player.
type RosterEntry struct {
	PlayerID int             `json:"player_id"`
	Name     string          `json:"name"`
	Position player.Position `json:"position"`
	Age      int             `json:"age"`
	WAR      float64         `json:"war"`
	Salary   float64         `json:"salary"`
}

// Roster summarizes one team's slice of the population.
type Roster struct {
	Team            player.Team   `json:"team"`
	Players         []RosterEntry `json:"players"`
	Pitchers        int           `json:"pitchers"`
	PositionPlayers int           `json:"position_players"`
	TotalPayroll    float64       `json:"total_payroll"`
	AverageSalary   float64       `json:"average_salary"`
	MedianSalary    float64       `json:"median_salary"`
	TeamWAR         float64       `json:"team_war"`
	BattingWAR      float64       `json:"batting_war"`
	PitchingWAR     float64       `json:"pitching_war"`
	HighestPaid     *RosterEntry  `json:"highest_paid,omitempty"`
	PayrollPerWAR   float64       `json:"payroll_per_war"`
	AverageAge      float64       `json:"average_age"`
}

// BuildRoster collects team's players in generation order. A team with no players
// yields an empty roster with zero totals.
func BuildRoster(team player.Team, records []player.Record) Roster {
	out := Roster{Team: team, Players: []RosterEntry{}}

	var salaries, ages []float64
	for i := range records {
		r := &records[i]
		if r.Team != team.Code {
			continue
		}
		entry := RosterEntry{
			PlayerID: r.PlayerID,
			Name:     r.Name,
			Position: r.Position,
			Age:      r.Age,
			WAR:      r.WAR,
			Salary:   r.Salary,
		}
		out.Players = append(out.Players, entry)
		if r.IsPitcher() {
			out.Pitchers++
			out.PitchingWAR += r.WAR
		} else {
			out.PositionPlayers++
			out.BattingWAR += r.WAR
		}
		out.TeamWAR += r.WAR
		salaries = append(salaries, r.Salary)
		ages = append(ages, float64(r.Age))

		if out.HighestPaid == nil || entry.Salary > out.HighestPaid.Salary {
			top := entry
			out.HighestPaid = &top
		}
	}
	if len(salaries) == 0 {
		return out
	}

	out.TotalPayroll, _ = stats.Sum(salaries)
	out.AverageSalary, _ = stats.Mean(salaries)
	out.MedianSalary, _ = stats.Median(salaries)
	out.AverageAge, _ = stats.Mean(ages)
	if out.TeamWAR > 0 {
		out.PayrollPerWAR = out.TotalPayroll / out.TeamWAR
	}
	return out
}
