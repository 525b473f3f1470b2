package analysis

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"statline/domain/core"
	"statline/domain/player"
)

// Summary describes one stat across a set of records.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// Averages is the league summary for one role.
type Averages struct {
	Role       player.Role        `json:"role"`
	SampleSize int                `json:"sample_size"`
	Stats      map[string]Summary `json:"stats"`
}

// Summarize computes the descriptive statistics of data.
func Summarize(data []float64) (Summary, error) {
	var s Summary
	var err error

	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}
	// Nearest rank is defined for any non-empty sample; interpolated percentiles
	// reject samples too short to bracket the rank.
	if s.Q25, err = stats.PercentileNearestRank(data, 25); err != nil {
		return s, err
	}
	if s.Q75, err = stats.PercentileNearestRank(data, 75); err != nil {
		return s, err
	}
	return s, nil
}

// LeagueAverages summarizes every metric defined for role over the matching records.
func LeagueAverages(records []player.Record, role player.Role) (Averages, error) {
	out := Averages{Role: role, Stats: map[string]Summary{}}
	for i := range records {
		if records[i].Role == role {
			out.SampleSize++
		}
	}
	if out.SampleSize == 0 {
		return out, fmt.Errorf("%w: no %s records", core.ErrInsufficientData, role)
	}

	for _, m := range Metrics(role) {
		var data []float64
		for i := range records {
			if records[i].Role != role {
				continue
			}
			if v, ok := m.Value(&records[i]); ok {
				data = append(data, v)
			}
		}
		summary, err := Summarize(data)
		if err != nil {
			return out, fmt.Errorf("summarize %s: %w", m.Code, err)
		}
		out.Stats[m.Code] = summary
	}
	return out, nil
}
