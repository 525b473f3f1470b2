package analysis

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"statline/domain/core"
	"statline/domain/player"
	"statline/internal/errors"
	"statline/internal/prng"
)

// Interval is a central prediction interval for next season's WAR.
type Interval struct {
	PlayerID int     `json:"player_id"`
	Level    float64 `json:"level"`
	Lower    float64 `json:"lower"`
	Mean     float64 `json:"mean"`
	Upper    float64 `json:"upper"`
}

// ProjectionInterval treats projection_uncertainty as a relative standard deviation:
// mean ± z·uncertainty·mean, z the two-sided normal quantile for level, clamped to [0,12].
func ProjectionInterval(r *player.Record, level float64) (Interval, error) {
	if !(level > 0 && level < 1) {
		return Interval{}, errors.InvalidInput(fmt.Sprintf("interval level must be in (0,1), got %v", level))
	}
	z := distuv.UnitNormal.Quantile((1 + level) / 2)
	mean := r.WARProjection
	spread := z * r.ProjectionUncertainty * mean
	return Interval{
		PlayerID: r.PlayerID,
		Level:    level,
		Lower:    prng.Clamp(mean-spread, 0, 12),
		Mean:     mean,
		Upper:    prng.Clamp(mean+spread, 0, 12),
	}, nil
}

// Percentile returns where id's value sits among players of the same role, as the
// share of peers it matches or beats, in [0,100].
func Percentile(records []player.Record, id int, metricCode string) (float64, error) {
	m, err := LookupMetric(metricCode)
	if err != nil {
		return 0, err
	}
	target, err := findRecord(records, id)
	if err != nil {
		return 0, err
	}
	v, ok := m.Value(target)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not defined for %s records", core.ErrUnknownMetric, m.Code, target.Role)
	}

	var vals []float64
	for i := range records {
		if records[i].Role != target.Role {
			continue
		}
		if x, ok := m.Value(&records[i]); ok {
			vals = append(vals, x)
		}
	}
	if m.LowerIsBetter {
		for i := range vals {
			vals[i] = -vals[i]
		}
		v = -v
	}
	sort.Float64s(vals)
	return 100 * stat.CDF(v, stat.Empirical, vals, nil), nil
}
