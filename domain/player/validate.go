package player

import (
	"fmt"
	"math"
)

const tolerance = 1e-9

// Validate checks the identity, range and arithmetic invariants of a generated record.
// The first violation is returned wrapped in ErrInvariant.
func (r *Record) Validate() error {
	v := &checker{id: r.PlayerID}

	v.intRange("player_id", r.PlayerID, BaseID, math.MaxInt)
	v.intRange("age", r.Age, 21, 40)
	v.intRange("service_time", r.ServiceTime, 0, 20)
	if !r.Position.Valid() {
		v.fail("position", fmt.Sprintf("unknown code %q", r.Position))
	}
	if r.Role != r.Position.Role() {
		v.fail("role", fmt.Sprintf("%s does not match position %s", r.Role, r.Position))
	}
	if (r.PitchingLine == nil) == (r.BattingLine == nil) {
		v.fail("role", "exactly one of the pitching and batting lines must be set")
	}
	if v.err != nil {
		return v.err
	}

	if p, ok := r.Pitching(); ok {
		v.checkPitching(r, p)
	} else if b, ok := r.Batting(); ok {
		v.checkBatting(r, b)
	} else {
		v.fail("role", "stat line does not match role")
	}
	v.checkValuation(r)
	return v.err
}

func (v *checker) checkPitching(r *Record, p *PitchingLine) {
	v.floatRange("era", p.ERA, 1.0, 7.0)
	v.floatRange("whip", p.WHIP, 0.8, 1.8)
	v.floatRange("innings", p.Innings, 20, 220)
	v.intRange("strikeouts", p.Strikeouts, 0, math.MaxInt)
	v.intRange("walks", p.Walks, 0, math.MaxInt)
	v.intRange("wins", p.Wins, 0, 25)
	v.intRange("losses", p.Losses, 0, 20)
	v.intRange("saves", p.Saves, 0, 50)
	if r.Position == StartingPitcher && p.Saves != 0 {
		v.fail("saves", "starting pitchers record no saves")
	}
	v.floatRange("fip", p.FIP, 1.5, 6.0)
	v.floatRange("hr_per_9", p.HRPer9, 0.1, 2.5)
	v.identity("k_per_9", p.KPer9, float64(p.Strikeouts)/(p.Innings/9))
	v.identity("bb_per_9", p.BBPer9, float64(p.Walks)/(p.Innings/9))
	v.floatRange("war", r.WAR, 0, 10)
}

func (v *checker) checkBatting(r *Record, b *BattingLine) {
	v.floatRange("batting_avg", b.BattingAvg, 0.150, 0.350)
	v.floatRange("obp", b.OBP-b.BattingAvg, 0.020, 0.150)
	v.floatRange("slg", b.SLG, 0.280, 0.650)
	v.identity("ops", b.OPS, b.OBP+b.SLG)
	v.intRange("wrc_plus", b.WRCPlus, 40, 200)
	v.intRange("at_bats", b.AtBats, 100, 650)
	v.intRange("hits", b.Hits, 0, b.AtBats)
	v.intRange("home_runs", b.HomeRuns, 0, b.AtBats)
	v.intRange("rbis", b.RBIs, 10, 150)
	v.intRange("stolen_bases", b.StolenBases, 0, 60)
	v.floatRange("exit_velocity", b.ExitVelocity, 80, 115)
	v.floatRange("sprint_speed", b.SprintSpeed, 23, 30)
	v.floatRange("barrel_pct", b.BarrelPct, 0, 25)
	if r.Position == DesignatedHitter && (b.DefensiveRunsSaved != 0 || b.OutsAboveAverage != 0) {
		v.fail("defensive_runs_saved", "designated hitters carry no defensive metrics")
	}
	v.floatRange("x_ba", b.XBA, 0.150, 0.350)
	v.floatRange("x_slg", b.XSLG, 0.280, 0.650)
	v.floatRange("x_woba", b.XWOBA, 0.250, 0.450)
	v.floatRange("war", r.WAR, 0, 12)
}

func (v *checker) checkValuation(r *Record) {
	val := r.Valuation
	v.floatRange("salary", val.Salary, LeagueMinimum, SalaryCap)
	v.intRange("contract_years", val.ContractYears, 1, 10)
	v.floatRange("injury_risk", val.InjuryRisk, 0.1, 0.9)
	v.floatRange("war_projection", val.WARProjection, 0, 12)
	v.floatRange("projection_uncertainty", val.ProjectionUncertainty, 0.1, 0.6)
	v.identity("value_differential", val.ValueDifferential, val.MarketValue-val.Salary)
	v.identity("war_per_dollar", val.WARPerDollar, r.WAR/(val.Salary/1e6))
}

type checker struct {
	id  int
	err error
}

func (v *checker) fail(field, reason string) {
	if v.err == nil {
		v.err = fmt.Errorf("%w: player %d: %s: %s", ErrInvariant, v.id, field, reason)
	}
}

func (v *checker) intRange(field string, x, lo, hi int) {
	if x < lo || x > hi {
		v.fail(field, fmt.Sprintf("%d outside [%d, %d]", x, lo, hi))
	}
}

func (v *checker) floatRange(field string, x, lo, hi float64) {
	if math.IsNaN(x) || x < lo-tolerance || x > hi+tolerance {
		v.fail(field, fmt.Sprintf("%g outside [%g, %g]", x, lo, hi))
	}
}

// identity compares with a tolerance relative to the magnitude of the expected value.
func (v *checker) identity(field string, got, want float64) {
	scale := math.Max(1, math.Abs(want))
	if math.IsNaN(got) || math.Abs(got-want) > tolerance*scale {
		v.fail(field, fmt.Sprintf("%g does not equal derived %g", got, want))
	}
}
