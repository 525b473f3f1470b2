package player

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBatter() Record {
	b := &BattingLine{
		BattingAvg: 0.270, OBP: 0.340, SLG: 0.450, OPS: 0.790,
		WRCPlus: 135, AtBats: 520, Hits: 140, HomeRuns: 18, RBIs: 60, StolenBases: 12,
		ExitVelocity: 90, LaunchAngle: 14, SprintSpeed: 27.5, BarrelPct: 9,
		DefensiveRunsSaved: 3, OutsAboveAverage: 1,
		XBA: 0.265, XSLG: 0.440, XWOBA: 0.30,
	}
	r := Record{
		PlayerID: 1001, Name: "Test Batter", Team: "SEA", TeamName: "Seattle Mariners",
		Position: Shortstop, PositionName: "Shortstop", Age: 27, ServiceTime: 4,
		Role: RoleBatter, WAR: 2.4, BattingLine: b,
	}
	r.Valuation = Valuation{
		Salary: 3000000, ContractYears: 1, WARProjection: 2.6, ProjectionUncertainty: 0.25,
		MarketValue: 2.4 * 8000000, InjuryRisk: 0.4,
	}
	r.ValueDifferential = r.MarketValue - r.Salary
	r.WARPerDollar = r.WAR / (r.Salary / 1e6)
	return r
}

func validPitcher() Record {
	p := &PitchingLine{
		ERA: 3.2, WHIP: 1.1, Innings: 180, Strikeouts: 200, Walks: 50,
		Wins: 12, Losses: 7, FIP: 3.4, HRPer9: 1.0,
	}
	p.KPer9 = float64(p.Strikeouts) / (p.Innings / 9)
	p.BBPer9 = float64(p.Walks) / (p.Innings / 9)
	r := Record{
		PlayerID: 1000, Name: "Test Pitcher", Team: "NYY", Position: StartingPitcher,
		Age: 30, ServiceTime: 7, Role: RolePitcher, WAR: 4.1, PitchingLine: p,
	}
	r.Valuation = Valuation{
		Salary: 20000000, ContractYears: 4, WARProjection: 3.9, ProjectionUncertainty: 0.2,
		MarketValue: 4.1 * 7500000, InjuryRisk: 0.6,
	}
	r.ValueDifferential = r.MarketValue - r.Salary
	r.WARPerDollar = r.WAR / (r.Salary / 1e6)
	return r
}

func TestValidateAcceptsWellFormedRecords(t *testing.T) {
	b := validBatter()
	p := validPitcher()
	assert.NoError(t, b.Validate())
	assert.NoError(t, p.Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		base   func() Record
		mutate func(r *Record)
		field  string
	}{
		{"age too low", validBatter, func(r *Record) { r.Age = 20 }, "age"},
		{"service too high", validBatter, func(r *Record) { r.ServiceTime = 21 }, "service_time"},
		{"salary below minimum", validBatter, func(r *Record) { r.Salary = 500000 }, "salary"},
		{"both lines", validBatter, func(r *Record) { r.PitchingLine = &PitchingLine{} }, "role"},
		{"no lines", validPitcher, func(r *Record) { r.PitchingLine = nil }, "role"},
		{"role mismatch", validBatter, func(r *Record) { r.Role = RolePitcher }, "role"},
		{"avg out of range", validBatter, func(r *Record) { r.BattingAvg = 0.4 }, "batting_avg"},
		{"ops identity", validBatter, func(r *Record) { r.OPS = 0.9 }, "ops"},
		{"dh with defence", validBatter, func(r *Record) {
			r.Position = DesignatedHitter
		}, "defensive_runs_saved"},
		{"starter with saves", validPitcher, func(r *Record) { r.Saves = 3 }, "saves"},
		{"era too high", validPitcher, func(r *Record) { r.ERA = 7.5 }, "era"},
		{"k/9 identity", validPitcher, func(r *Record) { r.KPer9 = 3 }, "k_per_9"},
		{"value differential identity", validPitcher, func(r *Record) { r.ValueDifferential += 1 }, "value_differential"},
		{"war per dollar identity", validPitcher, func(r *Record) { r.WARPerDollar *= 2 }, "war_per_dollar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.base()
			tt.mutate(&r)
			err := r.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvariant))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestWARAdjustmentTableIsExhaustive(t *testing.T) {
	for _, p := range AllPositions {
		adj := p.WARAdjustment()
		assert.Greater(t, adj, 0.0, "position %s", p)
	}
	assert.Equal(t, 1.2, Catcher.WARAdjustment())
	assert.Equal(t, 0.8, FirstBase.WARAdjustment())
	assert.Equal(t, 0.7, DesignatedHitter.WARAdjustment())
	assert.Equal(t, 1.0, StartingPitcher.WARAdjustment())
	assert.Equal(t, 1.0, Position("XX").WARAdjustment())
}

func TestPositionClassification(t *testing.T) {
	assert.True(t, StartingPitcher.IsPitcher())
	assert.True(t, ReliefPitcher.IsPitcher())
	assert.False(t, DesignatedHitter.IsPitcher())
	assert.Equal(t, RolePitcher, ReliefPitcher.Role())
	assert.Equal(t, RoleBatter, Catcher.Role())

	for _, p := range []Position{CenterField, Shortstop, SecondBase} {
		assert.True(t, p.IsSpeed(), "%s", p)
	}
	assert.False(t, FirstBase.IsSpeed())
}

func TestParsePositionAndRole(t *testing.T) {
	p, err := ParsePosition(" ss ")
	require.NoError(t, err)
	assert.Equal(t, Shortstop, p)

	_, err = ParsePosition("QB")
	assert.ErrorIs(t, err, ErrUnknownPosition)

	r, err := ParseRole("Pitchers")
	require.NoError(t, err)
	assert.Equal(t, RolePitcher, r)

	r, err = ParseRole("hitter")
	require.NoError(t, err)
	assert.Equal(t, RoleBatter, r)

	_, err = ParseRole("coach")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRecordJSONIsFlatAndRoleSpecific(t *testing.T) {
	data, err := json.Marshal(validBatter())
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "batter", fields["role"])
	assert.Contains(t, fields, "batting_avg")
	assert.Contains(t, fields, "x_woba")
	assert.Contains(t, fields, "value_differential")
	assert.NotContains(t, fields, "era")
	assert.NotContains(t, fields, "k_per_9")

	var back Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Nil(t, back.PitchingLine)
	require.NotNil(t, back.BattingLine)
	assert.Equal(t, 0.270, back.BattingAvg)
	assert.NoError(t, back.Validate())
}
