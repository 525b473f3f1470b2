package generator

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statline/domain/player"
	"statline/internal/catalog"
	"statline/internal/errors"
	"statline/internal/format"
	"statline/ports"
)

// constSource returns the same uniform forever. At 0.5 every normal draw lands on
// its mean (sin(pi) is ~1e-16), which makes derived formulas easy to check.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func constFactory(v float64) ports.SourceFactory {
	return func(int64) ports.RandomSource { return constSource(v) }
}

func onlyPosition(code player.Position) *catalog.Catalog {
	c := catalog.Default()
	entry, _ := c.Position(code)
	entry.Weight = 1
	c.Positions = []catalog.PositionEntry{entry}
	return c
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(42, 250)
	require.NoError(t, err)
	b, err := Generate(42, 250)
	require.NoError(t, err)
	require.Equal(t, a, b)

	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	assert.JSONEq(t, string(ja), string(jb))
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a, _ := Generate(42, 20)
	b, _ := Generate(43, 20)
	assert.NotEqual(t, a, b)
}

func TestGenerateCount(t *testing.T) {
	for _, n := range []int{0, 1, 7, 250, 600} {
		recs, err := Generate(42, n)
		require.NoError(t, err)
		assert.Len(t, recs, n)
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	_, err := Generate(42, -1)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestGenerateRejectsEmptyCatalog(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog = catalog.Default()
	cfg.Catalog.LastNames = nil
	_, err := New(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestGenerateIDsUniqueAndMonotonic(t *testing.T) {
	recs, err := Generate(42, 250)
	require.NoError(t, err)
	for i, r := range recs {
		assert.Equal(t, player.BaseID+i, r.PlayerID)
	}
}

func TestGeneratePrefixStable(t *testing.T) {
	short, _ := Generate(42, 10)
	long, _ := Generate(42, 250)
	assert.Equal(t, short, long[:10])
}

func TestGenerateInvariantsAcrossSeeds(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, 7919, -5, 230538014, 1 << 40} {
		recs, err := Generate(seed, 300)
		require.NoError(t, err)
		for i := range recs {
			r := &recs[i]
			require.NoError(t, r.Validate(), "seed %d", seed)

			_, isPitcher := r.Pitching()
			_, isBatter := r.Batting()
			assert.NotEqual(t, isPitcher, isBatter, "exactly one stat line")
			assert.Equal(t, r.Position.IsPitcher(), isPitcher)

			assert.InDelta(t, r.MarketValue-r.Salary, r.ValueDifferential, 1e-6)
			assert.Equal(t, r.WAR/(r.Salary/1e6), r.WARPerDollar)
		}
	}
}

func TestSeed42ReferencePopulation(t *testing.T) {
	g, err := New(DefaultConfig())
	require.NoError(t, err)
	recs, err := g.Generate()
	require.NoError(t, err)

	want := []struct {
		name     string
		team     string
		position player.Position
	}{
		{"Chris Bregman", "CLE", player.StartingPitcher},
		{"Juan Buxton", "SDP", player.FirstBase},
		{"Aaron Freeman", "STL", player.FirstBase},
		{"Corbin Bregman", "LAA", player.Shortstop},
		{"Kevin Rendon", "MIN", player.RightField},
		{"James Marte", "COL", player.ThirdBase},
	}
	for i, w := range want {
		assert.Equal(t, w.name, recs[i].Name, "record %d", i)
		assert.Equal(t, w.team, recs[i].Team, "record %d", i)
		assert.Equal(t, w.position, recs[i].Position, "record %d", i)
	}

	assert.Equal(t, 27, recs[0].Age)
	assert.Equal(t, 6, recs[0].ServiceTime)
	assert.Equal(t, "Cleveland Guardians", recs[0].TeamName)
	assert.Equal(t, "Starting Pitcher", recs[0].PositionName)
	assert.Equal(t, 0, recs[0].Saves)
	assert.Equal(t, 32, recs[2].Age)
	assert.Equal(t, 14, recs[2].ServiceTime)
	assert.Equal(t, 650, recs[2].AtBats)
	assert.Equal(t, 157, recs[2].WRCPlus)

	counts := map[player.Position]int{}
	for _, r := range recs {
		counts[r.Position]++
	}
	assert.Equal(t, 57, counts[player.StartingPitcher])
	assert.Equal(t, 28, counts[player.ReliefPitcher])
	assert.Equal(t, 7, counts[player.DesignatedHitter])
	assert.Equal(t, 12157, g.Draws())
}

func TestMidpointBatter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 1
	cfg.Source = constFactory(0.5)
	g, err := New(cfg)
	require.NoError(t, err)

	r, err := g.Next()
	require.NoError(t, err)

	assert.Equal(t, "Alex Bregman", r.Name)
	assert.Equal(t, "MIN", r.Team)
	assert.Equal(t, player.CenterField, r.Position)
	assert.Equal(t, player.RoleBatter, r.Role)
	assert.Equal(t, 28, r.Age)
	assert.Equal(t, 5, r.ServiceTime)

	b, ok := r.Batting()
	require.True(t, ok)
	assert.Nil(t, r.PitchingLine)
	assert.InDelta(t, 0.250, b.BattingAvg, 1e-9)
	assert.InDelta(t, 0.320, b.OBP, 1e-9)
	assert.InDelta(t, 0.420, b.SLG, 1e-9)
	assert.InDelta(t, 0.740, b.OPS, 1e-9)
	assert.Equal(t, 500, b.AtBats)
	assert.Equal(t, 125, b.Hits)
	assert.Equal(t, 10, b.HomeRuns)
	assert.Equal(t, 35, b.RBIs)
	assert.Equal(t, 30, b.StolenBases, "center field is a speed position")
	assert.Equal(t, 110, b.WRCPlus)
	assert.InDelta(t, 0.55, r.WAR, 1e-9)
	assert.InDelta(t, 88.5, b.ExitVelocity, 1e-9)
	assert.InDelta(t, 0.250, b.XWOBA, 1e-9, "(0.25+0.42)/3 clamps to the floor")

	// Arbitration: 720000 + (3/3) * (0.55/2) * 5M, with no base draw.
	assert.InDelta(t, 2095000, r.Salary, 1e-3)
	assert.Equal(t, 1, r.ContractYears)
	assert.InDelta(t, 0.5, r.InjuryRisk, 1e-9)
	assert.InDelta(t, 0.55, r.WARProjection, 1e-9)
	assert.InDelta(t, 0.25, r.ProjectionUncertainty, 1e-9)
	assert.InDelta(t, 4400000, r.MarketValue, 1e-3)
	assert.InDelta(t, 2305000, r.ValueDifferential, 1e-3)
	assert.Equal(t, format.Currency(r.Salary), r.SalaryFormatted)
	assert.Equal(t, "$4.40M", r.MarketValueFormatted)

	assert.Equal(t, 50, g.Draws())
}

func TestDesignatedHitterSkipsDefensiveDraws(t *testing.T) {
	draws := func(code player.Position) (int, player.Record) {
		cfg := DefaultConfig()
		cfg.Catalog = onlyPosition(code)
		cfg.Source = constFactory(0.5)
		g, err := New(cfg)
		require.NoError(t, err)
		r, err := g.Next()
		require.NoError(t, err)
		return g.Draws(), r
	}

	dhDraws, dh := draws(player.DesignatedHitter)
	lfDraws, _ := draws(player.LeftField)
	assert.Equal(t, 4, lfDraws-dhDraws)
	assert.Zero(t, dh.DefensiveRunsSaved)
	assert.Zero(t, dh.OutsAboveAverage)
	// wRC+ 110 at DH: 10/20 * 0.7.
	assert.InDelta(t, 0.35, dh.WAR, 1e-9)
}

func TestReliefPitcherDrawsSaves(t *testing.T) {
	run := func(code player.Position) (int, player.Record) {
		cfg := DefaultConfig()
		cfg.Catalog = onlyPosition(code)
		cfg.Source = constFactory(0.5)
		g, err := New(cfg)
		require.NoError(t, err)
		r, err := g.Next()
		require.NoError(t, err)
		return g.Draws(), r
	}

	rpDraws, rp := run(player.ReliefPitcher)
	spDraws, sp := run(player.StartingPitcher)
	assert.Equal(t, 2, rpDraws-spDraws)
	assert.Equal(t, 5, rp.Saves)
	assert.Equal(t, 0, sp.Saves)

	p, ok := sp.Pitching()
	require.True(t, ok)
	assert.Nil(t, sp.BattingLine)
	assert.InDelta(t, 4.0, p.ERA, 1e-9)
	assert.Equal(t, 900, p.Strikeouts)
	assert.Equal(t, 300, p.Walks)
	// Counts scale with innings, so per-nine rates are the sampled rate times nine.
	assert.InDelta(t, 81.0, p.KPer9, 1e-9)
	assert.InDelta(t, 27.0, p.BBPer9, 1e-9)
	// (5 - 4) * (100 / 200)
	assert.InDelta(t, 0.5, sp.WAR, 1e-9)
}

func TestSalaryTier(t *testing.T) {
	tests := []struct {
		name    string
		service int
		war     float64
		want    Tier
	}{
		{"rookie", 0, 4, Tier{Regime: PreArbitration, Mean: 720000, StdDev: 50000}},
		{"last pre-arb year", 2, 9, Tier{Regime: PreArbitration, Mean: 720000, StdDev: 50000}},
		{"first arb year", 3, 2, Tier{Regime: Arbitration, Mean: 720000 + (1.0/3)*1*5000000}},
		{"arb with no war", 5, 0, Tier{Regime: Arbitration, Mean: 720000}},
		{"free agent below 1 war", 6, 0.5, Tier{Regime: FreeAgency, Mean: 2000000, StdDev: 500000}},
		{"free agent at 1 war", 6, 1, Tier{Regime: FreeAgency, Mean: 8000000, StdDev: 3000000}},
		{"free agent at 3 war", 10, 3, Tier{Regime: FreeAgency, Mean: 15000000, StdDev: 5000000}},
		{"star", 12, 7.5, Tier{Regime: FreeAgency, Mean: 25000000, StdDev: 8000000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SalaryTier(tt.service, tt.war)
			assert.Equal(t, tt.want.Regime, got.Regime)
			assert.InDelta(t, tt.want.Mean, got.Mean, 1e-6)
			assert.Equal(t, tt.want.StdDev, got.StdDev)
		})
	}
}

func TestMaxContractYears(t *testing.T) {
	assert.Equal(t, 10, MaxContractYears(21))
	assert.Equal(t, 10, MaxContractYears(28))
	// 12 - 2.5 rounds up to 10.
	assert.Equal(t, 10, MaxContractYears(30))
	assert.Equal(t, 9, MaxContractYears(31))
	assert.Equal(t, 5, MaxContractYears(40))
}

func TestGenerateBatchMatchesSequential(t *testing.T) {
	seeds := []int64{1, 2, 3, 42, 99}
	base := DefaultConfig()
	base.Count = 40

	got, err := GenerateBatch(context.Background(), base, seeds, 2)
	require.NoError(t, err)
	require.Len(t, got, len(seeds))
	for i, seed := range seeds {
		want, err := Generate(seed, 40)
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "seed %d", seed)
	}
}

func TestGenerateBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := GenerateBatch(ctx, DefaultConfig(), []int64{1, 2, 3}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateBatchInvalidConfig(t *testing.T) {
	base := DefaultConfig()
	base.Count = -3
	_, err := GenerateBatch(context.Background(), base, []int64{1}, 1)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestEngineGenerate(t *testing.T) {
	e := Engine{Base: DefaultConfig()}
	got, err := e.Generate(context.Background(), 7, 12)
	require.NoError(t, err)
	want, err := Generate(7, 12)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Generate(ctx, 7, 12)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStrictGeneration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strict = true
	strict, err := GenerateWith(cfg)
	require.NoError(t, err)

	loose, err := Generate(cfg.Seed, cfg.Count)
	require.NoError(t, err)
	assert.Equal(t, loose, strict, "validation consumes no draws")
}
