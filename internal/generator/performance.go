package generator

import (
	"statline/domain/player"
	"statline/internal/prng"
)

// drawPitching builds a pitcher's line. Draw order: era, whip, innings, strikeout
// rate, walk rate, wins, losses, saves (relievers only), fip factor, hr/9, WAR noise.
func (g *Generator) drawPitching(a attributes) (*player.PitchingLine, float64) {
	s := g.sampler
	p := &player.PitchingLine{}

	p.ERA = prng.Clamp(s.Normal(4.0, 1.0), 1.0, 7.0)
	p.WHIP = prng.Clamp(s.Normal(1.3, 0.2), 0.8, 1.8)
	p.Innings = prng.Clamp(s.Normal(100, 50), 20, 220)
	p.Strikeouts = nonNegative(prng.RoundInt(p.Innings * s.Normal(9.0, 2.0)))
	p.Walks = nonNegative(prng.RoundInt(p.Innings * s.Normal(3.0, 1.0)))
	p.Wins = prng.ClampInt(prng.RoundInt(s.Normal(8, 5)), 0, 25)
	p.Losses = prng.ClampInt(prng.RoundInt(s.Normal(8, 4)), 0, 20)
	if a.position.Code == player.ReliefPitcher {
		p.Saves = prng.ClampInt(prng.RoundInt(s.Normal(5, 10)), 0, 50)
	}

	p.FIP = prng.Clamp(p.ERA*s.Normal(1.0, 0.15), 1.5, 6.0)
	p.KPer9 = float64(p.Strikeouts) / (p.Innings / 9)
	p.BBPer9 = float64(p.Walks) / (p.Innings / 9)
	p.HRPer9 = prng.Clamp(s.Normal(1.2, 0.5), 0.1, 2.5)

	// Lower ERA over more innings is worth more.
	base := (5.0 - p.ERA) * (p.Innings / 200) * s.Normal(1.0, 0.3)
	war := prng.Clamp(base, 0, 10)
	return p, war
}

// drawBatting builds a position player's line. Draw order: avg, obp increment, slg,
// at-bats, home-run rate, rbi factor, stolen bases, WAR noise, exit velocity, launch
// angle, sprint speed, barrel rate, drs and oaa (not for DH), x_ba noise, x_slg noise.
func (g *Generator) drawBatting(a attributes) (*player.BattingLine, float64) {
	s := g.sampler
	b := &player.BattingLine{}

	b.BattingAvg = prng.Clamp(s.Normal(0.250, 0.030), 0.150, 0.350)
	b.OBP = b.BattingAvg + prng.Clamp(s.Normal(0.070, 0.020), 0.020, 0.150)
	b.SLG = prng.Clamp(s.Normal(0.420, 0.080), 0.280, 0.650)
	b.OPS = b.OBP + b.SLG

	powerHitter := b.SLG > 0.500
	sbMean := 8.0
	if a.position.Code.IsSpeed() {
		sbMean = 30
	}

	b.AtBats = prng.ClampInt(prng.RoundInt(s.Normal(500, 100)), 100, 650)
	b.Hits = prng.RoundInt(float64(b.AtBats) * b.BattingAvg)

	var hrRate float64
	if powerHitter {
		hrRate = s.Normal(0.05, 0.02)
	} else {
		hrRate = s.Normal(0.02, 0.01)
	}
	homeRuns := prng.RoundInt(float64(b.AtBats) * hrRate)
	b.RBIs = prng.ClampInt(prng.RoundInt(float64(homeRuns)*s.Normal(3.5, 0.5)), 10, 150)
	b.HomeRuns = nonNegative(homeRuns)
	b.StolenBases = prng.ClampInt(prng.RoundInt(s.Normal(sbMean, 10)), 0, 60)

	b.WRCPlus = prng.ClampInt(prng.RoundInt(100+(b.OPS-0.720)*500), 40, 200)
	base := float64(b.WRCPlus-100) / 20 * a.position.Code.WARAdjustment()
	war := prng.Clamp(base*s.Normal(1.0, 0.3), 0, 12)

	b.ExitVelocity = prng.Clamp(s.Normal(88.5, 5.0), 80, 115)
	b.LaunchAngle = s.Normal(12, 8)
	b.SprintSpeed = prng.Clamp(s.Normal(27, 1.5), 23, 30)
	b.BarrelPct = prng.Clamp(s.Normal(8, 4), 0, 25)

	if a.position.Code != player.DesignatedHitter {
		b.DefensiveRunsSaved = prng.RoundInt(s.Normal(0, 8))
		b.OutsAboveAverage = prng.RoundInt(s.Normal(0, 5))
	}

	b.XBA = prng.Clamp(b.BattingAvg+s.Normal(0, 0.020), 0.150, 0.350)
	b.XSLG = prng.Clamp(b.SLG+s.Normal(0, 0.040), 0.280, 0.650)
	b.XWOBA = prng.Clamp((b.XBA+b.XSLG)/3, 0.250, 0.450)
	return b, war
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
