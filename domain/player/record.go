// Package player defines the generated player record and its invariants.
package player

const (
	// BaseID is the id of the first record in a population.
	BaseID = 1000
	// LeagueMinimum is the salary floor.
	LeagueMinimum = 720000.0
	// SalaryCap is the salary ceiling.
	SalaryCap = 50000000.0
)

// Record is one generated player. Role selects which of PitchingLine or BattingLine
// is set; the other is nil. Both embed flat into the JSON encoding.
type Record struct {
	PlayerID     int      `json:"player_id"`
	Name         string   `json:"name"`
	Team         string   `json:"team"`
	TeamName     string   `json:"team_name"`
	Position     Position `json:"position"`
	PositionName string   `json:"position_name"`
	Age          int      `json:"age"`
	ServiceTime  int      `json:"service_time"`
	Role         Role     `json:"role"`
	WAR          float64  `json:"war"`

	*PitchingLine
	*BattingLine
	Valuation
}

// PitchingLine is the pitcher stat set.
type PitchingLine struct {
	ERA        float64 `json:"era"`
	WHIP       float64 `json:"whip"`
	Innings    float64 `json:"innings"`
	Strikeouts int     `json:"strikeouts"`
	Walks      int     `json:"walks"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Saves      int     `json:"saves"`
	FIP        float64 `json:"fip"`
	KPer9      float64 `json:"k_per_9"`
	BBPer9     float64 `json:"bb_per_9"`
	HRPer9     float64 `json:"hr_per_9"`
}

// BattingLine is the position-player stat set, including Statcast and defensive fields.
type BattingLine struct {
	BattingAvg         float64 `json:"batting_avg"`
	OBP                float64 `json:"obp"`
	SLG                float64 `json:"slg"`
	OPS                float64 `json:"ops"`
	WRCPlus            int     `json:"wrc_plus"`
	AtBats             int     `json:"at_bats"`
	Hits               int     `json:"hits"`
	HomeRuns           int     `json:"home_runs"`
	RBIs               int     `json:"rbis"`
	StolenBases        int     `json:"stolen_bases"`
	ExitVelocity       float64 `json:"exit_velocity"`
	LaunchAngle        float64 `json:"launch_angle"`
	SprintSpeed        float64 `json:"sprint_speed"`
	BarrelPct          float64 `json:"barrel_pct"`
	DefensiveRunsSaved int     `json:"defensive_runs_saved"`
	OutsAboveAverage   int     `json:"outs_above_average"`
	XBA                float64 `json:"x_ba"`
	XSLG               float64 `json:"x_slg"`
	XWOBA              float64 `json:"x_woba"`
}

// Valuation holds salary, contract, market value and projection fields.
type Valuation struct {
	Salary                     float64 `json:"salary"`
	SalaryFormatted            string  `json:"salary_formatted"`
	ContractYears              int     `json:"contract_years"`
	WARProjection              float64 `json:"war_projection"`
	ProjectionUncertainty      float64 `json:"projection_uncertainty"`
	MarketValue                float64 `json:"market_value"`
	MarketValueFormatted       string  `json:"market_value_formatted"`
	ValueDifferential          float64 `json:"value_differential"`
	ValueDifferentialFormatted string  `json:"value_differential_formatted"`
	InjuryRisk                 float64 `json:"injury_risk"`
	WARPerDollar               float64 `json:"war_per_dollar"`
}

// IsPitcher reports whether the record carries a pitching line.
func (r *Record) IsPitcher() bool {
	return r.Role == RolePitcher
}

// Pitching returns the pitching line and whether the record is a pitcher.
func (r *Record) Pitching() (*PitchingLine, bool) {
	return r.PitchingLine, r.Role == RolePitcher && r.PitchingLine != nil
}

// Batting returns the batting line and whether the record is a position player.
func (r *Record) Batting() (*BattingLine, bool) {
	return r.BattingLine, r.Role == RoleBatter && r.BattingLine != nil
}
