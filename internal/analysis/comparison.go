package analysis

import (
	"fmt"
	"math"

	"statline/domain/player"
	"statline/internal/format"
)

// ValueTier buckets a player's surplus value.
type ValueTier string

const (
	SignificantlyUndervalued ValueTier = "significantly_undervalued"
	ModeratelyUndervalued    ValueTier = "moderately_undervalued"
	SlightlyUndervalued      ValueTier = "slightly_undervalued"
	FairlyValued             ValueTier = "fairly_valued"
	Overvalued               ValueTier = "overvalued"
)

var tierLabels = map[ValueTier]string{
	SignificantlyUndervalued: "Significantly undervalued",
	ModeratelyUndervalued:    "Moderately undervalued",
	SlightlyUndervalued:      "Slightly undervalued",
	FairlyValued:             "Fairly valued",
	Overvalued:               "Overvalued",
}

// Label is the human-readable tier name.
func (t ValueTier) Label() string { return tierLabels[t] }

// evenTradeThreshold is the surplus gap, in millions, under which a trade is even.
const evenTradeThreshold = 5.0

// Assessment is the value verdict for one player.
type Assessment struct {
	PlayerID              int       `json:"player_id"`
	Name                  string    `json:"name"`
	Tier                  ValueTier `json:"tier"`
	Label                 string    `json:"label"`
	SalaryM               float64   `json:"salary_m"`
	MarketValueM          float64   `json:"market_value_m"`
	ValueDifferentialM    float64   `json:"value_differential_m"`
	WARProjection         float64   `json:"war_projection"`
	ValueDifferentialText string    `json:"value_differential_formatted"`
}

// TierFor buckets a value differential given in millions.
func TierFor(diffM float64) ValueTier {
	switch {
	case diffM > 20:
		return SignificantlyUndervalued
	case diffM > 10:
		return ModeratelyUndervalued
	case diffM > 0:
		return SlightlyUndervalued
	case diffM > -10:
		return FairlyValued
	default:
		return Overvalued
	}
}

// Assess classifies r by its value differential.
func Assess(r *player.Record) Assessment {
	diffM := r.ValueDifferential / 1e6
	tier := TierFor(diffM)
	return Assessment{
		PlayerID:              r.PlayerID,
		Name:                  r.Name,
		Tier:                  tier,
		Label:                 tier.Label(),
		SalaryM:               format.Millions(r.Salary),
		MarketValueM:          format.Millions(r.MarketValue),
		ValueDifferentialM:    format.Millions(r.ValueDifferential),
		WARProjection:         r.WARProjection,
		ValueDifferentialText: r.ValueDifferentialFormatted,
	}
}

// Trade summarizes who gives up surplus value if the two players are swapped.
// GivingUpID is the player whose team loses surplus and is zero for an even trade.
type Trade struct {
	Even         bool    `json:"even"`
	GivingUpID   int     `json:"giving_up_id,omitempty"`
	GivingUpName string  `json:"giving_up_name,omitempty"`
	SurplusGapM  float64 `json:"surplus_gap_m"`
	Summary      string  `json:"summary"`
}

// StatLine compares one metric between the two players.
type StatLine struct {
	Code   string  `json:"code"`
	Label  string  `json:"label"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	Better string  `json:"better"`
}

// Comparison is the side-by-side view of two players.
type Comparison struct {
	A              *player.Record `json:"a"`
	B              *player.Record `json:"b"`
	AssessmentA    Assessment     `json:"assessment_a"`
	AssessmentB    Assessment     `json:"assessment_b"`
	Stats          []StatLine     `json:"stats"`
	Trade          Trade          `json:"trade"`
	Considerations []string       `json:"considerations"`
}

// Compare builds the comparison of a and b.
func Compare(a, b *player.Record) Comparison {
	return Comparison{
		A:              a,
		B:              b,
		AssessmentA:    Assess(a),
		AssessmentB:    Assess(b),
		Stats:          compareStats(a, b),
		Trade:          AnalyzeTrade(a, b),
		Considerations: Considerations(a, b),
	}
}

// CompareByID looks both players up in records.
func CompareByID(records []player.Record, idA, idB int) (Comparison, error) {
	a, err := findRecord(records, idA)
	if err != nil {
		return Comparison{}, err
	}
	b, err := findRecord(records, idB)
	if err != nil {
		return Comparison{}, err
	}
	return Compare(a, b), nil
}

// AnalyzeTrade: a surplus gap under $5M is even; otherwise the side with more
// surplus gives up the difference.
func AnalyzeTrade(a, b *player.Record) Trade {
	surplusA := a.ValueDifferential / 1e6
	surplusB := b.ValueDifferential / 1e6
	gap := math.Abs(surplusA - surplusB)

	if gap < evenTradeThreshold {
		return Trade{Even: true, SurplusGapM: gap, Summary: "This would be a relatively even trade in terms of value."}
	}
	giver := a
	if surplusB > surplusA {
		giver = b
	}
	return Trade{
		GivingUpID:   giver.PlayerID,
		GivingUpName: giver.Name,
		SurplusGapM:  gap,
		Summary: fmt.Sprintf("%s's team would be giving up approximately $%.1fM in surplus value in this trade.",
			giver.Name, gap),
	}
}

// Considerations lists the non-value factors that complicate a swap.
func Considerations(a, b *player.Record) []string {
	out := []string{}
	if abs(a.Age-b.Age) > 5 {
		younger, older := a, b
		if b.Age < a.Age {
			younger, older = b, a
		}
		out = append(out, fmt.Sprintf("%s is significantly younger than %s, which affects long-term value.", younger.Name, older.Name))
	}
	if abs(a.ServiceTime-b.ServiceTime) > 3 {
		less, more := a, b
		if b.ServiceTime < a.ServiceTime {
			less, more = b, a
		}
		out = append(out, fmt.Sprintf("%s has significantly more team control remaining than %s.", less.Name, more.Name))
	}
	if abs(a.ContractYears-b.ContractYears) > 3 {
		longer, shorter := a, b
		if b.ContractYears > a.ContractYears {
			longer, shorter = b, a
		}
		out = append(out, fmt.Sprintf("%s has a significantly longer contract than %s, affecting financial flexibility.", longer.Name, shorter.Name))
	}
	if a.IsPitcher() != b.IsPitcher() {
		out = append(out, "This trade involves different player types (pitcher vs. position player), making direct comparison difficult.")
	}
	return out
}

// compareStats lines up every metric both records carry.
func compareStats(a, b *player.Record) []StatLine {
	var out []StatLine
	for _, m := range metrics {
		va, okA := m.Value(a)
		vb, okB := m.Value(b)
		if !okA || !okB {
			continue
		}
		better := "even"
		if m.Better(va, vb) {
			better = "a"
		} else if m.Better(vb, va) {
			better = "b"
		}
		out = append(out, StatLine{Code: m.Code, Label: m.Label, A: va, B: vb, Better: better})
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
