// Package report renders analysis results as markdown and HTML documents.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"statline/domain/player"
	"statline/internal/analysis"
	"statline/internal/format"
)

// ComparisonMarkdown writes the side-by-side comparison of two players.
func ComparisonMarkdown(cmp analysis.Comparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s vs. %s\n\n", cmp.A.Name, cmp.B.Name)

	// Names come from the catalog and may hold table delimiters.
	aName, bName := cell(cmp.A.Name), cell(cmp.B.Name)

	b.WriteString("## Players\n\n")
	b.WriteString("| | " + aName + " | " + bName + " |\n")
	b.WriteString("|---|---|---|\n")
	row(&b, "Team", cmp.A.Team, cmp.B.Team)
	row(&b, "Position", cmp.A.PositionName, cmp.B.PositionName)
	row(&b, "Age", fmt.Sprint(cmp.A.Age), fmt.Sprint(cmp.B.Age))
	row(&b, "Service time", years(cmp.A.ServiceTime), years(cmp.B.ServiceTime))
	row(&b, "Contract", years(cmp.A.ContractYears), years(cmp.B.ContractYears))
	row(&b, "Salary", cmp.A.SalaryFormatted, cmp.B.SalaryFormatted)
	row(&b, "Market value", cmp.A.MarketValueFormatted, cmp.B.MarketValueFormatted)
	row(&b, "Value differential", cmp.A.ValueDifferentialFormatted, cmp.B.ValueDifferentialFormatted)
	row(&b, "Projected WAR", fmt.Sprintf("%.1f", cmp.A.WARProjection), fmt.Sprintf("%.1f", cmp.B.WARProjection))
	row(&b, "Assessment", cmp.AssessmentA.Label, cmp.AssessmentB.Label)

	if len(cmp.Stats) > 0 {
		b.WriteString("\n## Statistics\n\n")
		b.WriteString("| Stat | " + aName + " | " + bName + " | Edge |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, s := range cmp.Stats {
			edge := "even"
			switch s.Better {
			case "a":
				edge = aName
			case "b":
				edge = bName
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", s.Label, statValue(s.Code, s.A), statValue(s.Code, s.B), edge)
		}
	}

	b.WriteString("\n## Trade value\n\n")
	b.WriteString(cmp.Trade.Summary + "\n")

	if len(cmp.Considerations) > 0 {
		b.WriteString("\n## Considerations\n\n")
		for _, c := range cmp.Considerations {
			b.WriteString("- " + c + "\n")
		}
	}
	return b.String()
}

// LeaderboardMarkdown writes a ranked category as a table.
func LeaderboardMarkdown(board analysis.Leaderboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s leaders\n\n", board.Metric.Label)
	b.WriteString("| Rank | Player | Team | Pos | " + board.Metric.Code + " |\n")
	b.WriteString("|---:|---|---|---|---:|\n")
	for _, l := range board.Leaders {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", l.Rank, cell(l.Name), cell(l.Team), l.Position, statValue(board.Metric.Code, l.Value))
	}
	return b.String()
}

// ToHTML renders markdown produced by this package. Raw HTML in the input is dropped.
func ToHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	return markdown.Render(doc, renderer)
}

// ComparisonHTML is ComparisonMarkdown rendered to an HTML fragment.
func ComparisonHTML(cmp analysis.Comparison) []byte {
	return ToHTML(ComparisonMarkdown(cmp))
}

func row(b *strings.Builder, label, a, c string) {
	fmt.Fprintf(b, "| %s | %s | %s |\n", label, cell(a), cell(c))
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func years(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

// statValue prints rate stats to three places, money as currency and counts bare.
func statValue(code string, v float64) string {
	switch code {
	case "AVG", "OBP", "SLG", "OPS", "XWOBA":
		return fmt.Sprintf("%.3f", v)
	case "ERA", "WHIP", "FIP", "K/9", "WAR/$":
		return fmt.Sprintf("%.2f", v)
	case "WAR", "PROJ", "EV", "IP":
		return fmt.Sprintf("%.1f", v)
	case "SALARY", "VALUE":
		return format.Currency(v)
	}
	return fmt.Sprintf("%.0f", v)
}

// PlayerSummary is a one-line description of a record used by the CLI.
func PlayerSummary(r *player.Record) string {
	line := fmt.Sprintf("#%d %s (%s, %s, age %d) WAR %.1f, salary %s", r.PlayerID, r.Name, r.Team, r.Position, r.Age, r.WAR, r.SalaryFormatted)
	if p, ok := r.Pitching(); ok {
		return line + fmt.Sprintf(", ERA %.2f", p.ERA)
	}
	if bl, ok := r.Batting(); ok {
		return line + fmt.Sprintf(", %.3f/%.3f/%.3f", bl.BattingAvg, bl.OBP, bl.SLG)
	}
	return line
}
