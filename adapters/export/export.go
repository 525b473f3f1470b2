// Package export writes player populations to CSV, JSON and XLSX.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"statline/domain/player"
	"statline/internal/errors"
	"statline/ports"
)

// Formats are the supported export formats, in the order they are listed to users.
var Formats = []string{"csv", "json", "xlsx"}

// SheetName is the worksheet that holds the players in an XLSX export.
const SheetName = "Players"

// ForFormat returns the exporter for a format name such as "csv".
func ForFormat(name string) (ports.Exporter, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "csv":
		return CSV{}, nil
	case "json":
		return JSON{Indent: true}, nil
	case "xlsx", "excel":
		return XLSX{}, nil
	}
	return nil, errors.ExportError(name, fmt.Errorf("unsupported format %q (want one of %s)", name, strings.Join(Formats, ", ")))
}

// WriteFile picks the exporter from the path's extension and writes records to it.
func WriteFile(path string, records []player.Record) error {
	exp, err := ForFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.ExportError(exp.Format(), err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.ExportError(exp.Format(), err)
	}
	if err := exp.Export(f, records); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.ExportError(exp.Format(), err)
	}
	return nil
}

// CSV writes one header row followed by one row per record.
type CSV struct{}

func (CSV) Format() string      { return "csv" }
func (CSV) ContentType() string { return "text/csv" }

func (CSV) Export(w io.Writer, records []player.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return errors.ExportError("csv", err)
	}
	for i := range records {
		if err := cw.Write(Row(&records[i])); err != nil {
			return errors.ExportError("csv", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.ExportError("csv", err)
	}
	return nil
}

// JSON writes the records as a single array.
type JSON struct {
	Indent bool
}

func (JSON) Format() string      { return "json" }
func (JSON) ContentType() string { return "application/json" }

func (j JSON) Export(w io.Writer, records []player.Record) error {
	enc := json.NewEncoder(w)
	if j.Indent {
		enc.SetIndent("", "  ")
	}
	if records == nil {
		records = []player.Record{}
	}
	if err := enc.Encode(records); err != nil {
		return errors.ExportError("json", err)
	}
	return nil
}

// XLSX writes a workbook with a single Players sheet.
type XLSX struct{}

func (XLSX) Format() string { return "xlsx" }
func (XLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSX) Export(w io.Writer, records []player.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.ExportError("xlsx", err)
	}

	for i, h := range Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.ExportError("xlsx", err)
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return errors.ExportError("xlsx", err)
		}
	}

	for r := range records {
		rowIdx := r + 2
		for c, v := range cells(&records[r]) {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err != nil {
				return errors.ExportError("xlsx", err)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return errors.ExportError("xlsx", err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.ExportError("xlsx", err)
	}
	return nil
}

// Headers are the flat column names shared by the CSV and XLSX exports.
var Headers = []string{
	"player_id", "name", "team", "position", "age", "service_time", "war",
	"era", "whip", "innings_pitched", "strikeouts", "walks", "wins", "losses", "saves", "fip", "k_per_9", "bb_per_9", "hr_per_9",
	"batting_avg", "obp", "slg", "ops", "wrc_plus", "at_bats", "hits", "home_runs", "rbis", "stolen_bases",
	"exit_velocity", "launch_angle", "sprint_speed", "barrel_pct", "defensive_runs_saved", "outs_above_average", "xba", "xslg", "xwoba",
	"salary", "contract_years", "war_projection", "projection_uncertainty", "market_value", "value_differential", "injury_risk", "war_per_dollar",
}

const (
	pitchingColumns = 12
	battingColumns  = 19
)

// cells returns one value per header. Columns of the other role are nil.
func cells(r *player.Record) []interface{} {
	out := make([]interface{}, 0, len(Headers))
	out = append(out, r.PlayerID, r.Name, r.Team, string(r.Position), r.Age, r.ServiceTime, r.WAR)

	if p, ok := r.Pitching(); ok {
		out = append(out, p.ERA, p.WHIP, p.Innings, p.Strikeouts, p.Walks, p.Wins, p.Losses, p.Saves, p.FIP, p.KPer9, p.BBPer9, p.HRPer9)
	} else {
		out = append(out, make([]interface{}, pitchingColumns)...)
	}

	if b, ok := r.Batting(); ok {
		out = append(out, b.BattingAvg, b.OBP, b.SLG, b.OPS, b.WRCPlus, b.AtBats, b.Hits, b.HomeRuns, b.RBIs, b.StolenBases,
			b.ExitVelocity, b.LaunchAngle, b.SprintSpeed, b.BarrelPct, b.DefensiveRunsSaved, b.OutsAboveAverage, b.XBA, b.XSLG, b.XWOBA)
	} else {
		out = append(out, make([]interface{}, battingColumns)...)
	}

	out = append(out, r.Salary, r.ContractYears, r.WARProjection, r.ProjectionUncertainty,
		r.MarketValue, r.ValueDifferential, r.InjuryRisk, r.WARPerDollar)
	return out
}

// Row is cells rendered as CSV strings; nil cells become empty strings.
func Row(r *player.Record) []string {
	vals := cells(r)
	out := make([]string, len(vals))
	for i, v := range vals {
		switch x := v.(type) {
		case nil:
			out[i] = ""
		case float64:
			out[i] = strconv.FormatFloat(x, 'f', -1, 64)
		case int:
			out[i] = strconv.Itoa(x)
		case string:
			out[i] = x
		default:
			out[i] = fmt.Sprint(x)
		}
	}
	return out
}
