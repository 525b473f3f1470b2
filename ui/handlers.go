package ui

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"statline/adapters/export"
	"statline/app"
	"statline/domain/player"
	"statline/internal/analysis"
	"statline/internal/errors"
	"statline/internal/report"
)

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	pop := a.service.Population()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"players": pop.Count,
		"seed":    pop.Seed,
	})
}

func (a *App) handlePopulation(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.service.Population())
}

// handleListPlayers filters by name, team, position and role with skip/limit paging.
func (a *App) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := app.PlayerFilter{
		Name: q.Get("name"),
		Team: q.Get("team"),
	}

	if raw := q.Get("position"); raw != "" {
		pos, err := player.ParsePosition(raw)
		if err != nil {
			a.respondErr(w, err)
			return
		}
		filter.Position = pos
	}
	if raw := q.Get("role"); raw != "" {
		role, err := player.ParseRole(raw)
		if err != nil {
			a.respondErr(w, err)
			return
		}
		filter.Role = role
	}

	var err error
	if filter.Skip, err = queryInt(r, "skip", 0); err != nil {
		a.respondErr(w, err)
		return
	}
	if filter.Limit, err = queryInt(r, "limit", app.DefaultListLimit); err != nil {
		a.respondErr(w, err)
		return
	}

	players := a.service.List(filter)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players": players,
		"count":   len(players),
	})
}

func (a *App) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	rec, ok := a.playerFromPath(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (a *App) handleSimilarPlayers(w http.ResponseWriter, r *http.Request) {
	rec, ok := a.playerFromPath(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit", 5)
	if err != nil {
		a.respondErr(w, err)
		return
	}
	sims, err := analysis.Similar(a.service.Records(), rec.PlayerID, limit)
	if err != nil {
		a.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"player_id": rec.PlayerID,
		"similar":   sims,
	})
}

func (a *App) handleProjection(w http.ResponseWriter, r *http.Request) {
	rec, ok := a.playerFromPath(w, r)
	if !ok {
		return
	}
	level, err := queryFloat(r, "level", 0.8)
	if err != nil {
		a.respondErr(w, err)
		return
	}
	interval, err := analysis.ProjectionInterval(&rec, level)
	if err != nil {
		a.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, interval)
}

func (a *App) handlePercentile(w http.ResponseWriter, r *http.Request) {
	rec, ok := a.playerFromPath(w, r)
	if !ok {
		return
	}
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = "WAR"
	}
	pct, err := analysis.Percentile(a.service.Records(), rec.PlayerID, metric)
	if err != nil {
		a.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"player_id":  rec.PlayerID,
		"metric":     strings.ToUpper(metric),
		"percentile": pct,
	})
}

func (a *App) handleListTeams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.service.Teams())
}

func (a *App) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := a.service.Team(chi.URLParam(r, "code"))
	if err != nil {
		a.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, team)
}

func (a *App) handleRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := a.service.Roster(chi.URLParam(r, "code"))
	if err != nil {
		a.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, roster)
}

func (a *App) handleLeaders(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "WAR"
	}
	limit, err := queryInt(r, "limit", 10)
	if err != nil {
		a.respondErr(w, err)
		return
	}
	board, err := analysis.Leaders(a.service.Records(), category, limit)
	if err != nil {
		a.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, board)
}

func (a *App) handleLeagueAverages(w http.ResponseWriter, r *http.Request) {
	role := player.RoleBatter
	if raw := r.URL.Query().Get("role"); raw != "" {
		parsed, err := player.ParseRole(raw)
		if err != nil {
			a.respondErr(w, err)
			return
		}
		role = parsed
	}
	avgs, err := analysis.LeagueAverages(a.service.Records(), role)
	if err != nil {
		a.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, avgs)
}

func (a *App) handleCompare(w http.ResponseWriter, r *http.Request) {
	cmp, ok := a.comparisonFromQuery(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, cmp)
}

func (a *App) handleCompareReport(w http.ResponseWriter, r *http.Request) {
	cmp, ok := a.comparisonFromQuery(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(report.ComparisonHTML(cmp))
}

// handleExport streams the whole population as an attachment.
func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	exp, err := export.ForFormat(format)
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.CodeInvalidInput, err.Error())
		return
	}

	pop := a.service.Population()
	var buf bytes.Buffer
	if err := exp.Export(&buf, pop.Records); err != nil {
		a.respondErr(w, err)
		return
	}

	filename := fmt.Sprintf("players-seed%d.%s", pop.Seed, exp.Format())
	w.Header().Set("Content-Type", exp.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
	a.logger.Info("exported %d players as %s", pop.Count, exp.Format())
}

func (a *App) playerFromPath(w http.ResponseWriter, r *http.Request) (player.Record, bool) {
	id, err := playerIDParam(chi.URLParam(r, "id"), "id")
	if err != nil {
		a.respondErr(w, err)
		return player.Record{}, false
	}
	rec, err := a.service.Player(id)
	if err != nil {
		a.respondErr(w, err)
		return player.Record{}, false
	}
	return rec, true
}

func (a *App) comparisonFromQuery(w http.ResponseWriter, r *http.Request) (analysis.Comparison, bool) {
	q := r.URL.Query()
	idA, err := playerIDParam(q.Get("a"), "a")
	if err != nil {
		a.respondErr(w, err)
		return analysis.Comparison{}, false
	}
	idB, err := playerIDParam(q.Get("b"), "b")
	if err != nil {
		a.respondErr(w, err)
		return analysis.Comparison{}, false
	}
	cmp, err := analysis.CompareByID(a.service.Records(), idA, idB)
	if err != nil {
		a.respondErr(w, err)
		return analysis.Comparison{}, false
	}
	return cmp, true
}
