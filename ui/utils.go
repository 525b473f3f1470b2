package ui

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"statline/domain/core"
	"statline/domain/player"
	"statline/internal/errors"
)

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}

// respondErr maps err to a status and writes it.
func (a *App) respondErr(w http.ResponseWriter, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		a.logger.Error("request failed: %v", err)
	}
	respondError(w, status, code, err.Error())
}

func classify(err error) (int, string) {
	switch {
	case core.IsNotFoundError(err):
		return http.StatusNotFound, errors.CodeNotFound
	case stderrors.Is(err, core.ErrUnknownCategory),
		stderrors.Is(err, core.ErrUnknownMetric),
		stderrors.Is(err, core.ErrInsufficientData),
		stderrors.Is(err, player.ErrUnknownPosition),
		stderrors.Is(err, player.ErrUnknownRole):
		return http.StatusBadRequest, errors.CodeInvalidInput
	}

	switch code := errors.GetCode(err); code {
	case errors.CodeNotFound:
		return http.StatusNotFound, code
	case errors.CodeInvalidInput, errors.CodeValidationError:
		return http.StatusBadRequest, code
	case "UNKNOWN":
		return http.StatusInternalServerError, errors.CodeInternalError
	default:
		return http.StatusInternalServerError, code
	}
}

// queryInt reads an integer query parameter, falling back to def when it is absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("%s must be an integer, got %q", key, raw))
	}
	return v, nil
}

func queryFloat(r *http.Request, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("%s must be a number, got %q", key, raw))
	}
	return v, nil
}

// playerIDParam parses a player id taken from the path or query.
func playerIDParam(raw, name string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("%s must be a player id, got %q", name, raw))
	}
	return id, nil
}
