package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gestao/internal/core"
	"gestao/internal/table"
)

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps a domain error to a status code and serializes it.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), map[string]string{"error": err.Error()})
}

// statusForError maps domain sentinels onto HTTP status codes. Validation
// failures are 422, missing records 404, a full slot 409, anything else 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrSlotFull):
		return http.StatusConflict
	case errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidStatus),
		errors.Is(err, core.ErrInvalidPerson),
		errors.Is(err, core.ErrInvalidInstallments),
		errors.Is(err, core.ErrInvalidWeekday),
		errors.Is(err, core.ErrInvalidSlot),
		errors.Is(err, core.ErrEmptyClient),
		errors.Is(err, core.ErrEmptyName),
		errors.Is(err, core.ErrEmptyTaxID):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeTable serializes a raw table as columns plus rows.
func writeTable(w http.ResponseWriter, t table.Table) {
	writeJSON(w, http.StatusOK, map[string]any{
		"columns": t.Columns,
		"rows":    t.Rows,
		"count":   t.Len(),
	})
}

// requirePost rejects non-POST requests. Returns false when rejected.
func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// parseRow reads a zero-based row index from a form field.
func parseRow(r *http.Request, field string) (int, bool) {
	v := strings.TrimSpace(r.Form.Get(field))
	row, err := strconv.Atoi(v)
	if err != nil || row < 0 {
		return 0, false
	}
	return row, true
}

// parseDateOrToday parses a DD/MM/YYYY form value, defaulting to today when
// the field is empty.
func parseDateOrToday(v string) (core.Date, error) {
	if strings.TrimSpace(v) == "" {
		return core.Today(), nil
	}
	return core.ParseDate(v)
}

// parseYearParam reads the "ano" query parameter, defaulting to the current
// year when absent or unparseable.
func parseYearParam(r *http.Request) int {
	if v := strings.TrimSpace(r.URL.Query().Get("ano")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			return y
		}
	}
	return time.Now().Year()
}

// parseLimitParam reads an optional "limit" query parameter.
func parseLimitParam(r *http.Request) (int, bool) {
	v := strings.TrimSpace(r.URL.Query().Get("limit"))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
