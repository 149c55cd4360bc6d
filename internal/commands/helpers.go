package commands

import (
	"fmt"
	"strconv"
	"strings"

	"gestao/internal/core"
)

// parseDateFlag parses a DD/MM/YYYY flag, defaulting to today when empty.
func parseDateFlag(v string) (core.Date, error) {
	if strings.TrimSpace(v) == "" {
		return core.Today(), nil
	}
	d, err := core.ParseDate(v)
	if err != nil {
		return core.Date{}, fmt.Errorf("invalid data %q, expected DD/MM/YYYY", v)
	}
	return d, nil
}

// parseRowArg parses a zero-based row position argument.
func parseRowArg(v string) (int, error) {
	row, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || row < 0 {
		return 0, fmt.Errorf("invalid row %q", v)
	}
	return row, nil
}
