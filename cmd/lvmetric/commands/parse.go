package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errEmptyInput = errors.New("empty input")

const (
	elemSep = ","
	rowSep  = ";"
)

// parseVector reads "1, 2.5,-3" into a vector.
func parseVector(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyInput
	}
	fields := strings.Split(s, elemSep)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// parseRows reads "1,0;0,1" into rows. Rows are not required to share a length;
// consumers that need a rectangle check it themselves.
func parseRows(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyInput
	}
	parts := strings.Split(strings.TrimSuffix(s, rowSep), rowSep)
	out := make([][]float64, len(parts))
	for i, p := range parts {
		row, err := parseVector(p)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = row
	}

	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
