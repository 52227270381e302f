package croptable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsultonov/agrodale/internal/domain/models"
)

// ParseRange parses the fixed textual grammar for numeric ranges:
// "5-7 mm/day" or the single-value variant "6 mm/day". The first token is the
// number part, everything after it is the unit. Anything else is rejected.
func ParseRange(text string) (models.Range, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return models.Range{}, errors.New("empty range")
	}

	numberPart := fields[0]
	unit := strings.Join(fields[1:], " ")

	if lo, hi, ok := strings.Cut(numberPart, "-"); ok {
		minVal, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return models.Range{}, fmt.Errorf("range minimum %q: %w", lo, err)
		}
		maxVal, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return models.Range{}, fmt.Errorf("range maximum %q: %w", hi, err)
		}
		return models.Range{Min: minVal, Max: maxVal, Unit: unit}, nil
	}

	val, err := strconv.ParseFloat(numberPart, 64)
	if err != nil {
		return models.Range{}, fmt.Errorf("range value %q: %w", numberPart, err)
	}
	return models.Range{Min: val, Max: val, Unit: unit}, nil
}
