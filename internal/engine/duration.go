package engine

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var durationToken = regexp.MustCompile(`(\d+)([HMS])`)

// ParseDurationMinutes decodes the catalog's compact duration notation
// (tokens of the form <digits><unit>, units H/M/S, any subset present) into
// minutes. Seconds are bucketed into units of 3, each unit contributing 0.05
// of a minute. This coarse approximation is what existing workbooks contain,
// so it must not be replaced with a true seconds conversion.
func ParseDurationMinutes(raw string) (float64, error) {
	matches := durationToken.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("malformed duration %q", raw)
	}

	units := make(map[string]int, 3)
	for _, match := range matches {
		value, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, fmt.Errorf("malformed duration %q: %w", raw, err)
		}
		units[match[2]] = value
	}

	minutes := float64(units["H"]*60 + units["M"])
	minutes += math.Round(float64(units["S"])/3) * 5 / 100
	return minutes, nil
}
