package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"templehub/pkg/domain"
)

const secondsPerDay = 86400

// NormalizeRawTime converts a raw spreadsheet time cell into a
// TimeOfDay. Two input forms are understood: a fractional day-number in
// [0,1) where 1.0 would be 24 hours, and free-text clock strings. Empty
// input yields a zero TimeOfDay with an empty display string.
//
// The boolean result reports whether the value is usable at all; a
// numeric value outside [0,1) is not.
func NormalizeRawTime(raw string) (domain.TimeOfDay, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.TimeOfDay{}, true
	}
	if x, err := strconv.ParseFloat(raw, 64); err == nil {
		if x < 0 || x >= 1 {
			return domain.TimeOfDay{}, false
		}
		return fromDayFraction(x), true
	}
	return fromText(raw), true
}

func fromDayFraction(x float64) domain.TimeOfDay {
	total := int(x * secondsPerDay)
	hour := (total / 3600) % 24
	minute := (total % 3600) / 60
	meridiem := "am"
	if hour >= 12 {
		meridiem = "pm"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return domain.TimeOfDay{
		Hour:     hour,
		Minute:   minute,
		Display:  fmt.Sprintf("%d:%02d%s", displayHour, minute, meridiem),
		Meridiem: meridiem,
	}
}

// fromText passes free text through unchanged as the display string.
// The meridiem is recovered by substring match only, for ordering.
func fromText(raw string) domain.TimeOfDay {
	lower := strings.ToLower(raw)
	meridiem := ""
	switch {
	case strings.Contains(lower, "am"):
		meridiem = "am"
	case strings.Contains(lower, "pm"):
		meridiem = "pm"
	}
	return domain.TimeOfDay{
		Display:  raw,
		Meridiem: meridiem,
	}
}

// meridiemRank orders the legacy segments: all "am" entries sort before
// all "pm" entries, and entries with no recognized meridiem after both.
func meridiemRank(t domain.TimeOfDay) int {
	switch t.Meridiem {
	case "am":
		return 0
	case "pm":
		return 1
	default:
		return 2
	}
}

// LessTime implements the legacy sort policy: meridiem segment first,
// then lexicographic comparison of the display strings within a
// segment. This is not true chronological order ("10:00am" sorts before
// "9:00am") but is preserved deliberately; entries never cross midnight
// in practice.
func LessTime(a, b domain.TimeOfDay) bool {
	ra, rb := meridiemRank(a), meridiemRank(b)
	if ra != rb {
		return ra < rb
	}
	return strings.ToLower(a.Display) < strings.ToLower(b.Display)
}
