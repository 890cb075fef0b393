package schedule

import (
	"fmt"
	"strings"

	"templehub/pkg/domain"
)

// ErrInvalidFormat reports a structurally unusable sheet: a missing
// header, no day columns, or a column that is not one of the seven day
// identifiers. Structural errors abort the whole parse.
var ErrInvalidFormat = fmt.Errorf("invalid schedule format")

// ParsedEvent is one (day, time, event) tuple emitted by the parser.
type ParsedEvent struct {
	Day   domain.DayOfWeek
	Time  domain.TimeOfDay
	Event string
}

// ParseSheet consumes a raw tabular sheet. The first row is the header:
// cell 0 is an ignorable time-column label and every following cell
// must name one of the seven days (case-sensitive). Each data row holds
// a raw time value in cell 0 and event text positionally under the day
// columns.
//
// Rows whose time cell is empty or unrecognizable are skipped without
// failing the parse; spreadsheets are expected to contain decorative
// rows. Tuples come out in row-major order, days in header order within
// a row. Final per-day ordering is the store's concern, not ours.
func ParseSheet(rows [][]string) ([]ParsedEvent, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet has no header row", ErrInvalidFormat)
	}
	days, err := parseHeader(rows[0])
	if err != nil {
		return nil, err
	}

	var events []ParsedEvent
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		t, ok := NormalizeRawTime(row[0])
		if !ok || t.Display == "" {
			continue
		}
		for i, day := range days {
			col := i + 1
			if col >= len(row) {
				break
			}
			text := strings.TrimSpace(row[col])
			if text == "" {
				continue
			}
			events = append(events, ParsedEvent{Day: day, Time: t, Event: text})
		}
	}
	return events, nil
}

func parseHeader(header []string) ([]domain.DayOfWeek, error) {
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header has no day columns", ErrInvalidFormat)
	}
	days := make([]domain.DayOfWeek, 0, len(header)-1)
	for _, cell := range header[1:] {
		day := domain.DayOfWeek(strings.TrimSpace(cell))
		if !domain.ValidDay(day) {
			return nil, fmt.Errorf("%w: unknown day column %q", ErrInvalidFormat, cell)
		}
		days = append(days, day)
	}
	return days, nil
}
