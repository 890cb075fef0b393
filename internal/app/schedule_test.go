package app

import (
	"errors"
	"testing"

	"templehub/pkg/domain"
	"templehub/pkg/schedule"
	"templehub/pkg/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(Config{
		Store:          store.NewMemoryStore(),
		StorageBackend: "local",
		Objects:        newTestObjects(t),
		JWTSecret:      "test-secret",
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a
}

func TestReplaceSchedulePreSeedsAllDays(t *testing.T) {
	a := newTestApp(t)
	rows := [][]string{
		{"Time", "Monday", "Friday"},
		{"0.25", "Morning Arati", ""},
		{"0.75", "", "Evening Class"},
	}
	count, err := a.ReplaceSchedule(rows)
	if err != nil {
		t.Fatalf("replace schedule: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	week, err := a.GetWeek()
	if err != nil {
		t.Fatalf("get week: %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("week length = %d, want 7", len(week))
	}
	if week[0].Day != domain.Monday || len(week[0].Events) != 1 {
		t.Fatalf("monday = %+v, want one event", week[0])
	}
	if week[0].Events[0].Time.Display != "6:00am" || week[0].Events[0].Event != "Morning Arati" {
		t.Fatalf("monday event = %+v", week[0].Events[0])
	}
	if week[4].Day != domain.Friday || len(week[4].Events) != 1 {
		t.Fatalf("friday = %+v, want one event", week[4])
	}
	for _, i := range []int{1, 2, 3, 5, 6} {
		if len(week[i].Events) != 0 {
			t.Fatalf("day %s should be empty, got %+v", week[i].Day, week[i].Events)
		}
	}
}

func TestReplaceScheduleDropsPreviousContent(t *testing.T) {
	a := newTestApp(t)
	first := [][]string{
		{"Time", "Monday"},
		{"0.25", "Old Event"},
	}
	if _, err := a.ReplaceSchedule(first); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	second := [][]string{
		{"Time", "Tuesday"},
		{"0.5", "New Event"},
	}
	if _, err := a.ReplaceSchedule(second); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	monday, err := a.GetDay(domain.Monday)
	if err != nil {
		t.Fatalf("get monday: %v", err)
	}
	if len(monday.Events) != 0 {
		t.Fatalf("monday should have been cleared, got %+v", monday.Events)
	}
	tuesday, err := a.GetDay(domain.Tuesday)
	if err != nil {
		t.Fatalf("get tuesday: %v", err)
	}
	if len(tuesday.Events) != 1 || tuesday.Events[0].Event != "New Event" {
		t.Fatalf("tuesday = %+v", tuesday.Events)
	}
}

func TestReplaceScheduleRejectsBadHeader(t *testing.T) {
	a := newTestApp(t)
	rows := [][]string{
		{"Time", "Monday", "monday"},
		{"0.25", "A", "B"},
	}
	_, err := a.ReplaceSchedule(rows)
	if !errors.Is(err, schedule.ErrInvalidFormat) {
		t.Fatalf("err = %v, want invalid format", err)
	}
	// nothing may have been written
	monday, err := a.GetDay(domain.Monday)
	if err != nil {
		t.Fatalf("get monday: %v", err)
	}
	if len(monday.Events) != 0 {
		t.Fatalf("rejected upload must not write, got %+v", monday.Events)
	}
}

func TestGetDayUnknown(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.GetDay("monday"); !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("err = %v, want ErrUnknownDay", err)
	}
	if _, err := a.GetDay("Someday"); !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("err = %v, want ErrUnknownDay", err)
	}
}

func TestInsertEventKeepsSortedAndAllowsDuplicates(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.InsertEvent(domain.Monday, "0.75", "Evening"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := a.InsertEvent(domain.Monday, "0.25", "Morning"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	ds, err := a.InsertEvent(domain.Monday, "0.25", "Second Morning")
	if err != nil {
		t.Fatalf("insert duplicate: %v", err)
	}
	if len(ds.Events) != 3 {
		t.Fatalf("events = %d, want 3", len(ds.Events))
	}
	if ds.Events[0].Time.Display != "6:00am" || ds.Events[1].Time.Display != "6:00am" {
		t.Fatalf("duplicates not adjacent: %+v", ds.Events)
	}
	if ds.Events[2].Time.Display != "6:00pm" {
		t.Fatalf("pm entry not last: %+v", ds.Events)
	}
}

func TestInsertEventRejectsBadTime(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.InsertEvent(domain.Monday, "1.5", "x"); !errors.Is(err, schedule.ErrInvalidFormat) {
		t.Fatalf("err = %v, want invalid format", err)
	}
}

func TestInsertAndUpdateRejectEmptyTime(t *testing.T) {
	a := newTestApp(t)
	for _, raw := range []string{"", "   "} {
		if _, err := a.InsertEvent(domain.Monday, raw, "x"); !errors.Is(err, schedule.ErrInvalidFormat) {
			t.Fatalf("insert %q: err = %v, want invalid format", raw, err)
		}
	}
	monday, err := a.GetDay(domain.Monday)
	if err != nil {
		t.Fatalf("get monday: %v", err)
	}
	if len(monday.Events) != 0 {
		t.Fatalf("rejected inserts must not write, got %+v", monday.Events)
	}

	if _, err := a.InsertEvent(domain.Monday, "0.25", "Keep"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := a.UpdateEvent(domain.Monday, "6:00am", "", "x"); !errors.Is(err, schedule.ErrInvalidFormat) {
		t.Fatalf("update err = %v, want invalid format", err)
	}
}

func TestUpdateEventFirstMatchOnly(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.InsertEvent(domain.Monday, "0.25", "First"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := a.InsertEvent(domain.Monday, "0.25", "Second"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	ds, err := a.UpdateEvent(domain.Monday, "6:00am", "0.28125", "Moved")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	moved := 0
	remaining := 0
	for _, e := range ds.Events {
		switch e.Time.Display {
		case "6:45am":
			moved++
			if e.Event != "Moved" {
				t.Fatalf("moved entry = %+v", e)
			}
		case "6:00am":
			remaining++
		}
	}
	if moved != 1 || remaining != 1 {
		t.Fatalf("moved=%d remaining=%d, want 1 and 1: %+v", moved, remaining, ds.Events)
	}

	if _, err := a.UpdateEvent(domain.Monday, "9:99xx", "0.5", "x"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("err = %v, want ErrEventNotFound", err)
	}
}

func TestDeleteEventRemovesAllMatches(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.InsertEvent(domain.Monday, "0.25", "First"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := a.InsertEvent(domain.Monday, "0.25", "Second"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := a.InsertEvent(domain.Monday, "0.5", "Keep"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	ds, err := a.DeleteEvent(domain.Monday, "6:00am")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(ds.Events) != 1 || ds.Events[0].Event != "Keep" {
		t.Fatalf("events = %+v, want only Keep", ds.Events)
	}

	if _, err := a.DeleteEvent(domain.Monday, "6:00am"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("second delete err = %v, want ErrEventNotFound", err)
	}
}
