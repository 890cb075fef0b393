package app

import (
	"fmt"
	"sort"

	"templehub/pkg/domain"
	"templehub/pkg/schedule"
)

const weekCacheKey = "schedule:week"

// ReplaceSchedule parses spreadsheet rows and replaces the whole weekly
// table with the result. Days absent from the sheet come back empty.
// It returns the number of entries stored.
func (a *App) ReplaceSchedule(rows [][]string) (int, error) {
	parsed, err := schedule.ParseSheet(rows)
	if err != nil {
		return 0, err
	}

	byDay := make(map[domain.DayOfWeek][]domain.ScheduleEntry, len(domain.Week))
	for _, p := range parsed {
		byDay[p.Day] = append(byDay[p.Day], domain.ScheduleEntry{Time: p.Time, Event: p.Event})
	}
	days := make([]domain.DaySchedule, 0, len(domain.Week))
	for _, day := range domain.Week {
		events := byDay[day]
		if events == nil {
			events = []domain.ScheduleEntry{}
		}
		sort.SliceStable(events, func(i, j int) bool {
			return schedule.LessTime(events[i].Time, events[j].Time)
		})
		days = append(days, domain.DaySchedule{Day: day, Events: events})
	}

	a.schedMu.Lock()
	defer a.schedMu.Unlock()
	if err := a.store.ReplaceWeek(days); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPartialReplacement, err)
	}
	a.cache.Flush()
	return len(parsed), nil
}

// GetDay returns the stored schedule for one day.
func (a *App) GetDay(day domain.DayOfWeek) (domain.DaySchedule, error) {
	if !domain.ValidDay(day) {
		return domain.DaySchedule{}, ErrUnknownDay
	}
	if cached, ok := a.cache.Get(dayCacheKey(day)); ok {
		if ds, ok := cached.(domain.DaySchedule); ok {
			return ds, nil
		}
	}
	ds, ok, err := a.store.GetDaySchedule(day)
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("fetch day schedule: %w", err)
	}
	if !ok {
		ds = domain.DaySchedule{Day: day, Events: []domain.ScheduleEntry{}}
	}
	a.cache.SetDefault(dayCacheKey(day), ds)
	return ds, nil
}

// GetWeek returns all seven day schedules in Monday-first order.
func (a *App) GetWeek() ([]domain.DaySchedule, error) {
	if cached, ok := a.cache.Get(weekCacheKey); ok {
		if week, ok := cached.([]domain.DaySchedule); ok {
			return week, nil
		}
	}
	stored, err := a.store.ListDaySchedules()
	if err != nil {
		return nil, fmt.Errorf("fetch week schedule: %w", err)
	}
	byDay := make(map[domain.DayOfWeek]domain.DaySchedule, len(stored))
	for _, ds := range stored {
		byDay[ds.Day] = ds
	}
	week := make([]domain.DaySchedule, 0, len(domain.Week))
	for _, day := range domain.Week {
		ds, ok := byDay[day]
		if !ok {
			ds = domain.DaySchedule{Day: day, Events: []domain.ScheduleEntry{}}
		}
		week = append(week, ds)
	}
	a.cache.SetDefault(weekCacheKey, week)
	return week, nil
}

// InsertEvent adds one entry to a day and re-sorts the day's list.
// Entries with the same time as an existing one are kept alongside it.
func (a *App) InsertEvent(day domain.DayOfWeek, rawTime, event string) (domain.DaySchedule, error) {
	if !domain.ValidDay(day) {
		return domain.DaySchedule{}, ErrUnknownDay
	}
	tod, ok := schedule.NormalizeRawTime(rawTime)
	if !ok || tod.Display == "" {
		return domain.DaySchedule{}, schedule.ErrInvalidFormat
	}

	a.schedMu.Lock()
	defer a.schedMu.Unlock()
	ds, err := a.loadDayLocked(day)
	if err != nil {
		return domain.DaySchedule{}, err
	}
	ds.Events = append(ds.Events, domain.ScheduleEntry{Time: tod, Event: event})
	sort.SliceStable(ds.Events, func(i, j int) bool {
		return schedule.LessTime(ds.Events[i].Time, ds.Events[j].Time)
	})
	return a.saveDayLocked(ds)
}

// UpdateEvent rewrites the first entry whose display time matches
// oldTime, giving it the normalized newTime and new text, then re-sorts.
func (a *App) UpdateEvent(day domain.DayOfWeek, oldTime, newTime, event string) (domain.DaySchedule, error) {
	if !domain.ValidDay(day) {
		return domain.DaySchedule{}, ErrUnknownDay
	}
	tod, ok := schedule.NormalizeRawTime(newTime)
	if !ok || tod.Display == "" {
		return domain.DaySchedule{}, schedule.ErrInvalidFormat
	}

	a.schedMu.Lock()
	defer a.schedMu.Unlock()
	ds, err := a.loadDayLocked(day)
	if err != nil {
		return domain.DaySchedule{}, err
	}
	for i := range ds.Events {
		if ds.Events[i].Time.Display == oldTime {
			ds.Events[i] = domain.ScheduleEntry{Time: tod, Event: event}
			sort.SliceStable(ds.Events, func(x, y int) bool {
				return schedule.LessTime(ds.Events[x].Time, ds.Events[y].Time)
			})
			return a.saveDayLocked(ds)
		}
	}
	return domain.DaySchedule{}, ErrEventNotFound
}

// DeleteEvent removes every entry whose display time matches.
func (a *App) DeleteEvent(day domain.DayOfWeek, displayTime string) (domain.DaySchedule, error) {
	if !domain.ValidDay(day) {
		return domain.DaySchedule{}, ErrUnknownDay
	}

	a.schedMu.Lock()
	defer a.schedMu.Unlock()
	ds, err := a.loadDayLocked(day)
	if err != nil {
		return domain.DaySchedule{}, err
	}
	kept := ds.Events[:0:0]
	for _, e := range ds.Events {
		if e.Time.Display != displayTime {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(ds.Events) {
		return domain.DaySchedule{}, ErrEventNotFound
	}
	if kept == nil {
		kept = []domain.ScheduleEntry{}
	}
	ds.Events = kept
	return a.saveDayLocked(ds)
}

func (a *App) loadDayLocked(day domain.DayOfWeek) (domain.DaySchedule, error) {
	ds, ok, err := a.store.GetDaySchedule(day)
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("fetch day schedule: %w", err)
	}
	if !ok {
		ds = domain.DaySchedule{Day: day, Events: []domain.ScheduleEntry{}}
	}
	return ds, nil
}

func (a *App) saveDayLocked(ds domain.DaySchedule) (domain.DaySchedule, error) {
	if err := a.store.SaveDaySchedule(ds); err != nil {
		return domain.DaySchedule{}, fmt.Errorf("save day schedule: %w", err)
	}
	a.cache.Delete(weekCacheKey)
	a.cache.Delete(dayCacheKey(ds.Day))
	return ds, nil
}

func dayCacheKey(day domain.DayOfWeek) string {
	return "schedule:day:" + string(day)
}
