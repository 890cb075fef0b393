package store

import (
	"testing"

	"templehub/pkg/domain"
)

func TestMemoryStoreReplaceWeekIsWholesale(t *testing.T) {
	s := NewMemoryStore()
	if err := s.SaveDaySchedule(domain.DaySchedule{
		Day:    domain.Monday,
		Events: []domain.ScheduleEntry{{Time: domain.TimeOfDay{Display: "6:00am"}, Event: "Old"}},
	}); err != nil {
		t.Fatalf("save day: %v", err)
	}

	if err := s.ReplaceWeek([]domain.DaySchedule{
		{Day: domain.Tuesday, Events: []domain.ScheduleEntry{{Time: domain.TimeOfDay{Display: "7:00am"}, Event: "New"}}},
	}); err != nil {
		t.Fatalf("replace week: %v", err)
	}

	if _, ok, err := s.GetDaySchedule(domain.Monday); err != nil || ok {
		t.Fatalf("monday should be gone after replace, ok=%v err=%v", ok, err)
	}
	ds, ok, err := s.GetDaySchedule(domain.Tuesday)
	if err != nil || !ok {
		t.Fatalf("tuesday missing, ok=%v err=%v", ok, err)
	}
	if len(ds.Events) != 1 || ds.Events[0].Event != "New" {
		t.Fatalf("tuesday = %+v", ds.Events)
	}
}

func TestMemoryStoreDayScheduleIsCopied(t *testing.T) {
	s := NewMemoryStore()
	events := []domain.ScheduleEntry{{Time: domain.TimeOfDay{Display: "6:00am"}, Event: "Arati"}}
	if err := s.SaveDaySchedule(domain.DaySchedule{Day: domain.Monday, Events: events}); err != nil {
		t.Fatalf("save day: %v", err)
	}
	events[0].Event = "Mutated"

	ds, ok, err := s.GetDaySchedule(domain.Monday)
	if err != nil || !ok {
		t.Fatalf("get day: ok=%v err=%v", ok, err)
	}
	if ds.Events[0].Event != "Arati" {
		t.Fatalf("stored schedule shares caller slice: %+v", ds.Events)
	}

	ds.Events[0].Event = "Mutated Again"
	again, _, err := s.GetDaySchedule(domain.Monday)
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	if again.Events[0].Event != "Arati" {
		t.Fatalf("returned schedule shares internal slice: %+v", again.Events)
	}
}

func TestMemoryStoreUserLifecycle(t *testing.T) {
	s := NewMemoryStore()
	if err := s.SaveUser(domain.User{ID: "u1", Username: "owner"}); err != nil {
		t.Fatalf("save user: %v", err)
	}
	if err := s.SaveUser(domain.User{ID: "u2", Username: "admin1"}); err != nil {
		t.Fatalf("save user: %v", err)
	}

	u, ok, err := s.GetUserByUsername("admin1")
	if err != nil || !ok || u.ID != "u2" {
		t.Fatalf("lookup by username: %+v ok=%v err=%v", u, ok, err)
	}

	users, err := s.ListUsers()
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 || users[0].ID != "u1" {
		t.Fatalf("users = %+v, want insertion order", users)
	}

	deleted, err := s.DeleteUser("u1")
	if err != nil || !deleted {
		t.Fatalf("delete user: deleted=%v err=%v", deleted, err)
	}
	deleted, err = s.DeleteUser("u1")
	if err != nil || deleted {
		t.Fatalf("second delete: deleted=%v err=%v", deleted, err)
	}
}

func TestMemoryStoreSubscriberEmailChecks(t *testing.T) {
	s := NewMemoryStore()
	if err := s.SaveSubscriber(domain.Subscriber{ID: "s1", Email: "a@b.c"}); err != nil {
		t.Fatalf("save subscriber: %v", err)
	}
	has, err := s.HasSubscriberEmail("a@b.c")
	if err != nil || !has {
		t.Fatalf("has = %v err = %v", has, err)
	}
	deleted, err := s.DeleteSubscriberByEmail("a@b.c")
	if err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}
	has, err = s.HasSubscriberEmail("a@b.c")
	if err != nil || has {
		t.Fatalf("email should be free again, has=%v err=%v", has, err)
	}
}
