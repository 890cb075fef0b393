package app

import (
	"errors"
	"testing"

	"templehub/pkg/domain"
)

func TestRegisterVolunteerRequiresAllFieldsAndUniqueEmail(t *testing.T) {
	a := newTestApp(t)
	v := domain.Volunteer{
		Name:     "Seva",
		Email:    "Seva@Example.org",
		Phone:    "555-0101",
		Address:  "1 Temple Rd",
		Interest: "kitchen",
		Message:  "weekends",
	}
	saved, err := a.RegisterVolunteer(v)
	if err != nil {
		t.Fatalf("register volunteer: %v", err)
	}
	if saved.Email != "seva@example.org" {
		t.Fatalf("email not normalized: %q", saved.Email)
	}
	if _, err := a.RegisterVolunteer(v); !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}
	v.Email = "second@example.org"
	v.Phone = ""
	if _, err := a.RegisterVolunteer(v); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.Subscribe("news@example.org"); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if _, err := a.Subscribe("NEWS@example.org"); !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}
	if err := a.Unsubscribe("news@example.org"); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if err := a.Unsubscribe("news@example.org"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestEventRecordLifecycle(t *testing.T) {
	a := newTestApp(t)
	actor := domain.User{Username: "admin1", Role: domain.RoleAdmin}
	created, err := a.CreateEvent(actor, domain.Event{Title: "Janmashtami", Date: "2026-09-04", Venue: "Main Hall"})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if created.CreatedBy != "admin1" {
		t.Fatalf("createdBy = %q", created.CreatedBy)
	}

	updated, err := a.UpdateEventRecord(created.ID, domain.Event{Title: "Janmashtami", Date: "2026-09-05", Venue: "Courtyard"})
	if err != nil {
		t.Fatalf("update event: %v", err)
	}
	if updated.Venue != "Courtyard" || updated.CreatedBy != "admin1" {
		t.Fatalf("updated = %+v", updated)
	}

	if err := a.DeleteEventRecord(created.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if err := a.DeleteEventRecord(created.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}

	if _, err := a.CreateEvent(actor, domain.Event{Title: ""}); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
}

func TestBookingLifecycle(t *testing.T) {
	a := newTestApp(t)
	created, err := a.CreateBooking(domain.Booking{ServiceName: "Puja", ClientName: "R. Das", Time: "10:00"})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	updated, err := a.UpdateBooking(created.ID, domain.Booking{ServiceName: "Puja", ClientName: "R. Das", Time: "11:00"})
	if err != nil {
		t.Fatalf("update booking: %v", err)
	}
	if updated.Time != "11:00" || updated.ID != created.ID {
		t.Fatalf("updated = %+v", updated)
	}
	if err := a.DeleteBooking(created.ID); err != nil {
		t.Fatalf("delete booking: %v", err)
	}
	if _, err := a.UpdateBooking(created.ID, domain.Booking{ServiceName: "Puja", ClientName: "x"}); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestAddDirectorValidatesPosition(t *testing.T) {
	a := newTestApp(t)
	d, err := a.AddDirector("A. Devi", domain.PositionBoardOfTrustees)
	if err != nil {
		t.Fatalf("add director: %v", err)
	}
	if d.Position != domain.PositionBoardOfTrustees {
		t.Fatalf("position = %q", d.Position)
	}
	if _, err := a.AddDirector("B. Das", "Board of trustees"); err == nil {
		t.Fatalf("expected position enum rejection")
	}
	if err := a.DeleteDirector(d.ID); err != nil {
		t.Fatalf("delete director: %v", err)
	}
	if err := a.DeleteDirector(d.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestSubmitPledgeValidation(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.SubmitPledge(domain.Pledge{FirstName: "A", LastName: "B", Email: "a@b.c", Amount: 0}); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
	p, err := a.SubmitPledge(domain.Pledge{FirstName: "A", LastName: "B", Email: "a@b.c", Amount: 108})
	if err != nil {
		t.Fatalf("submit pledge: %v", err)
	}
	if err := a.DeletePledge(p.ID); err != nil {
		t.Fatalf("delete pledge: %v", err)
	}
}

func TestSubmitContactMessage(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.SubmitContactMessage(domain.ContactMessage{Name: "A", Email: "", Message: "hi"}); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
	if _, err := a.SubmitContactMessage(domain.ContactMessage{Name: "A", Email: "a@b.c", Message: "hi"}); err != nil {
		t.Fatalf("submit contact message: %v", err)
	}
	msgs, err := a.ListContactMessages()
	if err != nil {
		t.Fatalf("list contact messages: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
}
