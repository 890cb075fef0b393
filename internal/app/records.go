package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"templehub/pkg/domain"
)

// CreateEvent stores a temple event announcement.
func (a *App) CreateEvent(actor domain.User, e domain.Event) (domain.Event, error) {
	if strings.TrimSpace(e.Title) == "" || strings.TrimSpace(e.Date) == "" {
		return domain.Event{}, ErrMissingFields
	}
	e.ID = uuid.NewString()
	e.CreatedBy = actor.Username
	e.CreatedAt = time.Now().UTC()
	if err := a.store.SaveEvent(e); err != nil {
		return domain.Event{}, fmt.Errorf("save event: %w", err)
	}
	return e, nil
}

// UpdateEventRecord rewrites an existing event announcement in place.
func (a *App) UpdateEventRecord(id string, e domain.Event) (domain.Event, error) {
	existing, ok, err := a.store.GetEvent(id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("fetch event: %w", err)
	}
	if !ok {
		return domain.Event{}, ErrRecordNotFound
	}
	e.ID = existing.ID
	e.CreatedBy = existing.CreatedBy
	e.CreatedAt = existing.CreatedAt
	if err := a.store.SaveEvent(e); err != nil {
		return domain.Event{}, fmt.Errorf("save event: %w", err)
	}
	return e, nil
}

func (a *App) ListEvents() ([]domain.Event, error) {
	return a.store.ListEvents()
}

func (a *App) DeleteEventRecord(id string) error {
	deleted, err := a.store.DeleteEvent(id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}

// RegisterVolunteer stores a volunteer signup. All six fields are
// required and the email must not already be registered.
func (a *App) RegisterVolunteer(v domain.Volunteer) (domain.Volunteer, error) {
	v.Email = strings.TrimSpace(strings.ToLower(v.Email))
	if strings.TrimSpace(v.Name) == "" || v.Email == "" || strings.TrimSpace(v.Phone) == "" ||
		strings.TrimSpace(v.Address) == "" || strings.TrimSpace(v.Interest) == "" || strings.TrimSpace(v.Message) == "" {
		return domain.Volunteer{}, ErrMissingFields
	}
	exists, err := a.store.HasVolunteerEmail(v.Email)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("check volunteer email: %w", err)
	}
	if exists {
		return domain.Volunteer{}, ErrEmailAlreadyExists
	}
	v.ID = uuid.NewString()
	v.CreatedAt = time.Now().UTC()
	if err := a.store.SaveVolunteer(v); err != nil {
		return domain.Volunteer{}, fmt.Errorf("save volunteer: %w", err)
	}
	return v, nil
}

func (a *App) ListVolunteers() ([]domain.Volunteer, error) {
	return a.store.ListVolunteers()
}

// SubmitContactMessage stores a contact form submission.
func (a *App) SubmitContactMessage(m domain.ContactMessage) (domain.ContactMessage, error) {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Message) == "" {
		return domain.ContactMessage{}, ErrMissingFields
	}
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	if err := a.store.SaveContactMessage(m); err != nil {
		return domain.ContactMessage{}, fmt.Errorf("save contact message: %w", err)
	}
	return m, nil
}

func (a *App) ListContactMessages() ([]domain.ContactMessage, error) {
	return a.store.ListContactMessages()
}

// SubmitPledge stores a donation pledge.
func (a *App) SubmitPledge(p domain.Pledge) (domain.Pledge, error) {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" ||
		strings.TrimSpace(p.Email) == "" || p.Amount <= 0 {
		return domain.Pledge{}, ErrMissingFields
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	if err := a.store.SavePledge(p); err != nil {
		return domain.Pledge{}, fmt.Errorf("save pledge: %w", err)
	}
	return p, nil
}

func (a *App) ListPledges() ([]domain.Pledge, error) {
	return a.store.ListPledges()
}

func (a *App) DeletePledge(id string) error {
	deleted, err := a.store.DeletePledge(id)
	if err != nil {
		return fmt.Errorf("delete pledge: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}

// Subscribe adds an email to the newsletter list.
func (a *App) Subscribe(email string) (domain.Subscriber, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return domain.Subscriber{}, ErrMissingFields
	}
	exists, err := a.store.HasSubscriberEmail(email)
	if err != nil {
		return domain.Subscriber{}, fmt.Errorf("check subscriber email: %w", err)
	}
	if exists {
		return domain.Subscriber{}, ErrEmailAlreadyExists
	}
	sub := domain.Subscriber{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.store.SaveSubscriber(sub); err != nil {
		return domain.Subscriber{}, fmt.Errorf("save subscriber: %w", err)
	}
	return sub, nil
}

func (a *App) ListSubscribers() ([]domain.Subscriber, error) {
	return a.store.ListSubscribers()
}

func (a *App) Unsubscribe(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	deleted, err := a.store.DeleteSubscriberByEmail(email)
	if err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}

// CreateBooking stores a service booking request.
func (a *App) CreateBooking(b domain.Booking) (domain.Booking, error) {
	if strings.TrimSpace(b.ServiceName) == "" || strings.TrimSpace(b.ClientName) == "" {
		return domain.Booking{}, ErrMissingFields
	}
	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	if err := a.store.SaveBooking(b); err != nil {
		return domain.Booking{}, fmt.Errorf("save booking: %w", err)
	}
	return b, nil
}

func (a *App) UpdateBooking(id string, b domain.Booking) (domain.Booking, error) {
	existing, ok, err := a.store.GetBooking(id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("fetch booking: %w", err)
	}
	if !ok {
		return domain.Booking{}, ErrRecordNotFound
	}
	b.ID = existing.ID
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = time.Now().UTC()
	if err := a.store.SaveBooking(b); err != nil {
		return domain.Booking{}, fmt.Errorf("save booking: %w", err)
	}
	return b, nil
}

func (a *App) ListBookings() ([]domain.Booking, error) {
	return a.store.ListBookings()
}

func (a *App) DeleteBooking(id string) error {
	deleted, err := a.store.DeleteBooking(id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}

// AddDirector stores a board member entry.
func (a *App) AddDirector(name string, position domain.DirectorPosition) (domain.Director, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Director{}, ErrMissingFields
	}
	if !domain.ValidDirectorPosition(position) {
		return domain.Director{}, fmt.Errorf("%w: unknown position %q", ErrMissingFields, position)
	}
	d := domain.Director{
		ID:        uuid.NewString(),
		Name:      name,
		Position:  position,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.store.SaveDirector(d); err != nil {
		return domain.Director{}, fmt.Errorf("save director: %w", err)
	}
	return d, nil
}

func (a *App) ListDirectors() ([]domain.Director, error) {
	return a.store.ListDirectors()
}

func (a *App) DeleteDirector(id string) error {
	deleted, err := a.store.DeleteDirector(id)
	if err != nil {
		return fmt.Errorf("delete director: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}
