package store

import "templehub/pkg/domain"

// Store defines persistence operations for the backend. Lookups report
// absence through the bool result rather than an error; deletes report
// whether anything was removed.
type Store interface {
	// users
	SaveUser(domain.User) error
	GetUserByUsername(username string) (domain.User, bool, error)
	GetUserByID(id string) (domain.User, bool, error)
	ListUsers() ([]domain.User, error)
	DeleteUser(id string) (bool, error)

	// weekly schedule
	ReplaceWeek(days []domain.DaySchedule) error
	SaveDaySchedule(domain.DaySchedule) error
	GetDaySchedule(day domain.DayOfWeek) (domain.DaySchedule, bool, error)
	ListDaySchedules() ([]domain.DaySchedule, error)

	// binary assets (metadata only; payloads live in storage.ObjectStore)
	SaveAsset(domain.BinaryAsset) error
	GetAsset(id string) (domain.BinaryAsset, bool, error)
	GetAssetByFilename(name string) (domain.BinaryAsset, bool, error)
	ListAssets() ([]domain.BinaryAsset, error)
	DeleteAsset(id string) (bool, error)

	// devotees
	SaveDevotee(domain.Devotee) error
	GetDevotee(id string) (domain.Devotee, bool, error)
	ListDevotees() ([]domain.Devotee, error)
	DeleteDevotee(id string) (bool, error)

	// events
	SaveEvent(domain.Event) error
	GetEvent(id string) (domain.Event, bool, error)
	ListEvents() ([]domain.Event, error)
	DeleteEvent(id string) (bool, error)

	// volunteers
	SaveVolunteer(domain.Volunteer) error
	HasVolunteerEmail(email string) (bool, error)
	ListVolunteers() ([]domain.Volunteer, error)

	// contact messages
	SaveContactMessage(domain.ContactMessage) error
	ListContactMessages() ([]domain.ContactMessage, error)

	// pledges
	SavePledge(domain.Pledge) error
	ListPledges() ([]domain.Pledge, error)
	DeletePledge(id string) (bool, error)

	// subscribers
	SaveSubscriber(domain.Subscriber) error
	HasSubscriberEmail(email string) (bool, error)
	ListSubscribers() ([]domain.Subscriber, error)
	DeleteSubscriberByEmail(email string) (bool, error)

	// bookings
	SaveBooking(domain.Booking) error
	GetBooking(id string) (domain.Booking, bool, error)
	ListBookings() ([]domain.Booking, error)
	DeleteBooking(id string) (bool, error)

	// directors
	SaveDirector(domain.Director) error
	ListDirectors() ([]domain.Director, error)
	DeleteDirector(id string) (bool, error)
}
