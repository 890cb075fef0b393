package store

import (
	"sync"

	"templehub/pkg/domain"
)

// MemoryStore keeps everything in-process. It backs tests and local
// development; the data is gone when the process exits.
type MemoryStore struct {
	mu          sync.RWMutex
	users       map[string]domain.User
	userOrder   []string
	days        map[domain.DayOfWeek]domain.DaySchedule
	assets      map[string]domain.BinaryAsset
	assetOrder  []string
	devotees    map[string]domain.Devotee
	devOrder    []string
	events      map[string]domain.Event
	eventOrder  []string
	volunteers  []domain.Volunteer
	contacts    []domain.ContactMessage
	pledges     map[string]domain.Pledge
	pledgeOrder []string
	subscribers []domain.Subscriber
	bookings    map[string]domain.Booking
	bookOrder   []string
	directors   map[string]domain.Director
	dirOrder    []string
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]domain.User),
		days:      make(map[domain.DayOfWeek]domain.DaySchedule),
		assets:    make(map[string]domain.BinaryAsset),
		devotees:  make(map[string]domain.Devotee),
		events:    make(map[string]domain.Event),
		pledges:   make(map[string]domain.Pledge),
		bookings:  make(map[string]domain.Booking),
		directors: make(map[string]domain.Director),
	}
}

// users

func (m *MemoryStore) SaveUser(u domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[u.ID]; !exists {
		m.userOrder = append(m.userOrder, u.ID)
	}
	m.users[u.ID] = u
	return nil
}

func (m *MemoryStore) GetUserByUsername(username string) (domain.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return domain.User{}, false, nil
}

func (m *MemoryStore) GetUserByID(id string) (domain.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	return u, ok, nil
}

func (m *MemoryStore) ListUsers() ([]domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.User, 0, len(m.userOrder))
	for _, id := range m.userOrder {
		if u, ok := m.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func (m *MemoryStore) DeleteUser(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

// weekly schedule

func (m *MemoryStore) ReplaceWeek(days []domain.DaySchedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.days = make(map[domain.DayOfWeek]domain.DaySchedule, len(days))
	for _, day := range days {
		m.days[day.Day] = copyDay(day)
	}
	return nil
}

func (m *MemoryStore) SaveDaySchedule(day domain.DaySchedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.days[day.Day] = copyDay(day)
	return nil
}

func (m *MemoryStore) GetDaySchedule(day domain.DayOfWeek) (domain.DaySchedule, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ds, ok := m.days[day]
	if !ok {
		return domain.DaySchedule{}, false, nil
	}
	return copyDay(ds), true, nil
}

func (m *MemoryStore) ListDaySchedules() ([]domain.DaySchedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.DaySchedule, 0, len(m.days))
	for _, day := range domain.Week {
		if ds, ok := m.days[day]; ok {
			res = append(res, copyDay(ds))
		}
	}
	return res, nil
}

func copyDay(ds domain.DaySchedule) domain.DaySchedule {
	events := make([]domain.ScheduleEntry, len(ds.Events))
	copy(events, ds.Events)
	return domain.DaySchedule{Day: ds.Day, Events: events}
}

// binary assets

func (m *MemoryStore) SaveAsset(a domain.BinaryAsset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.assets[a.ID]; !exists {
		m.assetOrder = append(m.assetOrder, a.ID)
	}
	m.assets[a.ID] = a
	return nil
}

func (m *MemoryStore) GetAsset(id string) (domain.BinaryAsset, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assets[id]
	return a, ok, nil
}

func (m *MemoryStore) GetAssetByFilename(name string) (domain.BinaryAsset, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.assets {
		if a.Filename == name {
			return a, true, nil
		}
	}
	return domain.BinaryAsset{}, false, nil
}

func (m *MemoryStore) ListAssets() ([]domain.BinaryAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.BinaryAsset, 0, len(m.assetOrder))
	for _, id := range m.assetOrder {
		if a, ok := m.assets[id]; ok {
			res = append(res, a)
		}
	}
	return res, nil
}

func (m *MemoryStore) DeleteAsset(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assets[id]; !ok {
		return false, nil
	}
	delete(m.assets, id)
	return true, nil
}

// devotees

func (m *MemoryStore) SaveDevotee(d domain.Devotee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.devotees[d.ID]; !exists {
		m.devOrder = append(m.devOrder, d.ID)
	}
	m.devotees[d.ID] = d
	return nil
}

func (m *MemoryStore) GetDevotee(id string) (domain.Devotee, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.devotees[id]
	return d, ok, nil
}

func (m *MemoryStore) ListDevotees() ([]domain.Devotee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Devotee, 0, len(m.devOrder))
	for _, id := range m.devOrder {
		if d, ok := m.devotees[id]; ok {
			res = append(res, d)
		}
	}
	return res, nil
}

func (m *MemoryStore) DeleteDevotee(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.devotees[id]; !ok {
		return false, nil
	}
	delete(m.devotees, id)
	return true, nil
}

// events

func (m *MemoryStore) SaveEvent(e domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.events[e.ID]; !exists {
		m.eventOrder = append(m.eventOrder, e.ID)
	}
	m.events[e.ID] = e
	return nil
}

func (m *MemoryStore) GetEvent(id string) (domain.Event, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.events[id]
	return e, ok, nil
}

func (m *MemoryStore) ListEvents() ([]domain.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Event, 0, len(m.eventOrder))
	for _, id := range m.eventOrder {
		if e, ok := m.events[id]; ok {
			res = append(res, e)
		}
	}
	return res, nil
}

func (m *MemoryStore) DeleteEvent(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return false, nil
	}
	delete(m.events, id)
	return true, nil
}

// volunteers

func (m *MemoryStore) SaveVolunteer(v domain.Volunteer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volunteers = append(m.volunteers, v)
	return nil
}

func (m *MemoryStore) HasVolunteerEmail(email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.volunteers {
		if v.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) ListVolunteers() ([]domain.Volunteer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Volunteer, len(m.volunteers))
	copy(res, m.volunteers)
	return res, nil
}

// contact messages

func (m *MemoryStore) SaveContactMessage(c domain.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contacts = append(m.contacts, c)
	return nil
}

func (m *MemoryStore) ListContactMessages() ([]domain.ContactMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.ContactMessage, len(m.contacts))
	copy(res, m.contacts)
	return res, nil
}

// pledges

func (m *MemoryStore) SavePledge(p domain.Pledge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.pledges[p.ID]; !exists {
		m.pledgeOrder = append(m.pledgeOrder, p.ID)
	}
	m.pledges[p.ID] = p
	return nil
}

func (m *MemoryStore) ListPledges() ([]domain.Pledge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Pledge, 0, len(m.pledgeOrder))
	for _, id := range m.pledgeOrder {
		if p, ok := m.pledges[id]; ok {
			res = append(res, p)
		}
	}
	return res, nil
}

func (m *MemoryStore) DeletePledge(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pledges[id]; !ok {
		return false, nil
	}
	delete(m.pledges, id)
	return true, nil
}

// subscribers

func (m *MemoryStore) SaveSubscriber(s domain.Subscriber) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, s)
	return nil
}

func (m *MemoryStore) HasSubscriberEmail(email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.subscribers {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) ListSubscribers() ([]domain.Subscriber, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Subscriber, len(m.subscribers))
	copy(res, m.subscribers)
	return res, nil
}

func (m *MemoryStore) DeleteSubscriberByEmail(email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.subscribers {
		if s.Email == email {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// bookings

func (m *MemoryStore) SaveBooking(b domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.bookings[b.ID]; !exists {
		m.bookOrder = append(m.bookOrder, b.ID)
	}
	m.bookings[b.ID] = b
	return nil
}

func (m *MemoryStore) GetBooking(id string) (domain.Booking, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bookings[id]
	return b, ok, nil
}

func (m *MemoryStore) ListBookings() ([]domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Booking, 0, len(m.bookOrder))
	for _, id := range m.bookOrder {
		if b, ok := m.bookings[id]; ok {
			res = append(res, b)
		}
	}
	return res, nil
}

func (m *MemoryStore) DeleteBooking(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return false, nil
	}
	delete(m.bookings, id)
	return true, nil
}

// directors

func (m *MemoryStore) SaveDirector(d domain.Director) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.directors[d.ID]; !exists {
		m.dirOrder = append(m.dirOrder, d.ID)
	}
	m.directors[d.ID] = d
	return nil
}

func (m *MemoryStore) ListDirectors() ([]domain.Director, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Director, 0, len(m.dirOrder))
	for _, id := range m.dirOrder {
		if d, ok := m.directors[id]; ok {
			res = append(res, d)
		}
	}
	return res, nil
}

func (m *MemoryStore) DeleteDirector(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.directors[id]; !ok {
		return false, nil
	}
	delete(m.directors, id)
	return true, nil
}
