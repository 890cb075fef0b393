package server

import (
	"net/http"

	"templehub/pkg/domain"
)

// events

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	events, err := s.app.ListEvents()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": events, "count": len(events)})
}

type eventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Venue       string `json:"venue"`
}

func (req eventRequest) toDomain() domain.Event {
	return domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
	}
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request, user domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req eventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	event, err := s.app.CreateEvent(user, req.toDomain())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request, _ domain.User) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}
	id, ok := pathTail(r, "/update-event/")
	if !ok {
		notFound(w, "not found")
		return
	}
	var req eventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	event, err := s.app.UpdateEventRecord(id, req.toDomain())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request, _ domain.User) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	id, ok := pathTail(r, "/delete-event/")
	if !ok {
		notFound(w, "not found")
		return
	}
	if err := s.app.DeleteEventRecord(id); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// volunteers

func (s *Server) handleSaveVolunteer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req domain.Volunteer
	if !decodeJSON(w, r, &req) {
		return
	}
	saved, err := s.app.RegisterVolunteer(req)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListVolunteers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	s.ownerOrAdmin(func(w http.ResponseWriter, _ *http.Request, _ domain.User) {
		volunteers, err := s.app.ListVolunteers()
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": volunteers, "count": len(volunteers)})
	}).ServeHTTP(w, r)
}

// contact messages

func (s *Server) handleContactUs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req domain.ContactMessage
	if !decodeJSON(w, r, &req) {
		return
	}
	saved, err := s.app.SubmitContactMessage(req)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListContactMessages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	s.ownerOrAdmin(func(w http.ResponseWriter, _ *http.Request, _ domain.User) {
		msgs, err := s.app.ListContactMessages()
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": msgs, "count": len(msgs)})
	}).ServeHTTP(w, r)
}

// pledges

func (s *Server) handlePledge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req domain.Pledge
	if !decodeJSON(w, r, &req) {
		return
	}
	saved, err := s.app.SubmitPledge(req)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListPledges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	pledges, err := s.app.ListPledges()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": pledges, "count": len(pledges)})
}

// /pledges/{id}
func (s *Server) handlePledgeByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	id, ok := pathTail(r, "/pledges/")
	if !ok {
		notFound(w, "not found")
		return
	}
	if err := s.app.DeletePledge(id); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// subscribers

type subscribeRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req subscribeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sub, err := s.app.Subscribe(req.Email)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (s *Server) handleListSubscribers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	subs, err := s.app.ListSubscribers()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": subs, "count": len(subs)})
}

// /unsubscribe/{email}
func (s *Server) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	email, ok := pathTail(r, "/unsubscribe/")
	if !ok {
		notFound(w, "not found")
		return
	}
	if err := s.app.Unsubscribe(email); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "unsubscribed"})
}

// bookings

type bookingRequest struct {
	ServiceName string `json:"serviceName"`
	ClientName  string `json:"clientName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Time        string `json:"time"`
}

func (req bookingRequest) toDomain() domain.Booking {
	return domain.Booking{
		ServiceName: req.ServiceName,
		ClientName:  req.ClientName,
		Phone:       req.Phone,
		Email:       req.Email,
		Time:        req.Time,
	}
}

func (s *Server) handleBookService(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req bookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	booking, err := s.app.CreateBooking(req.toDomain())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	bookings, err := s.app.ListBookings()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": bookings, "count": len(bookings)})
}

// /bookings/{id}
func (s *Server) handleBookingByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTail(r, "/bookings/")
	if !ok {
		notFound(w, "not found")
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req bookingRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		booking, err := s.app.UpdateBooking(id, req.toDomain())
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, booking)
	case http.MethodDelete:
		if err := s.app.DeleteBooking(id); err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	default:
		methodNotAllowed(w)
	}
}

// directors

func (s *Server) handleListDirectors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	directors, err := s.app.ListDirectors()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": directors, "count": len(directors)})
}

type directorRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

func (s *Server) handleAddDirector(w http.ResponseWriter, r *http.Request, _ domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req directorRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	director, err := s.app.AddDirector(req.Name, domain.DirectorPosition(req.Position))
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, director)
}

func (s *Server) handleDeleteDirector(w http.ResponseWriter, r *http.Request, _ domain.User) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	id, ok := pathTail(r, "/delete-director/")
	if !ok {
		notFound(w, "not found")
		return
	}
	if err := s.app.DeleteDirector(id); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
