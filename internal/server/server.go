package server

import (
	"net/http"
	"strings"

	"github.com/rs/cors"

	"templehub/internal/app"
	"templehub/internal/ratelimit"
	"templehub/internal/util"
	"templehub/pkg/domain"
)

// Config wires required dependencies for the HTTP server.
type Config struct {
	App            *app.App
	LoginLimiter   *ratelimit.FixedWindowLimiter
	TrustedProxies *util.TrustedProxies
	MaxUploadBytes int64
	AllowedOrigins []string
}

// Server exposes the HTTP endpoints of the backend.
type Server struct {
	app            *app.App
	loginLimiter   *ratelimit.FixedWindowLimiter
	trustedProxies *util.TrustedProxies
	mux            *http.ServeMux
	maxUploadBytes int64
	cors           *cors.Cors
}

// New constructs the server with routes configured.
func New(cfg Config) *Server {
	maxUploadBytes := cfg.MaxUploadBytes
	if maxUploadBytes <= 0 {
		maxUploadBytes = 32 << 20
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s := &Server{
		app:            cfg.App,
		loginLimiter:   cfg.LoginLimiter,
		trustedProxies: cfg.TrustedProxies,
		mux:            http.NewServeMux(),
		maxUploadBytes: maxUploadBytes,
		cors: cors.New(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
		}),
	}
	s.routes()
	return s
}

// Router returns the configured handler wrapped in the middleware chain.
func (s *Server) Router() http.Handler {
	return util.WithRequestID(util.WithRequestLog("templehub", util.WithSecurityHeaders(s.cors.Handler(s.mux))))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	// auth and user management
	s.mux.HandleFunc("/login", s.handleLogin)
	s.mux.Handle("/create-user", s.ownerOnly(s.handleCreateUser))
	s.mux.Handle("/users", s.ownerOnly(s.handleListUsers))
	s.mux.Handle("/users/", s.ownerOnly(s.handleUserByID))

	// weekly schedule
	s.mux.HandleFunc("/schedule", s.handleWeek)
	s.mux.Handle("/schedule/upload", s.ownerOrAdmin(s.handleScheduleUpload))
	s.mux.Handle("/schedule/events", s.ownerOrAdmin(s.handleScheduleEvents))
	s.mux.HandleFunc("/schedule/", s.handleDay)

	// binary assets
	s.mux.HandleFunc("/assets", s.handleAssets)
	s.mux.HandleFunc("/assets/file/", s.handleAssetByFilename)
	s.mux.HandleFunc("/assets/", s.handleAssetByID)

	// devotees
	s.mux.HandleFunc("/devotees", s.handleDevotees)
	s.mux.HandleFunc("/devotees/", s.handleDevoteeByID)

	// events
	s.mux.HandleFunc("/events", s.handleListEvents)
	s.mux.Handle("/create-event", s.ownerOrAdmin(s.handleCreateEvent))
	s.mux.Handle("/update-event/", s.ownerOrAdmin(s.handleUpdateEvent))
	s.mux.Handle("/delete-event/", s.ownerOrAdmin(s.handleDeleteEvent))

	// public forms
	s.mux.HandleFunc("/save-volunteer", s.handleSaveVolunteer)
	s.mux.HandleFunc("/volunteers", s.handleListVolunteers)
	s.mux.HandleFunc("/contact-us", s.handleContactUs)
	s.mux.HandleFunc("/contact-messages", s.handleListContactMessages)
	s.mux.HandleFunc("/pledge", s.handlePledge)
	s.mux.HandleFunc("/pledges", s.handleListPledges)
	s.mux.HandleFunc("/pledges/", s.handlePledgeByID)
	s.mux.HandleFunc("/subscribe", s.handleSubscribe)
	s.mux.HandleFunc("/subscribers", s.handleListSubscribers)
	s.mux.HandleFunc("/unsubscribe/", s.handleUnsubscribe)

	// bookings
	s.mux.HandleFunc("/book-service", s.handleBookService)
	s.mux.HandleFunc("/bookings", s.handleListBookings)
	s.mux.HandleFunc("/bookings/", s.handleBookingByID)

	// directors
	s.mux.HandleFunc("/directors", s.handleListDirectors)
	s.mux.Handle("/add-director", s.ownerOrAdmin(s.handleAddDirector))
	s.mux.Handle("/delete-director/", s.ownerOrAdmin(s.handleDeleteDirector))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type authHandler func(http.ResponseWriter, *http.Request, domain.User)

func (s *Server) authenticated(next authHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		user, ok := s.app.UserFromToken(token)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r, user)
	})
}

func (s *Server) ownerOrAdmin(next authHandler) http.Handler {
	return s.authenticated(func(w http.ResponseWriter, r *http.Request, user domain.User) {
		if user.Role != domain.RoleOwner && user.Role != domain.RoleAdmin {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next(w, r, user)
	})
}

func (s *Server) ownerOnly(next authHandler) http.Handler {
	return s.authenticated(func(w http.ResponseWriter, r *http.Request, user domain.User) {
		if user.Role != domain.RoleOwner {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next(w, r, user)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}

// pathTail returns the remainder of the URL path after prefix, or false
// when the remainder is empty or contains further segments.
func pathTail(r *http.Request, prefix string) (string, bool) {
	tail := strings.TrimPrefix(r.URL.Path, prefix)
	if tail == "" || strings.Contains(tail, "/") {
		return "", false
	}
	return tail, true
}
