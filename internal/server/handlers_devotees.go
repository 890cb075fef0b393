package server

import (
	"net/http"
	"strings"

	"templehub/internal/util"
	"templehub/pkg/domain"
)

func (s *Server) handleDevotees(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		devotees, err := s.app.ListDevotees()
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": devotees, "count": len(devotees)})
	case http.MethodPost:
		s.ownerOrAdmin(s.handleCreateDevotee).ServeHTTP(w, r)
	default:
		methodNotAllowed(w)
	}
}

// handleCreateDevotee accepts multipart form fields name, description
// and the image file (field "image").
func (s *Server) handleCreateDevotee(w http.ResponseWriter, r *http.Request, _ domain.User) {
	if s.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required (field: image)")
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	description := r.FormValue("description")
	devotee, err := s.app.CreateDevotee(r.Context(), name, description, header.Filename, file, header.Size)
	if err != nil {
		util.LoggerFromContext(r.Context()).Error("devotee create failed", "err", err, "name", name)
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, devotee)
}

// /devotees/{id} and /devotees/{id}/image
func (s *Server) handleDevoteeByID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/devotees/")
	parts := strings.SplitN(path, "/", 2)
	id := parts[0]
	if id == "" {
		notFound(w, "not found")
		return
	}

	if len(parts) == 2 {
		if parts[1] != "image" || r.Method != http.MethodGet {
			notFound(w, "not found")
			return
		}
		asset, rc, err := s.app.OpenDevoteeImage(r.Context(), id)
		if err != nil {
			writeAppError(w, err)
			return
		}
		defer rc.Close()
		streamAsset(w, asset, rc)
		return
	}

	switch r.Method {
	case http.MethodGet:
		devotee, err := s.app.GetDevotee(id)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, devotee)
	case http.MethodDelete:
		s.ownerOrAdmin(func(w http.ResponseWriter, r *http.Request, _ domain.User) {
			if err := s.app.DeleteDevotee(r.Context(), id); err != nil {
				writeAppError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
		}).ServeHTTP(w, r)
	default:
		methodNotAllowed(w)
	}
}
