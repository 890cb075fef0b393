package server

import (
	"net/http"

	"templehub/internal/util"
	"templehub/pkg/domain"
	"templehub/pkg/schedule"
)

func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	week, err := s.app.GetWeek()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": week})
}

// /schedule/{day}
func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	day, ok := pathTail(r, "/schedule/")
	if !ok {
		notFound(w, "not found")
		return
	}
	ds, err := s.app.GetDay(domain.DayOfWeek(day))
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

// handleScheduleUpload replaces the whole weekly table from an uploaded
// XLSX workbook (multipart field "file").
func (s *Server) handleScheduleUpload(w http.ResponseWriter, r *http.Request, _ domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if s.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required (field: file)")
		return
	}
	defer file.Close()

	rows, err := schedule.ReadWorkbook(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid schedule format")
		return
	}
	count, err := s.app.ReplaceSchedule(rows)
	if err != nil {
		util.LoggerFromContext(r.Context()).Error("schedule upload failed", "err", err)
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "replaced", "count": count})
}

type scheduleEventRequest struct {
	Day     string `json:"day"`
	Time    string `json:"time"`
	OldTime string `json:"oldTime"`
	Event   string `json:"event"`
}

// handleScheduleEvents mutates single entries: POST inserts, PUT updates
// the first (day, oldTime) match, DELETE removes all (day, time) matches.
func (s *Server) handleScheduleEvents(w http.ResponseWriter, r *http.Request, _ domain.User) {
	var req scheduleEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	day := domain.DayOfWeek(req.Day)

	var (
		ds  domain.DaySchedule
		err error
	)
	switch r.Method {
	case http.MethodPost:
		ds, err = s.app.InsertEvent(day, req.Time, req.Event)
	case http.MethodPut:
		ds, err = s.app.UpdateEvent(day, req.OldTime, req.Time, req.Event)
	case http.MethodDelete:
		ds, err = s.app.DeleteEvent(day, req.Time)
	default:
		methodNotAllowed(w)
		return
	}
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}
