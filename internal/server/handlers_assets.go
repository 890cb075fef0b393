package server

import (
	"fmt"
	"io"
	"net/http"

	"templehub/internal/util"
	"templehub/pkg/domain"
)

func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		assets, err := s.app.ListAssets()
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": assets, "count": len(assets)})
	case http.MethodPost:
		s.ownerOrAdmin(s.handleUploadAsset).ServeHTTP(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleUploadAsset(w http.ResponseWriter, r *http.Request, _ domain.User) {
	if s.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required (field: file)")
		return
	}
	defer file.Close()

	asset, err := s.app.CreateAsset(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		util.LoggerFromContext(r.Context()).Error("asset upload failed", "err", err, "filename", header.Filename)
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

// /assets/{id}
func (s *Server) handleAssetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTail(r, "/assets/")
	if !ok {
		notFound(w, "not found")
		return
	}
	switch r.Method {
	case http.MethodGet:
		asset, rc, err := s.app.OpenAssetStream(r.Context(), id)
		if err != nil {
			writeAppError(w, err)
			return
		}
		defer rc.Close()
		streamAsset(w, asset, rc)
	case http.MethodDelete:
		s.ownerOrAdmin(func(w http.ResponseWriter, r *http.Request, _ domain.User) {
			if err := s.app.DeleteAsset(r.Context(), id); err != nil {
				writeAppError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
		}).ServeHTTP(w, r)
	default:
		methodNotAllowed(w)
	}
}

// /assets/file/{filename} streams a payload by storage filename.
func (s *Server) handleAssetByFilename(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	name, ok := pathTail(r, "/assets/file/")
	if !ok {
		notFound(w, "not found")
		return
	}
	asset, rc, err := s.app.OpenAssetStreamByFilename(r.Context(), name)
	if err != nil {
		writeAppError(w, err)
		return
	}
	defer rc.Close()
	streamAsset(w, asset, rc)
}

func streamAsset(w http.ResponseWriter, asset domain.BinaryAsset, rc io.Reader) {
	w.Header().Set("Content-Type", asset.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", asset.OriginalName))
	if asset.ByteLength > 0 {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", asset.ByteLength))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}
