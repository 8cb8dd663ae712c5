package http

import (
	"io"
	"net/http"
	"path/filepath"

	"onboarding-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// LogoUploadHandler accepts company logo uploads at intake time and serves
// them back to the review UI. Storage internals stay behind LogoStorage.
type LogoUploadHandler struct {
	store        storage.LogoStorage
	maxBytes     int64
	allowedTypes map[string]string // content type -> file extension
}

func NewLogoUploadHandler(store storage.LogoStorage, maxFileSizeMB int64) *LogoUploadHandler {
	return &LogoUploadHandler{
		store:    store,
		maxBytes: maxFileSizeMB << 20,
		allowedTypes: map[string]string{
			"image/jpeg": ".jpg",
			"image/png":  ".png",
			"image/gif":  ".gif",
		},
	}
}

func (h *LogoUploadHandler) HandleLogoUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "logo exceeds the maximum allowed size", nil)
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing logo file", nil)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext, ok := h.allowedTypes[contentType]
	if !ok {
		writeError(w, http.StatusBadRequest, "logo must be a JPEG, PNG or GIF image", nil)
		return
	}

	key := uuid.New().String() + ext
	if err := h.store.SaveFile(key, file); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store logo", nil)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"logoUrl": h.store.FileURL(key)})
}

func (h *LogoUploadHandler) HandleLogoDownload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	file, err := h.store.ReadFile(key)
	if err != nil {
		writeError(w, http.StatusNotFound, "logo not found", nil)
		return
	}
	defer file.Close()

	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		w.Header().Set("Content-Type", "image/jpeg")
	case ".png":
		w.Header().Set("Content-Type", "image/png")
	case ".gif":
		w.Header().Set("Content-Type", "image/gif")
	default:
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	_, _ = io.Copy(w, file)
}
