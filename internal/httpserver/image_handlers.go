package httpserver

import (
	"io"
	"net/http"
	"strings"
)

// maxUploadBytes caps the accepted multipart body size.
const maxUploadBytes = 32 << 20

func (s *Server) handleImageUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	mr, err := r.MultipartReader()
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart form data required")
		return
	}

	// The first file part wins, whatever its field name; remaining parts are
	// ignored, matching the upload contract the frontend relies on.
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read field")
			return
		}
		if part.FileName() == "" {
			part.Close()
			continue
		}

		filename, path, err := s.imageService.Upload(part.FileName(), part)
		part.Close()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to store file")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"filename": filename,
			"path":     path,
			"message":  "Image uploaded successfully",
		})
		return
	}

	writeError(w, http.StatusBadRequest, "no file uploaded")
}

func (s *Server) handleImageByName(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimPrefix(r.URL.Path, "/api/images/")
	if filename == "" {
		writeError(w, http.StatusBadRequest, "filename required")
		return
	}

	if r.Method != http.MethodDelete {
		writeMethodNotAllowed(w, http.MethodDelete)
		return
	}

	if err := s.imageService.Delete(filename); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Image deleted successfully"})
}

func (s *Server) handleImagePreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	filename := strings.TrimPrefix(r.URL.Path, "/api/pre-view/images/")
	if filename == "" {
		writeError(w, http.StatusBadRequest, "filename required")
		return
	}

	rc, contentType, err := s.imageService.Open(filename)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}
