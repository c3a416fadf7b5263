package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	contentusecase "fieldcms/backend/internal/usecase/content"
)

func (s *Server) handleContents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case http.MethodGet:
		contents, err := s.contentService.List(ctx)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, contents)
	case http.MethodPost:
		var payload contentusecase.CreateInput
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}
		content, err := s.contentService.Create(ctx, payload)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, content)
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleContentByID(w http.ResponseWriter, r *http.Request) {
	remainder := strings.TrimPrefix(r.URL.Path, "/api/contents/")

	if ref, ok := strings.CutPrefix(remainder, "ref/"); ok {
		s.handleContentsByRef(w, r, ref)
		return
	}

	id, err := strconv.ParseInt(remainder, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "content id must be numeric")
		return
	}

	ctx := r.Context()
	switch r.Method {
	case http.MethodGet:
		content, err := s.contentService.Get(ctx, id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, content)
	case http.MethodPut:
		var payload contentusecase.UpdateInput
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}
		content, err := s.contentService.Update(ctx, id, payload)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, content)
	case http.MethodDelete:
		if err := s.contentService.Delete(ctx, id); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Content deleted successfully"})
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (s *Server) handleContentsByRef(w http.ResponseWriter, r *http.Request, ref string) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	refID, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ref id must be numeric")
		return
	}

	contents, err := s.contentService.ListByRef(r.Context(), refID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contents)
}
