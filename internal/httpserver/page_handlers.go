package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	pageusecase "fieldcms/backend/internal/usecase/page"
)

func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case http.MethodGet:
		pages, err := s.pageService.List(ctx, r.URL.Query().Get("section_name"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pages)
	case http.MethodPost:
		var payload pageusecase.CreateInput
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}
		page, err := s.pageService.Create(ctx, payload)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, page)
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handlePageByID(w http.ResponseWriter, r *http.Request) {
	remainder := strings.TrimPrefix(r.URL.Path, "/api/pages/")

	if section, ok := strings.CutPrefix(remainder, "section/"); ok {
		s.handlePagesBySection(w, r, section)
		return
	}

	id, err := strconv.ParseInt(remainder, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "page id must be numeric")
		return
	}

	ctx := r.Context()
	switch r.Method {
	case http.MethodGet:
		page, err := s.pageService.Get(ctx, id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	case http.MethodPut:
		var payload pageusecase.UpdateInput
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}
		page, err := s.pageService.Update(ctx, id, payload)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	case http.MethodDelete:
		if err := s.pageService.Delete(ctx, id); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Page deleted successfully"})
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (s *Server) handlePagesBySection(w http.ResponseWriter, r *http.Request, section string) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	if section == "" {
		writeError(w, http.StatusBadRequest, "section name required")
		return
	}

	pages, err := s.pageService.List(r.Context(), section)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pages)
}
