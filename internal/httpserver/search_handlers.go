package httpserver

import (
	"net/http"
	"strings"
)

func (s *Server) handleSearchAll(w http.ResponseWriter, r *http.Request) {
	term, ok := searchTerm(w, r)
	if !ok {
		return
	}

	results, err := s.searchService.All(r.Context(), term)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleSearchScoped(w http.ResponseWriter, r *http.Request) {
	term, ok := searchTerm(w, r)
	if !ok {
		return
	}

	switch strings.TrimPrefix(r.URL.Path, "/api/search/") {
	case "pages":
		pages, err := s.searchService.Pages(r.Context(), term)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pages)
	case "contents":
		contents, err := s.searchService.Contents(r.Context(), term)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, contents)
	default:
		writeError(w, http.StatusNotFound, "resource not found")
	}
}

func searchTerm(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return "", false
	}
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return "", false
	}
	return term, true
}
