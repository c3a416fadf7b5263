package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	authdomain "fieldcms/backend/internal/domain/auth"
)

func (s *Server) registerRoutes() {
	s.router.Handle("/health", http.HandlerFunc(s.handleHealth))
	s.router.Handle("/api/auth/login", http.HandlerFunc(s.handleLogin))
	s.router.Handle("/api/auth/register", http.HandlerFunc(s.handleRegister))
	s.router.Handle("/api/pre-view/images/", http.HandlerFunc(s.handleImagePreview))

	authenticated := s.authMiddleware
	s.router.Handle("/api/agents", authenticated(http.HandlerFunc(s.handleAgents)))
	s.router.Handle("/api/agents/", authenticated(http.HandlerFunc(s.handleAgentByID)))
	s.router.Handle("/api/pages", authenticated(http.HandlerFunc(s.handlePages)))
	s.router.Handle("/api/pages/", authenticated(http.HandlerFunc(s.handlePageByID)))
	s.router.Handle("/api/contents", authenticated(http.HandlerFunc(s.handleContents)))
	s.router.Handle("/api/contents/", authenticated(http.HandlerFunc(s.handleContentByID)))
	s.router.Handle("/api/images/upload", authenticated(http.HandlerFunc(s.handleImageUpload)))
	s.router.Handle("/api/images/", authenticated(http.HandlerFunc(s.handleImageByName)))
	s.router.Handle("/api/search", authenticated(http.HandlerFunc(s.handleSearchAll)))
	s.router.Handle("/api/search/", authenticated(http.HandlerFunc(s.handleSearchScoped)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var payload struct {
		AgentNumber string `json:"agent_number"`
		Password    string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	token, agent, err := s.authService.Login(r.Context(), authdomain.Credentials{
		AgentNumber: payload.AgentNumber,
		Password:    payload.Password,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"agent": agent,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var payload struct {
		AgentNumber string `json:"agent_number"`
		Password    string `json:"password"`
		IsActive    *bool  `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	agent, err := s.authService.Register(r.Context(), payload.AgentNumber, payload.Password, payload.IsActive)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, agent)
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	agents, err := s.agentService.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agents)
}

func (s *Server) handleAgentByID(w http.ResponseWriter, r *http.Request) {
	remainder := strings.TrimPrefix(r.URL.Path, "/api/agents/")
	if remainder == "me" {
		s.handleCurrentAgent(w, r)
		return
	}

	id, err := strconv.ParseInt(remainder, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "agent id must be numeric")
		return
	}

	switch r.Method {
	case http.MethodGet:
		agent, err := s.agentService.Get(r.Context(), id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, agent)
	case http.MethodPut:
		var payload struct {
			IsActive *bool `json:"is_active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && err != io.EOF {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}
		if payload.IsActive == nil {
			writeError(w, http.StatusBadRequest, "is_active field is required")
			return
		}
		if err := s.agentService.UpdateStatus(r.Context(), id, *payload.IsActive); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Agent status updated"})
	case http.MethodDelete:
		if err := s.agentService.Delete(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Agent deleted"})
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (s *Server) handleCurrentAgent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	agent, err := s.agentService.Get(r.Context(), claims.AgentID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agent)
}
