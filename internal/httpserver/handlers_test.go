package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fieldcms/backend/internal/config"
	authdomain "fieldcms/backend/internal/domain/auth"
	"fieldcms/backend/internal/infrastructure/token"
	agentusecase "fieldcms/backend/internal/usecase/agent"
	authusecase "fieldcms/backend/internal/usecase/auth"
)

// fakeAgentRepo is an in-memory AgentRepository for handler tests.
type fakeAgentRepo struct {
	agents map[int64]*authdomain.Agent
	nextID int64
}

func newFakeAgentRepo() *fakeAgentRepo {
	return &fakeAgentRepo{agents: map[int64]*authdomain.Agent{}, nextID: 1}
}

func (f *fakeAgentRepo) Create(_ context.Context, agent *authdomain.Agent) error {
	for _, existing := range f.agents {
		if existing.AgentNumber == agent.AgentNumber {
			return authdomain.ErrAgentExists
		}
	}
	agent.ID = f.nextID
	f.nextID++
	copy := *agent
	f.agents[agent.ID] = &copy
	return nil
}

func (f *fakeAgentRepo) GetByNumber(_ context.Context, agentNumber string) (*authdomain.Agent, error) {
	for _, agent := range f.agents {
		if agent.AgentNumber == agentNumber {
			copy := *agent
			return &copy, nil
		}
	}
	return nil, authdomain.ErrAgentNotFound
}

func (f *fakeAgentRepo) GetByID(_ context.Context, id int64) (*authdomain.Agent, error) {
	agent, ok := f.agents[id]
	if !ok {
		return nil, authdomain.ErrAgentNotFound
	}
	copy := *agent
	return &copy, nil
}

func (f *fakeAgentRepo) List(context.Context) ([]*authdomain.Agent, error) {
	out := make([]*authdomain.Agent, 0, len(f.agents))
	for _, agent := range f.agents {
		copy := *agent
		out = append(out, &copy)
	}
	return out, nil
}

func (f *fakeAgentRepo) UpdateStatus(_ context.Context, id int64, isActive bool) error {
	agent, ok := f.agents[id]
	if !ok {
		return authdomain.ErrAgentNotFound
	}
	agent.IsActive = isActive
	return nil
}

func (f *fakeAgentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.agents[id]; !ok {
		return authdomain.ErrAgentNotFound
	}
	delete(f.agents, id)
	return nil
}

func (f *fakeAgentRepo) Search(_ context.Context, term string) ([]*authdomain.Agent, error) {
	var out []*authdomain.Agent
	for _, agent := range f.agents {
		if strings.Contains(agent.AgentNumber, term) {
			copy := *agent
			out = append(out, &copy)
		}
	}
	return out, nil
}

// newAuthTestServer wires a server with real auth plumbing over the in-memory
// repository, seeded with one active agent.
func newAuthTestServer(t *testing.T) (*Server, *fakeAgentRepo) {
	t.Helper()

	repo := newFakeAgentRepo()
	hash, err := authusecase.HashPassword("topsecret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	repo.agents[1] = &authdomain.Agent{ID: 1, AgentNumber: "A001", PasswordHash: hash, IsActive: true}
	repo.nextID = 2

	tokens := token.NewJWTManager("handler-test-secret", time.Hour)
	cfg := config.Config{
		HTTPPort:       "0",
		AllowedOrigins: []string{"*"},
	}
	srv := NewServer(cfg, Services{
		Auth:   authusecase.NewService(repo, tokens),
		Agents: agentusecase.NewService(repo),
		Tokens: tokens,
	})
	return srv, repo
}

func doJSON(t *testing.T, srv *Server, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint(t *testing.T) {
	srv, _ := newAuthTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/login", `{"agent_number":"A001","password":"topsecret"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Token string `json:"token"`
		Agent struct {
			ID          int64  `json:"id"`
			AgentNumber string `json:"agent_number"`
			IsActive    bool   `json:"is_active"`
		} `json:"agent"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("response carries no token")
	}
	if resp.Agent.ID != 1 || resp.Agent.AgentNumber != "A001" || !resp.Agent.IsActive {
		t.Errorf("unexpected agent payload %+v", resp.Agent)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Error("login response leaks password material")
	}

	// The token from login opens protected routes.
	rec = doJSON(t, srv, http.MethodGet, "/api/agents/me", "", resp.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("/api/agents/me: status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var me struct {
		AgentNumber string `json:"agent_number"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if me.AgentNumber != "A001" {
		t.Errorf("me = %+v, want A001", me)
	}
}

func TestLoginEndpointFailures(t *testing.T) {
	srv, _ := newAuthTestServer(t)

	cases := map[string]string{
		"unknown agent":  `{"agent_number":"A999","password":"topsecret"}`,
		"wrong password": `{"agent_number":"A001","password":"nope"}`,
		"empty body":     `{}`,
	}
	for name, body := range cases {
		rec := doJSON(t, srv, http.MethodPost, "/api/auth/login", body, "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", name, rec.Code)
		}
	}

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/login", `not json`, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid JSON: status = %d, want 400", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/api/auth/login", "", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET login: status = %d, want 405", rec.Code)
	}
}

func TestLoginRejectsDeactivatedAgent(t *testing.T) {
	srv, repo := newAuthTestServer(t)
	repo.agents[1].IsActive = false

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/login", `{"agent_number":"A001","password":"topsecret"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRegisterEndpoint(t *testing.T) {
	srv, repo := newAuthTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/register", `{"agent_number":"A002","password":"hunter2"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}
	if strings.Contains(rec.Body.String(), "hunter2") {
		t.Error("register response leaks the password")
	}

	stored, err := repo.GetByNumber(context.Background(), "A002")
	if err != nil {
		t.Fatalf("GetByNumber: %v", err)
	}
	if !authusecase.VerifyPassword("hunter2", stored.PasswordHash) {
		t.Error("stored hash does not verify")
	}

	// Same agent number again collides.
	rec = doJSON(t, srv, http.MethodPost, "/api/auth/register", `{"agent_number":"A002","password":"other"}`, "")
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate register: status = %d, want 409", rec.Code)
	}
}

func TestAgentStatusEndpoint(t *testing.T) {
	srv, repo := newAuthTestServer(t)

	login := doJSON(t, srv, http.MethodPost, "/api/auth/login", `{"agent_number":"A001","password":"topsecret"}`, "")
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding login: %v", err)
	}

	rec := doJSON(t, srv, http.MethodPut, "/api/agents/1", `{"is_active":false}`, resp.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if repo.agents[1].IsActive {
		t.Error("agent still active after update")
	}

	// Missing is_active is a validation error.
	rec = doJSON(t, srv, http.MethodPut, "/api/agents/1", `{}`, resp.Token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	// The token issued before deactivation still works until it expires.
	rec = doJSON(t, srv, http.MethodGet, "/api/agents/me", "", resp.Token)
	if rec.Code != http.StatusOK {
		t.Errorf("deactivation revoked an outstanding token: status = %d", rec.Code)
	}
}
