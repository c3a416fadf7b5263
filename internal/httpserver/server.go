package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"fieldcms/backend/internal/config"
	agentusecase "fieldcms/backend/internal/usecase/agent"
	authusecase "fieldcms/backend/internal/usecase/auth"
	contentusecase "fieldcms/backend/internal/usecase/content"
	imageusecase "fieldcms/backend/internal/usecase/image"
	pageusecase "fieldcms/backend/internal/usecase/page"
	searchusecase "fieldcms/backend/internal/usecase/search"
)

// Server wraps the HTTP server lifecycle.
type Server struct {
	httpServer     *http.Server
	router         *http.ServeMux
	authService    *authusecase.Service
	agentService   *agentusecase.Service
	pageService    *pageusecase.Service
	contentService *contentusecase.Service
	imageService   *imageusecase.Service
	searchService  *searchusecase.Service
	tokens         authusecase.TokenManager
	allowedOrigins []string
	addr           string
}

// Services bundles the use case dependencies of the HTTP layer.
type Services struct {
	Auth     *authusecase.Service
	Agents   *agentusecase.Service
	Pages    *pageusecase.Service
	Contents *contentusecase.Service
	Images   *imageusecase.Service
	Search   *searchusecase.Service
	Tokens   authusecase.TokenManager
}

// NewServer constructs a new Server with configured dependencies.
func NewServer(cfg config.Config, svcs Services) *Server {
	mux := http.NewServeMux()
	addr := cfg.HTTPPort
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	handler := withLogging(withCORS(mux, cfg.AllowedOrigins))

	srv := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
			IdleTimeout:  time.Duration(cfg.IdleTimeoutSec) * time.Second,
		},
		router:         mux,
		authService:    svcs.Auth,
		agentService:   svcs.Agents,
		pageService:    svcs.Pages,
		contentService: svcs.Contents,
		imageService:   svcs.Images,
		searchService:  svcs.Search,
		tokens:         svcs.Tokens,
		allowedOrigins: cfg.AllowedOrigins,
		addr:           addr,
	}
	srv.registerRoutes()
	return srv
}

// Start bootstraps the HTTP server on the configured address.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the underlying ServeMux so routes can be registered.
func (s *Server) Router() *http.ServeMux {
	return s.router
}

// Addr returns the configured network address for the HTTP server.
func (s *Server) Addr() string {
	return s.addr
}
