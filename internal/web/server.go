package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gofrs/flock"

	"ladderview/internal/config"
	"ladderview/internal/dataset"
	"ladderview/internal/logging"
	"ladderview/internal/share"
)

// ErrAlreadyRunning reports that another viewer holds the state directory lock.
var ErrAlreadyRunning = errors.New("another ladderview viewer is already running for this state directory")

const shutdownTimeout = 5 * time.Second

// Server is the HTTP record viewer.
type Server struct {
	cfg       *config.Config
	logger    *slog.Logger
	store     *dataset.Store
	link      share.Link
	hidden    map[string]struct{}
	templates map[string]*template.Template
	router    chi.Router
}

// New builds a viewer over store. A nil store starts empty.
func New(cfg *config.Config, logger *slog.Logger, store *dataset.Store) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("web server requires config")
	}
	if store == nil {
		store = &dataset.Store{}
	}
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:       cfg,
		logger:    logging.NewComponentLogger(logger, "web"),
		store:     store,
		link:      share.Link{BaseURL: cfg.Share.BaseURL, Route: cfg.Share.Route, Param: cfg.Share.Param},
		hidden:    cfg.HiddenFieldSet(),
		templates: templates,
	}
	s.router = s.routes()
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Store returns the dataset store backing the dashboard.
func (s *Server) Store() *dataset.Store { return s.store }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(correlate)
	r.Use(s.logRequests)

	r.Get("/", s.handleDashboard)
	r.Post("/upload", s.handleUpload)
	r.Get(s.link.Route, s.handleSharedPage)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/records", s.handleRecords)
		r.Get("/records/{n}", s.handleRecord)
		r.Get("/records/{n}/share", s.handleRecordShare)
		r.Get("/shared", s.handleSharedAPI)
	})
	return r
}

// Run takes the state directory lock, serves until ctx is cancelled, then
// shuts down gracefully. ready, when non-nil, receives the bound address.
func (s *Server) Run(ctx context.Context, ready func(addr net.Addr)) error {
	if err := s.cfg.EnsureDirectories(); err != nil {
		return err
	}
	lock := flock.New(s.cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}
	defer func() { _ = lock.Unlock() }()

	listener, err := net.Listen("tcp", s.cfg.Server.Bind)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.cfg.ReadTimeout(),
		WriteTimeout:      s.cfg.WriteTimeout(),
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.logger.Info("viewer listening",
		logging.String("address", listener.Addr().String()),
		logging.String("share_base_url", s.cfg.Share.BaseURL),
		logging.String("lock", s.cfg.LockPath()),
	)
	if ready != nil {
		ready(listener.Addr())
	}

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("viewer stopped")
	return nil
}
