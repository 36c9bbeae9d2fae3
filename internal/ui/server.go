// Package ui provides the web dashboard server for shellboard.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/shellboard/internal/dashdata"
	"github.com/leapstack-labs/shellboard/internal/nav"
	"github.com/leapstack-labs/shellboard/internal/ui/features/common"
	"github.com/leapstack-labs/shellboard/internal/ui/metrics"
	"github.com/leapstack-labs/shellboard/internal/ui/notifier"
	"github.com/leapstack-labs/shellboard/internal/ui/router"
	"github.com/leapstack-labs/shellboard/internal/ui/theme"
)

const (
	defaultShutdownTimeout = 5 * time.Second
	watchDebounce          = 100 * time.Millisecond
)

// Server is the dashboard HTTP server.
type Server struct {
	registry        nav.Registry
	data            *dashdata.Store
	sessionStore    *sessions.CookieStore
	themes          *theme.SessionStore
	port            int
	watch           bool
	shutdownTimeout time.Duration
	isDev           bool
	logger          *slog.Logger
	notifier        *notifier.Notifier
	metrics         *metrics.Metrics
}

// Config holds configuration for the UI server.
type Config struct {
	Registry        nav.Registry
	Data            *dashdata.Store
	Port            int
	Watch           bool
	SessionSecret   string
	ThemeCookie     string
	ShutdownTimeout time.Duration
	IsDev           bool
	Logger          *slog.Logger
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 365) // a year; it only holds the theme
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	data := cfg.Data
	if data == nil {
		data = dashdata.NewStaticStore(nil)
	}
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &Server{
		registry:        cfg.Registry,
		data:            data,
		sessionStore:    sessionStore,
		themes:          theme.NewSessionStore(sessionStore, cfg.ThemeCookie),
		port:            cfg.Port,
		watch:           cfg.Watch,
		shutdownTimeout: timeout,
		isDev:           cfg.IsDev,
		logger:          logger,
		notifier:        notifier.New(logger),
		metrics:         metrics.New(),
	}
}

// Deps returns the dependencies handed to the feature handlers.
func (s *Server) Deps() common.Deps {
	return common.Deps{
		Registry: s.registry,
		Data:     s.data,
		Themes:   s.themes,
		Notifier: s.notifier,
		Metrics:  s.metrics,
		Logger:   s.logger,
		IsDev:    s.isDev,
	}
}

// Handler builds the router with middleware and every feature route.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.Deps()); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve listens on the configured port and blocks until the context is
// cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", s.port, err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	handler, err := s.Handler()
	if err != nil {
		_ = ln.Close()
		return err
	}

	s.logger.Info("starting UI server", "addr", "http://"+displayAddr(ln.Addr()))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start data file watcher if enabled
	if s.watch && s.data.Path() != "" {
		eg.Go(func() error {
			return s.watchData(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// IsDev reports whether dev-only routes such as hot reload are served.
func (s *Server) IsDev() bool {
	return s.isDev
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchData reloads the data file when it changes. The directory is watched
// rather than the file so editors that replace the file on save still
// trigger a reload.
func (s *Server) watchData(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	path := filepath.Clean(s.data.Path())
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		s.logger.Error("failed to watch data file", "path", path, "error", err)
		// Don't fail - continue without watching
		<-ctx.Done()
		return nil
	}

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != path {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				s.reloadData(event.Name)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// reloadData re-reads the data file and pings live pages. A broken file
// keeps the previous data and sends nothing.
func (s *Server) reloadData(file string) {
	err := s.data.Reload()
	s.metrics.DataReloaded(err)
	if err != nil {
		s.logger.Error("reload dashboard data failed", "file", file, "error", err)
		return
	}

	sent := s.notifier.Broadcast("data file changed")
	s.logger.Debug("dashboard data reloaded", "file", file, "listeners", sent)
}

func displayAddr(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok && tcp.IP.IsUnspecified() {
		return fmt.Sprintf("localhost:%d", tcp.Port)
	}
	return addr.String()
}
