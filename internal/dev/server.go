package dev

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FifthTry/ftd/internal/build"
	"github.com/FifthTry/ftd/internal/config"
	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/middleware"
	"github.com/FifthTry/ftd/pkg/protocol"
	"github.com/FifthTry/ftd/pkg/render"
)

// Dev server routes.
const (
	ReloadPath  = "/_ftd/reload"
	ProgramPath = "/_ftd/program"
	MetricsPath = "/metrics"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger receives request and reload logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Registry collects render and request metrics when metrics are
	// enabled. Defaults to a new registry.
	Registry *prometheus.Registry

	// OnReload is called after browsers were told to reload.
	OnReload func(change Change, clients int)
}

// Server is the development server.
type Server struct {
	config     *config.Config
	options    ServerOptions
	logger     *slog.Logger
	pages      *build.Pages
	renderer   *render.Renderer
	registry   *prometheus.Registry
	metrics    func(http.Handler) http.Handler
	watcher    *Watcher
	reload     *ReloadServer
	httpServer *http.Server

	mu      sync.Mutex
	running bool
	variant config.RenderConfig
}

// NewServer creates a new development server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:  cfg,
		options: options,
		logger:  logger,
		pages:   build.NewPages(cfg.PagesPath(), logger),
		variant: cfg.Render,
	}

	renderOpts := []render.Option{render.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		s.registry = options.Registry
		if s.registry == nil {
			s.registry = prometheus.NewRegistry()
		}
		renderOpts = append(renderOpts, render.WithMetrics(render.NewMetrics(cfg.Metrics.Namespace, s.registry)))
		s.metrics = middleware.Prometheus(
			middleware.WithRegistry(s.registry),
			middleware.WithNamespace(cfg.Metrics.Namespace),
		)
	}
	s.renderer = render.NewRenderer(renderOpts...)

	if cfg.WatchEnabled() {
		s.reload = NewReloadServer(logger)
		s.watcher = NewWatcher(WatcherConfig{
			Paths:    CollectWatchPaths(cfg),
			Ignore:   DefaultIgnore,
			Debounce: cfg.DebounceDuration(),
		})
	}

	return s
}

// Handler returns the dev server's router. Routers built by repeated calls
// share one set of HTTP metrics.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(s.logRequests)
	r.Use(Recoverer(s.logger))
	r.Use(middleware.OpenTelemetry())
	if s.registry != nil {
		r.Use(s.metrics)
		r.Handle(MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	if s.reload != nil {
		r.Get(ReloadPath, s.reload.HandleWebSocket)
	}

	r.Get("/", s.handleIndex)
	r.Get(ProgramPath+"/{page}", s.handleProgram)
	r.Get("/{page}", s.handlePage)
	return r
}

// Start serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.httpServer = &http.Server{
		Addr:              s.config.DevAddress(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Unlock()

	if s.watcher != nil {
		s.watcher.OnChange(s.handleChange)
		go s.watcher.Start(ctx)
	}

	s.logger.Info("dev server running",
		"url", s.config.DevURL(),
		"pages", s.pages.Dir(),
		"watch", s.watcher != nil,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		return s.Stop()
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	s.running = false

	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// handleChange reacts to a watcher change: the page cache is refreshed
// and browsers are told to reload, or shown the load error.
func (s *Server) handleChange(change Change) {
	switch change.Type {
	case ChangePage:
		s.pages.Invalidate(change.Page)
		if !change.Removed {
			if _, err := s.pages.Interpreter(change.Page); err != nil {
				s.logger.Warn("page failed to load", "page", change.Page, "error", err)
				s.reload.NotifyError(&protocol.ErrorMessage{
					Code:    errors.Code(err),
					Page:    change.Page,
					Message: err.Error(),
				})
				return
			}
		}
		s.reload.NotifyReload(change.Page)

	case ChangeConfig:
		if change.Removed {
			return
		}
		cfg, err := config.LoadFile(change.Path)
		if err != nil {
			s.logger.Warn("config failed to load", "path", change.Path, "error", err)
			s.reload.NotifyError(&protocol.ErrorMessage{Code: errors.Code(err), Message: err.Error()})
			return
		}
		s.mu.Lock()
		s.variant = cfg.Render
		s.mu.Unlock()
		s.pages.Invalidate("")
		s.reload.NotifyReload("")

	default:
		return
	}

	clients := s.reload.ClientCount()
	s.logger.Info("reloaded", "change", change.Type.String(), "page", change.Page, "clients", clients)
	if s.options.OnReload != nil {
		s.options.OnReload(change, clients)
	}
}

// handleIndex lists the pages.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	names, err := s.pages.Names()
	if err != nil {
		writeErrorPage(w, http.StatusInternalServerError, err)
		return
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + templ.EscapeString(s.config.Name) + "</title>\n</head>\n<body>\n")
	b.WriteString("<h1>" + templ.EscapeString(s.config.Name) + "</h1>\n<ul>\n")
	for _, name := range names {
		b.WriteString(`<li><a href="/` + templ.EscapeString(name) + `">` + templ.EscapeString(name) + "</a></li>\n")
	}
	b.WriteString("</ul>\n</body>\n</html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(b.String()))
}

// handlePage renders a page. Query parameters override initial cell and
// list values.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(chi.URLParam(r, "page"), ".html")
	in, err := s.pages.Interpreter(name)
	if err != nil {
		s.pageError(w, name, err)
		return
	}

	s.mu.Lock()
	variant := s.variant
	s.mu.Unlock()

	req := build.Request{
		Overrides: overrides(r),
		Dark:      variant.Dark,
		Mobile:    variant.Mobile,
	}
	if s.reload != nil {
		req.ReloadURL = ReloadPath
	}

	var buf bytes.Buffer
	if _, err := build.RenderPage(r.Context(), s.renderer, in, req, &buf); err != nil {
		s.pageError(w, name, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

// handleProgram serves the compiled program of a page.
func (s *Server) handleProgram(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(chi.URLParam(r, "page"), ".ftdb")
	in, err := s.pages.Interpreter(name)
	if err != nil {
		s.pageError(w, name, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(protocol.EncodeProgram(in.Program()))
}

func (s *Server) pageError(w http.ResponseWriter, page string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("page failed", "page", page, "code", errors.Code(err), "error", err)
		if s.reload != nil {
			s.reload.NotifyError(&protocol.ErrorMessage{
				Code:    errors.Code(err),
				Page:    page,
				Message: err.Error(),
			})
		}
	}
	writeErrorPage(w, status, err)
}

// overrides returns the first value of each query parameter.
func overrides(r *http.Request) map[string]string {
	query := r.URL.Query()
	if len(query) == 0 {
		return nil
	}
	out := make(map[string]string, len(query))
	for k := range query {
		out[k] = query.Get(k)
	}
	return out
}

// logRequests logs each request at Info, or Debug for the reload socket.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		level := slog.LevelInfo
		if r.URL.Path == ReloadPath || r.URL.Path == MetricsPath {
			level = slog.LevelDebug
		}
		s.logger.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}
