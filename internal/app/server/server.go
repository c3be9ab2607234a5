// Package server assembles the HTTP application: configuration, the entity
// store with its snapshot file, middleware and every route group.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"hrms/internal/platform/config"
	"hrms/internal/platform/jobs"
	"hrms/internal/platform/metrics"
	"hrms/internal/platform/snapshot"
	"hrms/internal/store"
	"hrms/internal/transport/http/api"
	authhandler "hrms/internal/transport/http/handlers/auth"
	corehandler "hrms/internal/transport/http/handlers/core"
	expenseshandler "hrms/internal/transport/http/handlers/expenses"
	feedhandler "hrms/internal/transport/http/handlers/feed"
	learninghandler "hrms/internal/transport/http/handlers/learning"
	leavehandler "hrms/internal/transport/http/handlers/leave"
	notificationshandler "hrms/internal/transport/http/handlers/notifications"
	performancehandler "hrms/internal/transport/http/handlers/performance"
	recruitinghandler "hrms/internal/transport/http/handlers/recruiting"
	reportshandler "hrms/internal/transport/http/handlers/reports"
	uihandler "hrms/internal/transport/http/handlers/ui"
	"hrms/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Store   *store.Store
	Router  http.Handler
	Metrics *metrics.Collector

	stopJobs context.CancelFunc
}

// New builds the application. The snapshot file is loaded when present;
// otherwise the store starts from the demo dataset (or empty when seeding is
// disabled).
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	file := snapshot.NewFile(cfg.SnapshotPath)
	st := store.New(file, store.WithToastTTL(cfg.ToastTTL))

	var snap store.Snapshot
	switch err := file.Load(&snap); {
	case err == nil:
		st.Restore(snap)
		slog.Info("snapshot restored", "path", cfg.SnapshotPath)
	case os.IsNotExist(err):
		if cfg.SeedDemoData {
			st.SeedDemo()
			slog.Info("seeded demo dataset", "path", cfg.SnapshotPath)
		}
	default:
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	app := &App{Config: cfg, Store: st, Metrics: metrics.New()}
	app.Router = app.buildRouter()

	jobCtx, cancel := context.WithCancel(ctx)
	app.stopJobs = cancel
	jobs.NewRunner(jobs.Job{
		Name:     "document-status-refresh",
		Interval: cfg.DocRefreshInterval,
		Run: func(context.Context) (int, error) {
			return st.RefreshDocumentStatuses(), nil
		},
	}).Start(jobCtx)

	return app, nil
}

func (a *App) buildRouter() http.Handler {
	cfg := a.Config
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Metrics(a.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, a.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(a.Store, cfg.JWTSecret).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			corehandler.NewHandler(a.Store).RegisterRoutes(r)
			performancehandler.NewHandler(a.Store).RegisterRoutes(r)
			recruitinghandler.NewHandler(a.Store).RegisterRoutes(r)
			leavehandler.NewHandler(a.Store).RegisterRoutes(r)
			expenseshandler.NewHandler(a.Store).RegisterRoutes(r)
			learninghandler.NewHandler(a.Store).RegisterRoutes(r)
			feedhandler.NewHandler(a.Store).RegisterRoutes(r)
			notificationshandler.NewHandler(a.Store).RegisterRoutes(r)
			reportshandler.NewHandler(a.Store).RegisterRoutes(r)
			uihandler.NewHandler(a.Store).RegisterRoutes(r)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			api.Fail(w, http.StatusNotFound, "not_found", "unknown endpoint", middleware.GetRequestID(r.Context()))
		})
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})
	return router
}

// Close stops background jobs and toast timers, then writes a final snapshot.
func (a *App) Close() error {
	if a.stopJobs != nil {
		a.stopJobs()
	}
	a.Store.Close()
	return snapshot.NewFile(a.Config.SnapshotPath).Save(a.Store.Snapshot())
}

func Run() {
	cfg := config.Load()
	app, err := New(context.Background(), cfg)
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	slog.Info("HRMS server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// spaHandler serves the built frontend, falling back to index.html for
// client-side routes.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
