package router

import (
	"net/http"
	"time"

	"fauna-field-log/internal/adapters/auth/simulated"
	"fauna-field-log/internal/adapters/storage/kvrepo"
	mem "fauna-field-log/internal/adapters/storage/memory"
	"fauna-field-log/internal/domain/captures"
	"fauna-field-log/internal/domain/mapview"
	"fauna-field-log/internal/domain/profile"
	"fauna-field-log/internal/domain/session"
	"fauna-field-log/internal/domain/summary"
	"fauna-field-log/internal/middleware"
	"fauna-field-log/internal/platform/logger"
	"fauna-field-log/internal/platform/metrics"
	"fauna-field-log/internal/ports/geo"
	"fauna-field-log/internal/ports/storage"

	_ "fauna-field-log/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, in-memory (modo dev / tests).
	KV storage.KV

	// nil = sin geolocalización; los formularios quedan en 0,0 salvo que el
	// dispositivo reporte la posición.
	Locator    geo.Locator
	GeoTimeout time.Duration

	// Límites de formularios abiertos; 0 = defaults de captures.
	FormIdleTimeout time.Duration
	MaxOpenForms    int

	Logger   logger.Logger
	Metrics  *metrics.Metrics // nil = sin /metrics
	Location *time.Location   // default time.Local

	// Si viene nil se usan los tokens simulados.
	Tokens *simulated.Tokens
}

// App expone el handler y los services que main necesita para el shutdown.
type App struct {
	Handler  http.Handler
	Captures *captures.Service
}

func NewRouter(opts Options) http.Handler {
	return Build(opts).Handler
}

func Build(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	kv := opts.KV
	if kv == nil {
		kv = mem.NewKV()
	}
	tokens := opts.Tokens
	if tokens == nil {
		tokens = simulated.NewTokens()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.SessionContext(tokens))
	r.Use(middleware.RequestLog(log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Repos sobre el mismo KV
	capturesRepo := kvrepo.NewCapturesRepo(kv, log)
	profileRepo := kvrepo.NewProfileRepo(kv, log)

	// Services por módulo
	capOpts := captures.Options{
		Locator:         opts.Locator,
		Logger:          log,
		Location:        opts.Location,
		GeoTimeout:      opts.GeoTimeout,
		FormIdleTimeout: opts.FormIdleTimeout,
		MaxOpenForms:    opts.MaxOpenForms,
	}
	if opts.Metrics != nil {
		capOpts.Metrics = opts.Metrics
	}
	capturesSvc := captures.NewService(capturesRepo, capOpts)
	profileSvc := profile.NewService(profileRepo, capturesSvc, log)
	sessionSvc := session.NewService(tokens, profileSvc, log)
	summarySvc := summary.NewService(capturesSvc, opts.Location)
	mapSvc := mapview.NewService(capturesSvc)

	// Rutas por módulo
	captures.RegisterRoutes(r, capturesSvc)
	summary.RegisterRoutes(r, summarySvc)
	mapview.RegisterRoutes(r, mapSvc)
	profile.RegisterRoutes(r, profileSvc)
	session.RegisterRoutes(r, sessionSvc)

	return &App{Handler: r, Captures: capturesSvc}
}
