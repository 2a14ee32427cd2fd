package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/stockroom/internal/http/auth"
	"github.com/MrJamesThe3rd/stockroom/internal/http/ledger"
	"github.com/MrJamesThe3rd/stockroom/internal/http/respond"
	"github.com/MrJamesThe3rd/stockroom/internal/http/stockcount"
	"github.com/MrJamesThe3rd/stockroom/internal/http/uom"
	"github.com/MrJamesThe3rd/stockroom/internal/metrics"
)

// Pinger reports database reachability for /healthz.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// EventSink reports whether ledger events currently reach the broker.
type EventSink interface {
	Available() bool
}

type Options struct {
	Timeout     time.Duration
	CORSOrigins []string
	JWTSecret   string
	Metrics     *metrics.Metrics
	DB          Pinger
	Events      EventSink
}

func New(
	opts Options,
	ledgerV1 *ledger.Handler,
	countsV1 *stockcount.Handler,
	uomV1 *uom.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", auth.ActorHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware)
		router.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	router.Get("/healthz", healthz(opts.DB, opts.Events))

	router.Route("/api/v1", func(r chi.Router) {
		if opts.Timeout > 0 {
			r.Use(middleware.Timeout(opts.Timeout))
		}

		r.Use(middleware.AllowContentType("application/json"))
		r.Use(auth.Middleware(opts.JWTSecret))

		ledgerV1.Routes(r)

		r.Route("/stock-counts", countsV1.Routes)
		r.Route("/uom", uomV1.Routes)
	})

	return router
}

// healthz fails only when the database is unreachable. A tripped event
// breaker is reported in the body.
func healthz(db Pinger, events EventSink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}

		body := map[string]string{"status": "ok"}

		if events != nil {
			body["events"] = "available"
			if !events.Available() {
				body["events"] = "unavailable"
			}
		}

		respond.JSON(w, http.StatusOK, body)
	}
}
