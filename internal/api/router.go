package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/AlexZinkM/nebula-dashboard/docs"
	"github.com/AlexZinkM/nebula-dashboard/internal/handler"
)

// RouterConfig holds the HTTP-level settings of the router
type RouterConfig struct {
	AllowedOrigins []string
	RatePerMinute  int
}

// SetupRouter sets up router with handlers
func SetupRouter(h *handler.Handler, cfg RouterConfig) http.Handler {
	mux := chi.NewMux()

	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(zerologMiddleware)
	mux.Use(zerologRecoverer)
	mux.Use(middleware.Timeout(60 * time.Second))
	if cfg.RatePerMinute > 0 {
		mux.Use(httprate.LimitByIP(cfg.RatePerMinute, time.Minute))
	}

	mux.Get("/health", h.Health)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Get("/swagger/*", httpSwagger.WrapHandler)

	mux.Route("/wallet", func(r chi.Router) {
		r.Get("/", h.GetWallet)
		r.Post("/connect", h.Connect)
		r.Post("/disconnect", h.Disconnect)
		r.Get("/balance", h.GetBalance)
		r.Put("/network", h.SetNetwork)
		r.Post("/sign-message", h.SignMessage)
		r.Post("/send", h.Send)
		r.Get("/qr", h.QRCode)
	})

	mux.Get("/tokens", h.GetTokens)
	mux.Post("/tokens/refresh", h.RefreshTokens)

	mux.Get("/records", h.ListRecords)
	mux.Get("/records/stats", h.GetRecordStats)
	mux.Get("/records/by-signature/{sig}", h.GetRecordBySignature)
	mux.Get("/records/{id}", h.GetRecord)
	mux.Get("/records/{id}/verify", h.VerifyRecord)

	mux.Route("/theme", func(r chi.Router) {
		r.Get("/", h.GetTheme)
		r.Put("/", h.SetTheme)
		r.Patch("/", h.CustomizeTheme)
		r.Delete("/override", h.ResetTheme)
		r.Get("/vars.css", h.ThemeCSS)
	})

	return newCORSHandler(cfg.AllowedOrigins, mux)
}

// NewServer wraps the router in an http.Server with conservative timeouts
func NewServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
