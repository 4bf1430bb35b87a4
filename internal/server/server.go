// Package server assembles the HTTP surface: liveness endpoints, Prometheus
// metrics and, when an API key is configured, the JSON game API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/FishingBot_Go/internal/confirm"
	"github.com/osse101/FishingBot_Go/internal/fishing"
	"github.com/osse101/FishingBot_Go/internal/handler"
	"github.com/osse101/FishingBot_Go/internal/ledger"
	"github.com/osse101/FishingBot_Go/internal/logger"
	"github.com/osse101/FishingBot_Go/internal/metrics"
)

// Config holds the HTTP settings.
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance. pinger may be nil for stores
// without a database behind them.
func NewServer(cfg Config, svc fishing.Service, confirms *confirm.Manager, pinger ledger.Pinger) *Server {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/", handler.HandleRoot(time.Now))
	r.Get("/health", handler.HandleHealth())
	r.Get("/readyz", handler.HandleReadyz(pinger))
	r.Handle("/metrics", promhttp.Handler())

	if cfg.APIKey != "" {
		detector := NewSuspiciousActivityDetector()
		game := handler.NewGameHandler(svc, confirms)

		r.Route("/api/v1", func(r chi.Router) {
			r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
			r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))

			r.Get("/shop", game.HandleShop)

			r.Route("/players/{"+handler.PlayerIDParam+"}", func(r chi.Router) {
				r.Get("/", game.HandleGetPlayer)
				r.Post("/fish", game.HandleFish)
				r.Post("/buy", game.HandleBuy)
				r.Post("/equip", game.HandleEquip)
				r.Post("/reset", game.HandleRequestReset)
				r.Post("/reset/confirm", game.HandleConfirmReset)
				r.Get("/export", game.HandleExport)
				r.Post("/import", game.HandleImport)
			})
		})
	} else {
		logger.FromContext(context.Background()).Info(LogMsgAPIDisabled)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func quiet(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if quiet(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server. It returns nil after a graceful Stop.
func (s *Server) Start() error {
	logger.FromContext(context.Background()).Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
