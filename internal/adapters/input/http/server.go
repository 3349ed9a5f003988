package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"plex-hue-webhook/internal/metrics"
	"plex-hue-webhook/internal/ports"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	payloadField = "payload"
	// Plex attaches a JPEG thumbnail to some events.
	maxMultipartMemory = 10 << 20
)

type Server struct {
	webhook  ports.WebhookPort
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

func NewServer(webhook ports.WebhookPort, m *metrics.Metrics, gatherer prometheus.Gatherer) *Server {
	return &Server{
		webhook:  webhook,
		metrics:  m,
		gatherer: gatherer,
	}
}

func (s *Server) Handler() http.Handler {
	router := httprouter.New()
	router.GET("/health", s.handleHealth)
	router.POST("/plex/webhook", s.handleWebhook)
	router.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return accessLog(router)
}

// ListenAndServe blocks until ctx is cancelled, then shuts the server down.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}
	}()

	log.Info().Str("addr", addr).Msg("Starting HTTP server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// handleWebhook always answers 200; the outcome travels in the JSON body.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result := s.webhook.Handle(r.Context(), readPayload(r))
	s.metrics.WebhookResults.WithLabelValues(strconv.Itoa(result.Status)).Inc()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Error().Err(err).Msg("Failed to write webhook response")
	}
}

func readPayload(r *http.Request) string {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		log.Warn().Err(err).Msg("Failed to parse webhook form")
		return ""
	}
	return r.FormValue(payloadField)
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	})
}
