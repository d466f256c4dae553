// Package webhook serves the signed Front webhook endpoint and hands
// verified deliveries to the background pipeline.
package webhook

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/mattjoyce/axis-scorer/internal/history"
	"github.com/mattjoyce/axis-scorer/internal/metrics"
	"github.com/mattjoyce/axis-scorer/internal/pipeline"
)

// Config holds webhook server configuration.
type Config struct {
	Listen string
	// Secret is the shared Front application secret used for signature
	// verification.
	Secret string
}

// Processor runs the background pipeline for one delivery.
type Processor interface {
	Process(ctx context.Context, req pipeline.Request) error
}

// RecentLister reads recent entries from the score journal.
type RecentLister interface {
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// Server is the webhook HTTP server.
type Server struct {
	config    Config
	processor Processor
	tracker   *pipeline.Tracker
	scores    RecentLister
	metrics   *metrics.Metrics
	logger    *slog.Logger
	server    *http.Server
}

// New creates a new webhook server instance. scores and m may be nil.
func New(config Config, processor Processor, tracker *pipeline.Tracker, scores RecentLister, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		config:    config,
		processor: processor,
		tracker:   tracker,
		scores:    scores,
		metrics:   m,
		logger:    logger,
	}
}

// Start starts the webhook HTTP server (blocking).
func (s *Server) Start(ctx context.Context) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         s.config.Listen,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("webhook server starting", "listen", s.config.Listen)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("webhook server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("webhook server shutdown failed: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return fmt.Errorf("webhook server error: %w", err)
	}
}

// setupRoutes configures the HTTP router.
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Post("/axis", s.handleAxis)
	r.Get("/healthz", s.handleHealth)
	r.Get("/scores", s.handleScores)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	return r
}

// loggingMiddleware logs HTTP requests (excludes sensitive payloads).
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info("webhook request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
			"remote_addr", r.RemoteAddr,
		)
	})
}

// handleAxis verifies a delivery, schedules the background pipeline, and
// acknowledges with 202 before any scoring work happens.
func (s *Server) handleAxis(w http.ResponseWriter, r *http.Request) {
	receivedAt := time.Now().UTC()

	// Capture the raw bytes before any parsing; the signature is computed
	// over this exact sequence.
	limitedReader := io.LimitReader(r.Body, maxBodySize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if int64(len(body)) > maxBodySize {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}

	timestamp := r.Header.Get(HeaderTimestamp)
	signature := r.Header.Get(HeaderSignature)
	if err := Verify(body, timestamp, signature, s.config.Secret); err != nil {
		s.logger.Warn("webhook signature verification failed", "remote_addr", r.RemoteAddr)
		s.countRequest(metrics.OutcomeRejected)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		s.countRequest(metrics.OutcomeInvalid)
		s.respondError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	if err := payload.Validate(); err != nil {
		s.countRequest(metrics.OutcomeInvalid)
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	deliveryID := uuid.NewString()
	fp := fingerprint(body)
	req := pipeline.Request{
		DeliveryID:     deliveryID,
		ConversationID: payload.ConversationID,
		Message:        payload.Message,
		Fingerprint:    fp,
		ReceivedAt:     receivedAt,
	}

	s.logger.Info("webhook delivery accepted",
		"delivery_id", deliveryID,
		"conversation_id", payload.ConversationID,
		"fingerprint", fp,
	)
	s.countRequest(metrics.OutcomeAccepted)

	// Detached: the 202 goes out now, the pipeline settles on its own time.
	s.tracker.Go("process "+deliveryID, func(ctx context.Context) {
		if err := s.processor.Process(ctx, req); err != nil {
			s.logger.Error("background processing failed",
				"delivery_id", deliveryID,
				"conversation_id", payload.ConversationID,
				"error", err,
			)
			if s.metrics != nil {
				s.metrics.RecordPipelineFailure()
			}
		}
	})

	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	if s.scores == nil {
		s.respondJSON(w, http.StatusOK, []history.Entry{})
		return
	}
	entries, err := s.scores.Recent(r.Context(), 50)
	if err != nil {
		s.logger.Error("failed to read score journal", "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to read scores")
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	s.respondJSON(w, http.StatusOK, entries)
}

// fingerprint is a short blake3 digest of the raw payload, used to correlate
// log lines and journal rows for repeated deliveries. It never gates work.
func fingerprint(body []byte) string {
	sum := blake3.Sum256(body)
	return hex.EncodeToString(sum[:8])
}

// respondJSON sends a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends a JSON error response.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{Error: message})
}

func (s *Server) countRequest(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordRequest(outcome)
	}
}
