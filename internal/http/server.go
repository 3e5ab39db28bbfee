// Package http exposes the local JSON API the expense views consume.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"spendlog/internal/cache"
	applog "spendlog/internal/log"
	"spendlog/internal/services"
)

type Server struct {
	http.Server
	store       *services.ExpenseStore
	rateLimiter *rateLimiter

	// Month payloads are cached per token and rebuilt after any mutation.
	overviewCache *cache.LRUCache[monthOverviewPayload]
	calendarCache *cache.LRUCache[calendarPayload]

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once

	now func() time.Time
}

// NewServer wires routes and middleware, returning a ready-to-run server.
func NewServer(addr string, store *services.ExpenseStore, ratePerMinute int) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:            store,
		rateLimiter:      newRateLimiter(ratePerMinute),
		overviewCache:    cache.NewLRUCache[monthOverviewPayload](24, 5*time.Minute),
		calendarCache:    cache.NewLRUCache[calendarPayload](24, 5*time.Minute),
		stopCacheCleanup: make(chan struct{}),
		now:              time.Now,
	}

	go s.startCacheCleanup()

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.HandleFunc("GET /api/months", s.withMiddleware(s.handleMonths))
	mux.HandleFunc("GET /api/expenses", s.withMiddleware(s.handleListExpenses))
	mux.HandleFunc("POST /api/expenses", s.withMiddleware(s.handleCreateExpense))
	mux.HandleFunc("DELETE /api/expenses/{id}", s.withMiddleware(s.handleDeleteExpense))
	mux.HandleFunc("GET /api/calendar", s.withMiddleware(s.handleCalendar))

	return s
}

func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			overview := s.overviewCache.CleanExpired()
			calendar := s.calendarCache.CleanExpired()
			if overview > 0 || calendar > 0 {
				slog.Debug("Cache cleanup completed",
					"overview_entries_removed", overview,
					"calendar_entries_removed", calendar)
			}
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown stops the cleanup goroutines and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		close(s.stopCacheCleanup)
		s.rateLimiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// withMiddleware adds request IDs, security headers, rate limiting of
// mutating requests, and request logging.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		clientIP := clientIP(r)
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldClientIP, clientIP,
			applog.FieldUserAgent, r.Header.Get("User-Agent"))

		if mutating(r.Method) && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded",
				applog.FieldClientIP, clientIP,
				applog.FieldMethod, r.Method,
				applog.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatusCode, rw.statusCode,
			applog.FieldDuration, time.Since(start).Milliseconds(),
			applog.FieldClientIP, clientIP)
	}
}

func mutating(method string) bool {
	return method == http.MethodPost || method == http.MethodDelete
}

type requestIDKey struct{}

// responseWriter captures the status code for request logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady reports ready only once the expense list is loaded, so
// clients can tell "still loading" from "confirmed empty".
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if s.store.Status() != services.StatusReady {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(s.store.Status().String()))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// invalidateCaches drops all cached month payloads. Called after every
// mutation; a create or delete can change the available-months list as
// well as the affected month, so a full purge is the safe move.
func (s *Server) invalidateCaches() {
	s.overviewCache.Purge()
	s.calendarCache.Purge()
}
