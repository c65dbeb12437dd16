package http

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/zebra-store/internal/domain"
)

type contextKey string

// ContextKeyProduct holds the decoded product input of a request
const ContextKeyProduct contextKey = "product"

// RequestIDHeader carries the id assigned to each request
const RequestIDHeader = "X-Request-ID"

// Middleware struct holds dependencies for middleware functions
type Middleware struct {
	Logger     hclog.Logger
	corsConfig *CORSConfig
}

// CORSConfig holds configuration for CORS middleware
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	MaxAge           int  // Cache preflight requests
	AllowCredentials bool // Allow credentials like cookies
}

func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		MaxAge:           86400, // 24 hours
		AllowCredentials: true,
	}
}

// NewMiddleware creates a new Middleware instance
func NewMiddleware(logger hclog.Logger, corsConfig *CORSConfig) *Middleware {
	if corsConfig == nil {
		corsConfig = DefaultCORSConfig()
	}
	return &Middleware{
		Logger:     logger,
		corsConfig: corsConfig,
	}
}

// CORS wraps the whole router so that preflight requests are answered even
// though no route matches OPTIONS
func (m *Middleware) CORS(next http.Handler) http.Handler {
	opts := []gorillahandlers.CORSOption{
		gorillahandlers.AllowedOrigins(m.corsConfig.AllowedOrigins),
		gorillahandlers.AllowedMethods(m.corsConfig.AllowedMethods),
		gorillahandlers.AllowedHeaders(m.corsConfig.AllowedHeaders),
		gorillahandlers.ExposedHeaders([]string{RequestIDHeader}),
		gorillahandlers.MaxAge(m.corsConfig.MaxAge),
	}
	if m.corsConfig.AllowCredentials {
		opts = append(opts, gorillahandlers.AllowCredentials())
	}
	return gorillahandlers.CORS(opts...)(next)
}

// Recovery turns handler panics into 500 responses
func (m *Middleware) Recovery(next http.Handler) http.Handler {
	stdLogger := m.Logger.StandardLogger(&hclog.StandardLoggerOptions{ForceLevel: hclog.Error})
	return gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(stdLogger),
		gorillahandlers.PrintRecoveryStack(true),
	)(next)
}

// Compress gzips responses for clients that accept it. Websocket upgrades
// pass through untouched.
func (m *Middleware) Compress(next http.Handler) http.Handler {
	return gorillahandlers.CompressHandler(next)
}

// ContentTypeMiddleware sets the Content-Type header to application/json
func (m *Middleware) ContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs the incoming requests and responses
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		// Add the request ID to the response header
		w.Header().Set(RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// ProductBodyMiddleware decodes the product input in the request body and
// adds it to the context. Field validation happens in the catalog service.
func (m *Middleware) ProductBodyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input domain.ProductInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			m.Logger.Error("Error decoding product", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid product data"})
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyProduct, &input)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder remembers the status code written by the handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Hijack lets the websocket upgrader take over the connection
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return h.Hijack()
}
