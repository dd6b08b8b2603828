package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	gochi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/quantaserve/qparse/internal/metrics"
	"github.com/quantaserve/qparse/internal/version"
	"github.com/quantaserve/qparse/pkg/qparse"
)

// Error codes returned in the JSON error body.
type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeUnauthorized     errorCode = "unauthorized"
	codeInternalError    errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

const defaultMaxBodyBytes = 1 << 20

// Server exposes the parsing engine over HTTP.
type Server struct {
	engine       *qparse.Engine
	logger       *zap.Logger
	maxBodyBytes int64
}

// NewServer creates an HTTP API server around a parsing engine.
func NewServer(engine *qparse.Engine, logger *zap.Logger) *Server {
	return &Server{
		engine:       engine,
		logger:       logger,
		maxBodyBytes: defaultMaxBodyBytes,
	}
}

// WithMaxBodyBytes overrides the request body size limit.
func (s *Server) WithMaxBodyBytes(n int64) *Server {
	if n > 0 {
		s.maxBodyBytes = n
	}
	return s
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r gochi.Router) {
	r.Get("/", s.Status)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Post("/parse", s.Parse)
}

// parseRequest mirrors the POST /parse body. Query is a pointer so a
// missing key can be told apart from an explicit empty string.
type parseRequest struct {
	Query    *string `json:"query"`
	UserRole string  `json:"user_role"`
	Location string  `json:"location"`
	Channel  string  `json:"channel"`
}

// Parse handles POST /parse.
func (s *Server) Parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, codeBadRequest, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Query == nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query is required")
		return
	}

	start := time.Now()
	rec := s.engine.Parse(qparse.Request{
		Query:    *req.Query,
		UserRole: req.UserRole,
		Location: req.Location,
		Channel:  req.Channel,
	})
	metrics.ParseDuration.Observe(time.Since(start).Seconds())
	metrics.ParsesTotal.WithLabelValues(
		rec.PrimaryIntent,
		labelOrNone(rec.Urgency),
		labelOrNone(rec.BudgetSensitivity),
	).Inc()

	s.logger.Debug("query parsed",
		zap.String("intent", rec.PrimaryIntent),
		zap.String("urgency", labelOrNone(rec.Urgency)),
		zap.String("budget", labelOrNone(rec.BudgetSensitivity)),
	)

	writeJSON(w, http.StatusOK, rec)
}

// statusResponse is the GET / payload.
type statusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Status handles GET /.
func (s *Server) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Message: "Quantum-Ready Parsing Engine is live.",
		Status:  "ok",
		Version: version.Version,
	})
}

type healthResponse struct {
	Status string `json:"status"`
}

// HealthCheck handles GET /health. The engine is stateless and holds no
// external connections, so a reachable process is a healthy one.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// labelOrNone flattens an optional label into a bounded metric value.
func labelOrNone[T ~string](p *T) string {
	if p == nil {
		return "none"
	}
	return string(*p)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
