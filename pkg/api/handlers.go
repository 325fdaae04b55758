package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/smartcalis/ml-service/pkg/config"
	"github.com/smartcalis/ml-service/pkg/defaults"
	mlerrors "github.com/smartcalis/ml-service/pkg/errors"
	"github.com/smartcalis/ml-service/pkg/features"
	"github.com/smartcalis/ml-service/pkg/model"
	"github.com/smartcalis/ml-service/pkg/serializer"
	"github.com/smartcalis/ml-service/pkg/server"
)

// Routes served by this package.
const (
	HealthPath  = defaults.APIPathPrefix + "/health"
	PredictPath = defaults.APIPathPrefix + "/predict-calories"
)

// Prediction outcomes recorded in calisml_predictions_total.
const (
	outcomeSuccess   = "success"
	outcomeNotLoaded = "not_loaded"
	outcomeInvalid   = "invalid"
	outcomeError     = "error"
)

const statusHealthy = "healthy"

var predictionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "calisml_predictions_total",
		Help: "Total number of prediction requests by outcome",
	},
	[]string{"outcome"},
)

// HealthResponse is the body of GET /ml/health.
type HealthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	ModelLoaded bool   `json:"model_loaded"`
	Timestamp   string `json:"timestamp"`
}

// PredictResponse is the body of POST /ml/predict-calories.
type PredictResponse struct {
	Success    bool     `json:"success"`
	Prediction *float64 `json:"prediction,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Service holds the handler dependencies.
type Service struct {
	cfg    *config.Config
	models *model.Registry
	now    func() time.Time
}

// NewService returns a Service; a nil registry means no model is ever loaded.
func NewService(cfg *config.Config, models *model.Registry) *Service {
	if cfg == nil {
		cfg = config.New(config.EnvironmentDevelopment)
	}
	if models == nil {
		models = model.NewRegistry()
	}
	return &Service{cfg: cfg, models: models, now: time.Now}
}

// Routes returns the application handlers keyed by path.
func (s *Service) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		HealthPath:  s.handleHealth,
		PredictPath: s.handlePredict,
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, r, "GET, HEAD")
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:      statusHealthy,
		Service:     defaults.ServiceName,
		ModelLoaded: s.models.Loaded(),
		Timestamp:   s.now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) handlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	// checked before the body so an unloaded model answers 503 for any input
	if !s.models.Loaded() {
		predictionsTotal.WithLabelValues(outcomeNotLoaded).Inc()
		respondPredictError(w, http.StatusServiceUnavailable, model.NotLoadedMessage)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.PredictHandlerTimeout)
	defer cancel()

	var body any
	if err := serializer.DecodeRequest(r, &body); err != nil {
		predictionsTotal.WithLabelValues(outcomeInvalid).Inc()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondPredictError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		respondPredictError(w, http.StatusBadRequest, features.MsgNotObject)
		return
	}

	payload, err := features.Validate(body)
	if err != nil {
		predictionsTotal.WithLabelValues(outcomeInvalid).Inc()
		respondPredictError(w, http.StatusBadRequest, mlerrors.MessageOf(err))
		return
	}

	vector, err := features.Preprocess(payload.User, payload.Workout)
	if err != nil {
		predictionsTotal.WithLabelValues(outcomeInvalid).Inc()
		respondPredictError(w, http.StatusBadRequest, mlerrors.MessageOf(err))
		return
	}

	value, err := s.models.Predict(ctx, vector)
	if err != nil {
		code := mlerrors.CodeOf(err)
		outcome := outcomeError
		if errors.Is(err, model.ErrModelNotLoaded) {
			outcome = outcomeNotLoaded
		}
		predictionsTotal.WithLabelValues(outcome).Inc()
		slog.Error("prediction failed",
			"requestID", server.RequestIDFromContext(r.Context()),
			"code", code,
			"error", err,
		)
		respondPredictError(w, server.HTTPStatusFromCode(code), mlerrors.MessageOf(err))
		return
	}

	predictionsTotal.WithLabelValues(outcomeSuccess).Inc()
	rounded := features.RoundPrediction(value, features.DefaultDecimals)
	serializer.RespondJSON(w, http.StatusOK, PredictResponse{
		Success:    true,
		Prediction: &rounded,
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allow string) {
	w.Header().Set("Allow", allow)
	err := mlerrors.NewWithContext(mlerrors.ErrCodeMethodNotAllowed, "Method not allowed",
		map[string]any{"method": r.Method})
	server.WriteErrorFromErr(w, r, err, "Method not allowed", map[string]any{"path": r.URL.Path})
}

func respondPredictError(w http.ResponseWriter, status int, message string) {
	serializer.RespondJSON(w, status, PredictResponse{
		Success: false,
		Error:   message,
	})
}
