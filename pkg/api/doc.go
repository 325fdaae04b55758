// Package api exposes the Smart Calis ML HTTP API on top of pkg/server.
//
// # Endpoints
//
// Application endpoints (rate limited, CORS enabled for CORS_ORIGIN):
//   - GET  /ml/health           - liveness plus model status
//   - POST /ml/predict-calories - calorie estimate for a workout
//
// System endpoints from pkg/server:
//   - GET /ready, GET /metrics, GET /
//
// # Health
//
//	{"status":"healthy","service":"Smart Calis ML Service","model_loaded":false,"timestamp":"2025-12-30T10:30:00Z"}
//
// # Prediction
//
// Until a model is loaded every POST, whatever its body, gets:
//
//	HTTP/1.1 503 Service Unavailable
//	{"success":false,"error":"Model not yet loaded. Please train the model first (Stage 8)."}
//
// With a model loaded the body is validated and turned into a feature vector:
//
//	curl -X POST http://localhost:5001/ml/predict-calories \
//	  -H "Content-Type: application/json" \
//	  -d '{"user":{"age":40},"workout":{"duration":45,"intensity":8}}'
//
//	{"success":true,"prediction":312.5}
//
// Bodies may also be sent as YAML (Content-Type: application/yaml).
// Invalid input yields 400 with {"success":false,"error":"..."}.
//
// # Configuration
//
// See pkg/config. Build information is set with ldflags:
//
//	go build -ldflags="-X 'github.com/smartcalis/ml-service/pkg/api.version=1.0.0'"
package api
