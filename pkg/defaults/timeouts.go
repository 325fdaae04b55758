// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// PredictHandlerTimeout is the timeout for prediction requests.
	PredictHandlerTimeout = 10 * time.Second

	// PredictModelTimeout is the internal timeout for a single model call.
	// Should be less than PredictHandlerTimeout to allow error handling.
	PredictModelTimeout = 8 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the entire request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second

	// TracingShutdownTimeout bounds the final span export on exit.
	TracingShutdownTimeout = 5 * time.Second
)

// Request limits for inbound traffic.
const (
	// MaxRequestBodyBytes caps prediction payloads.
	MaxRequestBodyBytes = 1 << 20

	// RateLimit is the default sustained request rate (requests per second).
	RateLimit = 100

	// RateLimitBurst is the default token bucket burst size.
	RateLimitBurst = 200
)

// Service defaults applied when the environment does not override them.
const (
	// ServiceName is the human-readable service name reported by health checks.
	ServiceName = "Smart Calis ML Service"

	// Port is the default listening port (FLASK_PORT).
	Port = 5001

	// CORSOrigin is the default allowed cross-origin caller (CORS_ORIGIN).
	CORSOrigin = "http://localhost:5000"

	// Environment is the default runtime environment (FLASK_ENV).
	Environment = "development"

	// APIPathPrefix is the path prefix all ML routes share.
	APIPathPrefix = "/ml"
)
