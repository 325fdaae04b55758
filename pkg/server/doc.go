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

// Package server provides the HTTP server shared by the ML service binaries.
//
// A Server wraps net/http with the pieces every endpoint needs: rate limiting
// (golang.org/x/time/rate), request ID tracking, panic recovery, request
// logging, Prometheus metrics, API version negotiation, and a consistent JSON
// error contract. Application routes are supplied by the caller; the server
// adds its own system endpoints.
//
// # Usage
//
//	routes := map[string]http.HandlerFunc{
//	    "/ml/health": handleHealth,
//	}
//
//	s := server.New(
//	    server.WithName("calismld"),
//	    server.WithVersion(version),
//	    server.WithHandler(routes),
//	    server.WithCORS("/ml/", "http://localhost:5000"),
//	)
//
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # System Endpoints
//
// These endpoints bypass the middleware chain and are never rate limited:
//
//	GET /ready   - 200 while serving, 503 before start and during shutdown
//	GET /metrics - Prometheus metrics
//	GET /        - server name, version and registered routes (unless overridden)
//
// # Middleware
//
// Application routes run through, from outermost to innermost:
// metrics, API version, request ID, panic recovery, rate limit, body limit,
// and request logging.
//
// Requests may carry an X-Request-Id header in UUID format; otherwise one is
// generated. The ID is echoed in the response header and in error bodies.
// Rate limited requests receive 429 with a Retry-After header.
//
// # Cross-Origin Requests
//
// WithCORS enables CORS (github.com/rs/cors) for paths under a single prefix.
// Requests outside the prefix never receive CORS headers.
//
// # Tracing
//
// WithTracing wraps the whole handler with otelhttp so spans are exported
// through whatever tracer provider is installed globally (see pkg/tracing).
//
// # Error Handling
//
// All server generated errors share one JSON shape:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 100, "burst": 200},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": true
//	}
//
// WriteErrorFromErr maps pkg/errors codes to HTTP status with HTTPStatusFromCode.
//
// # Lifecycle
//
// Run installs SIGINT/SIGTERM handling, serves until the context is cancelled,
// then flips readiness off and drains connections within ShutdownTimeout.
package server
