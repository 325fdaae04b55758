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

// Package config builds the ML service configuration from the process
// environment.
//
// The configuration is read once at startup by Load and passed by pointer to
// the server and handlers; nothing in the service reads the environment after
// that point.
//
// # Environment Variables
//
//	FLASK_ENV                    development | production | testing (default: development)
//	FLASK_PORT                   listening port (default: 5001)
//	CORS_ORIGIN                  allowed origin for /ml/* (default: http://localhost:5000)
//	LOG_LEVEL                    debug | info | warn | error (default: debug in development/testing, info otherwise)
//	SHUTDOWN_TIMEOUT_SECONDS     graceful shutdown bound (default: 30)
//	OTEL_EXPORTER_OTLP_ENDPOINT  OTLP/HTTP collector endpoint; tracing is off when empty
//
// A .env file in the working directory is loaded first when present. Values
// already set in the environment are never overridden by the file.
package config
