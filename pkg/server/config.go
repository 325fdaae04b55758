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

package server

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/smartcalis/ml-service/pkg/defaults"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Application handlers keyed by ServeMux pattern
	Handlers map[string]http.HandlerFunc

	// Listen address; empty Address binds all interfaces
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Request limits
	MaxRequestBodyBytes int64

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration

	// Cross-origin configuration; CORS is disabled when CORSOrigins is empty
	CORSPathPrefix string
	CORSOrigins    []string

	// Wrap the handler with OpenTelemetry instrumentation
	Tracing bool
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return &Config{
		Name:                "server",
		Version:             "undefined",
		Address:             "",
		Port:                defaults.Port,
		RateLimit:           defaults.RateLimit,
		RateLimitBurst:      defaults.RateLimitBurst,
		MaxRequestBodyBytes: defaults.MaxRequestBodyBytes,
		ReadTimeout:         defaults.ServerReadTimeout,
		ReadHeaderTimeout:   defaults.ServerReadHeaderTimeout,
		WriteTimeout:        defaults.ServerWriteTimeout,
		IdleTimeout:         defaults.ServerIdleTimeout,
		ShutdownTimeout:     defaults.ServerShutdownTimeout,
	}
}
