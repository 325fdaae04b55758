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

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/smartcalis/ml-service/pkg/defaults"
)

// Environment variable names.
const (
	EnvEnvironment     = "FLASK_ENV"
	EnvPort            = "FLASK_PORT"
	EnvCORSOrigin      = "CORS_ORIGIN"
	EnvLogLevel        = "LOG_LEVEL"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvOTLPEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"

	defaultEnvFile = ".env"
)

// Environment is the runtime mode of the service.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
	EnvironmentTesting     Environment = "testing"
)

// String returns the string representation of the Environment.
func (e Environment) String() string {
	return string(e)
}

// IsValid reports whether e is one of the recognized environments.
func (e Environment) IsValid() bool {
	switch e {
	case EnvironmentDevelopment, EnvironmentProduction, EnvironmentTesting:
		return true
	default:
		return false
	}
}

// ParseEnvironment maps a raw value to an Environment. Matching is exact and
// case-sensitive; unknown values fall back to development and report false.
func ParseEnvironment(s string) (Environment, bool) {
	e := Environment(s)
	if e == "" {
		return EnvironmentDevelopment, true
	}
	if !e.IsValid() {
		return EnvironmentDevelopment, false
	}
	return e, true
}

// Config holds the service configuration.
type Config struct {
	Env     Environment
	Debug   bool
	Testing bool

	Port       int
	CORSOrigin string
	LogLevel   string

	ShutdownTimeout time.Duration

	// OTLPEndpoint enables tracing export when non-empty.
	OTLPEndpoint string
}

// New returns a Config for env with every other setting at its default.
func New(env Environment) *Config {
	if !env.IsValid() {
		env = EnvironmentDevelopment
	}

	cfg := &Config{
		Env:             env,
		Port:            defaults.Port,
		CORSOrigin:      defaults.CORSOrigin,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
	}

	switch env {
	case EnvironmentProduction:
		cfg.Debug = false
		cfg.Testing = false
	case EnvironmentTesting:
		cfg.Debug = true
		cfg.Testing = true
	default:
		cfg.Debug = true
		cfg.Testing = false
	}

	cfg.LogLevel = "info"
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	return cfg
}

// Load reads the optional env files (".env" when none are given) and then
// builds a Config from the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{defaultEnvFile}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			slog.Debug("env file not loaded", "file", f, "error", err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	env, ok := ParseEnvironment(os.Getenv(EnvEnvironment))
	if !ok {
		slog.Warn("unknown environment, using development",
			"value", os.Getenv(EnvEnvironment))
	}

	cfg := New(env)

	if v, set := lookup(EnvPort); set {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		if port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid %s %d: must be between 1 and 65535", EnvPort, port)
		}
		cfg.Port = port
	}

	if v, set := lookup(EnvCORSOrigin); set {
		cfg.CORSOrigin = v
	}

	if v, set := lookup(EnvLogLevel); set {
		cfg.LogLevel = strings.ToLower(v)
	}

	if v, set := lookup(EnvShutdownTimeout); set {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive integer", EnvShutdownTimeout, v)
		}
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}

	if v, set := lookup(EnvOTLPEndpoint); set {
		cfg.OTLPEndpoint = v
	}

	return cfg, nil
}

// BaseURL returns the local URL of the ML API, as printed in the banner.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://localhost:%d%s", c.Port, defaults.APIPathPrefix)
}

// lookup returns a trimmed, non-empty environment value.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
