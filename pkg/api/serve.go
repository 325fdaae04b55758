package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/smartcalis/ml-service/pkg/config"
	"github.com/smartcalis/ml-service/pkg/defaults"
	"github.com/smartcalis/ml-service/pkg/logging"
	"github.com/smartcalis/ml-service/pkg/model"
	"github.com/smartcalis/ml-service/pkg/server"
	"github.com/smartcalis/ml-service/pkg/tracing"
)

const (
	name           = "calismld"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// BuildInfo returns the version, commit and build date baked in at link time.
func BuildInfo() (string, string, string) {
	return version, commit, date
}

// Serve runs the API server until ctx is cancelled or the process is signalled.
func Serve(ctx context.Context, cfg *config.Config) error {
	return ServeWithRegistry(ctx, cfg, model.NewRegistry())
}

// ServeWithRegistry is Serve with a caller-owned model registry.
func ServeWithRegistry(ctx context.Context, cfg *config.Config, models *model.Registry) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"environment", cfg.Env.String(),
		"debug", cfg.Debug,
	)

	shutdownTracing, err := tracing.Init(ctx, cfg.OTLPEndpoint, name, version, cfg.Env.String())
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("tracing shutdown", "error", err)
		}
	}()

	svc := NewService(cfg, models)
	s := server.New(
		server.WithConfig(serverConfig(cfg)),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(svc.Routes()),
		server.WithCORS(defaults.APIPathPrefix+"/", cfg.CORSOrigin),
		server.WithTracing(tracing.Enabled(cfg.OTLPEndpoint)),
	)

	PrintBanner(os.Stdout, cfg)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

func serverConfig(cfg *config.Config) *server.Config {
	sc := server.NewConfig()
	sc.Port = cfg.Port
	sc.ShutdownTimeout = cfg.ShutdownTimeout
	return sc
}

const bannerWidth = 50

// PrintBanner writes the startup banner.
func PrintBanner(w io.Writer, cfg *config.Config) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %s\n", defaults.ServiceName)
	fmt.Fprintf(w, "  Environment: %s\n", cfg.Env)
	fmt.Fprintf(w, "  Server running on port: %d\n", cfg.Port)
	fmt.Fprintf(w, "  API available at: %s\n", cfg.BaseURL())
	fmt.Fprintln(w, rule)
}
