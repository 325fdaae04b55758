package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/smartcalis/ml-service/pkg/api"
	"github.com/smartcalis/ml-service/pkg/config"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the ML API server",
		Description: `Starts the HTTP API on FLASK_PORT (default 5001) and blocks until
interrupted. Variables from the env files are applied first; variables
already present in the environment win.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Value: []string{".env"},
				Usage: "env file(s) to load before reading the environment",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "listen port, overrides FLASK_PORT",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.StringSlice("env-file")...)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			if cmd.IsSet("port") {
				port := cmd.Int("port")
				if port <= 0 || port > 65535 {
					return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
				}
				cfg.Port = port
			}
			if cmd.IsSet("log-level") {
				cfg.LogLevel = cmd.String("log-level")
			}

			slog.Debug("serving", "environment", cfg.Env.String(), "port", cfg.Port)
			return api.Serve(ctx, cfg)
		},
	}
}
