package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/smartcalis/ml-service/pkg/features"
	"github.com/smartcalis/ml-service/pkg/header"
	"github.com/smartcalis/ml-service/pkg/serializer"
)

// errInvalidPayload is returned with --fail-on-error when validation fails.
var errInvalidPayload = errors.New("payload is invalid")

// ValidationResult is the document printed by the validate command.
type ValidationResult struct {
	header.Header `yaml:",inline"`

	Source  string `json:"source" yaml:"source"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check a prediction payload",
		Description: `Runs the prediction input checks against a payload file:
the document must be an object with "user" and "workout" objects.

Examples:
  calisml validate -f payload.json
  calisml validate -f payload.yaml --format json --fail-on-error`,
		Flags: []cli.Flag{
			fileFlag(),
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit non-zero when the payload is invalid",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			path := cmd.String("file")
			payload, err := serializer.FromFile[any](path)
			if err != nil {
				return fmt.Errorf("failed to load payload from %q: %w", path, err)
			}

			valid, msg := features.ValidateInput(*payload)
			slog.Debug("validated payload", "file", path, "valid", valid)

			res := ValidationResult{Source: path, Valid: valid, Message: msg}
			res.Init(header.KindValidationResult, header.APIVersion, version)

			if err := writeOutput(ctx, cmd, res); err != nil {
				return err
			}

			if !valid && cmd.Bool("fail-on-error") {
				return fmt.Errorf("%w: %s", errInvalidPayload, msg)
			}
			return nil
		},
	}
}
