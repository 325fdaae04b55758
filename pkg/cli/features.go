package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/smartcalis/ml-service/pkg/features"
	"github.com/smartcalis/ml-service/pkg/header"
	"github.com/smartcalis/ml-service/pkg/serializer"
)

// FeatureVector is the document printed by the features command.
type FeatureVector struct {
	header.Header `yaml:",inline"`

	Source   string             `json:"source" yaml:"source"`
	Features []features.Feature `json:"features" yaml:"features"`
	Vector   []float64          `json:"vector" yaml:"vector"`
}

func featuresCmd() *cli.Command {
	return &cli.Command{
		Name:  "features",
		Usage: "Show the model feature vector for a payload",
		Description: `Validates a payload and resolves it into the ordered feature vector
(age, weight, height, duration, intensity) the model consumes. Missing
features are filled with their defaults and flagged.

Examples:
  calisml features -f payload.json
  calisml features -f payload.yaml --format table -o vector.txt`,
		Flags: []cli.Flag{
			fileFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			path := cmd.String("file")
			raw, err := serializer.FromFile[any](path)
			if err != nil {
				return fmt.Errorf("failed to load payload from %q: %w", path, err)
			}

			payload, err := features.Validate(*raw)
			if err != nil {
				return fmt.Errorf("invalid payload %q: %w", path, err)
			}

			resolved, err := features.Resolve(payload.User, payload.Workout)
			if err != nil {
				return fmt.Errorf("invalid payload %q: %w", path, err)
			}

			doc := FeatureVector{
				Source:   path,
				Features: resolved,
				Vector:   make([]float64, len(resolved)),
			}
			for i, f := range resolved {
				doc.Vector[i] = f.Value
			}
			doc.Init(header.KindFeatureVector, header.APIVersion, version)

			return writeOutput(ctx, cmd, doc)
		},
	}
}
