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

package features

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	mlerrors "github.com/smartcalis/ml-service/pkg/errors"
)

// Source identifies which payload section a feature is read from.
type Source string

const (
	SourceUser    Source = KeyUser
	SourceWorkout Source = KeyWorkout
)

// Column describes one position of the feature vector.
type Column struct {
	Name    string  `json:"name" yaml:"name"`
	Source  Source  `json:"source" yaml:"source"`
	Default float64 `json:"default" yaml:"default"`
}

// Layout lists the feature vector columns. Order is significant.
var Layout = []Column{
	{Name: "age", Source: SourceUser, Default: 25},
	{Name: "weight", Source: SourceUser, Default: 70},
	{Name: "height", Source: SourceUser, Default: 175},
	{Name: "duration", Source: SourceWorkout, Default: 30},
	{Name: "intensity", Source: SourceWorkout, Default: 5},
}

// FeatureNames returns the feature names in vector order.
func FeatureNames() []string {
	names := make([]string, len(Layout))
	for i, s := range Layout {
		names[i] = s.Name
	}
	return names
}

// Defaults returns the fallback value of every feature keyed by name.
func Defaults() map[string]float64 {
	out := make(map[string]float64, len(Layout))
	for _, s := range Layout {
		out[s.Name] = s.Default
	}
	return out
}

// Feature is a single resolved vector entry.
type Feature struct {
	Name      string  `json:"name" yaml:"name"`
	Source    Source  `json:"source" yaml:"source"`
	Value     float64 `json:"value" yaml:"value"`
	Defaulted bool    `json:"defaulted" yaml:"defaulted"`
}

// Preprocess builds the feature vector from the user and workout sections.
func Preprocess(user, workout map[string]any) ([]float64, error) {
	resolved, err := Resolve(user, workout)
	if err != nil {
		return nil, err
	}

	vec := make([]float64, len(resolved))
	for i, f := range resolved {
		vec[i] = f.Value
	}
	return vec, nil
}

// Resolve is Preprocess with per-feature provenance.
func Resolve(user, workout map[string]any) ([]Feature, error) {
	out := make([]Feature, 0, len(Layout))

	for _, s := range Layout {
		section := user
		if s.Source == SourceWorkout {
			section = workout
		}

		raw, present := section[s.Name]
		if !present {
			out = append(out, Feature{Name: s.Name, Source: s.Source, Value: s.Default, Defaulted: true})
			continue
		}

		v, err := toFloat(raw)
		if err != nil {
			return nil, mlerrors.WrapWithContext(mlerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("%q must be a number", s.Name), err,
				map[string]any{
					"field":   s.Name,
					"section": string(s.Source),
					"value":   fmt.Sprintf("%v", raw),
				})
		}

		out = append(out, Feature{Name: s.Name, Source: s.Source, Value: v})
	}

	return out, nil
}

// toFloat coerces a decoded JSON/YAML scalar to a finite float64.
func toFloat(v any) (float64, error) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case bool:
		if n {
			f = 1
		}
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, err
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, err
		}
		f = parsed
	case nil:
		return 0, fmt.Errorf("value is null")
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value %v is not finite", f)
	}
	return f, nil
}
