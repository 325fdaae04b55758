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

package model

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/smartcalis/ml-service/pkg/defaults"
	mlerrors "github.com/smartcalis/ml-service/pkg/errors"
)

// NotLoadedMessage is reported to clients while no model is loaded.
const NotLoadedMessage = "Model not yet loaded. Please train the model first (Stage 8)."

// ErrModelNotLoaded is returned by Registry.Predict while no model is loaded.
var ErrModelNotLoaded = mlerrors.New(mlerrors.ErrCodeUnavailable, NotLoadedMessage)

var modelLoaded = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "calisml_model_loaded",
		Help: "1 when a predictor is loaded, 0 otherwise",
	},
)

// Predictor turns a feature vector into a calorie estimate.
type Predictor interface {
	Predict(ctx context.Context, features []float64) (float64, error)
}

// PredictorFunc adapts a function to the Predictor interface.
type PredictorFunc func(ctx context.Context, features []float64) (float64, error)

// Predict calls f.
func (f PredictorFunc) Predict(ctx context.Context, features []float64) (float64, error) {
	return f(ctx, features)
}

type holder struct {
	p Predictor
}

// Registry holds the active predictor. It is safe for concurrent use.
type Registry struct {
	current atomic.Pointer[holder]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Loaded reports whether a predictor is available.
func (r *Registry) Loaded() bool {
	return r != nil && r.current.Load() != nil
}

// Load installs p as the active predictor. A nil p unloads.
func (r *Registry) Load(p Predictor) {
	if p == nil {
		r.Unload()
		return
	}
	r.current.Store(&holder{p: p})
	modelLoaded.Set(1)
	slog.Info("model loaded")
}

// Unload removes the active predictor.
func (r *Registry) Unload() {
	if r.current.Swap(nil) != nil {
		slog.Info("model unloaded")
	}
	modelLoaded.Set(0)
}

// Predict runs the active predictor with a bounded deadline.
func (r *Registry) Predict(ctx context.Context, features []float64) (float64, error) {
	var h *holder
	if r != nil {
		h = r.current.Load()
	}
	if h == nil {
		return 0, ErrModelNotLoaded
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.PredictModelTimeout)
	defer cancel()

	v, err := h.p.Predict(ctx, features)
	if err != nil {
		if _, ok := mlerrors.As(err); ok {
			return 0, err
		}
		if ctx.Err() != nil {
			return 0, mlerrors.Wrap(mlerrors.ErrCodeTimeout, "prediction timed out", err)
		}
		return 0, mlerrors.Wrap(mlerrors.ErrCodeInternal, "prediction failed", err)
	}

	slog.Debug("prediction", "features", fmt.Sprint(features), "value", v)
	return v, nil
}
