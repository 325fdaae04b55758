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

// Package model holds the calorie predictor used by the prediction endpoint.
//
// No predictor ships with the service yet: the Registry starts empty, reports
// Loaded() == false to the health check, and answers every prediction with
// ErrModelNotLoaded. Loading a trained model means calling Registry.Load with
// a Predictor implementation.
package model
