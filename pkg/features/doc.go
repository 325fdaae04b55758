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

// Package features validates prediction payloads and turns them into the
// fixed-order feature vector consumed by the calorie model.
//
// # Payload
//
// A payload is a JSON object with two object members:
//
//	{
//	  "user":    {"age": 25, "weight": 70, "height": 175},
//	  "workout": {"duration": 30, "intensity": 5}
//	}
//
// ValidateInput only checks this shape; individual fields are checked when
// the vector is built.
//
// # Feature Vector
//
// Preprocess always returns five values in this order, substituting the
// default when a field is absent:
//
//	age        user     25
//	weight     user     70
//	height     user     175
//	duration   workout  30
//	intensity  workout  5
//
// Present values must be numbers, numeric strings or booleans. Anything else
// is rejected with an INVALID_REQUEST structured error naming the field.
//
// # Rounding
//
// RoundPrediction rounds half to even at the requested number of decimal
// places (DefaultDecimals is 1).
package features
