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
	mlerrors "github.com/smartcalis/ml-service/pkg/errors"
)

const (
	// KeyUser is the payload member holding user profile fields.
	KeyUser = "user"
	// KeyWorkout is the payload member holding workout fields.
	KeyWorkout = "workout"
)

// Validation messages returned by ValidateInput.
const (
	MsgNotObject       = "Input must be a JSON object"
	MsgMissingSections = `Input must contain "user" and "workout" objects`
	MsgUserNotObject   = `"user" must be an object`
	MsgWorkoutNotObj   = `"workout" must be an object`
)

// Payload is a prediction request that passed shape validation.
type Payload struct {
	User    map[string]any `json:"user" yaml:"user"`
	Workout map[string]any `json:"workout" yaml:"workout"`
}

// ValidateInput reports whether v has the payload shape, with a message
// describing the first problem found. The message is empty when v is valid.
func ValidateInput(v any) (bool, string) {
	if _, err := Validate(v); err != nil {
		return false, mlerrors.MessageOf(err)
	}
	return true, ""
}

// Validate checks the payload shape and returns the user and workout
// sections. Failures are INVALID_REQUEST structured errors.
func Validate(v any) (*Payload, error) {
	data, ok := asObject(v)
	if !ok {
		return nil, mlerrors.New(mlerrors.ErrCodeInvalidRequest, MsgNotObject)
	}

	rawUser, hasUser := data[KeyUser]
	rawWorkout, hasWorkout := data[KeyWorkout]
	if !hasUser || !hasWorkout {
		return nil, mlerrors.NewWithContext(mlerrors.ErrCodeInvalidRequest, MsgMissingSections,
			map[string]any{
				"user":    hasUser,
				"workout": hasWorkout,
			})
	}

	user, ok := asObject(rawUser)
	if !ok {
		return nil, mlerrors.NewWithContext(mlerrors.ErrCodeInvalidRequest, MsgUserNotObject,
			map[string]any{"field": KeyUser})
	}

	workout, ok := asObject(rawWorkout)
	if !ok {
		return nil, mlerrors.NewWithContext(mlerrors.ErrCodeInvalidRequest, MsgWorkoutNotObj,
			map[string]any{"field": KeyWorkout})
	}

	return &Payload{User: user, Workout: workout}, nil
}

// asObject accepts the map shape produced by decoding JSON or YAML into any.
// A nil map is still an object.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		if m == nil {
			return map[string]any{}, true
		}
		return m, true
	default:
		return nil, false
	}
}
