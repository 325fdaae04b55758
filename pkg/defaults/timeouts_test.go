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

package defaults

import (
	"strings"
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Handler timeouts
		{"PredictHandlerTimeout", PredictHandlerTimeout, 1 * time.Second, 60 * time.Second},
		{"PredictModelTimeout", PredictModelTimeout, 1 * time.Second, 30 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerReadHeaderTimeout", ServerReadHeaderTimeout, 1 * time.Second, 15 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},
		{"TracingShutdownTimeout", TracingShutdownTimeout, 1 * time.Second, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestPredictModelTimeoutLessThanHandler(t *testing.T) {
	// The model call must finish before the handler deadline so the
	// handler can still write a structured error.
	if PredictModelTimeout >= PredictHandlerTimeout {
		t.Errorf("PredictModelTimeout (%v) should be less than PredictHandlerTimeout (%v)",
			PredictModelTimeout, PredictHandlerTimeout)
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	if ServerReadHeaderTimeout > ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should not exceed ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}

	if ServerReadTimeout > ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}

	if ServerIdleTimeout < ServerWriteTimeout {
		t.Errorf("ServerIdleTimeout (%v) should be at least ServerWriteTimeout (%v)",
			ServerIdleTimeout, ServerWriteTimeout)
	}

	if PredictHandlerTimeout > ServerWriteTimeout {
		t.Errorf("PredictHandlerTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			PredictHandlerTimeout, ServerWriteTimeout)
	}
}

func TestRateLimitBurstCoversRate(t *testing.T) {
	if RateLimitBurst < RateLimit {
		t.Errorf("RateLimitBurst (%d) should be at least RateLimit (%d)", RateLimitBurst, RateLimit)
	}
}

func TestServiceDefaults(t *testing.T) {
	if Port <= 0 || Port > 65535 {
		t.Errorf("Port (%d) is not a valid TCP port", Port)
	}
	if !strings.HasPrefix(CORSOrigin, "http") {
		t.Errorf("CORSOrigin (%s) should be an http(s) origin", CORSOrigin)
	}
	if !strings.HasPrefix(APIPathPrefix, "/") || strings.HasSuffix(APIPathPrefix, "/") {
		t.Errorf("APIPathPrefix (%s) should start with / and not end with /", APIPathPrefix)
	}
}
