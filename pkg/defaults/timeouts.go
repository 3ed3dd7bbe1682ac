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

import "time"

const (
	// SampleWait is the default pause between two sampling cycles.
	SampleWait = 5 * time.Second

	// CommandTimeout bounds a single sensor utility invocation. It leaves
	// room for smartctl to wake a drive from standby.
	// Runners should respect parent context deadlines when shorter.
	CommandTimeout = 60 * time.Second
)

const (
	// LogFileBackups is the number of rotated log files retained.
	LogFileBackups = 5

	// LogFileMaxSizeMB is the size ceiling that forces a rotation
	// independently of the daily schedule.
	LogFileMaxSizeMB = 100
)

const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second

	// ServerRateLimit is the number of scrape requests per second allowed.
	ServerRateLimit = 10

	// ServerRateLimitBurst is the scrape request burst size.
	ServerRateLimitBurst = 20
)
