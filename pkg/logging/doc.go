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

// Package logging provides structured diagnostic logging for templog.
//
// # Overview
//
// This package wraps the standard library slog package with templog defaults:
// JSON records on stderr tagged with module and version, a level taken from a
// flag or the LOG_LEVEL environment variable, and source locations on debug
// records.
//
// Diagnostic logs are kept apart from the temperature data stream. Readings
// go to the sink (stdout or the rotating log file); everything written
// through this package goes to stderr.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: parse misses, enumerated devices, per-command timings
//   - INFO: startup, collector construction, shutdown (default)
//   - WARN/WARNING: degraded conditions such as an unreadable zone type
//   - ERROR: sampling failures that end the run
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("templog", version, "info")
//	    slog.Info("sampling", "wait", wait)
//	}
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "collector ready",
//	    "module": "templog",
//	    "version": "v1.0.0",
//	    "collector": "cpu"
//	}
package logging
