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

// Package cli implements the templog command line.
//
// # Usage
//
//	templog [-l FILE] [-o] [-v] [-V] [-w SECONDS] [--config FILE]
//	        [--log-level LEVEL] [--metrics-port PORT]
//
// Sample once to the console:
//
//	templog --once
//
// Sample every 10 seconds into a daily rotated file, with metrics:
//
//	sudo templog --logfile /var/log/temps.log --wait 10 --metrics-port 9100
//
// # Flags
//
//	--logfile, -l       Rotating data file (loop mode)
//	--once, -o          Sample once to stdout and exit
//	--verbose, -v       Report setup failures; log at info level
//	--version, -V       Print "templog <version>" and exit
//	--wait, -w          Seconds between samples (default 5)
//	--config            YAML config file, overridden by explicit flags
//	--log-level         debug, info, warn, error
//	--metrics-port      Prometheus exporter port (0 disables)
//
// When both --logfile and --once are given, --logfile wins.
//
// # Environment Variables
//
//	LOG_LEVEL          Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success, including interruption by SIGINT or SIGTERM
//	1  Setup failure, invalid arguments or a failed sample
//
// Diagnostic logs are JSON on stderr. Readings are the only thing written
// to stdout or the log file.
package cli
