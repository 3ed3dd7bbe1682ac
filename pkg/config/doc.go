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

// Package config holds the runtime settings of templog.
//
// Settings come from three layers, later layers winning:
//
//  1. built-in defaults (see Default)
//  2. an optional YAML file (see Load)
//  3. explicitly set command line flags
//
// Example file:
//
//	logfile: /var/log/temps.log
//	wait: 10
//	verbose: true
//	logLevel: debug
//	metricsPort: 9100
//
// Unknown keys are rejected so typos surface at startup.
package config
