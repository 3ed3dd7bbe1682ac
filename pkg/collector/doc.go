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

// Package collector provides the interface and factory for temperature collectors.
//
// # Overview
//
// Three collectors cover the sensor families of a host:
//
//   - cpu: CPU cores via `sensors -u` (lm-sensors)
//   - zone: kernel thermal zones via /sys/class/thermal
//   - disk: SATA drives via `smartctl -a` (smartmontools, requires root)
//
// # Core Interface
//
//	type Collector interface {
//	    Name() string
//	    Sample(ctx context.Context) ([]measurement.Reading, error)
//	}
//
// Collectors validate their prerequisites at construction (binary present,
// privileges held, directories readable) so that a misconfigured host fails
// before the first sample. Sample never caches: every call re-reads the
// sensors.
//
// # Factory Pattern
//
// The Factory interface abstracts collector creation for dependency injection:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithRunner(fakeRunner),
//	    collector.WithThermalFS(fstest.MapFS{...}),
//	)
//	cols, err := collector.CreateAll(factory)
//
// # Subpackages
//
//   - collector/command - external command runner
//   - collector/file - line-oriented file reading over fs.FS
//   - collector/cpu, collector/zone, collector/disk - the collectors
//
// # Error Handling
//
// Construction errors carry errors.ErrCodeSetup or
// errors.ErrCodePermissionDenied. Sample errors from failed commands carry
// errors.ErrCodeExec. Sensor lines that cannot be parsed are skipped, never
// reported.
package collector
