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

// Package measurement defines the temperature Reading produced by collectors
// and its line encoding.
//
// # Core Types
//
//   - Type: sensor family (CPU, Zone, Disk)
//   - Reading: one sample (timestamp, sensor id, degrees Celsius)
//   - Builder: stamps and labels readings for one collector
//
// # Line Format
//
// A Reading is emitted as three space-separated fields:
//
//	1700000000 ZONE0 45.0
//
// The value is the shortest decimal that round-trips and always carries a
// decimal point.
//
// # Building Readings
//
// Sequentially labeled sensors (CPU cores, thermal zones) use a prefix:
//
//	b := measurement.NewBuilder(measurement.TypeCPU, time.Now)
//	r0 := b.Next("LM", 41.0) // LM0
//	r1 := b.Next("LM", 43.5) // LM1
//
// Sensors with a natural identifier (disks) use it directly:
//
//	r := b.Named("/dev/sda", 36)
package measurement
