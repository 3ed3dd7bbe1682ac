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

// Package sampler drives the collectors and writes their readings to a sink.
//
// A Sampler runs in one of two shapes:
//
//   - Once: header, one pass over every collector, return
//   - Run: header, then sample / write / wait until the context is canceled
//
// Sampling is strictly sequential: collectors are called one after the
// other in the order given, and every reading is written before the next
// collector runs. A collector error ends the run; there are no retries.
//
// Output:
//
//	# Values are space separated
//	# seconds since epoch, sensor, sensor value
//	1700000000 ZONE0 45.0
//	1700000000 LM0 48.0
//	1700000000 /dev/sda 34.0
//
// Under a systemd notify unit, Run reports READY=1 once sampling starts,
// WATCHDOG=1 after each cycle and STOPPING=1 on return.
package sampler
