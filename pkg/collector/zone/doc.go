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

// Package zone samples kernel thermal zones.
//
// Zones are enumerated once, at construction, from the thermal_zone* entries
// of /sys/class/thermal. Each Sample reads every zone's temp file (integer
// millidegrees Celsius) and returns readings labeled ZONE0, ZONE1, ... in
// enumeration order. No external process is involved.
package zone
