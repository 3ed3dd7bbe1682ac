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

package measurement

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the sensor family a reading came from.
type Type string

// String returns the string representation of the sensor type.
func (mt Type) String() string {
	return string(mt)
}

const (
	TypeCPU  Type = "CPU"
	TypeZone Type = "Zone"
	TypeDisk Type = "Disk"
)

// Types lists all supported sensor types in emission order.
var Types = []Type{
	TypeZone,
	TypeCPU,
	TypeDisk,
}

// ParseType converts a string to a Type, reporting whether it is known.
func ParseType(s string) (Type, bool) {
	for _, mt := range Types {
		if string(mt) == s {
			return mt, true
		}
	}
	return "", false
}

// Reading is a single temperature sample.
type Reading struct {
	// Timestamp is seconds since the Unix epoch at sampling time.
	Timestamp int64
	// SensorID is stable for the lifetime of a run (LM0, ZONE1, /dev/sda).
	SensorID string
	// Value is the temperature in degrees Celsius.
	Value float64
	// Type is the sensor family. It is not part of the line encoding.
	Type Type
}

// String returns the line encoding of the reading without a trailing newline.
func (r Reading) String() string {
	return fmt.Sprintf("%d %s %s", r.Timestamp, r.SensorID, FormatValue(r.Value))
}

// FormatValue renders v as the shortest round-tripping decimal, keeping a
// fractional part for whole numbers (45 -> "45.0").
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}
