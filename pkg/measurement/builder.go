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
	"strconv"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// Builder creates readings for one collector, stamping each with the clock
// and numbering prefixed sensor ids in call order.
type Builder struct {
	typ   Type
	clock Clock
	next  int
}

// NewBuilder creates a builder for sensor type t. A nil clock means time.Now.
func NewBuilder(t Type, clock Clock) *Builder {
	if clock == nil {
		clock = time.Now
	}
	return &Builder{
		typ:   t,
		clock: clock,
	}
}

// Next returns a reading labeled prefix followed by the number of readings
// built so far with Next.
func (b *Builder) Next(prefix string, value float64) Reading {
	r := b.Named(prefix+strconv.Itoa(b.next), value)
	b.next++
	return r
}

// Named returns a reading with an explicit sensor id.
func (b *Builder) Named(id string, value float64) Reading {
	return Reading{
		Timestamp: b.clock().Unix(),
		SensorID:  id,
		Value:     value,
		Type:      b.typ,
	}
}
