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

package collector

import (
	"context"

	"github.com/NVIDIA/templog/pkg/measurement"
)

// Collector produces temperature readings from one sensor family.
type Collector interface {
	// Name identifies the collector in logs and metrics.
	Name() string
	// Sample takes one reading per sensor. Each call is independent.
	Sample(ctx context.Context) ([]measurement.Reading, error)
}
