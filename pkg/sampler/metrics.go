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

package sampler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/templog/pkg/measurement"
)

var (
	temperatureCelsius = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "templog_temperature_celsius",
			Help: "Most recent temperature reading in degrees Celsius",
		},
		[]string{"sensor", "type"},
	)

	readingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "templog_readings_total",
			Help: "Total number of readings written",
		},
		[]string{"type"},
	)

	cyclesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "templog_cycles_total",
			Help: "Total number of completed sampling cycles",
		},
	)

	sampleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "templog_sample_duration_seconds",
			Help:    "Time taken by one collector sample",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collector"},
	)
)

func observeReading(r measurement.Reading) {
	temperatureCelsius.WithLabelValues(r.SensorID, r.Type.String()).Set(r.Value)
	readingsTotal.WithLabelValues(r.Type.String()).Inc()
}
