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

package cpu

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/templog/pkg/collector/command/commandtest"
	"github.com/NVIDIA/templog/pkg/errors"
	"github.com/NVIDIA/templog/pkg/measurement"
)

const sensorsPath = "/usr/bin/sensors"

const sensorsOutput = `coretemp-isa-0000
Adapter: ISA adapter
Package id 0:
  temp1_input: 48.000
  temp1_max: 100.000
  temp1_crit: 100.000
  temp1_crit_alarm: 0.000
Core 0:
  temp2_input: 45.000
  temp2_max: 100.000
Core 1:
  temp3_input: 47.500
  temp3_max: 100.000

acpitz-acpi-0
Adapter: ACPI interface
temp1:
  temp1_input: 27.800
  temp1_crit: 119.000
`

func fixedClock() time.Time {
	return time.Unix(1700000000, 0)
}

func newTestCollector(t *testing.T, out string, runErr error) (*Collector, *commandtest.Runner) {
	t.Helper()
	r := &commandtest.Runner{
		Paths: map[string]string{"sensors": sensorsPath},
		Responses: map[string]commandtest.Response{
			sensorsPath + " -u": {Output: out, Err: runErr},
		},
	}
	c, err := New(WithRunner(r), WithClock(fixedClock))
	require.NoError(t, err)
	return c, r
}

func TestNew_MissingBinary(t *testing.T) {
	c, err := New(WithRunner(&commandtest.Runner{}))
	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSetup))
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestCollector_Sample(t *testing.T) {
	c, r := newTestCollector(t, sensorsOutput, nil)

	readings, err := c.Sample(context.Background())
	require.NoError(t, err)

	want := []measurement.Reading{
		{Timestamp: 1700000000, SensorID: "LM0", Value: 48.0, Type: measurement.TypeCPU},
		{Timestamp: 1700000000, SensorID: "LM1", Value: 45.0, Type: measurement.TypeCPU},
		{Timestamp: 1700000000, SensorID: "LM2", Value: 47.5, Type: measurement.TypeCPU},
		{Timestamp: 1700000000, SensorID: "LM3", Value: 27.8, Type: measurement.TypeCPU},
	}
	assert.Equal(t, want, readings)
	assert.Equal(t, []string{sensorsPath + " -u"}, r.Calls())
	assert.Equal(t, Name, c.Name())
}

func TestCollector_Sample_ReinvokesEachCall(t *testing.T) {
	c, r := newTestCollector(t, sensorsOutput, nil)

	for i := 0; i < 3; i++ {
		_, err := c.Sample(context.Background())
		require.NoError(t, err)
	}
	assert.Len(t, r.Calls(), 3)
}

func TestCollector_Sample_CountsMatchInputLines(t *testing.T) {
	for _, k := range []int{0, 1, 7, 32} {
		t.Run(fmt.Sprintf("%d lines", k), func(t *testing.T) {
			var sb strings.Builder
			sb.WriteString("coretemp-isa-0000\nAdapter: ISA adapter\n")
			for i := 0; i < k; i++ {
				fmt.Fprintf(&sb, "Core %d:\n  temp%d_input: %d.000\n  temp%d_max: 100.000\n", i, i+1, 30+i, i+1)
			}

			c, _ := newTestCollector(t, sb.String(), nil)
			readings, err := c.Sample(context.Background())
			require.NoError(t, err)
			require.Len(t, readings, k)

			for i, r := range readings {
				assert.Equal(t, fmt.Sprintf("LM%d", i), r.SensorID)
				assert.Equal(t, float64(30+i), r.Value)
			}
		})
	}
}

func TestCollector_Sample_SkipsMalformedLines(t *testing.T) {
	out := strings.Join([]string{
		"  temp1_input: 41.000",
		"  temp1_input: N/A",
		"  temp2_input: 1.2.3",
		"  temp2_input:",
		"  tempX_input: 50.000",
		"  fan1_input: 1200.000",
		"  temp3_input: 43.250",
	}, "\n")

	c, _ := newTestCollector(t, out, nil)
	readings, err := c.Sample(context.Background())
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, "LM0", readings[0].SensorID)
	assert.Equal(t, 41.0, readings[0].Value)
	assert.Equal(t, "LM1", readings[1].SensorID)
	assert.Equal(t, 43.25, readings[1].Value)
}

func TestCollector_Sample_RunnerError(t *testing.T) {
	runErr := errors.New(errors.ErrCodeExec, "failed to execute sensors")
	c, _ := newTestCollector(t, "", runErr)

	readings, err := c.Sample(context.Background())
	require.Error(t, err)
	assert.Nil(t, readings)
	assert.True(t, errors.IsCode(err, errors.ErrCodeExec))
}

func TestCollector_Sample_ContextCancellation(t *testing.T) {
	c, r := newTestCollector(t, sensorsOutput, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	readings, err := c.Sample(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, readings)
	assert.Empty(t, r.Calls())
}
