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

package zone

import (
	"context"
	"fmt"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/templog/pkg/errors"
	"github.com/NVIDIA/templog/pkg/measurement"
)

func fixedClock() time.Time {
	return time.Unix(1700000000, 0)
}

func zoneFS(temps ...string) fstest.MapFS {
	fsys := fstest.MapFS{
		"cooling_device0/type": &fstest.MapFile{Data: []byte("Processor\n")},
	}
	for i, v := range temps {
		fsys[fmt.Sprintf("thermal_zone%d/temp", i)] = &fstest.MapFile{Data: []byte(v)}
		fsys[fmt.Sprintf("thermal_zone%d/type", i)] = &fstest.MapFile{Data: []byte("x86_pkg_temp\n")}
	}
	return fsys
}

func TestCollector_Sample(t *testing.T) {
	c, err := New(WithFS(zoneFS("45000\n", "27800\n", "61500\n")), WithClock(fixedClock))
	require.NoError(t, err)

	readings, err := c.Sample(context.Background())
	require.NoError(t, err)

	want := []measurement.Reading{
		{Timestamp: 1700000000, SensorID: "ZONE0", Value: 45.0, Type: measurement.TypeZone},
		{Timestamp: 1700000000, SensorID: "ZONE1", Value: 27.8, Type: measurement.TypeZone},
		{Timestamp: 1700000000, SensorID: "ZONE2", Value: 61.5, Type: measurement.TypeZone},
	}
	assert.Equal(t, want, readings)
	assert.Equal(t, "1700000000 ZONE0 45.0", readings[0].String())
	assert.Equal(t, Name, c.Name())
}

func TestCollector_Sample_NZones(t *testing.T) {
	for _, n := range []int{0, 1, 5, 12} {
		t.Run(fmt.Sprintf("%d zones", n), func(t *testing.T) {
			temps := make([]string, n)
			for i := range temps {
				temps[i] = fmt.Sprintf("%d\n", 30000+i*500)
			}

			c, err := New(WithFS(zoneFS(temps...)))
			require.NoError(t, err)
			require.Len(t, c.zones, n)

			readings, err := c.Sample(context.Background())
			require.NoError(t, err)
			require.Len(t, readings, n)

			for i, r := range readings {
				assert.Equal(t, fmt.Sprintf("ZONE%d", i), r.SensorID)
				assert.Equal(t, float64(30000+i*500)/1000.0, r.Value)
			}
		})
	}
}

func TestNew_NaturalZoneOrder(t *testing.T) {
	temps := make([]string, 11)
	for i := range temps {
		temps[i] = fmt.Sprintf("%d000", i)
	}

	c, err := New(WithFS(zoneFS(temps...)))
	require.NoError(t, err)

	zones := c.zones
	require.Len(t, zones, 11)
	assert.Equal(t, "thermal_zone2", zones[2])
	assert.Equal(t, "thermal_zone10", zones[10])

	readings, err := c.Sample(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10.0, readings[10].Value)
}

func TestNew_UnreadableDirectory(t *testing.T) {
	c, err := New(WithFS(brokenFS{}))
	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSetup))
}

func TestCollector_Sample_SkipsMalformedValue(t *testing.T) {
	c, err := New(WithFS(zoneFS("45000\n", "garbage\n", "50000\n")))
	require.NoError(t, err)

	readings, err := c.Sample(context.Background())
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, "ZONE0", readings[0].SensorID)
	assert.Equal(t, "ZONE1", readings[1].SensorID)
	assert.Equal(t, 50.0, readings[1].Value)
}

func TestCollector_Sample_MissingTempFile(t *testing.T) {
	fsys := zoneFS("45000\n")
	fsys["thermal_zone1/type"] = &fstest.MapFile{Data: []byte("acpitz\n")}

	c, err := New(WithFS(fsys))
	require.NoError(t, err)

	_, err = c.Sample(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "thermal_zone1")
}

func TestCollector_Sample_ContextCancellation(t *testing.T) {
	c, err := New(WithFS(zoneFS("45000\n")))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Sample(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type brokenFS struct{}

func (brokenFS) Open(string) (fs.File, error) {
	return nil, fs.ErrPermission
}
