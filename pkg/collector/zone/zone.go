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
	"log/slog"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/NVIDIA/templog/pkg/collector/file"
	"github.com/NVIDIA/templog/pkg/errors"
	"github.com/NVIDIA/templog/pkg/measurement"
)

const (
	// Name identifies the collector in logs and metrics.
	Name = "zone"

	// SensorPrefix is prepended to the zone reading index.
	SensorPrefix = "ZONE"

	// DefaultThermalDir is the sysfs directory holding thermal zones.
	DefaultThermalDir = "/sys/class/thermal"

	zoneDirPrefix = "thermal_zone"
	tempFile      = "temp"
	typeFile      = "type"
	milliPerUnit  = 1000.0
)

// Option configures a Collector.
type Option func(*Collector)

// WithFS sets the filesystem rooted at the thermal class directory.
func WithFS(fsys fs.FS) Option {
	return func(c *Collector) {
		c.fsys = fsys
	}
}

// WithClock sets the clock used to timestamp readings.
func WithClock(clock measurement.Clock) Option {
	return func(c *Collector) {
		c.clock = clock
	}
}

// Collector reads thermal zone temperatures from sysfs.
type Collector struct {
	fsys   fs.FS
	clock  measurement.Clock
	parser *file.Parser
	zones  []string
}

// New enumerates the thermal zones and returns a ready collector.
// An unreadable thermal directory is a setup error; a directory without
// zones is not.
func New(opts ...Option) (*Collector, error) {
	c := &Collector{}
	for _, opt := range opts {
		opt(c)
	}
	if c.fsys == nil {
		c.fsys = os.DirFS(DefaultThermalDir)
	}
	c.parser = file.NewParser(file.WithFS(c.fsys))

	zones, err := file.ListDir(c.fsys, ".", func(name string) bool {
		return strings.HasPrefix(name, zoneDirPrefix)
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSetup, "zone collector", err)
	}
	c.zones = zones

	for _, z := range zones {
		kind := "unknown"
		if lines, err := c.parser.GetLines(path.Join(z, typeFile)); err == nil && len(lines) > 0 {
			kind = lines[0]
		}
		slog.Debug("thermal zone found", slog.String("zone", z), slog.String("type", kind))
	}
	slog.Debug("zone collector ready", slog.Int("zones", len(zones)))

	return c, nil
}

// Name returns the collector name.
func (c *Collector) Name() string {
	return Name
}

// Sample reads every zone once.
func (c *Collector) Sample(ctx context.Context) ([]measurement.Reading, error) {
	b := measurement.NewBuilder(measurement.TypeZone, c.clock)
	readings := make([]measurement.Reading, 0, len(c.zones))

	for _, z := range c.zones {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := path.Join(z, tempFile)
		lines, err := c.parser.GetLines(p)
		if err != nil {
			return nil, fmt.Errorf("failed to sample thermal zone %s: %w", z, err)
		}

		for _, line := range lines {
			milli, err := strconv.ParseFloat(line, 64)
			if err != nil {
				slog.Debug("skipping malformed zone temperature",
					slog.String("zone", z),
					slog.String("line", line))
				continue
			}
			readings = append(readings, b.Next(SensorPrefix, milli/milliPerUnit))
		}
	}

	return readings, nil
}
