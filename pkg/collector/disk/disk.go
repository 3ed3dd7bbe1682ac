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

package disk

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"regexp"
	"strconv"

	"github.com/NVIDIA/templog/pkg/collector/command"
	"github.com/NVIDIA/templog/pkg/collector/file"
	"github.com/NVIDIA/templog/pkg/errors"
	"github.com/NVIDIA/templog/pkg/measurement"
)

const (
	// Name identifies the collector in logs and metrics.
	Name = "disk"

	// DefaultDevDir is the directory scanned for drive nodes.
	DefaultDevDir = "/dev"

	smartctlCommand = "smartctl"
)

var (
	drivePattern = regexp.MustCompile(`^sd[a-z]$`)

	// SMART attribute table rows:
	// ID# ATTRIBUTE_NAME FLAG VALUE WORST THRESH TYPE UPDATED WHEN_FAILED RAW_VALUE
	temperatureAttrPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\s*194\s+Temperature_Celsius\s+\S+\s+\d+\s+\d+\s+\d+\s+\S+\s+\S+\s+\S+\s+(\d+)`),
		regexp.MustCompile(`^\s*190\s+Airflow_Temperature_Cel\s+\S+\s+\d+\s+\d+\s+\d+\s+\S+\s+\S+\s+\S+\s+(\d+)`),
	}
)

// Option configures a Collector.
type Option func(*Collector)

// WithRunner sets the command runner.
func WithRunner(r command.Runner) Option {
	return func(c *Collector) {
		c.runner = r
	}
}

// WithDevDir sets the device directory and the filesystem rooted at it.
// Device paths in readings are joined onto dir.
func WithDevDir(dir string, fsys fs.FS) Option {
	return func(c *Collector) {
		c.devDir = dir
		c.devFS = fsys
	}
}

// WithEUID overrides the effective user id lookup.
func WithEUID(euid func() int) Option {
	return func(c *Collector) {
		c.euid = euid
	}
}

// WithClock sets the clock used to timestamp readings.
func WithClock(clock measurement.Clock) Option {
	return func(c *Collector) {
		c.clock = clock
	}
}

// Collector reads drive temperatures via smartctl.
type Collector struct {
	runner command.Runner
	clock  measurement.Clock
	euid   func() int
	devDir string
	devFS  fs.FS
	parser *file.Parser
	path   string
	drives []string
}

// New checks privileges, locates smartctl and enumerates drives.
// Running as a non-root user fails with ErrCodePermissionDenied before
// anything else is attempted.
func New(opts ...Option) (*Collector, error) {
	c := &Collector{
		runner: command.NewExecRunner(),
		euid:   os.Geteuid,
		devDir: DefaultDevDir,
		parser: file.NewParser(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if uid := c.euid(); uid != 0 {
		return nil, errors.NewWithContext(errors.ErrCodePermissionDenied,
			"you must be root to read SMART data", map[string]any{"euid": uid})
	}

	p, err := c.runner.LookPath(smartctlCommand)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSetup, "disk collector", err)
	}
	c.path = p

	if c.devFS == nil {
		c.devFS = os.DirFS(c.devDir)
	}
	names, err := file.ListDir(c.devFS, ".", drivePattern.MatchString)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSetup, "disk collector", err)
	}
	c.drives = make([]string, 0, len(names))
	for _, n := range names {
		c.drives = append(c.drives, path.Join(c.devDir, n))
	}

	slog.Debug("disk collector ready",
		slog.String("smartctl", p),
		slog.Any("drives", c.drives))

	return c, nil
}

// Name returns the collector name.
func (c *Collector) Name() string {
	return Name
}

// Sample queries every drive once. Drives without a temperature attribute
// are skipped; a failed smartctl invocation aborts the sample.
func (c *Collector) Sample(ctx context.Context) ([]measurement.Reading, error) {
	b := measurement.NewBuilder(measurement.TypeDisk, c.clock)
	readings := make([]measurement.Reading, 0, len(c.drives))

	for _, dev := range c.drives {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := c.runner.Run(ctx, c.path, "-a", dev)
		if err != nil {
			return nil, fmt.Errorf("failed to sample drive %s: %w", dev, err)
		}

		temp, ok, err := c.parseTemperature(out, dev)
		if err != nil {
			return nil, err
		}
		if !ok {
			slog.Debug("no temperature attribute reported", slog.String("device", dev))
			continue
		}
		readings = append(readings, b.Named(dev, temp))
	}

	return readings, nil
}

func (c *Collector) parseTemperature(out, dev string) (float64, bool, error) {
	lines, err := c.parser.Lines([]byte(out), dev)
	if err != nil {
		return 0, false, errors.Wrap(errors.ErrCodeInternal, "failed to split smartctl output", err)
	}

	for _, re := range temperatureAttrPatterns {
		for _, line := range lines {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			v, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return float64(v), true, nil
		}
	}
	return 0, false, nil
}
