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
	"log/slog"
	"regexp"
	"strconv"

	"github.com/NVIDIA/templog/pkg/collector/command"
	"github.com/NVIDIA/templog/pkg/collector/file"
	"github.com/NVIDIA/templog/pkg/errors"
	"github.com/NVIDIA/templog/pkg/measurement"
)

const (
	// Name identifies the collector in logs and metrics.
	Name = "cpu"

	// SensorPrefix is prepended to the per-core index.
	SensorPrefix = "LM"

	sensorsCommand = "sensors"
)

// tempInputPattern matches raw-mode lines such as "  temp2_input: 47.000".
var tempInputPattern = regexp.MustCompile(`^\s*temp\d+_input:\s+([\d.]+)`)

// Option configures a Collector.
type Option func(*Collector)

// WithRunner sets the command runner.
func WithRunner(r command.Runner) Option {
	return func(c *Collector) {
		c.runner = r
	}
}

// WithClock sets the clock used to timestamp readings.
func WithClock(clock measurement.Clock) Option {
	return func(c *Collector) {
		c.clock = clock
	}
}

// Collector reads CPU core temperatures via the sensors utility.
type Collector struct {
	runner command.Runner
	clock  measurement.Clock
	parser *file.Parser
	path   string
}

// New locates the sensors binary and returns a ready collector.
// A missing binary is a setup error.
func New(opts ...Option) (*Collector, error) {
	c := &Collector{
		runner: command.NewExecRunner(),
		parser: file.NewParser(),
	}
	for _, opt := range opts {
		opt(c)
	}

	path, err := c.runner.LookPath(sensorsCommand)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSetup, "cpu collector", err)
	}
	c.path = path

	slog.Debug("cpu collector ready", slog.String("sensors", path))
	return c, nil
}

// Name returns the collector name.
func (c *Collector) Name() string {
	return Name
}

// Sample runs the sensors utility once and returns one reading per
// tempN_input line.
func (c *Collector) Sample(ctx context.Context) ([]measurement.Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := c.runner.Run(ctx, c.path, "-u")
	if err != nil {
		return nil, fmt.Errorf("failed to sample cpu sensors: %w", err)
	}

	return c.parse(out)
}

func (c *Collector) parse(out string) ([]measurement.Reading, error) {
	lines, err := c.parser.Lines([]byte(out), sensorsCommand)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to split sensors output", err)
	}

	b := measurement.NewBuilder(measurement.TypeCPU, c.clock)
	readings := make([]measurement.Reading, 0, len(lines)/4)

	for _, line := range lines {
		m := tempInputPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			slog.Debug("skipping malformed sensors line", slog.String("line", line))
			continue
		}
		readings = append(readings, b.Next(SensorPrefix, v))
	}

	return readings, nil
}
