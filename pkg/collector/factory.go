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
	"io/fs"
	"log/slog"

	"github.com/NVIDIA/templog/pkg/collector/command"
	"github.com/NVIDIA/templog/pkg/collector/cpu"
	"github.com/NVIDIA/templog/pkg/collector/disk"
	"github.com/NVIDIA/templog/pkg/collector/zone"
	"github.com/NVIDIA/templog/pkg/measurement"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateCPUCollector() (Collector, error)
	CreateZoneCollector() (Collector, error)
	CreateDiskCollector() (Collector, error)
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithRunner sets the command runner shared by the cpu and disk collectors.
func WithRunner(r command.Runner) Option {
	return func(f *DefaultFactory) {
		f.Runner = r
	}
}

// WithThermalFS sets the filesystem rooted at the thermal class directory.
func WithThermalFS(fsys fs.FS) Option {
	return func(f *DefaultFactory) {
		f.ThermalFS = fsys
	}
}

// WithDevDir sets the device directory and the filesystem rooted at it.
func WithDevDir(dir string, fsys fs.FS) Option {
	return func(f *DefaultFactory) {
		f.DevDir = dir
		f.DevFS = fsys
	}
}

// WithEUID overrides the effective user id lookup used by the disk collector.
func WithEUID(euid func() int) Option {
	return func(f *DefaultFactory) {
		f.EUID = euid
	}
}

// WithClock sets the clock used to timestamp readings.
func WithClock(clock measurement.Clock) Option {
	return func(f *DefaultFactory) {
		f.Clock = clock
	}
}

// DefaultFactory creates collectors with production dependencies.
// Zero-valued fields fall back to each collector's defaults.
type DefaultFactory struct {
	Runner    command.Runner
	ThermalFS fs.FS
	DevDir    string
	DevFS     fs.FS
	EUID      func() int
	Clock     measurement.Clock
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Runner: command.NewExecRunner(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateCPUCollector creates an lm-sensors collector.
func (f *DefaultFactory) CreateCPUCollector() (Collector, error) {
	opts := []cpu.Option{cpu.WithClock(f.Clock)}
	if f.Runner != nil {
		opts = append(opts, cpu.WithRunner(f.Runner))
	}
	c, err := cpu.New(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateZoneCollector creates a thermal zone collector.
func (f *DefaultFactory) CreateZoneCollector() (Collector, error) {
	opts := []zone.Option{zone.WithClock(f.Clock)}
	if f.ThermalFS != nil {
		opts = append(opts, zone.WithFS(f.ThermalFS))
	}
	c, err := zone.New(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateDiskCollector creates a SMART disk collector.
func (f *DefaultFactory) CreateDiskCollector() (Collector, error) {
	opts := []disk.Option{disk.WithClock(f.Clock)}
	if f.Runner != nil {
		opts = append(opts, disk.WithRunner(f.Runner))
	}
	if f.DevDir != "" || f.DevFS != nil {
		dir := f.DevDir
		if dir == "" {
			dir = disk.DefaultDevDir
		}
		opts = append(opts, disk.WithDevDir(dir, f.DevFS))
	}
	if f.EUID != nil {
		opts = append(opts, disk.WithEUID(f.EUID))
	}
	c, err := disk.New(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateAll constructs the cpu, zone and disk collectors, in that order, and
// returns them in sampling order: zone, cpu, disk. The first construction
// failure is returned as is.
func CreateAll(f Factory) ([]Collector, error) {
	cpuCol, err := f.CreateCPUCollector()
	if err != nil {
		return nil, err
	}
	zoneCol, err := f.CreateZoneCollector()
	if err != nil {
		return nil, err
	}
	diskCol, err := f.CreateDiskCollector()
	if err != nil {
		return nil, err
	}

	cols := []Collector{zoneCol, cpuCol, diskCol}
	for _, c := range cols {
		slog.Info("collector ready", slog.String("collector", c.Name()))
	}
	return cols, nil
}
