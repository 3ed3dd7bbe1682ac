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

package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/templog/pkg/defaults"
	"github.com/NVIDIA/templog/pkg/errors"
)

// Mode is the output mode selected by the configuration.
type Mode string

const (
	// ModeConsole samples forever and writes to stdout.
	ModeConsole Mode = "console"
	// ModeOnce samples once to stdout and exits.
	ModeOnce Mode = "once"
	// ModeFile samples forever and writes to a rotating log file.
	ModeFile Mode = "file"
)

const maxPort = 65535

var logLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Config holds the runtime settings.
type Config struct {
	// LogFile is the rotating data file. Setting it selects file mode.
	LogFile string `yaml:"logfile"`
	// Once samples a single time to stdout.
	Once bool `yaml:"once"`
	// Verbose reports setup failures on stderr and raises the log level.
	Verbose bool `yaml:"verbose"`
	// Wait is the pause between cycles in seconds.
	Wait int `yaml:"wait"`
	// LogLevel is the diagnostic log level. Empty derives it from Verbose.
	LogLevel string `yaml:"logLevel"`
	// MetricsPort enables the Prometheus exporter when non-zero.
	MetricsPort int `yaml:"metricsPort"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Wait: int(defaults.SampleWait / time.Second),
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to open config file", err,
			map[string]any{"path": path})
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to parse config file", err,
			map[string]any{"path": path})
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Wait < 0 {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("wait must be zero or more seconds, got %d", c.Wait))
	}
	if c.MetricsPort < 0 || c.MetricsPort > maxPort {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("metrics port must be between 0 and %d, got %d", maxPort, c.MetricsPort))
	}
	if c.LogLevel != "" && !logLevels[strings.ToLower(c.LogLevel)] {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown log level %q", c.LogLevel))
	}
	return nil
}

// Mode returns the output mode. A log file wins over once, which wins over
// the console loop.
func (c *Config) Mode() Mode {
	switch {
	case strings.TrimSpace(c.LogFile) != "":
		return ModeFile
	case c.Once:
		return ModeOnce
	default:
		return ModeConsole
	}
}

// WaitDuration returns Wait as a duration.
func (c *Config) WaitDuration() time.Duration {
	return time.Duration(c.Wait) * time.Second
}

// EffectiveLogLevel returns the diagnostic log level. An explicit level is
// kept as is; otherwise verbose means info and quiet means warn.
func (c *Config) EffectiveLogLevel() string {
	if c.LogLevel != "" {
		return c.LogLevel
	}
	if c.Verbose {
		return "info"
	}
	return "warn"
}
