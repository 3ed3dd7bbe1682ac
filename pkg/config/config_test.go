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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/templog/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5, cfg.Wait)
	assert.Equal(t, 5*time.Second, cfg.WaitDuration())
	assert.Equal(t, ModeConsole, cfg.Mode())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
logfile: /var/log/temps.log
wait: 10
verbose: true
logLevel: debug
metricsPort: 9100
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/log/temps.log", cfg.LogFile)
	assert.Equal(t, 10, cfg.Wait)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9100, cfg.MetricsPort)
	assert.False(t, cfg.Once)
}

func TestLoad_KeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "once: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Once)
	assert.Equal(t, 5, cfg.Wait)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		msg  string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.yaml") },
			msg:  "failed to open config file",
		},
		{
			name: "unknown key",
			path: func(t *testing.T) string { return writeConfig(t, "interval: 3\n") },
			msg:  "failed to parse config file",
		},
		{
			name: "wrong type",
			path: func(t *testing.T) string { return writeConfig(t, "wait: soon\n") },
			msg:  "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero wait", cfg: Config{Wait: 0}},
		{name: "negative wait", cfg: Config{Wait: -1}, wantErr: "wait must be zero or more"},
		{name: "port upper bound", cfg: Config{MetricsPort: 65535}},
		{name: "port too large", cfg: Config{MetricsPort: 70000}, wantErr: "metrics port"},
		{name: "negative port", cfg: Config{MetricsPort: -1}, wantErr: "metrics port"},
		{name: "known level", cfg: Config{LogLevel: "WARN"}},
		{name: "unknown level", cfg: Config{LogLevel: "loud"}, wantErr: "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, errors.ErrCodeInvalidRequest, errors.Code(err))
		})
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Mode
	}{
		{name: "console", cfg: Config{}, want: ModeConsole},
		{name: "once", cfg: Config{Once: true}, want: ModeOnce},
		{name: "file", cfg: Config{LogFile: "temps.log"}, want: ModeFile},
		{name: "file wins over once", cfg: Config{LogFile: "temps.log", Once: true}, want: ModeFile},
		{name: "blank file", cfg: Config{LogFile: "  ", Once: true}, want: ModeOnce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Mode())
		})
	}
}

func TestEffectiveLogLevel(t *testing.T) {
	assert.Equal(t, "warn", (&Config{}).EffectiveLogLevel())
	assert.Equal(t, "info", (&Config{Verbose: true}).EffectiveLogLevel())
	assert.Equal(t, "debug", (&Config{Verbose: true, LogLevel: "debug"}).EffectiveLogLevel())
	assert.Equal(t, "error", (&Config{LogLevel: "error"}).EffectiveLogLevel())
}
