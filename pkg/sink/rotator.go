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

package sink

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/NVIDIA/templog/pkg/defaults"
	"github.com/NVIDIA/templog/pkg/errors"
)

const dayLayout = "2006-01-02"

// RotatorOption configures a DailyRotator.
type RotatorOption func(*DailyRotator)

// WithClock sets the clock used to detect day changes.
func WithClock(clock func() time.Time) RotatorOption {
	return func(r *DailyRotator) {
		r.clock = clock
	}
}

// WithBackups sets the number of rotated files retained.
func WithBackups(n int) RotatorOption {
	return func(r *DailyRotator) {
		r.logger.MaxBackups = n
	}
}

// WithMaxSizeMB sets the size that forces an early rotation.
func WithMaxSizeMB(mb int) RotatorOption {
	return func(r *DailyRotator) {
		r.logger.MaxSize = mb
	}
}

// DailyRotator is an io.WriteCloser appending to a file that is rotated on
// the first write of each local calendar day.
type DailyRotator struct {
	mu     sync.Mutex
	logger *lumberjack.Logger
	clock  func() time.Time
	day    string
}

// NewDailyRotator prepares a rotator for path. The file is opened lazily on
// the first write. If the file already exists its modification day counts
// as the current day, so a file left over from yesterday is rotated first.
func NewDailyRotator(path string, opts ...RotatorOption) (*DailyRotator, error) {
	r := &DailyRotator{
		logger: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    defaults.LogFileMaxSizeMB,
			MaxBackups: defaults.LogFileBackups,
			LocalTime:  true,
		},
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"log file path is a directory", map[string]any{"path": path})
		}
		r.day = info.ModTime().Local().Format(dayLayout)
	case stderrors.Is(err, fs.ErrNotExist):
	default:
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("cannot use log file %s", path), err)
	}

	return r, nil
}

// Write implements io.Writer.
func (r *DailyRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	today := r.clock().Local().Format(dayLayout)
	if r.day != "" && r.day != today {
		slog.Debug("rotating log file",
			slog.String("path", r.logger.Filename),
			slog.String("previousDay", r.day))
		if err := r.logger.Rotate(); err != nil {
			return 0, fmt.Errorf("failed to rotate %s: %w", r.logger.Filename, err)
		}
	}
	r.day = today

	return r.logger.Write(p)
}

// Rotate forces a rotation.
func (r *DailyRotator) Rotate() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logger.Rotate()
}

// Close implements io.Closer.
func (r *DailyRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logger.Close()
}
