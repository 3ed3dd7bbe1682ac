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
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"

	"github.com/NVIDIA/templog/pkg/collector"
	"github.com/NVIDIA/templog/pkg/defaults"
)

// Header lines written before any reading.
var Header = []string{
	"# Values are space separated",
	"# seconds since epoch, sensor, sensor value",
}

// Sink receives output lines.
type Sink interface {
	WriteLine(line string) error
}

// Notifier reports service state to a supervisor.
type Notifier interface {
	Notify(state string) error
}

// SystemdNotifier sends sd_notify messages. It is a no-op outside a
// notify-type unit.
type SystemdNotifier struct{}

// Notify implements Notifier.
func (SystemdNotifier) Notify(state string) error {
	_, err := daemon.SdNotify(false, state)
	return err
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithWait sets the pause between cycles.
func WithWait(d time.Duration) Option {
	return func(s *Sampler) {
		s.wait = d
	}
}

// WithMaxCycles bounds Run to n cycles. Zero means unbounded.
func WithMaxCycles(n int) Option {
	return func(s *Sampler) {
		s.maxCycles = n
	}
}

// WithNotifier sets the supervisor notifier used by Run.
func WithNotifier(n Notifier) Option {
	return func(s *Sampler) {
		s.notifier = n
	}
}

// Sampler polls collectors and writes readings to a sink.
type Sampler struct {
	collectors []collector.Collector
	sink       Sink
	wait       time.Duration
	maxCycles  int
	notifier   Notifier
}

// New creates a Sampler writing the readings of collectors, in order, to sink.
func New(sink Sink, collectors []collector.Collector, opts ...Option) *Sampler {
	s := &Sampler{
		collectors: collectors,
		sink:       sink,
		wait:       defaults.SampleWait,
		notifier:   SystemdNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WriteHeader writes the header comment lines.
func (s *Sampler) WriteHeader() error {
	for _, h := range Header {
		if err := s.sink.WriteLine(h); err != nil {
			return err
		}
	}
	return nil
}

// Cycle samples every collector once and writes the readings.
func (s *Sampler) Cycle(ctx context.Context) error {
	for _, c := range s.collectors {
		start := time.Now()
		readings, err := c.Sample(ctx)
		sampleDuration.WithLabelValues(c.Name()).Observe(time.Since(start).Seconds())
		if err != nil {
			return fmt.Errorf("%s collector: %w", c.Name(), err)
		}

		for _, r := range readings {
			if err := s.sink.WriteLine(r.String()); err != nil {
				return err
			}
			observeReading(r)
		}
	}
	cyclesTotal.Inc()
	return nil
}

// Once writes the header and a single cycle. Cancellation is not an error.
func (s *Sampler) Once(ctx context.Context) error {
	if err := s.WriteHeader(); err != nil {
		return err
	}
	if err := s.Cycle(ctx); err != nil {
		if ctx.Err() != nil {
			slog.Info("sampling interrupted")
			return nil
		}
		return err
	}
	return nil
}

// Run writes the header and then samples until ctx is canceled, a cycle
// fails, or the cycle bound is reached. Cancellation is not an error.
func (s *Sampler) Run(ctx context.Context) error {
	if err := s.WriteHeader(); err != nil {
		return err
	}

	s.notify(daemon.SdNotifyReady)
	defer s.notify(daemon.SdNotifyStopping)

	slog.Info("sampling started",
		slog.Duration("wait", s.wait),
		slog.Int("collectors", len(s.collectors)))

	cycles := 0
	for {
		if err := s.Cycle(ctx); err != nil {
			if ctx.Err() != nil {
				break
			}
			return err
		}
		cycles++
		s.notify(daemon.SdNotifyWatchdog)

		if s.maxCycles > 0 && cycles >= s.maxCycles {
			break
		}

		if !sleep(ctx, s.wait) {
			break
		}
	}

	slog.Info("sampling stopped", slog.Int("cycles", cycles))
	return nil
}

func (s *Sampler) notify(state string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(state); err != nil {
		slog.Debug("supervisor notification failed", slog.String("state", state), slog.String("error", err.Error()))
	}
}

// sleep waits for d or until ctx is done. It reports whether the full
// duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
