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

package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/templog/pkg/collector"
	"github.com/NVIDIA/templog/pkg/config"
	"github.com/NVIDIA/templog/pkg/logging"
	"github.com/NVIDIA/templog/pkg/sampler"
	"github.com/NVIDIA/templog/pkg/server"
	"github.com/NVIDIA/templog/pkg/sink"
)

// setupError marks a failure to construct collectors or open the sink.
type setupError struct {
	err     error
	verbose bool
}

func (e *setupError) Error() string {
	return e.err.Error()
}

func (e *setupError) Unwrap() error {
	return e.err
}

func asSetupError(err error) (*setupError, bool) {
	var se *setupError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func (a *app) action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("version") {
		fmt.Fprintf(a.stdout, "%s %s\n", name, version)
		return nil
	}

	if cmd.Args().Present() {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(cmd.Args().Slice(), " "))
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.EffectiveLogLevel())
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"runID", uuid.NewString(),
		"mode", string(cfg.Mode()),
		"wait", cfg.WaitDuration().String())

	factory := a.factory
	if factory == nil {
		factory = collector.NewDefaultFactory()
	}

	collectors, err := collector.CreateAll(factory)
	if err != nil {
		slog.Debug("collector setup failed", "error", err)
		return &setupError{err: err, verbose: cfg.Verbose}
	}

	out, err := a.openSink(cfg)
	if err != nil {
		return &setupError{err: err, verbose: cfg.Verbose}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			slog.Warn("failed to close output", "error", cerr)
		}
	}()

	s := sampler.New(out, collectors,
		sampler.WithWait(cfg.WaitDuration()),
		sampler.WithMaxCycles(a.maxCycles),
		sampler.WithNotifier(a.notifier),
	)

	if cfg.Mode() == config.ModeOnce {
		return s.Once(ctx)
	}

	return a.loop(ctx, cfg, s)
}

// loop runs the sampler and, when enabled, the metrics server until the
// sampler returns or either fails.
func (a *app) loop(ctx context.Context, cfg *config.Config, s *sampler.Sampler) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)

	if cfg.MetricsPort > 0 {
		srv := server.New(
			server.WithName(name),
			server.WithVersion(version),
			server.WithPort(cfg.MetricsPort),
		)
		g.Go(func() error {
			return srv.Start(gctx)
		})
	}

	g.Go(func() error {
		defer cancel()
		return s.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("stopped")
	return nil
}

func (a *app) openSink(cfg *config.Config) (*sink.Writer, error) {
	if cfg.Mode() == config.ModeFile {
		return sink.NewFileWriterOrStdout(cfg.LogFile)
	}
	return sink.NewWriter(a.stdout), nil
}

// loadConfig layers explicitly set flags over the config file, or over the
// defaults when no file is given.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if cmd.IsSet("logfile") {
		cfg.LogFile = cmd.String("logfile")
	}
	if cmd.IsSet("once") {
		cfg.Once = cmd.Bool("once")
	}
	if cmd.IsSet("verbose") {
		cfg.Verbose = cmd.Bool("verbose")
	}
	if cmd.IsSet("wait") {
		cfg.Wait = cmd.Int("wait")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("metrics-port") {
		cfg.MetricsPort = cmd.Int("metrics-port")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
