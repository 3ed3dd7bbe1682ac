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
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/templog/pkg/collector"
	"github.com/NVIDIA/templog/pkg/config"
	"github.com/NVIDIA/templog/pkg/errors"
	"github.com/NVIDIA/templog/pkg/logging"
	"github.com/NVIDIA/templog/pkg/sampler"
)

const (
	name           = "templog"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// app is the process environment the root command runs against.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	factory  collector.Factory
	notifier sampler.Notifier

	// maxCycles bounds loop modes; zero runs until interrupted.
	maxCycles int
}

func newApp() *app {
	return &app{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		notifier: sampler.SystemdNotifier{},
	}
}

// Execute runs the templog command line and exits the process.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := newApp().run(ctx, os.Args)
	stop()
	os.Exit(code)
}

func (a *app) rootCmd() *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: "Log hardware temperature sensors",
		Description: `Samples CPU (lm-sensors), thermal zone and SATA drive (SMART) temperatures
and writes one line per sensor:

  <seconds since epoch> <sensor> <value>

Modes, highest precedence first:

  --logfile FILE  sample forever into FILE, rotated daily, 5 backups kept
  --once          sample once to stdout and exit
  (default)       sample forever to stdout

Drive temperatures need root and smartctl. CPU temperatures need the
sensors utility.`,
		HideVersion: true,
		Writer:      a.stdout,
		ErrWriter:   a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "logfile",
				Aliases:   []string{"l"},
				Usage:     "Append readings to `FILE`, rotated daily",
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:    "once",
				Aliases: []string{"o"},
				Usage:   "Sample once to the console and exit",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Report setup failures and log at info level",
			},
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"V"},
				Usage:   "Print the version and exit",
			},
			&cli.IntFlag{
				Name:    "wait",
				Aliases: []string{"w"},
				Usage:   "Seconds between samples",
				Value:   config.Default().Wait,
			},
			&cli.StringFlag{
				Name:      "config",
				Usage:     "YAML config `FILE`; flags override its values",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Diagnostic log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			&cli.IntFlag{
				Name:  "metrics-port",
				Usage: "Serve Prometheus metrics on `PORT` (0 disables)",
			},
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return err
		},
		Action: a.action,
	}
}

// run executes the root command and maps the outcome to an exit code.
func (a *app) run(ctx context.Context, args []string) int {
	err := a.rootCmd().Run(ctx, args)
	if err == nil {
		return 0
	}

	slog.Debug("run failed", "code", string(errors.Code(err)), "error", err.Error())

	if se, ok := asSetupError(err); ok {
		if se.verbose {
			fmt.Fprintf(a.stderr, "Unable to run: %v\n", se.err)
		}
		return 1
	}

	fmt.Fprintf(a.stderr, "%s: %v\n", name, err)
	return 1
}
