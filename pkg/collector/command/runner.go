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

package command

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/NVIDIA/templog/pkg/defaults"
	"github.com/NVIDIA/templog/pkg/errors"
)

const waitDelay = 2 * time.Second

// Runner locates and executes external commands.
type Runner interface {
	// LookPath resolves name to an executable path.
	LookPath(name string) (string, error)
	// Run executes name with args and returns its standard output.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	// Timeout bounds each Run; zero disables the bound.
	Timeout time.Duration
}

// NewExecRunner returns an ExecRunner using defaults.CommandTimeout.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Timeout: defaults.CommandTimeout,
	}
}

// LookPath implements Runner.
func (r *ExecRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("unable to find %s binary", name), err,
			map[string]any{"command": name})
	}
	return path, nil
}

// Run implements Runner. A nonzero exit status, a missing binary, or a
// timeout is reported as a StructuredError; stderr is attached to the
// error context.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Grandchildren holding the output pipes must not stall Run past cancellation.
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()
	slog.Debug("command finished",
		slog.String("command", name),
		slog.Any("args", args),
		slog.Duration("duration", time.Since(start)),
	)
	if err == nil {
		return stdout.String(), nil
	}

	errCtx := map[string]any{
		"command": name,
		"args":    strings.Join(args, " "),
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		errCtx["stderr"] = msg
	}

	// Parent cancellation is not a command failure.
	if ctxErr := ctx.Err(); ctxErr != nil {
		if stderrors.Is(ctxErr, context.DeadlineExceeded) && r.Timeout > 0 {
			return "", errors.WrapWithContext(errors.ErrCodeTimeout,
				fmt.Sprintf("%s timed out after %s", name, r.Timeout), ctxErr, errCtx)
		}
		return "", ctxErr
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		errCtx["exitCode"] = exitErr.ExitCode()
	}
	return "", errors.WrapWithContext(errors.ErrCodeExec,
		fmt.Sprintf("failed to execute %s", name), err, errCtx)
}
