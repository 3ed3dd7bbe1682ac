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

// Package commandtest provides a scripted command.Runner for tests.
package commandtest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/NVIDIA/templog/pkg/errors"
)

// Response is the canned result of one command line.
type Response struct {
	Output string
	Err    error
}

// Runner is a command.Runner returning scripted responses keyed by the
// space-joined command line ("smartctl -a /dev/sda").
type Runner struct {
	// Paths maps command names to the path LookPath returns.
	// Names absent from Paths are reported as not found.
	Paths map[string]string
	// Responses maps command lines to results.
	Responses map[string]Response

	mu    sync.Mutex
	calls []string
}

// LookPath implements command.Runner.
func (r *Runner) LookPath(name string) (string, error) {
	if p, ok := r.Paths[name]; ok {
		return p, nil
	}
	return "", errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("unable to find %s binary", name),
		map[string]any{"command": name})
}

// Run implements command.Runner. Unscripted command lines fail with
// ErrCodeExec.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line := strings.Join(append([]string{name}, args...), " ")

	r.mu.Lock()
	r.calls = append(r.calls, line)
	r.mu.Unlock()

	resp, ok := r.Responses[line]
	if !ok {
		return "", errors.NewWithContext(errors.ErrCodeExec,
			fmt.Sprintf("failed to execute %s", name),
			map[string]any{"command": line})
	}
	return resp.Output, resp.Err
}

// Calls returns the command lines run so far, in order.
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}
