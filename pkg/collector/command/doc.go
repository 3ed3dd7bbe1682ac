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

// Package command runs the external sensor utilities collectors depend on.
//
// The Runner interface is the seam between collectors and the host: the
// production ExecRunner shells out with os/exec, tests substitute a fake
// that returns canned output.
//
//	r := command.NewExecRunner()
//	path, err := r.LookPath("sensors")
//	out, err := r.Run(ctx, path, "-u")
//
// Failures carry errors.ErrCodeExec (or ErrCodeNotFound from LookPath and
// ErrCodeTimeout when the per-command timeout fires).
package command
