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

// Package file provides line-oriented file reading for collectors.
//
// Collectors read sysfs and device directories through an fs.FS rooted at the
// directory they care about, so tests can substitute an fstest.MapFS for the
// real /sys/class/thermal or /dev trees.
//
// # Usage
//
// Read a file relative to an FS root:
//
//	p := file.NewParser(file.WithFS(os.DirFS("/sys/class/thermal")))
//	lines, err := p.GetLines("thermal_zone0/temp")
//
// Split command output with the same rules:
//
//	lines, err := p.Lines(out, "sensors -u")
//
// Enumerate directory entries in natural order:
//
//	zones, err := file.ListDir(fsys, ".", func(n string) bool {
//	    return strings.HasPrefix(n, "thermal_zone")
//	})
//
// The parser automatically handles:
//   - Size limits (1MB default)
//   - UTF-8 validation
//   - Blank line and comment removal
//   - Whitespace trimming
//
// # Error Handling
//
// Errors are wrapped with descriptive context and keep the underlying cause:
//
//	_, err := p.GetLines("thermal_zone9/temp")
//	// failed to read file "thermal_zone9/temp": open thermal_zone9/temp: file does not exist
//	errors.Is(err, fs.ErrNotExist) // true
package file
