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
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Writer writes newline-terminated lines to an output.
type Writer struct {
	mu     sync.Mutex
	output io.Writer
	closer io.Closer
}

// NewWriter returns a Writer over output. A nil output means stdout.
func NewWriter(output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	w := &Writer{output: output}
	if c, ok := output.(io.Closer); ok && output != os.Stdout && output != os.Stderr {
		w.closer = c
	}
	return w
}

// NewStdoutWriter returns a Writer over stdout.
func NewStdoutWriter() *Writer {
	return NewWriter(os.Stdout)
}

// NewFileWriterOrStdout returns a daily rotating file Writer for path, or a
// stdout Writer when path is blank.
func NewFileWriterOrStdout(path string, opts ...RotatorOption) (*Writer, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewStdoutWriter(), nil
	}

	r, err := NewDailyRotator(trimmed, opts...)
	if err != nil {
		return nil, err
	}
	slog.Debug("writing to rotating log file", slog.String("path", trimmed))
	return NewWriter(r), nil
}

// WriteLine writes line followed by a newline.
func (w *Writer) WriteLine(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := io.WriteString(w.output, line+"\n"); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}

// Close releases the underlying output. Closing a stdout Writer is a no-op.
func (w *Writer) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
