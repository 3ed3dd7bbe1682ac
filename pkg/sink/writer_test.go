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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/templog/pkg/errors"
)

func TestWriter_WriteLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteLine("# Values are space separated"))
	require.NoError(t, w.WriteLine("1700000000 ZONE0 45.0"))
	require.NoError(t, w.Close())

	assert.Equal(t, "# Values are space separated\n1700000000 ZONE0 45.0\n", buf.String())
}

func TestNewFileWriterOrStdout_Stdout(t *testing.T) {
	for _, p := range []string{"", "   "} {
		w, err := NewFileWriterOrStdout(p)
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, w.output)
		assert.Nil(t, w.closer)
		assert.NoError(t, w.Close())
	}
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func backups(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "temps-*.log"))
	require.NoError(t, err)
	return matches
}

func TestNewFileWriterOrStdout_Appends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temps.log")
	require.NoError(t, os.WriteFile(path, []byte("1700000000 ZONE0 40.0\n"), 0o600))

	w, err := NewFileWriterOrStdout(path)
	require.NoError(t, err)
	require.NoError(t, w.WriteLine("1700000005 ZONE0 41.0"))
	require.NoError(t, w.Close())

	assert.Equal(t, "1700000000 ZONE0 40.0\n1700000005 ZONE0 41.0\n", readFile(t, path))
}

func TestDailyRotator_RotatesOnDayChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temps.log")
	clk := &clock{now: time.Date(2025, 3, 1, 23, 59, 50, 0, time.Local)}

	r, err := NewDailyRotator(path, WithClock(clk.Now))
	require.NoError(t, err)
	w := NewWriter(r)

	require.NoError(t, w.WriteLine("day one a"))
	require.NoError(t, w.WriteLine("day one b"))
	assert.Empty(t, backups(t, dir))

	clk.now = clk.now.Add(20 * time.Second)
	require.NoError(t, w.WriteLine("day two"))
	require.NoError(t, w.Close())

	assert.Equal(t, "day two\n", readFile(t, path))

	b := backups(t, dir)
	require.Len(t, b, 1)
	assert.Equal(t, "day one a\nday one b\n", readFile(t, b[0]))
}

func TestDailyRotator_SameDayNoRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temps.log")
	clk := &clock{now: time.Date(2025, 3, 1, 0, 0, 1, 0, time.Local)}

	r, err := NewDailyRotator(path, WithClock(clk.Now))
	require.NoError(t, err)
	w := NewWriter(r)

	for i := 0; i < 3; i++ {
		require.NoError(t, w.WriteLine("line"))
		clk.now = clk.now.Add(8 * time.Hour)
	}
	require.NoError(t, w.Close())

	assert.Equal(t, strings.Repeat("line\n", 3), readFile(t, path))
	assert.Empty(t, backups(t, dir))
}

func TestDailyRotator_StaleExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temps.log")
	require.NoError(t, os.WriteFile(path, []byte("yesterday\n"), 0o600))

	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.Local)
	yesterday := now.Add(-24 * time.Hour)
	require.NoError(t, os.Chtimes(path, yesterday, yesterday))

	r, err := NewDailyRotator(path, WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	w := NewWriter(r)
	require.NoError(t, w.WriteLine("today"))
	require.NoError(t, w.Close())

	assert.Equal(t, "today\n", readFile(t, path))
	b := backups(t, dir)
	require.Len(t, b, 1)
	assert.Equal(t, "yesterday\n", readFile(t, b[0]))
}

func TestDailyRotator_Options(t *testing.T) {
	r, err := NewDailyRotator(filepath.Join(t.TempDir(), "temps.log"),
		WithBackups(2), WithMaxSizeMB(7))
	require.NoError(t, err)

	assert.Equal(t, 2, r.logger.MaxBackups)
	assert.Equal(t, 7, r.logger.MaxSize)
	assert.True(t, r.logger.LocalTime)
}

func TestDailyRotator_Defaults(t *testing.T) {
	r, err := NewDailyRotator(filepath.Join(t.TempDir(), "temps.log"))
	require.NoError(t, err)

	assert.Equal(t, 5, r.logger.MaxBackups)
}

func TestNewDailyRotator_DirectoryPath(t *testing.T) {
	r, err := NewDailyRotator(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, r)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
}
