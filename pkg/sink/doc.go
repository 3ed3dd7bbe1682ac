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

// Package sink provides the destinations temperature lines are written to.
//
// Two sinks exist:
//
//   - stdout, used for the console loop and single-shot runs
//   - a rotating log file that rolls over at local midnight and keeps five
//     backups (gopkg.in/natefinch/lumberjack.v2 underneath)
//
// Usage:
//
//	w, err := sink.NewFileWriterOrStdout(cfg.LogFile)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	w.WriteLine("1700000000 ZONE0 45.0")
//
// Lines are written unbuffered, one Write per line, so a reader tailing the
// file sees complete records.
package sink
