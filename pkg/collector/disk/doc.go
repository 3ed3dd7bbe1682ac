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

// Package disk samples SATA drive temperatures from SMART attributes.
//
// Construction requires root: smartctl needs raw device access. Drives are
// the /dev/sd[a-z] nodes present at construction. Each Sample runs
// `smartctl -a <device>` per drive and reads the raw value of attribute 194
// (Temperature_Celsius), falling back to attribute 190
// (Airflow_Temperature_Cel). Every drive that reports a temperature yields
// one Reading labeled with its device path.
package disk
