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

// Package server exposes sampler metrics over HTTP.
//
// The exporter is optional and runs beside the sampling loop. It never
// touches the data stream; it only serves what the sampler has already
// recorded in the default Prometheus registry.
//
// Endpoints:
//
//	GET /metrics  Prometheus text exposition
//	GET /health   liveness, always 200 while the process serves
//	GET /ready    200 once Start has been called, 503 during shutdown
//	GET /         server name, version and routes
//
// /metrics and / pass through the middleware chain:
//
//	metrics -> request ID -> panic recovery -> rate limit -> logging
//
// Requests over the rate limit receive 429 with a Retry-After header and a
// JSON error body:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "requestId": "4f9c...",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": true
//	}
//
// Usage:
//
//	s := server.New(
//		server.WithName("templog"),
//		server.WithVersion(version),
//		server.WithPort(9100),
//	)
//	g.Go(func() error { return s.Start(ctx) })
//
// Start returns when ctx is canceled, after a graceful shutdown bounded by
// the configured shutdown timeout.
package server
