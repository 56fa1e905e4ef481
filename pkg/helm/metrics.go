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

package helm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	renderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chartdocs_render_duration_seconds",
			Help:    "Duration of external renderer invocations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"chart"},
	)

	renderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chartdocs_render_failures_total",
			Help: "Total number of failed renders by reason",
		},
		[]string{"chart", "reason"},
	)
)

// Failure reasons used as metric labels.
const (
	reasonTempFile = "temp_file"
	reasonStart    = "start"
	reasonExit     = "exit"
)
