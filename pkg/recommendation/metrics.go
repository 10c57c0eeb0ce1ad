// Copyright (c) 2025, SE401 Design Pattern Advisor Authors.  All rights reserved.
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

package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const outcomeSuccess = "success"

var (
	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_generations_total",
			Help: "Total number of provider generation calls by outcome",
		},
		[]string{"outcome"},
	)

	generationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_generation_duration_seconds",
			Help:    "Provider generation latency in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
		},
		[]string{"outcome"},
	)

	invalidRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_invalid_requests_total",
			Help: "Total number of recommendation requests rejected before reaching the provider",
		},
	)
)
