// Copyright 2022 The jackal Authors
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

package message

import "github.com/prometheus/client_golang/prometheus"

var (
	strategyRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rosterd",
			Subsystem: "message",
			Name:      "strategy_runs_total",
			Help:      "The total number of delivery strategy runs.",
		},
		[]string{"strategy", "success"},
	)
	rejectedMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rosterd",
			Subsystem: "message",
			Name:      "rejected_total",
			Help:      "The total number of messages rejected before delivery.",
		},
		[]string{"reason"},
	)
	deliveredMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rosterd",
			Subsystem: "message",
			Name:      "delivered_total",
			Help:      "The total number of messages handled by a delivery strategy.",
		},
		[]string{"strategy"},
	)
)

func init() {
	prometheus.MustRegister(strategyRuns)
	prometheus.MustRegister(rejectedMessages)
	prometheus.MustRegister(deliveredMessages)
}
