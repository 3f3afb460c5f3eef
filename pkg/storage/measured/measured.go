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

package measuredrepository

import (
	"context"
	"strconv"
	"time"

	"github.com/ortuman/rosterd/pkg/storage/repository"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	upsertOp = "upsert"
	fetchOp  = "fetch"
	deleteOp = "delete"
)

// Measured is measured Repository implementation.
type Measured struct {
	measuredUserRep
	measuredOfflineRep
	measuredArchiveRep
	rep repository.Repository
}

// New returns a new initialized Measured repository whose metrics are labeled with domain.
func New(rep repository.Repository, domain string) *Measured {
	r := reporter(domain)
	return &Measured{
		measuredUserRep:    measuredUserRep{rep: rep, report: r},
		measuredOfflineRep: measuredOfflineRep{rep: rep, report: r},
		measuredArchiveRep: measuredArchiveRep{rep: rep, report: r},
		rep:                rep,
	}
}

// Start initializes repository.
func (m *Measured) Start(ctx context.Context) error {
	return m.rep.Start(ctx)
}

// Stop releases all underlying repository resources.
func (m *Measured) Stop(ctx context.Context) error {
	return m.rep.Stop(ctx)
}

type reportFn func(opType string, t0 time.Time, err error)

func reporter(domain string) reportFn {
	return func(opType string, t0 time.Time, err error) {
		metricLabel := prometheus.Labels{
			"domain":  domain,
			"type":    opType,
			"success": strconv.FormatBool(err == nil),
		}
		repOperations.With(metricLabel).Inc()
		repOperationDurationBucket.With(metricLabel).Observe(time.Since(t0).Seconds())
	}
}
