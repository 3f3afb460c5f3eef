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

package boltdb

import (
	"context"
	"fmt"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// Config contains BoltDB configuration value.
type Config struct {
	Path    string        `fig:"path" default:".rosterd.db"`
	Timeout time.Duration `fig:"timeout" default:"1s"`
}

type handle struct {
	db *bolt.DB
}

// Repository represents a BoltDB repository implementation.
// Every entity is namespaced by the repository domain.
type Repository struct {
	cfg    Config
	domain string
	h      *handle
	logger kitlog.Logger
}

// New creates and returns an initialized BoltDB Repository instance.
func New(cfg Config, logger kitlog.Logger) *Repository {
	return &Repository{
		cfg:    cfg,
		h:      &handle{},
		logger: kitlog.With(logger, "repository", "boltdb", "path", cfg.Path),
	}
}

// WithDomain returns a view of r scoped to domain.
// Returned repository shares r underlying database.
func (r *Repository) WithDomain(domain string) *Repository {
	return &Repository{
		cfg:    r.cfg,
		domain: domain,
		h:      r.h,
		logger: r.logger,
	}
}

// Start implements Start interface method.
func (r *Repository) Start(_ context.Context) error {
	if r.h.db != nil {
		return nil
	}
	db, err := bolt.Open(r.cfg.Path, 0600, &bolt.Options{Timeout: r.cfg.Timeout})
	if err != nil {
		return errors.Wrapf(err, "boltdb: failed to open %s", r.cfg.Path)
	}
	r.h.db = db

	level.Info(r.logger).Log("msg", "started BoltDB repository")
	return nil
}

// Stop closes BoltDB database.
func (r *Repository) Stop(_ context.Context) error {
	if r.h.db == nil {
		return nil
	}
	if err := r.h.db.Close(); err != nil {
		return errors.Wrap(err, "boltdb: failed to close database")
	}
	r.h.db = nil

	level.Info(r.logger).Log("msg", "stopped BoltDB repository")
	return nil
}

func (r *Repository) bucket(kind, id string) string {
	return fmt.Sprintf("%s:%s:%s", kind, r.domain, id)
}
