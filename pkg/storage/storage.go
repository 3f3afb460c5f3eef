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

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	boltdbrepository "github.com/ortuman/rosterd/pkg/storage/boltdb"
	cachedrepository "github.com/ortuman/rosterd/pkg/storage/cached"
	measuredrepository "github.com/ortuman/rosterd/pkg/storage/measured"
	"github.com/ortuman/rosterd/pkg/storage/repository"
	sqlrepository "github.com/ortuman/rosterd/pkg/storage/sql"
)

const (
	// BoltDBType identifies the embedded BoltDB backend.
	BoltDBType = "boltdb"

	// PgSQLType identifies the PostgreSQL backend.
	PgSQLType = sqlrepository.PgSQLDriver

	// MySQLType identifies the MySQL backend.
	MySQLType = sqlrepository.MySQLDriver
)

// DomainConfig overrides the default backend for a single domain.
type DomainConfig struct {
	Domain string                  `fig:"domain"`
	Type   string                  `fig:"type" default:"boltdb"`
	BoltDB boltdbrepository.Config `fig:"boltdb"`
	SQL    sqlrepository.Config    `fig:"sql"`
}

// Config contains storage configuration.
type Config struct {
	Type    string                  `fig:"type" default:"boltdb"`
	BoltDB  boltdbrepository.Config `fig:"boltdb"`
	SQL     sqlrepository.Config    `fig:"sql"`
	Cache   cachedrepository.Config `fig:"cache"`
	Domains []DomainConfig          `fig:"domains"`
}

type backend struct {
	rep        repository.Repository
	withDomain func(domain string) repository.Repository
}

// Provider hands out the repository serving each domain.
type Provider struct {
	def       backend
	overrides map[string]backend
	cache     cachedrepository.Cache
	logger    kitlog.Logger

	mu   sync.RWMutex
	reps map[string]repository.Repository
}

// NewProvider creates and returns an initialized storage Provider.
func NewProvider(cfg Config, logger kitlog.Logger) (*Provider, error) {
	def, err := newBackend(cfg.Type, cfg.BoltDB, cfg.SQL, logger)
	if err != nil {
		return nil, err
	}
	p := &Provider{
		def:       def,
		overrides: make(map[string]backend),
		logger:    logger,
		reps:      make(map[string]repository.Repository),
	}
	for _, dc := range cfg.Domains {
		domain := normalize(dc.Domain)
		if len(domain) == 0 {
			return nil, errors.New("storage: domain override with no domain name")
		}
		if _, ok := p.overrides[domain]; ok {
			return nil, fmt.Errorf("storage: duplicated domain override: %s", domain)
		}
		b, err := newBackend(dc.Type, dc.BoltDB, dc.SQL, logger)
		if err != nil {
			return nil, err
		}
		p.overrides[domain] = b
	}
	if len(cfg.Cache.Type) > 0 {
		c, err := cachedrepository.NewCache(cfg.Cache, logger)
		if err != nil {
			return nil, err
		}
		p.cache = c
	}
	return p, nil
}

// For returns the repository serving domain.
// Domains with no configured override share the default backend.
func (p *Provider) For(domain string) repository.Repository {
	domain = normalize(domain)

	p.mu.RLock()
	rep := p.reps[domain]
	p.mu.RUnlock()
	if rep != nil {
		return rep
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if rep := p.reps[domain]; rep != nil {
		return rep
	}
	b, ok := p.overrides[domain]
	if !ok {
		b = p.def
	}
	rep = b.withDomain(domain)
	if p.cache != nil {
		rep = cachedrepository.New(p.cache, rep, domain, p.logger)
	}
	rep = measuredrepository.New(rep, domain)

	p.reps[domain] = rep
	return rep
}

// Start starts every configured backend along with the cache store.
func (p *Provider) Start(ctx context.Context) error {
	if p.cache != nil {
		if err := p.cache.Start(ctx); err != nil {
			return err
		}
	}
	for _, b := range p.backends() {
		if err := b.rep.Start(ctx); err != nil {
			return err
		}
	}
	level.Info(p.logger).Log("msg", "started storage provider", "overrides", len(p.overrides))
	return nil
}

// Stop stops every configured backend along with the cache store.
func (p *Provider) Stop(ctx context.Context) error {
	for _, b := range p.backends() {
		if err := b.rep.Stop(ctx); err != nil {
			return err
		}
	}
	if p.cache != nil {
		if err := p.cache.Stop(ctx); err != nil {
			return err
		}
	}
	level.Info(p.logger).Log("msg", "stopped storage provider")
	return nil
}

func (p *Provider) backends() []backend {
	bs := []backend{p.def}
	for _, b := range p.overrides {
		bs = append(bs, b)
	}
	return bs
}

func newBackend(typ string, boltCfg boltdbrepository.Config, sqlCfg sqlrepository.Config, logger kitlog.Logger) (backend, error) {
	switch typ {
	case BoltDBType:
		rep := boltdbrepository.New(boltCfg, logger)
		return backend{
			rep:        rep,
			withDomain: func(domain string) repository.Repository { return rep.WithDomain(domain) },
		}, nil

	case PgSQLType, MySQLType:
		rep, err := sqlrepository.New(typ, sqlCfg, logger)
		if err != nil {
			return backend{}, err
		}
		return backend{
			rep:        rep,
			withDomain: func(domain string) repository.Repository { return rep.WithDomain(domain) },
		}, nil

	default:
		return backend{}, fmt.Errorf("storage: unrecognized repository type: %s", typ)
	}
}

func normalize(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}
