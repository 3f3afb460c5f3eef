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

package sqlrepository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pkg/errors"
)

const (
	// PgSQLDriver identifies the PostgreSQL backend.
	PgSQLDriver = "pgsql"

	// MySQLDriver identifies the MySQL backend.
	MySQLDriver = "mysql"
)

// Config contains SQL configuration value.
type Config struct {
	Host            string        `fig:"host"`
	User            string        `fig:"user"`
	Password        string        `fig:"password"`
	Database        string        `fig:"database" default:"rosterd"`
	SSLMode         string        `fig:"ssl_mode" default:"disable"`
	MaxOpenConns    int           `fig:"max_open_conns"`
	MaxIdleConns    int           `fig:"max_idle_conns"`
	ConnMaxLifetime time.Duration `fig:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `fig:"conn_max_idle_time"`
}

type handle struct {
	db *sql.DB
}

// Repository represents a SQL repository implementation.
// Every row is scoped by the repository domain.
type Repository struct {
	driver string
	cfg    Config
	domain string
	h      *handle
	sb     sq.StatementBuilderType
	logger kitlog.Logger
}

// New creates and returns an initialized SQL Repository instance.
func New(driver string, cfg Config, logger kitlog.Logger) (*Repository, error) {
	var ph sq.PlaceholderFormat
	switch driver {
	case PgSQLDriver:
		ph = sq.Dollar
	case MySQLDriver:
		ph = sq.Question
	default:
		return nil, fmt.Errorf("sqlrepository: unrecognized driver: %s", driver)
	}
	return &Repository{
		driver: driver,
		cfg:    cfg,
		h:      &handle{},
		sb:     sq.StatementBuilder.PlaceholderFormat(ph),
		logger: kitlog.With(logger, "repository", driver, "host", cfg.Host),
	}, nil
}

// WithDomain returns a view of r scoped to domain.
// Returned repository shares r connection pool.
func (r *Repository) WithDomain(domain string) *Repository {
	cp := *r
	cp.domain = domain
	return &cp
}

// Start implements Start interface method.
func (r *Repository) Start(ctx context.Context) error {
	if r.h.db != nil {
		return nil
	}
	driverName, dsn := r.dataSource()

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return errors.Wrapf(err, "sqlrepository: failed to open %s connection", r.driver)
	}
	db.SetMaxIdleConns(r.cfg.MaxIdleConns)
	db.SetMaxOpenConns(r.cfg.MaxOpenConns)
	db.SetConnMaxIdleTime(r.cfg.ConnMaxIdleTime)
	db.SetConnMaxLifetime(r.cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return errors.Wrapf(err, "sqlrepository: unable to verify %s connection", r.driver)
	}
	r.h.db = db

	level.Info(r.logger).Log("msg", "dialed SQL connection")
	return nil
}

// Stop closes SQL database and prevents new queries from starting.
func (r *Repository) Stop(_ context.Context) error {
	if r.h.db == nil {
		return nil
	}
	if err := r.h.db.Close(); err != nil {
		return errors.Wrapf(err, "sqlrepository: failed to close %s connection", r.driver)
	}
	r.h.db = nil

	level.Info(r.logger).Log("msg", "closed SQL connection")
	return nil
}

func (r *Repository) dataSource() (driverName, dsn string) {
	if r.driver == MySQLDriver {
		mc := mysql.NewConfig()
		mc.User = r.cfg.User
		mc.Passwd = r.cfg.Password
		mc.Net = "tcp"
		mc.Addr = r.cfg.Host
		mc.DBName = r.cfg.Database
		mc.ParseTime = true
		return "mysql", mc.FormatDSN()
	}
	return "postgres", fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s", r.cfg.User, r.cfg.Password, r.cfg.Host, r.cfg.Database, r.cfg.SSLMode)
}

func (r *Repository) inTransaction(ctx context.Context, f func(tx *sql.Tx) error) error {
	tx, err := r.h.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := f(tx); err != nil {
		if err := tx.Rollback(); err != nil {
			level.Warn(r.logger).Log("msg", "failed to rollback SQL transaction", "err", err)
		}
		return err
	}
	return tx.Commit()
}

type rowsScanner interface {
	Scan(dest ...interface{}) error
	Next() bool
	Err() error
}

func closeRows(rows *sql.Rows, logger kitlog.Logger) {
	if err := rows.Close(); err != nil {
		level.Warn(logger).Log("msg", "failed to close SQL rows", "err", err)
	}
}
