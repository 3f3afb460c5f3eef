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

package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
)

// Type is redis type identifier.
const Type = "redis"

// Config contains Redis cache configuration.
type Config struct {
	Addresses    []string      `fig:"addresses"`
	Username     string        `fig:"username"`
	Password     string        `fig:"password"`
	DB           int           `fig:"db"`
	DialTimeout  time.Duration `fig:"dial_timeout" default:"3s"`
	ReadTimeout  time.Duration `fig:"read_timeout" default:"5s"`
	WriteTimeout time.Duration `fig:"write_timeout" default:"5s"`
	TTL          time.Duration `fig:"ttl" default:"24h"`
}

// Cache is Redis cache implementation.
// Namespaces are sharded across configured servers by consistent hashing.
type Cache struct {
	clients []*redis.Client
	ttl     time.Duration
	logger  kitlog.Logger
}

// New creates and returns an initialized Redis Cache instance.
func New(cfg Config, logger kitlog.Logger) (*Cache, error) {
	if len(cfg.Addresses) == 0 {
		return nil, errors.New("rediscache: no server addresses configured")
	}
	var clients []*redis.Client
	for _, addr := range cfg.Addresses {
		clients = append(clients, redis.NewClient(&redis.Options{
			Addr:         addr,
			Username:     cfg.Username,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		}))
	}
	return newCache(cfg.TTL, logger, clients...), nil
}

func newCache(ttl time.Duration, logger kitlog.Logger, clients ...*redis.Client) *Cache {
	return &Cache{
		clients: clients,
		ttl:     ttl,
		logger:  logger,
	}
}

// Type satisfies Cache interface.
func (c *Cache) Type() string { return Type }

// Get satisfies Cache interface.
func (c *Cache) Get(ctx context.Context, ns, key string) ([]byte, error) {
	val, err := c.pickClient(ns).HGet(ctx, ns, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

// Put satisfies Cache interface.
func (c *Cache) Put(ctx context.Context, ns, key string, val []byte) error {
	cl := c.pickClient(ns)
	if err := cl.HSet(ctx, ns, key, val).Err(); err != nil {
		return err
	}
	if c.ttl > 0 {
		return cl.Expire(ctx, ns, c.ttl).Err()
	}
	return nil
}

// Del satisfies Cache interface.
func (c *Cache) Del(ctx context.Context, ns string, keys ...string) error {
	return c.pickClient(ns).HDel(ctx, ns, keys...).Err()
}

// DelNS removes all keys contained under a given namespace from the cache store.
func (c *Cache) DelNS(ctx context.Context, ns string) error {
	return c.pickClient(ns).Del(ctx, ns).Err()
}

// HasKey satisfies Cache interface.
func (c *Cache) HasKey(ctx context.Context, ns, key string) (bool, error) {
	return c.pickClient(ns).HExists(ctx, ns, key).Result()
}

// Start satisfies Cache interface.
func (c *Cache) Start(ctx context.Context) error {
	for _, cl := range c.clients {
		if err := cl.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	level.Info(c.logger).Log("msg", "started redis cache", "servers", len(c.clients))
	return nil
}

// Stop satisfies Cache interface.
func (c *Cache) Stop(_ context.Context) error {
	for _, cl := range c.clients {
		if err := cl.Close(); err != nil {
			level.Warn(c.logger).Log("msg", "failed to close redis client", "err", err)
		}
	}
	level.Info(c.logger).Log("msg", "stopped redis cache")
	return nil
}

func (c *Cache) pickClient(ns string) *redis.Client {
	if len(c.clients) == 1 {
		return c.clients[0]
	}
	return c.clients[jumpHash(xxhash.Sum64String(ns), len(c.clients))]
}
