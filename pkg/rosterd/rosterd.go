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

package rosterd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/ortuman/rosterd/pkg/c2s"
	"github.com/ortuman/rosterd/pkg/gateway"
	"github.com/ortuman/rosterd/pkg/hook"
	"github.com/ortuman/rosterd/pkg/host"
	"github.com/ortuman/rosterd/pkg/log"
	"github.com/ortuman/rosterd/pkg/module/message"
	"github.com/ortuman/rosterd/pkg/module/roster"
	"github.com/ortuman/rosterd/pkg/router"
	"github.com/ortuman/rosterd/pkg/storage"
	"github.com/ortuman/rosterd/pkg/version"
)

const (
	darwinOpenMax = 10240

	defaultBootstrapTimeout = time.Minute
	defaultShutdownTimeout  = time.Second * 30

	// EnvConfigFile names the environment variable overriding the configuration file path.
	EnvConfigFile = "ROSTERD_CONFIG_FILE"
)

type starter interface {
	Start(ctx context.Context) error
}

type stopper interface {
	Stop(ctx context.Context) error
}

type startStopper interface {
	starter
	stopper
}

// Engine wires together the router, the roster engine and the message pipeline.
// Transports bind their streams through Registry and hand inbound stanzas to Roster and Messages.
type Engine struct {
	hk      *hook.Hooks
	hosts   *host.Hosts
	storage *storage.Provider
	reg     *c2s.Registry
	router  *router.Router
	roster  *roster.Roster
	msgs    *message.Pipeline
	http    *httpServer

	starters []starter
	stoppers []stopper

	logger kitlog.Logger
}

// New builds an Engine out of cfg. Nothing is started until Start is invoked.
func New(cfg *Config, logger kitlog.Logger) (*Engine, error) {
	e := &Engine{
		hk:     hook.NewHooks(),
		hosts:  host.NewHosts(cfg.Hosts),
		reg:    c2s.NewRegistry(logger),
		logger: logger,
	}
	if err := e.initStorage(cfg.Storage); err != nil {
		return nil, err
	}
	e.initRouter(cfg.S2S)
	e.initModules(cfg.Message)

	e.http = newHTTPServer(cfg.HTTPPort, logger)
	e.registerStartStopper(e.http)
	return e, nil
}

// Hooks returns the engine hook registry.
func (e *Engine) Hooks() *hook.Hooks { return e.hk }

// Registry returns the registry where transports bind connected resources.
func (e *Engine) Registry() *c2s.Registry { return e.reg }

// Router returns the address router.
func (e *Engine) Router() *router.Router { return e.router }

// Roster returns the roster engine.
func (e *Engine) Roster() *roster.Roster { return e.roster }

// Messages returns the message delivery pipeline.
func (e *Engine) Messages() *message.Pipeline { return e.msgs }

// Start starts every engine subsystem in registration order.
func (e *Engine) Start(ctx context.Context) error {
	for _, s := range e.starters {
		if err := s.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stop stops every engine subsystem in reverse registration order.
func (e *Engine) Stop(ctx context.Context) error {
	for _, st := range e.stoppers {
		if err := st.Stop(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) initStorage(cfg storage.Config) error {
	p, err := storage.NewProvider(cfg, e.logger)
	if err != nil {
		return err
	}
	e.storage = p
	e.registerStartStopper(p)
	return nil
}

func (e *Engine) initRouter(cfg gateway.Config) {
	var s2sRouter router.S2SRouter
	if len(cfg.URL) > 0 {
		s2sRouter = gateway.New("s2s", cfg, e.logger)
	}
	e.router = router.New(e.hosts, e.reg, s2sRouter, e.logger)
}

func (e *Engine) initModules(cfg message.Config) {
	e.roster = roster.New(e.router, e.reg, e.storage, e.hk, e.logger)

	var fw message.Forwarder
	if len(cfg.Share.URL) > 0 {
		fw = gateway.New("share", cfg.Share, e.logger)
	}
	e.msgs = message.New(cfg, e.router, e.storage, fw, e.hk, e.logger)
	e.registerStartStopper(e.msgs)
}

func (e *Engine) registerStartStopper(ss startStopper) {
	e.starters = append(e.starters, ss)
	e.stoppers = append([]stopper{ss}, e.stoppers...)
}

// Run loads configFile, starts the engine and blocks until a stop signal is received.
func Run(configFile string) error {
	if envCfgFile := os.Getenv(EnvConfigFile); len(envCfgFile) > 0 {
		configFile = envCfgFile
	}
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}
	logger := log.NewDefaultLogger(cfg.Logger)

	level.Info(logger).Log("msg", "rosterd is starting...",
		"version", version.Version,
		"go_ver", runtime.Version(),
		"go_os", runtime.GOOS,
		"go_arch", runtime.GOARCH,
	)
	if err := setRLimit(); err != nil {
		return err
	}
	e, err := New(cfg, logger)
	if err != nil {
		return err
	}
	if err := withTimeout(defaultBootstrapTimeout, e.Start); err != nil {
		return fmt.Errorf("rosterd: bootstrap failed: %w", err)
	}
	sig := waitForStopSignal()
	level.Info(logger).Log("msg", "received stop signal... shutting down...", "signal", sig.String())

	return withTimeout(defaultShutdownTimeout, e.Stop)
}

func withTimeout(timeout time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- fn(ctx)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func waitForStopSignal() os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	return <-ch
}

func setRLimit() error {
	var rLim syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLim); err != nil {
		return err
	}
	if rLim.Cur < rLim.Max {
		switch runtime.GOOS {
		case "darwin":
			// OPEN_MAX in sys/syslimits.h
			rLim.Cur = darwinOpenMax
		default:
			rLim.Cur = rLim.Max
		}
		return syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLim)
	}
	return nil
}
