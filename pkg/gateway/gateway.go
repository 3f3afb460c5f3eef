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

package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/sony/gobreaker"
)

const senderDomainHeader = "X-Sender-Domain"

// Config contains HTTP gateway configuration.
type Config struct {
	URL       string        `fig:"url"`
	AuthToken string        `fig:"auth_token"`
	Timeout   time.Duration `fig:"timeout" default:"5s"`
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTP relays stanzas to a remote endpoint as XML POST requests.
// Consecutive failures open a circuit breaker that fails fast until the endpoint recovers.
type HTTP struct {
	url       string
	authToken string
	cb        *gobreaker.CircuitBreaker
	client    httpClient
	logger    kitlog.Logger
}

// New returns an initialized HTTP gateway.
func New(name string, cfg Config, logger kitlog.Logger) *HTTP {
	logger = kitlog.With(logger, "gateway", name)
	return &HTTP{
		url:       cfg.URL,
		authToken: cfg.AuthToken,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: name,
			OnStateChange: func(name string, from, to gobreaker.State) {
				level.Warn(logger).Log("msg", "gateway circuit breaker state changed", "from", from.String(), "to", to.String())
			},
		}),
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Forward posts elem XML representation to the gateway endpoint.
func (g *HTTP) Forward(ctx context.Context, elem stravaganza.Element) error {
	return g.post(ctx, elem, nil)
}

// Route satisfies router.S2SRouter interface.
func (g *HTTP) Route(ctx context.Context, stanza stravaganza.Stanza, senderDomain string) error {
	return g.post(ctx, stanza, http.Header{senderDomainHeader: []string{senderDomain}})
}

func (g *HTTP) post(ctx context.Context, elem stravaganza.Element, hdr http.Header) error {
	buf := bytes.NewBuffer(nil)
	if err := elem.ToXML(buf, true); err != nil {
		return err
	}
	_, err := g.cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(buf.Bytes()))
		if err != nil {
			return nil, err
		}
		for k, vs := range hdr {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
		req.Header.Set("Content-Type", "application/xml")
		if len(g.authToken) > 0 {
			req.Header.Set("Authorization", g.authToken)
		}
		resp, err := g.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.Body != nil {
			defer func() {
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
			}()
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("gateway: response status code: %d", resp.StatusCode)
		}
		return nil, nil
	})
	if err != nil {
		level.Debug(g.logger).Log("msg", "failed to forward stanza", "err", err)
	}
	return err
}
