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

import (
	"context"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/ortuman/rosterd/pkg/hook"
)

// ShareStrategyName is the share strategy name.
const ShareStrategyName = "share"

// Forwarder relays stanzas to a remote cluster endpoint.
type Forwarder interface {
	Forward(ctx context.Context, elem stravaganza.Element) error
}

// Share hands messages addressed to accounts unknown to this node over to the cluster relay.
type Share struct {
	fw     Forwarder
	hk     *hook.Hooks
	logger kitlog.Logger
}

// NewShare returns a new share strategy. A nil fw turns the strategy into a no-op.
func NewShare(fw Forwarder, hk *hook.Hooks, logger kitlog.Logger) *Share {
	return &Share{fw: fw, hk: hk, logger: logger}
}

// Name satisfies Strategy interface.
func (s *Share) Name() string { return ShareStrategyName }

// Process satisfies Strategy interface.
// Relay failures are logged and never fail the delivery.
func (s *Share) Process(ctx context.Context, d *Delivery) error {
	if s.fw == nil {
		level.Warn(s.logger).Log("msg", "no cluster relay configured, dropping message", "to", d.To.String())
		return nil
	}
	if err := s.fw.Forward(ctx, d.Message); err != nil {
		level.Warn(s.logger).Log("msg", "failed to share message", "to", d.To.String(), "err", err)
		return nil
	}
	deliveredMessages.WithLabelValues(ShareStrategyName).Inc()

	level.Info(s.logger).Log("msg", "shared message", "id", d.Message.Attribute(stravaganza.ID), "to", d.To.String())

	_, err := s.hk.Run(hook.MessageShared, &hook.ExecutionContext{
		Info: &hook.MessageInfo{
			Message: d.Message,
			Targets: []jid.JID{*d.To},
		},
		Sender:  s,
		Context: ctx,
	})
	return err
}
