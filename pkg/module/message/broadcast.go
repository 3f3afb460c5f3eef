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
	"github.com/ortuman/rosterd/pkg/router/stream"
)

// BroadcastStrategyName is the broadcast strategy name.
const BroadcastStrategyName = "broadcast"

// Broadcast writes a copy of the message to every resolved recipient.
type Broadcast struct {
	hk     *hook.Hooks
	logger kitlog.Logger
}

// NewBroadcast returns a new broadcast strategy.
func NewBroadcast(hk *hook.Hooks, logger kitlog.Logger) *Broadcast {
	return &Broadcast{hk: hk, logger: logger}
}

// Name satisfies Strategy interface.
func (s *Broadcast) Name() string { return BroadcastStrategyName }

// Process satisfies Strategy interface.
func (s *Broadcast) Process(ctx context.Context, d *Delivery) error {
	if len(d.Recipients) == 0 {
		return nil
	}
	from := d.Message.Attribute(stravaganza.From)
	if d.Provenance != stream.Restored {
		from = d.From.ToBareJID().String()
	}
	var targets []jid.JID
	for _, stm := range d.Recipients {
		toJID := stm.JID()
		msg, err := stravaganza.NewBuilderFromElement(d.Message).
			WithAttribute(stravaganza.From, from).
			WithAttribute(stravaganza.To, toJID.String()).
			BuildMessage()
		if err != nil {
			return err
		}
		stm.SendElement(msg)
		targets = append(targets, *toJID)
	}
	deliveredMessages.WithLabelValues(BroadcastStrategyName).Inc()

	level.Debug(s.logger).Log("msg", "broadcasted message", "id", d.Message.Attribute(stravaganza.ID), "targets", len(targets))

	_, err := s.hk.Run(hook.MessageBroadcasted, &hook.ExecutionContext{
		Info: &hook.MessageInfo{
			Message: d.Message,
			Targets: targets,
		},
		Sender:  s,
		Context: ctx,
	})
	return err
}
