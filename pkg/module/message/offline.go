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
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/ortuman/rosterd/pkg/hook"
	"github.com/ortuman/rosterd/pkg/router/stream"
	xmpputil "github.com/ortuman/rosterd/pkg/util/xmpp"
)

const (
	// OfflineStrategyName is the offline strategy name.
	OfflineStrategyName = "offline"

	hintsNamespace = "urn:xmpp:hints"

	offlineDelayReason = "Offline Storage"

	defaultQueueSize = 2500
)

// OfflineConfig contains offline queue configuration.
type OfflineConfig struct {
	// QueueSize defines maximum offline queue size.
	QueueSize int `fig:"queue_size" default:"2500"`
}

// Offline queues messages addressed to local accounts having no connected resource.
type Offline struct {
	cfg     OfflineConfig
	router  router
	storage storageProvider
	share   Strategy
	hk      *hook.Hooks
	logger  kitlog.Logger
}

// NewOffline returns a new offline strategy.
// Messages addressed to unknown accounts are passed on to share.
func NewOffline(
	cfg OfflineConfig,
	router router,
	storage storageProvider,
	share Strategy,
	hk *hook.Hooks,
	logger kitlog.Logger,
) *Offline {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	return &Offline{
		cfg:     cfg,
		router:  router,
		storage: storage,
		share:   share,
		hk:      hk,
		logger:  logger,
	}
}

// Name satisfies Strategy interface.
func (s *Offline) Name() string { return OfflineStrategyName }

// Process satisfies Strategy interface.
func (s *Offline) Process(ctx context.Context, d *Delivery) error {
	if !d.Local || len(d.Recipients) > 0 || len(d.To.Node()) == 0 {
		return nil
	}
	username := d.To.Node()
	rep := s.storage.For(d.To.Domain())

	exists, err := rep.UserExists(ctx, username)
	if err != nil {
		return err
	}
	if !exists {
		if d.Provenance == stream.Restored {
			level.Debug(s.logger).Log("msg", "dropped restored message to unknown account", "to", d.To.String())
			return nil
		}
		return s.share.Process(ctx, d)
	}
	if !isStorable(d.Message) {
		return nil
	}
	qSize, err := rep.CountOfflineMessages(ctx, username)
	if err != nil {
		return err
	}
	if qSize >= s.cfg.QueueSize {
		if err := s.router.Route(ctx, xmpputil.MakeErrorStanza(d.Message, stanzaerror.ServiceUnavailable)); err != nil {
			level.Debug(s.logger).Log("msg", "failed to route error reply", "err", err)
		}
		level.Info(s.logger).Log("msg", "offline queue is full", "username", username, "queue_size", qSize)
		return nil
	}
	dMsg := xmpputil.MakeDelayMessage(d.Message, time.Now(), d.To.Domain(), offlineDelayReason)

	if err := rep.InsertOfflineMessage(ctx, dMsg, username); err != nil {
		return err
	}
	deliveredMessages.WithLabelValues(OfflineStrategyName).Inc()

	level.Info(s.logger).Log("msg", "stored offline message", "id", d.Message.Attribute(stravaganza.ID), "username", username)

	_, err = s.hk.Run(hook.OfflineMessageStored, &hook.ExecutionContext{
		Info: &hook.MessageInfo{
			Message: dMsg,
			Targets: []jid.JID{*d.To.ToBareJID()},
		},
		Sender:  s,
		Context: ctx,
	})
	return err
}

// DeliverQueued writes every queued offline message to stm and empties the queue.
func (s *Offline) DeliverQueued(ctx context.Context, stm stream.C2S) error {
	username := stm.Username()
	rep := s.storage.For(stm.Domain())

	ms, err := rep.FetchOfflineMessages(ctx, username)
	if err != nil {
		return err
	}
	if len(ms) == 0 {
		return nil
	}
	if err := rep.DeleteOfflineMessages(ctx, username); err != nil {
		return err
	}
	for _, msg := range ms {
		stm.SendElement(msg)
	}
	level.Info(s.logger).Log("msg", "delivered offline messages", "username", username, "queue_size", len(ms))

	_, err = s.hk.Run(hook.OfflineMessagesDelivered, &hook.ExecutionContext{
		Info: &hook.OfflineInfo{
			Username: username,
			JID:      stm.JID(),
			Messages: ms,
		},
		Sender:  s,
		Context: ctx,
	})
	return err
}

func isStorable(msg *stravaganza.Message) bool {
	return msg.ChildNamespace("no-store", hintsNamespace) == nil
}
