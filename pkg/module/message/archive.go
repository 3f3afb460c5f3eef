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
	"github.com/google/uuid"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/ortuman/rosterd/pkg/hook"
	archivemodel "github.com/ortuman/rosterd/pkg/model/archive"
	xmpputil "github.com/ortuman/rosterd/pkg/util/xmpp"
)

// ArchiveStrategyName is the archive strategy name.
const ArchiveStrategyName = "archive"

// ArchiveConfig contains message archive configuration.
type ArchiveConfig struct {
	Enabled bool `fig:"enabled"`
}

// Archive stores one-to-one conversation messages into the archive of every local party.
type Archive struct {
	cfg     ArchiveConfig
	router  router
	storage storageProvider
	hk      *hook.Hooks
	logger  kitlog.Logger
}

// NewArchive returns a new archive strategy.
func NewArchive(cfg ArchiveConfig, router router, storage storageProvider, hk *hook.Hooks, logger kitlog.Logger) *Archive {
	return &Archive{
		cfg:     cfg,
		router:  router,
		storage: storage,
		hk:      hk,
		logger:  logger,
	}
}

// Name satisfies Strategy interface.
func (s *Archive) Name() string { return ArchiveStrategyName }

// Process satisfies Strategy interface.
// When the destination is local, d.Message is replaced by a copy carrying the recipient stanza id.
func (s *Archive) Process(ctx context.Context, d *Delivery) error {
	if !s.cfg.Enabled || !isArchivable(d.Message) {
		return nil
	}
	if s.router.IsLocalJID(d.From) {
		sentID := uuid.New().String()
		sentMsg := xmpputil.MakeStanzaIDMessage(d.Message, sentID, d.From.ToBareJID().String())
		if err := s.store(ctx, d.From, sentMsg); err != nil {
			return err
		}
	}
	if !s.router.IsLocalJID(d.To) {
		return nil
	}
	recvID := uuid.New().String()
	recvMsg := xmpputil.MakeStanzaIDMessage(d.Message, recvID, d.To.ToBareJID().String())
	if err := s.store(ctx, d.To, recvMsg); err != nil {
		return err
	}
	d.Message = recvMsg
	return nil
}

// Messages returns the archived messages of owner matching f.
func (s *Archive) Messages(ctx context.Context, owner *jid.JID, f archivemodel.Filters) ([]*archivemodel.Message, error) {
	return s.storage.For(owner.Domain()).FetchArchiveMessages(ctx, f, owner.ToBareJID().String())
}

// Clear deletes the whole archive of owner.
func (s *Archive) Clear(ctx context.Context, owner *jid.JID) error {
	archiveID := owner.ToBareJID().String()
	if err := s.storage.For(owner.Domain()).DeleteArchive(ctx, archiveID); err != nil {
		return err
	}
	level.Info(s.logger).Log("msg", "deleted archive", "archive_id", archiveID)
	return nil
}

func (s *Archive) store(ctx context.Context, owner *jid.JID, msg *stravaganza.Message) error {
	archiveID := owner.ToBareJID().String()
	id := xmpputil.MessageStanzaID(msg)

	archiveMsg := &archivemodel.Message{
		ArchiveID: archiveID,
		ID:        id,
		FromJID:   msg.Attribute(stravaganza.From),
		ToJID:     msg.Attribute(stravaganza.To),
		Message:   msg,
		Stamp:     time.Now().UTC(),
	}
	if err := s.storage.For(owner.Domain()).InsertArchiveMessage(ctx, archiveMsg); err != nil {
		return err
	}
	deliveredMessages.WithLabelValues(ArchiveStrategyName).Inc()

	level.Debug(s.logger).Log("msg", "archived message", "archive_id", archiveID, "id", id)

	_, err := s.hk.Run(hook.MessageArchived, &hook.ExecutionContext{
		Info: &hook.MessageInfo{
			Message:  msg,
			Archived: archiveMsg,
		},
		Sender:  s,
		Context: ctx,
	})
	return err
}

func isArchivable(msg *stravaganza.Message) bool {
	return (msg.IsChat() || msg.IsNormal()) && msg.IsMessageWithBody()
}
