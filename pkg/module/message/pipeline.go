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
	"errors"
	"fmt"
	"strconv"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/ortuman/rosterd/pkg/gateway"
	"github.com/ortuman/rosterd/pkg/hook"
	archivemodel "github.com/ortuman/rosterd/pkg/model/archive"
	"github.com/ortuman/rosterd/pkg/router/stream"
	"github.com/ortuman/rosterd/pkg/storage/repository"
	xmpputil "github.com/ortuman/rosterd/pkg/util/xmpp"
)

// ModuleName represents message module name.
const ModuleName = "message"

const groupChatType = "groupchat"

var errEmptyAddress = errors.New("message: empty address")

// Config contains message delivery configuration.
type Config struct {
	Archive ArchiveConfig  `fig:"archive"`
	Offline OfflineConfig  `fig:"offline"`
	Share   gateway.Config `fig:"share"`
}

// Delivery holds the resolved routing state of a message going through the pipeline.
type Delivery struct {
	// Message is the message being delivered. Strategies may replace it with a stamped copy.
	Message *stravaganza.Message

	// To and From are the validated destination and origin addresses.
	To   *jid.JID
	From *jid.JID

	// Recipients contains the local resource streams the message will be written to.
	Recipients []stream.C2S

	// Local tells whether the destination domain is served by this node.
	Local bool

	// Provenance identifies how the originating session was established.
	Provenance stream.Provenance
}

// Strategy is a single delivery step. Each strategy decides by itself whether it applies to a delivery.
type Strategy interface {
	Name() string
	Process(ctx context.Context, d *Delivery) error
}

type router interface {
	IsLocal(elem stravaganza.Element) bool
	IsLocalJID(j *jid.JID) bool
	ResourcesFor(bare *jid.JID) []stream.C2S
	PrioritizedResourcesFor(bare *jid.JID) []stream.C2S
	Route(ctx context.Context, stanza stravaganza.Stanza) error
}

type storageProvider interface {
	For(domain string) repository.Repository
}

// Pipeline resolves message recipients and runs every delivery strategy over them.
type Pipeline struct {
	router     router
	archive    Strategy
	strategies []Strategy
	history    *Archive
	offline    *Offline
	hk         *hook.Hooks
	logger     kitlog.Logger
}

// New returns a pipeline running archive, offline and broadcast strategies in that order.
// fw is used to hand over messages addressed to unknown accounts, and may be nil.
func New(
	cfg Config,
	router router,
	storage storageProvider,
	fw Forwarder,
	hk *hook.Hooks,
	logger kitlog.Logger,
) *Pipeline {
	logger = kitlog.With(logger, "module", ModuleName)

	archive := NewArchive(cfg.Archive, router, storage, hk, logger)
	share := NewShare(fw, hk, logger)
	offline := NewOffline(cfg.Offline, router, storage, share, hk, logger)
	broadcast := NewBroadcast(hk, logger)

	return &Pipeline{
		router:     router,
		archive:    archive,
		strategies: []Strategy{archive, offline, broadcast},
		history:    archive,
		offline:    offline,
		hk:         hk,
		logger:     logger,
	}
}

// Start registers the offline queue delivery hook.
func (p *Pipeline) Start(_ context.Context) error {
	p.hk.AddHook(hook.RosterRequested, p.onRosterRequested, hook.DefaultPriority)

	level.Info(p.logger).Log("msg", "started message pipeline")
	return nil
}

// Stop unregisters the offline queue delivery hook.
func (p *Pipeline) Stop(_ context.Context) error {
	p.hk.RemoveHook(hook.RosterRequested, p.onRosterRequested)

	level.Info(p.logger).Log("msg", "stopped message pipeline")
	return nil
}

// DeliverOffline writes the pending offline queue of stm account to stm.
func (p *Pipeline) DeliverOffline(ctx context.Context, stm stream.C2S) error {
	return p.offline.DeliverQueued(ctx, stm)
}

// ArchivedMessages returns the archived messages of owner matching f.
func (p *Pipeline) ArchivedMessages(ctx context.Context, owner *jid.JID, f archivemodel.Filters) ([]*archivemodel.Message, error) {
	return p.history.Messages(ctx, owner, f)
}

// DeleteArchive deletes the whole archive of owner.
func (p *Pipeline) DeleteArchive(ctx context.Context, owner *jid.JID) error {
	return p.history.Clear(ctx, owner)
}

// a resource requesting its roster has finished session establishment
func (p *Pipeline) onRosterRequested(execCtx *hook.ExecutionContext) error {
	inf := execCtx.Info.(*hook.RosterInfo)
	if inf.JID == nil || !inf.JID.IsFullWithUser() || !p.router.IsLocalJID(inf.JID) {
		return nil
	}
	for _, stm := range p.router.ResourcesFor(inf.JID.ToBareJID()) {
		if stm.Resource() == inf.JID.Resource() {
			return p.DeliverOffline(execCtx.Context, stm)
		}
	}
	return nil
}

// Process validates msg, resolves its local recipients and runs every delivery strategy.
func (p *Pipeline) Process(ctx context.Context, msg *stravaganza.Message, prov stream.Provenance) error {
	if !isValidType(msg.Attribute(stravaganza.Type)) {
		p.reject(ctx, msg, "invalid_type")
		return nil
	}
	toJID, fromJID, ok := addresses(msg)
	if !ok {
		p.reject(ctx, msg, "invalid_address")
		return nil
	}
	d := &Delivery{
		Message:    msg,
		To:         toJID,
		From:       fromJID,
		Local:      p.router.IsLocal(msg),
		Provenance: prov,
	}
	if d.Local {
		d.Recipients = p.recipients(toJID)
	}
	// a failing strategy never prevents the following ones from running
	var firstErr error
	for _, s := range p.strategies {
		err := p.run(ctx, s, d)
		if err == nil {
			continue
		}
		level.Warn(p.logger).Log("msg", "delivery strategy failed", "strategy", s.Name(), "id", msg.Attribute(stravaganza.ID), "err", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ArchiveOnly stores msg in the archive without delivering it.
// Messages lacking a valid destination or origin address are silently skipped.
func (p *Pipeline) ArchiveOnly(ctx context.Context, msg *stravaganza.Message) error {
	toJID, fromJID, ok := addresses(msg)
	if !ok {
		return nil
	}
	return p.run(ctx, p.archive, &Delivery{
		Message:    msg,
		To:         toJID,
		From:       fromJID,
		Local:      p.router.IsLocal(msg),
		Provenance: stream.Restored,
	})
}

func (p *Pipeline) run(ctx context.Context, s Strategy, d *Delivery) error {
	err := s.Process(ctx, d)
	strategyRuns.WithLabelValues(s.Name(), strconv.FormatBool(err == nil)).Inc()
	if err != nil {
		return fmt.Errorf("message: %s strategy failed: %w", s.Name(), err)
	}
	return nil
}

func (p *Pipeline) recipients(toJID *jid.JID) []stream.C2S {
	bare := toJID.ToBareJID()

	if toJID.IsFullWithUser() {
		// a full address only matches its own live resource
		for _, stm := range p.router.ResourcesFor(bare) {
			if stm.Resource() == toJID.Resource() {
				return []stream.C2S{stm}
			}
		}
		return nil
	}
	stms := p.router.PrioritizedResourcesFor(bare)
	if len(stms) == 0 {
		stms = p.router.ResourcesFor(bare)
	}
	return stms
}

func (p *Pipeline) reject(ctx context.Context, msg *stravaganza.Message, reason string) {
	rejectedMessages.WithLabelValues(reason).Inc()

	level.Debug(p.logger).Log("msg", "rejected message", "id", msg.Attribute(stravaganza.ID), "reason", reason)

	if err := p.router.Route(ctx, xmpputil.MakeErrorStanza(msg, stanzaerror.BadRequest)); err != nil {
		level.Debug(p.logger).Log("msg", "failed to route error reply", "err", err)
	}
}

func addresses(msg *stravaganza.Message) (toJID, fromJID *jid.JID, ok bool) {
	toJID, err := parseAddress(msg.Attribute(stravaganza.To))
	if err != nil {
		return nil, nil, false
	}
	fromJID, err = parseAddress(msg.Attribute(stravaganza.From))
	if err != nil {
		return nil, nil, false
	}
	return toJID, fromJID, true
}

func parseAddress(s string) (*jid.JID, error) {
	if len(s) == 0 {
		return nil, errEmptyAddress
	}
	return jid.NewWithString(s, false)
}

func isValidType(typ string) bool {
	switch typ {
	case "",
		stravaganza.ChatType,
		stravaganza.ErrorType,
		groupChatType,
		stravaganza.HeadlineType,
		stravaganza.NormalType:
		return true
	}
	return false
}
