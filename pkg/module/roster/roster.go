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

package roster

import (
	"context"
	"errors"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/ortuman/rosterd/pkg/hook"
	rostermodel "github.com/ortuman/rosterd/pkg/model/roster"
	"github.com/ortuman/rosterd/pkg/router/stream"
	"github.com/ortuman/rosterd/pkg/storage/repository"
	xmpputil "github.com/ortuman/rosterd/pkg/util/xmpp"
)

const (
	// ModuleName represents roster module name.
	ModuleName = "roster"

	rosterNamespace = "jabber:iq:roster"
)

// ErrInvalidSender is returned by ProcessIQ when the iq does not originate from a user address.
var ErrInvalidSender = errors.New("roster: iq sender is not a user address")

type router interface {
	IsLocalJID(j *jid.JID) bool
	ResourcesFor(bare *jid.JID) []stream.C2S
	InterestedResourcesFor(bare *jid.JID) []stream.C2S
	Route(ctx context.Context, stanza stravaganza.Stanza) error
}

type registry interface {
	Stream(bare *jid.JID, resource string) stream.C2S
	MarkInterested(ctx context.Context, stm stream.C2S) error
}

type storageProvider interface {
	For(domain string) repository.Repository
}

// Roster processes roster get and set requests, keeping stored rosters and live sessions in sync.
type Roster struct {
	router  router
	reg     registry
	storage storageProvider
	hk      *hook.Hooks
	logger  kitlog.Logger
}

// New returns a new initialized Roster instance.
func New(
	router router,
	reg registry,
	storage storageProvider,
	hk *hook.Hooks,
	logger kitlog.Logger,
) *Roster {
	return &Roster{
		router:  router,
		reg:     reg,
		storage: storage,
		hk:      hk,
		logger:  kitlog.With(logger, "module", ModuleName),
	}
}

// Name returns roster module name.
func (r *Roster) Name() string { return ModuleName }

// MatchesNamespace tells whether namespace matches roster module.
func (r *Roster) MatchesNamespace(namespace string) bool {
	return namespace == rosterNamespace
}

// ProcessIQ process a roster iq.
// prov identifies how the originating session was established.
// A non-nil error is only returned on infrastructure failures, once the proper error reply has been sent.
func (r *Roster) ProcessIQ(ctx context.Context, iq *stravaganza.IQ, prov stream.Provenance) error {
	fromJID := iq.FromJID()
	if fromJID == nil || len(fromJID.Node()) == 0 {
		return ErrInvalidSender
	}
	if toJID := iq.ToJID(); toJID != nil && toJID.ToBareJID().String() != fromJID.ToBareJID().String() {
		r.replyError(ctx, iq, stanzaerror.Forbidden)
		return nil
	}
	q := iq.ChildNamespace("query", rosterNamespace)
	if q == nil {
		r.replyError(ctx, iq, stanzaerror.BadRequest)
		return nil
	}
	switch {
	case iq.IsGet():
		return r.queryRoster(ctx, iq)
	case iq.IsSet():
		return r.setRoster(ctx, iq, q, prov)
	default:
		r.replyError(ctx, iq, stanzaerror.BadRequest)
		return nil
	}
}

func (r *Roster) queryRoster(ctx context.Context, iq *stravaganza.IQ) error {
	fromJID := iq.FromJID()
	usr, err := r.findUser(ctx, fromJID)
	if err != nil {
		r.replyError(ctx, iq, stanzaerror.InternalServerError)
		return err
	}
	sb := stravaganza.NewBuilder("query").
		WithAttribute(stravaganza.Namespace, rosterNamespace)
	for i := range usr.Contacts {
		sb.WithChild(encodeContact(&usr.Contacts[i]))
	}
	r.reply(ctx, xmpputil.MakeResultIQ(iq, sb.Build()))

	level.Info(r.logger).Log("msg", "fetched user roster", "jid", fromJID.String(), "items", len(usr.Contacts))

	if _, err := r.hk.Run(hook.RosterRequested, &hook.ExecutionContext{
		Info: &hook.RosterInfo{
			Username: fromJID.Node(),
			JID:      fromJID,
		},
		Sender:  r,
		Context: ctx,
	}); err != nil {
		return err
	}
	stm := r.reg.Stream(fromJID.ToBareJID(), fromJID.Resource())
	if stm == nil {
		return nil
	}
	return r.reg.MarkInterested(ctx, stm)
}

func (r *Roster) setRoster(ctx context.Context, iq *stravaganza.IQ, q stravaganza.Element, prov stream.Provenance) error {
	items := q.Children("item")
	if len(items) != 1 {
		r.replyError(ctx, iq, stanzaerror.BadRequest)
		return nil
	}
	item := items[0]

	jidStr := item.Attribute("jid")
	if len(jidStr) == 0 {
		r.replyError(ctx, iq, stanzaerror.BadRequest)
		return nil
	}
	cntJID, err := jid.NewWithString(jidStr, false)
	if err != nil {
		r.replyError(ctx, iq, stanzaerror.JIDMalformed)
		return nil
	}
	if len(cntJID.Resource()) > 0 {
		r.replyError(ctx, iq, stanzaerror.BadRequest)
		return nil
	}
	switch rostermodel.Subscription(item.Attribute("subscription")) {
	case rostermodel.SubscriptionRemove:
		return r.removeContact(ctx, iq, cntJID)

	case rostermodel.SubscriptionRemoved:
		if prov != stream.Restored {
			level.Debug(r.logger).Log("msg", "ignored removed directive from non restored session",
				"jid", iq.FromJID().String(),
				"contact", cntJID.String(),
			)
			return nil
		}
		return r.acknowledgeRemovedByPeer(ctx, iq, cntJID)
	}
	userJID := iq.FromJID().ToBareJID()
	if cntJID.String() == userJID.String() {
		r.replyError(ctx, iq, stanzaerror.NotAllowed)
		return nil
	}
	groups, reason, ok := validateGroups(item.Children("group"))
	if !ok {
		r.replyError(ctx, iq, reason)
		return nil
	}
	usr, err := r.findUser(ctx, userJID)
	if err != nil {
		r.replyError(ctx, iq, stanzaerror.InternalServerError)
		return err
	}
	cnt := usr.Contact(cntJID.String())
	if cnt == nil {
		cnt = usr.UpsertContact(rostermodel.Contact{
			JID:          cntJID.String(),
			Subscription: rostermodel.SubscriptionNone,
		})
	}
	cnt.Name = item.Attribute("name")
	cnt.Groups = groups
	updated := *cnt

	if err := r.saveUser(ctx, usr); err != nil {
		r.replyError(ctx, iq, stanzaerror.InternalServerError)
		return err
	}
	r.reply(ctx, xmpputil.MakeResultIQ(iq, nil))
	r.pushContact(ctx, userJID, &updated)

	level.Info(r.logger).Log("msg", "updated roster item", "jid", userJID.String(), "contact", updated.JID)

	return r.runHook(ctx, hook.RosterItemUpdated, userJID, &updated)
}

func (r *Roster) removeContact(ctx context.Context, iq *stravaganza.IQ, cntJID *jid.JID) error {
	userJID := iq.FromJID().ToBareJID()

	usr, err := r.findUser(ctx, userJID)
	if err != nil {
		r.replyError(ctx, iq, stanzaerror.InternalServerError)
		return err
	}
	cnt := usr.Contact(cntJID.String())
	if cnt == nil {
		r.replyError(ctx, iq, stanzaerror.ItemNotFound)
		return nil
	}
	removed := *cnt
	isLocal := r.router.IsLocalJID(cntJID)

	// the peer account might not exist, in which case it is reported as nil
	var peer *rostermodel.User
	var peerCnt *rostermodel.Contact
	if isLocal {
		peer, err = r.findPeer(ctx, cntJID)
		if err != nil {
			r.replyError(ctx, iq, stanzaerror.InternalServerError)
			return err
		}
		if peer != nil {
			peerCnt = peer.Contact(userJID.String())
		}
	}
	if peerCnt != nil {
		peerCnt.Subscription = rostermodel.SubscriptionNone
		peerCnt.Ask = false
	}
	usr.RemoveContact(cntJID.String())

	if peerCnt != nil {
		if err := r.saveUser(ctx, peer); err != nil {
			r.replyError(ctx, iq, stanzaerror.InternalServerError)
			return err
		}
	}
	if err := r.saveUser(ctx, usr); err != nil {
		r.replyError(ctx, iq, stanzaerror.InternalServerError)
		return err
	}
	r.reply(ctx, xmpputil.MakeResultIQ(iq, nil))

	r.pushContact(ctx, userJID, &rostermodel.Contact{
		JID:          removed.JID,
		Subscription: rostermodel.SubscriptionRemove,
	})
	if isLocal && peer == nil {
		r.pushContact(ctx, cntJID, &rostermodel.Contact{
			JID:          userJID.String(),
			Subscription: rostermodel.SubscriptionRemoved,
		})
	}
	if isLocal && removed.IsSubscribedFrom() {
		r.sendUnavailable(ctx, userJID, cntJID)
	}
	r.sendUnsubscribe(ctx, userJID, cntJID, &removed, isLocal)

	if peerCnt != nil {
		r.pushContact(ctx, cntJID, peerCnt)
	}
	level.Info(r.logger).Log("msg", "removed roster item", "jid", userJID.String(), "contact", removed.JID)

	if err := r.runHook(ctx, hook.RosterItemRemoved, userJID, &removed); err != nil {
		return err
	}
	if peerCnt != nil {
		return r.runHook(ctx, hook.RosterItemUpdated, cntJID, peerCnt)
	}
	return nil
}

func (r *Roster) acknowledgeRemovedByPeer(ctx context.Context, iq *stravaganza.IQ, cntJID *jid.JID) error {
	userJID := iq.FromJID().ToBareJID()

	usr, err := r.findUser(ctx, userJID)
	if err != nil {
		r.replyError(ctx, iq, stanzaerror.InternalServerError)
		return err
	}
	cnt := usr.Contact(cntJID.String())
	if cnt == nil {
		r.replyError(ctx, iq, stanzaerror.ItemNotFound)
		return nil
	}
	cnt.Subscription = rostermodel.SubscriptionNone
	cnt.Ask = false
	updated := *cnt

	if err := r.saveUser(ctx, usr); err != nil {
		r.replyError(ctx, iq, stanzaerror.InternalServerError)
		return err
	}
	level.Info(r.logger).Log("msg", "acknowledged roster item removal by peer", "jid", userJID.String(), "contact", updated.JID)

	return r.runHook(ctx, hook.RosterItemUpdated, userJID, &updated)
}

func (r *Roster) findUser(ctx context.Context, userJID *jid.JID) (*rostermodel.User, error) {
	usr, err := r.storage.For(userJID.Domain()).FindUser(ctx, userJID.Node())
	if err != nil {
		return nil, err
	}
	if usr == nil {
		usr = &rostermodel.User{
			Username: userJID.Node(),
			Domain:   userJID.Domain(),
		}
	}
	return usr, nil
}

func (r *Roster) findPeer(ctx context.Context, peerJID *jid.JID) (*rostermodel.User, error) {
	return r.storage.For(peerJID.Domain()).FindUser(ctx, peerJID.Node())
}

// saveUser persists usr and refreshes the in-memory copy held by every one of its live sessions.
func (r *Roster) saveUser(ctx context.Context, usr *rostermodel.User) error {
	if err := r.storage.For(usr.Domain).SaveUser(ctx, usr); err != nil {
		return err
	}
	usrJID, err := jid.New(usr.Username, usr.Domain, "", true)
	if err != nil {
		return err
	}
	for _, stm := range r.router.ResourcesFor(usrJID) {
		if err := stm.UpdateUser(ctx, usr.Clone()); err != nil {
			level.Warn(r.logger).Log("msg", "failed to update session user", "jid", usrJID.String(), "resource", stm.Resource(), "err", err)
		}
	}
	return nil
}

// pushContact sends a roster push for cnt to every interested resource of ownerJID.
func (r *Roster) pushContact(ctx context.Context, ownerJID *jid.JID, cnt *rostermodel.Contact) {
	for _, stm := range r.router.InterestedResourcesFor(ownerJID) {
		pushIQ, _ := stravaganza.NewIQBuilder().
			WithAttribute(stravaganza.ID, uuid.New().String()).
			WithAttribute(stravaganza.Type, stravaganza.SetType).
			WithAttribute(stravaganza.From, ownerJID.String()).
			WithAttribute(stravaganza.To, stm.JID().String()).
			WithChild(
				stravaganza.NewBuilder("query").
					WithAttribute(stravaganza.Namespace, rosterNamespace).
					WithChild(encodeContact(cnt)).
					Build(),
			).
			BuildIQ()
		stm.SendElement(pushIQ)
	}
}

// sendUnavailable notifies cntJID that every available resource of userJID went offline.
func (r *Roster) sendUnavailable(ctx context.Context, userJID, cntJID *jid.JID) {
	targets := r.router.InterestedResourcesFor(cntJID)
	if len(targets) == 0 {
		return
	}
	for _, stm := range r.router.ResourcesFor(userJID) {
		if pr := stm.Presence(); pr == nil || !pr.IsAvailable() {
			continue
		}
		p := xmpputil.MakePresence(stm.JID(), cntJID, uuid.New().String(), stravaganza.UnavailableType)
		for _, target := range targets {
			target.SendElement(p)
		}
	}
}

func (r *Roster) sendUnsubscribe(ctx context.Context, userJID, cntJID *jid.JID, cnt *rostermodel.Contact, isLocal bool) {
	var presences []*stravaganza.Presence
	if cnt.IsSubscribedTo() {
		presences = append(presences, xmpputil.MakePresence(userJID, cntJID, uuid.New().String(), stravaganza.UnsubscribeType))
	}
	if cnt.IsSubscribedFrom() {
		presences = append(presences, xmpputil.MakePresence(userJID, cntJID, uuid.New().String(), stravaganza.UnsubscribedType))
	}
	if len(presences) == 0 {
		return
	}
	if !isLocal {
		for _, p := range presences {
			if err := r.router.Route(ctx, p); err != nil {
				level.Debug(r.logger).Log("msg", "failed to route presence", "to", cntJID.String(), "type", p.Type(), "err", err)
			}
		}
		return
	}
	targets := r.router.InterestedResourcesFor(cntJID)
	for _, p := range presences {
		for _, target := range targets {
			target.SendElement(p)
		}
	}
}

func (r *Roster) reply(ctx context.Context, stanza stravaganza.Stanza) {
	if err := r.router.Route(ctx, stanza); err != nil {
		level.Debug(r.logger).Log("msg", "failed to route reply", "to", stanza.ToJID(), "err", err)
	}
}

func (r *Roster) replyError(ctx context.Context, iq *stravaganza.IQ, reason stanzaerror.Reason) {
	r.reply(ctx, xmpputil.MakeErrorStanza(iq, reason))
}

func (r *Roster) runHook(ctx context.Context, hookName string, userJID *jid.JID, cnt *rostermodel.Contact) error {
	_, err := r.hk.Run(hookName, &hook.ExecutionContext{
		Info: &hook.RosterInfo{
			Username: userJID.Node(),
			JID:      userJID,
			Contact:  cnt,
		},
		Sender:  r,
		Context: ctx,
	})
	return err
}

// validateGroups returns trimmed group names, or the error reason to reply with when they are not acceptable.
func validateGroups(elems []stravaganza.Element) (groups []string, reason stanzaerror.Reason, ok bool) {
	set := make(map[string]struct{}, len(elems))
	for _, elem := range elems {
		g := strings.TrimSpace(elem.Text())
		if _, ok := set[g]; ok {
			return nil, stanzaerror.BadRequest, false
		}
		set[g] = struct{}{}
		groups = append(groups, g)
	}
	if _, ok := set[""]; ok {
		return nil, stanzaerror.NotAcceptable, false
	}
	return groups, reason, true
}

func encodeContact(cnt *rostermodel.Contact) stravaganza.Element {
	b := stravaganza.NewBuilder("item").
		WithAttribute("jid", cnt.JID).
		WithAttribute("subscription", string(cnt.Subscription))
	if len(cnt.Name) > 0 {
		b.WithAttribute("name", cnt.Name)
	}
	if cnt.Ask {
		b.WithAttribute("ask", "subscribe")
	}
	for _, group := range cnt.Groups {
		b.WithChild(stravaganza.NewBuilder("group").
			WithText(group).
			Build(),
		)
	}
	return b.Build()
}
