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

package router

import (
	"context"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/ortuman/rosterd/pkg/router/stream"
)

// S2SRouter defines the federation handoff interface.
type S2SRouter interface {
	// Route hands a stanza addressed to a remote domain over to federation.
	Route(ctx context.Context, stanza stravaganza.Stanza, senderDomain string) error
}

type hosts interface {
	IsLocalHost(h string) bool
	DefaultHostName() string
}

type registry interface {
	ConnectedResources(bare *jid.JID) []stream.C2S
	PrioritizedResources(bare *jid.JID) []stream.C2S
	InterestedResources(bare *jid.JID) []stream.C2S
	Stream(bare *jid.JID, resource string) stream.C2S
}

// Router classifies stanza destinations as local or remote and resolves local addresses to live resource streams.
type Router struct {
	hosts  hosts
	reg    registry
	s2s    S2SRouter
	logger kitlog.Logger
}

// New creates a new router instance. s2sRouter may be nil, in which case every remote stanza is rejected.
func New(hosts hosts, reg registry, s2sRouter S2SRouter, logger kitlog.Logger) *Router {
	return &Router{
		hosts:  hosts,
		reg:    reg,
		s2s:    s2sRouter,
		logger: logger,
	}
}

// IsLocal tells whether elem must be handled by this node.
func (r *Router) IsLocal(elem stravaganza.Element) bool {
	if !isRoutable(elem) {
		return true
	}
	to := elem.Attribute(stravaganza.To)
	if len(to) == 0 {
		return true
	}
	toJID, err := jid.NewWithString(to, false)
	if err != nil {
		return false
	}
	return r.hosts.IsLocalHost(toJID.Domain())
}

// IsLocalJID tells whether j domain is served by this node.
func (r *Router) IsLocalJID(j *jid.JID) bool {
	return r.hosts.IsLocalHost(j.Domain())
}

// ResourcesFor returns every live resource stream bound to bare address.
func (r *Router) ResourcesFor(bare *jid.JID) []stream.C2S {
	return r.reg.ConnectedResources(bare)
}

// PrioritizedResourcesFor returns the subset of live resource streams sharing the highest presence priority.
func (r *Router) PrioritizedResourcesFor(bare *jid.JID) []stream.C2S {
	return r.reg.PrioritizedResources(bare)
}

// InterestedResourcesFor returns the live resource streams eligible for roster pushes.
func (r *Router) InterestedResourcesFor(bare *jid.JID) []stream.C2S {
	return r.reg.InterestedResources(bare)
}

// Route delivers stanza to its destination.
// Full local addresses are routed to the matching resource, bare local addresses to every connected resource
// and remote addresses are handed over to federation.
func (r *Router) Route(ctx context.Context, stanza stravaganza.Stanza) error {
	toJID := stanza.ToJID()
	if toJID == nil {
		return ErrMissingAddress
	}
	if !r.hosts.IsLocalHost(toJID.Domain()) {
		if r.s2s == nil {
			return ErrRemoteServerNotFound
		}
		return r.s2s.Route(ctx, stanza, r.hosts.DefaultHostName())
	}
	if toJID.IsFullWithUser() {
		stm := r.reg.Stream(toJID.ToBareJID(), toJID.Resource())
		if stm == nil {
			return ErrResourceNotFound
		}
		stm.SendElement(stanza)
		return nil
	}
	stms := r.reg.ConnectedResources(toJID.ToBareJID())
	if len(stms) == 0 {
		return ErrUserNotAvailable
	}
	r.RouteTo(stanza, stms)
	return nil
}

// RouteTo writes stanza to every stm in stms.
// A write failure on any of them does not prevent delivery to the rest.
func (r *Router) RouteTo(stanza stravaganza.Element, stms []stream.C2S) {
	for _, stm := range stms {
		stm.SendElement(stanza)
	}
	if len(stms) > 0 {
		level.Debug(r.logger).Log("msg", "routed stanza", "name", stanza.Name(), "targets", len(stms))
	}
}

func isRoutable(elem stravaganza.Element) bool {
	switch elem.Name() {
	case stravaganza.MessageName, stravaganza.PresenceName, stravaganza.IQName:
		return true
	}
	return false
}
