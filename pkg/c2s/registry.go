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

package c2s

import (
	"context"
	"errors"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/ortuman/rosterd/pkg/router/stream"
	"github.com/samber/lo"
)

// RosterRequestedInfoKey is the session info key flagging a resource interested in roster pushes.
const RosterRequestedInfoKey = "roster:requested"

// ErrNotBound will be returned by Bind when trying to register a stream with no full address.
var ErrNotBound = errors.New("c2s: stream is not bound to a full address")

// Registry keeps track of every locally bound resource stream, indexed by bare address.
type Registry struct {
	mu     sync.RWMutex
	bndRes map[string]*resources
	logger kitlog.Logger
}

// NewRegistry returns an empty resource registry.
func NewRegistry(logger kitlog.Logger) *Registry {
	return &Registry{
		bndRes: make(map[string]*resources),
		logger: logger,
	}
}

// Bind registers stm as a connected resource of its bare address.
func (r *Registry) Bind(stm stream.C2S) error {
	j := stm.JID()
	if j == nil || !j.IsFullWithUser() {
		return ErrNotBound
	}
	bare := j.ToBareJID().String()

	r.mu.Lock()
	rs := r.bndRes[bare]
	if rs == nil {
		rs = &resources{}
		r.bndRes[bare] = rs
	}
	rs.bind(stm)
	r.mu.Unlock()

	level.Info(r.logger).Log("msg", "bound C2S stream", "id", stm.ID(),
		"username", stm.Username(),
		"domain", stm.Domain(),
		"resource", stm.Resource(),
	)
	return nil
}

// Unbind removes stm from the set of connected resources.
func (r *Registry) Unbind(stm stream.C2S) {
	j := stm.JID()
	if j == nil {
		return
	}
	bare := j.ToBareJID().String()

	r.mu.Lock()
	rs := r.bndRes[bare]
	if rs == nil {
		r.mu.Unlock()
		return
	}
	ok := rs.unbind(stm.ID())
	if rs.len() == 0 {
		delete(r.bndRes, bare)
	}
	r.mu.Unlock()

	if ok {
		level.Info(r.logger).Log("msg", "unbound C2S stream", "id", stm.ID(),
			"username", stm.Username(),
			"domain", stm.Domain(),
			"resource", stm.Resource(),
		)
	}
}

// Stream returns the stream bound to bare address and resource, or nil if not present.
func (r *Registry) Stream(bare *jid.JID, resource string) stream.C2S {
	rs := r.resources(bare)
	if rs == nil {
		return nil
	}
	return rs.stream(resource)
}

// ConnectedResources returns a snapshot of all resource streams bound to bare address.
func (r *Registry) ConnectedResources(bare *jid.JID) []stream.C2S {
	rs := r.resources(bare)
	if rs == nil {
		return nil
	}
	return rs.all()
}

// PrioritizedResources returns the subset of connected resources sharing the highest presence priority.
func (r *Registry) PrioritizedResources(bare *jid.JID) []stream.C2S {
	stms := r.ConnectedResources(bare)
	if len(stms) == 0 {
		return nil
	}
	p0 := lo.Max(lo.Map(stms, func(stm stream.C2S, _ int) int8 {
		return stream.Priority(stm)
	}))
	return lo.Filter(stms, func(stm stream.C2S, _ int) bool {
		return stream.Priority(stm) == p0
	})
}

// InterestedResources returns the subset of connected resources that requested the roster.
func (r *Registry) InterestedResources(bare *jid.JID) []stream.C2S {
	return lo.Filter(r.ConnectedResources(bare), func(stm stream.C2S, _ int) bool {
		return stm.Info().Bool(RosterRequestedInfoKey)
	})
}

// MarkInterested flags stm as eligible for roster pushes.
func (r *Registry) MarkInterested(ctx context.Context, stm stream.C2S) error {
	return stm.SetInfoValue(ctx, RosterRequestedInfoKey, true)
}

func (r *Registry) resources(bare *jid.JID) *resources {
	if bare == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bndRes[bare.ToBareJID().String()]
}
