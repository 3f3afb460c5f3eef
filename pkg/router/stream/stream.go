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

package stream

import (
	"context"
	"fmt"

	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	c2smodel "github.com/ortuman/rosterd/pkg/model/c2s"
	rostermodel "github.com/ortuman/rosterd/pkg/model/roster"
)

// C2SID type represents a C2S stream unique identifier string.
type C2SID uint64

// String returns C2S identifier string representation.
func (i C2SID) String() string {
	return fmt.Sprintf("c2s:%d", i)
}

// Provenance tells how the session that originated a stanza came to be bound on this node.
type Provenance uint8

const (
	// Authenticated identifies a session established through a fresh authentication.
	Authenticated Provenance = iota

	// Restored identifies a session reconstituted from replicated cluster state.
	Restored
)

// String returns Provenance string representation.
func (p Provenance) String() string {
	if p == Restored {
		return "restored"
	}
	return "authenticated"
}

// C2S represents a client-to-server XMPP stream.
type C2S interface {
	// ID returns C2S stream identifier.
	ID() C2SID

	// SetInfoValue sets a C2S stream info value.
	SetInfoValue(ctx context.Context, k string, val interface{}) error

	// Info returns C2S stream context.
	Info() c2smodel.Info

	// JID returns stream associated jid or nil if none is set.
	JID() *jid.JID

	// Username returns stream associated username.
	Username() string

	// Domain returns stream associated domain.
	Domain() string

	// Resource returns stream associated resource.
	Resource() string

	// Presence returns stream associated presence stanza or nil if none is set.
	Presence() *stravaganza.Presence

	// SendElement writes element string representation to the underlying stream transport.
	SendElement(elem stravaganza.Element) <-chan error

	// UpdateUser replaces the in-memory user record held by the session.
	UpdateUser(ctx context.Context, usr *rostermodel.User) error
}

// Priority returns stm presence priority, defaulting to 0 when no presence was sent yet.
func Priority(stm C2S) int8 {
	if pr := stm.Presence(); pr != nil {
		return pr.Priority()
	}
	return 0
}
