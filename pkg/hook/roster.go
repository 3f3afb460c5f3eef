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

package hook

import (
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	rostermodel "github.com/ortuman/rosterd/pkg/model/roster"
)

const (
	// RosterItemUpdated hook runs whenever a roster item is added or updated.
	RosterItemUpdated = "roster.item.updated"

	// RosterItemRemoved hook runs whenever a roster item is deleted.
	RosterItemRemoved = "roster.item.removed"

	// RosterRequested hook runs whenever a resource requests its roster.
	RosterRequested = "roster.requested"
)

// RosterInfo contains all info associated to a roster event.
type RosterInfo struct {
	// Username is the roster owner username.
	Username string

	// JID is the roster owner address.
	JID *jid.JID

	// Contact is the roster item associated to this event.
	Contact *rostermodel.Contact
}
