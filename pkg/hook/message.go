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
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	archivemodel "github.com/ortuman/rosterd/pkg/model/archive"
)

const (
	// MessageArchived hook runs whenever a message is stored into an archive.
	MessageArchived = "message.archived"

	// OfflineMessageStored hook runs whenever a message is queued for a user with no connected resources.
	OfflineMessageStored = "message.offline.stored"

	// OfflineMessagesDelivered hook runs whenever a resource is handed its pending offline queue.
	OfflineMessagesDelivered = "message.offline.delivered"

	// MessageShared hook runs whenever a message is handed over to the cluster relay.
	MessageShared = "message.shared"

	// MessageBroadcasted hook runs whenever a message is written to one or more local resources.
	MessageBroadcasted = "message.broadcasted"
)

// MessageInfo contains all info associated to a message delivery event.
type MessageInfo struct {
	// Message is the delivered message stanza.
	Message *stravaganza.Message

	// Targets contains all addresses to which the message was delivered.
	Targets []jid.JID

	// Archived is set for MessageArchived events.
	Archived *archivemodel.Message
}

// OfflineInfo contains all info associated to an offline queue delivery.
type OfflineInfo struct {
	// Username is the queue owner username.
	Username string

	// JID is the address of the resource that received the queue.
	JID *jid.JID

	// Messages contains the delivered messages in queue order.
	Messages []*stravaganza.Message
}
