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

package xmpputil

import (
	"bytes"
	"time"

	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

const (
	delayNamespace    = "urn:xmpp:delay"
	stanzaIDNamespace = "urn:xmpp:sid:0"

	delayTimeFormat = "2006-01-02T15:04:05Z"
)

// MakeResultIQ creates a new result stanza derived from iq.
// The originating from address is dropped, so that the reply is addressed from the server.
func MakeResultIQ(iq *stravaganza.IQ, queryChild stravaganza.Element) *stravaganza.IQ {
	b := iq.ResultBuilder()
	if queryChild != nil {
		b.WithChild(queryChild)
	}
	resIQ, _ := b.BuildIQ()
	return resIQ
}

// MakePresence creates presence of type typ using fromJID and toJID addresses.
func MakePresence(fromJID, toJID *jid.JID, id, typ string) *stravaganza.Presence {
	b := stravaganza.NewPresenceBuilder().
		WithAttribute(stravaganza.From, fromJID.String()).
		WithAttribute(stravaganza.To, toJID.String())
	if len(id) > 0 {
		b.WithAttribute(stravaganza.ID, id)
	}
	if len(typ) > 0 {
		b.WithAttribute(stravaganza.Type, typ)
	}
	pr, _ := b.BuildPresence()
	return pr
}

// MakeErrorStanza creates an error stanza using errReason as reason.
func MakeErrorStanza(stanza stravaganza.Stanza, errReason stanzaerror.Reason) stravaganza.Stanza {
	errStanza, _ := stanzaerror.E(errReason, stanza).
		Stanza(false)
	return errStanza
}

// MakeDelayMessage creates a new message adding delayed information.
func MakeDelayMessage(stanza stravaganza.Stanza, stamp time.Time, from, text string) *stravaganza.Message {
	sb := stravaganza.NewBuilderFromElement(stanza)
	sb.WithChild(
		stravaganza.NewBuilder("delay").
			WithAttribute(stravaganza.Namespace, delayNamespace).
			WithAttribute(stravaganza.From, from).
			WithAttribute("stamp", stamp.UTC().Format(delayTimeFormat)).
			WithText(text).
			Build(),
	)
	dMsg, _ := sb.BuildMessage()
	return dMsg
}

// MakeStanzaIDMessage creates and returns a new message containing a stanza-id element.
func MakeStanzaIDMessage(originalMsg *stravaganza.Message, stanzaID, by string) *stravaganza.Message {
	msg, _ := stravaganza.NewBuilderFromElement(originalMsg).
		WithChild(
			stravaganza.NewBuilder("stanza-id").
				WithAttribute(stravaganza.Namespace, stanzaIDNamespace).
				WithAttribute("by", by).
				WithAttribute("id", stanzaID).
				Build(),
		).
		BuildMessage()
	return msg
}

// MessageStanzaID returns the stanza-id value contained in msg parameter.
func MessageStanzaID(msg *stravaganza.Message) string {
	sidElem := msg.ChildNamespace("stanza-id", stanzaIDNamespace)
	if sidElem == nil {
		return ""
	}
	return sidElem.Attribute("id")
}

// ToXML returns elem XML representation.
func ToXML(elem stravaganza.Element) string {
	buf := bytes.NewBuffer(nil)
	_ = elem.ToXML(buf, true)
	return buf.String()
}
