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

package rostermodel

import (
	"fmt"
)

// Subscription represents a roster item subscription state.
type Subscription string

// roster item subscription values
const (
	SubscriptionNone Subscription = "none"
	SubscriptionFrom Subscription = "from"
	SubscriptionTo   Subscription = "to"
	SubscriptionBoth Subscription = "both"

	// SubscriptionRemove is the inbound item directive requesting a contact deletion.
	SubscriptionRemove Subscription = "remove"

	// SubscriptionRemoved is the cluster-only directive acknowledging a removal made by the peer.
	SubscriptionRemoved Subscription = "removed"
)

// IsState tells whether s is a persistable subscription state.
func (s Subscription) IsState() bool {
	switch s {
	case SubscriptionNone, SubscriptionFrom, SubscriptionTo, SubscriptionBoth:
		return true
	}
	return false
}

// Contact represents a roster entry.
type Contact struct {
	JID          string
	Name         string
	Groups       []string
	Subscription Subscription
	Ask          bool
}

// IsSubscribedTo tells whether the owner receives the contact presence.
func (c *Contact) IsSubscribedTo() bool {
	return c.Subscription == SubscriptionTo || c.Subscription == SubscriptionBoth
}

// IsSubscribedFrom tells whether the contact receives the owner presence.
func (c *Contact) IsSubscribedFrom() bool {
	return c.Subscription == SubscriptionFrom || c.Subscription == SubscriptionBoth
}

// User represents a user account along with its roster.
type User struct {
	Username string
	Domain   string
	Contacts []Contact
}

// JID returns the user bare address string representation.
func (u *User) JID() string {
	return fmt.Sprintf("%s@%s", u.Username, u.Domain)
}

// Contact returns the roster entry associated to jid, or nil if not present.
func (u *User) Contact(jid string) *Contact {
	for i := range u.Contacts {
		if u.Contacts[i].JID == jid {
			return &u.Contacts[i]
		}
	}
	return nil
}

// UpsertContact updates in place the roster entry matching c.JID or appends a new one.
// It returns the stored entry.
func (u *User) UpsertContact(c Contact) *Contact {
	if cnt := u.Contact(c.JID); cnt != nil {
		*cnt = c
		return cnt
	}
	u.Contacts = append(u.Contacts, c)
	return &u.Contacts[len(u.Contacts)-1]
}

// RemoveContact deletes the roster entry associated to jid.
// It returns false if no entry was found.
func (u *User) RemoveContact(jid string) bool {
	for i := range u.Contacts {
		if u.Contacts[i].JID == jid {
			u.Contacts = append(u.Contacts[:i], u.Contacts[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	cp := &User{Username: u.Username, Domain: u.Domain}
	if u.Contacts == nil {
		return cp
	}
	cp.Contacts = make([]Contact, len(u.Contacts))
	for i, c := range u.Contacts {
		cp.Contacts[i] = c
		if c.Groups != nil {
			cp.Contacts[i].Groups = append([]string(nil), c.Groups...)
		}
	}
	return cp
}
