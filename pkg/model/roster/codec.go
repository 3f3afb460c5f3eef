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

	"google.golang.org/protobuf/encoding/protowire"
)

// user wire fields
const (
	userUsernameField protowire.Number = 1
	userDomainField   protowire.Number = 2
	userContactsField protowire.Number = 3
)

// contact wire fields
const (
	contactJIDField          protowire.Number = 1
	contactNameField         protowire.Number = 2
	contactGroupsField       protowire.Number = 3
	contactSubscriptionField protowire.Number = 4
	contactAskField          protowire.Number = 5
)

// MarshalBinary satisfies encoding.BinaryMarshaler interface.
func (u *User) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendString(b, userUsernameField, u.Username)
	b = appendString(b, userDomainField, u.Domain)
	for i := range u.Contacts {
		b = protowire.AppendTag(b, userContactsField, protowire.BytesType)
		b = protowire.AppendBytes(b, u.Contacts[i].marshal())
	}
	return b, nil
}

// UnmarshalBinary satisfies encoding.BinaryUnmarshaler interface.
func (u *User) UnmarshalBinary(b []byte) error {
	var usr User
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == userUsernameField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			usr.Username = v
			return n, nil

		case num == userDomainField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			usr.Domain = v
			return n, nil

		case num == userContactsField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			var c Contact
			if err := c.unmarshal(v); err != nil {
				return 0, err
			}
			usr.Contacts = append(usr.Contacts, c)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	if err != nil {
		return err
	}
	*u = usr
	return nil
}

func (c *Contact) marshal() []byte {
	var b []byte
	b = appendString(b, contactJIDField, c.JID)
	b = appendString(b, contactNameField, c.Name)
	for _, g := range c.Groups {
		b = protowire.AppendTag(b, contactGroupsField, protowire.BytesType)
		b = protowire.AppendString(b, g)
	}
	b = appendString(b, contactSubscriptionField, string(c.Subscription))
	if c.Ask {
		b = protowire.AppendTag(b, contactAskField, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	return b
}

func (c *Contact) unmarshal(b []byte) error {
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == contactJIDField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			c.JID = v
			return n, nil

		case num == contactNameField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			c.Name = v
			return n, nil

		case num == contactGroupsField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n >= 0 {
				c.Groups = append(c.Groups, v)
			}
			return n, nil

		case num == contactSubscriptionField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			c.Subscription = Subscription(v)
			return n, nil

		case num == contactAskField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			c.Ask = protowire.DecodeBool(v)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	if err != nil {
		return err
	}
	if len(c.Subscription) > 0 && !c.Subscription.IsState() {
		return fmt.Errorf("rostermodel: invalid subscription state %q for contact %s", c.Subscription, c.JID)
	}
	return nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if len(s) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// consumeFields walks every field in b handing its value to fn.
// fn returns the number of consumed bytes, or a negative value on malformed input.
func consumeFields(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}
