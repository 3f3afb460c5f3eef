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

package archivemodel

import (
	"errors"
	"strings"
	"time"

	"github.com/jackal-xmpp/stravaganza/v2"
	"google.golang.org/protobuf/encoding/protowire"
)

// Message represents an archived message entry.
type Message struct {
	ArchiveID string
	ID        string
	FromJID   string
	ToJID     string
	Message   *stravaganza.Message
	Stamp     time.Time
}

var errMissingMessage = errors.New("archivemodel: missing message stanza")

// Filters contains archive fetch filters.
// A zero value matches every archived message.
type Filters struct {
	With  string
	Start time.Time
	End   time.Time
}

// message wire fields
const (
	archiveIDField protowire.Number = 1
	idField        protowire.Number = 2
	fromField      protowire.Number = 3
	toField        protowire.Number = 4
	messageField   protowire.Number = 5
	stampField     protowire.Number = 6
)

// MarshalBinary satisfies encoding.BinaryMarshaler interface.
func (m *Message) MarshalBinary() ([]byte, error) {
	mb, err := m.Message.MarshalBinary()
	if err != nil {
		return nil, err
	}
	var b []byte
	for _, f := range []struct {
		num protowire.Number
		val string
	}{
		{archiveIDField, m.ArchiveID},
		{idField, m.ID},
		{fromField, m.FromJID},
		{toField, m.ToJID},
	} {
		if len(f.val) == 0 {
			continue
		}
		b = protowire.AppendTag(b, f.num, protowire.BytesType)
		b = protowire.AppendString(b, f.val)
	}
	b = protowire.AppendTag(b, messageField, protowire.BytesType)
	b = protowire.AppendBytes(b, mb)

	if !m.Stamp.IsZero() {
		b = protowire.AppendTag(b, stampField, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.Stamp.UnixNano()))
	}
	return b, nil
}

// UnmarshalBinary satisfies encoding.BinaryUnmarshaler interface.
func (m *Message) UnmarshalBinary(b []byte) error {
	var msg Message
	var mb []byte
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == archiveIDField && typ == protowire.BytesType:
			msg.ArchiveID, n = protowire.ConsumeString(b)
		case num == idField && typ == protowire.BytesType:
			msg.ID, n = protowire.ConsumeString(b)
		case num == fromField && typ == protowire.BytesType:
			msg.FromJID, n = protowire.ConsumeString(b)
		case num == toField && typ == protowire.BytesType:
			msg.ToJID, n = protowire.ConsumeString(b)
		case num == messageField && typ == protowire.BytesType:
			mb, n = protowire.ConsumeBytes(b)
		case num == stampField && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			msg.Stamp = time.Unix(0, int64(v)).UTC()
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	if mb == nil {
		return errMissingMessage
	}
	stanza, err := DecodeMessage(mb)
	if err != nil {
		return err
	}
	msg.Message = stanza
	*m = msg
	return nil
}

// Matches tells whether the archived message satisfies f filters.
// A full With address matches exact participants, a bare one matches any of their resources.
func (m *Message) Matches(f Filters) bool {
	if len(f.With) > 0 {
		if !strings.Contains(f.With, "/") {
			if bareOf(m.FromJID) != f.With && bareOf(m.ToJID) != f.With {
				return false
			}
		} else if m.FromJID != f.With && m.ToJID != f.With {
			return false
		}
	}
	if !f.Start.IsZero() && !m.Stamp.After(f.Start) {
		return false
	}
	if !f.End.IsZero() && !m.Stamp.Before(f.End) {
		return false
	}
	return true
}

// DecodeMessage decodes a binary encoded message stanza.
func DecodeMessage(b []byte) (*stravaganza.Message, error) {
	sb, err := stravaganza.NewBuilderFromBinary(b)
	if err != nil {
		return nil, err
	}
	return sb.BuildMessage()
}

func bareOf(j string) string {
	if i := strings.IndexByte(j, '/'); i >= 0 {
		return j[:i]
	}
	return j
}
