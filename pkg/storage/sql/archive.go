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

package sqlrepository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	archivemodel "github.com/ortuman/rosterd/pkg/model/archive"
	"github.com/pkg/errors"
)

const archiveTableName = "archives"

// InsertArchiveMessage inserts a new message element into an archive queue.
func (r *Repository) InsertArchiveMessage(ctx context.Context, message *archivemodel.Message) error {
	b, err := message.Message.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = r.sb.Insert(archiveTableName).
		Columns("domain", "archive_id", "id", "from_jid", "from_bare", "to_jid", "to_bare", "message", "stamp").
		Values(
			r.domain,
			message.ArchiveID,
			message.ID,
			message.FromJID,
			bareOf(message.FromJID),
			message.ToJID,
			bareOf(message.ToJID),
			b,
			message.Stamp,
		).
		RunWith(r.h.db).
		ExecContext(ctx)
	return errors.Wrapf(err, "sqlrepository: failed to insert archive message into %s", message.ArchiveID)
}

// FetchArchiveMessages fetches archive associated messages applying the passed f filters.
func (r *Repository) FetchArchiveMessages(ctx context.Context, f archivemodel.Filters, archiveID string) ([]*archivemodel.Message, error) {
	q := r.sb.Select("id", "from_jid", "to_jid", "message", "stamp").
		From(archiveTableName).
		Where(r.filtersToPred(f, archiveID)).
		OrderBy("serial")

	rows, err := q.RunWith(r.h.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "sqlrepository: failed to fetch archive %s", archiveID)
	}
	defer closeRows(rows, r.logger)

	ms, err := scanArchiveMessages(rows, archiveID)
	if err != nil {
		return nil, errors.Wrapf(err, "sqlrepository: failed to scan archive %s", archiveID)
	}
	return ms, nil
}

// DeleteArchive clears an archive queue.
func (r *Repository) DeleteArchive(ctx context.Context, archiveID string) error {
	_, err := r.sb.Delete(archiveTableName).
		Where(sq.Eq{"archive_id": archiveID, "domain": r.domain}).
		RunWith(r.h.db).
		ExecContext(ctx)
	return errors.Wrapf(err, "sqlrepository: failed to delete archive %s", archiveID)
}

func (r *Repository) filtersToPred(f archivemodel.Filters, archiveID string) sq.And {
	pred := sq.And{
		sq.Eq{"archive_id": archiveID, "domain": r.domain},
	}
	if len(f.With) > 0 {
		if strings.Contains(f.With, "/") {
			pred = append(pred, sq.Expr("(to_jid = ? OR from_jid = ?)", f.With, f.With))
		} else {
			pred = append(pred, sq.Expr("(to_bare = ? OR from_bare = ?)", f.With, f.With))
		}
	}
	if !f.Start.IsZero() {
		pred = append(pred, sq.Gt{"stamp": f.Start})
	}
	if !f.End.IsZero() {
		pred = append(pred, sq.Lt{"stamp": f.End})
	}
	return pred
}

func scanArchiveMessages(scanner rowsScanner, archiveID string) ([]*archivemodel.Message, error) {
	var ret []*archivemodel.Message
	for scanner.Next() {
		msg := &archivemodel.Message{ArchiveID: archiveID}

		var b []byte
		if err := scanner.Scan(&msg.ID, &msg.FromJID, &msg.ToJID, &b, &msg.Stamp); err != nil {
			return nil, err
		}
		m, err := archivemodel.DecodeMessage(b)
		if err != nil {
			return nil, err
		}
		msg.Message = m
		ret = append(ret, msg)
	}
	return ret, scanner.Err()
}

func bareOf(s string) string {
	j, err := jid.NewWithString(s, true)
	if err != nil {
		return s
	}
	return j.ToBareJID().String()
}
