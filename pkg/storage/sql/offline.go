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

	"github.com/jackal-xmpp/stravaganza/v2"
	archivemodel "github.com/ortuman/rosterd/pkg/model/archive"
	"github.com/pkg/errors"
)

const offlineMessagesTableName = "offline_messages"

// InsertOfflineMessage satisfies repository.Offline interface.
func (r *Repository) InsertOfflineMessage(ctx context.Context, message *stravaganza.Message, username string) error {
	b, err := message.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = r.sb.Insert(offlineMessagesTableName).
		Columns("domain", "username", "message").
		Values(r.domain, username, b).
		RunWith(r.h.db).
		ExecContext(ctx)
	return errors.Wrapf(err, "sqlrepository: failed to insert offline message for %s", username)
}

// CountOfflineMessages satisfies repository.Offline interface.
func (r *Repository) CountOfflineMessages(ctx context.Context, username string) (int, error) {
	q := r.sb.Select("COUNT(*)").
		From(offlineMessagesTableName).
		Where(r.userPred(username))

	var count int
	if err := q.RunWith(r.h.db).QueryRowContext(ctx).Scan(&count); err != nil {
		return 0, errors.Wrapf(err, "sqlrepository: failed to count offline messages for %s", username)
	}
	return count, nil
}

// FetchOfflineMessages satisfies repository.Offline interface.
func (r *Repository) FetchOfflineMessages(ctx context.Context, username string) ([]*stravaganza.Message, error) {
	q := r.sb.Select("message").
		From(offlineMessagesTableName).
		Where(r.userPred(username)).
		OrderBy("id")

	rows, err := q.RunWith(r.h.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "sqlrepository: failed to fetch offline messages for %s", username)
	}
	defer closeRows(rows, r.logger)

	var ms []*stravaganza.Message
	for rows.Next() {
		var b []byte
		if err := rows.Scan(&b); err != nil {
			return nil, err
		}
		msg, err := archivemodel.DecodeMessage(b)
		if err != nil {
			return nil, err
		}
		ms = append(ms, msg)
	}
	return ms, rows.Err()
}

// DeleteOfflineMessages satisfies repository.Offline interface.
func (r *Repository) DeleteOfflineMessages(ctx context.Context, username string) error {
	_, err := r.sb.Delete(offlineMessagesTableName).
		Where(r.userPred(username)).
		RunWith(r.h.db).
		ExecContext(ctx)
	return errors.Wrapf(err, "sqlrepository: failed to delete offline messages for %s", username)
}
