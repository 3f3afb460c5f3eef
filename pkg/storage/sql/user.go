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
	"database/sql"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	rostermodel "github.com/ortuman/rosterd/pkg/model/roster"
	"github.com/pkg/errors"
)

const (
	usersTableName       = "users"
	rosterItemsTableName = "roster_items"
)

// FindUser satisfies repository.User interface.
func (r *Repository) FindUser(ctx context.Context, username string) (*rostermodel.User, error) {
	ok, err := r.UserExists(ctx, username)
	if err != nil || !ok {
		return nil, err
	}
	q := r.sb.Select("jid", "name", "subscription", "ask", "contact_groups").
		From(rosterItemsTableName).
		Where(r.userPred(username)).
		OrderBy("id")

	rows, err := q.RunWith(r.h.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "sqlrepository: failed to fetch roster of %s", username)
	}
	defer closeRows(rows, r.logger)

	contacts, err := scanContacts(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "sqlrepository: failed to scan roster of %s", username)
	}
	return &rostermodel.User{
		Username: username,
		Domain:   r.domain,
		Contacts: contacts,
	}, nil
}

// SaveUser satisfies repository.User interface.
func (r *Repository) SaveUser(ctx context.Context, user *rostermodel.User) error {
	err := r.inTransaction(ctx, func(tx *sql.Tx) error {
		q := r.sb.Insert(usersTableName).
			Columns("domain", "username").
			Values(r.domain, user.Username).
			Suffix(r.ignoreConflictSuffix())
		if _, err := q.RunWith(tx).ExecContext(ctx); err != nil {
			return err
		}
		_, err := r.sb.Delete(rosterItemsTableName).
			Where(r.userPred(user.Username)).
			RunWith(tx).
			ExecContext(ctx)
		if err != nil {
			return err
		}
		if len(user.Contacts) == 0 {
			return nil
		}
		iq := r.sb.Insert(rosterItemsTableName).
			Columns("domain", "username", "jid", "name", "subscription", "ask", "contact_groups")
		for _, c := range user.Contacts {
			groups, err := encodeGroups(c.Groups)
			if err != nil {
				return err
			}
			iq = iq.Values(r.domain, user.Username, c.JID, c.Name, string(c.Subscription), c.Ask, groups)
		}
		_, err = iq.RunWith(tx).ExecContext(ctx)
		return err
	})
	return errors.Wrapf(err, "sqlrepository: failed to save user %s", user.Username)
}

// UserExists satisfies repository.User interface.
func (r *Repository) UserExists(ctx context.Context, username string) (bool, error) {
	q := r.sb.Select("COUNT(*)").
		From(usersTableName).
		Where(r.userPred(username))

	var count int
	if err := q.RunWith(r.h.db).QueryRowContext(ctx).Scan(&count); err != nil {
		return false, errors.Wrapf(err, "sqlrepository: failed to check user %s", username)
	}
	return count > 0, nil
}

func (r *Repository) userPred(username string) sq.Eq {
	return sq.Eq{"domain": r.domain, "username": username}
}

func (r *Repository) ignoreConflictSuffix() string {
	if r.driver == MySQLDriver {
		return "ON DUPLICATE KEY UPDATE username = username"
	}
	return "ON CONFLICT (domain, username) DO NOTHING"
}

func scanContacts(scanner rowsScanner) ([]rostermodel.Contact, error) {
	var ret []rostermodel.Contact
	for scanner.Next() {
		var c rostermodel.Contact
		var sub string
		var groups []byte

		if err := scanner.Scan(&c.JID, &c.Name, &sub, &c.Ask, &groups); err != nil {
			return nil, err
		}
		c.Subscription = rostermodel.Subscription(sub)
		gs, err := decodeGroups(groups)
		if err != nil {
			return nil, err
		}
		c.Groups = gs
		ret = append(ret, c)
	}
	return ret, scanner.Err()
}

// encodeGroups returns the JSON array representation of groups.
func encodeGroups(groups []string) ([]byte, error) {
	if len(groups) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(groups)
}

func decodeGroups(b []byte) ([]string, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var groups []string
	if err := json.Unmarshal(b, &groups); err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, nil
	}
	return groups, nil
}
