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

package boltdb

import (
	"context"

	rostermodel "github.com/ortuman/rosterd/pkg/model/roster"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

const (
	userKind = "user"
	userKey  = "usr"
)

type boltDBUserRep struct {
	tx     *bolt.Tx
	bucket func(kind, id string) string
}

func (r *boltDBUserRep) SaveUser(_ context.Context, user *rostermodel.User) error {
	op := putKeyOp{
		tx:     r.tx,
		bucket: r.bucket(userKind, user.Username),
		key:    userKey,
		obj:    user,
	}
	return op.do()
}

func (r *boltDBUserRep) FindUser(_ context.Context, username string) (*rostermodel.User, error) {
	var usr rostermodel.User

	op := getKeyOp{
		tx:     r.tx,
		bucket: r.bucket(userKind, username),
		key:    userKey,
		obj:    &usr,
	}
	ok, err := op.do()
	if err != nil || !ok {
		return nil, err
	}
	return &usr, nil
}

func (r *boltDBUserRep) UserExists(_ context.Context, username string) (bool, error) {
	op := bucketExistsOp{
		tx:     r.tx,
		bucket: r.bucket(userKind, username),
	}
	return op.do(), nil
}

// SaveUser satisfies repository.User interface.
func (r *Repository) SaveUser(ctx context.Context, user *rostermodel.User) error {
	err := r.h.db.Update(func(tx *bolt.Tx) error {
		return r.userRep(tx).SaveUser(ctx, user)
	})
	return errors.Wrapf(err, "boltdb: failed to save user %s", user.Username)
}

// FindUser satisfies repository.User interface.
func (r *Repository) FindUser(ctx context.Context, username string) (usr *rostermodel.User, err error) {
	err = r.h.db.View(func(tx *bolt.Tx) error {
		usr, err = r.userRep(tx).FindUser(ctx, username)
		return err
	})
	return usr, errors.Wrapf(err, "boltdb: failed to find user %s", username)
}

// UserExists satisfies repository.User interface.
func (r *Repository) UserExists(ctx context.Context, username string) (ok bool, err error) {
	err = r.h.db.View(func(tx *bolt.Tx) error {
		ok, err = r.userRep(tx).UserExists(ctx, username)
		return err
	})
	return ok, errors.Wrapf(err, "boltdb: failed to check user %s", username)
}

func (r *Repository) userRep(tx *bolt.Tx) *boltDBUserRep {
	return &boltDBUserRep{tx: tx, bucket: r.bucket}
}
