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

	"github.com/jackal-xmpp/stravaganza/v2"
	archivemodel "github.com/ortuman/rosterd/pkg/model/archive"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

const offlineKind = "offline"

type boltDBOfflineRep struct {
	tx     *bolt.Tx
	bucket func(kind, id string) string
}

func (r *boltDBOfflineRep) InsertOfflineMessage(_ context.Context, message *stravaganza.Message, username string) error {
	op := appendOp{
		tx:     r.tx,
		bucket: r.bucket(offlineKind, username),
		obj:    message,
	}
	return op.do()
}

func (r *boltDBOfflineRep) CountOfflineMessages(_ context.Context, username string) (int, error) {
	op := countKeysOp{
		tx:     r.tx,
		bucket: r.bucket(offlineKind, username),
	}
	return op.do(), nil
}

func (r *boltDBOfflineRep) FetchOfflineMessages(_ context.Context, username string) ([]*stravaganza.Message, error) {
	var retVal []*stravaganza.Message

	op := iterKeysOp{
		tx:     r.tx,
		bucket: r.bucket(offlineKind, username),
		iterFn: func(_, b []byte) error {
			msg, err := archivemodel.DecodeMessage(b)
			if err != nil {
				return err
			}
			retVal = append(retVal, msg)
			return nil
		},
	}
	if err := op.do(); err != nil {
		return nil, err
	}
	return retVal, nil
}

func (r *boltDBOfflineRep) DeleteOfflineMessages(_ context.Context, username string) error {
	op := delBucketOp{
		tx:     r.tx,
		bucket: r.bucket(offlineKind, username),
	}
	return op.do()
}

// InsertOfflineMessage satisfies repository.Offline interface.
func (r *Repository) InsertOfflineMessage(ctx context.Context, message *stravaganza.Message, username string) error {
	err := r.h.db.Update(func(tx *bolt.Tx) error {
		return r.offlineRep(tx).InsertOfflineMessage(ctx, message, username)
	})
	return errors.Wrapf(err, "boltdb: failed to insert offline message for %s", username)
}

// CountOfflineMessages satisfies repository.Offline interface.
func (r *Repository) CountOfflineMessages(ctx context.Context, username string) (c int, err error) {
	err = r.h.db.View(func(tx *bolt.Tx) error {
		c, err = r.offlineRep(tx).CountOfflineMessages(ctx, username)
		return err
	})
	return c, errors.Wrapf(err, "boltdb: failed to count offline messages for %s", username)
}

// FetchOfflineMessages satisfies repository.Offline interface.
func (r *Repository) FetchOfflineMessages(ctx context.Context, username string) (ms []*stravaganza.Message, err error) {
	err = r.h.db.View(func(tx *bolt.Tx) error {
		ms, err = r.offlineRep(tx).FetchOfflineMessages(ctx, username)
		return err
	})
	return ms, errors.Wrapf(err, "boltdb: failed to fetch offline messages for %s", username)
}

// DeleteOfflineMessages satisfies repository.Offline interface.
func (r *Repository) DeleteOfflineMessages(ctx context.Context, username string) error {
	err := r.h.db.Update(func(tx *bolt.Tx) error {
		return r.offlineRep(tx).DeleteOfflineMessages(ctx, username)
	})
	return errors.Wrapf(err, "boltdb: failed to delete offline messages for %s", username)
}

func (r *Repository) offlineRep(tx *bolt.Tx) *boltDBOfflineRep {
	return &boltDBOfflineRep{tx: tx, bucket: r.bucket}
}
