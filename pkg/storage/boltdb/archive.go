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

	archivemodel "github.com/ortuman/rosterd/pkg/model/archive"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

const archiveKind = "archive"

type boltDBArchiveRep struct {
	tx     *bolt.Tx
	bucket func(kind, id string) string
}

func (r *boltDBArchiveRep) InsertArchiveMessage(_ context.Context, message *archivemodel.Message) error {
	op := appendOp{
		tx:     r.tx,
		bucket: r.bucket(archiveKind, message.ArchiveID),
		obj:    message,
	}
	return op.do()
}

func (r *boltDBArchiveRep) FetchArchiveMessages(_ context.Context, f archivemodel.Filters, archiveID string) ([]*archivemodel.Message, error) {
	var retVal []*archivemodel.Message

	op := iterKeysOp{
		tx:     r.tx,
		bucket: r.bucket(archiveKind, archiveID),
		iterFn: func(_, b []byte) error {
			var msg archivemodel.Message
			if err := msg.UnmarshalBinary(b); err != nil {
				return err
			}
			if msg.Matches(f) {
				retVal = append(retVal, &msg)
			}
			return nil
		},
	}
	if err := op.do(); err != nil {
		return nil, err
	}
	return retVal, nil
}

func (r *boltDBArchiveRep) DeleteArchive(_ context.Context, archiveID string) error {
	op := delBucketOp{
		tx:     r.tx,
		bucket: r.bucket(archiveKind, archiveID),
	}
	return op.do()
}

// InsertArchiveMessage inserts a new message element into an archive queue.
func (r *Repository) InsertArchiveMessage(ctx context.Context, message *archivemodel.Message) error {
	err := r.h.db.Update(func(tx *bolt.Tx) error {
		return r.archiveRep(tx).InsertArchiveMessage(ctx, message)
	})
	return errors.Wrapf(err, "boltdb: failed to insert archive message into %s", message.ArchiveID)
}

// FetchArchiveMessages fetches archive associated messages applying the passed f filters.
func (r *Repository) FetchArchiveMessages(ctx context.Context, f archivemodel.Filters, archiveID string) (ms []*archivemodel.Message, err error) {
	err = r.h.db.View(func(tx *bolt.Tx) error {
		ms, err = r.archiveRep(tx).FetchArchiveMessages(ctx, f, archiveID)
		return err
	})
	return ms, errors.Wrapf(err, "boltdb: failed to fetch archive %s", archiveID)
}

// DeleteArchive clears an archive queue.
func (r *Repository) DeleteArchive(ctx context.Context, archiveID string) error {
	err := r.h.db.Update(func(tx *bolt.Tx) error {
		return r.archiveRep(tx).DeleteArchive(ctx, archiveID)
	})
	return errors.Wrapf(err, "boltdb: failed to delete archive %s", archiveID)
}

func (r *Repository) archiveRep(tx *bolt.Tx) *boltDBArchiveRep {
	return &boltDBArchiveRep{tx: tx, bucket: r.bucket}
}
