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
	"encoding"
	"encoding/binary"

	"github.com/ortuman/rosterd/pkg/model"
	bolt "go.etcd.io/bbolt"
)

type putKeyOp struct {
	tx     *bolt.Tx
	bucket string
	key    string
	obj    encoding.BinaryMarshaler
}

func (op putKeyOp) do() error {
	b, err := op.tx.CreateBucketIfNotExists([]byte(op.bucket))
	if err != nil {
		return err
	}
	p, err := op.obj.MarshalBinary()
	if err != nil {
		return err
	}
	return b.Put([]byte(op.key), p)
}

// appendOp stores obj under the next bucket sequence.
// Keys are big-endian encoded so cursor order matches insertion order.
type appendOp struct {
	tx     *bolt.Tx
	bucket string
	obj    encoding.BinaryMarshaler
}

func (op appendOp) do() error {
	b, err := op.tx.CreateBucketIfNotExists([]byte(op.bucket))
	if err != nil {
		return err
	}
	p, err := op.obj.MarshalBinary()
	if err != nil {
		return err
	}
	seq, err := b.NextSequence()
	if err != nil {
		return err
	}
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], seq)
	return b.Put(k[:], p)
}

type delBucketOp struct {
	tx     *bolt.Tx
	bucket string
}

func (op delBucketOp) do() error {
	err := op.tx.DeleteBucket([]byte(op.bucket))
	if err == bolt.ErrBucketNotFound {
		return nil
	}
	return err
}

type bucketExistsOp struct {
	tx     *bolt.Tx
	bucket string
}

func (op bucketExistsOp) do() bool {
	return op.tx.Bucket([]byte(op.bucket)) != nil
}

type getKeyOp struct {
	tx     *bolt.Tx
	bucket string
	key    string
	obj    model.Codec
}

func (op getKeyOp) do() (bool, error) {
	b := op.tx.Bucket([]byte(op.bucket))
	if b == nil {
		return false, nil
	}
	data := b.Get([]byte(op.key))
	if data == nil {
		return false, nil
	}
	if err := op.obj.UnmarshalBinary(data); err != nil {
		return false, err
	}
	return true, nil
}

type countKeysOp struct {
	tx     *bolt.Tx
	bucket string
}

func (op countKeysOp) do() int {
	b := op.tx.Bucket([]byte(op.bucket))
	if b == nil {
		return 0
	}
	var n int

	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		n++
	}
	return n
}

type iterKeysOp struct {
	tx     *bolt.Tx
	bucket string
	iterFn func(k, v []byte) error
}

func (op iterKeysOp) do() error {
	b := op.tx.Bucket([]byte(op.bucket))
	if b == nil {
		return nil
	}
	return b.ForEach(op.iterFn)
}
