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

package measuredrepository

import (
	"context"
	"time"

	archivemodel "github.com/ortuman/rosterd/pkg/model/archive"
	"github.com/ortuman/rosterd/pkg/storage/repository"
)

type measuredArchiveRep struct {
	rep    repository.Archive
	report reportFn
}

func (m *measuredArchiveRep) InsertArchiveMessage(ctx context.Context, message *archivemodel.Message) error {
	t0 := time.Now()
	err := m.rep.InsertArchiveMessage(ctx, message)
	m.report(upsertOp, t0, err)
	return err
}

func (m *measuredArchiveRep) FetchArchiveMessages(ctx context.Context, f archivemodel.Filters, archiveID string) ([]*archivemodel.Message, error) {
	t0 := time.Now()
	ms, err := m.rep.FetchArchiveMessages(ctx, f, archiveID)
	m.report(fetchOp, t0, err)
	return ms, err
}

func (m *measuredArchiveRep) DeleteArchive(ctx context.Context, archiveID string) error {
	t0 := time.Now()
	err := m.rep.DeleteArchive(ctx, archiveID)
	m.report(deleteOp, t0, err)
	return err
}
