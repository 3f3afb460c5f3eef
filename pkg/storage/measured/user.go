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

	rostermodel "github.com/ortuman/rosterd/pkg/model/roster"
	"github.com/ortuman/rosterd/pkg/storage/repository"
)

type measuredUserRep struct {
	rep    repository.User
	report reportFn
}

func (m *measuredUserRep) FindUser(ctx context.Context, username string) (*rostermodel.User, error) {
	t0 := time.Now()
	usr, err := m.rep.FindUser(ctx, username)
	m.report(fetchOp, t0, err)
	return usr, err
}

func (m *measuredUserRep) SaveUser(ctx context.Context, user *rostermodel.User) error {
	t0 := time.Now()
	err := m.rep.SaveUser(ctx, user)
	m.report(upsertOp, t0, err)
	return err
}

func (m *measuredUserRep) UserExists(ctx context.Context, username string) (bool, error) {
	t0 := time.Now()
	ok, err := m.rep.UserExists(ctx, username)
	m.report(fetchOp, t0, err)
	return ok, err
}
