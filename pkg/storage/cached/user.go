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

package cachedrepository

import (
	"context"
	"fmt"

	kitlog "github.com/go-kit/log"
	"github.com/ortuman/rosterd/pkg/model"
	rostermodel "github.com/ortuman/rosterd/pkg/model/roster"
	"github.com/ortuman/rosterd/pkg/storage/repository"
)

const userKey = "usr"

type cachedUserRep struct {
	c      Cache
	rep    repository.User
	domain string
	logger kitlog.Logger
}

func (c *cachedUserRep) FindUser(ctx context.Context, username string) (*rostermodel.User, error) {
	op := fetchOp{
		c:         c.c,
		namespace: c.userNS(username),
		key:       userKey,
		codec:     &rostermodel.User{},
		missFn: func(ctx context.Context) (model.Codec, error) {
			usr, err := c.rep.FindUser(ctx, username)
			if err != nil || usr == nil {
				return nil, err
			}
			return usr, nil
		},
		logger: c.logger,
	}
	v, err := op.do(ctx)
	if err != nil || v == nil {
		return nil, err
	}
	return v.(*rostermodel.User), nil
}

func (c *cachedUserRep) SaveUser(ctx context.Context, user *rostermodel.User) error {
	op := updateOp{
		c:              c.c,
		namespace:      c.userNS(user.Username),
		invalidateKeys: []string{userKey},
		updateFn: func(ctx context.Context) error {
			return c.rep.SaveUser(ctx, user)
		},
	}
	return op.do(ctx)
}

func (c *cachedUserRep) UserExists(ctx context.Context, username string) (bool, error) {
	op := existsOp{
		c:         c.c,
		namespace: c.userNS(username),
		key:       userKey,
		missFn: func(ctx context.Context) (bool, error) {
			return c.rep.UserExists(ctx, username)
		},
		logger: c.logger,
	}
	return op.do(ctx)
}

func (c *cachedUserRep) userNS(username string) string {
	return fmt.Sprintf("usr:%s:%s", c.domain, username)
}
