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

package repository

import (
	"context"

	rostermodel "github.com/ortuman/rosterd/pkg/model/roster"
)

// User defines user repository operations
type User interface {
	// FindUser retrieves a user entity along with its roster.
	// If the user does not exist a nil user and a nil error are returned.
	FindUser(ctx context.Context, username string) (*rostermodel.User, error)

	// SaveUser inserts or replaces a user entity.
	SaveUser(ctx context.Context, user *rostermodel.User) error

	// UserExists tells whether or not a user exists within repository.
	UserExists(ctx context.Context, username string) (bool, error)
}
