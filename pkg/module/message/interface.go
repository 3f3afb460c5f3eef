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

package message

import (
	"github.com/ortuman/rosterd/pkg/router/stream"
	"github.com/ortuman/rosterd/pkg/storage/repository"
)

//go:generate moq -out router.mock_test.go . router
//go:generate moq -out storage_provider.mock_test.go . storageProvider
//go:generate moq -out forwarder.mock_test.go . Forwarder:forwarderMock
//go:generate moq -out strategy.mock_test.go . strategy
type strategy interface {
	Strategy
}

//go:generate moq -out repository.mock_test.go . repositoryRep
type repositoryRep interface {
	repository.Repository
}

//go:generate moq -out c2s_stream.mock_test.go . c2sStream
type c2sStream interface {
	stream.C2S
}
