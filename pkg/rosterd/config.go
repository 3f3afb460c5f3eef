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

package rosterd

import (
	"path/filepath"

	"github.com/kkyr/fig"
	"github.com/ortuman/rosterd/pkg/gateway"
	"github.com/ortuman/rosterd/pkg/host"
	"github.com/ortuman/rosterd/pkg/log"
	"github.com/ortuman/rosterd/pkg/module/message"
	"github.com/ortuman/rosterd/pkg/storage"
)

// RosterConfig contains roster engine configuration.
type RosterConfig struct{}

// Config contains rosterd configuration.
type Config struct {
	Logger log.Config `fig:"logger"`

	HTTPPort int `fig:"http_port" default:"6060"`

	Hosts   host.Configs   `fig:"hosts"`
	Storage storage.Config `fig:"storage"`

	Roster  RosterConfig   `fig:"roster"`
	Message message.Config `fig:"message"`

	// S2S defines the federation gateway. Remote stanzas are dropped when no URL is set.
	S2S gateway.Config `fig:"s2s"`
}

// LoadConfig reads and decodes configFile.
func LoadConfig(configFile string) (*Config, error) {
	var cfg Config
	file := filepath.Base(configFile)
	dir := filepath.Dir(configFile)

	err := fig.Load(&cfg, fig.File(file), fig.Dirs(dir))
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
