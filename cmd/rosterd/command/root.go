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

package command

import (
	"fmt"
	"os"

	"github.com/ortuman/rosterd/pkg/rosterd"
	"github.com/spf13/cobra"
)

const (
	cliName        = "rosterd"
	cliDescription = "XMPP message routing and roster engine."

	exitError = 1
)

var configFile string

var rootCmd = &cobra.Command{
	Use:          cliName,
	Short:        cliDescription,
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return rosterd.Run(configFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "configuration file path")

	rootCmd.AddCommand(newVersionCommand())
}

// Start executes rosterd root command.
func Start() error {
	return rootCmd.Execute()
}

// MustStart is like Start but exiting in case an error occurs.
func MustStart() {
	if err := Start(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
}
