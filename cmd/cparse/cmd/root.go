// Copyright 2026 The libcparse-go Authors.
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

// Package cmd implements the cparse collaborator binary: a handful of
// small tools built on the libcparse layer stack, packaged as cobra
// subcommands of one binary.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "cparse",
		Short:        "cparse",
		SilenceUsage: true,
		Long:         `cparse is a collection of example tools built on the libcparse lexical scanner.`,
	}

	verbose bool
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return rootCmd.Execute()
}

// logger returns the shared diagnostics logger, leveled per the
// --verbose flag. Subcommands take it as a value rather than reaching
// for a package global.
func logger() *logrus.Logger {
	log := logrus.StandardLogger()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
