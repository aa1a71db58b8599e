// Copyright © 2022 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

// Package abicodec is the command line front-end for the ABI codec: a
// small cobra tree of subcommands (parse/methodid/encode/decode/event),
// plus fetch/watch helpers that load a JSON-ABI document from a URL or a
// local file, and a serve command that offers parse/encode/decode over HTTP.
package abicodec

import (
	"context"
	"fmt"
	"os"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-ethabi/ethabi/internal/abiconfig"
	"github.com/go-ethabi/ethabi/internal/abimsgs"
)

var rootCmd = &cobra.Command{
	Use:   "abicodec",
	Short: "Ethereum contract ABI encoder/decoder",
	Long:  ``,
}

var cfgFile string
var profilesFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.PersistentFlags().StringVar(&profilesFile, "profiles", "", "TOML file of named signature aliases")
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(methodIDCmd())
	rootCmd.AddCommand(encodeCmd())
	rootCmd.AddCommand(decodeCmd())
	rootCmd.AddCommand(eventCmd())
	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(serveCmd())
}

// Execute runs the CLI, returning the first error any subcommand reports.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	abiconfig.Reset()
}

// rootContext reads configuration, bootstraps logging the same way every
// subcommand does, and returns a context carrying the configured logger.
func rootContext() (context.Context, context.CancelFunc, error) {
	initConfig()
	err := config.ReadConfig("abicodec", cfgFile)

	ctx, cancelCtx := context.WithCancel(context.Background())
	ctx = log.WithLogger(ctx, logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	ctx = log.WithLogger(ctx, logrus.WithField("prefix", "abicodec"))

	config.SetupLogging(ctx)

	if err != nil {
		cancelCtx()
		return nil, nil, i18n.WrapError(ctx, err, abimsgs.MsgConfigFailed)
	}
	return ctx, cancelCtx, nil
}
