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

package abicodec

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ethabi/ethabi/pkg/abi"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <signature>",
		Short: "Parse a human-readable signature and print its Entry as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel, err := rootContext()
			if err != nil {
				return err
			}
			defer cancel()

			sig, err := resolveSignature(ctx, args[0])
			if err != nil {
				return err
			}
			e, err := abi.Parse(ctx, sig)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(e, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}
