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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ethabi/ethabi/pkg/abi"
)

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <signature> <hex-data>",
		Short: "Decode ABI call data (with its leading method ID) against a function signature",
		Args:  cobra.ExactArgs(2),
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

			b, err := hex.DecodeString(strings.TrimPrefix(args[1], "0x"))
			if err != nil {
				return err
			}

			cv, err := e.DecodeABIInputsCtx(ctx, b)
			if err != nil {
				return err
			}

			out, err := abi.NewSerializer().SerializeJSONCtx(ctx, cv)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
