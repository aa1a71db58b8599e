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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ethabi/ethabi/pkg/abi"
)

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <signature> <json-values>",
		Short: "Encode JSON input values as ABI call data, prefixed with the function's method ID",
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

			var values interface{}
			if err := json.Unmarshal([]byte(args[1]), &values); err != nil {
				return err
			}

			cv, err := e.Inputs.ParseExternalDataCtx(ctx, values)
			if err != nil {
				return err
			}

			data, err := e.EncodeCallDataCtx(ctx, cv)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "0x%s\n", hex.EncodeToString(data))
			return nil
		},
	}
}
