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

	"github.com/spf13/cobra"

	"github.com/go-ethabi/ethabi/pkg/abi"
)

func methodIDCmd() *cobra.Command {
	var event bool
	cmd := &cobra.Command{
		Use:   "methodid <signature>",
		Short: "Print the 4-byte method ID (or, with --event, the 32-byte topic-0) of a signature",
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

			var id []byte
			if event {
				id, err = e.Topic0Ctx(ctx)
			} else {
				id, err = e.GenerateIDCtx(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "0x%s\n", hex.EncodeToString(id))
			return nil
		},
	}
	cmd.Flags().BoolVar(&event, "event", false, "compute the 32-byte topic-0 of an event signature instead of a 4-byte method ID")
	return cmd
}
