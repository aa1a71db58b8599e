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
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ethabi/ethabi/pkg/abi"
	"github.com/go-ethabi/ethabi/pkg/ethereum"
)

func eventCmd() *cobra.Command {
	var topicArgs []string
	var dataArg string
	var logArg string
	var skipSigCheck bool
	cmd := &cobra.Command{
		Use:   "event <signature>",
		Short: "Decode a log's topics/data against an event signature",
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

			var topics [][]byte
			var data []byte
			if logArg != "" {
				var l ethereum.LogJSONRPC
				if err := json.Unmarshal([]byte(logArg), &l); err != nil {
					return err
				}
				topics = l.TopicBytes()
				data = []byte(l.Data)
			} else {
				topics = make([][]byte, len(topicArgs))
				for i, t := range topicArgs {
					topics[i], err = hex.DecodeString(strings.TrimPrefix(t, "0x"))
					if err != nil {
						return err
					}
				}
				data, err = hex.DecodeString(strings.TrimPrefix(dataArg, "0x"))
				if err != nil {
					return err
				}
			}

			decoded, err := e.DecodeEventCtx(ctx, data, topics, abi.EventDecodeOptions{
				CheckSignature: !skipSigCheck,
			})
			if err != nil {
				return err
			}

			s := abi.NewSerializer()
			out := map[string]interface{}{"name": decoded.Name, "values": map[string]interface{}{}}
			values := out["values"].(map[string]interface{})
			for name, cv := range decoded.Values {
				v, err := s.SerializeInterfaceCtx(ctx, cv)
				if err != nil {
					return err
				}
				values[name] = v
			}

			b, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&topicArgs, "topic", nil, "a log topic, in the order they appear on the log (repeatable)")
	cmd.Flags().StringVar(&dataArg, "data", "0x", "the log's data segment")
	cmd.Flags().StringVar(&logArg, "log", "", "a full eth_getLogs-shaped JSON log object, as an alternative to --topic/--data")
	cmd.Flags().BoolVar(&skipSigCheck, "skip-signature-check", false, "do not require topic[0] to carry this event's topic-0 hash")
	return cmd
}
