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
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/spf13/cobra"

	"github.com/go-ethabi/ethabi/internal/abimsgs"
	"github.com/go-ethabi/ethabi/pkg/abi"
)

// fetchABIDocument retrieves a JSON-ABI document over HTTP(S) and builds
// the ABI it describes.
func fetchABIDocument(ctx context.Context, url string) (abi.ABI, error) {
	client := resty.New()
	var tree interface{}
	res, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, abimsgs.MsgJSONABIFetchFailed, url)
	}
	if res.IsError() {
		return nil, i18n.NewError(ctx, abimsgs.MsgJSONABIFetchFailed, url)
	}
	if err := json.Unmarshal(res.Body(), &tree); err != nil {
		return nil, i18n.WrapError(ctx, err, abimsgs.MsgJSONABIFetchFailed, url)
	}
	return abi.ParseABIDocument(ctx, tree)
}

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a JSON-ABI document over HTTP(S) and print the functions/events it defines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel, err := rootContext()
			if err != nil {
				return err
			}
			defer cancel()

			a, err := fetchABIDocument(ctx, args[0])
			if err != nil {
				return err
			}
			for _, e := range a {
				fmt.Fprintln(cmd.OutOrStdout(), e.String())
			}
			return nil
		},
	}
}
