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
	"os"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/spf13/cobra"

	"github.com/go-ethabi/ethabi/internal/abimsgs"
	"github.com/go-ethabi/ethabi/pkg/abi"
)

// abiFile holds the most recently loaded ABI document from a watched file,
// safe for concurrent reads from an HTTP handler while a filesystem watcher
// goroutine replaces it.
type abiFile struct {
	path    string
	current atomic.Pointer[abi.ABI]
}

func newABIFile(path string) *abiFile {
	return &abiFile{path: path}
}

func (f *abiFile) load(ctx context.Context) error {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return i18n.WrapError(ctx, err, abimsgs.MsgConfigFileNotFound, f.path)
	}
	var tree interface{}
	if err := json.Unmarshal(b, &tree); err != nil {
		return i18n.WrapError(ctx, err, abimsgs.MsgInvalidJSONABI, err)
	}
	a, err := abi.ParseABIDocument(ctx, tree)
	if err != nil {
		return err
	}
	f.current.Store(&a)
	return nil
}

func (f *abiFile) get() abi.ABI {
	a := f.current.Load()
	if a == nil {
		return nil
	}
	return *a
}

// watch reloads the file whenever it changes, until ctx is cancelled. The
// initial load happens synchronously before watch returns, so callers can
// rely on f.get() being populated as soon as watch returns a nil error.
func (f *abiFile) watch(ctx context.Context) error {
	if err := f.load(ctx); err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return i18n.WrapError(ctx, err, abimsgs.MsgWatchStartFailed, f.path)
	}
	if err := watcher.Add(f.path); err != nil {
		_ = watcher.Close()
		return i18n.WrapError(ctx, err, abimsgs.MsgWatchStartFailed, f.path)
	}
	var once sync.Once
	go func() {
		defer once.Do(func() { _ = watcher.Close() })
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				log.L(ctx).Debugf("ABI file event [%s]: %s", event.Op, event.Name)
				if err := f.load(ctx); err != nil {
					log.L(ctx).Errorf("Failed to reload ABI file %s: %s", f.path, err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.L(ctx).Errorf("ABI file watcher error: %s", err)
			}
		}
	}()
	return nil
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <path>",
		Short: "Watch a JSON-ABI file, printing the functions/events it defines after the first load and reloading it on change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel, err := rootContext()
			if err != nil {
				return err
			}
			defer cancel()

			f := newABIFile(args[0])
			if err := f.watch(ctx); err != nil {
				return err
			}
			for _, e := range f.get() {
				fmt.Fprintln(cmd.OutOrStdout(), e.String())
			}
			<-ctx.Done()
			return nil
		},
	}
}
