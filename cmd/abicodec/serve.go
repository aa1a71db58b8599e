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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/spf13/cobra"

	"github.com/go-ethabi/ethabi/internal/abiconfig"
	"github.com/go-ethabi/ethabi/pkg/abi"
)

// codecServer is a minimal REST facade over the three codec operations a
// remote caller most often needs, trimmed from a full JSON-RPC surface
// down to three routes: a signature is always supplied as a path segment,
// so no server-side ABI document state is required.
type codecServer struct {
	router *mux.Router
}

func newCodecServer() *codecServer {
	s := &codecServer{router: mux.NewRouter()}
	s.router.HandleFunc("/parse/{signature}", s.handleParse).Methods(http.MethodGet)
	s.router.HandleFunc("/encode/{signature}", s.handleEncode).Methods(http.MethodPost)
	s.router.HandleFunc("/decode/{signature}", s.handleDecode).Methods(http.MethodPost)
	return s
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *codecServer) handleParse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sig := mux.Vars(r)["signature"]
	e, err := abi.Parse(ctx, sig)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *codecServer) handleEncode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sig := mux.Vars(r)["signature"]
	e, err := abi.Parse(ctx, sig)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var values interface{}
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cv, err := e.Inputs.ParseExternalDataCtx(ctx, values)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	data, err := e.EncodeCallDataCtx(ctx, cv)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"data": "0x" + hex.EncodeToString(data)})
}

type decodeRequest struct {
	Data string `json:"data"`
}

func (s *codecServer) handleDecode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sig := mux.Vars(r)["signature"]
	e, err := abi.Parse(ctx, sig)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var req decodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	b, err := hex.DecodeString(strings.TrimPrefix(req.Data, "0x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cv, err := e.DecodeABIInputsCtx(ctx, b)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	out, err := abi.NewSerializer().SerializeInterfaceCtx(ctx, cv)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the codec's parse/encode/decode operations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel, err := rootContext()
			if err != nil {
				return err
			}
			defer cancel()

			addr := fmt.Sprintf("%s:%d", config.GetString(abiconfig.ServeAddress), config.GetInt(abiconfig.ServePort))
			srv := &http.Server{Addr: addr, Handler: newCodecServer().router}

			go func() {
				<-ctx.Done()
				_ = srv.Close()
			}()

			log.L(ctx).Infof("Listening on %s", addr)
			err = srv.ListenAndServe()
			if err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
}
