// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tilesd/counter"
	"github.com/bitmark-inc/tilesd/ledger"
	"github.com/bitmark-inc/tilesd/tile"
)

// query defaults for transfers
const (
	defaultCount = 10
	maximumCount = 100
)

// Handler - HTTP entry points
type Handler interface {
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Transfers(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	engine             tile.Handle
	chain              string
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	count              counter.Counter
	maximumConnections uint64
}

// New - create HTTP handlers over an RPC server and the tile engine
func New(
	log *logger.L,
	server *rpc.Server,
	engine tile.Handle,
	chain string,
	start time.Time,
	version string,
	maximumConnections uint64,
) Handler {
	return &handler{
		log:                log,
		server:             server,
		engine:             engine,
		chain:              chain,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// SetAllow - CIDR access lists per endpoint
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// adapt an HTTP request body to the RPC codec
type connection struct {
	in  io.Reader
	out io.Writer
}

func (c *connection) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *connection) Write(d []byte) (int, error) { return c.out.Write(d) }
func (c *connection) Close() error                { return nil }

// Root - anything not matched
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - a single JSON-RPC call carried in a POST body
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.IncrementBelow(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	// status is written only after the call completes
	var reply bytes.Buffer
	codec := jsonrpc.NewServerCodec(&connection{in: r.Body, out: &reply})
	err := h.server.ServeRequest(codec)
	if nil != err {
		h.log.Debugf("rpc request error: %s", err)
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if _, err := reply.WriteTo(w); nil != err {
		h.log.Debugf("rpc reply write error: %s", err)
	}
}

// Details - node status and protocol constants
// (restricted to allow["details"])
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.allowed("details", r) {
		sendForbidden(w)
		return
	}

	if !h.count.IncrementBelow(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	type reply struct {
		Chain   string     `json:"chain"`
		RPCs    uint64     `json:"rpcs"`
		Version string     `json:"version"`
		Uptime  string     `json:"uptime"`
		Tiles   *tile.Info `json:"tiles"`
	}

	sendReply(w, reply{
		Chain:   h.chain,
		RPCs:    h.count.Uint64(),
		Version: h.version,
		Uptime:  time.Since(h.start).String(),
		Tiles:   h.engine.Info(),
	})
}

// Transfers - journaled payment transfers
// (restricted to allow["transfers"])
//
// query parameters:
//   start=<uint64>   [first sequence number  default: 0]
//   count=<int>      [1..100  default: 10]
func (h *handler) Transfers(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.allowed("transfers", r) {
		sendForbidden(w)
		return
	}

	if !h.count.IncrementBelow(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	_ = r.ParseForm()

	start, err := strconv.ParseUint(r.Form.Get("start"), 10, 64)
	if nil != err {
		start = 0
	}

	count := defaultCount
	n, err := strconv.Atoi(r.Form.Get("count"))
	if nil == err && n >= 1 && n <= maximumCount {
		count = n
	}

	records, err := h.engine.Transfers(start, count)
	if nil != err {
		h.log.Errorf("transfers: start: %d  error: %s", start, err)
		sendInternalServerError(w)
		return
	}
	if nil == records {
		records = []ledger.Record{}
	}

	sendReply(w, records)
}

func (h *handler) allowed(path string, r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if nil == err {
		if ip := net.ParseIP(host); nil != ip {
			for _, cidr := range h.allow[path] {
				if cidr.Contains(ip) {
					return true
				}
			}
		}
	}
	h.log.Warnf("deny access: %q to: %s", r.RemoteAddr, path)
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// JSON error body
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
