// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/tilesd/fault"
	"github.com/bitmark-inc/tilesd/rpc/certificate"
	"github.com/bitmark-inc/tilesd/tile"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "fingerprint", "fp":
		return false // defer processing until configuration is read

	case "tile", "t", "genesis", "g", "transfers", "x":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)     - SHA3-256 of the client RPC certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  tile TOKEN                 (t)      - display the stored fingerprint of a tile\n")
		fmt.Printf("\n")

		fmt.Printf("  genesis TOKEN              (g)      - display the canvas a tile was minted with\n")
		fmt.Printf("\n")

		fmt.Printf("  transfers [START [COUNT]]  (x)      - dump journaled payment transfers as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		redacted := *options
		redacted.ClientRPC.PrivateKey = "<redacted>"
		redacted.HttpsRPC.PrivateKey = "<redacted>"
		printJSON(os.Stdout, redacted)

	case "fingerprint", "fp":
		fin, err := certificateFingerprint(options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		fmt.Printf("%x\n", fin)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the engine and its database are available so these commands can
// inspect the stored tiles
func processDataCommand(engine tile.Handle, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "tile", "t":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing token id argument")
		}
		digest, err := engine.Fingerprint(arguments[0])
		if nil != err {
			exitwithstatus.Message("tile: %q  error: %s", arguments[0], err)
		}
		fmt.Printf("%s\n", digest)

	case "genesis", "g":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing token id argument")
		}
		canvas, err := engine.Genesis(arguments[0])
		if nil != err {
			exitwithstatus.Message("tile: %q  error: %s", arguments[0], err)
		}
		printJSON(os.Stdout, canvas)

	case "transfers", "x":
		start := uint64(0)
		count := 100
		var err error
		if len(arguments) > 0 {
			start, err = strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in start: %s", err)
			}
		}
		if len(arguments) > 1 {
			count, err = strconv.Atoi(arguments[1])
			if nil != err || count < 1 {
				exitwithstatus.Message("error: invalid count: %q", arguments[1])
			}
		}
		records, err := engine.Transfers(start, count)
		if nil != err {
			exitwithstatus.Message("transfers error: %s", err)
		}
		printJSON(os.Stdout, records)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

func certificateFingerprint(options *Configuration) ([32]byte, error) {
	rest := []byte(options.ClientRPC.Certificate)
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if nil == block {
			return [32]byte{}, fault.ErrCertificateFileNotFound
		}
		if "CERTIFICATE" == block.Type {
			return certificate.Fingerprint(block.Bytes), nil
		}
	}
}

func printJSON(w io.Writer, message interface{}) {
	b, err := json.Marshal(message)
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	_ = json.Indent(&out, b, "", "  ")
	_, _ = out.WriteTo(w)
	_, _ = io.WriteString(w, "\n")
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
