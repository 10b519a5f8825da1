// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
)

var (
	certificateOnce sync.Once
	certificatePEM  string
	keyPEM          string
)

// CertificatePair - a self-signed localhost certificate and its key in PEM
//
// generated once per test binary
func CertificatePair() (string, string) {
	certificateOnce.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair("tilesd test certificate", validUntil, false, []string{"127.0.0.1"})
		if nil != err {
			panic(err)
		}
		certificatePEM = string(cert)
		keyPEM = string(key)
	})
	return certificatePEM, keyPEM
}
