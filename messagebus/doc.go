// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in-process fan out of committed tile events
//
// Messages are only sent after the corresponding storage batch has
// been committed.  A listener that falls behind loses messages rather
// than blocking the sender.
package messagebus
