// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 STA Travel

package server

import "errors"

var (
	errNoServerAddress = errors.New("no server address configured")
)
