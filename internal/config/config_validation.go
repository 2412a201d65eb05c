// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 STA Travel

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants every service binary relies on at startup. Backend-specific
// requirements (a DSN, a catalogue bucket) are checked by the binary that
// actually uses that backend, since not every service needs every section.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
