// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Passbuilder using
// Cobra. It wires configuration, logging and the message catalog, then
// delegates to the `form` and `passphrase` packages. Running without a
// subcommand opens the TUI.
package cli
