// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Passbuilder.
//
// Usage:
//
//	go run . [flags]
//	./passbuilder [flags]
//	./passbuilder suggest five robots juggle citrus on saturday
//
// This launches the Passbuilder CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/passbuilder/ui/cli"
)

func main() {
	// Cobra already printed the error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
