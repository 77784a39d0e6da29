// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n holds the user-facing message catalog for Passbuilder.
// It uses the go-i18n library to load the embedded YAML locale file so the
// CLI and the TUI render the same labels, steps and status messages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML message files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all the loaded messages from the locale files.
var bundle *i18n.Bundle

// localizer resolves message IDs against the bundle.
var localizer *i18n.Localizer

// Init loads the embedded catalog. It is safe to call more than once.
func Init() error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return fmt.Errorf("read embedded locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return fmt.Errorf("read locale %s: %w", f.Name(), err)
		}
		if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
			return fmt.Errorf("parse locale %s: %w", f.Name(), err)
		}
	}

	bundle = b
	localizer = i18n.NewLocalizer(bundle, language.English.String())
	return nil
}

// T translates a message by its ID. Extra args are applied with fmt.Sprintf.
// A missing ID is returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		if err := Init(); err != nil {
			return messageID
		}
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
