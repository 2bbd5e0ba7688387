// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user visible messages in the caller's locale.
package translate

import (
	"log"
	"os"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LocaleEnv overrides the detected locale when set.
const LocaleEnv = "JITASM_LANG"

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// Locales returns the preferred locales, most preferred first.
func Locales() (locales []string) {
	if env := os.Getenv(LocaleEnv); len(env) != 0 {
		return []string{env}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("jitasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return
}

func load() {
	printer = message.NewPrinter(message.MatchLanguage(Locales()...))
}

// SetLanguage forces the message language, mostly for tests.
func SetLanguage(tag language.Tag) {
	printerOnce.Do(func() {})
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(load)
	return printer.Sprintf(key, args...)
}
