// Package translate formats every user visible message of the machine
// through a golang.org/x/text printer matched to the host locale.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

const (
	DEFAULT_LOCALE = "en-US" // Used when no locale is known.
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("brookshear: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the printer for the first matching locale, in order
// of preference. With no locales, DEFAULT_LOCALE is used.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf translates an en-US Printf() format onto a writer.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}
