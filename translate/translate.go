// Package translate localizes the simulator's error and status text.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printerOnce sync.Once
	printer     *message.Printer
)

// Printer returns the message printer for the host locale, falling back
// to en-US when the locale cannot be determined.
func Printer() *message.Printer {
	printerOnce.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("bussim: locale: %v", err)
		}

		if len(locales) == 0 {
			locales = []string{language.AmericanEnglish.String()}
		}

		printer = message.NewPrinter(message.MatchLanguage(locales...))
	})

	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}
