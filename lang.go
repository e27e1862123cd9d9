package main

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var langPrinter = message.NewPrinter(language.English)

var supportedLanguages = map[string]language.Tag{
	"english":  language.English,
	"italiano": language.Italian,
}

// Translations keyed by the English source string. English needs no
// catalog: an unknown key prints as itself.
var italianStrings = map[string]string{
	"Offline":                           "Offline",
	"Server is offline":                 "Server offline",
	"Connection Failed":                 "Connessione Fallita",
	"Disconnected":                      "Disconnesso",
	"Server":                            "Server",
	"Position":                          "Posizione",
	"Players":                           "Giocatori",
	"Level":                             "Livello",
	"Color":                             "Colore",
	"Connected":                         "Connesso",
	"Received":                          "Ricevuti",
	"Press Enter to send, ESC to close": "Premi Invio per inviare, ESC per chiudere",
	"Waiting for server...":             "In attesa del server...",
}

func initLanguage(name string) {
	for key, text := range italianStrings {
		if err := message.SetString(language.Italian, key, text); err != nil {
			logDebug("set translation %q: %v", key, err)
		}
	}
	tag, ok := supportedLanguages[name]
	if !ok {
		tag = language.English
	}
	langPrinter = message.NewPrinter(tag)
}

func tr(key string) string {
	return langPrinter.Sprintf(key)
}

var titleCaser = cases.Title(language.English)

// colorDisplayName renders a wire color name for the HUD.
func colorDisplayName(name string) string {
	return titleCaser.String(name)
}
