// Package language normalizes the language hint handed to the transcription
// engine. The engine takes ISO 639-1 codes; config and flags may carry full
// words ("english") or the special value "auto".
package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Auto is the sentinel requesting engine-side language detection.
const Auto = "auto"

// Word forms accepted in config for the languages the engine is commonly
// pointed at. Anything else must already be a valid BCP 47 / ISO 639 tag.
var wordForms = map[string]string{
	"english":    "en",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"japanese":   "ja",
	"korean":     "ko",
	"chinese":    "zh",
	"russian":    "ru",
	"dutch":      "nl",
	"polish":     "pl",
	"swedish":    "sv",
	"danish":     "da",
	"norwegian":  "no",
	"finnish":    "fi",
}

// Normalize maps a raw language value to the code passed to the engine.
// Empty input and Auto both yield the empty string, meaning "no hint".
func Normalize(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" || value == Auto {
		return ""
	}
	if code, ok := wordForms[value]; ok {
		return code
	}
	return value
}

// Validate rejects language values the engine would choke on. Auto and
// empty are always valid; everything else must normalize to a parseable
// language tag with a known base language.
func Validate(raw string) error {
	code := Normalize(raw)
	if code == "" {
		return nil
	}
	tag, err := language.Parse(code)
	if err != nil {
		return fmt.Errorf("language %q: %w", raw, err)
	}
	if base, conf := tag.Base(); conf == language.No || base.String() == "und" {
		return fmt.Errorf("language %q: unknown base language", raw)
	}
	return nil
}
