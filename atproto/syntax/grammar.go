package syntax

import (
	"fmt"
	"regexp"
)

// Grammars for the simple identifier types. Length limits are checked before matching.
var (
	didGrammar       = regexp.MustCompile(`^did:[a-z]+:[a-zA-Z0-9._:%-]*[a-zA-Z0-9._-]$`)
	handleGrammar    = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)
	nsidGrammar      = regexp.MustCompile(`^[a-zA-Z]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+(\.[a-zA-Z]([a-zA-Z0-9]{0,62})?)$`)
	recordKeyGrammar = regexp.MustCompile(`^[a-zA-Z0-9_~.:-]+$`)
	// BCP-47, loosely: a primary tag and any number of subtags, with no normalization
	languageGrammar = regexp.MustCompile(`^(i|[a-z]{2,3})(-[a-zA-Z0-9]+)*$`)
)

// the checks every simple identifier starts with: non-empty, within maxLen bytes, and matching the grammar
func checkGrammar(typ, raw string, maxLen int, grammar *regexp.Regexp) error {
	switch {
	case raw == "":
		return malformed(typ, raw, "empty string")
	case len(raw) > maxLen:
		return malformed(typ, raw, fmt.Sprintf("longer than %d characters", maxLen))
	case !grammar.MatchString(raw):
		return malformed(typ, raw, "does not match "+typ+" syntax")
	}
	return nil
}
