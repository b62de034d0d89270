package parser

import (
	"regexp"
	"strings"
)

// businessSuffixes mark records that belong to companies or trusts rather
// than people; such names are skipped entirely.
var businessSuffixes = []string{
	"LLC", "INC", "CORP", "LTD", "CO", "COMPANY", "TRUST", "TR", "REV TR", "LIV TR", "FAM TR",
}

// businessWords are filler tokens stripped from personal names.
var businessWords = map[string]bool{
	"LIV": true, "TR": true, "REV": true, "TRUST": true, "LLC": true, "INC": true,
	"CORP": true, "FAM": true, "ETAL": true, "III": true, "JR": true, "SR": true,
}

var (
	titleRe      = regexp.MustCompile(`\b(MR|MRS|MS|DR|PROF|REV)\.?\s*`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	ampersandRe  = regexp.MustCompile(`[&]+`)
)

// CleanName standardizes a raw owner name to "FIRST LAST". Business and trust
// names return an empty string. "LAST, FIRST" is swapped, joint owners
// ("A & B") keep only the first person, and filler tokens (JR, TR, ETAL, ...)
// are dropped.
func CleanName(raw string) string {
	if IsMissing(raw) {
		return ""
	}

	name := strings.ToUpper(strings.TrimSpace(raw))

	for _, suffix := range businessSuffixes {
		if strings.HasSuffix(name, suffix) || strings.Contains(name, " "+suffix) {
			return ""
		}
	}

	name = titleRe.ReplaceAllString(name, "")
	name = ampersandRe.ReplaceAllString(name, " & ")
	name = strings.TrimSpace(whitespaceRe.ReplaceAllString(name, " "))

	if comma := strings.Index(name, ","); comma >= 0 {
		last := strings.TrimSpace(name[:comma])
		first := strings.TrimSpace(name[comma+1:])

		if idx := strings.Index(first, " & "); idx >= 0 {
			first = strings.TrimSpace(first[:idx])
		}

		firstWords := strings.Fields(first)
		if len(firstWords) == 0 {
			return ""
		}
		lastWords := strings.Fields(last)
		if len(lastWords) == 0 {
			return firstWords[0]
		}
		return firstWords[0] + " " + lastWords[0]
	}

	var filtered []string
	for _, part := range strings.Fields(name) {
		if !businessWords[part] {
			filtered = append(filtered, part)
		}
	}

	full := strings.Join(filtered, " ")
	if idx := strings.Index(full, " & "); idx >= 0 {
		filtered = strings.Fields(full[:idx])
	}

	const fullNameParts = 2
	switch {
	case len(filtered) >= fullNameParts:
		return filtered[0] + " " + filtered[len(filtered)-1]
	case len(filtered) == 1:
		return filtered[0]
	}

	return ""
}
