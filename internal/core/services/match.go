package services

import "strings"

// matchTerms returns the index of the first term contained in text.
// Containment is exact substring membership; when caseSensitive is false
// both term and text are lower-cased first. An empty term always matches.
func matchTerms(text string, terms []string, caseSensitive bool) (int, bool) {
	if !caseSensitive {
		text = strings.ToLower(text)
	}
	for i, term := range terms {
		if !caseSensitive {
			term = strings.ToLower(term)
		}
		if strings.Contains(text, term) {
			return i, true
		}
	}
	return -1, false
}
