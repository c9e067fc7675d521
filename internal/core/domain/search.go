package domain

import (
	"strings"
	"time"
)

// TermSeparator separates target words in free-text input.
const TermSeparator = ","

// Result text shown by every shell.
const (
	// ResultsHeader precedes the matched paths.
	ResultsHeader = "PDFs containing the target words:"

	// NoMatchesMessage is shown when no document matched.
	NoMatchesMessage = "No PDFs found containing the target words."

	// EmptyTermWarning is shown when an empty target word will match every document.
	EmptyTermWarning = "an empty target word matches every document"
)

// SearchRequest describes one run over a folder.
type SearchRequest struct {
	// Folder is the directory whose PDFs are searched (non-recursive).
	Folder string

	// Terms are tested in order; the first match wins.
	Terms []string

	// CaseSensitive disables lower-casing of term and text.
	CaseSensitive bool
}

// NewSearchRequest builds a request from raw comma-separated input.
func NewSearchRequest(folder, rawTerms string, caseSensitive bool) (SearchRequest, error) {
	if strings.TrimSpace(rawTerms) == "" {
		return SearchRequest{}, &ValidationError{Field: "terms", Err: ErrNoTerms}
	}
	req := SearchRequest{
		Folder:        folder,
		Terms:         ParseTerms(rawTerms),
		CaseSensitive: caseSensitive,
	}
	return req, req.Validate()
}

// ParseTerms splits raw input on commas and trims each term.
// Empty terms are kept: "a,,b" yields three terms, the middle one empty.
func ParseTerms(raw string) []string {
	parts := strings.Split(raw, TermSeparator)
	terms := make([]string, len(parts))
	for i, p := range parts {
		terms[i] = strings.TrimSpace(p)
	}
	return terms
}

// Validate checks the request invariants that need no filesystem access.
func (r SearchRequest) Validate() error {
	if len(r.Terms) == 0 {
		return &ValidationError{Field: "terms", Err: ErrNoTerms}
	}
	if strings.TrimSpace(r.Folder) == "" {
		return &ValidationError{Field: "folder", Err: ErrNoFolder}
	}
	return nil
}

// HasEmptyTerm reports whether any term is empty.
// An empty term is a substring of every text, so it matches every document.
func (r SearchRequest) HasEmptyTerm() bool {
	for _, t := range r.Terms {
		if t == "" {
			return true
		}
	}
	return false
}

// DocumentResult is a PDF whose text matched at least one term.
type DocumentResult struct {
	// Path is the folder joined with the file name.
	Path string
}

// FormatResults renders results as the text shells display and export.
func FormatResults(results []DocumentResult) string {
	if len(results) == 0 {
		return NoMatchesMessage
	}
	var b strings.Builder
	b.WriteString(ResultsHeader)
	b.WriteString("\n")
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.Path)
	}
	return b.String()
}

// ResultPaths extracts the paths of results in order.
func ResultPaths(results []DocumentResult) []string {
	paths := make([]string, len(results))
	for i, r := range results {
		paths[i] = r.Path
	}
	return paths
}

// SearchRun is the state of one orchestrator call.
// It is discarded once results are delivered.
type SearchRun struct {
	// ID identifies the run in logs.
	ID string

	// Request is the validated input.
	Request SearchRequest

	// StartedAt is when the run began.
	StartedAt time.Time
}
