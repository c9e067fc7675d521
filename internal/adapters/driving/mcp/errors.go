// Package mcp provides an MCP (Model Context Protocol) server adapter for ocrr.
// It lets AI assistants search folders of scanned PDFs through ocrr's OCR pipeline.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrNoTextService is returned by extract_text when no text service is configured.
var ErrNoTextService = errors.New("mcp: text extraction is not configured")
