package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

// SearchInput is the input schema for the search_pdfs tool.
type SearchInput struct {
	Folder        string `json:"folder" jsonschema:"directory whose PDFs are searched (not recursive)"`
	Terms         string `json:"terms" jsonschema:"comma-separated target words; a PDF matches if it contains any of them"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"match letter case exactly (default false)"`
}

// SearchOutput is the output schema for the search_pdfs tool.
type SearchOutput struct {
	Paths   []string `json:"paths"`
	Count   int      `json:"count"`
	Text    string   `json:"text"`
	Warning string   `json:"warning,omitempty"`
}

// ExtractInput is the input schema for the extract_text tool.
type ExtractInput struct {
	Path string `json:"path" jsonschema:"path of the PDF to OCR"`
}

// ExtractOutput is the output schema for the extract_text tool.
type ExtractOutput struct {
	Path string `json:"path"`
	Text string `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_pdfs",
		Description: "OCR every PDF in a folder and list those containing any of the target words",
	}, s.handleSearch)

	if s.ports.Text != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "extract_text",
			Description: "Return the OCR text of a single PDF",
		}, s.handleExtract)
	}
}

// handleSearch handles the search_pdfs tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	req, err := domain.NewSearchRequest(input.Folder, input.Terms, input.CaseSensitive)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	results, err := s.ports.Search.Search(ctx, req, nil)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Paths: domain.ResultPaths(results),
		Count: len(results),
		Text:  domain.FormatResults(results),
	}
	if req.HasEmptyTerm() {
		output.Warning = domain.EmptyTermWarning
	}

	return nil, output, nil
}

// handleExtract handles the extract_text tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	if s.ports.Text == nil {
		return nil, ExtractOutput{}, ErrNoTextService
	}

	text, err := s.ports.Text.Extract(ctx, input.Path)
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	return nil, ExtractOutput{Path: input.Path, Text: text}, nil
}
