// Package driving declares what the ocrr shells (cli, tui, mcp) may ask of
// the core: run a search, watch a folder, extract one document's text,
// export displayed results and manage settings.
//
// Implementations live in internal/core/services.
package driving
