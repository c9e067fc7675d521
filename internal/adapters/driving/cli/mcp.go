package cli

import (
	"github.com/spf13/cobra"

	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/mcp"
	"github.com/Uadhikari111/OCR-Pdf/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC and exposes the tools
search_pdfs and extract_text, and the resource ocrr://settings.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "ocrr": {
        "command": "/path/to/ocrr",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Search:   searchService,
		Text:     textService,
		Settings: settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if err := checkTools(); err != nil {
		logger.Warn("%v", err)
	}

	return server.Run(commandContext(cmd))
}
