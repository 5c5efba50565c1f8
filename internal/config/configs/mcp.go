package configs

// MCP selects how the MCP server is exposed. Stdio is the default and
// suits subprocess use; http serves the streamable HTTP transport on
// the configured HTTP port.
type MCP struct {
	// Transport is either "stdio" or "http".
	Transport string `env:"TRANSPORT" envDefault:"stdio"`
}
