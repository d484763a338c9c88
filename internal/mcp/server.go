package mcp

import (
	"context"
	"os"
	"strconv"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/docsplit-mcp/internal/batch"
	"github.com/dshills/docsplit-mcp/internal/splitter"
)

const (
	// ServerName is the MCP server name
	ServerName = "docsplit-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Environment variables honored at startup.
const (
	EnvMaxWorkers = "DOCSPLIT_MAX_WORKERS" // batch pool size
	EnvCacheSize  = "DOCSPLIT_CACHE_SIZE"  // split result cache entries
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp       *server.MCPServer
	registry  *splitter.Registry
	processor *batch.Processor
}

// NewServer creates a new MCP server instance
func NewServer() (*Server, error) {
	reg := splitter.DefaultRegistry()
	proc := batch.New(reg, &batch.Config{
		Workers:   intFromEnv(EnvMaxWorkers),
		CacheSize: intFromEnv(EnvCacheSize),
	})

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:       mcpServer,
		registry:  reg,
		processor: proc,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(splitDocumentTool(), s.handleSplitDocument)
	s.mcp.AddTool(splitBatchTool(), s.handleSplitBatch)
	s.mcp.AddTool(getStrategiesTool(), s.handleGetStrategies)
}

// intFromEnv reads a positive integer from the environment; anything
// missing or malformed means zero, leaving the default in place.
func intFromEnv(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
