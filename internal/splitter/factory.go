package splitter

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dshills/docsplit-mcp/pkg/types"
)

// logger writes factory warnings to stderr; stdout is reserved for the MCP
// protocol.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "splitter"})

// NewSplitter resolves a strategy to a splitter instance. The factory is
// stateless; unknown strategy values degrade to auto-select with a warning
// rather than failing. A nil registry means the default set.
func NewSplitter(cfg types.Config, reg *Registry, fileType, content string) Splitter {
	if reg == nil {
		reg = DefaultRegistry()
	}
	switch cfg.Strategy {
	case types.StrategyDelimiter:
		return NewDelimiter(cfg)
	case types.StrategySemantic:
		return NewSemantic(cfg)
	case types.StrategyHierarchical:
		cfg.EnableHierarchy = true
		h := NewHierarchical(cfg, reg)
		h.CanHandle(fileType, content)
		return h
	case types.StrategyAuto, "":
		return reg.Best(fileType, content, cfg)
	default:
		logger.Warn("unknown strategy, using auto-select", "strategy", cfg.Strategy)
		return reg.Best(fileType, content, cfg)
	}
}

// Split is the single-document entry point: validate the configuration,
// resolve a splitter, run it. The file type is also threaded through the
// metadata so splitters invoked without a CanHandle call can recover it.
func Split(reg *Registry, content, fileType string, cfg types.Config, metadata map[string]any) ([]types.Chunk, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}
	meta := make(map[string]any, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	if fileType != "" {
		meta["file_type"] = fileType
	}
	return NewSplitter(cfg, reg, fileType, content).Split(content, meta)
}
