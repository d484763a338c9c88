package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/docsplit-mcp/internal/batch"
	"github.com/dshills/docsplit-mcp/internal/splitter"
	"github.com/dshills/docsplit-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeEmptyContent  = -32001 // Content parameter is empty
	ErrorCodeInvalidConfig = -32002 // Splitting configuration rejected
	ErrorCodeEmptyBatch    = -32003 // Batch contains no tasks
)

// handleSplitDocument handles the split_document tool invocation
func (s *Server) handleSplitDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	content, ok := args["content"].(string)
	if !ok || content == "" {
		return nil, newMCPError(ErrorCodeEmptyContent, "content parameter is required and cannot be empty", map[string]interface{}{
			"param":  "content",
			"reason": "missing or empty",
		})
	}

	cfg, err := configFromArgs(args)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidConfig, "invalid configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	fileType := getStringDefault(args, "file_type", "")
	metadata, _ := args["metadata"].(map[string]interface{})

	chunks, err := splitter.Split(s.registry, content, fileType, cfg, metadata)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "splitting failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"chunk_count": len(chunks),
		"chunks":      chunksJSON(chunks),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleSplitBatch handles the split_batch tool invocation
func (s *Server) handleSplitBatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	rawTasks, ok := args["tasks"].([]interface{})
	if !ok || len(rawTasks) == 0 {
		return nil, newMCPError(ErrorCodeEmptyBatch, "tasks parameter is required and cannot be empty", map[string]interface{}{
			"param":  "tasks",
			"reason": "missing or empty",
		})
	}

	cfg, err := configFromArgs(args)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidConfig, "invalid configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	tasks := make([]types.Task, 0, len(rawTasks))
	for i, raw := range rawTasks {
		obj, ok := raw.(map[string]interface{})
		if !ok {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid task", map[string]interface{}{
				"index":  i,
				"reason": "task must be an object",
			})
		}
		content, _ := obj["content"].(string)
		id := getStringDefault(obj, "id", fmt.Sprintf("task-%d", i))
		metadata, _ := obj["metadata"].(map[string]interface{})
		tasks = append(tasks, types.Task{
			ID:       id,
			Content:  content,
			FileType: getStringDefault(obj, "file_type", ""),
			Config:   cfg,
			Metadata: metadata,
		})
	}

	proc := s.processor
	if workers := getIntDefault(args, "max_workers", 0); workers > 0 && workers != proc.Workers() {
		proc = batch.New(s.registry, &batch.Config{Workers: workers})
	}

	results := proc.ProcessBatch(ctx, tasks)

	includeChunks := getBoolDefault(args, "include_chunks", true)
	succeeded := 0
	out := make([]map[string]interface{}, 0, len(results))
	for i := range results {
		res := results[i]
		if res.Success {
			succeeded++
		}
		entry := map[string]interface{}{
			"task_id":     res.TaskID,
			"success":     res.Success,
			"chunk_count": len(res.Chunks),
			"duration_ms": res.Duration.Milliseconds(),
		}
		if res.Error != "" {
			entry["error"] = res.Error
		}
		if includeChunks && res.Success {
			entry["chunks"] = chunksJSON(res.Chunks)
		}
		out = append(out, entry)
	}

	response := map[string]interface{}{
		"task_count": len(results),
		"succeeded":  succeeded,
		"failed":     len(results) - succeeded,
		"results":    out,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStrategies handles the get_strategies tool invocation
func (s *Server) handleGetStrategies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	splitters := make([]map[string]interface{}, 0)
	for name, priority := range s.registry.Priorities() {
		splitters = append(splitters, map[string]interface{}{
			"name":     name,
			"priority": priority,
		})
	}

	defaults := types.DefaultConfig()
	response := map[string]interface{}{
		"strategies": []string{
			string(types.StrategyAuto),
			string(types.StrategyDelimiter),
			string(types.StrategySemantic),
			string(types.StrategyHierarchical),
		},
		"splitters": splitters,
		"defaults": map[string]interface{}{
			"strategy":           string(defaults.Strategy),
			"chunk_size":         defaults.ChunkSize,
			"chunk_overlap":      defaults.ChunkOverlap,
			"separators":         defaults.Separators,
			"parent_chunk_size":  defaults.ParentChunkSize,
			"semantic_threshold": defaults.SemanticThreshold,
		},
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// configFromArgs builds a splitting configuration from tool arguments,
// starting from defaults and overriding only the keys present.
func configFromArgs(args map[string]interface{}) (types.Config, error) {
	cfg := types.DefaultConfig()

	if v, ok := args["strategy"].(string); ok && v != "" {
		cfg.Strategy = types.Strategy(v)
	}
	if v, ok := args["chunk_size"]; ok {
		cfg.ChunkSize = toInt(v)
	}
	if v, ok := args["chunk_overlap"]; ok {
		cfg.ChunkOverlap = toInt(v)
	}
	if raw, ok := args["separators"].([]interface{}); ok && len(raw) > 0 {
		seps := make([]string, 0, len(raw))
		for _, s := range raw {
			str, ok := s.(string)
			if !ok {
				return cfg, fmt.Errorf("separators must be strings, got %T", s)
			}
			seps = append(seps, str)
		}
		cfg.Separators = seps
	}
	cfg.PreserveStructure = getBoolDefault(args, "preserve_structure", cfg.PreserveStructure)
	cfg.UseSentenceBoundary = getBoolDefault(args, "use_sentence_boundary", cfg.UseSentenceBoundary)
	if v, ok := args["semantic_threshold"].(float64); ok {
		cfg.SemanticThreshold = v
	}
	cfg.EnableHierarchy = getBoolDefault(args, "enable_hierarchy", cfg.EnableHierarchy)
	if v, ok := args["parent_chunk_size"]; ok {
		cfg.ParentChunkSize = toInt(v)
	}
	if v, ok := args["max_workers"]; ok {
		cfg.MaxWorkers = toInt(v)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// chunksJSON converts chunks into the wire representation.
func chunksJSON(chunks []types.Chunk) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(chunks))
	for i := range chunks {
		c := chunks[i]
		entry := map[string]interface{}{
			"content":       c.Content,
			"index":         c.Index,
			"quality_score": c.QualityScore,
			"complete":      c.Complete,
			"char_count":    c.CharCount(),
			"word_count":    c.WordCount(),
		}
		if c.ParentID != "" {
			entry["parent_id"] = c.ParentID
		}
		if len(c.Metadata) > 0 {
			entry["metadata"] = c.Metadata
		}
		out = append(out, entry)
	}
	return out
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// toInt coerces a JSON number (or a native int) to an int
func toInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
