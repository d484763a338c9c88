package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// configProperties describes the splitting options shared by the
// split_document and split_batch tools.
func configProperties() map[string]interface{} {
	return map[string]interface{}{
		"strategy": map[string]interface{}{
			"type":        "string",
			"description": "Splitting strategy: auto (structure-based selection), delimiter, semantic, or hierarchical",
			"enum":        []string{"auto", "delimiter", "semantic", "hierarchical"},
			"default":     "auto",
		},
		"chunk_size": map[string]interface{}{
			"type":        "integer",
			"description": "Target chunk size in characters",
			"default":     1000,
			"minimum":     1,
		},
		"chunk_overlap": map[string]interface{}{
			"type":        "integer",
			"description": "Characters of trailing context carried into the next chunk (delimiter strategy)",
			"default":     100,
			"minimum":     0,
		},
		"separators": map[string]interface{}{
			"type":        "array",
			"description": "Ordered separator list for the delimiter strategy; an empty string means hard character slicing",
			"items":       map[string]interface{}{"type": "string"},
		},
		"preserve_structure": map[string]interface{}{
			"type":        "boolean",
			"description": "If true, keep declarations, JSON values, and sections whole when they fit",
			"default":     true,
		},
		"use_sentence_boundary": map[string]interface{}{
			"type":        "boolean",
			"description": "If true, the semantic strategy merges whole sentences instead of delegating to delimiter splitting",
			"default":     true,
		},
		"semantic_threshold": map[string]interface{}{
			"type":        "number",
			"description": "Minimum chunk fill (fraction of chunk_size) before a topic boundary ends the chunk",
			"default":     0.5,
			"minimum":     0.0,
			"maximum":     1.0,
		},
		"enable_hierarchy": map[string]interface{}{
			"type":        "boolean",
			"description": "If true, produce two-level parent/child chunks",
			"default":     false,
		},
		"parent_chunk_size": map[string]interface{}{
			"type":        "integer",
			"description": "Target size for parent chunks when hierarchy is enabled",
			"default":     3000,
			"minimum":     1,
		},
	}
}

// splitDocumentTool returns the tool definition for split_document
func splitDocumentTool() mcp.Tool {
	properties := map[string]interface{}{
		"content": map[string]interface{}{
			"type":        "string",
			"description": "Raw document content to split",
		},
		"file_type": map[string]interface{}{
			"type":        "string",
			"description": "File type or language hint (e.g. 'md', 'go', 'python', 'json'); guides splitter selection",
		},
		"metadata": map[string]interface{}{
			"type":        "object",
			"description": "Caller metadata copied onto every chunk",
		},
	}
	for k, v := range configProperties() {
		properties[k] = v
	}
	return mcp.Tool{
		Name:        "split_document",
		Description: "Split a document into bounded-size chunks, preserving structure (code declarations, JSON values, markdown sections, sentences) where possible",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
			Required:   []string{"content"},
		},
	}
}

// splitBatchTool returns the tool definition for split_batch
func splitBatchTool() mcp.Tool {
	properties := map[string]interface{}{
		"tasks": map[string]interface{}{
			"type":        "array",
			"description": "Documents to split; each task is processed independently",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "string",
						"description": "Caller-assigned task identifier echoed on the result",
					},
					"content": map[string]interface{}{
						"type":        "string",
						"description": "Raw document content to split",
					},
					"file_type": map[string]interface{}{
						"type":        "string",
						"description": "File type or language hint for this document",
					},
					"metadata": map[string]interface{}{
						"type":        "object",
						"description": "Caller metadata copied onto this document's chunks",
					},
				},
				"required": []string{"content"},
			},
		},
		"max_workers": map[string]interface{}{
			"type":        "integer",
			"description": "Upper bound on concurrently processed documents (default: CPU count)",
			"minimum":     1,
		},
		"include_chunks": map[string]interface{}{
			"type":        "boolean",
			"description": "If true, include full chunk content per result; otherwise only counts",
			"default":     true,
		},
	}
	for k, v := range configProperties() {
		properties[k] = v
	}
	return mcp.Tool{
		Name:        "split_batch",
		Description: "Split multiple documents concurrently; returns one result per task, failures included",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
			Required:   []string{"tasks"},
		},
	}
}

// getStrategiesTool returns the tool definition for get_strategies
func getStrategiesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_strategies",
		Description: "List available splitting strategies, registered splitters, their priorities, and default configuration",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
