// Package types provides shared type definitions for the DocSplit MCP server.
//
// This package defines the domain types used across the splitting pipeline:
// chunks, splitting configuration, and batch tasks and results.
//
// # Core Types
//
// Chunk represents one bounded fragment of a document together with its
// metadata and quality score:
//
//	chunk := types.Chunk{
//	    Content:      sectionText,
//	    Metadata:     map[string]any{"header_text": "Overview"},
//	    QualityScore: 0.9,
//	    Complete:     true,
//	}
//
// Config selects and parameterizes a splitting strategy:
//
//	cfg := types.DefaultConfig()
//	cfg.Strategy = types.StrategySemantic
//	cfg.ChunkSize = 500
//
// Callers should treat a Config as immutable once it has been handed to a
// splitter. Normalized returns a copy with defaults filled in and the
// overlap-smaller-than-size invariant enforced.
//
// # Batch Types
//
// Task and Result carry documents through the concurrent batch layer:
//
//	task := types.Task{ID: "doc-1", Content: raw, FileType: "md", Config: cfg}
//
// A Result is produced for every submitted Task, including failed ones:
//
//	if !result.Success {
//	    log.Warn("task failed", "id", result.TaskID, "error", result.Error)
//	}
//
// # Validation
//
// Chunks validate against the shared invariants (non-empty content, length
// at most twice the configured chunk size, quality score in [0, 1]):
//
//	if err := chunk.Validate(cfg.ChunkSize); err != nil {
//	    log.Warn("dropping invalid chunk", "error", err)
//	}
package types
