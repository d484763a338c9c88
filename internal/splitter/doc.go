// Package splitter divides raw document content into bounded-size chunks
// for embedding and retrieval, preserving structural integrity (function
// bodies, JSON values, markdown sections, sentences) wherever size allows.
//
// # Capability Contract
//
// Every splitter implements the same small interface:
//
//	type Splitter interface {
//	    Name() string
//	    CanHandle(fileType, content string) bool
//	    Priority() int
//	    Split(content string, metadata map[string]any) ([]types.Chunk, error)
//	}
//
// Splitters are pure functions of (content, config, metadata). The
// registry creates a fresh instance per selection call, so instances never
// share state across invocations.
//
// # Splitter Set
//
// In ascending priority order:
//
//   - Hierarchical (5): opt-in two-level parent/child meta-splitter
//   - Delimiter (10): recursive separator descent, universal fallback
//   - Semantic (50): sentence merging with CJK-aware boundary detection
//   - Markdown (70): heading-delimited sections via the goldmark AST
//   - Code (80): declaration units via go/ast, regex patterns otherwise
//   - JSON (90): structural splitting of parseable JSON via gjson
//
// # Selection
//
// Auto-selection filters the registered set by CanHandle and picks the
// highest priority; ties break to the lexicographically smallest
// registration name. Strategy-based selection goes through the factory:
//
//	reg := splitter.DefaultRegistry()
//	chunks, err := splitter.Split(reg, content, "md", types.DefaultConfig(), nil)
//
// # Sizing Model
//
// ChunkSize is a hard ceiling for the delimiter splitter and a
// floor-plus-safety-ceiling for the structural splitters: a natural unit
// (declaration, JSON element, markdown section) smaller than the chunk
// size is always kept whole, and only an oversized unit is split further.
// A chunk produced by forcing a split mid-unit carries Complete=false.
//
// # Quality Scoring
//
// Every chunk is scored in [0, 1]: scoring starts at 1.0, subtracts 0.3
// when the chunk is under 30% of the target size, subtracts 0.2 when it is
// over 150%, adds 0.1 for completeness, and clamps.
//
// # Error Handling
//
// Parse failures and structural mismatches are recovered internally by
// cascading toward the delimiter splitter, which succeeds for any
// non-empty input. Empty or whitespace-only input yields an empty chunk
// list, never an error.
package splitter
