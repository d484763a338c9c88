package splitter

import (
	"errors"
	"strings"

	"github.com/dshills/docsplit-mcp/pkg/types"
)

// Common errors
var (
	ErrParseFailed         = errors.New("content could not be parsed")
	ErrNoStructure         = errors.New("no structural boundaries found")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrHierarchyDisabled   = errors.New("hierarchical splitting is not enabled")
)

// Splitter converts document content into an ordered list of chunks.
//
// Splitters are pure, synchronous functions of (content, config, metadata)
// and hold no shared mutable state; they are safe to run concurrently as
// long as each invocation uses its own instance. The registry instantiates
// a fresh set per selection call.
type Splitter interface {
	// Name identifies the splitter in chunk metadata and registry output.
	Name() string

	// CanHandle reports whether this splitter can process the given
	// input. fileType is a short label such as a file extension.
	CanHandle(fileType, content string) bool

	// Priority is the tie-breaking weight in [0, 100] used when several
	// splitters can handle the same input; higher wins.
	Priority() int

	// Split produces the ordered chunk list. Parse failures and
	// structural mismatches are recovered internally by cascading to a
	// more permissive splitter; empty or whitespace-only input yields an
	// empty list rather than an error.
	Split(content string, metadata map[string]any) ([]types.Chunk, error)
}

// piece is an intermediate fragment produced by a splitting algorithm
// before index assignment and metadata enrichment.
type piece struct {
	content  string
	meta     map[string]any
	complete bool
}

// base carries the configuration and shared algorithms every splitter
// builds on.
type base struct {
	name string
	cfg  types.Config
}

func newBase(name string, cfg types.Config) base {
	return base{name: name, cfg: cfg.Normalized()}
}

// Name returns the splitter identity injected into chunk metadata.
func (b *base) Name() string { return b.name }

// score computes the quality score for a chunk. Scoring starts at 1.0,
// penalizes chunks well below (-0.3) or above (-0.2) the target size,
// rewards completeness (+0.1), and clamps to [0, 1].
func (b *base) score(c *types.Chunk) float64 {
	s := 1.0
	ratio := float64(len(c.Content)) / float64(b.cfg.ChunkSize)
	if ratio < 0.3 {
		s -= 0.3
	}
	if ratio > 1.5 {
		s -= 0.2
	}
	if c.Complete {
		s += 0.1
	}
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// finalize turns raw pieces into enriched chunks: it drops empty or
// whitespace-only fragments, assigns 0-based indices, merges the caller
// metadata with per-piece tags, injects char/word counts and the splitter
// identity, and computes the quality score. Enrichment runs against the
// final content of each piece, so derived stats never go stale.
func (b *base) finalize(pieces []piece, metadata map[string]any) []types.Chunk {
	chunks := make([]types.Chunk, 0, len(pieces))
	for _, p := range pieces {
		if strings.TrimSpace(p.content) == "" {
			continue
		}
		meta := make(map[string]any, len(metadata)+len(p.meta)+3)
		for k, v := range metadata {
			meta[k] = v
		}
		for k, v := range p.meta {
			meta[k] = v
		}
		chunk := types.Chunk{
			Content:  p.content,
			Metadata: meta,
			Index:    len(chunks),
			Complete: p.complete,
		}
		meta["char_count"] = chunk.CharCount()
		meta["word_count"] = chunk.WordCount()
		meta["splitter"] = b.name
		chunk.QualityScore = b.score(&chunk)
		chunks = append(chunks, chunk)
	}
	return chunks
}

// hardSlice cuts s into fixed-size windows. It is the terminal fallback
// once no separators remain.
func hardSlice(s string, size int) []string {
	if size <= 0 || len(s) <= size {
		return []string{s}
	}
	out := make([]string, 0, len(s)/size+1)
	for len(s) > size {
		out = append(out, s[:size])
		s = s[size:]
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}

// tail returns the last n bytes of s.
func tail(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// fileTypeFromMetadata recovers the declared file type when a splitter is
// invoked directly without a preceding CanHandle call.
func fileTypeFromMetadata(metadata map[string]any) string {
	if metadata == nil {
		return ""
	}
	if v, ok := metadata["file_type"].(string); ok {
		return v
	}
	return ""
}

// normalizeFileType lowercases a file type label and strips a leading dot.
func normalizeFileType(fileType string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(fileType)), ".")
}
