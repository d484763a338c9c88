package types

import (
	"strings"
)

// Chunk represents one bounded fragment of a document, enriched with
// metadata and a quality score, ready for embedding and retrieval.
type Chunk struct {
	// Content is the chunk text. Structural splitters re-serialize their
	// units, so content is not guaranteed to be a byte-exact slice of the
	// original document.
	Content string

	// Metadata is an open key/value map populated by the producing
	// splitter (char_count, word_count, splitter, header_text, ...).
	Metadata map[string]any

	// Index is the 0-based position within a single splitter run. It is
	// not globally unique across the merged output of hierarchical runs.
	Index int

	// ParentID is a weak reference to the synthetic identifier of the
	// parent chunk produced in the same hierarchical pass. Empty outside
	// hierarchical runs.
	ParentID string

	// QualityScore is in [0, 1].
	QualityScore float64

	// Complete is false exactly when the chunk was produced by forcing a
	// split mid-unit rather than at a natural boundary.
	Complete bool
}

// CharCount returns the number of bytes in the chunk content.
func (c *Chunk) CharCount() int {
	return len(c.Content)
}

// WordCount returns the number of whitespace-delimited words in the content.
func (c *Chunk) WordCount() int {
	return len(strings.Fields(c.Content))
}

// Validate checks the chunk against the shared invariants. A chunk is
// invalid if its content is empty or whitespace-only, or if its length
// exceeds twice the configured chunk size (a defensive ceiling independent
// of the producing splitter's own logic).
func (c *Chunk) Validate(chunkSize int) error {
	if strings.TrimSpace(c.Content) == "" {
		return ErrEmptyChunk
	}
	if chunkSize > 0 && len(c.Content) > 2*chunkSize {
		return ErrChunkTooLarge
	}
	if c.QualityScore < 0 || c.QualityScore > 1 {
		return ErrInvalidQualityScore
	}
	return nil
}

// CloneMetadata returns a shallow copy of the metadata map, never nil.
func (c *Chunk) CloneMetadata() map[string]any {
	out := make(map[string]any, len(c.Metadata))
	for k, v := range c.Metadata {
		out[k] = v
	}
	return out
}
