package splitter

import (
	"strings"

	"github.com/dshills/docsplit-mcp/pkg/types"
)

// Semantic splits any text at sentence boundaries and merges sentences
// greedily, preferring to flush at semantic boundaries (topic-transition
// markers, embedded newlines, abrupt sentence-length changes).
type Semantic struct {
	base
	fallback *Delimiter
}

// NewSemantic creates a semantic splitter for the given configuration.
func NewSemantic(cfg types.Config) *Semantic {
	return &Semantic{base: newBase("semantic", cfg), fallback: NewDelimiter(cfg)}
}

// CanHandle reports true for any non-empty text.
func (s *Semantic) CanHandle(fileType, content string) bool {
	return strings.TrimSpace(content) != ""
}

// Priority returns a mid-range weight: preferred over the delimiter
// splitter, outranked by the structure-aware splitters.
func (s *Semantic) Priority() int { return 50 }

// Split merges sentences up to the chunk size. A semantic boundary is only
// honored once the accumulator holds at least the configured fraction of
// the chunk size (SemanticThreshold, default 50%), which avoids emitting
// many tiny chunks. If accumulation exceeds the chunk size before any
// boundary is found, the chunk is force-flushed and marked incomplete.
func (s *Semantic) Split(content string, metadata map[string]any) ([]types.Chunk, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}
	if !s.cfg.UseSentenceBoundary {
		return s.fallback.Split(content, metadata)
	}

	var sentences []string
	for _, paragraph := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(paragraph) == "" {
			continue
		}
		sentences = append(sentences, splitSentences(paragraph)...)
	}

	minFill := int(float64(s.cfg.ChunkSize) * s.cfg.SemanticThreshold)
	pieces := make([]piece, 0, len(sentences))
	var acc []string
	accLen := 0
	flush := func(complete bool) {
		if len(acc) == 0 {
			return
		}
		pieces = append(pieces, piece{content: strings.Join(acc, " "), complete: complete})
		acc, accLen = nil, 0
	}

	for i, sentence := range sentences {
		// A sentence that alone exceeds the chunk size has no usable
		// sentence boundary; hand it to the delimiter descent.
		if len(sentence) > s.cfg.ChunkSize {
			flush(true)
			pieces = append(pieces, forceIncomplete(s.fallback.split(sentence, s.cfg.Separators))...)
			continue
		}
		if accLen > 0 {
			if i > 0 && isSemanticBoundary(sentences[i-1], sentence) && accLen >= minFill {
				flush(true)
			} else if accLen+1+len(sentence) > s.cfg.ChunkSize {
				flush(false)
			}
		}
		if accLen > 0 {
			accLen++
		}
		acc = append(acc, sentence)
		accLen += len(sentence)
	}
	flush(true)

	return s.finalize(pieces, metadata), nil
}

// isSemanticBoundary reports whether a merge boundary between two adjacent
// sentences should be preferred: the next sentence opens with a topic
// marker, either sentence spans a paragraph-internal newline, or the
// length ratio between them is above 2 or below 0.5.
func isSemanticBoundary(prev, next string) bool {
	if startsWithTopicMarker(next) {
		return true
	}
	if strings.Contains(prev, "\n") || strings.Contains(next, "\n") {
		return true
	}
	if len(prev) == 0 || len(next) == 0 {
		return false
	}
	ratio := float64(len(prev)) / float64(len(next))
	return ratio > 2 || ratio < 0.5
}

// forceIncomplete marks delimiter-descent pieces as forced splits.
func forceIncomplete(pieces []piece) []piece {
	for i := range pieces {
		pieces[i].complete = false
	}
	return pieces
}
