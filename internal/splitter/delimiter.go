package splitter

import (
	"strings"

	"github.com/dshills/docsplit-mcp/pkg/types"
)

// Delimiter recursively applies a priority-ordered separator list. It is
// the universal fallback: lowest priority, succeeds for any non-empty
// input, and the only splitter that injects chunk overlap.
type Delimiter struct {
	base
}

// NewDelimiter creates a delimiter splitter for the given configuration.
func NewDelimiter(cfg types.Config) *Delimiter {
	return &Delimiter{base: newBase("delimiter", cfg)}
}

// CanHandle reports true for any non-empty input.
func (d *Delimiter) CanHandle(fileType, content string) bool {
	return strings.TrimSpace(content) != ""
}

// Priority returns the lowest weight among the content splitters.
func (d *Delimiter) Priority() int { return 10 }

// Split chunks content by recursive separator descent, then injects the
// configured overlap by prepending the tail of each previous raw chunk.
func (d *Delimiter) Split(content string, metadata map[string]any) ([]types.Chunk, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}
	raw := d.split(content, d.cfg.Separators)
	if d.cfg.ChunkOverlap > 0 {
		withOverlap := make([]piece, len(raw))
		for i, p := range raw {
			withOverlap[i] = p
			if i > 0 {
				withOverlap[i].content = tail(raw[i-1].content, d.cfg.ChunkOverlap) + p.content
			}
		}
		raw = withOverlap
	}
	return d.finalize(raw, metadata), nil
}

// split applies the separator at the head of the list, greedily
// accumulating consecutive parts up to the chunk size. Oversized parts
// recurse into the remaining separators; once the terminal "" is reached,
// content is hard-sliced into fixed windows.
func (d *Delimiter) split(content string, seps []string) []piece {
	if len(content) <= d.cfg.ChunkSize {
		return []piece{{content: content, complete: true}}
	}
	if len(seps) == 0 || seps[0] == "" {
		slices := hardSlice(content, d.cfg.ChunkSize)
		out := make([]piece, len(slices))
		for i, s := range slices {
			out[i] = piece{content: s}
		}
		return out
	}

	sep, rest := seps[0], seps[1:]
	parts := strings.Split(content, sep)
	out := make([]piece, 0, len(parts))
	var acc strings.Builder
	flush := func() {
		if acc.Len() > 0 {
			out = append(out, piece{content: acc.String(), complete: true})
			acc.Reset()
		}
	}

	for _, part := range parts {
		if len(part) > d.cfg.ChunkSize {
			flush()
			out = append(out, d.split(part, rest)...)
			continue
		}
		if acc.Len() > 0 && acc.Len()+len(sep)+len(part) > d.cfg.ChunkSize {
			flush()
		}
		if acc.Len() > 0 {
			acc.WriteString(sep)
		}
		acc.WriteString(part)
	}
	flush()

	return out
}
