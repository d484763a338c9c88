package splitter

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dshills/docsplit-mcp/pkg/types"
)

var atxHeadingPattern = regexp.MustCompile(`(?m)^#{1,6} `)

// Markdown splits documents at heading boundaries. Each heading opens a
// section; section integrity is a floor, so a section within the chunk
// size is always one chunk. Content before the first heading becomes an
// implicit level-0 "Introduction" section. Headings are located through
// the goldmark AST, so heading-like lines inside fenced code blocks do not
// split sections.
type Markdown struct {
	base
}

// NewMarkdown creates a markdown splitter for the given configuration.
func NewMarkdown(cfg types.Config) *Markdown {
	return &Markdown{base: newBase("markdown", cfg)}
}

// CanHandle reports true for declared markdown or heading-bearing content.
func (m *Markdown) CanHandle(fileType, content string) bool {
	if strings.TrimSpace(content) == "" {
		return false
	}
	switch normalizeFileType(fileType) {
	case "md", "markdown", "mdx":
		return true
	}
	return atxHeadingPattern.MatchString(content)
}

// Priority returns a high weight for heading-bearing content, below the
// code and JSON splitters.
func (m *Markdown) Priority() int { return 70 }

// Split chunks the document section by section. Oversized sections fall
// back to blank-line paragraph accumulation, oversized paragraphs to
// sentence boundaries, and a hard character slice only as a last resort.
// Documents without any heading degrade to plain paragraph accumulation.
func (m *Markdown) Split(content string, metadata map[string]any) ([]types.Chunk, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	sections := parseSections(content)
	if len(sections) == 0 {
		return m.finalize(m.accumulateParagraphs(content, nil), metadata), nil
	}

	var pieces []piece
	for _, sec := range sections {
		meta := map[string]any{
			"header_text":  sec.header,
			"header_level": sec.level,
		}
		if len(sec.content) <= m.cfg.ChunkSize {
			pieces = append(pieces, piece{content: sec.content, meta: meta, complete: true})
			continue
		}
		pieces = append(pieces, m.accumulateParagraphs(sec.content, meta)...)
	}
	return m.finalize(pieces, metadata), nil
}

// section is one heading-delimited span of the document.
type section struct {
	header  string
	level   int
	content string
}

// parseSections walks the goldmark AST for document-level headings and
// slices the source between consecutive heading line starts. Returns nil
// when the document has no headings.
func parseSections(content string) []section {
	src := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	type headingMark struct {
		start int
		level int
		title string
	}
	var marks []headingMark
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		h, ok := node.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			continue
		}
		start := h.Lines().At(0).Start
		for start > 0 && src[start-1] != '\n' {
			start--
		}
		marks = append(marks, headingMark{start: start, level: h.Level, title: nodeText(h, src)})
	}
	if len(marks) == 0 {
		return nil
	}

	sections := make([]section, 0, len(marks)+1)
	if intro := content[:marks[0].start]; strings.TrimSpace(intro) != "" {
		sections = append(sections, section{header: "Introduction", level: 0, content: intro})
	}
	for i, mark := range marks {
		end := len(content)
		if i+1 < len(marks) {
			end = marks[i+1].start
		}
		sections = append(sections, section{
			header:  mark.title,
			level:   mark.level,
			content: content[mark.start:end],
		})
	}
	return sections
}

// accumulateParagraphs merges blank-line-delimited paragraphs greedily up
// to the chunk size; oversized paragraphs split at sentence boundaries.
func (m *Markdown) accumulateParagraphs(content string, meta map[string]any) []piece {
	var pieces []piece
	var acc []string
	accLen := 0
	flush := func() {
		if len(acc) == 0 {
			return
		}
		pieces = append(pieces, piece{content: strings.Join(acc, "\n\n"), meta: meta, complete: true})
		acc, accLen = nil, 0
	}

	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if len(para) > m.cfg.ChunkSize {
			flush()
			pieces = append(pieces, m.splitParagraph(para, meta)...)
			continue
		}
		if accLen > 0 && accLen+2+len(para) > m.cfg.ChunkSize {
			flush()
		}
		if accLen > 0 {
			accLen += 2
		}
		acc = append(acc, para)
		accLen += len(para)
	}
	flush()
	return pieces
}

// splitParagraph merges sentences greedily; a sentence that alone exceeds
// the chunk size is hard-sliced and marked incomplete.
func (m *Markdown) splitParagraph(para string, meta map[string]any) []piece {
	var pieces []piece
	var acc []string
	accLen := 0
	flush := func() {
		if len(acc) == 0 {
			return
		}
		pieces = append(pieces, piece{content: strings.Join(acc, " "), meta: meta, complete: true})
		acc, accLen = nil, 0
	}

	for _, sentence := range splitSentences(para) {
		if len(sentence) > m.cfg.ChunkSize {
			flush()
			for _, s := range hardSlice(sentence, m.cfg.ChunkSize) {
				pieces = append(pieces, piece{content: s, meta: meta, complete: false})
			}
			continue
		}
		if accLen > 0 && accLen+1+len(sentence) > m.cfg.ChunkSize {
			flush()
		}
		if accLen > 0 {
			accLen++
		}
		acc = append(acc, sentence)
		accLen += len(sentence)
	}
	flush()
	return pieces
}

// nodeText collects the raw text of a node's inline children.
func nodeText(node ast.Node, src []byte) string {
	var b strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
		default:
			b.WriteString(nodeText(c, src))
		}
	}
	return strings.TrimSpace(b.String())
}
