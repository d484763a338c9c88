package splitter

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"

	"github.com/dshills/docsplit-mcp/pkg/types"
)

// codeLanguages maps file type labels to canonical language names.
var codeLanguages = map[string]string{
	"go":         "go",
	"py":         "python",
	"python":     "python",
	"js":         "javascript",
	"jsx":        "javascript",
	"javascript": "javascript",
	"ts":         "typescript",
	"tsx":        "typescript",
	"typescript": "typescript",
	"java":       "java",
	"rs":         "rust",
	"rust":       "rust",
	"rb":         "ruby",
	"ruby":       "ruby",
	"php":        "php",
}

// declPatterns match top-level declarations for languages without native
// AST support. Each match opens a unit that extends to the next match.
var declPatterns = map[string]*regexp.Regexp{
	"python":     regexp.MustCompile(`(?m)^(?:@[\w.]+(?:\(.*\))?[ \t]*\n)*(?:async[ \t]+def|def|class)[ \t]+\w+`),
	"javascript": regexp.MustCompile(`(?m)^(?:export[ \t]+)?(?:default[ \t]+)?(?:async[ \t]+)?(?:function\*?|class)[ \t]+\w+|^(?:export[ \t]+)?(?:const|let|var)[ \t]+\w+[ \t]*=`),
	"typescript": regexp.MustCompile(`(?m)^(?:export[ \t]+)?(?:default[ \t]+)?(?:abstract[ \t]+)?(?:async[ \t]+)?(?:function\*?|class|interface|enum|namespace)[ \t]+\w+|^(?:export[ \t]+)?(?:const|let|var|type)[ \t]+\w+[ \t]*=`),
	"java":       regexp.MustCompile(`(?m)^(?:public|protected|private)?[ \t]*(?:abstract[ \t]+|final[ \t]+|static[ \t]+)*(?:class|interface|enum|record)[ \t]+\w+`),
	"rust":       regexp.MustCompile(`(?m)^(?:pub(?:\([\w: ]+\))?[ \t]+)?(?:async[ \t]+)?(?:fn|struct|enum|trait|impl|mod)\b`),
	"ruby":       regexp.MustCompile(`(?m)^(?:class|module|def)[ \t]+\w+`),
	"php":        regexp.MustCompile(`(?m)^(?:abstract[ \t]+|final[ \t]+)?(?:class|interface|trait|function)[ \t]+\w+`),
}

// Code splits source code at declaration boundaries. Go sources are parsed
// with the standard AST; other recognized languages fall back to regex
// patterns over top-level declarations, and unmatched content degrades to
// line accumulation. Import context stays attached to every chunk the AST
// path produces.
type Code struct {
	base
	fallback *Delimiter

	// language is captured during CanHandle; the registry uses a fresh
	// instance per selection, so this never races.
	language string
}

// NewCode creates a code splitter for the given configuration.
func NewCode(cfg types.Config) *Code {
	return &Code{base: newBase("code", cfg), fallback: NewDelimiter(cfg)}
}

// CanHandle reports true for recognized code file types.
func (c *Code) CanHandle(fileType, content string) bool {
	lang, ok := codeLanguages[normalizeFileType(fileType)]
	if ok {
		c.language = lang
	}
	return ok && strings.TrimSpace(content) != ""
}

// Priority returns a high weight for recognized code extensions.
func (c *Code) Priority() int { return 80 }

// Split chunks source code, preferring declaration units. Unit integrity
// is a floor: a declaration smaller than the chunk size is still one
// chunk. The chunk size acts only as a safety ceiling that forces
// line-level sub-splitting of oversized units.
func (c *Code) Split(content string, metadata map[string]any) ([]types.Chunk, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}
	lang := c.language
	if lang == "" {
		lang = codeLanguages[normalizeFileType(fileTypeFromMetadata(metadata))]
	}
	if !c.cfg.PreserveStructure {
		return c.finalize(c.accumulateLines(content), metadata), nil
	}

	if lang == "go" && c.cfg.ASTParsing {
		pieces, err := c.splitGoAST(content)
		if err == nil {
			return c.finalize(pieces, metadata), nil
		}
		// Parse failure is recovered locally by the pattern path.
	}

	if pat, ok := declPatterns[lang]; ok {
		if pieces := c.splitByPattern(content, pat); len(pieces) > 0 {
			return c.finalize(pieces, metadata), nil
		}
	}

	return c.finalize(c.accumulateLines(content), metadata), nil
}

// splitGoAST parses content as a Go source file and emits one chunk per
// top-level declaration, each prefixed with the package/import context.
// Module-level remnants outside any declaration become a final chunk.
func (c *Code) splitGoAST(content string) ([]piece, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "source.go", content, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	lines := strings.Split(content, "\n")
	covered := make([]bool, len(lines))
	markCovered := func(startLine, endLine int) {
		for i := startLine - 1; i < endLine && i < len(covered); i++ {
			if i >= 0 {
				covered[i] = true
			}
		}
	}
	if file.Name != nil {
		line := fset.Position(file.Name.Pos()).Line
		markCovered(line, line)
	}

	context := buildGoContext(file)
	pieces := make([]piece, 0, len(file.Decls))

	for _, decl := range file.Decls {
		if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
			markCovered(fset.Position(gen.Pos()).Line, fset.Position(gen.End()).Line)
			continue
		}

		start := fset.Position(decl.Pos()).Line
		if doc := declDoc(decl); doc != nil {
			start = fset.Position(doc.Pos()).Line
		}
		end := fset.Position(decl.End()).Line
		if start < 1 || end > len(lines) {
			continue
		}
		markCovered(start, end)

		unitLines := lines[start-1 : end]
		meta := map[string]any{
			"unit_kind": declKind(decl),
			"unit_name": declName(decl),
			"language":  "go",
		}
		unit := context + strings.Join(unitLines, "\n")
		if len(unit) <= c.cfg.ChunkSize {
			pieces = append(pieces, piece{content: unit, meta: meta, complete: true})
			continue
		}
		pieces = append(pieces, c.splitUnitLines(context, unitLines, meta)...)
	}

	// Whatever is left at module level, minus imports and blanks.
	var remnants []string
	for i, line := range lines {
		if !covered[i] && strings.TrimSpace(line) != "" {
			remnants = append(remnants, line)
		}
	}
	if len(remnants) > 0 {
		pieces = append(pieces, piece{
			content:  strings.Join(remnants, "\n"),
			meta:     map[string]any{"unit_kind": "module", "language": "go"},
			complete: true,
		})
	}

	return pieces, nil
}

// splitUnitLines splits an oversized declaration at line boundaries while
// keeping the import context and the unit's signature line attached to
// every sub-chunk. Sub-chunks are marked incomplete.
func (c *Code) splitUnitLines(context string, unitLines []string, meta map[string]any) []piece {
	signature := unitLines[0]
	prefix := context + signature + "\n"
	budget := c.cfg.ChunkSize - len(prefix)
	if budget < 1 {
		// Context alone exceeds the chunk size; keep a usable window.
		budget = c.cfg.ChunkSize
	}

	pieces := make([]piece, 0, 2)
	var acc []string
	accLen := 0
	flush := func() {
		if len(acc) == 0 {
			return
		}
		pieces = append(pieces, piece{
			content:  prefix + strings.Join(acc, "\n"),
			meta:     meta,
			complete: false,
		})
		acc, accLen = nil, 0
	}

	for _, line := range unitLines[1:] {
		if len(line) > budget {
			flush()
			for _, s := range hardSlice(line, budget) {
				pieces = append(pieces, piece{content: prefix + s, meta: meta, complete: false})
			}
			continue
		}
		if accLen > 0 && accLen+1+len(line) > budget {
			flush()
		}
		if accLen > 0 {
			accLen++
		}
		acc = append(acc, line)
		accLen += len(line)
	}
	flush()

	if len(pieces) == 0 {
		// Declaration had no body lines; emit signature with context.
		pieces = append(pieces, piece{content: context + signature, meta: meta, complete: true})
	}
	return pieces
}

// splitByPattern slices content at top-level declaration matches. Each
// match opens one chunk that runs to the next match; oversized units are
// line-split and marked incomplete.
func (c *Code) splitByPattern(content string, pat *regexp.Regexp) []piece {
	locs := pat.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return nil
	}

	var pieces []piece
	emit := func(unit string) {
		unit = strings.TrimRight(unit, "\n")
		if strings.TrimSpace(unit) == "" {
			return
		}
		if len(unit) <= c.cfg.ChunkSize {
			pieces = append(pieces, piece{content: unit, complete: true})
			return
		}
		pieces = append(pieces, forceIncomplete(c.accumulateLines(unit))...)
	}

	if locs[0][0] > 0 {
		emit(content[:locs[0][0]])
	}
	for i, loc := range locs {
		end := len(content)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		emit(content[loc[0]:end])
	}
	return pieces
}

// accumulateLines is the last-resort code path: greedy line accumulation
// honoring only the chunk size.
func (c *Code) accumulateLines(content string) []piece {
	var pieces []piece
	var acc []string
	accLen := 0
	flush := func() {
		if len(acc) == 0 {
			return
		}
		pieces = append(pieces, piece{content: strings.Join(acc, "\n"), complete: true})
		acc, accLen = nil, 0
	}

	for _, line := range strings.Split(content, "\n") {
		if len(line) > c.cfg.ChunkSize {
			flush()
			for _, s := range hardSlice(line, c.cfg.ChunkSize) {
				pieces = append(pieces, piece{content: s, complete: false})
			}
			continue
		}
		if accLen > 0 && accLen+1+len(line) > c.cfg.ChunkSize {
			flush()
		}
		if accLen > 0 {
			accLen++
		}
		acc = append(acc, line)
		accLen += len(line)
	}
	flush()
	return pieces
}

// buildGoContext reconstructs the package clause and import block shared
// by every chunk of a Go source file.
func buildGoContext(file *ast.File) string {
	var b strings.Builder
	if file.Name != nil {
		fmt.Fprintf(&b, "package %s\n\n", file.Name.Name)
	}
	if len(file.Imports) > 0 {
		b.WriteString("import (\n")
		for _, imp := range file.Imports {
			if imp.Name != nil {
				fmt.Fprintf(&b, "\t%s %s\n", imp.Name.Name, imp.Path.Value)
			} else {
				fmt.Fprintf(&b, "\t%s\n", imp.Path.Value)
			}
		}
		b.WriteString(")\n\n")
	}
	return b.String()
}

func declDoc(decl ast.Decl) *ast.CommentGroup {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		return d.Doc
	case *ast.GenDecl:
		return d.Doc
	}
	return nil
}

func declKind(decl ast.Decl) string {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Recv != nil {
			return "method"
		}
		return "function"
	case *ast.GenDecl:
		switch d.Tok {
		case token.TYPE:
			return "type"
		case token.CONST:
			return "const"
		case token.VAR:
			return "var"
		}
	}
	return "decl"
}

func declName(decl ast.Decl) string {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		return d.Name.Name
	case *ast.GenDecl:
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				return s.Name.Name
			case *ast.ValueSpec:
				if len(s.Names) > 0 {
					return s.Names[0].Name
				}
			}
		}
	}
	return ""
}
