package splitter

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/dshills/docsplit-mcp/pkg/types"
)

// JSON splits parseable JSON documents along their structure. Array
// elements and object fields are never cut in half: a unit either fits in
// one chunk or is recursed into by its own type. Chunks are re-serialized,
// so byte-for-byte round-tripping of the original document is not a goal.
type JSON struct {
	base
	fallback *Delimiter
}

// NewJSON creates a JSON structural splitter for the given configuration.
func NewJSON(cfg types.Config) *JSON {
	return &JSON{base: newBase("json", cfg), fallback: NewDelimiter(cfg)}
}

// CanHandle reports true when the input is declared or sniffed as JSON and
// actually parses.
func (j *JSON) CanHandle(fileType, content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return false
	}
	declared := normalizeFileType(fileType) == "json"
	sniffed := strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
	return (declared || sniffed) && gjson.Valid(trimmed)
}

// Priority returns the highest weight of all splitters.
func (j *JSON) Priority() int { return 90 }

// Split dispatches on the root value type. Malformed input is recovered
// locally by delegating to the delimiter splitter, never surfaced as an
// error.
func (j *JSON) Split(content string, metadata map[string]any) ([]types.Chunk, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	if !gjson.Valid(trimmed) {
		return j.fallback.Split(content, metadata)
	}
	pieces := j.splitValue(gjson.Parse(trimmed), nil)
	return j.finalize(pieces, metadata), nil
}

// splitValue pattern-matches on the value type and recurses. Scalars other
// than strings are emitted whole regardless of size.
func (j *JSON) splitValue(v gjson.Result, tag map[string]any) []piece {
	switch {
	case v.IsArray():
		return j.splitArray(v, tag)
	case v.IsObject():
		return j.splitObject(v, tag)
	case v.Type == gjson.String:
		return j.splitString(v.String(), tag)
	default:
		return []piece{{content: compactRaw(v), meta: tag, complete: true}}
	}
}

// splitArray emits one chunk per element. Element integrity is a floor: an
// element within the chunk size is never merged with its neighbors or cut.
// Oversized elements recurse by their own type, tagged with the array
// index for traceability.
func (j *JSON) splitArray(arr gjson.Result, tag map[string]any) []piece {
	var pieces []piece
	idx := 0
	arr.ForEach(func(_, el gjson.Result) bool {
		raw := compactRaw(el)
		if len(raw) <= j.cfg.ChunkSize {
			pieces = append(pieces, piece{content: raw, meta: withTag(tag, "array_index", idx), complete: true})
		} else {
			pieces = append(pieces, j.splitValue(el, withTag(tag, "parent_index", idx))...)
		}
		idx++
		return true
	})
	return pieces
}

// splitObject accumulates fields greedily by serialized size, flushing at
// field boundaries. A single field whose serialization exceeds the chunk
// size is recursed into with a parent-key tag on its sub-chunks.
func (j *JSON) splitObject(obj gjson.Result, tag map[string]any) []piece {
	var pieces []piece
	var fields []string
	innerLen := 0
	flush := func() {
		if len(fields) == 0 {
			return
		}
		pieces = append(pieces, piece{
			content:  "{" + strings.Join(fields, ", ") + "}",
			meta:     tag,
			complete: true,
		})
		fields, innerLen = nil, 0
	}

	obj.ForEach(func(key, val gjson.Result) bool {
		field := strconv.Quote(key.String()) + ": " + compactRaw(val)
		if len(field)+2 > j.cfg.ChunkSize {
			flush()
			pieces = append(pieces, j.splitValue(val, withTag(tag, "parent_key", key.String()))...)
			return true
		}
		candidate := innerLen + len(field)
		if len(fields) > 0 {
			candidate += 2 // ", " join
		}
		if len(fields) > 0 && candidate+2 > j.cfg.ChunkSize {
			flush()
			candidate = len(field)
		}
		fields = append(fields, field)
		innerLen = candidate
		return true
	})
	flush()

	return pieces
}

// splitString cuts an oversized string at the last configured separator
// before the chunk-size limit, scanning separators in priority order.
// Forced string splits are mid-unit, so the resulting chunks are marked
// incomplete.
func (j *JSON) splitString(s string, tag map[string]any) []piece {
	if len(s) <= j.cfg.ChunkSize {
		return []piece{{content: s, meta: tag, complete: true}}
	}
	var pieces []piece
	for len(s) > j.cfg.ChunkSize {
		cut := j.backwardCut(s)
		pieces = append(pieces, piece{content: s[:cut], meta: tag, complete: false})
		s = s[cut:]
	}
	if strings.TrimSpace(s) != "" {
		pieces = append(pieces, piece{content: s, meta: tag, complete: false})
	}
	return pieces
}

// backwardCut finds the split point for an oversized string: the end of
// the last occurrence of the highest-priority separator within the
// chunk-size window, or the window itself (aligned to a rune boundary)
// when no separator occurs.
func (j *JSON) backwardCut(s string) int {
	limit := j.cfg.ChunkSize
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	if limit == 0 {
		return j.cfg.ChunkSize
	}
	for _, sep := range j.cfg.Separators {
		if sep == "" {
			continue
		}
		if idx := strings.LastIndex(s[:limit], sep); idx > 0 {
			return idx + len(sep)
		}
	}
	return limit
}

// compactRaw returns the minified serialization of a value.
func compactRaw(v gjson.Result) string {
	raw := strings.TrimSpace(v.Raw)
	if v.IsArray() || v.IsObject() {
		return string(pretty.Ugly([]byte(raw)))
	}
	return raw
}

func withTag(tag map[string]any, key string, value any) map[string]any {
	out := make(map[string]any, len(tag)+1)
	for k, v := range tag {
		out[k] = v
	}
	out[key] = value
	return out
}
