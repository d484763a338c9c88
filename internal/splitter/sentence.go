package splitter

import (
	"strings"
	"unicode"
)

// cjkThreshold is the CJK character fraction above which a paragraph is
// treated as CJK text for sentence boundary detection.
const cjkThreshold = 0.3

var (
	cjkEnders     = []rune{'。', '！', '？'}
	westernEnders = []rune{'.', '!', '?'}
)

func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}

// cjkRatio returns the fraction of CJK runes among the non-space runes of s.
func cjkRatio(s string) float64 {
	total, cjk := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if isCJK(r) {
			cjk++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(cjk) / float64(total)
}

// splitSentences splits a paragraph into sentences with the terminating
// punctuation kept attached. Paragraphs whose CJK ratio exceeds the
// threshold use CJK sentence enders (。！？); otherwise Western enders
// (.!?) are used, and a Western ender only terminates a sentence when it
// is followed by whitespace or end of input.
func splitSentences(paragraph string) []string {
	enders := westernEnders
	western := true
	if cjkRatio(paragraph) > cjkThreshold {
		enders = cjkEnders
		western = false
	}

	runes := []rune(paragraph)
	sentences := make([]string, 0, 4)
	var cur strings.Builder
	for i, r := range runes {
		cur.WriteRune(r)
		if !isEnder(r, enders) {
			continue
		}
		if western && i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(cur.String()); s != "" {
			sentences = append(sentences, s)
		}
		cur.Reset()
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isEnder(r rune, enders []rune) bool {
	for _, e := range enders {
		if r == e {
			return true
		}
	}
	return false
}

// topicMarkers are bilingual topic-transition words. A sentence starting
// with one of these is treated as the start of a new semantic unit.
var topicMarkers = []string{
	"first", "firstly", "second", "secondly", "third", "next", "then",
	"however", "but", "finally", "in conclusion", "in summary",
	"moreover", "furthermore", "on the other hand",
	"首先", "其次", "然后", "接着", "但是", "然而", "最后", "总之", "此外", "另外",
}

// startsWithTopicMarker reports whether s opens with a topic-transition
// marker. ASCII markers must be followed by a non-letter to avoid matching
// inside longer words ("butter" is not "but").
func startsWithTopicMarker(s string) bool {
	l := strings.ToLower(strings.TrimSpace(s))
	for _, m := range topicMarkers {
		if !strings.HasPrefix(l, m) {
			continue
		}
		if m[0] < 0x80 && len(l) > len(m) {
			next := rune(l[len(m)])
			if unicode.IsLetter(next) {
				continue
			}
		}
		return true
	}
	return false
}
