package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences_Western(t *testing.T) {
	sentences := splitSentences("This is one. This is two! Is this three?")
	require.Len(t, sentences, 3)
	assert.Equal(t, "This is one.", sentences[0])
	assert.Equal(t, "This is two!", sentences[1])
	assert.Equal(t, "Is this three?", sentences[2])
}

func TestSplitSentences_DecimalPoint(t *testing.T) {
	// A period not followed by whitespace does not end a sentence.
	sentences := splitSentences("The value of pi is 3.14159 approximately. Next sentence.")
	require.Len(t, sentences, 2)
	assert.Equal(t, "The value of pi is 3.14159 approximately.", sentences[0])
}

func TestSplitSentences_CJK(t *testing.T) {
	sentences := splitSentences("今天天气很好。我们去公园吧！你来吗？")
	require.Len(t, sentences, 3)
	assert.Equal(t, "今天天气很好。", sentences[0])
	assert.Equal(t, "我们去公园吧！", sentences[1])
	assert.Equal(t, "你来吗？", sentences[2])
}

func TestSplitSentences_NoEnder(t *testing.T) {
	sentences := splitSentences("no terminal punctuation here")
	require.Len(t, sentences, 1)
	assert.Equal(t, "no terminal punctuation here", sentences[0])
}

func TestCJKRatio(t *testing.T) {
	assert.Equal(t, 0.0, cjkRatio("hello world"))
	assert.Equal(t, 1.0, cjkRatio("你好世界"))
	assert.InDelta(t, 0.5, cjkRatio("你好ab"), 0.01)
	assert.Equal(t, 0.0, cjkRatio(""))
}

func TestStartsWithTopicMarker(t *testing.T) {
	assert.True(t, startsWithTopicMarker("However, things changed."))
	assert.True(t, startsWithTopicMarker("First, we gather data."))
	assert.True(t, startsWithTopicMarker("然而事情变了。"))
	assert.True(t, startsWithTopicMarker("  finally done"))

	// Marker prefix inside a longer word does not count.
	assert.False(t, startsWithTopicMarker("Butter is delicious."))
	assert.False(t, startsWithTopicMarker("Thennial is not a word, but close."))
	assert.False(t, startsWithTopicMarker("Plain statement."))
}

func TestIsSemanticBoundary(t *testing.T) {
	assert.True(t, isSemanticBoundary("We walked home.", "However, it rained."))
	assert.True(t, isSemanticBoundary("line one\nline two.", "continues."))

	// Abrupt length change.
	assert.True(t, isSemanticBoundary("Short.", "This following sentence is considerably longer than the previous."))

	// Similar lengths, no markers.
	assert.False(t, isSemanticBoundary("The cat sat on the mat.", "The dog lay on the rug."))
}
