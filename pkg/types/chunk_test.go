package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkCounts(t *testing.T) {
	c := Chunk{Content: "hello wide world"}
	assert.Equal(t, 16, c.CharCount())
	assert.Equal(t, 3, c.WordCount())
}

func TestChunkValidate(t *testing.T) {
	c := Chunk{Content: "some content", QualityScore: 0.8}
	assert.NoError(t, c.Validate(100))
}

func TestChunkValidate_Empty(t *testing.T) {
	c := Chunk{Content: ""}
	assert.ErrorIs(t, c.Validate(100), ErrEmptyChunk)

	c.Content = "   \n\t  "
	assert.ErrorIs(t, c.Validate(100), ErrEmptyChunk)
}

func TestChunkValidate_TooLarge(t *testing.T) {
	c := Chunk{Content: strings.Repeat("x", 201), QualityScore: 0.5}
	assert.ErrorIs(t, c.Validate(100), ErrChunkTooLarge)

	// Exactly twice the chunk size is still legal.
	c.Content = strings.Repeat("x", 200)
	assert.NoError(t, c.Validate(100))
}

func TestChunkValidate_QualityScore(t *testing.T) {
	c := Chunk{Content: "ok", QualityScore: 1.2}
	assert.ErrorIs(t, c.Validate(100), ErrInvalidQualityScore)

	c.QualityScore = -0.1
	assert.ErrorIs(t, c.Validate(100), ErrInvalidQualityScore)
}

func TestCloneMetadata(t *testing.T) {
	c := Chunk{Metadata: map[string]any{"source": "doc.md"}}
	clone := c.CloneMetadata()
	clone["source"] = "changed"
	assert.Equal(t, "doc.md", c.Metadata["source"])
}

func TestCloneMetadata_Nil(t *testing.T) {
	c := Chunk{}
	clone := c.CloneMetadata()
	require.NotNil(t, clone)
	clone["k"] = "v"
	assert.Equal(t, "v", clone["k"])
}
