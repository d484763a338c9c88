package splitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/docsplit-mcp/pkg/types"
)

func hierarchicalConfig() types.Config {
	cfg := types.DefaultConfig()
	cfg.EnableHierarchy = true
	cfg.ChunkSize = 60
	cfg.ChunkOverlap = 0
	cfg.ParentChunkSize = 200
	return cfg
}

func hierarchicalContent() string {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("This sentence pads out the document with some content.\n\n")
	}
	return b.String()
}

func TestHierarchical_Disabled(t *testing.T) {
	cfg := types.DefaultConfig()
	h := NewHierarchical(cfg, DefaultRegistry())
	assert.False(t, h.CanHandle("", "content"))

	_, err := h.Split("content", nil)
	assert.ErrorIs(t, err, ErrHierarchyDisabled)
}

func TestHierarchical_ParentChildStructure(t *testing.T) {
	h := NewHierarchical(hierarchicalConfig(), DefaultRegistry())
	require.True(t, h.CanHandle("", hierarchicalContent()))

	chunks, err := h.Split(hierarchicalContent(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	// Flattened output interleaves each parent with its children.
	var currentParent string
	parents, children := 0, 0
	for _, c := range chunks {
		if c.Metadata["is_parent"] == true {
			parents++
			id, ok := c.Metadata["chunk_id"].(string)
			require.True(t, ok)
			require.NotEmpty(t, id)
			assert.Equal(t, 1, c.Metadata["hierarchy_level"])
			assert.Empty(t, c.ParentID)
			currentParent = id
			continue
		}
		children++
		assert.Equal(t, 2, c.Metadata["hierarchy_level"])
		assert.Equal(t, false, c.Metadata["is_parent"])
		assert.Equal(t, currentParent, c.Metadata["parent_id"])
		assert.Equal(t, currentParent, c.ParentID)
	}
	assert.Greater(t, parents, 1)
	assert.Greater(t, children, parents)
}

func TestHierarchical_ParentIDsUnique(t *testing.T) {
	h := NewHierarchical(hierarchicalConfig(), DefaultRegistry())
	chunks, err := h.Split(hierarchicalContent(), nil)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, c := range chunks {
		if c.Metadata["is_parent"] == true {
			id := c.Metadata["chunk_id"].(string)
			assert.False(t, seen[id])
			seen[id] = true
		}
	}
	assert.NotEmpty(t, seen)
}

func TestHierarchical_ChildContentWithinParent(t *testing.T) {
	h := NewHierarchical(hierarchicalConfig(), DefaultRegistry())
	chunks, err := h.Split(hierarchicalContent(), nil)
	require.NoError(t, err)

	var parentContent string
	for _, c := range chunks {
		if c.Metadata["is_parent"] == true {
			parentContent = c.Content
			continue
		}
		// Children re-split their parent's content, so every child chunk
		// is a substring of it.
		assert.Contains(t, parentContent, c.Content)
	}
}

func TestHierarchical_EmptyContent(t *testing.T) {
	h := NewHierarchical(hierarchicalConfig(), DefaultRegistry())
	chunks, err := h.Split("  \n ", nil)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}
