package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, StrategyAuto, cfg.Strategy)
	assert.Equal(t, DefaultChunkSize, cfg.ChunkSize)
	assert.Equal(t, DefaultChunkOverlap, cfg.ChunkOverlap)
	assert.True(t, cfg.PreserveStructure)
	assert.True(t, cfg.UseSentenceBoundary)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultSeparators_Terminal(t *testing.T) {
	seps := DefaultSeparators()
	require.NotEmpty(t, seps)
	assert.Equal(t, "", seps[len(seps)-1])
}

func TestConfigValidate_Negative(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSize = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidChunkSize)

	cfg = DefaultConfig()
	cfg.ChunkOverlap = -5
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidChunkOverlap)

	cfg = DefaultConfig()
	cfg.ParentChunkSize = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidChunkSize)
}

func TestNormalized_FillsDefaults(t *testing.T) {
	cfg := Config{}.Normalized()
	assert.Equal(t, StrategyAuto, cfg.Strategy)
	assert.Equal(t, DefaultChunkSize, cfg.ChunkSize)
	assert.Equal(t, DefaultSeparators(), cfg.Separators)
	assert.Equal(t, DefaultSemanticThreshold, cfg.SemanticThreshold)
	assert.Equal(t, DefaultBatchSize, cfg.BatchSize)
}

func TestNormalized_TerminalSeparator(t *testing.T) {
	cfg := Config{Separators: []string{"\n", " "}}.Normalized()
	assert.Equal(t, "", cfg.Separators[len(cfg.Separators)-1])

	// Already terminal: unchanged.
	cfg = Config{Separators: []string{"\n", ""}}.Normalized()
	assert.Equal(t, []string{"\n", ""}, cfg.Separators)
}

func TestNormalized_OverlapClamp(t *testing.T) {
	cfg := Config{ChunkSize: 100, ChunkOverlap: 100}.Normalized()
	assert.Equal(t, 25, cfg.ChunkOverlap)

	cfg = Config{ChunkSize: 100, ChunkOverlap: 500}.Normalized()
	assert.Equal(t, 25, cfg.ChunkOverlap)

	cfg = Config{ChunkSize: 100, ChunkOverlap: 99}.Normalized()
	assert.Equal(t, 99, cfg.ChunkOverlap)
}

func TestNormalized_ParentChunkSize(t *testing.T) {
	cfg := Config{ChunkSize: 500, ParentChunkSize: 200}.Normalized()
	assert.Equal(t, 1500, cfg.ParentChunkSize)

	cfg = Config{ChunkSize: 500, ParentChunkSize: 2000}.Normalized()
	assert.Equal(t, 2000, cfg.ParentChunkSize)
}

func TestNormalized_SemanticThreshold(t *testing.T) {
	cfg := Config{SemanticThreshold: 1.5}.Normalized()
	assert.Equal(t, DefaultSemanticThreshold, cfg.SemanticThreshold)

	cfg = Config{SemanticThreshold: 0.7}.Normalized()
	assert.Equal(t, 0.7, cfg.SemanticThreshold)
}
