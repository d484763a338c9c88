package splitter

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/docsplit-mcp/pkg/types"
)

// Hierarchical is a meta-splitter producing two-level parent/child output.
// It runs the auto-selected splitter once at the parent chunk size with
// doubled overlap, then re-splits each parent chunk's content at the
// normal chunk size. The flattened result interleaves every parent with
// its children; children hold a weak reference to the parent's synthetic
// identifier, never a structural pointer.
type Hierarchical struct {
	base
	registry *Registry

	// fileType is captured during CanHandle; instances are per-selection.
	fileType string
}

// NewHierarchical creates a hierarchical splitter backed by the given
// registry. A nil registry means the default set.
func NewHierarchical(cfg types.Config, reg *Registry) *Hierarchical {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Hierarchical{base: newBase("hierarchical", cfg), registry: reg}
}

// CanHandle reports true only when hierarchy is enabled; the splitter is
// opt-in and never wins auto-selection otherwise.
func (h *Hierarchical) CanHandle(fileType, content string) bool {
	h.fileType = fileType
	return h.cfg.EnableHierarchy && strings.TrimSpace(content) != ""
}

// Priority returns the lowest weight in the registry.
func (h *Hierarchical) Priority() int { return 5 }

// Split produces the flattened parent/child sequence. Chunk indices stay
// scoped to the splitter run that produced them (the parent pass for
// parents, each per-parent pass for children), so they are not globally
// unique across the merged output.
func (h *Hierarchical) Split(content string, metadata map[string]any) ([]types.Chunk, error) {
	if !h.cfg.EnableHierarchy {
		return nil, ErrHierarchyDisabled
	}
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}
	fileType := h.fileType
	if fileType == "" {
		fileType = fileTypeFromMetadata(metadata)
	}

	parentCfg := h.cfg
	parentCfg.Strategy = types.StrategyAuto
	parentCfg.EnableHierarchy = false
	parentCfg.ChunkSize = h.cfg.ParentChunkSize
	parentCfg.ChunkOverlap = h.cfg.ChunkOverlap * 2

	parents, err := h.registry.Best(fileType, content, parentCfg).Split(content, metadata)
	if err != nil {
		return nil, err
	}

	childCfg := h.cfg
	childCfg.Strategy = types.StrategyAuto
	childCfg.EnableHierarchy = false

	out := make([]types.Chunk, 0, 2*len(parents))
	for i := range parents {
		parent := parents[i]
		parentID := uuid.NewString()
		meta := parent.CloneMetadata()
		meta["chunk_id"] = parentID
		meta["is_parent"] = true
		meta["hierarchy_level"] = 1
		parent.Metadata = meta
		out = append(out, parent)

		children, err := h.registry.Best(fileType, parent.Content, childCfg).Split(parent.Content, metadata)
		if err != nil {
			return nil, err
		}
		for j := range children {
			child := children[j]
			cmeta := child.CloneMetadata()
			cmeta["parent_id"] = parentID
			cmeta["is_parent"] = false
			cmeta["hierarchy_level"] = 2
			child.Metadata = cmeta
			child.ParentID = parentID
			out = append(out, child)
		}
	}
	return out, nil
}
