package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/docsplit-mcp/pkg/types"
)

func TestDefaultRegistry_Names(t *testing.T) {
	reg := DefaultRegistry()
	assert.ElementsMatch(t,
		[]string{"delimiter", "semantic", "markdown", "code", "json", "hierarchical"},
		reg.Names())
}

func TestRegistry_Priorities(t *testing.T) {
	p := DefaultRegistry().Priorities()
	assert.Equal(t, 10, p["delimiter"])
	assert.Equal(t, 50, p["semantic"])
	assert.Equal(t, 70, p["markdown"])
	assert.Equal(t, 80, p["code"])
	assert.Equal(t, 90, p["json"])
	assert.Equal(t, 5, p["hierarchical"])
}

func TestBest_SelectsByStructure(t *testing.T) {
	reg := DefaultRegistry()
	cfg := types.DefaultConfig()

	assert.Equal(t, "json", reg.Best("", `{"a": 1}`, cfg).Name())
	assert.Equal(t, "code", reg.Best("go", "package x\n\nfunc F() {}", cfg).Name())
	assert.Equal(t, "markdown", reg.Best("md", "any text", cfg).Name())
	assert.Equal(t, "markdown", reg.Best("", "# Heading\nbody", cfg).Name())
	assert.Equal(t, "semantic", reg.Best("", "Just plain prose.", cfg).Name())
}

func TestBest_JSONOutranksOthers(t *testing.T) {
	reg := DefaultRegistry()
	cfg := types.DefaultConfig()
	assert.Equal(t, "json", reg.Best("json", `[1, 2]`, cfg).Name())
}

func TestBest_FallbackDelimiter(t *testing.T) {
	// Whitespace-only content: nothing can handle it, delimiter returned.
	reg := DefaultRegistry()
	s := reg.Best("", "   ", types.DefaultConfig())
	assert.Equal(t, "delimiter", s.Name())
}

func TestBest_Deterministic(t *testing.T) {
	reg := DefaultRegistry()
	cfg := types.DefaultConfig()
	first := reg.Best("md", "# Doc\ntext", cfg).Name()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, reg.Best("md", "# Doc\ntext", cfg).Name())
	}
}

// stubSplitter is a minimal splitter with a fixed name and priority.
type stubSplitter struct {
	name     string
	priority int
}

func (s *stubSplitter) Name() string                     { return s.name }
func (s *stubSplitter) CanHandle(fileType, content string) bool { return true }
func (s *stubSplitter) Priority() int                    { return s.priority }
func (s *stubSplitter) Split(content string, metadata map[string]any) ([]types.Chunk, error) {
	return nil, nil
}

func TestBest_TieBreakByName(t *testing.T) {
	cfg := types.DefaultConfig()
	mk := func(name string) Registration {
		return Registration{Name: name, New: func(types.Config) Splitter {
			return &stubSplitter{name: name, priority: 42}
		}}
	}
	// Equal priorities: the lexicographically smallest registration name
	// wins regardless of registration order.
	reg := NewRegistry(mk("zeta"), mk("alpha"), mk("midway"))
	s := reg.Best("", "content", cfg)
	require.NotNil(t, s)
	assert.Equal(t, "alpha", s.Name())

	rev := NewRegistry(mk("alpha"), mk("midway"), mk("zeta"))
	assert.Equal(t, "alpha", rev.Best("", "content", cfg).Name())
}

func TestHierarchicalNeverWinsAutoSelection(t *testing.T) {
	reg := DefaultRegistry()
	cfg := types.DefaultConfig()
	cfg.EnableHierarchy = true
	// Even enabled, hierarchical has the lowest priority; prose still goes
	// to the semantic splitter.
	assert.Equal(t, "semantic", reg.Best("", "Plain prose text.", cfg).Name())
}
