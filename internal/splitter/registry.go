package splitter

import (
	"github.com/dshills/docsplit-mcp/pkg/types"
)

// Constructor builds a splitter instance bound to a configuration.
type Constructor func(cfg types.Config) Splitter

// Registration pairs a splitter name with its constructor.
type Registration struct {
	Name string
	New  Constructor
}

// Registry is an explicitly constructed table of splitter registrations.
// There is no process-wide registry and no registration side effects: the
// application builds one at startup and passes it through call arguments.
type Registry struct {
	regs []Registration
}

// NewRegistry builds a registry from explicit registrations.
func NewRegistry(regs ...Registration) *Registry {
	return &Registry{regs: regs}
}

// DefaultRegistry returns the standard splitter set.
func DefaultRegistry() *Registry {
	r := &Registry{}
	r.regs = []Registration{
		{Name: "delimiter", New: func(cfg types.Config) Splitter { return NewDelimiter(cfg) }},
		{Name: "semantic", New: func(cfg types.Config) Splitter { return NewSemantic(cfg) }},
		{Name: "markdown", New: func(cfg types.Config) Splitter { return NewMarkdown(cfg) }},
		{Name: "code", New: func(cfg types.Config) Splitter { return NewCode(cfg) }},
		{Name: "json", New: func(cfg types.Config) Splitter { return NewJSON(cfg) }},
		{Name: "hierarchical", New: func(cfg types.Config) Splitter { return NewHierarchical(cfg, r) }},
	}
	return r
}

// Best instantiates every registered splitter with cfg, filters to those
// whose CanHandle accepts the input, and returns the highest-priority
// candidate. Ties break to the lexicographically smallest registration
// name, so selection is deterministic for a fixed registry and inputs.
// When no candidate qualifies, the delimiter splitter is returned.
func (r *Registry) Best(fileType, content string, cfg types.Config) Splitter {
	var best Splitter
	var bestName string
	for _, reg := range r.regs {
		s := reg.New(cfg)
		if !s.CanHandle(fileType, content) {
			continue
		}
		switch {
		case best == nil,
			s.Priority() > best.Priority(),
			s.Priority() == best.Priority() && reg.Name < bestName:
			best, bestName = s, reg.Name
		}
	}
	if best == nil {
		return NewDelimiter(cfg)
	}
	return best
}

// Names returns the registered splitter names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.regs))
	for i, reg := range r.regs {
		names[i] = reg.Name
	}
	return names
}

// Priorities reports the declared priority of every registered splitter.
func (r *Registry) Priorities() map[string]int {
	cfg := types.DefaultConfig()
	out := make(map[string]int, len(r.regs))
	for _, reg := range r.regs {
		out[reg.Name] = reg.New(cfg).Priority()
	}
	return out
}
