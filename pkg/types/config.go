package types

// Strategy selects the splitting algorithm.
type Strategy string

const (
	// StrategyDelimiter applies the recursive separator-list algorithm.
	StrategyDelimiter Strategy = "delimiter"
	// StrategySemantic merges sentences at semantic boundaries.
	StrategySemantic Strategy = "semantic"
	// StrategyAuto lets the registry pick the best splitter for the input.
	StrategyAuto Strategy = "auto"
	// StrategyHierarchical produces two-level parent/child chunks.
	StrategyHierarchical Strategy = "hierarchical"
)

// Default configuration values.
const (
	DefaultChunkSize         = 1000
	DefaultChunkOverlap      = 100
	DefaultParentChunkSize   = 3000
	DefaultSemanticThreshold = 0.5
	DefaultBatchSize         = 32
)

// DefaultSeparators is the priority-ordered boundary list for the delimiter
// splitter. The terminal "" forces character-level slicing and guarantees
// termination.
func DefaultSeparators() []string {
	return []string{"\n\n", "\n", "。", ". ", " ", ""}
}

// Config controls a single splitting call. It is treated as immutable once
// passed to a splitter.
type Config struct {
	Strategy Strategy

	// ChunkSize is the target size in characters. Structural splitters
	// treat it as a floor (natural units win even when smaller) and a
	// safety ceiling; the delimiter splitter treats it as a hard ceiling.
	ChunkSize int

	// ChunkOverlap is the number of trailing characters of the previous
	// raw chunk copied into the next one. Only the delimiter splitter
	// injects overlap.
	ChunkOverlap int

	// Separators is the priority-ordered boundary list. An empty string
	// as the last entry means "split anywhere".
	Separators []string

	// UseSentenceBoundary and SemanticThreshold are advisory hints
	// consumed by the semantic splitter's heuristics.
	UseSentenceBoundary bool
	SemanticThreshold   float64

	// PreserveStructure and ASTParsing enable the structural and
	// AST-aware paths in the code splitter.
	PreserveStructure bool
	ASTParsing        bool

	// EnableHierarchy activates two-level splitting; ParentChunkSize is
	// the coarse pass target.
	EnableHierarchy bool
	ParentChunkSize int

	// MaxWorkers and BatchSize size the batch-processing layer.
	MaxWorkers int
	BatchSize  int
}

// DefaultConfig returns a fully populated configuration.
func DefaultConfig() Config {
	return Config{
		Strategy:            StrategyAuto,
		ChunkSize:           DefaultChunkSize,
		ChunkOverlap:        DefaultChunkOverlap,
		Separators:          DefaultSeparators(),
		UseSentenceBoundary: true,
		SemanticThreshold:   DefaultSemanticThreshold,
		PreserveStructure:   true,
		ASTParsing:          true,
		ParentChunkSize:     DefaultParentChunkSize,
		BatchSize:           DefaultBatchSize,
	}
}

// Validate rejects configurations that cannot be normalized into something
// usable. Zero values are legal (Normalized fills them in); negative sizes
// are not.
func (c Config) Validate() error {
	if c.ChunkSize < 0 {
		return ErrInvalidChunkSize
	}
	if c.ChunkOverlap < 0 {
		return ErrInvalidChunkOverlap
	}
	if c.ParentChunkSize < 0 {
		return ErrInvalidChunkSize
	}
	return nil
}

// Normalized returns a copy with defaults applied and invariants enforced:
// the separator list ends with "", the overlap is strictly smaller than the
// chunk size (clamped to a quarter of the size when out of range), and the
// parent chunk size is at least the chunk size.
func (c Config) Normalized() Config {
	out := c
	if out.Strategy == "" {
		out.Strategy = StrategyAuto
	}
	if out.ChunkSize <= 0 {
		out.ChunkSize = DefaultChunkSize
	}
	if len(out.Separators) == 0 {
		out.Separators = DefaultSeparators()
	} else if out.Separators[len(out.Separators)-1] != "" {
		out.Separators = append(append([]string{}, out.Separators...), "")
	}
	if out.ChunkOverlap < 0 {
		out.ChunkOverlap = 0
	}
	if out.ChunkOverlap >= out.ChunkSize {
		out.ChunkOverlap = out.ChunkSize / 4
	}
	if out.SemanticThreshold <= 0 || out.SemanticThreshold > 1 {
		out.SemanticThreshold = DefaultSemanticThreshold
	}
	if out.ParentChunkSize < out.ChunkSize {
		out.ParentChunkSize = out.ChunkSize * 3
	}
	if out.BatchSize <= 0 {
		out.BatchSize = DefaultBatchSize
	}
	return out
}
