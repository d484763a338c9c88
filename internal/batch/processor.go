package batch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/docsplit-mcp/internal/splitter"
	"github.com/dshills/docsplit-mcp/pkg/types"
)

// Config sizes the processor at construction time; the pool is not
// elastic.
type Config struct {
	Workers   int // concurrently executing tasks (default: runtime.NumCPU())
	CacheSize int // memoized split results (default: 512; negative disables)
}

const defaultCacheSize = 512

// Processor fans single-document splitting out across a fixed worker
// pool. Each task is one atomic unit of work; there is no intra-document
// parallelism and no per-task timeout. A per-task failure becomes a failed
// result and never poisons sibling tasks.
type Processor struct {
	workers  int
	registry *splitter.Registry
	cache    *lru.Cache[string, []types.Chunk]
	logger   *log.Logger
}

// New creates a processor backed by the given registry. A nil registry
// means the default splitter set; a nil config means defaults throughout.
func New(reg *splitter.Registry, cfg *Config) *Processor {
	if reg == nil {
		reg = splitter.DefaultRegistry()
	}
	workers, cacheSize := 0, 0
	if cfg != nil {
		workers = cfg.Workers
		cacheSize = cfg.CacheSize
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var cache *lru.Cache[string, []types.Chunk]
	if cacheSize >= 0 {
		if cacheSize == 0 {
			cacheSize = defaultCacheSize
		}
		cache, _ = lru.New[string, []types.Chunk](cacheSize)
	}
	return &Processor{
		workers:  workers,
		registry: reg,
		cache:    cache,
		logger:   log.NewWithOptions(os.Stderr, log.Options{Prefix: "batch"}),
	}
}

// Workers returns the pool size.
func (p *Processor) Workers() int { return p.workers }

// ProcessBatch runs every task and returns exactly one result per task,
// positionally aligned with the input. Submission is eager: all tasks are
// submitted immediately, so the in-flight count equals the batch size and
// the pool bounds only concurrently executing tasks. Cancelling ctx
// abandons queued tasks, which are reported as failed results.
func (p *Processor) ProcessBatch(ctx context.Context, tasks []types.Task) []types.Result {
	results := make([]types.Result, len(tasks))
	sem := make(chan struct{}, p.workers)
	g, gctx := errgroup.WithContext(ctx)

	for i := range tasks {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results[i] = types.Result{TaskID: tasks[i].ID, Error: gctx.Err().Error()}
				return nil
			case sem <- struct{}{}:
			}
			defer func() { <-sem }()
			results[i] = p.runTask(tasks[i])
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i := range results {
		if !results[i].Success {
			failed++
		}
	}
	p.logger.Info("batch complete", "tasks", len(tasks), "failed", failed, "workers", p.workers)
	return results
}

// Stream runs every task and yields results as they complete, in
// first-finished order. The channel is buffered to the batch size so a
// slow consumer never throttles execution; it is closed once every task
// has produced a result.
func (p *Processor) Stream(ctx context.Context, tasks []types.Task) <-chan types.Result {
	out := make(chan types.Result, len(tasks))
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case <-ctx.Done():
				out <- types.Result{TaskID: tasks[i].ID, Error: ctx.Err().Error()}
				return
			case sem <- struct{}{}:
			}
			defer func() { <-sem }()
			out <- p.runTask(tasks[i])
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// runTask processes one document. Panics are converted into failed
// results so a single bad task cannot take down the batch.
func (p *Processor) runTask(task types.Task) (res types.Result) {
	start := time.Now()
	res = types.Result{TaskID: task.ID}
	defer func() {
		if r := recover(); r != nil {
			res.Success = false
			res.Chunks = nil
			res.Error = fmt.Sprintf("panic: %v", r)
		}
		res.Duration = time.Since(start)
	}()

	// Only metadata-free tasks are memoized: caller metadata is merged
	// into chunk metadata and would leak across tasks otherwise.
	cacheable := p.cache != nil && len(task.Metadata) == 0
	key := ""
	if cacheable {
		key = cacheKey(task)
		if chunks, ok := p.cache.Get(key); ok {
			res.Chunks = append([]types.Chunk(nil), chunks...)
			res.Success = true
			return res
		}
	}

	chunks, err := splitter.Split(p.registry, task.Content, task.FileType, task.Config, task.Metadata)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Chunks = chunks
	res.Success = true
	if cacheable {
		p.cache.Add(key, chunks)
	}
	return res
}

// cacheKey hashes the content together with the file type and the full
// configuration so distinct settings never share cache entries.
func cacheKey(task types.Task) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%+v\x00", task.FileType, task.Config)
	h.Write([]byte(task.Content))
	return hex.EncodeToString(h.Sum(nil))
}
