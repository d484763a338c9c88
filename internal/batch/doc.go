// Package batch parallelizes document splitting across a fixed worker pool.
//
// Individual splitters are pure synchronous functions; all concurrency in
// the system lives here. The pool size is set at construction and bounds
// only concurrently executing tasks. Submission is eager, so every task in
// a batch is in flight (queued or running) as soon as it is submitted.
//
// # Usage
//
//	proc := batch.New(splitter.DefaultRegistry(), &batch.Config{Workers: 8})
//	results := proc.ProcessBatch(ctx, tasks)
//	for _, res := range results {
//	    if !res.Success {
//	        log.Warn("task failed", "id", res.TaskID, "error", res.Error)
//	    }
//	}
//
// ProcessBatch guarantees exactly one result per submitted task. Per-task
// failures (including panics) are caught and recorded on that task's
// result; they never abort sibling tasks.
//
// # Streaming
//
// Stream yields results as tasks finish, in completion order rather than
// submission order:
//
//	for res := range proc.Stream(ctx, tasks) {
//	    store(res)
//	}
//
// The stream channel is buffered to the batch size, so a slow consumer
// does not reduce concurrent execution.
//
// # Memoization
//
// Identical metadata-free tasks (same content, file type, and
// configuration) are served from an LRU cache of recent split results.
// This is intra-processor memoization, not cross-document deduplication of
// chunk content.
package batch
