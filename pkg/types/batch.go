package types

import "time"

// Task is one document submitted to the batch layer. Tasks are created by
// the caller and never persisted.
type Task struct {
	ID       string
	Content  string
	FileType string
	Config   Config
	Metadata map[string]any
}

// Result is the outcome of processing a single task. The batch layer
// guarantees exactly one result per submitted task; a per-task failure is
// recorded here and never aborts sibling tasks.
type Result struct {
	TaskID   string
	Chunks   []Chunk
	Success  bool
	Error    string
	Duration time.Duration
}
