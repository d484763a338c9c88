package types

import "errors"

// Domain errors for type validation
var (
	// Chunk validation errors
	ErrEmptyChunk          = errors.New("chunk content cannot be empty")
	ErrChunkTooLarge       = errors.New("chunk exceeds twice the configured chunk size")
	ErrInvalidQualityScore = errors.New("quality score must be between 0 and 1")

	// Config validation errors
	ErrInvalidChunkSize    = errors.New("chunk size cannot be negative")
	ErrInvalidChunkOverlap = errors.New("chunk overlap cannot be negative")
)
