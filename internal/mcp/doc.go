// Package mcp exposes document splitting over the Model Context Protocol.
//
// The server speaks MCP over stdio and registers three tools:
//
//   - split_document: split one document into chunks
//   - split_batch: split many documents concurrently, one result per task
//   - get_strategies: list strategies, registered splitters, and defaults
//
// Tool handlers validate arguments, build a splitting configuration from
// defaults plus the keys the caller supplied, and delegate to the splitter
// registry (single documents) or the batch processor (batches). All
// diagnostics go to stderr; stdout carries only protocol frames.
//
// Errors are returned as MCPError values carrying a JSON-RPC error code
// and structured data; a failed task inside a batch is not an error at
// this layer, it is a failed entry in the result list.
package mcp
