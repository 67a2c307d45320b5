// Package server implements the MCP (Model Context Protocol) server for radial band analysis.
//
// This package provides a JSON-RPC 2.0 server that exposes specimen band
// analysis through the MCP protocol, so an MCP client can inspect band colors
// without running the command-line tool.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata, refreshing any cached copy
//   - specimen_bands: Band geometry (radii and pixel counts) for a band width
//   - specimen_analyze: Per-band average colors, CSV report, annotated image
//
// # Image Caching
//
// Images are cached by path and reused across tool calls. image_load always
// re-reads the file, so call it after a specimen photo changes on disk.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
