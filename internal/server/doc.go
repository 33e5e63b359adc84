// Package server implements the MCP (Model Context Protocol) server for color
// literal tools.
//
// The server stands in for an editor integration: clients send text or whole
// documents, and get back the color literals in them, their conversions into
// other notations, and quick-fixes that rewrite a literal in place.
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
// Text Scanning:
//   - color_scan: Find every literal in a text
//   - color_convert: Convert one literal into every other notation
//
// Documents:
//   - document_update: Store and scan the full text of a document
//   - document_close: Forget a document
//   - color_code_actions: Quick-fixes for the literals under a selection
//
// Previews:
//   - color_swatch: Render a literal as a PNG swatch
//   - color_compare: Perceptual distance and contrast of two literals
//
// Image Colors:
//   - color_sample_image: Color of one pixel in every notation
//   - color_palette_image: Most common colors of an image or region
//
// OCR:
//   - color_scan_image: Find literals in the text of an image
//
// # Documents
//
// Each document URI holds the scan of its latest text. Every update rescans
// the whole text; updates carrying a lower version than the stored one are
// ignored. Documents larger than the configured max_document_bytes are
// rejected.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
