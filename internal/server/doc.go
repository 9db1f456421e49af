// Package server implements the MCP (Model Context Protocol) server for RGB
// text files.
//
// This package provides a JSON-RPC 2.0 server that exposes validation,
// conversion and inspection of RGB text files through the MCP protocol.
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
// Text Format:
//   - rgb_validate: Run the format checks on a file or inline text
//   - rgb_load: Dimensions, format and channel statistics
//
// Conversion:
//   - rgb_encode: Image to RGB text, inline or to a file
//   - rgb_decode: RGB text to an image file
//
// Analysis:
//   - rgb_compare: Pixel comparison with the first difference
//   - rgb_sample_color: Color at a pixel
//   - rgb_dominant_colors: Color palette
//
// Every tool that takes a path accepts either an RGB text file (.txt) or an
// image file.
//
// # Image Caching
//
// Decoded images are cached by path until Serve returns, which empties the
// cache. Text files are re-read on every call. rgb_decode evicts its destination so later
// calls see the new pixels.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: {"kind", "x", "y", "message"} for a malformed RGB file,
//     otherwise the Go error string
//
// # Usage
//
//	srv := server.New(server.WithVersion(version))
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
