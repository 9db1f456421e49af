package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/rgbconv/internal/convert"
	"github.com/ironsheep/rgbconv/internal/imaging"
	"github.com/ironsheep/rgbconv/internal/raster"
	"github.com/ironsheep/rgbconv/internal/rgbfile"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "rgb_load", "rgb_encode").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// FormatErrorData is the structured form of an *rgbfile.FormatError carried
// in the data field of a failed tool call.
type FormatErrorData struct {
	Kind    string `json:"kind"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Message string `json:"message"`
}

func formatErrorData(fe *rgbfile.FormatError) *FormatErrorData {
	return &FormatErrorData{Kind: fe.Kind.String(), X: fe.X, Y: fe.Y, Message: fe.Error()}
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// When the failure is a malformed RGB file the data field holds a
// FormatErrorData, otherwise the error string.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.log.Debug("tool failed", "tool", params.Name, "err", err)
		var fe *rgbfile.FormatError
		if errors.As(err, &fe) {
			return s.errorResponse(req.ID, -32000, "Tool execution failed", formatErrorData(fe))
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads rasters from text files or the image cache as needed
//  4. Calls the appropriate rgbfile/imaging/convert function
//  5. Returns the result or error
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Text Format
	case "rgb_validate":
		return s.handleValidate(args)
	case "rgb_load":
		return s.handleLoad(args)

	// Conversion
	case "rgb_encode":
		return s.handleEncode(ctx, args)
	case "rgb_decode":
		return s.handleDecode(ctx, args)

	// Analysis
	case "rgb_compare":
		return s.handleCompare(args)
	case "rgb_sample_color":
		return s.handleSampleColor(args)
	case "rgb_dominant_colors":
		return s.handleDominantColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// load returns the raster stored at path. Text files are read fresh on every
// call; images go through the cache.
func (s *Server) load(path string) (*raster.Grid, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}
	if imaging.IsImagePath(path) {
		return s.cache.Load(path)
	}
	return convert.LoadAny(path)
}

// === Text Format Handlers ===

type validateArgs struct {
	Path string `json:"path"`
	Text string `json:"text"`
}

type validateResult struct {
	Valid  bool             `json:"valid"`
	Width  int              `json:"width,omitempty"`
	Height int              `json:"height,omitempty"`
	Error  *FormatErrorData `json:"error,omitempty"`
}

func (s *Server) handleValidate(args json.RawMessage) (interface{}, error) {
	var a validateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	text := a.Text
	if a.Path != "" {
		g, err := rgbfile.LoadFile(a.Path)
		var fe *rgbfile.FormatError
		switch {
		case errors.As(err, &fe):
			return &validateResult{Error: formatErrorData(fe)}, nil
		case err != nil:
			return nil, err
		}
		return &validateResult{Valid: true, Width: g.Width(), Height: g.Height()}, nil
	}

	var fe *rgbfile.FormatError
	if errors.As(rgbfile.Validate(text), &fe) {
		return &validateResult{Error: formatErrorData(fe)}, nil
	}
	return &validateResult{
		Valid:  true,
		Width:  rgbfile.ComputeWidth(text),
		Height: rgbfile.ComputeHeight(text),
	}, nil
}

type loadArgs struct {
	Path string `json:"path"`
}

type loadResult struct {
	*imaging.ImageInfo
	Stats *imaging.StatsResult `json:"stats"`
}

func (s *Server) handleLoad(args json.RawMessage) (interface{}, error) {
	var a loadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	info, err := imaging.LoadImageInfo(g, a.Path)
	if err != nil {
		return nil, err
	}
	return &loadResult{ImageInfo: info, Stats: imaging.Stats(g)}, nil
}

// === Conversion Handlers ===

type encodeArgs struct {
	Path   string          `json:"path"`
	Dst    string          `json:"dst"`
	Region *imaging.Region `json:"region"`
	Scale  float64         `json:"scale"`
}

type encodeResult struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Dst    string `json:"dst,omitempty"`
	Text   string `json:"text,omitempty"`
}

func (s *Server) handleEncode(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a encodeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	if !imaging.IsImagePath(a.Path) {
		return nil, fmt.Errorf("unsupported image format: %s", a.Path)
	}

	if a.Dst != "" {
		if !imaging.IsTextPath(a.Dst) {
			return nil, fmt.Errorf("rgb_encode writes RGB text: dst must end with %s", imaging.TextExt)
		}
		opts := convert.Options{Src: a.Path, Dst: a.Dst, Region: a.Region, Scale: a.Scale, Logger: s.log}
		if err := convert.Run(ctx, opts); err != nil {
			return nil, err
		}
		g, err := rgbfile.LoadFile(a.Dst)
		if err != nil {
			return nil, err
		}
		return &encodeResult{Width: g.Width(), Height: g.Height(), Dst: a.Dst}, nil
	}

	g, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Crop(g, a.Region, a.Scale)
	if err != nil {
		return nil, err
	}
	src := raster.FromImage(img)
	return &encodeResult{Width: src.Width(), Height: src.Height(), Text: rgbfile.Save(src)}, nil
}

type decodeArgs struct {
	Path    string `json:"path"`
	Dst     string `json:"dst"`
	Quality int    `json:"quality"`
}

func (s *Server) handleDecode(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a decodeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Quality == 0 {
		a.Quality = s.jpegQuality
	}
	if !imaging.IsTextPath(a.Path) {
		return nil, fmt.Errorf("rgb_decode reads RGB text: path must end with %s", imaging.TextExt)
	}
	if !imaging.IsImagePath(a.Dst) {
		return nil, fmt.Errorf("unsupported image format: %s", a.Dst)
	}

	opts := convert.Options{Src: a.Path, Dst: a.Dst, JPEGQuality: a.Quality, Logger: s.log}
	if err := convert.Run(ctx, opts); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Dst)

	g, err := s.cache.Load(a.Dst)
	if err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(g, a.Dst)
}

// === Analysis Handlers ===

type compareArgs struct {
	Want string `json:"want"`
	Got  string `json:"got"`
}

func (s *Server) handleCompare(args json.RawMessage) (interface{}, error) {
	var a compareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	want, err := s.load(a.Want)
	if err != nil {
		return nil, err
	}
	got, err := s.load(a.Got)
	if err != nil {
		return nil, err
	}
	return imaging.Compare(want, got), nil
}

type sampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(g, a.X, a.Y)
}

type dominantColorsArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Region *imaging.Region `json:"region"`
}

func (s *Server) handleDominantColors(args json.RawMessage) (interface{}, error) {
	var a dominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	g, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(g, a.Count, a.Region)
}
