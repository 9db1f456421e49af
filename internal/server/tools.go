package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func regionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Optional region; (x1,y1) inclusive, (x2,y2) exclusive",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Text Format
		{
			Name:        "rgb_validate",
			Description: "Check an RGB text file (or inline text) against the format rules. Returns valid=true with the raster size, or the first violation with its kind and (x, y) location.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to a .txt RGB file"),
					"text": map[string]interface{}{
						"type":        "string",
						"description": "RGB text to validate when no path is given",
					},
				},
			},
		},
		{
			Name:        "rgb_load",
			Description: "Load an RGB text file or image and return its dimensions, format, file size and per-channel statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to a .txt RGB file or an image file"),
				},
				"required": []string{"path"},
			},
		},

		// Conversion
		{
			Name:        "rgb_encode",
			Description: "Convert an image to RGB text. Writes the text to dst when given, otherwise returns it inline. An optional region and scale are applied first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty("Absolute path to the source image"),
					"dst":    pathProperty("Optional .txt destination"),
					"region": regionProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 0.5 to halve size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "rgb_decode",
			Description: "Validate an RGB text file and write it as an image. The destination extension selects the format (.png, .jpg, .gif, .bmp, .tiff).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the .txt RGB file"),
					"dst":  pathProperty("Absolute path of the image to write"),
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality 1-100. Defaults to the server setting",
					},
				},
				"required": []string{"path", "dst"},
			},
		},

		// Analysis
		{
			Name:        "rgb_compare",
			Description: "Compare two rasters (RGB text or image files) pixel by pixel and report the first difference.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"want": pathProperty("Absolute path to the expected raster"),
					"got":  pathProperty("Absolute path to the actual raster"),
				},
				"required": []string{"want", "got"},
			},
		},
		{
			Name:        "rgb_sample_color",
			Description: "Get the color at a pixel as hex, RGB, HSL and RGB text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to a .txt RGB file or an image file"),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "rgb_dominant_colors",
			Description: "Extract the most common colors, quantized to steps of 16, with their share of the pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to a .txt RGB file or an image file"),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
					"region": regionProperty(),
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
