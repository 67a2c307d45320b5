package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and band center. Re-reads the file even if it was loaded before.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "specimen_bands",
			Description: "Describe how an image splits into concentric bands around its center: band count, radii and pixel count per band. Does not compute colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"band_width": map[string]interface{}{
						"type":        "integer",
						"description": "Band width in pixels. Default 10",
						"default":     10,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "specimen_analyze",
			Description: "Average the color of each concentric band around the image center. Returns per-band RGB, hex and HSL colors with the perceptual distance to the previous band, and optionally writes the CSV report and returns the annotated image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"band_width": map[string]interface{}{
						"type":        "integer",
						"description": "Band width in pixels. Default 10",
						"default":     10,
					},
					"write_report": map[string]interface{}{
						"type":        "boolean",
						"description": "Write <path>_analysis.csv (or report_path). Default true",
						"default":     true,
					},
					"report_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional report destination overriding <path>_analysis.csv",
					},
					"include_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the annotated image as base64 PNG. Default false",
						"default":     false,
					},
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
