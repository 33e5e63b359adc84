package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func integerProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Text Scanning
		{
			Name:        "color_scan",
			Description: "Find every color literal in a piece of text. Recognizes hsl(h, s, l), rgb(r, g, b), rgba(r, g, b, a), #rgb, #rrggbb and #rrggbbaa. Returns each literal's notation, byte span, line/character range and parsed color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": stringProp("Text to scan, such as a stylesheet or source file"),
				},
				"required": []string{"text"},
			},
		},
		{
			Name:        "color_convert",
			Description: "Convert a color literal into every other notation. Pass either a single literal, or a text and a byte offset inside the literal to convert.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"literal": stringProp("A single color literal, e.g. \"#ff8040\" or \"rgb(255, 128, 64)\""),
					"text":    stringProp("Text containing the literal (used with offset)"),
					"offset":  integerProp("Byte offset inside text that falls within the literal"),
				},
			},
		},

		// Documents
		{
			Name:        "document_update",
			Description: "Store the full text of an open document and scan it for color literals. Replaces any earlier version; updates with a lower version than the stored one are ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"uri":     stringProp("Document URI, e.g. file:///project/site.css"),
					"text":    stringProp("Full document text"),
					"version": integerProp("Document version; must not go backwards"),
				},
				"required": []string{"uri", "text", "version"},
			},
		},
		{
			Name:        "document_close",
			Description: "Forget a stored document.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"uri": stringProp("Document URI"),
				},
				"required": []string{"uri"},
			},
		},
		{
			Name:        "color_code_actions",
			Description: "List quick-fixes that rewrite the color literals under a selection of a stored document into other notations. Each action carries the span to replace and the new text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"uri":   stringProp("Document URI previously passed to document_update"),
					"start": integerProp("Selection start as a byte offset"),
					"end":   integerProp("Selection end as a byte offset (equal to start for a cursor)"),
				},
				"required": []string{"uri", "start", "end"},
			},
		},

		// Previews
		{
			Name:        "color_swatch",
			Description: "Render a color literal as a base64-encoded PNG swatch. Translucent colors are drawn over a checkerboard.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"literal": stringProp("A single color literal"),
					"width":   integerProp("Swatch width in pixels (default from config)"),
					"height":  integerProp("Swatch height in pixels (default from config)"),
				},
				"required": []string{"literal"},
			},
		},
		{
			Name:        "color_compare",
			Description: "Compare two color literals. Returns the CIEDE2000 perceptual distance, the WCAG contrast ratio and the WCAG level the pair passes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": stringProp("First color literal"),
					"b": stringProp("Second color literal"),
				},
				"required": []string{"a", "b"},
			},
		},

		// Image Colors
		{
			Name:        "color_sample_image",
			Description: "Read the color of one pixel of an image and write it in every notation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the image file"),
					"x":    integerProp("X coordinate (0 = leftmost pixel)"),
					"y":    integerProp("Y coordinate (0 = topmost pixel)"),
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "color_palette_image",
			Description: "List the most common colors of an image or a region of it, each written in every notation. Similar colors are grouped together.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  stringProp("Absolute path to the image file"),
					"count": integerProp("Maximum number of colors to return (default 5)"),
					"x1":    integerProp("Optional region left edge (inclusive)"),
					"y1":    integerProp("Optional region top edge (inclusive)"),
					"x2":    integerProp("Optional region right edge (exclusive)"),
					"y2":    integerProp("Optional region bottom edge (exclusive)"),
				},
				"required": []string{"path"},
			},
		},

		// OCR
		{
			Name:        "color_scan_image",
			Description: "Read the text in an image with OCR and find the color literals in it, such as in a screenshot of a stylesheet. Returns the recognized text and each literal with its pixel bounds.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":     stringProp("Absolute path to the image file"),
					"language": stringProp("Tesseract language code (default from config, usually \"eng\")"),
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
