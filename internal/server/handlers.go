package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/color-notation-mcp/internal/config"
	"github.com/ironsheep/color-notation-mcp/internal/imaging"
	"github.com/ironsheep/color-notation-mcp/internal/metrics"
	"github.com/ironsheep/color-notation-mcp/internal/notation"
	"github.com/ironsheep/color-notation-mcp/internal/ocr"
	"github.com/ironsheep/color-notation-mcp/internal/preview"
	"github.com/ironsheep/color-notation-mcp/internal/scanner"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_scan", "color_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug() {
			log.Printf("tool %s failed: %v", params.Name, err)
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Text Scanning
	case "color_scan":
		return s.handleColorScan(args)
	case "color_convert":
		return s.handleColorConvert(args)

	// Documents
	case "document_update":
		return s.handleDocumentUpdate(args)
	case "document_close":
		return s.handleDocumentClose(args)
	case "color_code_actions":
		return s.handleColorCodeActions(args)

	// Previews
	case "color_swatch":
		return s.handleColorSwatch(args)
	case "color_compare":
		return s.handleColorCompare(args)

	// Image Colors
	case "color_sample_image":
		return s.handleColorSampleImage(args)
	case "color_palette_image":
		return s.handleColorPaletteImage(args)

	// OCR
	case "color_scan_image":
		return s.handleColorScanImage(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
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

// matchInfo is a match as reported to clients.
type matchInfo struct {
	Notation string         `json:"notation"`
	Text     string         `json:"text"`
	Start    int            `json:"start"`
	End      int            `json:"end"`
	Range    scanner.Range  `json:"range"`
	Color    notation.Color `json:"color"`
}

func describeMatches(text string, matches []scanner.Match) []matchInfo {
	infos := make([]matchInfo, 0, len(matches))
	for _, m := range matches {
		infos = append(infos, matchInfo{
			Notation: m.Notation.Name(),
			Text:     m.Text,
			Start:    m.Start,
			End:      m.End,
			Range: scanner.Range{
				Start: scanner.PositionAt(text, m.Start),
				End:   scanner.PositionAt(text, m.End),
			},
			Color: m.Color(),
		})
	}
	return infos
}

// parseLiteralArg parses a tool argument that must hold exactly one literal.
func parseLiteralArg(field, value string) (scanner.Match, error) {
	m, err := scanner.ParseLiteral(value)
	if err != nil {
		return scanner.Match{}, fmt.Errorf("%s: %w", field, err)
	}
	return m, nil
}

// === Text Scanning Handlers ===

type colorScanArgs struct {
	Text string `json:"text"`
}

type colorScanResult struct {
	Count   int         `json:"count"`
	Matches []matchInfo `json:"matches"`
}

func (s *Server) handleColorScan(args json.RawMessage) (interface{}, error) {
	var a colorScanArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	matches := scanner.Scan(a.Text)
	metrics.ObserveScan(metrics.SourceText, matches)
	return &colorScanResult{
		Count:   len(matches),
		Matches: describeMatches(a.Text, matches),
	}, nil
}

type colorConvertArgs struct {
	Literal string `json:"literal"`
	Text    string `json:"text"`
	Offset  *int   `json:"offset"`
}

type colorConvertResult struct {
	scanner.Conversion
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var m scanner.Match
	switch {
	case a.Literal != "" && a.Offset != nil:
		return nil, errors.New("pass either literal or text with offset, not both")
	case a.Literal != "":
		var err error
		if m, err = parseLiteralArg("literal", a.Literal); err != nil {
			return nil, err
		}
	case a.Offset != nil:
		if *a.Offset < 0 || *a.Offset > len(a.Text) {
			return nil, fmt.Errorf("offset %d outside text of length %d", *a.Offset, len(a.Text))
		}
		covering := scanner.Covering(scanner.Scan(a.Text), *a.Offset, *a.Offset)
		if len(covering) == 0 {
			return nil, fmt.Errorf("no color literal at offset %d", *a.Offset)
		}
		m = covering[0]
	default:
		return nil, errors.New("literal or text with offset is required")
	}

	conv := scanner.Convert(m)
	metrics.ObserveConversion(conv)
	return &colorConvertResult{Conversion: conv, Start: m.Start, End: m.End}, nil
}

// === Document Handlers ===

type documentUpdateArgs struct {
	URI     string `json:"uri"`
	Text    string `json:"text"`
	Version int    `json:"version"`
}

type documentUpdateResult struct {
	URI      string      `json:"uri"`
	Version  int         `json:"version"`
	Accepted bool        `json:"accepted"`
	Count    int         `json:"count"`
	Matches  []matchInfo `json:"matches"`
}

func (s *Server) handleDocumentUpdate(args json.RawMessage) (interface{}, error) {
	var a documentUpdateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.URI == "" {
		return nil, errors.New("uri is required")
	}
	if len(a.Text) > s.cfg.MaxDocumentBytes {
		return nil, fmt.Errorf("document is %d bytes, limit is %d", len(a.Text), s.cfg.MaxDocumentBytes)
	}

	snap, accepted := s.docs.Update(a.URI, a.Version, a.Text)
	if accepted {
		metrics.ObserveScan(metrics.SourceDocument, snap.Matches)
		metrics.Documents.Set(float64(s.docs.Len()))
	} else if s.cfg.Debug() {
		log.Printf("ignored stale update of %s: version %d < %d", a.URI, a.Version, snap.Version)
	}

	return &documentUpdateResult{
		URI:      snap.URI,
		Version:  snap.Version,
		Accepted: accepted,
		Count:    len(snap.Matches),
		Matches:  describeMatches(snap.Text, snap.Matches),
	}, nil
}

type documentCloseArgs struct {
	URI string `json:"uri"`
}

func (s *Server) handleDocumentClose(args json.RawMessage) (interface{}, error) {
	var a documentCloseArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	_, known := s.docs.Get(a.URI)
	s.docs.Evict(a.URI)
	metrics.Documents.Set(float64(s.docs.Len()))
	return map[string]interface{}{
		"uri":    a.URI,
		"closed": known,
	}, nil
}

type codeActionsArgs struct {
	URI   string `json:"uri"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type codeActionsResult struct {
	URI     string               `json:"uri"`
	Version int                  `json:"version"`
	Actions []scanner.CodeAction `json:"actions"`
}

func (s *Server) handleColorCodeActions(args json.RawMessage) (interface{}, error) {
	var a codeActionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	snap, ok := s.docs.Get(a.URI)
	if !ok {
		return nil, fmt.Errorf("document not open: %s", a.URI)
	}
	if a.Start < 0 || a.End < a.Start || a.End > len(snap.Text) {
		return nil, fmt.Errorf("invalid selection [%d, %d] for text of length %d", a.Start, a.End, len(snap.Text))
	}

	actions := snap.CodeActions(a.Start, a.End)
	if actions == nil {
		actions = []scanner.CodeAction{}
	}
	for _, m := range scanner.Covering(snap.Matches, a.Start, a.End) {
		metrics.ObserveConversion(scanner.Convert(m))
	}

	return &codeActionsResult{
		URI:     snap.URI,
		Version: snap.Version,
		Actions: actions,
	}, nil
}

// === Preview Handlers ===

type colorSwatchArgs struct {
	Literal string `json:"literal"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	m, err := parseLiteralArg("literal", a.Literal)
	if err != nil {
		return nil, err
	}

	size := config.SwatchCfg{
		Width:       a.Width,
		Height:      a.Height,
		CheckerSize: s.cfg.Swatch.CheckerSize,
	}
	if size.Width == 0 {
		size.Width = s.cfg.Swatch.Width
	}
	if size.Height == 0 {
		size.Height = s.cfg.Swatch.Height
	}
	if err := size.Validate(); err != nil {
		return nil, fmt.Errorf("swatch: %w", err)
	}

	return preview.Swatch(m.Color(), size.Width, size.Height, size.CheckerSize)
}

type colorCompareArgs struct {
	A string `json:"a"`
	B string `json:"b"`
}

func (s *Server) handleColorCompare(args json.RawMessage) (interface{}, error) {
	var a colorCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ma, err := parseLiteralArg("a", a.A)
	if err != nil {
		return nil, err
	}
	mb, err := parseLiteralArg("b", a.B)
	if err != nil {
		return nil, err
	}
	return preview.Compare(ma.Color(), mb.Color()), nil
}

// === Image Color Handlers ===

type colorSampleImageArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleColorSampleImage(args json.RawMessage) (interface{}, error) {
	var a colorSampleImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.images.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Sample(img, a.X, a.Y)
}

type colorPaletteImageArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
	X1    *int   `json:"x1"`
	Y1    *int   `json:"y1"`
	X2    *int   `json:"x2"`
	Y2    *int   `json:"y2"`
}

func (s *Server) handleColorPaletteImage(args json.RawMessage) (interface{}, error) {
	var a colorPaletteImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}

	var region *image.Rectangle
	switch countSet(a.X1, a.Y1, a.X2, a.Y2) {
	case 0:
	case 4:
		if *a.X1 >= *a.X2 || *a.Y1 >= *a.Y2 {
			return nil, fmt.Errorf("invalid region (%d,%d)-(%d,%d)", *a.X1, *a.Y1, *a.X2, *a.Y2)
		}
		r := image.Rect(*a.X1, *a.Y1, *a.X2, *a.Y2)
		region = &r
	default:
		return nil, errors.New("region needs all of x1, y1, x2 and y2")
	}

	img, err := s.images.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Palette(img, a.Count, region)
}

func countSet(values ...*int) int {
	n := 0
	for _, v := range values {
		if v != nil {
			n++
		}
	}
	return n
}

// === OCR Handlers ===

type colorScanImageArgs struct {
	Path     string `json:"path"`
	Language string `json:"language"`
}

func (s *Server) handleColorScanImage(args json.RawMessage) (interface{}, error) {
	var a colorScanImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	if a.Language == "" {
		a.Language = s.cfg.OCR.Language
	}

	result, matches, err := ocr.ScanColors(a.Path, a.Language)
	if err != nil {
		return nil, err
	}
	metrics.ObserveScan(metrics.SourceImage, matches)
	return result, nil
}
