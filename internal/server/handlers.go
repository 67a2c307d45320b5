package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"

	"github.com/ironsheep/specimen-bands/internal/analysis"
	"github.com/ironsheep/specimen-bands/internal/config"
	"github.com/ironsheep/specimen-bands/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "specimen_analyze").
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
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "specimen_bands":
		return s.handleSpecimenBands(args)
	case "specimen_analyze":
		return s.handleSpecimenAnalyze(args)
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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Path)
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// BandLayout describes one band's geometry.
type BandLayout struct {
	Index       int `json:"index"`
	Ring        int `json:"ring"`
	InnerRadius int `json:"inner_radius"`
	OuterRadius int `json:"outer_radius"`
	Pixels      int `json:"pixels"`
}

// BandLayoutResult is returned by specimen_bands.
type BandLayoutResult struct {
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	BandWidth int           `json:"band_width"`
	Center    imaging.Point `json:"center"`
	BandCount int           `json:"band_count"`
	Bands     []BandLayout  `json:"bands"`
}

type specimenBandsArgs struct {
	Path      string `json:"path"`
	BandWidth int    `json:"band_width"`
}

func (s *Server) handleSpecimenBands(args json.RawMessage) (interface{}, error) {
	a := specimenBandsArgs{BandWidth: config.DefaultBandWidth}
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	bands, err := imaging.PartitionBands(width, height, a.BandWidth)
	if err != nil {
		return nil, err
	}

	center := imaging.Center(width, height)
	result := &BandLayoutResult{
		Width:     width,
		Height:    height,
		BandWidth: a.BandWidth,
		Center:    imaging.Point{X: center.X, Y: center.Y},
		BandCount: len(bands),
		Bands:     make([]BandLayout, len(bands)),
	}
	for i, b := range bands {
		inner, outer := b.Radii(a.BandWidth)
		result.Bands[i] = BandLayout{
			Index:       i,
			Ring:        b.Ring,
			InnerRadius: inner,
			OuterRadius: outer,
			Pixels:      len(b.Points),
		}
	}
	return result, nil
}

// BandColor is one band of a specimen_analyze result.
type BandColor struct {
	BandLayout
	Color imaging.ColorResult `json:"color"`

	// DeltaE is the CIEDE2000 distance from the previous band's color.
	// Absent for the first band.
	DeltaE *float64 `json:"delta_e,omitempty"`
}

// AnalyzeResult is returned by specimen_analyze.
type AnalyzeResult struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	BandWidth   int           `json:"band_width"`
	Center      imaging.Point `json:"center"`
	BandCount   int           `json:"band_count"`
	Bands       []BandColor   `json:"bands"`
	ReportPath  string        `json:"report_path,omitempty"`
	ImageBase64 string        `json:"image_base64,omitempty"`
	MimeType    string        `json:"mime_type,omitempty"`
}

type specimenAnalyzeArgs struct {
	Path         string `json:"path"`
	BandWidth    int    `json:"band_width"`
	WriteReport  *bool  `json:"write_report"`
	ReportPath   string `json:"report_path"`
	IncludeImage bool   `json:"include_image"`
}

func (s *Server) handleSpecimenAnalyze(args json.RawMessage) (interface{}, error) {
	a := specimenAnalyzeArgs{BandWidth: config.DefaultBandWidth}
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	res, err := s.analyzer.Analyze(a.Path, a.BandWidth)
	if err != nil {
		return nil, err
	}

	out := &AnalyzeResult{
		Width:     res.Width,
		Height:    res.Height,
		BandWidth: res.BandWidth,
		Center:    res.Center,
		BandCount: len(res.Bands),
		Bands:     make([]BandColor, len(res.Bands)),
	}
	for i, b := range res.Bands {
		out.Bands[i] = BandColor{
			BandLayout: BandLayout{
				Index:       b.Index,
				Ring:        b.Ring,
				InnerRadius: b.InnerRadius,
				OuterRadius: b.OuterRadius,
				Pixels:      b.Pixels,
			},
			Color: imaging.DescribeColor(b.Average),
		}
		if i > 0 {
			d := imaging.ColorDistance(res.Bands[i-1].Average, b.Average)
			out.Bands[i].DeltaE = &d
		}
	}

	if a.WriteReport == nil || *a.WriteReport {
		reportPath := a.ReportPath
		if reportPath == "" {
			reportPath = a.Path + config.ReportSuffix
		}
		if err := analysis.WriteReport(reportPath, res.Averages); err != nil {
			return nil, err
		}
		out.ReportPath = reportPath
	}

	if a.IncludeImage {
		var buf bytes.Buffer
		if err := png.Encode(&buf, res.Annotated); err != nil {
			return nil, fmt.Errorf("failed to encode annotated image: %w", err)
		}
		out.ImageBase64 = base64.StdEncoding.EncodeToString(buf.Bytes())
		out.MimeType = "image/png"
	}

	return out, nil
}
