package api

import "github.com/19h/isa-classifier-sub000/isa"

// ErrorResponse is the uniform error body for every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ClassifyRequest is the JSON body of POST /api/v1/classify and
// /api/v1/classify/multi. Path is read from local disk by the server; the
// struct has no field for inline data; callers send raw bytes instead as
// the request body with Content-Type: application/octet-stream.
type ClassifyRequest struct {
	Path string `json:"path,omitempty"`

	MinConfidence    *float64 `json:"minConfidence,omitempty"`
	MaxScanBytes     *int     `json:"maxScanBytes,omitempty"`
	DeepScan         *bool    `json:"deepScan,omitempty"`
	DetectExtensions *bool    `json:"detectExtensions,omitempty"`
	FastMode         *bool    `json:"fastMode,omitempty"`
}

func (r ClassifyRequest) applyTo(opts isa.ClassifierOptions) isa.ClassifierOptions {
	if r.MinConfidence != nil {
		opts.MinConfidence = *r.MinConfidence
	}
	if r.MaxScanBytes != nil {
		opts.MaxScanBytes = *r.MaxScanBytes
	}
	if r.DeepScan != nil {
		opts.DeepScan = *r.DeepScan
	}
	if r.DetectExtensions != nil {
		opts.DetectExtensions = *r.DetectExtensions
	}
	if r.FastMode != nil {
		opts.FastMode = *r.FastMode
	}
	return opts
}

// ClassificationResponse mirrors isa.ClassificationResult over JSON.
type ClassificationResponse struct {
	Isa        string            `json:"isa"`
	Bitwidth   int               `json:"bitwidth"`
	Endianness string            `json:"endianness"`
	Variant    string            `json:"variant,omitempty"`
	Extensions []ExtensionEntry  `json:"extensions,omitempty"`
	Source     string            `json:"source"`
	Format     string            `json:"format"`
	Confidence float64           `json:"confidence"`
	Metadata   MetadataResponse  `json:"metadata"`
}

// ExtensionEntry mirrors isa.Extension over JSON.
type ExtensionEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// MetadataResponse mirrors isa.Metadata over JSON.
type MetadataResponse struct {
	EntryPoint   uint64 `json:"entryPoint,omitempty"`
	HasEntry     bool   `json:"hasEntry"`
	Flags        uint32 `json:"flags,omitempty"`
	RawMachine   uint32 `json:"rawMachine,omitempty"`
	ScannedBytes int    `json:"scannedBytes"`
}

func classificationToResponse(r isa.ClassificationResult) ClassificationResponse {
	exts := make([]ExtensionEntry, 0, len(r.Extensions))
	for _, e := range r.Extensions {
		exts = append(exts, ExtensionEntry{Name: e.Name, Category: e.Category.String()})
	}
	return ClassificationResponse{
		Isa:        r.Isa.String(),
		Bitwidth:   r.Bitwidth,
		Endianness: r.Endianness.String(),
		Variant:    r.Variant,
		Extensions: exts,
		Source:     r.Source.String(),
		Format:     r.Format.String(),
		Confidence: r.Confidence,
		Metadata: MetadataResponse{
			EntryPoint:   r.Metadata.EntryPoint,
			HasEntry:     r.Metadata.HasEntry,
			Flags:        r.Metadata.Flags,
			RawMachine:   r.Metadata.RawMachine,
			ScannedBytes: r.Metadata.ScannedBytes,
		},
	}
}

// ArchitectureScoreResponse mirrors isa.ArchitectureScore over JSON.
type ArchitectureScoreResponse struct {
	Isa        string  `json:"isa"`
	RawScore   int64   `json:"rawScore"`
	Confidence float64 `json:"confidence"`
	Endianness string  `json:"endianness"`
	Bitwidth   int     `json:"bitwidth"`
}

func scoreToResponse(s isa.ArchitectureScore) ArchitectureScoreResponse {
	return ArchitectureScoreResponse{
		Isa:        s.Isa.String(),
		RawScore:   s.RawScore,
		Confidence: s.Confidence,
		Endianness: s.Endianness.String(),
		Bitwidth:   s.Bitwidth,
	}
}

// DetectedIsaResponse mirrors isa.DetectedIsa over JSON.
type DetectedIsaResponse struct {
	Isa         string  `json:"isa"`
	WindowCount int     `json:"windowCount"`
	TotalBytes  int     `json:"totalBytes"`
	AvgScore    float64 `json:"avgScore"`
	Endianness  string  `json:"endianness"`
	Bitwidth    int     `json:"bitwidth"`
}

func detectedToResponse(d isa.DetectedIsa) DetectedIsaResponse {
	return DetectedIsaResponse{
		Isa:         d.Isa.String(),
		WindowCount: d.WindowCount,
		TotalBytes:  d.TotalBytes,
		AvgScore:    d.AvgScore,
		Endianness:  d.Endianness.String(),
		Bitwidth:    d.Bitwidth,
	}
}

// ClassifierOptionsRequest is the body of PUT /api/v1/config.
type ClassifierOptionsRequest struct {
	MinConfidence    *float64 `json:"minConfidence,omitempty"`
	MaxScanBytes     *int     `json:"maxScanBytes,omitempty"`
	DeepScan         *bool    `json:"deepScan,omitempty"`
	DetectExtensions *bool    `json:"detectExtensions,omitempty"`
	FastMode         *bool    `json:"fastMode,omitempty"`
}

func (r ClassifierOptionsRequest) toOptions(base isa.ClassifierOptions) isa.ClassifierOptions {
	return ClassifyRequest{
		MinConfidence:    r.MinConfidence,
		MaxScanBytes:     r.MaxScanBytes,
		DeepScan:         r.DeepScan,
		DetectExtensions: r.DetectExtensions,
		FastMode:         r.FastMode,
	}.applyTo(base)
}

