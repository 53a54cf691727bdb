package isa

// FormatSniffer is the external-format adapter contract (C9). It returns
// ok=false when the input lacks the format's magic, letting Analyze fall
// back to heuristics. Concrete sniffers (ELF/PE/Mach-O/kernel image) live
// in the formats package and register themselves here at init time, the
// way database/sql drivers register themselves — this keeps the isa
// package free of any dependency on format-specific parsing code.
type FormatSniffer func(data []byte) (ClassificationResult, bool)

var formatSniffers []FormatSniffer

// RegisterFormatSniffer adds a format adapter that Analyze tries before
// falling back to the heuristic rank-off. Intended to be called from an
// init() function in an adapter package.
func RegisterFormatSniffer(s FormatSniffer) {
	formatSniffers = append(formatSniffers, s)
}

const minScoreableBytes = 4

// Analyze is the top-level entry point (C8): try every registered format
// adapter first (a signed header always wins over heuristics), then fall
// back to the rank-off engine, enforcing options.MinConfidence.
func Analyze(data []byte, options ClassifierOptions) (ClassificationResult, error) {
	for _, sniff := range formatSniffers {
		if result, ok := sniff(data); ok {
			return result, nil
		}
	}

	if len(data) < minScoreableBytes {
		return ClassificationResult{}, NewFileTooSmall(minScoreableBytes, len(data))
	}

	// All-constant input (zero padding, erased flash) is inconclusive
	// without scoring, the same test the window pre-filter applies.
	if isAllConstant(data) {
		return ClassificationResult{}, NewInconclusive(0, options.MinConfidence, Isa{})
	}

	top := TopCandidates(data, 1, options)
	if len(top) == 0 {
		return ClassificationResult{}, NewInconclusive(0, options.MinConfidence, Isa{})
	}

	best := top[0]
	if best.Confidence < options.MinConfidence {
		return ClassificationResult{}, NewInconclusive(best.Confidence, options.MinConfidence, best.Isa)
	}

	result := ClassificationResult{
		Isa:        best.Isa,
		Bitwidth:   best.Bitwidth,
		Endianness: best.Endianness,
		Source:     SourceHeuristic,
		Format:     FormatRaw,
		Confidence: best.Confidence,
		Metadata: Metadata{
			ScannedBytes: minInt(len(data), options.MaxScanBytes),
		},
	}

	if options.DetectExtensions {
		result.Extensions = detectExtensions(data, best.Isa, best.Endianness)
	}

	return result, nil
}

func minInt(a, b int) int {
	if b <= 0 {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// extensionDetector is wired by the extensions package the same way
// format sniffers are, so the core never imports it directly.
var extensionDetector func(data []byte, isa Isa, end Endianness) []Extension

// RegisterExtensionDetector installs the secondary extension-detection
// pass (C15). Intended to be called from an init() function.
func RegisterExtensionDetector(fn func(data []byte, isa Isa, end Endianness) []Extension) {
	extensionDetector = fn
}

func detectExtensions(data []byte, winner Isa, end Endianness) []Extension {
	if extensionDetector == nil {
		return nil
	}
	return extensionDetector(data, winner, end)
}
