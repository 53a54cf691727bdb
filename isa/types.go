package isa

// ClassifierOptions configures every analysis call. The zero value is not
// meaningful on its own; use DefaultOptions.
type ClassifierOptions struct {
	// MinConfidence is the lower bound for accepting a result (typical 0.15).
	MinConfidence float64
	// MaxScanBytes bounds how many bytes are scored in single-ISA mode.
	MaxScanBytes int
	// DeepScan enables extra pattern passes in scorers that support them.
	DeepScan bool
	// DetectExtensions runs the extension pass on the winning ISA.
	DetectExtensions bool
	// FastMode skips the most expensive scorers.
	FastMode bool
}

// DefaultOptions mirrors the values quoted throughout the design: a 0.15
// confidence floor and a 64 KiB scan window, extensions off by default.
func DefaultOptions() ClassifierOptions {
	return ClassifierOptions{
		MinConfidence:    0.15,
		MaxScanBytes:     64 * 1024,
		DeepScan:         false,
		DetectExtensions: false,
		FastMode:         false,
	}
}

// ArchitectureScore is one ISA's result from a rank-off.
type ArchitectureScore struct {
	Isa        Isa
	RawScore   int64
	Confidence float64
	Endianness Endianness
	Bitwidth   int
}

// ClassificationResult is the final output of Analyze.
type ClassificationResult struct {
	Isa        Isa
	Bitwidth   int
	Endianness Endianness
	Variant    string
	Extensions []Extension
	Source     Source
	Format     Format
	Confidence float64
	Metadata   Metadata
}

// Metadata carries auxiliary facts a caller may want to display but that
// never feed back into scoring.
type Metadata struct {
	EntryPoint   uint64
	HasEntry     bool
	Flags        uint32
	RawMachine   uint32
	ScannedBytes int
}

// DetectedIsa is one ISA's aggregated result from a windowed multi-ISA scan.
type DetectedIsa struct {
	Isa         Isa
	WindowCount int
	TotalBytes  int
	AvgScore    float64
	Endianness  Endianness
	Bitwidth    int
}

// ExtensionCategory classifies an optional ISA feature.
type ExtensionCategory int

const (
	CategorySimd ExtensionCategory = iota
	CategoryCrypto
	CategoryBitManip
	CategoryFloatingPoint
	CategoryAtomic
	CategorySecurity
	CategoryCompressed
	CategoryMachineLearning
	CategorySystem
	CategoryVirtualization
	CategoryOther
)

func (c ExtensionCategory) String() string {
	switch c {
	case CategorySimd:
		return "Simd"
	case CategoryCrypto:
		return "Crypto"
	case CategoryBitManip:
		return "BitManip"
	case CategoryFloatingPoint:
		return "FloatingPoint"
	case CategoryAtomic:
		return "Atomic"
	case CategorySecurity:
		return "Security"
	case CategoryCompressed:
		return "Compressed"
	case CategoryMachineLearning:
		return "MachineLearning"
	case CategorySystem:
		return "System"
	case CategoryVirtualization:
		return "Virtualization"
	default:
		return "Other"
	}
}

// Extension is one detected optional ISA feature.
type Extension struct {
	Name     string
	Category ExtensionCategory
}
