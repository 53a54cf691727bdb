// Command isaclass wraps the isa classifier core (Analyze, DetectMultiISA,
// ScoreAll, TopCandidates) behind a CLI, an HTTP/WebSocket API server, and
// an interactive TUI results browser, in the teacher's flag-based main.go
// layout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/19h/isa-classifier-sub000/api"
	"github.com/19h/isa-classifier-sub000/config"
	_ "github.com/19h/isa-classifier-sub000/extensions" // registers the extension pass
	_ "github.com/19h/isa-classifier-sub000/formats"    // registers the format sniffers
	"github.com/19h/isa-classifier-sub000/isa"
	"github.com/19h/isa-classifier-sub000/tools"
	"github.com/19h/isa-classifier-sub000/tui"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion      = flag.Bool("version", false, "Show version information")
		showHelp         = flag.Bool("help", false, "Show help information")
		file             = flag.String("file", "", "Classify a single file")
		dir              = flag.String("dir", "", "Batch-scan a directory tree")
		multiISA         = flag.Bool("multi-isa", false, "Run windowed multi-ISA detection instead of single-ISA classification")
		windowSize       = flag.Int("window", 4096, "Window size in bytes (used with -multi-isa and -dir)")
		topN             = flag.Int("top", 5, "Number of ranked candidates to show (used with -top-candidates)")
		topCandidates    = flag.Bool("top-candidates", false, "Show the top N ranked candidates instead of a single classification")
		scoreAll         = flag.Bool("score-all", false, "Show every scorer's raw output (debug/tuning)")
		apiServer        = flag.Bool("api-server", false, "Start HTTP API server mode")
		apiPort          = flag.Int("port", 8080, "API server port (used with -api-server)")
		tuiMode          = flag.Bool("tui", false, "Open the interactive results browser over -file")
		outputFormat     = flag.String("format", "table", "Output format: table, json")
		configPath       = flag.String("config", "", "Path to config.toml (default: platform config dir)")
		minConfidence    = flag.Float64("min-confidence", -1, "Override minimum confidence (0..1)")
		maxScanBytes     = flag.Int("max-scan-bytes", -1, "Override maximum bytes scored per call")
		deepScan         = flag.Bool("deep-scan", false, "Enable extra pattern passes")
		fastMode         = flag.Bool("fast-mode", false, "Skip the most expensive scorers")
		detectExtensions = flag.Bool("detect-extensions", false, "Run the extension pass on the winning ISA")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("isaclass %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	options := cfg.ToClassifierOptions()
	if *minConfidence >= 0 {
		options.MinConfidence = *minConfidence
	}
	if *maxScanBytes > 0 {
		options.MaxScanBytes = *maxScanBytes
	}
	if *deepScan {
		options.DeepScan = true
	}
	if *fastMode {
		options.FastMode = true
	}
	if *detectExtensions {
		options.DetectExtensions = true
	}

	if *apiServer {
		runAPIServer(*apiPort, options)
		return
	}

	if *dir != "" {
		runBatchScan(*dir, options, *windowSize, *outputFormat)
		return
	}

	if *file == "" {
		printHelp()
		os.Exit(0)
	}

	data, err := os.ReadFile(*file) // #nosec G304 -- user-specified input path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	if *tuiMode {
		browser := tui.NewBrowser(data, options, *windowSize)
		if err := browser.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	switch {
	case *multiISA:
		detected := isa.DetectMultiISA(data, options, *windowSize)
		printDetectedIsas(detected, *outputFormat)
	case *topCandidates:
		candidates := isa.TopCandidates(data, *topN, options)
		printScores(candidates, *outputFormat)
	case *scoreAll:
		scores := isa.ScoreAll(data, options)
		sort.Slice(scores, func(i, j int) bool { return scores[i].RawScore > scores[j].RawScore })
		printScores(scores, *outputFormat)
	default:
		result, err := isa.Analyze(data, options)
		if err != nil {
			printAnalyzeError(err, *outputFormat)
			os.Exit(1)
		}
		printResult(result, *outputFormat)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func runAPIServer(port int, options isa.ClassifierOptions) {
	server := api.NewServer(port, options)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	fmt.Println("\nShutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("API server stopped")
}

func runBatchScan(root string, options isa.ClassifierOptions, windowSize int, format string) {
	scanner := tools.NewScanner(tools.ScanOptions{
		Classifier: options,
		WindowSize: windowSize,
	})

	report, err := scanner.ScanDir(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", root, err)
		os.Exit(1)
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
		return
	}

	fmt.Print(report.String())
}

func printResult(result isa.ClassificationResult, format string) {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
		return
	}

	fmt.Printf("ISA:         %s\n", result.Isa)
	fmt.Printf("Bitwidth:    %d\n", result.Bitwidth)
	fmt.Printf("Endianness:  %s\n", result.Endianness)
	if result.Variant != "" {
		fmt.Printf("Variant:     %s\n", result.Variant)
	}
	fmt.Printf("Source:      %s\n", result.Source)
	fmt.Printf("Format:      %s\n", result.Format)
	fmt.Printf("Confidence:  %.3f\n", result.Confidence)
	if len(result.Extensions) > 0 {
		names := make([]string, 0, len(result.Extensions))
		for _, ext := range result.Extensions {
			names = append(names, ext.Name)
		}
		fmt.Printf("Extensions:  %v\n", names)
	}
}

func printAnalyzeError(err error, format string) {
	if format == "json" {
		enc := json.NewEncoder(os.Stderr)
		enc.SetIndent("", "  ")
		_ = enc.Encode(map[string]string{"error": err.Error()})
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func printScores(scores []isa.ArchitectureScore, format string) {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(scores)
		return
	}
	fmt.Printf("%-16s %-8s %-8s %8s %10s\n", "ISA", "END", "BITS", "SCORE", "CONF")
	for _, s := range scores {
		fmt.Printf("%-16s %-8s %-8d %8d %10.3f\n", s.Isa, s.Endianness, s.Bitwidth, s.RawScore, s.Confidence)
	}
}

func printDetectedIsas(detected []isa.DetectedIsa, format string) {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(detected)
		return
	}
	fmt.Printf("%-16s %10s %12s %10s\n", "ISA", "WINDOWS", "BYTES", "AVG SCORE")
	for _, d := range detected {
		fmt.Printf("%-16s %10d %12d %10.2f\n", d.Isa, d.WindowCount, d.TotalBytes, d.AvgScore)
	}
}

func printHelp() {
	fmt.Printf(`isaclass %s

Usage: isaclass -file FILE [options]
       isaclass -dir DIR [options]
       isaclass -api-server [-port N]

Options:
  -help                Show this help message
  -version             Show version information
  -file FILE           Classify a single file
  -dir DIR             Batch-scan a directory tree
  -multi-isa           Run windowed multi-ISA detection instead of a single classification
  -window N            Window size in bytes (default: 4096)
  -top-candidates      Show the top ranked candidates instead of one result
  -top N               Number of ranked candidates to show (default: 5)
  -score-all           Show every scorer's raw output (debug/tuning)
  -tui                 Open the interactive results browser over -file
  -format FMT          Output format: table, json (default: table)
  -api-server          Start HTTP API server mode
  -port N              API server port (default: 8080, used with -api-server)

Config Options:
  -config PATH         Path to config.toml (default: platform config dir)
  -min-confidence F    Override minimum confidence (0..1)
  -max-scan-bytes N    Override maximum bytes scored per call
  -deep-scan           Enable extra pattern passes
  -fast-mode           Skip the most expensive scorers
  -detect-extensions   Run the extension pass on the winning ISA

Examples:
  isaclass -file firmware.bin
  isaclass -file firmware.bin -format json
  isaclass -file blob.bin -multi-isa -window 2048
  isaclass -file blob.bin -tui
  isaclass -dir ./samples -format json
  isaclass -api-server -port 9090

For more information, see the README.md file.
`, Version)
}
