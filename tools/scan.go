// Package tools implements the batch scan & report tool (spec C14): a
// directory-tree walker that classifies every regular file with the isa
// package and produces a lint-style ScanReport, in the same
// Linter/LintIssue/LintLevel shape the teacher's assembly linter used,
// repurposed from source-code issues to classification findings.
package tools

import (
	"io/fs"
	"path/filepath"

	"github.com/19h/isa-classifier-sub000/isa"
)

// ScanOptions controls batch-scan behavior.
type ScanOptions struct {
	Classifier    isa.ClassifierOptions
	WindowSize    int  // window size passed to DetectMultiISA
	FollowSymlink bool // follow symlinked files during the walk
}

// DefaultScanOptions returns the batch scanner's default settings.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		Classifier: isa.DefaultOptions(),
		WindowSize: 4096,
	}
}

// Scanner walks a directory tree and classifies every regular file it
// finds, in the same mold as the teacher's Linter: options in, issues
// accumulated during the walk, a sorted report out.
type Scanner struct {
	options ScanOptions
	issues  []*ScanIssue
}

// NewScanner creates a new batch scanner.
func NewScanner(options ScanOptions) *Scanner {
	if options.WindowSize <= 0 {
		options.WindowSize = 4096
	}
	return &Scanner{options: options}
}

// ScanDir walks root and classifies every regular file, returning a
// ScanReport. A file that cannot be read is recorded as a ScanError issue
// rather than aborting the whole walk — one unreadable file should not
// prevent reporting on the rest of the tree.
func (s *Scanner) ScanDir(root string) (*ScanReport, error) {
	s.issues = nil
	fileCount := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.issues = append(s.issues, &ScanIssue{
				Level:   ScanError,
				Path:    path,
				Message: err.Error(),
				Code:    "WALK_ERROR",
			})
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !s.options.FollowSymlink && d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
			return nil
		}

		fileCount++
		s.scanFile(path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return buildReport(s.issues, fileCount), nil
}

// ScanFile classifies a single file, appends its finding to the scanner's
// issue list and returns the last issue in that list (nil when the list is
// empty). ScanDir clears the list when it starts.
func (s *Scanner) ScanFile(path string) *ScanIssue {
	s.scanFile(path)
	if len(s.issues) == 0 {
		return nil
	}
	return s.issues[len(s.issues)-1]
}

func (s *Scanner) scanFile(path string) {
	data, err := readFileBounded(path)
	if err != nil {
		s.issues = append(s.issues, &ScanIssue{
			Level:   ScanError,
			Path:    path,
			Message: "unreadable: " + err.Error(),
			Code:    "READ_ERROR",
		})
		return
	}
	if len(data) == 0 {
		return
	}

	result, cerr := isa.Analyze(data, s.options.Classifier)
	if cerr != nil {
		s.issues = append(s.issues, &ScanIssue{
			Level:   ScanWarning,
			Path:    path,
			Message: cerr.Error(),
			Code:    "LOW_CONFIDENCE",
		})
		return
	}

	detected := isa.DetectMultiISA(data, s.options.Classifier, s.options.WindowSize)
	if len(detected) > 1 {
		names := make([]string, 0, len(detected))
		for _, d := range detected {
			names = append(names, d.Isa.String())
		}
		s.issues = append(s.issues, &ScanIssue{
			Level:   ScanInfo,
			Path:    path,
			Message: "multiple ISAs detected: " + joinCommaOr(names, "none"),
			Code:    "MULTI_ISA",
		})
		return
	}

	s.issues = append(s.issues, &ScanIssue{
		Level:   ScanInfo,
		Path:    path,
		Message: result.Isa.String() + " at confidence " + formatConfidence(result.Confidence),
		Code:    "CLASSIFIED",
	})
}
