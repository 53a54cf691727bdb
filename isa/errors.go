package isa

import "fmt"

// ClassifierError is implemented by every error Analyze can return. Code
// gives a stable machine-readable identifier for callers that want to
// branch on failure kind without string matching.
type ClassifierError interface {
	error
	Code() string
}

// FileTooSmallError means the input is shorter than any scorer can use.
type FileTooSmallError struct {
	Expected int
	Actual   int
}

func (e *FileTooSmallError) Error() string {
	return fmt.Sprintf("input too small: expected at least %d bytes, got %d", e.Expected, e.Actual)
}

func (e *FileTooSmallError) Code() string { return "file_too_small" }

// NewFileTooSmall builds a FileTooSmallError.
func NewFileTooSmall(expected, actual int) *FileTooSmallError {
	return &FileTooSmallError{Expected: expected, Actual: actual}
}

// HeuristicInconclusiveError means the rank-off ran but the top candidate
// fell below the confidence floor.
type HeuristicInconclusiveError struct {
	Confidence float64
	Threshold  float64
	Best       Isa
}

func (e *HeuristicInconclusiveError) Error() string {
	return fmt.Sprintf("heuristic inconclusive: best candidate %s at confidence %.3f, need %.3f",
		e.Best, e.Confidence, e.Threshold)
}

func (e *HeuristicInconclusiveError) Code() string { return "heuristic_inconclusive" }

// NewInconclusive builds a HeuristicInconclusiveError.
func NewInconclusive(confidence, threshold float64, best Isa) *HeuristicInconclusiveError {
	return &HeuristicInconclusiveError{Confidence: confidence, Threshold: threshold, Best: best}
}

// InvalidHeaderError is raised only by external format adapters, never by
// the raw-bytes heuristic path.
type InvalidHeaderError struct {
	Wrapped error
	Reason  string
}

func (e *InvalidHeaderError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("invalid header: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("invalid header: %s", e.Reason)
}

func (e *InvalidHeaderError) Code() string { return "invalid_header" }

func (e *InvalidHeaderError) Unwrap() error { return e.Wrapped }

// NewInvalidHeader builds an InvalidHeaderError.
func NewInvalidHeader(reason string, wrapped error) *InvalidHeaderError {
	return &InvalidHeaderError{Reason: reason, Wrapped: wrapped}
}

var (
	_ ClassifierError = (*FileTooSmallError)(nil)
	_ ClassifierError = (*HeuristicInconclusiveError)(nil)
	_ ClassifierError = (*InvalidHeaderError)(nil)
)
