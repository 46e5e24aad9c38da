package models

import "fmt"

// ExtractionError is terminal for the current request: the file was not
// readable or both extraction methods were exhausted.
type ExtractionError struct {
	Path        string
	PrimaryErr  error
	FallbackErr error
}

func (e *ExtractionError) Error() string {
	if e.FallbackErr == nil {
		return fmt.Sprintf("extraction failed for %s: %v", e.Path, e.PrimaryErr)
	}
	return fmt.Sprintf("extraction failed for %s: primary method: %v; fallback method: %v",
		e.Path, e.PrimaryErr, e.FallbackErr)
}

func (e *ExtractionError) Unwrap() error { return e.PrimaryErr }

// AnalysisError carries the raw model response so a failed parse is still
// diagnosable.
type AnalysisError struct {
	Reason      string
	RawResponse string
	Err         error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("analysis failed: %s", e.Reason)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
