package textanalysis

import (
	"encoding/json"
	"fmt"
)

// Marshal serializes r as compact JSON. The encoding is deterministic:
// struct fields keep declaration order and feature keys are sorted.
func Marshal(r AnalysisResult) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis result: %w", err)
	}
	return b, nil
}

// Unmarshal parses data produced by Marshal.
func Unmarshal(data []byte) (*AnalysisResult, error) {
	var r AnalysisResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal analysis result: %w", err)
	}
	return &r, nil
}
