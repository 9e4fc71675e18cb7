package language

import (
	"errors"
	"fmt"
)

// ErrDetectionData marks a detection result that failed validation. It is a
// data error, distinct from transport failures, so callers and tests can tell
// a malformed model response apart from a failed call.
var ErrDetectionData = errors.New("language: detection result failed validation")

// Detection is the language-mix estimate for a single utterance. Values are
// immutable once produced; callers own the record for the duration of a turn.
type Detection struct {
	Primary    Language `json:"primary_language"`
	Secondary  Language `json:"secondary_language,omitempty"`
	Confidence float64  `json:"confidence"`
	CodeMixed  bool     `json:"is_code_mixed"`
	MixRatio   float64  `json:"mix_ratio"`
}

// DefaultDetection is the safe estimate substituted when detection fails.
func DefaultDetection() Detection {
	return Detection{
		Primary:    English,
		Secondary:  None,
		Confidence: 0.5,
		CodeMixed:  false,
		MixRatio:   0.0,
	}
}

// Normalize enforces the producer-side invariant: a record that is not
// code-mixed carries no secondary language and a zero mix ratio.
func (d Detection) Normalize() Detection {
	if !d.CodeMixed {
		d.Secondary = None
		d.MixRatio = 0.0
	}
	return d
}

// Validate checks a normalized record against the detection invariants.
// All violations wrap ErrDetectionData.
func (d Detection) Validate() error {
	if !d.Primary.Valid() {
		return fmt.Errorf("%w: unknown primary language %q", ErrDetectionData, d.Primary)
	}
	if d.Secondary != None && !d.Secondary.Valid() {
		return fmt.Errorf("%w: unknown secondary language %q", ErrDetectionData, d.Secondary)
	}
	if d.Confidence < 0.0 || d.Confidence > 1.0 {
		return fmt.Errorf("%w: confidence %v out of range", ErrDetectionData, d.Confidence)
	}
	if d.MixRatio < 0.0 || d.MixRatio > 1.0 {
		return fmt.Errorf("%w: mix ratio %v out of range", ErrDetectionData, d.MixRatio)
	}
	if !d.CodeMixed && (d.Secondary != None || d.MixRatio != 0.0) {
		return fmt.Errorf("%w: record not code-mixed but carries secondary language or ratio", ErrDetectionData)
	}
	if d.Secondary != None && d.Secondary == d.Primary {
		return fmt.Errorf("%w: secondary language equals primary %q", ErrDetectionData, d.Primary)
	}
	return nil
}
