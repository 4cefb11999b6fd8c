package domain

import (
	"errors"
	"fmt"
)

// ============================================================================
// Schema Errors
// ============================================================================

var ErrInvalidSchema = errors.New("invalid feature schema")

// SchemaError reports a feature schema that cannot back an input row.
type SchemaError struct {
	Reason string
	Column string
}

func (e *SchemaError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("invalid feature schema: %s", e.Reason)
	}
	return fmt.Sprintf("invalid feature schema: %s: %q", e.Reason, e.Column)
}

func (e *SchemaError) Unwrap() error {
	return ErrInvalidSchema
}

// ============================================================================
// Input Errors
// ============================================================================

var (
	ErrUnknownFurnishing   = errors.New("furnishing must be one of Unfurnished, Semi-Furnished, Furnished")
	ErrInvalidPredictionID = errors.New("prediction ID is required")
)

// ============================================================================
// Model Errors
// ============================================================================

var (
	ErrModelNotLoaded           = errors.New("model is not loaded")
	ErrUnsupportedModelType     = errors.New("unsupported model type")
	ErrInvalidModel             = errors.New("invalid model definition")
	ErrShapeMismatch            = errors.New("input row does not match model feature count")
	ErrInferenceFailed          = errors.New("remote inference failed")
	ErrInferenceServiceNotReady = errors.New("inference service is not ready")
)

// ============================================================================
// History Errors
// ============================================================================

var (
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrHistoryDisabled    = errors.New("prediction history is not enabled")
)
