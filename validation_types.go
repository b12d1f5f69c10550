package deckgen

// Severity indicates how serious a validation warning is
type Severity string

const (
	SeverityInfo    Severity = "info"    // Informational (might be expected)
	SeverityWarning Severity = "warning" // Potentially problematic
)

// WarningCode is a machine-readable identifier for validation warnings
type WarningCode string

const (
	WarningCodeModelUnknown       WarningCode = "MODEL_UNKNOWN"
	WarningCodeFontUnknown        WarningCode = "FONT_UNKNOWN"
	WarningCodeFontSizeOutOfRange WarningCode = "FONT_SIZE_OUT_OF_RANGE"
)

// ValidationWarning represents an input that falls outside the catalog.
// Warnings never block a generation; the deck builder renders whatever
// style it is given.
type ValidationWarning struct {
	Code     WarningCode // Machine-readable code
	Category string      // "model" or "style"
	Field    string      // Field that might cause issues
	Value    any         // The questionable value
	Message  string      // Human-readable warning
	Severity Severity    // How serious this warning is
}

// ValidationRule interface allows adding custom validation logic
type ValidationRule interface {
	// Name returns a human-readable name for this rule
	Name() string

	// Check inspects a request and its styling and returns warnings
	Check(req GenerationRequest, style StyleOptions) []ValidationWarning
}
