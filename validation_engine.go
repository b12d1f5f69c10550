package deckgen

import (
	"sync"
)

// ValidationEngine manages validation rules and executes them
type ValidationEngine struct {
	rules []ValidationRule
	mu    sync.RWMutex
}

// NewValidationEngine creates an engine with the built-in rules checking
// against catalog.
func NewValidationEngine(catalog *Catalog) *ValidationEngine {
	ve := &ValidationEngine{
		rules: make([]ValidationRule, 0),
	}
	ve.AddRule(&ModelValidationRule{catalog: catalog})
	ve.AddRule(&FontValidationRule{catalog: catalog})
	ve.AddRule(&FontSizeValidationRule{catalog: catalog})
	return ve
}

// AddRule adds a validation rule to the engine
func (ve *ValidationEngine) AddRule(rule ValidationRule) {
	ve.mu.Lock()
	defer ve.mu.Unlock()
	ve.rules = append(ve.rules, rule)
}

// RemoveRule removes a validation rule by name
func (ve *ValidationEngine) RemoveRule(name string) bool {
	ve.mu.Lock()
	defer ve.mu.Unlock()

	for i, rule := range ve.rules {
		if rule.Name() == name {
			ve.rules = append(ve.rules[:i], ve.rules[i+1:]...)
			return true
		}
	}
	return false
}

// Validate runs all validation rules and returns warnings.
// These are INFORMATIONAL - callers can choose to show warnings or ignore them.
func (ve *ValidationEngine) Validate(req GenerationRequest, style StyleOptions) []ValidationWarning {
	ve.mu.RLock()
	defer ve.mu.RUnlock()

	var warnings []ValidationWarning
	for _, rule := range ve.rules {
		warnings = append(warnings, rule.Check(req, style)...)
	}
	return warnings
}

// FilterWarningsBySeverity returns warnings matching the specified severities
func FilterWarningsBySeverity(warnings []ValidationWarning, severities ...Severity) []ValidationWarning {
	filtered := make([]ValidationWarning, 0)
	severityMap := make(map[Severity]bool)
	for _, s := range severities {
		severityMap[s] = true
	}

	for _, w := range warnings {
		if severityMap[w.Severity] {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
