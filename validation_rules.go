package deckgen

import (
	"fmt"
)

// ModelValidationRule flags models that are not listed in the catalog.
// A provider may still serve them.
type ModelValidationRule struct {
	catalog *Catalog
}

func (r *ModelValidationRule) Name() string {
	return "Model Validation"
}

func (r *ModelValidationRule) Check(req GenerationRequest, _ StyleOptions) []ValidationWarning {
	if _, ok := r.catalog.Model(req.Model); ok {
		return nil
	}
	return []ValidationWarning{{
		Code:     WarningCodeModelUnknown,
		Category: "model",
		Field:    "model",
		Value:    req.Model,
		Message:  fmt.Sprintf("Model %s not found in catalog (catalog may be outdated)", req.Model),
		Severity: SeverityWarning,
	}}
}

// FontValidationRule flags font families the catalog does not list.
type FontValidationRule struct {
	catalog *Catalog
}

func (r *FontValidationRule) Name() string {
	return "Font Validation"
}

func (r *FontValidationRule) Check(_ GenerationRequest, style StyleOptions) []ValidationWarning {
	if r.catalog.HasFont(style.FontFamily) {
		return nil
	}
	return []ValidationWarning{{
		Code:     WarningCodeFontUnknown,
		Category: "style",
		Field:    "font_family",
		Value:    style.FontFamily,
		Message:  fmt.Sprintf("Font %q is not in the catalog; the viewer may substitute it", style.FontFamily),
		Severity: SeverityInfo,
	}}
}

// FontSizeValidationRule flags body sizes outside the catalog limits.
type FontSizeValidationRule struct {
	catalog *Catalog
}

func (r *FontSizeValidationRule) Name() string {
	return "Font Size Validation"
}

func (r *FontSizeValidationRule) Check(_ GenerationRequest, style StyleOptions) []ValidationWarning {
	limits := r.catalog.Limits.FontSize
	if limits.Contains(style.FontSizePt) {
		return nil
	}
	return []ValidationWarning{{
		Code:     WarningCodeFontSizeOutOfRange,
		Category: "style",
		Field:    "font_size",
		Value:    style.FontSizePt,
		Message:  fmt.Sprintf("Font size %dpt is outside %d-%d", style.FontSizePt, limits.Min, limits.Max),
		Severity: SeverityWarning,
	}}
}
