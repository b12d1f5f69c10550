package deckgen

import (
	"fmt"
)

// RGB is an opaque 24-bit color.
type RGB struct {
	R uint8 `yaml:"r" json:"r"`
	G uint8 `yaml:"g" json:"g"`
	B uint8 `yaml:"b" json:"b"`
}

// Hex returns the color as "RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ARGB returns the color as fully opaque "FFRRGGBB".
func (c RGB) ARGB() string {
	return "FF" + c.Hex()
}

// StyleOptions are the per-build styling parameters. They are supplied by
// the UI from the catalog and are not reinterpreted by the deck builder.
type StyleOptions struct {
	AccentColor RGB
	FontFamily  string
	FontSizePt  int
	UseBullets  bool
}

// NewStyleOptions resolves a theme name against the catalog and assembles
// StyleOptions. The font family is not checked against the catalog here;
// unknown fonts surface as advisory warnings instead.
func NewStyleOptions(c *Catalog, theme, fontFamily string, fontSizePt int, useBullets bool) (StyleOptions, error) {
	t, ok := c.Theme(theme)
	if !ok {
		return StyleOptions{}, &ValidationError{
			Field:  "theme",
			Value:  theme,
			Reason: "unknown theme",
			Err:    ErrInvalidRequest,
		}
	}
	if !c.Limits.FontSize.Contains(fontSizePt) {
		return StyleOptions{}, &ValidationError{
			Field:  "font_size",
			Value:  fontSizePt,
			Reason: fmt.Sprintf("must be between %d and %d", c.Limits.FontSize.Min, c.Limits.FontSize.Max),
			Err:    ErrInvalidRequest,
		}
	}
	return StyleOptions{
		AccentColor: t.Color,
		FontFamily:  fontFamily,
		FontSizePt:  fontSizePt,
		UseBullets:  useBullets,
	}, nil
}
