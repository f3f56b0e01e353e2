package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme is a compact theme that keeps touch-friendly sizes on mobile
type CompactTheme struct {
	mobile bool
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme(mobile bool) fyne.Theme {
	return &CompactTheme{mobile: mobile}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 187, G: 0, B: 0, A: 255} // Reject red for delete
	case theme.ColorNameSuccess:
		return color.RGBA{R: 16, G: 126, B: 62, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 10, G: 110, B: 209, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 29, G: 34, B: 40, A: 255}
		}
		return color.RGBA{R: 245, G: 246, B: 247, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; desktop is compacted, mobile keeps defaults for touch
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if t.mobile {
		return theme.DefaultTheme().Size(name)
	}

	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
