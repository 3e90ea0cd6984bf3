// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	NavbarLines      = 2
	PanelTitleLines  = 2
	PanelBorderWidth = 2
	PanelErrorGap    = 1 // blank line below the inline error
	PanelHintLines   = 1
	PanelPaddingLeft = 1

	// FormLines is the rendered height of the generator form in the stacked layout.
	FormLines = 16

	// WideLayoutMinWidth switches the generator to a two-column layout.
	WideLayoutMinWidth = 100
	FormColumnRatio    = 2 // form takes 2/5 of the width

	ThemeInputPadding = 6
	CardWidth         = 30
)
