package ui

// Layout constants for panel sizing
const (
	// DefaultWidth is used when the terminal width is unknown.
	DefaultWidth = 140

	// MinimumWidth below which panels stack instead of sitting side by side.
	MinimumWidth = 80

	// StudioRatio is the creative studio's left pane share.
	StudioRatio = 0.70

	// Rounded border plus one cell of horizontal padding each side.
	PanelBorderWidth = 1
	PanelPaddingH    = 2

	ColumnGap = 1
)

// ResolveWidth picks the configured width, falling back to DefaultWidth,
// and never returns less than MinimumWidth.
func ResolveWidth(configured int) int {
	if configured <= 0 {
		return DefaultWidth
	}
	if configured < MinimumWidth {
		return MinimumWidth
	}
	return configured
}

// SplitPaneWidths divides totalWidth by ratio, leaving a one-cell gap.
// A ratio outside (0,1) falls back to StudioRatio.
func SplitPaneWidths(totalWidth int, ratio float64) (leftWidth, rightWidth int) {
	if ratio <= 0 || ratio >= 1 {
		ratio = StudioRatio
	}
	leftWidth = int(float64(totalWidth) * ratio)
	rightWidth = totalWidth - leftWidth - ColumnGap
	return
}

// ColumnWidths splits totalWidth into n equal columns separated by gaps.
// The last column absorbs the remainder.
func ColumnWidths(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	usable := totalWidth - ColumnGap*(n-1)
	each := usable / n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = each
	}
	widths[n-1] += usable - each*n
	return widths
}

// PanelContentWidth returns the content width inside a bordered panel
func PanelContentWidth(panelWidth int) int {
	w := panelWidth - PanelBorderWidth*2 - PanelPaddingH*2
	if w < 1 {
		return 1
	}
	return w
}
