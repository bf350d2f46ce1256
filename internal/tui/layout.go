package tui

import "image"

const (
	// statusRows is the separator line plus the status bar.
	statusRows = 2
	// minPaneWidth keeps both panes usable when the terminal is narrow.
	minPaneWidth = 20
)

// layout holds the screen regions, all in cell coordinates.
type layout struct {
	grid   image.Rectangle // left pane: the sheet grid
	csv    image.Rectangle // right pane: the CSV text view
	status image.Rectangle // bottom: separator + status bar
}

// generateLayout splits the screen: grid pane left, a one-column border,
// CSV pane right, status rows at the bottom.
func generateLayout(width, height int) layout {
	contentH := height - statusRows
	if contentH < 0 {
		contentH = 0
	}
	divX := width / 2
	if divX < minPaneWidth {
		divX = minPaneWidth
	}
	if divX > width-minPaneWidth {
		divX = width - minPaneWidth
	}
	if divX < 0 {
		divX = 0
	}
	return layout{
		grid:   image.Rect(0, 0, divX, contentH),
		csv:    image.Rect(divX+1, 0, width, contentH),
		status: image.Rect(0, contentH, width, height),
	}
}
