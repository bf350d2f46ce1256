package tui

import (
	tea "charm.land/bubbletea/v2"
)

// handleResize applies a window size change and re-derives layout.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.layout = generateLayout(m.width, m.height)
	m.updateComponentSizes()
	m.scrollIntoView()
}

// updateComponentSizes pushes layout dimensions to sub-models.
func (m *Model) updateComponentSizes() {
	m.csvArea.SetWidth(m.layout.csv.Dx())
	m.csvArea.SetHeight(m.layout.csv.Dy())
}
