package notify

// MultiSurface fans every call out to each of its surfaces in order.
type MultiSurface []Surface

// Style styles every surface.
func (m MultiSurface) Style() {
	for _, s := range m {
		s.Style()
	}
}

// Show shows text on every surface.
func (m MultiSurface) Show(text string) {
	for _, s := range m {
		s.Show(text)
	}
}

// Hide hides every surface.
func (m MultiSurface) Hide() {
	for _, s := range m {
		s.Hide()
	}
}
