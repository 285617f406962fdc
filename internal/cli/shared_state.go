package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the rows left for view content after the header
// (title, tab bar, separator) and the status bar (separator, hints,
// output line).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-6, 1)
}
