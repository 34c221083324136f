package views

import "shootlist/internal/domain"

// View switching messages

// SwitchToSessionMsg starts shooting the given variations
type SwitchToSessionMsg struct {
	Variations []domain.Variation
}

// SwitchToLookupMsg returns to the article prompt
type SwitchToLookupMsg struct{}

// SwitchToHelpMsg shows the key reference
type SwitchToHelpMsg struct{}

// OpenViewerMsg asks the app to open a photo in the external viewer
type OpenViewerMsg struct {
	Path string
}
