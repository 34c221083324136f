package domain

import (
	"fmt"
	"strings"
)

// Position markers for article variations. The studio shoots the front
// of every article and the back only when the catalog marks it.
const (
	PositionFront = "v"
	PositionBack  = "h"
)

// Article represents one product row from the catalog workbook
type Article struct {
	Number      string // e.g., "A100"
	Description string // e.g., "Strickjacke Merino"
	Collection  string // e.g., "HW25"
	ColorCode   string // e.g., "410"
	ColorName   string // e.g., "Marine"
	Category    string // e.g., "Jacken"
}

// Variation is one photo to be taken: an article seen from one position
type Variation struct {
	Article
	Position string // PositionFront or PositionBack
}

// PositionLabel returns a human-readable label for the position marker
func (v Variation) PositionLabel() string {
	if v.Position == PositionBack {
		return "back"
	}
	return "front"
}

// FileName returns the target photo file name for this variation,
// e.g. "A100-v-410-Strickjacke_Merino.jpg"
func (v Variation) FileName() string {
	return fmt.Sprintf("%s-%s-%s-%s.jpg",
		v.Number, v.Position, v.ColorCode, SanitizeDescription(v.Description))
}

// MetadataFields returns the IPTC tags to embed into the photo file
func (v Variation) MetadataFields() map[string]string {
	return map[string]string{
		"IPTC:ObjectName":       v.Number,
		"IPTC:Category":         v.Position,
		"IPTC:Caption-Abstract": v.Description,
		"IPTC:Headline":         v.ColorCode,
	}
}

// SanitizeDescription makes an article description safe for file names:
// dots are stripped, spaces become underscores
func SanitizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, ".", "")
	return strings.ReplaceAll(desc, " ", "_")
}

// UniqueFileName appends a numeric suffix to name until exists reports
// it free. The extension is preserved: "A100-v.jpg" -> "A100-v-1.jpg".
func UniqueFileName(name string, exists func(string) bool) string {
	if !exists(name) {
		return name
	}
	base, ext, _ := strings.Cut(name, ".")
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d.%s", base, i, ext)
		if !exists(candidate) {
			return candidate
		}
	}
}
