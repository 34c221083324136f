package domain

import "testing"

func TestSanitizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces become underscores", "Strickjacke Merino", "Strickjacke_Merino"},
		{"dots stripped", "Gr. 38", "Gr_38"},
		{"already clean", "Hose", "Hose"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeDescription(tt.in); got != tt.want {
				t.Errorf("SanitizeDescription(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestVariationFileName(t *testing.T) {
	v := Variation{
		Article: Article{
			Number:      "A100",
			Description: "Strickjacke Merino",
			ColorCode:   "410",
		},
		Position: PositionFront,
	}

	want := "A100-v-410-Strickjacke_Merino.jpg"
	if got := v.FileName(); got != want {
		t.Errorf("FileName() = %q, want %q", got, want)
	}
}

func TestUniqueFileName(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		taken  map[string]bool
		want   string
	}{
		{
			name: "free name unchanged",
			in:   "A100-v-410-Hose.jpg",
			want: "A100-v-410-Hose.jpg",
		},
		{
			name:  "first collision",
			in:    "A100-v-410-Hose.jpg",
			taken: map[string]bool{"A100-v-410-Hose.jpg": true},
			want:  "A100-v-410-Hose-1.jpg",
		},
		{
			name: "counter keeps climbing",
			in:   "A100-v-410-Hose.jpg",
			taken: map[string]bool{
				"A100-v-410-Hose.jpg":   true,
				"A100-v-410-Hose-1.jpg": true,
				"A100-v-410-Hose-2.jpg": true,
			},
			want: "A100-v-410-Hose-3.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UniqueFileName(tt.in, func(name string) bool {
				return tt.taken[name]
			})
			if got != tt.want {
				t.Errorf("UniqueFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMetadataFields(t *testing.T) {
	v := Variation{
		Article: Article{
			Number:      "A100",
			Description: "Strickjacke Merino",
			ColorCode:   "410",
		},
		Position: PositionBack,
	}

	fields := v.MetadataFields()

	want := map[string]string{
		"IPTC:ObjectName":       "A100",
		"IPTC:Category":         "h",
		"IPTC:Caption-Abstract": "Strickjacke Merino",
		"IPTC:Headline":         "410",
	}
	for key, wantVal := range want {
		if fields[key] != wantVal {
			t.Errorf("fields[%q] = %q, want %q", key, fields[key], wantVal)
		}
	}
	if len(fields) != len(want) {
		t.Errorf("expected %d fields, got %d", len(want), len(fields))
	}
}

func TestPositionLabel(t *testing.T) {
	front := Variation{Position: PositionFront}
	if got := front.PositionLabel(); got != "front" {
		t.Errorf("front label = %q", got)
	}
	back := Variation{Position: PositionBack}
	if got := back.PositionLabel(); got != "back" {
		t.Errorf("back label = %q", got)
	}
}
