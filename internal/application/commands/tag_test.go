package commands

import (
	"context"
	"errors"
	"testing"

	"shootlist/internal/application"
	"shootlist/internal/domain"
)

func TestTagPhotoCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		filePath  string
		variation domain.Variation
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid",
			filePath:  "/mnt/tether/a.jpg",
			variation: sampleVariation("A100", domain.PositionFront),
		},
		{
			name:      "missing file path",
			filePath:  "",
			variation: sampleVariation("A100", domain.PositionFront),
			wantErr:   true,
			errMsg:    "file path is required",
		},
		{
			name:     "missing article number",
			filePath: "/mnt/tether/a.jpg",
			wantErr:  true,
			errMsg:   "article number is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewTagPhotoCommand(&fakeWriter{}, tt.filePath, tt.variation)
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTagPhotoCommand_Execute(t *testing.T) {
	writer := &fakeWriter{}
	v := sampleVariation("A100", domain.PositionFront)
	cmd := NewTagPhotoCommand(writer, "/mnt/tether/a.jpg", v)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(writer.writes) != 1 {
		t.Fatalf("got %d writes, want 1", len(writer.writes))
	}
	write := writer.writes[0]
	if write.path != "/mnt/tether/a.jpg" {
		t.Errorf("wrote to %q", write.path)
	}
	if write.fields["IPTC:ObjectName"] != "A100" {
		t.Errorf("ObjectName = %q", write.fields["IPTC:ObjectName"])
	}
	if write.fields["IPTC:Caption-Abstract"] != "Strickjacke Merino" {
		t.Errorf("Caption-Abstract = %q", write.fields["IPTC:Caption-Abstract"])
	}
	if !contains(result.Message, "A100") {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestTagPhotoCommand_FailureCarriesArticleNo(t *testing.T) {
	metaErr := &application.MetadataError{Path: "/mnt/tether/a.jpg", Reason: "tool exited 1"}
	cmd := NewTagPhotoCommand(&fakeWriter{err: metaErr}, "/mnt/tether/a.jpg", sampleVariation("A100", domain.PositionFront))

	_, err := cmd.Execute(context.Background())

	var got *application.MetadataError
	if !errors.As(err, &got) {
		t.Fatalf("expected MetadataError, got %T: %v", err, err)
	}
	if got.ArticleNo != "A100" {
		t.Errorf("ArticleNo = %q, want A100", got.ArticleNo)
	}
}
