package exiftool

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shootlist/internal/application"
)

// stubBinary writes an executable shell script standing in for exiftool
func stubBinary(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exiftool")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func photoFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "A100-v-410-Jacke.jpg")
	if err := os.WriteFile(path, []byte("jpeg"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWrite_InvokesToolWithTags(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	bin := stubBinary(t, `echo "$@" > `+argsFile+`; exit 0`)
	photo := photoFile(t)

	w := NewWriter(bin)
	fields := map[string]string{
		"IPTC:ObjectName": "A100",
		"IPTC:Headline":   "410",
	}
	if err := w.Write(context.Background(), photo, fields); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("stub did not run: %v", err)
	}
	got := string(data)

	for _, want := range []string{"-overwrite_original", "-IPTC:Headline=410", "-IPTC:ObjectName=A100", photo} {
		if !strings.Contains(got, want) {
			t.Errorf("invocation %q missing %q", got, want)
		}
	}
	// Tags are passed in sorted order for reproducible invocations
	if strings.Index(got, "IPTC:Headline") > strings.Index(got, "IPTC:ObjectName") {
		t.Errorf("tags not sorted: %q", got)
	}
}

func TestWrite_ToolFailure(t *testing.T) {
	bin := stubBinary(t, `echo "Error: Not a valid JPG" >&2; exit 1`)
	photo := photoFile(t)

	err := NewWriter(bin).Write(context.Background(), photo, map[string]string{"IPTC:ObjectName": "A100"})

	var metaErr *application.MetadataError
	if !errors.As(err, &metaErr) {
		t.Fatalf("expected MetadataError, got %T: %v", err, err)
	}
	if !strings.Contains(metaErr.Reason, "Not a valid JPG") {
		t.Errorf("Reason = %q, want stderr detail", metaErr.Reason)
	}
}

func TestWrite_BinaryMissing(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "no-such-exiftool"))
	photo := photoFile(t)

	err := w.Write(context.Background(), photo, map[string]string{"IPTC:ObjectName": "A100"})

	var metaErr *application.MetadataError
	if !errors.As(err, &metaErr) {
		t.Fatalf("expected MetadataError, got %T: %v", err, err)
	}
	if !errors.Is(err, application.ErrToolUnavailable) {
		t.Error("error should wrap ErrToolUnavailable")
	}
	if w.Available() {
		t.Error("Available() = true for missing binary")
	}
}

func TestWrite_FileMissing(t *testing.T) {
	bin := stubBinary(t, `exit 0`)
	err := NewWriter(bin).Write(context.Background(), filepath.Join(t.TempDir(), "gone.jpg"), nil)

	var metaErr *application.MetadataError
	if !errors.As(err, &metaErr) {
		t.Fatalf("expected MetadataError, got %T: %v", err, err)
	}
}

func TestAvailable(t *testing.T) {
	bin := stubBinary(t, `exit 0`)
	if !NewWriter(bin).Available() {
		t.Error("Available() = false for existing stub")
	}
}
