package commands

import (
	"context"
	"strings"

	"shootlist/internal/domain"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// fakePublisher records published texts and can simulate failure
type fakePublisher struct {
	published []string
	err       error
}

func (f *fakePublisher) Publish(text string) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, text)
	return nil
}

// fakeWriter records metadata writes and can simulate failure
type fakeWriter struct {
	writes    []fakeWrite
	err       error
	available bool
}

type fakeWrite struct {
	path   string
	fields map[string]string
}

func (f *fakeWriter) Write(ctx context.Context, path string, fields map[string]string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, fakeWrite{path: path, fields: fields})
	return nil
}

func (f *fakeWriter) Available() bool { return f.available }

// fakeLoader returns a canned catalog or error
type fakeLoader struct {
	catalog *domain.Catalog
	err     error
}

func (f *fakeLoader) Load(path string) (*domain.Catalog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog, nil
}

func sampleVariation(no, pos string) domain.Variation {
	return domain.Variation{
		Article: domain.Article{
			Number:      no,
			Description: "Strickjacke Merino",
			ColorCode:   "410",
		},
		Position: pos,
	}
}
