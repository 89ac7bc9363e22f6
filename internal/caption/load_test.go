package caption

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestLoadJSONCaptions(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `{
  "captions": [
    {
      "identifier": "intro",
      "start": "00:00:01.000",
      "end": "00:00:02.000",
      "start_in_seconds": 1,
      "end_in_seconds": 2,
      "lines": ["Hello", "World"]
    },
    {
      "start": "00:00:03.000",
      "end": "00:00:04.000",
      "start_in_seconds": 3,
      "end_in_seconds": 4,
      "lines": []
    }
  ]
}`
	if err := afero.WriteFile(fs, "/in/captions.json", []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	got, err := Load(fs, "/in/captions.json", NewBuilder())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []Caption{
		{
			Identifier:     "intro",
			Start:          "00:00:01.000",
			End:            "00:00:02.000",
			StartInSeconds: 1,
			EndInSeconds:   2,
			Lines:          []string{"Hello", "World"},
		},
		{
			Start:          "00:00:03.000",
			End:            "00:00:04.000",
			StartInSeconds: 3,
			EndInSeconds:   4,
			Lines:          []string{},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAMLSegments(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `segments:
  - start: 0.5
    end: 2
    text: First line
  - start: 2
    end: 3.25
    text: Second line
`
	if err := afero.WriteFile(fs, "segments.yaml", []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	got, err := Load(fs, "segments.yaml", NewBuilder())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []Caption{
		{
			Identifier:     "1",
			Start:          "00:00:00.500",
			End:            "00:00:02.000",
			StartInSeconds: 0.5,
			EndInSeconds:   2,
			Lines:          []string{"First line"},
		},
		{
			Identifier:     "2",
			Start:          "00:00:02.000",
			End:            "00:00:03.250",
			StartInSeconds: 2,
			EndInSeconds:   3.25,
			Lines:          []string{"Second line"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveSegmentsKeepsMilliseconds(t *testing.T) {
	doc := &Document{Segments: []SegmentSpec{
		{Start: 2.3, End: 4.1, Text: "Fractional"},
		{Start: 0.001, End: 61.5, Text: "Edges"},
	}}

	got, err := doc.Resolve(&Builder{MaxCharsPerLine: 42, MaxLinesPerCue: 2})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := []Caption{
		{
			Identifier:     "1",
			Start:          "00:00:02.300",
			End:            "00:00:04.100",
			StartInSeconds: 2.3,
			EndInSeconds:   4.1,
			Lines:          []string{"Fractional"},
		},
		{
			Identifier:     "2",
			Start:          "00:00:00.001",
			End:            "00:01:01.500",
			StartInSeconds: 0.001,
			EndInSeconds:   61.5,
			Lines:          []string{"Edges"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMixedDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `{"captions": [{"start": "00:00:00.000", "end": "00:00:01.000", "lines": ["a"]}],
"segments": [{"start": 0, "end": 1, "text": "a"}]}`
	if err := afero.WriteFile(fs, "mixed.json", []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := Load(fs, "mixed.json", NewBuilder())
	if !errors.Is(err, ErrMixedDocument) {
		t.Errorf("expected ErrMixedDocument, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "captions.txt", []byte("test"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	if err := afero.WriteFile(fs, "broken.json", []byte("{"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	tests := []struct {
		path    string
		wantMsg string
	}{
		{"missing.json", "failed to read"},
		{"captions.txt", "unsupported"},
		{"broken.json", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := Load(fs, tt.path, NewBuilder())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected %q in error, got: %v", tt.wantMsg, err)
			}
		})
	}
}
