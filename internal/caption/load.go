package caption

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// caption document as stored on disk
type Document struct {
	Captions []Caption     `json:"captions,omitempty" yaml:"captions,omitempty"`
	Segments []SegmentSpec `json:"segments,omitempty" yaml:"segments,omitempty"`
}

// segment entry of a document, times in seconds
type SegmentSpec struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
	Text  string  `json:"text" yaml:"text"`
}

var ErrMixedDocument = errors.New("document must contain either captions or segments, not both")

// reads a JSON or YAML caption document, chosen by file extension
func LoadDocument(fs afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read caption document: %w", err)
	}

	var doc Document
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported caption document: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption document %s: %w", path, err)
	}

	return &doc, nil
}

// returns the document captions, building them from segments when needed
func (d *Document) Resolve(b *Builder) ([]Caption, error) {
	if len(d.Captions) > 0 && len(d.Segments) > 0 {
		return nil, ErrMixedDocument
	}
	if len(d.Segments) == 0 {
		return d.Captions, nil
	}

	segments := make([]Segment, 0, len(d.Segments))
	for _, s := range d.Segments {
		segments = append(segments, Segment{
			StartTime: secondsToDuration(s.Start),
			EndTime:   secondsToDuration(s.End),
			Text:      s.Text,
		})
	}
	return b.Build(segments), nil
}

// loads a document and resolves it into captions
func Load(fs afero.Fs, path string, b *Builder) ([]Caption, error) {
	doc, err := LoadDocument(fs, path)
	if err != nil {
		return nil, err
	}
	return doc.Resolve(b)
}
