package subtitle

import (
	"errors"
	"io"
	"strings"

	"github.com/mgpai22/captions/internal/caption"
)

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatSBV Format = "sbv"
)

var ErrNotImplemented = errors.New("subtitle format not implemented")

// interface for writing captions to a sink
type Writer interface {
	Write(captions []caption.Caption, w io.Writer) error
}

// optional interface for writers that can render the whole document as a string
type ContentWriter interface {
	Writer
	Content(captions []caption.Caption) string
}

// Content renders captions with w, buffering Write when w has no string form.
func Content(w Writer, captions []caption.Caption) (string, error) {
	if cw, ok := w.(ContentWriter); ok {
		return cw.Content(captions), nil
	}

	var sb strings.Builder
	if err := w.Write(captions, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
