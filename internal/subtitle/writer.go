package subtitle

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mgpai22/captions/internal/caption"
)

// WebVTT format
type VTTWriter struct{}

// SubRip format
type SRTWriter struct{}

// YouTube SubViewer format, not implemented yet
type SBVWriter struct{}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatVTT:
		return &VTTWriter{}, nil
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatSBV:
		return &SBVWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// registered formats in display order
func Formats() []Format {
	return []Format{FormatVTT, FormatSRT, FormatSBV}
}

// parses a user supplied format name
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range Formats() {
		if f == format {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q: use vtt, srt, or sbv", name)
}

// renders the WebVTT document; lines are joined without a trailing newline
func (w *VTTWriter) Content(captions []caption.Caption) string {
	output := []string{"WEBVTT"}
	for _, c := range captions {
		output = append(output, "")
		if c.Identifier != "" {
			output = append(output, c.Identifier)
		}
		output = append(output, c.Start+" --> "+c.End)
		output = append(output, c.Lines...)
	}
	return strings.Join(output, "\n")
}

// writes the whole WebVTT document in a single call
func (w *VTTWriter) Write(captions []caption.Caption, out io.Writer) error {
	_, err := io.WriteString(out, w.Content(captions))
	return err
}

func (w *SRTWriter) Content(captions []caption.Caption) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = w.Write(captions, &sb)
	return sb.String()
}

// streams SRT blocks line by line; sink errors are returned unchanged
func (w *SRTWriter) Write(captions []caption.Caption, out io.Writer) error {
	for i, c := range captions {
		// index (1-based)
		if _, err := io.WriteString(out, strconv.Itoa(i+1)+"\n"); err != nil {
			return err
		}

		// timestamps: 00:00:00,000 --> 00:00:00,000
		timing := FormatSRTTimestamp(c.StartInSeconds) + " --> " +
			FormatSRTTimestamp(c.EndInSeconds) + "\n"
		if _, err := io.WriteString(out, timing); err != nil {
			return err
		}

		for _, line := range c.Lines {
			if _, err := io.WriteString(out, line+"\n"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (w *SBVWriter) Write(captions []caption.Caption, out io.Writer) error {
	return fmt.Errorf("%w: %s", ErrNotImplemented, FormatSBV)
}

// subtitle format based on file extension
func FormatFromExtension(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return FormatSRT, nil
	case ".vtt":
		return FormatVTT, nil
	case ".sbv":
		return FormatSBV, nil
	default:
		return "", fmt.Errorf("unsupported subtitle extension: %q", ext)
	}
}

// file extension for a format
func ExtensionForFormat(format Format) string {
	switch format {
	case FormatVTT:
		return ".vtt"
	case FormatSBV:
		return ".sbv"
	default:
		return ".srt"
	}
}

// MIME type used when uploading a format
func ContentType(format Format) string {
	switch format {
	case FormatVTT:
		return "text/vtt; charset=utf-8"
	case FormatSRT:
		return "application/x-subrip; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
