package caption

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Builder turns timed text segments into captions
type Builder struct {
	MaxCharsPerLine int
	MaxLinesPerCue  int
	MaxDuration     time.Duration
}

func NewBuilder() *Builder {
	return &Builder{
		MaxCharsPerLine: 42, // Standard subtitle line length
		MaxLinesPerCue:  2,  // Most players support 2 lines
		MaxDuration:     7 * time.Second,
	}
}

// converts segments to numbered captions, splitting and wrapping as needed
func (b *Builder) Build(segments []Segment) []Caption {
	captions := make([]Caption, 0, len(segments))
	index := 1

	for _, seg := range segments {
		text := strings.Join(strings.Fields(seg.Text), " ")
		if text == "" {
			continue
		}

		if b.needsSplit(text, seg.EndTime-seg.StartTime) {
			for _, part := range b.splitSegment(seg) {
				captions = append(captions, b.newCaption(index, part))
				index++
			}
			continue
		}

		captions = append(captions, b.newCaption(index, Segment{
			StartTime: seg.StartTime,
			EndTime:   seg.EndTime,
			Text:      text,
		}))
		index++
	}

	return captions
}

func (b *Builder) newCaption(index int, seg Segment) Caption {
	return Caption{
		Identifier:     strconv.Itoa(index),
		Start:          VTTTimestamp(seg.StartTime),
		End:            VTTTimestamp(seg.EndTime),
		StartInSeconds: seg.StartTime.Seconds(),
		EndInSeconds:   seg.EndTime.Seconds(),
		Lines:          b.wrap(seg.Text),
	}
}

func (b *Builder) needsSplit(text string, duration time.Duration) bool {
	if utf8.RuneCountInString(text) > b.MaxCharsPerLine*b.MaxLinesPerCue {
		return true
	}
	return b.MaxDuration > 0 && duration > b.MaxDuration
}

// splits long segment into evenly timed parts
func (b *Builder) splitSegment(seg Segment) []Segment {
	words := strings.Fields(seg.Text)
	if len(words) == 0 {
		return nil
	}
	totalDuration := seg.EndTime - seg.StartTime

	maxChars := b.MaxCharsPerLine * b.MaxLinesPerCue
	totalChars := utf8.RuneCountInString(strings.Join(words, " "))

	numSplits := 1
	if maxChars > 0 {
		numSplits = (totalChars + maxChars - 1) / maxChars
	}
	if b.MaxDuration > 0 {
		if durationSplits := int(totalDuration/b.MaxDuration) + 1; durationSplits > numSplits {
			numSplits = durationSplits
		}
	}
	if numSplits < 1 {
		numSplits = 1
	}

	wordsPerSplit := (len(words) + numSplits - 1) / numSplits
	durationPerSplit := totalDuration / time.Duration(numSplits)

	var parts []Segment
	currentStart := seg.StartTime

	for i := 0; i < numSplits && len(words) > 0; i++ {
		endIdx := min(wordsPerSplit, len(words))
		splitWords := words[:endIdx]
		words = words[endIdx:]

		currentEnd := currentStart + durationPerSplit
		// last part ends at the original end time
		if len(words) == 0 {
			currentEnd = seg.EndTime
		}

		parts = append(parts, Segment{
			StartTime: currentStart,
			EndTime:   currentEnd,
			Text:      strings.Join(splitWords, " "),
		})
		currentStart = currentEnd
	}

	return parts
}

// breaks text into at most MaxLinesPerCue balanced lines
func (b *Builder) wrap(text string) []string {
	runeCount := utf8.RuneCountInString(text)
	words := strings.Fields(text)

	if b.MaxCharsPerLine <= 0 || runeCount <= b.MaxCharsPerLine ||
		len(words) < 2 || b.MaxLinesPerCue < 2 {
		return []string{text}
	}

	n := (runeCount + b.MaxCharsPerLine - 1) / b.MaxCharsPerLine
	n = min(n, b.MaxLinesPerCue, len(words))
	target := (runeCount + n - 1) / n

	lines := make([]string, 0, n)
	var current []string
	currentLen := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if len(current) > 0 && len(lines) < n-1 && currentLen+1+wordLen > target {
			lines = append(lines, strings.Join(current, " "))
			current, currentLen = nil, 0
		}

		if len(current) == 0 {
			currentLen = wordLen
		} else {
			currentLen += 1 + wordLen
		}
		current = append(current, word)
	}

	return append(lines, strings.Join(current, " "))
}

// formats duration as WebVTT timestamp: 00:00:00.000
func VTTTimestamp(d time.Duration) string {
	d = d.Round(time.Millisecond)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
