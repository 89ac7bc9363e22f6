package caption

import (
	"math"
	"time"
)

// represents single timed caption entry
type Caption struct {
	// optional cue name, only emitted by WebVTT
	Identifier string `json:"identifier,omitempty" yaml:"identifier,omitempty"`

	// display timestamps in WebVTT syntax, emitted verbatim
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`

	StartInSeconds float64 `json:"start_in_seconds" yaml:"start_in_seconds"`
	EndInSeconds   float64 `json:"end_in_seconds" yaml:"end_in_seconds"`

	Lines []string `json:"lines" yaml:"lines"`
}

// represents timed text segment that has not been split into cues yet
type Segment struct {
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// rounds to the nearest nanosecond so 4.1 stays 4.1s rather than 4.099999999s
func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
