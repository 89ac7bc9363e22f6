package subtitle

import (
	"fmt"
	"math"
)

// FormatSRTTimestamp renders fractional seconds as HH:MM:SS,mmm.
//
// Each field is truncated from the running remainder and the milliseconds are
// rounded half to even. A fraction that rounds to 1000ms is printed as-is and
// never carried into the seconds field, so 59.9996 yields "00:00:59,1000".
// Hours grow past two digits when needed. Negative input is undefined.
func FormatSRTTimestamp(totalSeconds float64) string {
	hours := int(totalSeconds / 3600)
	minutes := int(totalSeconds/60 - float64(hours*60))
	seconds := int(totalSeconds - float64(hours*3600) - float64(minutes*60))
	millis := int(math.RoundToEven(
		(totalSeconds - float64(seconds) - float64(hours*3600) - float64(minutes*60)) * 1000,
	))

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
