// Package format provides presentation-agnostic formatting helpers shared by
// the CLI and TUI layers.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatCount renders an integer with comma separators every three digits,
// e.g. 1000000 becomes "1,000,000". Used for flip counts in summaries.
func FormatCount(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	first := len(s) % 3
	if first == 0 {
		first = 3
	}
	out := make([]byte, 0, len(s)+(len(s)-1)/3)
	out = append(out, s[:first]...)
	for i := first; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

// FormatBytes renders a byte count using binary units (KiB, MiB, ...).
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// FormatThroughput renders a flips-per-second rate in a compact form,
// switching to thousands (K) and millions (M) of flips per second as needed.
func FormatThroughput(flips uint64, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "n/a"
	}
	rate := float64(flips) / elapsed.Seconds()
	switch {
	case rate >= 1e6:
		return fmt.Sprintf("%.2fM flips/s", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.1fK flips/s", rate/1e3)
	default:
		return fmt.Sprintf("%.0f flips/s", rate)
	}
}
