package transfer

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var safeChars = regexp.MustCompile(`^[a-zA-Z0-9!@%_+=:,./-]+$`)

// ShellQuote single-quotes a path for human-readable messages.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if safeChars.MatchString(s) {
		return "'" + s + "'"
	}
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// HumanBytes renders n in binary units.
func HumanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for n >= unit*div && exp < 5 {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// HumanDuration renders d the way the summary lines expect: sub-minute
// durations with two decimals, longer ones split into minutes and hours.
func HumanDuration(d time.Duration) string {
	secs := d.Seconds()
	hours := int(secs) / 3600
	minutes := (int(secs) % 3600) / 60
	remainder := secs - float64(hours*3600) - float64(minutes*60)
	switch {
	case hours > 0:
		return fmt.Sprintf("%d hours %d minutes %.2f seconds", hours, minutes, remainder)
	case minutes > 0:
		return fmt.Sprintf("%d minutes %.2f seconds", minutes, remainder)
	default:
		return fmt.Sprintf("%.2f seconds", remainder)
	}
}
