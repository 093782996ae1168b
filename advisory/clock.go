package advisory

import (
	"strconv"
	"strings"
	"time"
)

// ClockLabel formats an epoch-seconds timestamp as "HH:MM" in local time.
func ClockLabel(epoch int64, loc *time.Location) string {
	return time.Unix(epoch, 0).In(loc).Format("15:04")
}

// DateKey formats an epoch-seconds timestamp as its "YYYY-MM-DD" local date.
func DateKey(epoch int64, loc *time.Location) string {
	return time.Unix(epoch, 0).In(loc).Format("2006-01-02")
}

// MinuteOfDay converts an "HH:MM" label to minutes since midnight, used for
// distance comparisons between independent time series. Malformed components
// count as zero.
func MinuteOfDay(label string) int {
	h, m := 0, 0
	parts := strings.SplitN(label, ":", 2)
	if len(parts) > 0 {
		h, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}
	return h*60 + m
}
