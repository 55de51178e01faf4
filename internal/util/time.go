package util

import "time"

const periodLayout = "2006-01-02 15:04"

// FormatEpochMillis renders a millisecond epoch timestamp as a UTC
// "YYYY-MM-DD HH:MM" string.
func FormatEpochMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(periodLayout)
}

// FormatEpochMillisPtr handles the nullable timestamps the mirror serves.
// Absent values render as "N/A".
func FormatEpochMillisPtr(ms *int64) string {
	if ms == nil {
		return "N/A"
	}
	return FormatEpochMillis(*ms)
}
