package utils

import "time"

// TimestampFormat is the display format for audit timestamps in responses.
const TimestampFormat = "2006-01-02, 15:04:05"

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampFormat)
}

func FormatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(TimestampFormat)
	return &s
}

// DateFormat is the display format for pure dates (grant start/end).
const DateFormat = "2006-01-02"

func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateFormat)
	return &s
}
