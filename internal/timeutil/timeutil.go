package timeutil

import "time"

// Layouts used across intake logs, filenames and documents. Dates are
// day-first UK formats; file timestamps sort lexicographically.
const (
	DateLayout      = "02/01/2006"
	DateTimeLayout  = "02/01/2006 15:04:05"
	FileStampLayout = "20060102_150405"
	IDDateLayout    = "20060102"
	DisplayLayout   = "02-Jan-2006 03:04 PM"
)

// Now is swappable so tests can pin the clock.
var Now = time.Now

// CurrentDate returns today's date in UK format.
func CurrentDate() string {
	return Now().Format(DateLayout)
}

// CurrentDateTime returns the current timestamp in UK format.
func CurrentDateTime() string {
	return Now().Format(DateTimeLayout)
}

// FileStamp returns a timestamp suitable for filenames.
func FileStamp() string {
	return Now().Format(FileStampLayout)
}

// IDDate returns the date segment used in asset ids.
func IDDate() string {
	return Now().Format(IDDateLayout)
}

// ParseDate parses a UK-format date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
