package syntax

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// Prefered atproto Datetime string syntax, for use with [time.Format].
	//
	// Note that *parsing* syntax is more flexible.
	AtprotoDatetimeLayout = "2006-01-02T15:04:05.000Z"
)

var (
	datetimeRegex = regexp.MustCompile(`^[0-9]{4}-[01][0-9]-[0-3][0-9]T[0-2][0-9]:[0-6][0-9]:[0-6][0-9](\.[0-9]{1,20})?(Z|([+-][0-2][0-9]:[0-5][0-9]))$`)

	// loose match for strings which are "almost" RFC-3339: a calendar date at the start, and something time-like after
	datetimeLenientRegex = regexp.MustCompile(`^[0-9]{4}-[01][0-9]-[0-3][0-9][T ][0-2][0-9]:[0-6][0-9]`)
)

// Represents the a Datetime in string format, as would pass Lexicon syntax validation: the intersection of RFC-3339 and ISO-8601 syntax.
//
// Always use [ParseDatetime] instead of wrapping strings directly, especially when working with network input.
type Datetime string

func ParseDatetime(raw string) (Datetime, error) {
	if len(raw) > 64 {
		return "", malformed("datetime", raw, "datetime too long (max 64 chars)")
	}
	if !datetimeRegex.MatchString(raw) {
		return "", malformed("datetime", raw, "datetime syntax didn't validate via regex")
	}
	if strings.HasSuffix(raw, "-00:00") {
		return "", malformed("datetime", raw, "datetime can't use '-00:00' for UTC timezone, must use '+00:00', per ISO-8601")
	}
	return Datetime(raw), nil
}

// Parses a string to a golang time.Time in a single step.
func ParseDatetimeTime(raw string) (time.Time, error) {
	var zero time.Time
	d, err := ParseDatetime(raw)
	if err != nil {
		return zero, err
	}
	return d.Time()
}

// Parses datetime strings which are not strictly valid atproto datetimes but are unambiguous ISO-8601 variants seen in the wild: space instead of 'T' separator, missing timezone (assumed UTC), or '-00:00' offset.
//
// Tries strict parsing first. Output is always in UTC.
func ParseDatetimeLenient(raw string) (time.Time, error) {
	if t, err := ParseDatetimeTime(raw); err == nil {
		return t.UTC(), nil
	}
	if len(raw) > 64 || !datetimeLenientRegex.MatchString(raw) {
		return time.Time{}, malformed("datetime", raw, "datetime syntax not recognized, even leniently")
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, malformedNested("datetime", raw, "lenient datetime parse failed", err)
	}
	return t.UTC(), nil
}

// Parses the Datetime string in to a golang time.Time.
//
// There are a small number of strings which will pass initial syntax validation but fail when actually parsing, so this function can return an error. Use [ParseDatetimeTime] to fully parse in a single function call.
func (d Datetime) Time() (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, d.String())
	if err != nil {
		return time.Time{}, malformedNested("datetime", d.String(), "not a real calendar time", err)
	}
	return t, nil
}

// Creates a new valid Datetime string matching the current time, in prefered syntax.
func DatetimeNow() Datetime {
	t := time.Now().UTC()
	return Datetime(t.Format(AtprotoDatetimeLayout))
}

func (d Datetime) String() string {
	return string(d)
}

func (d Datetime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Datetime) UnmarshalText(text []byte) error {
	datetime, err := ParseDatetime(string(text))
	if err != nil {
		return err
	}
	*d = datetime
	return nil
}
