// Package date implements a calendar date with day granularity, as written in expense ledgers.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format is the layout used to write dates in a ledger document: day-month-year, two digit year.
const Format = "02-01-06"

// readFormats are the permissive layouts accepted when reading a date.
var readFormats = []string{
	"2-1-06",   // ledger format, single digit day and month allowed.
	"2-1-2006", // ledger format with a full year.
	"2006-1-2", // ISO-8601.
}

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date in the local time zone.
func Today() Date { return New(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// String formats the date in the ledger format.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date. It is lenient and accepts "1-7-25", "01-07-2025" or "2025-07-01".
func Parse(str string) (Date, error) {
	var err error
	for _, layout := range readFormats {
		var on time.Time
		if on, err = time.Parse(layout, str); err == nil {
			y, m, d := on.Date()
			if !strings.Contains(layout, "2006") {
				// time reads 69 to 99 as 19xx.
				y = 2000 + y%100
			}
			return New(y, m, d), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Format, err)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// NormalizeYear maps a two digit year to 20xx, as ledgers write them.
// Other values are returned unchanged.
func NormalizeYear(year int) int {
	if year > 0 && year < 100 {
		return 2000 + year
	}
	return year
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
