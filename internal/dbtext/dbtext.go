// Package dbtext holds the column types for values the database stores as TEXT.
// The schema keeps every decimal, timestamp and date column as text, so each
// type here carries its canonical string form through driver.Valuer and
// sql.Scanner and guarantees decode(encode(v)) == v.
package dbtext

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDecimal   = errors.New("invalid decimal text")
	ErrInvalidTimestamp = errors.New("invalid timestamp text")
	ErrInvalidDate      = errors.New("invalid date text")
	ErrInvalidEnumValue = errors.New("invalid enum value")
)

const (
	// Fractional seconds are optional on parse and trimmed on encode.
	timestampLayout = "2006-01-02T15:04:05.999999999"
	dateLayout      = "2006-01-02"
)

// Decimal is a decimal.Decimal stored as its canonical string form,
// preserving arbitrary scale with no float rounding.
type Decimal struct {
	decimal.Decimal
}

func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

func (d Decimal) Value() (driver.Value, error) {
	return d.Decimal.String(), nil
}

func (d *Decimal) Scan(src interface{}) error {
	s, err := textOf(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDecimal, err)
	}
	parsed, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	d.Decimal = parsed
	return nil
}

// DateTime is a timestamp stored as YYYY-MM-DDTHH:MM:SS with optional
// fractional seconds.
type DateTime struct {
	Time time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (t DateTime) Value() (driver.Value, error) {
	return t.Time.Format(timestampLayout), nil
}

func (t *DateTime) Scan(src interface{}) error {
	s, err := textOf(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}
	parsed, err := time.Parse(timestampLayout, s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	t.Time = parsed
	return nil
}

// NullDateTime is a nullable DateTime, used for deleted_at columns.
type NullDateTime struct {
	Time  time.Time
	Valid bool
}

func NewNullDateTime(t time.Time) NullDateTime {
	return NullDateTime{Time: t, Valid: true}
}

func (t NullDateTime) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time.Format(timestampLayout), nil
}

func (t *NullDateTime) Scan(src interface{}) error {
	if src == nil {
		*t = NullDateTime{}
		return nil
	}
	var dt DateTime
	if err := dt.Scan(src); err != nil {
		return err
	}
	t.Time = dt.Time
	t.Valid = true
	return nil
}

// Ptr returns the wrapped time or nil when the value is NULL.
func (t NullDateTime) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	out := t.Time
	return &out
}

// Date is a calendar date stored as YYYY-MM-DD.
type Date struct {
	Time time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func ParseDate(s string) (Date, error) {
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: parsed}, nil
}

func (d Date) String() string {
	return d.Time.Format(dateLayout)
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src interface{}) error {
	s, err := textOf(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, string(b))
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func textOf(src interface{}) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported source type %T", src)
	}
}
