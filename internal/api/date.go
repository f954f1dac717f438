package api

import (
	"database/sql/driver"
	"encoding/json"
	"reflect"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

var dateType = reflect.TypeOf(Date{})

// Date is a calendar date in request bodies. It accepts "2006-01-02", an
// RFC 3339 timestamp, or "" for no date. A Date that is not Valid is stored
// as NULL.
type Date struct {
	time.Time
	Valid bool
}

func NewDate(t time.Time) Date {
	return Date{Time: t, Valid: true}
}

// UnmarshalJSON reports bad input as a *json.UnmarshalTypeError so the
// decoder attaches the field name.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: dateType}
	}
	if s == "" {
		*d = Date{}
		return nil
	}

	for _, layout := range []string{DateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t)
			return nil
		}
	}
	return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: dateType}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// Value writes the calendar date as the caller wrote it, without shifting
// it into the session time zone.
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Format(DateLayout), nil
}
