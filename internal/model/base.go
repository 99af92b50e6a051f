package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID prefixes per entity kind
const (
	PrefixUser                 = "usr-"
	PrefixOutPatient           = "op-"
	PrefixInPatient            = "ip-"
	PrefixOutPatientVisit      = "opv-"
	PrefixInPatientRound       = "ipr-"
	PrefixOutPatientMedication = "opm-"
	PrefixInPatientMedication  = "ipm-"
	PrefixAppointment          = "op-apt-"
	PrefixAdmission            = "ip-adm-"
	PrefixFeedback             = "fb-"
)

// NewID returns prefix followed by the first 8 hex characters of a random UUID.
func NewID(prefix string) string {
	return prefix + uuid.New().String()[:8]
}

// Page is an offset/limit window over a list query.
type Page struct {
	Offset int `json:"skip" form:"skip"`
	Limit  int `json:"limit" form:"limit"`
}

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// DefaultPage is the window used when a caller supplies none.
func DefaultPage() Page {
	return Page{Offset: 0, Limit: DefaultPageLimit}
}

const dateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if s == "" {
		return errors.New("date must not be empty")
	}
	// accept full timestamps too, keeping only the calendar day
	if len(s) > len(dateLayout) {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", s, err)
		}
		*d = NewDate(t.Year(), t.Month(), t.Day())
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		parsed, err := ParseDate(v[:min(len(v), len(dateLayout))])
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
