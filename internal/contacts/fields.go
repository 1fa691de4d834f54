package contacts

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the only accepted birthday format (DD.MM.YYYY).
const DateLayout = "02.01.2006"

// validate is safe for concurrent use and caches struct metadata, so a
// single instance serves the whole package.
var validate = validator.New()

// Phone is a validated ten-digit phone number.
type Phone struct {
	value string
}

// NewPhone checks that raw is exactly ten ASCII digits.
// The "number" tag only admits [0-9], unlike "numeric" which also allows
// a sign and a decimal point.
func NewPhone(raw string) (Phone, error) {
	if err := validate.Var(raw, "required,len=10,number"); err != nil {
		return Phone{}, &ValidationError{Msg: MsgInvalidPhone}
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date with no time of day.
type Birthday struct {
	date time.Time
}

// ParseBirthday parses raw strictly as DD.MM.YYYY. Single-digit days or
// months, other separators, and dates that do not exist on the calendar
// (31.02.2020) are all rejected.
func ParseBirthday(raw string) (Birthday, error) {
	if err := validate.Var(raw, "required,datetime="+DateLayout); err != nil {
		return Birthday{}, &ValidationError{Msg: MsgInvalidBirthday}
	}
	date, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return Birthday{}, &ValidationError{Msg: MsgInvalidBirthday}
	}
	return Birthday{date: date}, nil
}

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) String() string { return b.date.Format(DateLayout) }
