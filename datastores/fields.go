package datastores

import (
	"time"
)

// BirthdayLayout is the [time.Layout] accepted and rendered for birthdays.
// Day and month may be given with one or two digits.
const BirthdayLayout = "2.1.2006"

const birthdayDisplay = "02.01.2006"

const phoneLength = 10

// PhoneNumber is a validated 10-digit phone number.
type PhoneNumber struct{ value string }

func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if len(raw) != phoneLength {
		return PhoneNumber{}, &ValidationError{Field: "phone", Value: raw, Msg: "Phone number must be a 10-digit number."}
	}
	for i := range len(raw) {
		if raw[i] < '0' || raw[i] > '9' {
			return PhoneNumber{}, &ValidationError{Field: "phone", Value: raw, Msg: "Phone number must be a 10-digit number."}
		}
	}
	return PhoneNumber{value: raw}, nil
}

func (p PhoneNumber) String() string { return p.value }

// Birthday is a calendar date parsed from DD.MM.YYYY.
type Birthday struct{ date time.Time }

func NewBirthday(raw string) (Birthday, error) {
	date, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Value: raw, Msg: "Invalid date format. Use DD.MM.YYYY", Err: err}
	}
	return Birthday{date: date}, nil
}

// Time returns the birth date at UTC midnight.
func (b Birthday) Time() time.Time { return b.date }

func (b Birthday) String() string { return b.date.Format(birthdayDisplay) }
