package datastores

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrObjectNotFound = errors.New("store: object not found")
	ErrNoBirthday     = errors.New("store: birthday not set")
)

// ValidationError reports a field value rejected by its constructor.
// Msg is meant to be shown to the user as is.
type ValidationError struct {
	Field string
	Value string
	Msg   string
	Err   error
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return e.Err }

// Record is one contact. The name is set once by [NewRecord].
type Record struct {
	name     string
	phones   []PhoneNumber
	birthday *Birthday
}

func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Value: name, Msg: "Name must not be empty."}
	}
	return &Record{name: name}, nil
}

func (r *Record) Name() string { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []PhoneNumber { return slices.Clone(r.phones) }

func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone drops every phone equal to value.
func (r *Record) RemovePhone(value string) {
	r.phones = slices.DeleteFunc(r.phones, func(p PhoneNumber) bool { return p.value == value })
}

// EditPhone replaces the first phone equal to oldValue.
// It does nothing when no phone matches.
func (r *Record) EditPhone(oldValue, newValue string) error {
	i := slices.IndexFunc(r.phones, func(p PhoneNumber) bool { return p.value == oldValue })
	if i < 0 {
		return nil
	}
	phone, err := NewPhoneNumber(newValue)
	if err != nil {
		return err
	}
	r.phones[i] = phone
	return nil
}

func (r *Record) FindPhone(value string) (PhoneNumber, bool) {
	i := slices.IndexFunc(r.phones, func(p PhoneNumber) bool { return p.value == value })
	if i < 0 {
		return PhoneNumber{}, false
	}
	return r.phones[i], true
}

// AddBirthday sets the birthday, replacing any previous one.
func (r *Record) AddBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("Contact name: ")
	b.WriteString(r.name)
	b.WriteString(", phones: ")
	for i, p := range r.phones {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(p.value)
	}
	if r.birthday != nil {
		b.WriteString(", birthday: ")
		b.WriteString(r.birthday.String())
	}
	return b.String()
}
