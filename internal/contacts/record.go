package contacts

import (
	"fmt"
	"slices"
	"strings"
)

// Record is one contact: a fixed name, an ordered list of phones
// (duplicates allowed) and an optional birthday.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord returns a record with no phones and no birthday.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

func (r *Record) Name() string { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// Birthday reports the birthday and whether one has been set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone drops the first phone equal to raw. It reports false, not
// an error, when nothing matched.
func (r *Record) RemovePhone(raw string) bool {
	i := r.indexPhone(raw)
	if i < 0 {
		return false
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return true
}

// EditPhone replaces oldRaw with newRaw. The new number is validated
// before anything is touched, so a failed edit leaves the phones unchanged.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	if r.indexPhone(oldRaw) < 0 {
		return &NotFoundError{Msg: fmt.Sprintf("Phone number %s not found.", oldRaw)}
	}
	if err := r.AddPhone(newRaw); err != nil {
		return err
	}
	r.RemovePhone(oldRaw)
	return nil
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	i := r.indexPhone(raw)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// AddBirthday sets the birthday, overwriting any previous one.
func (r *Record) AddBirthday(raw string) error {
	birthday, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

func (r *Record) String() string {
	phones := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		phones = append(phones, p.String())
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(phones, "; "))
}

func (r *Record) indexPhone(raw string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool { return p.value == raw })
}
