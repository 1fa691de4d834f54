// Package contacts is the in-memory contact directory: validated field
// values, per-contact records, and the address book that owns them.
package contacts

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/assistant-bot/internal/types"
)

// UpcomingWindowDays is how far ahead, inclusive, UpcomingBirthdays looks.
const UpcomingWindowDays = 7

// AddressBook maps contact names to records and remembers the order in
// which names were first added. The zero value is ready to use.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under its name, replacing any record already there.
// A replaced record keeps its original position. Callers that must not
// overwrite check Find first.
func (b *AddressBook) AddRecord(r *Record) {
	if b.records == nil {
		b.records = make(map[string]*Record)
	}
	if _, ok := b.records[r.name]; !ok {
		b.order = append(b.order, r.name)
	}
	b.records[r.name] = r
}

func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return ErrContactNotFound
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
	return nil
}

func (b *AddressBook) Len() int { return len(b.order) }

// Records returns every record in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// UpcomingBirthdays lists the contacts whose next birthday falls within
// UpcomingWindowDays of today, both ends included. A birthday on a
// Saturday or Sunday is reported on the following Monday. Results follow
// insertion order and records without a birthday are skipped.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []types.UpcomingBirthday {
	start := dateOf(today)
	upcoming := make([]types.UpcomingBirthday, 0)

	for _, r := range b.Records() {
		birthday, ok := r.Birthday()
		if !ok {
			continue
		}

		next := nextOccurrence(birthday.Date(), start)
		days := int(next.Sub(start).Hours() / 24)
		if days < 0 || days > UpcomingWindowDays {
			continue
		}

		switch next.Weekday() {
		case time.Saturday:
			next = next.AddDate(0, 0, 2)
		case time.Sunday:
			next = next.AddDate(0, 0, 1)
		}

		upcoming = append(upcoming, types.UpcomingBirthday{
			Name:     r.name,
			Birthday: next.Format(DateLayout),
		})
	}

	return upcoming
}

func (b *AddressBook) String() string {
	if b.Len() == 0 {
		return "The address book is empty."
	}
	lines := make([]string, 0, b.Len())
	for _, r := range b.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}

// Snapshot flattens the book into storage DTOs, in insertion order.
func (b *AddressBook) Snapshot() []types.Contact {
	out := make([]types.Contact, 0, b.Len())
	for _, r := range b.Records() {
		c := types.Contact{Name: r.name, Phones: make([]string, 0, len(r.phones))}
		for _, p := range r.phones {
			c.Phones = append(c.Phones, p.String())
		}
		if birthday, ok := r.Birthday(); ok {
			c.Birthday = birthday.String()
		}
		out = append(out, c)
	}
	return out
}

// Restore adds every contact in cs to the book. Each DTO is validated
// first; the book is left untouched if any of them is invalid.
func (b *AddressBook) Restore(cs []types.Contact) error {
	records := make([]*Record, 0, len(cs))
	for _, c := range cs {
		if err := validate.Struct(c); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				return &ValidationError{Msg: fmt.Sprintf("contact %q: %s", c.Name, verrs[0].Error())}
			}
			return fmt.Errorf("contacts.Restore: validate: %w", err)
		}

		r := NewRecord(c.Name)
		for _, raw := range c.Phones {
			if err := r.AddPhone(raw); err != nil {
				return err
			}
		}
		if c.Birthday != "" {
			if err := r.AddBirthday(c.Birthday); err != nil {
				return err
			}
		}
		records = append(records, r)
	}

	for _, r := range records {
		b.AddRecord(r)
	}
	return nil
}

// nextOccurrence returns the month/day of birthday in from's year, or in
// the following year when that date has already passed. A 29 February
// birthday lands on 1 March in non-leap years.
func nextOccurrence(birthday, from time.Time) time.Time {
	next := time.Date(from.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(from) {
		next = time.Date(from.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return next
}

// dateOf returns t's calendar date at midnight UTC.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
