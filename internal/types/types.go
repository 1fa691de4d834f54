// Package types holds the plain data structures shared across the
// application. Keeping them in one place prevents import cycles: the
// contacts core, storage, and handlers can all import types without
// depending on each other.
package types

// Contact is the flattened, storage-friendly form of one address book
// record.
//
// Struct tags serve two purposes:
//
//  1. json:"..." controls the field names when a snapshot is encoded.
//
//  2. validate:"..." holds the rules checked by go-playground/validator
//     before a snapshot is turned back into a live record. The phone and
//     birthday rules are the same ones the contacts package enforces on
//     user input.
type Contact struct {
	Name     string   `json:"name"               validate:"required"`
	Phones   []string `json:"phones"             validate:"dive,len=10,number"`
	Birthday string   `json:"birthday,omitempty" validate:"omitempty,datetime=02.01.2006"`
}

// UpcomingBirthday is one entry of the upcoming-week birthday report.
// Birthday is the (possibly weekend-shifted) date to congratulate on,
// formatted as DD.MM.YYYY.
type UpcomingBirthday struct {
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}
