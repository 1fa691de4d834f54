package contacts

// ValidationError reports input that does not have the expected format,
// or a contact name that is already taken.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports a missing contact, phone number, or birthday.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// Messages shared with the command layer.
const (
	MsgInvalidPhone    = "The phone number must be a string of 10 digits"
	MsgInvalidBirthday = "Invalid date format. Use DD.MM.YYYY"
	MsgContactNotFound = "Contact not found."
)

// ErrContactNotFound is returned whenever a name lookup misses.
var ErrContactNotFound = &NotFoundError{Msg: MsgContactNotFound}
