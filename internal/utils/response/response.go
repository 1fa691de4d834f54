// Package response turns handler results into the single line of text
// the user sees.
//
// Every command handler returns (string, error). The session never
// prints an error directly: it hands it to Text, which is the one place
// that knows how each error kind is worded. That keeps the wording
// consistent across commands and means no error can escape the loop.
package response

import (
	"errors"
	"fmt"

	"github.com/aanand-mishra/assistant-bot/internal/contacts"
)

// Fixed user-facing messages.
const (
	MsgArgumentCount  = "Please provide the correct number of arguments."
	MsgInvalidCommand = "Invalid command."
)

// ArgumentCountError reports a command called with the wrong number of
// tokens.
type ArgumentCountError struct {
	Command string
	Want    int
	Got     int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("%s: want %d argument(s), got %d", e.Command, e.Want, e.Got)
}

// ExpectArgs returns an *ArgumentCountError unless args has exactly want
// elements.
func ExpectArgs(command string, args []string, want int) error {
	if len(args) != want {
		return &ArgumentCountError{Command: command, Want: want, Got: len(args)}
	}
	return nil
}

// Text renders err for the user.
//
//	*contacts.ValidationError → "ValueError: <msg>"
//	*ArgumentCountError       → "Please provide the correct number of arguments."
//	*contacts.NotFoundError   → "<msg>"
//	anything else             → err.Error()
func Text(err error) string {
	var (
		validationErr *contacts.ValidationError
		argsErr       *ArgumentCountError
		notFoundErr   *contacts.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		return "ValueError: " + validationErr.Msg
	case errors.As(err, &argsErr):
		return MsgArgumentCount
	case errors.As(err, &notFoundErr):
		return notFoundErr.Msg
	default:
		return err.Error()
	}
}
