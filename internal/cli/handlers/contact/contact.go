// Package contact contains one handler per console command.
//
// Handlers are built by factory functions that close over their
// dependencies (the address book, a clock) and return a Handler:
//
//	handlers["add"] = contact.Add(book)
//
// A handler never prints anything. It returns the text to show on
// success or an error whose kind decides the wording (see package
// response). Argument splitting has already happened; args holds the
// tokens after the command word.
package contact

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aanand-mishra/assistant-bot/internal/contacts"
	"github.com/aanand-mishra/assistant-bot/internal/utils/response"
)

// Handler runs one command.
type Handler func(args []string) (string, error)

// Hello handles "hello".
func Hello() Handler {
	return func(args []string) (string, error) {
		if err := response.ExpectArgs("hello", args, 0); err != nil {
			return "", err
		}
		return "How can I help you?", nil
	}
}

// Add handles "add <name> <phone>". Unlike AddressBook.AddRecord it
// refuses to replace an existing contact.
func Add(book *contacts.AddressBook) Handler {
	return func(args []string) (string, error) {
		if err := response.ExpectArgs("add", args, 2); err != nil {
			return "", err
		}
		name, phone := args[0], args[1]
		slog.Debug("adding a contact", slog.String("name", name))

		if _, ok := book.Find(name); ok {
			return "", &contacts.ValidationError{
				Msg: fmt.Sprintf("Contact with name %s already exists.", name),
			}
		}

		record := contacts.NewRecord(name)
		if err := record.AddPhone(phone); err != nil {
			return "", err
		}
		book.AddRecord(record)

		slog.Info("contact added", slog.String("name", name))
		return "Contact added.", nil
	}
}

// Change handles "change <name> <old_phone> <new_phone>".
func Change(book *contacts.AddressBook) Handler {
	return func(args []string) (string, error) {
		if err := response.ExpectArgs("change", args, 3); err != nil {
			return "", err
		}
		name, oldPhone, newPhone := args[0], args[1], args[2]

		record, ok := book.Find(name)
		if !ok {
			return "", contacts.ErrContactNotFound
		}
		if err := record.EditPhone(oldPhone, newPhone); err != nil {
			return "", err
		}

		slog.Info("contact updated", slog.String("name", name))
		return "Contact updated.", nil
	}
}

// Phone handles "phone <name>".
func Phone(book *contacts.AddressBook) Handler {
	return func(args []string) (string, error) {
		if err := response.ExpectArgs("phone", args, 1); err != nil {
			return "", err
		}
		name := args[0]

		record, ok := book.Find(name)
		if !ok {
			return "", contacts.ErrContactNotFound
		}

		phones := make([]string, 0)
		for _, p := range record.Phones() {
			phones = append(phones, p.String())
		}
		return fmt.Sprintf("Phone(s) for %s: %s", name, strings.Join(phones, ", ")), nil
	}
}

// All handles "all".
func All(book *contacts.AddressBook) Handler {
	return func(args []string) (string, error) {
		if err := response.ExpectArgs("all", args, 0); err != nil {
			return "", err
		}
		if book.Len() == 0 {
			return "No contacts available.", nil
		}
		return book.String(), nil
	}
}

// AddBirthday handles "add-birthday <name> <DD.MM.YYYY>".
func AddBirthday(book *contacts.AddressBook) Handler {
	return func(args []string) (string, error) {
		if err := response.ExpectArgs("add-birthday", args, 2); err != nil {
			return "", err
		}
		name, birthday := args[0], args[1]

		record, ok := book.Find(name)
		if !ok {
			return "", contacts.ErrContactNotFound
		}
		if err := record.AddBirthday(birthday); err != nil {
			return "", err
		}

		slog.Info("birthday added", slog.String("name", name))
		return fmt.Sprintf("Birthday %s added to contact %s.", birthday, name), nil
	}
}

// ShowBirthday handles "show-birthday <name>".
func ShowBirthday(book *contacts.AddressBook) Handler {
	return func(args []string) (string, error) {
		if err := response.ExpectArgs("show-birthday", args, 1); err != nil {
			return "", err
		}
		name := args[0]

		record, ok := book.Find(name)
		if !ok {
			return "", contacts.ErrContactNotFound
		}
		birthday, ok := record.Birthday()
		if !ok {
			return "", &contacts.NotFoundError{
				Msg: fmt.Sprintf("No birthday found for contact %s.", name),
			}
		}
		return fmt.Sprintf("Birthday of %s: %s", name, birthday), nil
	}
}

// Birthdays handles "birthdays". now supplies the current day.
func Birthdays(book *contacts.AddressBook, now func() time.Time) Handler {
	return func(args []string) (string, error) {
		if err := response.ExpectArgs("birthdays", args, 0); err != nil {
			return "", err
		}

		upcoming := book.UpcomingBirthdays(now())
		if len(upcoming) == 0 {
			return "No upcoming birthdays.", nil
		}

		lines := make([]string, 0, len(upcoming))
		for _, u := range upcoming {
			lines = append(lines, fmt.Sprintf("%s: %s", u.Name, u.Birthday))
		}
		return strings.Join(lines, "\n"), nil
	}
}

// Delete handles "delete <name>".
func Delete(book *contacts.AddressBook) Handler {
	return func(args []string) (string, error) {
		if err := response.ExpectArgs("delete", args, 1); err != nil {
			return "", err
		}
		if err := book.Delete(args[0]); err != nil {
			return "", err
		}

		slog.Info("contact deleted", slog.String("name", args[0]))
		return "Contact deleted.", nil
	}
}

// RemovePhone handles "remove-phone <name> <phone>".
func RemovePhone(book *contacts.AddressBook) Handler {
	return func(args []string) (string, error) {
		if err := response.ExpectArgs("remove-phone", args, 2); err != nil {
			return "", err
		}
		name, phone := args[0], args[1]

		record, ok := book.Find(name)
		if !ok {
			return "", contacts.ErrContactNotFound
		}
		if !record.RemovePhone(phone) {
			return "", &contacts.NotFoundError{
				Msg: fmt.Sprintf("Phone number %s not found.", phone),
			}
		}

		slog.Info("phone removed", slog.String("name", name))
		return "Phone removed.", nil
	}
}
