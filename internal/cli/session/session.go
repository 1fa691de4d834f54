// Package session runs the interactive read-eval-print loop.
//
// A Session owns nothing global: the address book, the snapshot storage
// and the clock are all handed in by the caller. Dispatch is the single
// place where handler errors become text, so a failing command never
// ends the loop.
package session

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aanand-mishra/assistant-bot/internal/cli/handlers/contact"
	"github.com/aanand-mishra/assistant-bot/internal/contacts"
	"github.com/aanand-mishra/assistant-bot/internal/storage"
	"github.com/aanand-mishra/assistant-bot/internal/utils/response"
)

const (
	MsgWelcome = "Welcome to the assistant bot!"
	MsgGoodbye = "Good bye!"
)

type Session struct {
	book     *contacts.AddressBook
	store    storage.Storage
	prompt   string
	handlers map[string]contact.Handler
}

// New wires every command to its handler. now is consulted each time
// the "birthdays" command runs.
func New(book *contacts.AddressBook, store storage.Storage, now func() time.Time, prompt string) *Session {
	return &Session{
		book:   book,
		store:  store,
		prompt: prompt,
		handlers: map[string]contact.Handler{
			"hello":         contact.Hello(),
			"add":           contact.Add(book),
			"change":        contact.Change(book),
			"phone":         contact.Phone(book),
			"all":           contact.All(book),
			"add-birthday":  contact.AddBirthday(book),
			"show-birthday": contact.ShowBirthday(book),
			"birthdays":     contact.Birthdays(book, now),
			"delete":        contact.Delete(book),
			"remove-phone":  contact.RemovePhone(book),
		},
	}
}

// Dispatch runs one input line and returns the text to print. stop is
// true once the user asked to leave. A blank line yields no text.
func (s *Session) Dispatch(line string) (text string, stop bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	command, args := strings.ToLower(fields[0]), fields[1:]

	switch command {
	case "close", "exit":
		return MsgGoodbye, true
	}

	handler, ok := s.handlers[command]
	if !ok {
		slog.Debug("unknown command", slog.String("command", command))
		return response.MsgInvalidCommand, false
	}

	defer func() {
		if v := recover(); v != nil {
			slog.Error("panic occurred",
				slog.String("command", command),
				slog.Any("recovered", v))
			text, stop = fmt.Sprintf("Unexpected error: %v", v), false
		}
	}()

	out, err := handler(args)
	if err != nil {
		slog.Debug("command failed",
			slog.String("command", command),
			slog.String("error", err.Error()))
		return response.Text(err), false
	}
	return out, false
}

// Run restores the book from storage, serves commands read from in until
// the user exits or in is exhausted, then saves the book back.
func (s *Session) Run(in io.Reader, out io.Writer) error {
	saved, err := s.store.GetContacts()
	if err != nil {
		return fmt.Errorf("session.Run: load contacts: %w", err)
	}
	if err := s.book.Restore(saved); err != nil {
		return fmt.Errorf("session.Run: restore contacts: %w", err)
	}
	slog.Info("address book restored", slog.Int("contacts", s.book.Len()))

	fmt.Fprintln(out, MsgWelcome)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, s.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		text, stop := s.Dispatch(scanner.Text())
		if text != "" {
			fmt.Fprintln(out, text)
		}
		if stop {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("session.Run: read input: %w", err)
	}

	if err := s.store.ReplaceContacts(s.book.Snapshot()); err != nil {
		return fmt.Errorf("session.Run: save contacts: %w", err)
	}
	slog.Info("address book saved", slog.Int("contacts", s.book.Len()))

	return nil
}
