// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The default path ":memory:" keeps the whole database in process
// memory, so nothing is written to disk unless a file path is configured
// explicitly.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/assistant-bot/internal/config"
	"github.com/aanand-mishra/assistant-bot/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.StoragePath and creates the
// tables if they do not exist yet.
func New(cfg *config.Config) (*SQLite, error) {
	return Open(cfg.StoragePath)
}

// Open is New for callers that only have a path.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: open db: %w", err)
	}

	// Every new connection to ":memory:" gets its own empty database, so
	// the pool is pinned to one connection that is never recycled.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	// Schema:
	//   contacts.position: insertion order of the address book
	//   phones.position: order of a contact's phone numbers
	//   birthday: DD.MM.YYYY, empty when unset
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS contacts (
			name     TEXT    PRIMARY KEY,
			position INTEGER NOT NULL,
			birthday TEXT    NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS phones (
			contact  TEXT    NOT NULL REFERENCES contacts(name) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			number   TEXT    NOT NULL,
			PRIMARY KEY (contact, position)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.Open: create tables: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// GetContacts loads every contact together with its phones.
//
// The pool has a single connection, so each result set is drained and
// closed before the next query is issued.
func (s *SQLite) GetContacts() ([]types.Contact, error) {
	contacts, err := s.getContactRows()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(contacts))
	for i, c := range contacts {
		index[c.Name] = i
	}

	rows, err := s.Db.Query(
		"SELECT contact, number FROM phones ORDER BY contact, position",
	)
	if err != nil {
		return nil, fmt.Errorf("GetContacts: query phones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, number string
		if err := rows.Scan(&name, &number); err != nil {
			return nil, fmt.Errorf("GetContacts: scan phone: %w", err)
		}
		i, ok := index[name]
		if !ok {
			continue
		}
		contacts[i].Phones = append(contacts[i].Phones, number)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetContacts: phones iteration: %w", err)
	}

	return contacts, nil
}

func (s *SQLite) getContactRows() ([]types.Contact, error) {
	stmt, err := s.Db.Prepare(
		"SELECT name, birthday FROM contacts ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("GetContacts: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetContacts: query: %w", err)
	}
	defer rows.Close()

	contacts := make([]types.Contact, 0)
	for rows.Next() {
		c := types.Contact{Phones: make([]string, 0)}
		if err := rows.Scan(&c.Name, &c.Birthday); err != nil {
			return nil, fmt.Errorf("GetContacts: scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetContacts: contacts iteration: %w", err)
	}

	return contacts, nil
}

// ReplaceContacts deletes the stored snapshot and writes contacts in a
// single transaction.
func (s *SQLite) ReplaceContacts(contacts []types.Contact) (err error) {
	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("ReplaceContacts: begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM phones"); err != nil {
		return fmt.Errorf("ReplaceContacts: clear phones: %w", err)
	}
	if _, err = tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("ReplaceContacts: clear contacts: %w", err)
	}

	contactStmt, err := tx.Prepare(
		"INSERT INTO contacts (name, position, birthday) VALUES (?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("ReplaceContacts: prepare contact: %w", err)
	}
	defer contactStmt.Close()

	phoneStmt, err := tx.Prepare(
		"INSERT INTO phones (contact, position, number) VALUES (?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("ReplaceContacts: prepare phone: %w", err)
	}
	defer phoneStmt.Close()

	for i, c := range contacts {
		if _, err = contactStmt.Exec(c.Name, i, c.Birthday); err != nil {
			return fmt.Errorf("ReplaceContacts: insert contact %q: %w", c.Name, err)
		}
		for j, number := range c.Phones {
			if _, err = phoneStmt.Exec(c.Name, j, number); err != nil {
				return fmt.Errorf("ReplaceContacts: insert phone for %q: %w", c.Name, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ReplaceContacts: commit: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.Db.Close()
}
