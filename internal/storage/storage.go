// Package storage defines the Storage interface: the contract a snapshot
// backend must satisfy so the session can restore the address book when
// it starts and hand it back when it ends.
//
// The address book itself lives in memory (package contacts). A backend
// only ever sees the flattened types.Contact form, which keeps the
// domain core free of any database concerns.
package storage

import "github.com/aanand-mishra/assistant-bot/internal/types"

// Storage is the snapshot contract.
type Storage interface {
	// GetContacts returns every stored contact in the order it was saved.
	// Returns an empty slice (not nil) when nothing is stored.
	GetContacts() ([]types.Contact, error)

	// ReplaceContacts atomically swaps the stored snapshot for contacts.
	ReplaceContacts(contacts []types.Contact) error

	// Close releases the backend.
	Close() error
}
