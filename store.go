package bancore

import (
	"encoding/json"
	"fmt"
	"os"
)

// AccountStore is the durable home of the canonical account collection.
//
// The contract is whole-collection replace: SaveAll atomically rewrites the
// entire set on every mutation, and LoadAll reads it back in full. This is a
// scalability limit, not a correctness one: with a single process and a
// handful of accounts, the full read-modify-write cycle keeps every compound
// change (both legs of a transfer, a trade and its statement entry) durable
// together or not at all.
type AccountStore interface {
	// LoadAll returns every account, or an empty slice when no durable
	// state exists yet. A present-but-undecodable store yields an error
	// wrapping ErrCorruptStore.
	LoadAll() ([]*Account, error)
	// SaveAll atomically replaces the durable collection.
	SaveAll(accounts []*Account) error
}

// FileStore persists the account collection as a single indented JSON
// document. Writes go to a temporary file first and are renamed over the
// target, so a crash mid-write never corrupts the previous state.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given file path. The file does
// not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadAll implements AccountStore. Missing file means a fresh, empty store.
func (s *FileStore) LoadAll() ([]*Account, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []*Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading account store %q: %w", s.path, err)
	}
	if len(data) == 0 {
		return []*Account{}, nil
	}

	var accounts []*Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decoding account store %q: %v: %w", s.path, err, ErrCorruptStore)
	}
	for _, a := range accounts {
		a.normalize()
	}
	return accounts, nil
}

// SaveAll implements AccountStore with an atomic whole-collection replace.
func (s *FileStore) SaveAll(accounts []*Account) error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating account store %q: %w", tmp, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(accounts); err != nil {
		f.Close()
		return fmt.Errorf("encoding account store: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing account store %q: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing account store %q: %w", s.path, err)
	}
	return nil
}
