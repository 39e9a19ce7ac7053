// Package tokenstore persists the platform bearer token under one fixed
// path on disk, shared by every shopdeck invocation for the same user.
package tokenstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// envToken overrides the stored token when set.
const envToken = "SHOPDECK_TOKEN"

// DefaultPath returns ~/.shopdeck/token.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".shopdeck", "token"), nil
}

// Store reads and writes the single stored bearer token. It does no
// validation of the token contents.
type Store struct {
	path string
}

// New creates a store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Save writes the raw token, creating the parent directory with
// owner-only permissions.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Get returns the stored token using precedence: env var > file > empty.
// A missing token is not an error; the empty string means "no token".
func (s *Store) Get() (string, error) {
	if tok := os.Getenv(envToken); tok != "" {
		return strings.TrimSpace(tok), nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Remove deletes the stored token. Removing an absent token is a no-op.
func (s *Store) Remove() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
