package credentials

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const serviceName = "lazyshelf"

// ErrPasswordNotFound is returned when no password is stored for a connection
var ErrPasswordNotFound = errors.New("password not found in keyring")

// Store saves connection passwords in the OS keyring
type Store struct{}

// NewStore creates a keyring-backed credential store
func NewStore() *Store {
	return &Store{}
}

// Save stores a password in the keyring.
// Key format: "host:port:database:user" for uniqueness.
func (s *Store) Save(host string, port int, database, user, password string) error {
	if password == "" {
		// Don't save empty passwords
		return nil
	}

	if err := keyring.Set(serviceName, makeKey(host, port, database, user), password); err != nil {
		return fmt.Errorf("failed to save password to keyring: %w", err)
	}
	return nil
}

// Get retrieves a password from the keyring
func (s *Store) Get(host string, port int, database, user string) (string, error) {
	password, err := keyring.Get(serviceName, makeKey(host, port, database, user))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrPasswordNotFound
		}
		return "", fmt.Errorf("failed to read password from keyring: %w", err)
	}
	return password, nil
}

// Delete removes a password from the keyring
func (s *Store) Delete(host string, port int, database, user string) error {
	err := keyring.Delete(serviceName, makeKey(host, port, database, user))
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete password from keyring: %w", err)
	}
	return nil
}

// makeKey creates a unique keyring key for a connection
func makeKey(host string, port int, database, user string) string {
	return fmt.Sprintf("%s:%d:%s:%s", host, port, database, user)
}
