// Package credentials stores the catalog account in the system keyring and asks for it when needed.
package credentials

import (
	"errors"

	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/source"
	"github.com/zalando/go-keyring"
)

const (
	service     = constant.Atres
	usernameKey = "username"
)

// Load returns the stored credentials, or nil when nothing is stored.
func Load() (*source.Credentials, error) {
	username, err := keyring.Get(service, usernameKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	password, err := keyring.Get(service, username)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &source.Credentials{Username: username, Password: password}, nil
}

// Save persists credentials to the system keyring.
func Save(c *source.Credentials) error {
	if err := keyring.Set(service, usernameKey, c.Username); err != nil {
		return err
	}
	return keyring.Set(service, c.Username, c.Password)
}

// Delete removes the stored credentials. Deleting nothing is not an error.
func Delete() error {
	username, err := keyring.Get(service, usernameKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := keyring.Delete(service, username); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return keyring.Delete(service, usernameKey)
}
