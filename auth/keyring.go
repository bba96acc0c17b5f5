// Package auth provides a high-level API for persisting and retrieving the VNDB API token from the system keyring.
package auth

import (
	"errors"
	"fmt"

	"github.com/vnkit/vnkit/constant"
	"github.com/zalando/go-keyring"
)

const user = "vndb-token"

// ErrNoToken is returned when no token is stored.
var ErrNoToken = errors.New("no API token stored, run \"vnkit auth login\"")

// SetToken persists the VNDB API token to the system keyring.
func SetToken(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := keyring.Set(constant.App, user, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// GetToken retrieves the VNDB API token from the system keyring.
func GetToken() (string, error) {
	token, err := keyring.Get(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoToken
	}
	return token, err
}

// DeleteToken removes the VNDB API token from the system keyring.
// Deleting a token that is not stored is not an error.
func DeleteToken() error {
	err := keyring.Delete(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
