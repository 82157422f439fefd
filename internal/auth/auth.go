// Package auth manages client-portal logins. Passwords are never stored;
// only a hex-encoded SHA-256 digest is persisted, and authentication
// failures never distinguish an unknown username from a wrong password.
package auth

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lexhour/lexhour/internal/model"
)

// ErrUsernameTaken is returned by Register for a username that already
// has credentials.
var ErrUsernameTaken = errors.New("username already exists")

const credentialsFile = "client_auth.csv"

var credentialsHeader = []string{"client_name", "username", "password_hash"}

// Verifier registers and authenticates client-portal credentials backed
// by a CSV dataset in the data directory.
type Verifier struct {
	path string
}

// Open prepares a Verifier over the credential dataset in dir, creating
// the file with a bare header if it does not exist.
func Open(dir string) (*Verifier, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("storage error creating data directory: %w", err)
	}
	v := &Verifier{path: filepath.Join(dir, credentialsFile)}
	if _, err := os.Stat(v.path); os.IsNotExist(err) {
		if err := v.write(nil); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Register stores credentials for a client. The username must not
// already be present.
func (v *Verifier) Register(clientName, username, password string) error {
	creds, err := v.read()
	if err != nil {
		return err
	}
	for _, c := range creds {
		if c.Username == username {
			return fmt.Errorf("%q: %w", username, ErrUsernameTaken)
		}
	}
	creds = append(creds, model.Credential{
		ClientName:   clientName,
		Username:     username,
		PasswordHash: hashPassword(password),
	})
	return v.write(creds)
}

// Authenticate checks a username/password pair and returns the client
// name it grants access to. Any read failure, unknown username or hash
// mismatch yields ok == false with no further detail.
func (v *Verifier) Authenticate(username, password string) (clientName string, ok bool) {
	creds, err := v.read()
	if err != nil {
		return "", false
	}
	for _, c := range creds {
		if c.Username == username {
			if c.PasswordHash == hashPassword(password) {
				return c.ClientName, true
			}
			return "", false
		}
	}
	return "", false
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (v *Verifier) read() ([]model.Credential, error) {
	f, err := os.Open(v.path)
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", v.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage error parsing %s: %w", v.path, err)
	}

	var creds []model.Credential
	for i, row := range records {
		if i == 0 || len(row) < 3 {
			continue
		}
		creds = append(creds, model.Credential{
			ClientName:   row[0],
			Username:     row[1],
			PasswordHash: row[2],
		})
	}
	return creds, nil
}

// write atomically replaces the credential dataset.
func (v *Verifier) write(creds []model.Credential) error {
	tmpPath := v.path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}

	w := csv.NewWriter(f)
	rows := [][]string{credentialsHeader}
	for _, c := range creds {
		rows = append(rows, []string{c.ClientName, c.Username, c.PasswordHash})
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing %s: %w", v.path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing %s: %w", v.path, err)
	}
	if err := os.Rename(tmpPath, v.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
