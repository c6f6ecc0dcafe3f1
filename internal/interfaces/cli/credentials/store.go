// Package credentials keeps the staff CLI's platform token between invocations.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/codearena/arena-admin/internal/shared/biztime"
)

var ErrNotLoggedIn = errors.New("not logged in: run `arena-admin login` first")

type Credentials struct {
	BaseURL     string    `yaml:"base_url"`
	AccessToken string    `yaml:"access_token"`
	StaffID     string    `yaml:"staff_id"`
	Username    string    `yaml:"username"`
	Email       string    `yaml:"email"`
	Role        string    `yaml:"role"`
	ExpiresAt   time.Time `yaml:"expires_at,omitempty"`
}

func (c *Credentials) Expired() bool {
	return !c.ExpiresAt.IsZero() && biztime.NowUTC().After(c.ExpiresAt)
}

// DefaultPath is ~/.config/arena-admin/credentials.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "arena-admin", "credentials.yaml"), nil
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns ErrNotLoggedIn when there is no file or the token has expired.
func (s *Store) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse credentials %s: %w", s.path, err)
	}
	if creds.AccessToken == "" || creds.Expired() {
		return nil, ErrNotLoggedIn
	}
	return &creds, nil
}

func (s *Store) Save(creds *Credentials) error {
	data, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Remove deletes the stored credentials. A missing file is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
