// Package cookiefile persists session cookies keyed by wallet address in a
// single JSON file, so authenticated sessions survive restarts.
package cookiefile

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"soulclaim/internal/domain/repository"
	"soulclaim/internal/errors"
)

type store struct {
	path string

	mu      sync.Mutex
	cookies map[string]string
}

// New loads the cookie file at path. A missing file starts an empty store;
// an unreadable or malformed file is an error.
func New(path string) (repository.SessionStore, error) {
	cookies := make(map[string]string)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run, nothing saved yet.
	case err != nil:
		return nil, errors.Wrapf(err, "read cookie file %s", path)
	default:
		raw := make(map[string]string)
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(err, "parse cookie file %s", path)
		}
		for address, cookie := range raw {
			cookies[strings.ToLower(address)] = cookie
		}
	}

	return &store{path: path, cookies: cookies}, nil
}

func (s *store) Get(address string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cookie, ok := s.cookies[strings.ToLower(address)]

	return cookie, ok
}

// Put records the cookie and rewrites the whole file.
func (s *store) Put(_ context.Context, address, cookie string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cookies[strings.ToLower(address)] = cookie

	data, err := json.MarshalIndent(s.cookies, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrapf(err, "write cookie file %s", s.path)
	}

	return nil
}
