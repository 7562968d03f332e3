// Package store persists profiles as JSON files in a local data directory,
// one file per profile, and notifies subscribers when the catalog changes.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

// ErrNotFound is returned by Get when no profile exists under the id.
var ErrNotFound = errors.New("profile not found")

const (
	keyPrefix = "profile_"
	keySuffix = ".json"
)

// Store is a synchronous file-backed profile store. There is exactly one
// writer per process (the active wizard), so no locking beyond the
// filesystem's own atomicity is needed.
type Store struct {
	dir      string
	log      *zap.Logger
	notifier *Notifier
}

// Open creates the data directory if needed and returns a Store over it.
func Open(dir string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, log: log, notifier: NewNotifier()}, nil
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string { return s.dir }

// Notifier returns the store's change notifier. Listing components
// subscribe here rather than polling.
func (s *Store) Notifier() *Notifier { return s.notifier }

func (s *Store) pathFor(id string) string {
	return filepath.Join(s.dir, keyPrefix+id+keySuffix)
}

// Get loads the profile stored under id. A missing or unreadable entry is
// reported as ErrNotFound; corrupt entries are logged, never propagated.
func (s *Store) Get(id string) (domain.Profile, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		return domain.Profile{}, ErrNotFound
	}
	var p domain.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn("corrupt profile entry", zap.String("id", id), zap.Error(err))
		return domain.Profile{}, ErrNotFound
	}
	return p, nil
}

// Put writes the profile under its id, overwriting any previous value.
// Last write wins. Subscribers are notified after the write lands.
func (s *Store) Put(p domain.Profile) error {
	if p.ID == "" {
		return errors.New("profile id is empty")
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.WriteFile(s.pathFor(p.ID), data, 0o600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	s.notifier.Publish(Event{Kind: EventSaved, ProfileID: p.ID})
	return nil
}

// Delete removes the profile stored under id. Deleting an absent id is a
// no-op success; subscribers are only notified when something was removed.
func (s *Store) Delete(id string) error {
	err := os.Remove(s.pathFor(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	s.notifier.Publish(Event{Kind: EventDeleted, ProfileID: id})
	return nil
}

// ListAll scans every stored profile, skipping entries that fail to decode.
// Results are sorted by id so listings are stable across runs.
func (s *Store) ListAll() ([]domain.Profile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("scan data dir: %w", err)
	}
	var out []domain.Profile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, keyPrefix) || !strings.HasSuffix(name, keySuffix) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			s.log.Warn("read profile entry", zap.String("file", name), zap.Error(err))
			continue
		}
		var p domain.Profile
		if err := json.Unmarshal(data, &p); err != nil {
			s.log.Warn("skip corrupt profile entry", zap.String("file", name), zap.Error(err))
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
