package config

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/CrestNiraj12/speakfeed/app"
	"github.com/CrestNiraj12/speakfeed/render"
)

// Store implements app.TemplateSource over a templates file. Snapshot is
// lock-free; Reload swaps in a new snapshot atomically.
type Store struct {
	path string
	log  *slog.Logger

	mu  sync.Mutex // Serialises reloads.
	cur atomic.Pointer[app.Snapshot]
}

// NewStore loads path and returns a store serving it.
func NewStore(path string, log *slog.Logger) (*Store, error) {
	s := &Store{path: path, log: log}
	if _, err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the templates file path.
func (s *Store) Path() string { return s.path }

// Snapshot returns the current configuration.
func (s *Store) Snapshot() app.Snapshot {
	if snap := s.cur.Load(); snap != nil {
		return *snap
	}
	return DefaultSnapshot()
}

// Reload re-reads the file. On error the previous snapshot stays current.
func (s *Store) Reload() (app.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := LoadTemplates(s.path)
	if err != nil {
		s.log.Warn("template reload failed, keeping previous templates", "path", s.path, "err", err)
		return s.Snapshot(), err
	}
	for slot, problems := range render.CheckSet(snap.Templates) {
		for _, p := range problems {
			s.log.Warn("template problem", "slot", slot.String(), "problem", p.String())
		}
	}
	s.cur.Store(&snap)
	s.log.Info("templates loaded", "path", s.path)
	return snap, nil
}
