// Package theme holds the built-in color/effect/font presets, the user's optional
// override, and renders the active theme as style variables.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/AlexZinkM/nebula-dashboard/internal/logger"
	"github.com/AlexZinkM/nebula-dashboard/internal/prefs"
)

// ErrUnknownTheme is returned by SetTheme for names that are not presets.
var ErrUnknownTheme = errors.New("unknown theme")

// Store owns the active preset and override. All mutation goes through its methods.
type Store struct {
	prefs prefs.Store

	mu        sync.RWMutex
	preset    string
	override  *Override
	listeners map[int]func(Spec)
	nextID    int
}

// NewStore returns a store on the default preset. Call Load to restore persisted choices.
func NewStore(p prefs.Store) *Store {
	return &Store{
		prefs:     p,
		preset:    DefaultPreset,
		listeners: make(map[int]func(Spec)),
	}
}

// Load restores the persisted preset and override. A persisted override that cannot be
// parsed is logged, deleted and ignored.
func (s *Store) Load() {
	s.mu.Lock()
	if name, ok := s.prefs.Get(prefs.KeyTheme); ok {
		if _, known := Preset(name); known {
			s.preset = name
		} else {
			logger.Warn("Ignoring unknown persisted theme %q", name)
		}
	}

	s.override = nil
	if raw, ok := s.prefs.Get(prefs.KeyThemeOverride); ok {
		var o Override
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			logger.Error("Failed to parse persisted theme override, discarding it: %v", err)
			if err := s.prefs.Delete(prefs.KeyThemeOverride); err != nil {
				logger.Error("Failed to delete corrupt theme override: %v", err)
			}
		} else if !o.IsEmpty() {
			s.override = &o
		}
	}
	active := s.activeLocked()
	s.mu.Unlock()

	s.notify(active)
}

// SetTheme switches to a preset, clears any customization and persists the choice.
// Nothing changes when persisting fails.
func (s *Store) SetTheme(name string) error {
	if _, ok := Preset(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}

	s.mu.Lock()
	if err := s.prefs.Set(prefs.KeyTheme, name); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	if err := s.prefs.Delete(prefs.KeyThemeOverride); err != nil {
		if rerr := s.prefs.Set(prefs.KeyTheme, s.preset); rerr != nil {
			logger.Error("Failed to restore persisted theme %q: %v", s.preset, rerr)
		}
		s.mu.Unlock()
		return fmt.Errorf("failed to clear theme override: %w", err)
	}
	s.preset = name
	s.override = nil
	active := s.activeLocked()
	s.mu.Unlock()

	s.notify(active)
	return nil
}

// CustomizeTheme merges partial onto the current override and persists the result.
// Nothing changes when persisting fails.
func (s *Store) CustomizeTheme(partial Override) error {
	s.mu.Lock()
	var current Override
	if s.override != nil {
		current = *s.override
	}
	merged := current.Merge(partial)

	data, err := json.Marshal(merged)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to marshal theme override: %w", err)
	}
	if err := s.prefs.Set(prefs.KeyThemeOverride, string(data)); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to persist theme override: %w", err)
	}
	s.override = &merged
	active := s.activeLocked()
	s.mu.Unlock()

	s.notify(active)
	return nil
}

// ResetTheme discards the override, reverting to the pure preset.
func (s *Store) ResetTheme() error {
	s.mu.Lock()
	if err := s.prefs.Delete(prefs.KeyThemeOverride); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to clear theme override: %w", err)
	}
	s.override = nil
	active := s.activeLocked()
	s.mu.Unlock()

	s.notify(active)
	return nil
}

// Active returns the preset merged with the override.
func (s *Store) Active() Spec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeLocked()
}

// PresetName returns the name of the active preset.
func (s *Store) PresetName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preset
}

// Override returns a copy of the current override, or nil when the preset is unmodified.
func (s *Store) Override() *Override {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.override == nil {
		return nil
	}
	o := Override{}.Merge(*s.override)
	return &o
}

// Subscribe registers fn to receive the active theme after every change.
func (s *Store) Subscribe(fn func(Spec)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) activeLocked() Spec {
	base, ok := Preset(s.preset)
	if !ok {
		base, _ = Preset(DefaultPreset)
	}
	if s.override == nil {
		return base
	}
	return s.override.Apply(base)
}

func (s *Store) notify(active Spec) {
	s.mu.RLock()
	fns := make([]func(Spec), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(active)
	}
}
