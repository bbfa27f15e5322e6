// ABOUTME: Settings service persists the reader's theme preference
// ABOUTME: Backed by any KeyValueStore so it can be tested without real persistence

package settings

import (
	"context"
	"errors"
	"fmt"

	coreerrors "newsfeed-api/core/errors"
	"newsfeed-api/core/interfaces"
)

// ThemeKey is the store key holding the theme preference
const ThemeKey = "theme"

// Theme is the reader's colour scheme
type Theme string

const (
	// ThemeLight is the default theme
	ThemeLight Theme = "light"

	// ThemeDark enables the dark palette
	ThemeDark Theme = "dark"
)

// IsDark reports whether the dark palette should be applied
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Toggled returns the opposite theme
func (t Theme) Toggled() Theme {
	if t.IsDark() {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme validates a theme name
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", &coreerrors.ValidationError{Field: "theme", Message: fmt.Sprintf("unknown theme %q (want dark or light)", s)}
}

// Service loads and saves the theme preference
type Service struct {
	store  interfaces.KeyValueStore
	logger interfaces.Logger
}

// NewService creates a settings service over store
func NewService(store interfaces.KeyValueStore, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Service{store: store, logger: logger}
}

// Load returns the stored theme. Missing, unreadable or unknown values yield
// ThemeLight; storage errors are logged, not returned.
func (s *Service) Load(ctx context.Context) Theme {
	value, err := s.store.Get(ctx, ThemeKey)
	if err != nil {
		if !errors.Is(err, interfaces.ErrKeyNotFound) {
			s.logger.Warn("Failed to read theme preference", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return ThemeLight
	}
	if Theme(value) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Save persists theme
func (s *Service) Save(ctx context.Context, theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	if err := s.store.Set(ctx, ThemeKey, string(theme)); err != nil {
		return coreerrors.WrapError(err, "saving theme")
	}
	return nil
}

// Toggle flips the stored theme and returns the new value
func (s *Service) Toggle(ctx context.Context) (Theme, error) {
	next := s.Load(ctx).Toggled()
	if err := s.Save(ctx, next); err != nil {
		return s.Load(ctx), err
	}
	s.logger.Debug("Theme toggled", map[string]interface{}{
		"theme": string(next),
	})
	return next, nil
}
