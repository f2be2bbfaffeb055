package prefs

import (
	"errors"

	"github.com/trezcool/learnhub/core"
)

// StoreKey is the persisted slot name; it holds a single enumerated value.
const StoreKey = "lms_theme_v2"

// Themes
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var errBadTheme = core.NewValidationError(
	errors.New("invalid theme"),
	core.FieldError{Field: "theme", Error: "must be one of: light, dark"},
)

// Service persists UI-wide preferences; currently just the theme slot.
type Service struct {
	store core.Store
}

func NewService(store core.Store) *Service {
	return &Service{store: store}
}

// Theme returns the persisted theme preference, defaulting to light.
func (svc *Service) Theme() string {
	var theme string
	_ = svc.store.Load(StoreKey, &theme)
	if theme != ThemeDark {
		return ThemeLight
	}
	return theme
}

// SetTheme persists the theme preference.
func (svc *Service) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return errBadTheme
	}
	return svc.store.Save(StoreKey, theme)
}
