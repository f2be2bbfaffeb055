package prefs

import (
	"testing"

	"github.com/trezcool/learnhub/core"
	"github.com/trezcool/learnhub/storage/kv/inmemdb"
)

func TestService_Theme(t *testing.T) {
	store := inmemdb.NewStore()
	svc := NewService(store)

	if got := svc.Theme(); got != ThemeLight {
		t.Errorf("Theme() = %q, want the light default", got)
	}

	if err := svc.SetTheme(ThemeDark); err != nil {
		t.Fatalf("SetTheme() failed: %v", err)
	}
	if got := svc.Theme(); got != ThemeDark {
		t.Errorf("Theme() = %q, want %q", got, ThemeDark)
	}

	if err := svc.SetTheme(ThemeLight); err != nil {
		t.Fatalf("SetTheme() failed: %v", err)
	}
	if got := svc.Theme(); got != ThemeLight {
		t.Errorf("Theme() = %q, want %q", got, ThemeLight)
	}

	t.Run("unknown theme is rejected", func(t *testing.T) {
		err := svc.SetTheme("sepia")
		if !core.IsValidationError(err) {
			t.Fatalf("SetTheme() error = %v, want a ValidationError", err)
		}
		if got := svc.Theme(); got != ThemeLight {
			t.Errorf("Theme() = %q, the rejected value must not stick", got)
		}
	})

	t.Run("garbage in the slot falls back to light", func(t *testing.T) {
		store.SetRaw(StoreKey, []byte(`"sepia"`))
		if got := svc.Theme(); got != ThemeLight {
			t.Errorf("Theme() = %q, want the light default", got)
		}
	})
}
