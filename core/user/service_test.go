package user

import (
	"testing"

	"github.com/trezcool/learnhub/core"
	"github.com/trezcool/learnhub/storage/kv/inmemdb"
)

func newTestService(t *testing.T) (*Service, *inmemdb.Store) {
	t.Helper()
	store := inmemdb.NewStore()
	return NewService(store, nil), store
}

func TestService_Register(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name           string
		nu             NewUser
		wantErr        error
		wantValidation bool
	}{
		{
			name: "ok",
			nu:   NewUser{Name: "Jane Doe", Email: "jane@learn.hub", Password: "secret1"},
		},
		{
			name:           "foreign email domain",
			nu:             NewUser{Name: "John Doe", Email: "john@gmail.com", Password: "secret1"},
			wantValidation: true,
		},
		{
			name:           "name with digits",
			nu:             NewUser{Name: "J4ne D0e", Email: "j4ne@learn.hub", Password: "secret1"},
			wantValidation: true,
		},
		{
			name:           "name with symbols",
			nu:             NewUser{Name: "Jane <Doe>", Email: "jane2@learn.hub", Password: "secret1"},
			wantValidation: true,
		},
		{
			name:    "duplicate email",
			nu:      NewUser{Name: "Jane Clone", Email: "jane@learn.hub", Password: "secret2"},
			wantErr: ErrEmailExists,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := svc.Register(tt.nu)
			if tt.wantValidation {
				if !core.IsValidationError(err) {
					t.Fatalf("Register() error = %v, want a ValidationError", err)
				}
				return
			}
			if err != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if usr.ID == "" {
				t.Error("Register() did not assign an id")
			}
			if usr.Role != RoleStudent {
				t.Errorf("Register() role = %s, want %s", usr.Role, RoleStudent)
			}
			if usr.Bio != "" {
				t.Errorf("Register() bio = %q, want empty", usr.Bio)
			}
			if svc.Session() != nil {
				t.Error("Register() must not establish a session")
			}
		})
	}
}

func TestService_Login(t *testing.T) {
	svc, store := newTestService(t)
	usr, err := svc.Register(NewUser{Name: "Jane Doe", Email: "jane@learn.hub", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "foreign domain", email: "jane@gmail.com", password: "secret1", wantErr: ErrAccessRestricted},
		{name: "unknown email", email: "nope@learn.hub", password: "secret1", wantErr: ErrBadCredentials},
		{name: "wrong password", email: "jane@learn.hub", password: "nope", wantErr: ErrBadCredentials},
		{name: "ok", email: "jane@learn.hub", password: "secret1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Login(tt.email, tt.password)
			if err != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.ID != usr.ID {
				t.Errorf("Login() user id = %s, want %s", got.ID, usr.ID)
			}
			sess := svc.Session()
			if sess == nil {
				t.Fatal("Login() did not establish a session")
			}
			if sess.User.ID != usr.ID {
				t.Errorf("Session() user id = %s, want %s", sess.User.ID, usr.ID)
			}
			if sess.Token == "" {
				t.Error("Login() did not derive a token")
			}
		})
	}

	t.Run("session survives a restart", func(t *testing.T) {
		reloaded := NewService(store, nil)
		sess := reloaded.Session()
		if sess == nil {
			t.Fatal("Session() = nil after reload")
		}
		if sess.User.ID != usr.ID {
			t.Errorf("Session() user id = %s, want %s", sess.User.ID, usr.ID)
		}
	})

	t.Run("tampered session is discarded on reload", func(t *testing.T) {
		store.SetRaw(sessionKey, []byte(`{"user":{"id":"someone-else"},"token":"lol.lmao.rofl"}`))
		reloaded := NewService(store, nil)
		if reloaded.Session() != nil {
			t.Error("Session() must be nil for an invalid token")
		}
	})
}

func TestService_Logout(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Register(NewUser{Name: "Jane Doe", Email: "jane@learn.hub", Password: "secret1"}); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if _, err := svc.Login("jane@learn.hub", "secret1"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	if svc.Session() != nil {
		t.Error("Session() != nil after logout")
	}
	// idempotent
	if err := svc.Logout(); err != nil {
		t.Fatalf("second Logout() failed: %v", err)
	}
}

func TestService_UpdateProfile(t *testing.T) {
	svc, _ := newTestService(t)
	usr, err := svc.Register(NewUser{Name: "Jane Doe", Email: "jane@learn.hub", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	if _, err := svc.UpdateProfile("nope", UpdateProfile{}); err != ErrNotFound {
		t.Fatalf("UpdateProfile() error = %v, wantErr %v", err, ErrNotFound)
	}

	bio := "Eager learner."
	location := "Kinshasa"
	got, err := svc.UpdateProfile(usr.ID, UpdateProfile{Bio: &bio, Location: &location})
	if err != nil {
		t.Fatalf("UpdateProfile() failed: %v", err)
	}
	if got.Bio != bio || got.Location != location {
		t.Errorf("UpdateProfile() = (%q, %q), want (%q, %q)", got.Bio, got.Location, bio, location)
	}
	if got.Name != usr.Name || got.Email != usr.Email {
		t.Error("UpdateProfile() must retain omitted fields")
	}

	// clearing an optional field is a provided value, not an omission
	empty := ""
	got, err = svc.UpdateProfile(usr.ID, UpdateProfile{Location: &empty})
	if err != nil {
		t.Fatalf("UpdateProfile() failed: %v", err)
	}
	if got.Location != "" {
		t.Errorf("UpdateProfile() location = %q, want empty", got.Location)
	}
	if got.Bio != bio {
		t.Error("UpdateProfile() must retain omitted fields")
	}
}

func TestService_UpdateProfile_refreshesSession(t *testing.T) {
	svc, store := newTestService(t)
	usr, err := svc.Register(NewUser{Name: "Jane Doe", Email: "jane@learn.hub", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if _, err := svc.Login("jane@learn.hub", "secret1"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	if _, err := svc.UpdateProfile(usr.ID, UpdateProfile{Name: "Jane Smith"}); err != nil {
		t.Fatalf("UpdateProfile() failed: %v", err)
	}
	if got := svc.Session().User.Name; got != "Jane Smith" {
		t.Errorf("Session() user name = %q, want %q", got, "Jane Smith")
	}

	// the refreshed copy is persisted too
	reloaded := NewService(store, nil)
	if got := reloaded.Session().User.Name; got != "Jane Smith" {
		t.Errorf("reloaded Session() user name = %q, want %q", got, "Jane Smith")
	}
}
