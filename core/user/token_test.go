package user

import (
	"testing"
	"time"
)

func TestMakeVerifyToken(t *testing.T) {
	defer func() { nowFunc = time.Now }()

	usr := User{ID: "u1", Name: "Admin User", Email: "admin@learn.hub", Role: RoleAdmin}

	token, err := makeToken(usr)
	if err != nil {
		t.Fatalf("makeToken() failed: %v", err)
	}

	claims, err := verifyToken(token, usr)
	if err != nil {
		t.Fatalf("verifyToken() failed: %v", err)
	}
	if claims.Subject != usr.ID {
		t.Errorf("claims subject = %s, want %s", claims.Subject, usr.ID)
	}
	if !claims.IsAdmin || claims.IsStudent {
		t.Errorf("claims roles = (admin=%t, student=%t), want (true, false)", claims.IsAdmin, claims.IsStudent)
	}

	t.Run("empty token", func(t *testing.T) {
		if _, err := verifyToken("", usr); err != errInvalidToken {
			t.Errorf("verifyToken() error = %v, want %v", err, errInvalidToken)
		}
	})

	t.Run("wrong user", func(t *testing.T) {
		if _, err := verifyToken(token, User{ID: "u2"}); err == nil {
			t.Error("verifyToken() must reject a token minted for another user")
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		if _, err := verifyToken(token+"x", usr); err == nil {
			t.Error("verifyToken() must reject a tampered signature")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		nowFunc = func() time.Time { return time.Now().Add(-10 * 24 * time.Hour) }
		stale, err := makeToken(usr)
		if err != nil {
			t.Fatalf("makeToken() failed: %v", err)
		}
		nowFunc = time.Now
		if _, err := verifyToken(stale, usr); err == nil {
			t.Error("verifyToken() must reject an expired token")
		}
	})
}
