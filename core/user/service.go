package user

import (
	"fmt"
	"net/mail"

	"github.com/google/uuid"

	"github.com/trezcool/learnhub/core"
)

// Store collection keys
const (
	StoreKey   = "lms_users_v2"
	sessionKey = "lms_session_v2"
)

var (
	// errors
	ErrNotFound         = core.NewNotFoundError("user not found")
	ErrEmailExists      = core.NewConflictError("a user with this email already exists")
	ErrBadCredentials   = core.NewAuthError("invalid credentials")
	ErrAccessRestricted = core.NewAuthError(
		fmt.Sprintf("access restricted: only %s emails are allowed", core.Conf.GetString("orgEmailDomain")),
	)
)

type Service struct {
	store core.Store
	mail  core.EmailService
	//log *log.Logger

	session *Session
}

func NewService(store core.Store, mailSvc core.EmailService) *Service {
	svc := &Service{
		store: store,
		mail:  mailSvc,
	}
	svc.loadSession()
	return svc
}

// loadSession restores the persisted session slot, discarding it when the
// token no longer verifies.
func (svc *Service) loadSession() {
	var sess Session
	_ = svc.store.Load(sessionKey, &sess)
	if sess.Token == "" {
		return
	}
	if _, err := verifyToken(sess.Token, sess.User); err != nil {
		_ = svc.store.Delete(sessionKey)
		return
	}
	svc.session = &sess
}

// Register creates a new User. It does not establish a session; the caller
// must log in separately.
func (svc *Service) Register(nu NewUser) (User, error) {
	if err := nu.Validate(); err != nil {
		return User{}, err
	}

	var users []User
	if err := svc.store.Load(StoreKey, &users); err != nil {
		return User{}, err
	}
	for _, usr := range users {
		if usr.Email == nu.Email {
			return User{}, ErrEmailExists
		}
	}

	usr := User{
		ID:       uuid.New().String(),
		Name:     nu.Name,
		Email:    nu.Email,
		Password: nu.Password,
		Role:     nu.Role,
		Bio:      "",
	}
	users = append(users, usr)
	if err := svc.store.Save(StoreKey, users); err != nil {
		return User{}, err
	}
	svc.sendWelcomeEmail(usr)
	return usr, nil
}

// Login establishes the session on an exact email+password match.
func (svc *Service) Login(email, password string) (User, error) {
	email = core.CleanString(email, true /* lower */)
	if err := core.Validate.Var(email, "orgemail"); err != nil {
		return User{}, ErrAccessRestricted
	}

	var users []User
	if err := svc.store.Load(StoreKey, &users); err != nil {
		return User{}, err
	}
	for _, usr := range users {
		if usr.Email == email && usr.Password == password {
			token, err := makeToken(usr)
			if err != nil {
				return User{}, err
			}
			sess := Session{User: usr, Token: token}
			if err := svc.store.Save(sessionKey, sess); err != nil {
				return User{}, err
			}
			svc.session = &sess
			return usr, nil
		}
	}
	return User{}, ErrBadCredentials
}

// Logout clears the session slot; calling it with no active session is a no-op.
func (svc *Service) Logout() error {
	svc.session = nil
	return svc.store.Delete(sessionKey)
}

// Session returns the currently authenticated session, or nil.
func (svc *Service) Session() *Session {
	return svc.session
}

// UpdateProfile merges the provided fields into the User record. When the
// target is the session user, the session copy is refreshed as well.
func (svc *Service) UpdateProfile(id string, up UpdateProfile) (User, error) {
	if err := up.Validate(); err != nil {
		return User{}, err
	}

	var users []User
	if err := svc.store.Load(StoreKey, &users); err != nil {
		return User{}, err
	}
	for i, usr := range users {
		if usr.ID != id {
			continue
		}
		if up.Name != "" {
			usr.Name = up.Name
		}
		if up.Password != "" {
			usr.Password = up.Password
		}
		if up.Bio != nil {
			usr.Bio = *up.Bio
		}
		if up.Location != nil {
			usr.Location = *up.Location
		}
		if up.Website != nil {
			usr.Website = *up.Website
		}
		if up.Twitter != nil {
			usr.Twitter = *up.Twitter
		}
		users[i] = usr
		if err := svc.store.Save(StoreKey, users); err != nil {
			return User{}, err
		}
		if svc.session != nil && svc.session.User.ID == id {
			svc.session.User = usr
			if err := svc.store.Save(sessionKey, svc.session); err != nil {
				return User{}, err
			}
		}
		return usr, nil
	}
	return User{}, ErrNotFound
}

func (svc *Service) QueryAll() ([]User, error) {
	var users []User
	if err := svc.store.Load(StoreKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (svc *Service) GetByID(id string) (User, error) {
	users, err := svc.QueryAll()
	if err != nil {
		return User{}, err
	}
	for _, usr := range users {
		if usr.ID == id {
			return usr, nil
		}
	}
	return User{}, ErrNotFound
}

func (svc *Service) GetByEmail(email string) (User, error) {
	email = core.CleanString(email, true /* lower */)
	users, err := svc.QueryAll()
	if err != nil {
		return User{}, err
	}
	for _, usr := range users {
		if usr.Email == email {
			return usr, nil
		}
	}
	return User{}, ErrNotFound
}

func (svc *Service) sendWelcomeEmail(usr User) {
	if svc.mail == nil {
		return
	}
	svc.mail.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject: "Welcome to " + core.Conf.GetString("appName"),
		BodyStr: fmt.Sprintf("Hi %s,\n\nYour account has been created. Happy learning!", usr.Name),
	})
}
