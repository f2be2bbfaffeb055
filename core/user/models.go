package user

import (
	"github.com/trezcool/learnhub/core"
)

// Roles
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

var AllRoles = []string{RoleStudent, RoleAdmin}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // stored as provided; exact match on login
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// NewUser contains information needed to register a new User.
type NewUser struct {
	Name     string `json:"name" validate:"required,alphaspace"`
	Email    string `json:"email" validate:"required,email,orgemail"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=student admin"`
}

func (nu *NewUser) Validate() error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	if nu.Role == "" {
		nu.Role = RoleStudent
	}
	return core.TranslateValidationErrors(core.Validate.Struct(nu))
}

// UpdateProfile defines what information may be provided to modify an existing
// User. Omitted fields are retained: empty Name/Password mean "keep", nil
// pointers mean "keep" (their targets may legitimately be set to "").
type UpdateProfile struct {
	Name     string  `json:"name" validate:"omitempty,alphaspace"`
	Password string  `json:"password"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
	Website  *string `json:"website"`
	Twitter  *string `json:"twitter"`
}

func (up *UpdateProfile) Validate() error {
	up.Name = core.CleanString(up.Name)
	return core.TranslateValidationErrors(core.Validate.Struct(up))
}

// Session is the single currently authenticated identity plus its token,
// persisted so it survives process restarts.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
