package models

import "strings"

// User represents a marketplace account. A user owns places and authors
// reviews.
//
// PasswordHash holds the peppered bcrypt digest produced by the password
// hasher. It is never serialized; response-facing code must use
// [User.Response].
type User struct {
	Base

	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
}

// UserInput is the payload accepted when creating a user.
type UserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

// UserUpdate carries the fields a caller wants to change. Nil fields are left
// untouched.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	IsAdmin   *bool   `json:"is_admin,omitempty"`
}

// UserPatch is the storage-level partial update of a [User]. Unlike
// [UserUpdate] it carries an already hashed password.
type UserPatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
	IsAdmin      *bool
}

// UserResponse is the public projection of a [User]; it never contains
// credential material.
type UserResponse struct {
	Base

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// NewUser validates input and builds an unsaved user without credentials.
// A password is required; the caller is responsible for hashing it.
func NewUser(input UserInput) (*User, error) {
	user := &User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     NormalizeEmail(input.Email),
		IsAdmin:   input.IsAdmin,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, newValidationError("password", "is required")
	}

	return user, nil
}

// Validate checks every field invariant of the user.
func (u *User) Validate() error {
	if err := validateLength("first_name", u.FirstName, 1, 50); err != nil {
		return err
	}
	if err := validateLength("last_name", u.LastName, 1, 50); err != nil {
		return err
	}
	return validateEmail(u.Email)
}

// HasCredential reports whether a password hash is on file.
func (u *User) HasCredential() bool {
	return u.PasswordHash != ""
}

// Attribute returns the value of a queryable column.
func (u *User) Attribute(name string) (any, bool) {
	switch name {
	case "id":
		return u.ID, true
	case "email":
		return u.Email, true
	case "first_name":
		return u.FirstName, true
	case "last_name":
		return u.LastName, true
	case "is_admin":
		return u.IsAdmin, true
	}
	return nil, false
}

// Clone returns a deep copy.
func (u *User) Clone() *User {
	c := *u
	return &c
}

// Response builds the public projection.
func (u *User) Response() UserResponse {
	return UserResponse{
		Base:      u.Base,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
	}
}

// Apply merges the non-nil fields into user. Nothing is written when any
// changed field fails validation.
func (p UserPatch) Apply(user *User) error {
	next := *user

	if p.FirstName != nil {
		next.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		next.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.Email != nil {
		next.Email = NormalizeEmail(*p.Email)
	}
	if p.PasswordHash != nil {
		next.PasswordHash = *p.PasswordHash
	}
	if p.IsAdmin != nil {
		next.IsAdmin = *p.IsAdmin
	}

	if err := next.Validate(); err != nil {
		return err
	}

	*user = next
	return nil
}

// Validate checks the supplied fields only.
func (u UserUpdate) Validate() error {
	patch := UserPatch{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, IsAdmin: u.IsAdmin}
	probe := &User{FirstName: "x", LastName: "x", Email: "x@x.x"}
	if err := patch.Apply(probe); err != nil {
		return err
	}
	if u.Password != nil && *u.Password == "" {
		return newValidationError("password", "is required")
	}
	return nil
}

// NormalizedEmail returns the email in the form it is stored, or "" when the
// update does not touch it.
func (u UserUpdate) NormalizedEmail() string {
	if u.Email == nil {
		return ""
	}
	return NormalizeEmail(*u.Email)
}

// NormalizedEmail returns the email in the form it is stored.
func (u UserInput) NormalizedEmail() string {
	return NormalizeEmail(u.Email)
}
