package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser(UserInput{FirstName: " Ada ", LastName: "Lovelace", Email: " ADA@Example.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
	assert.False(t, user.HasCredential())
}

func TestNewUser_Validation(t *testing.T) {
	valid := UserInput{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "pw"}

	tests := []struct {
		name   string
		mutate func(*UserInput)
		field  string
	}{
		{"blank first name", func(in *UserInput) { in.FirstName = "   " }, "first_name"},
		{"first name too long", func(in *UserInput) { in.FirstName = strings.Repeat("é", 51) }, "first_name"},
		{"missing last name", func(in *UserInput) { in.LastName = "" }, "last_name"},
		{"missing email", func(in *UserInput) { in.Email = "" }, "email"},
		{"email without domain", func(in *UserInput) { in.Email = "ada@" }, "email"},
		{"email with spaces", func(in *UserInput) { in.Email = "a da@example.com" }, "email"},
		{"missing password", func(in *UserInput) { in.Password = "" }, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			_, err := NewUser(input)

			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	_, err := NewUser(UserInput{FirstName: strings.Repeat("é", 50), LastName: "L", Email: "a@b.io", Password: "p"})
	assert.NoError(t, err, "length counts runes")
}

func TestUserPatch_Apply(t *testing.T) {
	user := &User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PasswordHash: "old"}

	hash := "new"
	require.NoError(t, UserPatch{Email: strPtr("  NEW@example.com"), PasswordHash: &hash}.Apply(user))
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "new", user.PasswordHash)
	assert.Equal(t, "Ada", user.FirstName)

	err := UserPatch{FirstName: strPtr("Augusta"), LastName: strPtr("")}.Apply(user)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Ada", user.FirstName, "rejected patch must not write anything")
}

func TestUserUpdate_Validate(t *testing.T) {
	assert.NoError(t, UserUpdate{}.Validate())
	assert.NoError(t, UserUpdate{Email: strPtr("x@y.zz"), Password: strPtr("pw")}.Validate())
	assert.ErrorIs(t, UserUpdate{Email: strPtr("nope")}.Validate(), ErrValidation)
	assert.ErrorIs(t, UserUpdate{Password: strPtr("")}.Validate(), ErrValidation)

	assert.Equal(t, "", UserUpdate{}.NormalizedEmail())
	assert.Equal(t, "a@b.io", UserUpdate{Email: strPtr(" A@B.io ")}.NormalizedEmail())
}

func TestUser_ResponseHidesHash(t *testing.T) {
	user := &User{Base: Base{ID: "u1"}, FirstName: "Ada", Email: "a@b.io", PasswordHash: "$2a$secret"}

	for _, v := range []any{user, user.Response()} {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "secret")
		assert.NotContains(t, string(data), "password")
		assert.Contains(t, string(data), `"id":"u1"`)
	}
}

func TestUser_CloneIsIndependent(t *testing.T) {
	user := &User{FirstName: "Ada"}
	clone := user.Clone()
	clone.FirstName = "Bob"
	assert.Equal(t, "Ada", user.FirstName)
}

func strPtr(s string) *string { return &s }
