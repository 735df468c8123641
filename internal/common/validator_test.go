package common

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()
	v.Check(false, "title", "must be provided")
	v.Check(false, "title", "must not be more than 200 characters long")
	v.Check(true, "content", "must be provided")

	assert.False(t, v.Valid())
	assert.Equal(t, ValidationError{Errors: map[string]string{"title": "must be provided"}}, v.ValidationError())
}

func TestCheckStringLength(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		min   int
		max   int
		want  bool
	}{
		{name: "within bounds", input: "hello", min: 1, max: 5, want: true},
		{name: "too long", input: "hello!", min: 1, max: 5, want: false},
		{name: "too short", input: "", min: 1, max: 5, want: false},
		{name: "multibyte counts characters", input: "héllo", min: 1, max: 5, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewValidator()
			assert.Equal(t, tc.want, v.CheckStringLength(tc.input, tc.min, tc.max))
		})
	}
}

func TestConstraintViolations(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "users_email_key"}
	fk := &pq.Error{Code: "23503", Constraint: "blogs_user_id_fkey"}

	assert.True(t, UniqueViolation(unique, "users_email_key"))
	assert.False(t, UniqueViolation(unique, "users_username_key"))
	assert.True(t, ForeignKeyViolation(fk, "blogs_user_id_fkey"))
	assert.False(t, ForeignKeyViolation(unique, "users_email_key"))
	assert.False(t, UniqueViolation(errors.New("boom"), "users_email_key"))
}
