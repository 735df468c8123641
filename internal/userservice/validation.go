package userservice

import (
	"regexp"

	"github.com/AslanEminovi/codex-blogsite/internal/common"
)

var (
	EmailRX    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	UsernameRX = regexp.MustCompile("^[a-zA-Z0-9_]+$")
)

func validateUsername(v *common.Validator, username string) {
	v.Check(username != "", "username", "must be provided")
	v.Check(v.CheckStringLength(username, 3, 50), "username", "must be between 3 and 50 characters long")
	v.Check(UsernameRX.MatchString(username), "username", "must only contain letters, numbers, and underscores")
}

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(v.CheckStringLength(email, 0, 255), "email", "must not be more than 255 characters long")
	v.Check(EmailRX.MatchString(email), "email", "must be a valid email address")
}

// validatePassword caps the length at 72 bytes, the most bcrypt will hash.
func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
	v.Check(len(password) >= 6 && len(password) <= 72, "password", "must be between 6 and 72 characters long")
}

func validateLogin(v *common.Validator, email, password string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(password != "", "password", "must be provided")
}
