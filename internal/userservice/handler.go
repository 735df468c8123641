package userservice

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/AslanEminovi/codex-blogsite/internal/common"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

func NewUserService(db *sql.DB, tokens *TokenManager, events *common.EventPublisher) *UserService {
	return &UserService{
		m:      newUserModel(db),
		tokens: tokens,
		events: events,
	}
}

// Register creates a regular user account and returns a signed token for it.
// The email is checked for duplicates before the username.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	exists, err := s.m.emailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	exists, err = s.m.usernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateUsername
	}

	u := User{
		Username: username,
		Email:    email,
		Role:     RoleUser,
	}

	err = u.Password.set(password)
	if err != nil {
		return nil, err
	}

	// the unique indexes still reject a concurrent registration that passed the checks above
	err = s.m.insert(ctx, &u)
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, common.Event{Type: common.UserRegisteredKey, ActorID: u.ID, UserID: u.ID})

	return s.authResponse(&u)
}

// Login verifies the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	v := common.NewValidator()
	validateLogin(v, email, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u, err := s.m.getByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
			return nil, ErrInvalidCredentials
		default:
			return nil, err
		}
	}

	ok, err := u.Password.compare(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(u)
}

// Authenticate resolves a bearer token to the principal it was issued for.
func (s *UserService) Authenticate(token string) (*Principal, error) {
	return s.tokens.Parse(token)
}

// EnsureAdmin creates an admin account with the given credentials unless an
// admin already exists. The returned bool reports whether an account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, username, email, password string) (*User, bool, error) {
	exists, err := s.m.adminExists(ctx)
	if err != nil {
		return nil, false, err
	}
	if exists {
		return nil, false, nil
	}

	v := common.NewValidator()
	validateUsername(v, username)
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, false, v.ValidationError()
	}

	u := User{
		Username: username,
		Email:    email,
		Role:     RoleAdmin,
	}

	err = u.Password.set(password)
	if err != nil {
		return nil, false, err
	}

	err = s.m.insert(ctx, &u)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrDuplicateUsername) {
			// another instance may have seeded the admin in the meantime
			exists, existsErr := s.m.adminExists(ctx)
			if existsErr == nil && exists {
				return nil, false, nil
			}
		}
		return nil, false, err
	}

	s.events.Publish(ctx, common.Event{Type: common.UserRegisteredKey, ActorID: u.ID, UserID: u.ID})

	return &u, true, nil
}

func (s *UserService) authResponse(u *User) (*AuthResponse, error) {
	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token:    token,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		UserID:   u.ID,
	}, nil
}
