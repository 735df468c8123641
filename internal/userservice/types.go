package userservice

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/AslanEminovi/codex-blogsite/internal/common"
)

// Role is serialized as an integer, 0 for User and 1 for Admin.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleAdmin:
		return "Admin"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

func ParseRole(s string) (Role, error) {
	switch s {
	case "User":
		return RoleUser, nil
	case "Admin":
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

// Principal is the identity a request acts as. A nil *Principal and
// AnonymousPrincipal both mean an anonymous caller.
type Principal struct {
	UserID int
	Role   Role
}

var AnonymousPrincipal = &Principal{}

func (p *Principal) IsAnonymous() bool {
	return p == nil || p == AnonymousPrincipal || p.UserID == 0
}

func (p *Principal) IsAdmin() bool {
	return !p.IsAnonymous() && p.Role == RoleAdmin
}

type UserService struct {
	m      *UserModel
	tokens *TokenManager
	events *common.EventPublisher
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  Password  `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

// AuthResponse is returned by both registration and login.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	UserID   int    `json:"userId"`
}
