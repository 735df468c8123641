package adminservice

import (
	"database/sql"
	"time"

	"github.com/AslanEminovi/codex-blogsite/internal/blogservice"
	"github.com/AslanEminovi/codex-blogsite/internal/common"
	"github.com/AslanEminovi/codex-blogsite/internal/userservice"
)

// UserView is a user as the admin panel lists it.
type UserView struct {
	ID        int              `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Role      userservice.Role `json:"role"`
	CreatedAt time.Time        `json:"createdAt"`
	BlogCount int              `json:"blogCount"`
}

type TopUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	BlogCount int    `json:"blogCount"`
}

type Stats struct {
	TotalUsers  int       `json:"totalUsers"`
	TotalBlogs  int       `json:"totalBlogs"`
	TotalAdmins int       `json:"totalAdmins"`
	RecentBlogs int       `json:"recentBlogs"`
	TopUsers    []TopUser `json:"topUsers"`
}

type AdminModel struct {
	db *sql.DB
}

type AdminService struct {
	m      *AdminModel
	blogs  *blogservice.BlogService
	events *common.EventPublisher
}
