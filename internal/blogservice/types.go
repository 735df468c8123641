package blogservice

import (
	"database/sql"
	"time"

	"github.com/AslanEminovi/codex-blogsite/internal/common"
)

type Blog struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	// Content is stored in Markdown format.
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BlogView is a blog joined with its author's username and personalized for the caller.
type BlogView struct {
	Blog
	Username    string `json:"username"`
	IsFavorited bool   `json:"isFavorited"`
}

// BlogInput carries the three fields an author can set.
type BlogInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Summary string `json:"summary"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m      *BlogModel
	events *common.EventPublisher
}
