package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateArticleRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

type UpdateArticleRequest struct {
	Title   Field[string] `json:"title"`
	Content Field[string] `json:"content"`
}

// Response DTOs

type ArticleResponse struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	CreatedBy *uuid.UUID    `json:"created_by"`
	Author    *UserResponse `json:"author,omitempty"`
}
