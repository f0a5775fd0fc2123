package comment

import (
	"context"

	"viztube/internal/domain"
	"viztube/internal/query"
)

//go:generate mockgen -source=comment_repository.go -destination=mock_repository_test.go -package=comment

type CommentRepository interface {
	VideoExists(ctx context.Context, id string) (bool, error)
	// newest first, each with its owner summary
	ListComments(ctx context.Context, videoID string, page query.PageRequest) (query.Page[domain.Comment], error)
	CreateComment(ctx context.Context, c domain.Comment) (domain.Comment, error)
	FindCommentByID(ctx context.Context, id string) (domain.Comment, error)
	UpdateComment(ctx context.Context, id, ownerID, content string) (domain.Comment, error)
	DeleteComment(ctx context.Context, id, ownerID string) error
}
