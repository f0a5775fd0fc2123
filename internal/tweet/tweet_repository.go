package tweet

import (
	"context"

	"viztube/internal/domain"
)

//go:generate mockgen -source=tweet_repository.go -destination=mock_repository_test.go -package=tweet

type TweetRepository interface {
	UserExists(ctx context.Context, id string) (bool, error)
	CreateTweet(ctx context.Context, t domain.Tweet) (domain.Tweet, error)
	// newest first, with owner summary and like counts
	ListTweetsByUser(ctx context.Context, userID string) ([]domain.TweetRow, error)
	FindTweetByID(ctx context.Context, id string) (domain.Tweet, error)
	UpdateTweet(ctx context.Context, id, ownerID, content string) (domain.Tweet, error)
	DeleteTweet(ctx context.Context, id, ownerID string) error
}
