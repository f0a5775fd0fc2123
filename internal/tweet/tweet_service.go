package tweet

import (
	"context"
	"errors"
	"strings"

	"viztube/internal/common"
	"viztube/internal/domain"
	"viztube/internal/query"
)

type ContentInput struct {
	Content string `json:"content" validate:"nonblank,max=280"`
}

type TweetService struct {
	repo TweetRepository
	ids  query.IDNormalizer
}

func NewTweetService(repo TweetRepository, ids query.IDNormalizer) *TweetService {
	return &TweetService{repo: repo, ids: ids}
}

func (s *TweetService) CreateTweet(ctx context.Context, viewerID string, in ContentInput) (domain.Tweet, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return domain.Tweet{}, common.Validation("content is required")
	}
	t, err := s.repo.CreateTweet(ctx, domain.Tweet{Content: content, OwnerID: viewerID})
	if err != nil {
		return domain.Tweet{}, common.Internal(err)
	}
	return t, nil
}

// UserTweets lists a user's tweets newest first with their like counts.
func (s *TweetService) UserTweets(ctx context.Context, rawUserID string) ([]domain.Tweet, error) {
	userID, err := s.ids.Normalize("userId", rawUserID)
	if err != nil {
		return nil, err
	}
	ok, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, common.Internal(err)
	}
	if !ok {
		return nil, common.NotFound("User not found")
	}

	rows, err := s.repo.ListTweetsByUser(ctx, userID)
	if err != nil {
		return nil, common.Internal(err)
	}
	tweets := make([]domain.Tweet, 0, len(rows))
	for _, row := range rows {
		tweets = append(tweets, query.ComposeTweet(row))
	}
	return tweets, nil
}

func (s *TweetService) UpdateTweet(ctx context.Context, viewerID, rawID string, in ContentInput) (domain.Tweet, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return domain.Tweet{}, common.Validation("content is required")
	}
	id, err := s.owned(ctx, viewerID, rawID, "update")
	if err != nil {
		return domain.Tweet{}, err
	}
	t, err := s.repo.UpdateTweet(ctx, id, viewerID, content)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Tweet{}, common.NotFound("Tweet not found")
	}
	if err != nil {
		return domain.Tweet{}, common.Internal(err)
	}
	return t, nil
}

func (s *TweetService) DeleteTweet(ctx context.Context, viewerID, rawID string) error {
	id, err := s.owned(ctx, viewerID, rawID, "delete")
	if err != nil {
		return err
	}
	err = s.repo.DeleteTweet(ctx, id, viewerID)
	if errors.Is(err, domain.ErrNotFound) {
		return common.NotFound("Tweet not found")
	}
	if err != nil {
		return common.Internal(err)
	}
	return nil
}

func (s *TweetService) owned(ctx context.Context, viewerID, rawID, action string) (string, error) {
	id, err := s.ids.Normalize("tweetId", rawID)
	if err != nil {
		return "", err
	}
	t, err := s.repo.FindTweetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return "", common.NotFound("Tweet not found")
	}
	if err != nil {
		return "", common.Internal(err)
	}
	if t.OwnerID != viewerID {
		return "", common.Forbidden("You are not allowed to " + action + " this tweet")
	}
	return id, nil
}
