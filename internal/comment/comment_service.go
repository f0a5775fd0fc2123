package comment

import (
	"context"
	"errors"
	"strings"

	"viztube/internal/common"
	"viztube/internal/domain"
	"viztube/internal/query"
)

type ContentInput struct {
	Content string `json:"content" validate:"nonblank,max=2000"`
}

type CommentService struct {
	repo CommentRepository
	ids  query.IDNormalizer
}

func NewCommentService(repo CommentRepository, ids query.IDNormalizer) *CommentService {
	return &CommentService{repo: repo, ids: ids}
}

func (s *CommentService) ListComments(ctx context.Context, rawVideoID, rawPage, rawLimit string) (query.Page[domain.Comment], error) {
	videoID, err := s.ids.Normalize("videoId", rawVideoID)
	if err != nil {
		return query.Page[domain.Comment]{}, err
	}
	page, err := query.ParsePageRequest(rawPage, rawLimit)
	if err != nil {
		return query.Page[domain.Comment]{}, err
	}
	if err := s.requireVideo(ctx, videoID); err != nil {
		return query.Page[domain.Comment]{}, err
	}

	comments, err := s.repo.ListComments(ctx, videoID, page)
	if err != nil {
		return query.Page[domain.Comment]{}, common.Internal(err)
	}
	return comments, nil
}

func (s *CommentService) AddComment(ctx context.Context, viewerID, rawVideoID string, in ContentInput) (domain.Comment, error) {
	videoID, err := s.ids.Normalize("videoId", rawVideoID)
	if err != nil {
		return domain.Comment{}, err
	}
	content, err := cleanContent(in.Content)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := s.requireVideo(ctx, videoID); err != nil {
		return domain.Comment{}, err
	}

	c, err := s.repo.CreateComment(ctx, domain.Comment{Content: content, VideoID: videoID, OwnerID: viewerID})
	if err != nil {
		return domain.Comment{}, common.Internal(err)
	}
	return c, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, viewerID, rawID string, in ContentInput) (domain.Comment, error) {
	content, err := cleanContent(in.Content)
	if err != nil {
		return domain.Comment{}, err
	}
	id, err := s.owned(ctx, viewerID, rawID, "update")
	if err != nil {
		return domain.Comment{}, err
	}

	c, err := s.repo.UpdateComment(ctx, id, viewerID, content)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Comment{}, common.NotFound("Comment not found")
	}
	if err != nil {
		return domain.Comment{}, common.Internal(err)
	}
	return c, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, viewerID, rawID string) error {
	id, err := s.owned(ctx, viewerID, rawID, "delete")
	if err != nil {
		return err
	}
	err = s.repo.DeleteComment(ctx, id, viewerID)
	if errors.Is(err, domain.ErrNotFound) {
		return common.NotFound("Comment not found")
	}
	if err != nil {
		return common.Internal(err)
	}
	return nil
}

func (s *CommentService) owned(ctx context.Context, viewerID, rawID, action string) (string, error) {
	id, err := s.ids.Normalize("commentId", rawID)
	if err != nil {
		return "", err
	}
	c, err := s.repo.FindCommentByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return "", common.NotFound("Comment not found")
	}
	if err != nil {
		return "", common.Internal(err)
	}
	if c.OwnerID != viewerID {
		return "", common.Forbidden("You are not allowed to " + action + " this comment")
	}
	return id, nil
}

func (s *CommentService) requireVideo(ctx context.Context, videoID string) error {
	ok, err := s.repo.VideoExists(ctx, videoID)
	if err != nil {
		return common.Internal(err)
	}
	if !ok {
		return common.NotFound("Video not found")
	}
	return nil
}

func cleanContent(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", common.Validation("content is required")
	}
	return content, nil
}
