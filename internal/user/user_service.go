package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"viztube/internal/common"
	"viztube/internal/domain"
	"viztube/internal/logging"
	"viztube/internal/query"
)

type RegisterInput struct {
	Fullname   string `json:"fullname" validate:"nonblank,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Username   string `json:"username" validate:"nonblank"`
	Password   string `json:"password" validate:"required,min=6,max=100"`
	Avatar     string `json:"avatar" validate:"nonblank"`
	CoverImage string `json:"coverImage"`
}

type LoginInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=100"`
}

type UpdateAccountInput struct {
	Fullname string `json:"fullname" validate:"nonblank,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

// AuthResult is what login and refresh hand back to the handler, which
// sets the tokens as cookies and echoes them in the body.
type AuthResult struct {
	User         domain.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

type UserService struct {
	repo   UserRepository
	tokens *common.TokenManager
}

func NewUserService(repo UserRepository, tokens *common.TokenManager) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	username := common.NormalizeUsername(in.Username)
	if err := common.ValidateUsername(username); err != nil {
		return domain.User{}, common.Validation(err.Error())
	}
	email := common.NormalizeEmail(in.Email)

	_, err := s.repo.FindUserByLogin(ctx, username, email)
	switch {
	case err == nil:
		return domain.User{}, common.Conflict("User with email or username already exists")
	case !errors.Is(err, domain.ErrNotFound):
		return domain.User{}, common.Internal(err)
	}

	hashed, err := common.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, common.AsAppError(err)
	}

	rec, err := s.repo.CreateUser(ctx, domain.UserRecord{
		Username:     username,
		Email:        email,
		Fullname:     strings.TrimSpace(in.Fullname),
		Avatar:       strings.TrimSpace(in.Avatar),
		CoverImage:   strings.TrimSpace(in.CoverImage),
		PasswordHash: hashed,
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.User{}, common.Conflict("User with email or username already exists")
	}
	if err != nil {
		return domain.User{}, common.Internal(err)
	}

	logging.Ctx(ctx).Info().Str("user_id", rec.ID).Msg("user registered")
	return query.PublicUser(rec), nil
}

func (s *UserService) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	username := common.NormalizeUsername(in.Username)
	email := common.NormalizeEmail(in.Email)
	if username == "" && email == "" {
		return AuthResult{}, common.Validation("username or email is required")
	}

	rec, err := s.repo.FindUserByLogin(ctx, username, email)
	if errors.Is(err, domain.ErrNotFound) {
		return AuthResult{}, common.NotFound("User does not exist")
	}
	if err != nil {
		return AuthResult{}, common.Internal(err)
	}

	if !common.PasswordMatches(in.Password, rec.PasswordHash) {
		return AuthResult{}, common.Unauthorized("Invalid user credentials")
	}

	return s.issueTokens(ctx, rec)
}

func (s *UserService) Logout(ctx context.Context, userID string) error {
	empty := ""
	_, err := s.repo.UpdateUser(ctx, userID, domain.UserPatch{RefreshToken: &empty})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return common.Internal(err)
	}
	return nil
}

// Refresh rotates both tokens. A refresh token is single use: once rotated,
// the stored token no longer matches.
func (s *UserService) Refresh(ctx context.Context, incoming string) (AuthResult, error) {
	if incoming == "" {
		return AuthResult{}, common.Unauthorized("Unauthorized request")
	}
	claims, err := s.tokens.ValidateRefreshToken(incoming)
	if err != nil {
		return AuthResult{}, common.Unauthorized("Invalid refresh token").WithCause(err)
	}

	rec, err := s.repo.FindUserByID(ctx, claims.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return AuthResult{}, common.Unauthorized("Invalid refresh token")
	}
	if err != nil {
		return AuthResult{}, common.Internal(err)
	}
	if rec.RefreshToken != incoming {
		return AuthResult{}, common.Unauthorized("Refresh token is expired or used")
	}

	return s.issueTokens(ctx, rec)
}

func (s *UserService) issueTokens(ctx context.Context, rec domain.UserRecord) (AuthResult, error) {
	access, err := s.tokens.GenerateAccessToken(rec.ID, rec.Username, rec.Email)
	if err != nil {
		return AuthResult{}, common.Internal(err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(rec.ID)
	if err != nil {
		return AuthResult{}, common.Internal(err)
	}

	rec, err = s.repo.UpdateUser(ctx, rec.ID, domain.UserPatch{RefreshToken: &refresh})
	if err != nil {
		return AuthResult{}, common.Internal(fmt.Errorf("store refresh token: %w", err))
	}
	return AuthResult{User: query.PublicUser(rec), AccessToken: access, RefreshToken: refresh}, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID string, in ChangePasswordInput) error {
	rec, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if !common.PasswordMatches(in.OldPassword, rec.PasswordHash) {
		return common.Validation("Invalid old password")
	}
	hashed, err := common.HashPassword(in.NewPassword)
	if err != nil {
		return common.AsAppError(err)
	}
	if _, err := s.repo.UpdateUser(ctx, userID, domain.UserPatch{PasswordHash: &hashed}); err != nil {
		return common.Internal(err)
	}
	return nil
}

func (s *UserService) CurrentUser(ctx context.Context, userID string) (domain.User, error) {
	rec, err := s.load(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	return query.PublicUser(rec), nil
}

func (s *UserService) UpdateAccount(ctx context.Context, userID string, in UpdateAccountInput) (domain.User, error) {
	fullname := strings.TrimSpace(in.Fullname)
	email := common.NormalizeEmail(in.Email)
	return s.update(ctx, userID, domain.UserPatch{Fullname: &fullname, Email: &email})
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID, url string) (domain.User, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return domain.User{}, common.Validation("Avatar file is missing")
	}
	return s.update(ctx, userID, domain.UserPatch{Avatar: &url})
}

func (s *UserService) UpdateCoverImage(ctx context.Context, userID, url string) (domain.User, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return domain.User{}, common.Validation("Cover image file is missing")
	}
	return s.update(ctx, userID, domain.UserPatch{CoverImage: &url})
}

func (s *UserService) update(ctx context.Context, userID string, patch domain.UserPatch) (domain.User, error) {
	rec, err := s.repo.UpdateUser(ctx, userID, patch)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.User{}, common.NotFound("User not found")
	case errors.Is(err, domain.ErrDuplicate):
		return domain.User{}, common.Conflict("Email is already in use")
	case err != nil:
		return domain.User{}, common.Internal(err)
	}
	return query.PublicUser(rec), nil
}

// ChannelProfile looks the channel up by username. isSubscribed is only
// computed for an authenticated viewer.
func (s *UserService) ChannelProfile(ctx context.Context, rawUsername string, viewer *common.Viewer) (domain.ChannelProfile, error) {
	username := common.NormalizeUsername(rawUsername)
	if username == "" {
		return domain.ChannelProfile{}, common.Validation("username is missing")
	}

	row, err := s.repo.FindChannel(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ChannelProfile{}, common.NotFound("Channel does not exist")
	}
	if err != nil {
		return domain.ChannelProfile{}, common.Internal(err)
	}

	subscribed := false
	if viewer != nil {
		subscribed, err = s.repo.IsSubscribed(ctx, viewer.ID, row.User.ID)
		if err != nil {
			return domain.ChannelProfile{}, common.Internal(err)
		}
	}
	return query.ComposeChannelProfile(row, subscribed), nil
}

// WatchHistory returns an empty list, not a 404, for a user with no history.
func (s *UserService) WatchHistory(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	rows, err := s.repo.WatchHistory(ctx, userID)
	if err != nil {
		return nil, common.Internal(err)
	}
	return query.ComposeHistory(rows), nil
}

func (s *UserService) load(ctx context.Context, userID string) (domain.UserRecord, error) {
	rec, err := s.repo.FindUserByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.UserRecord{}, common.NotFound("User not found")
	}
	if err != nil {
		return domain.UserRecord{}, common.Internal(err)
	}
	return rec, nil
}
