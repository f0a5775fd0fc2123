package user

import (
	"context"

	"viztube/internal/domain"
)

//go:generate mockgen -source=user_repository.go -destination=mock_repository_test.go -package=user

// UserRepository is implemented by dbmysql.Store, dbmongo.Store and
// storetest.MemoryStore. Lookups return domain.ErrNotFound when nothing
// matches; writes that hit a unique index return domain.ErrDuplicate.
type UserRepository interface {
	CreateUser(ctx context.Context, rec domain.UserRecord) (domain.UserRecord, error)
	FindUserByID(ctx context.Context, id string) (domain.UserRecord, error)
	// matches either field; empty arguments are ignored
	FindUserByLogin(ctx context.Context, username, email string) (domain.UserRecord, error)
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (domain.UserRecord, error)

	// channel page: user joined with subscriber/subscription counts
	FindChannel(ctx context.Context, username string) (domain.UserRow, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error)
	WatchHistory(ctx context.Context, userID string) ([]domain.HistoryRow, error)
}
