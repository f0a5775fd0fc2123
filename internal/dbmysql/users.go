package dbmysql

import (
	"context"

	"viztube/internal/domain"
)

func (s *Store) CreateUser(ctx context.Context, rec domain.UserRecord) (domain.UserRecord, error) {
	u := userFromRecord(rec)
	u.ID = 0
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return domain.UserRecord{}, translate(err)
	}
	return u.record(), nil
}

func (s *Store) FindUserByID(ctx context.Context, id string) (domain.UserRecord, error) {
	n := parseID(id)
	if n == 0 {
		return domain.UserRecord{}, domain.ErrNotFound
	}
	var u User
	if err := s.db.WithContext(ctx).First(&u, n).Error; err != nil {
		return domain.UserRecord{}, translate(err)
	}
	return u.record(), nil
}

// FindUserByLogin matches either identifier; an empty one is ignored.
func (s *Store) FindUserByLogin(ctx context.Context, username, email string) (domain.UserRecord, error) {
	tx := s.db.WithContext(ctx)
	switch {
	case username != "" && email != "":
		tx = tx.Where("username = ? OR email = ?", username, email)
	case username != "":
		tx = tx.Where("username = ?", username)
	case email != "":
		tx = tx.Where("email = ?", email)
	default:
		return domain.UserRecord{}, domain.ErrNotFound
	}
	var u User
	if err := tx.First(&u).Error; err != nil {
		return domain.UserRecord{}, translate(err)
	}
	return u.record(), nil
}

func (s *Store) UserExists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, &User{}, id)
}

type channelRow struct {
	User               `gorm:"embedded"`
	SubscribersCount   int64
	SubscriptionsCount int64
}

// FindChannel loads a user with both subscription counts in one query.
func (s *Store) FindChannel(ctx context.Context, username string) (domain.UserRow, error) {
	var row channelRow
	err := s.db.WithContext(ctx).Model(&User{}).
		Select("users.*, " +
			"(SELECT COUNT(*) FROM subscriptions WHERE subscriptions.channel_id = users.id) AS subscribers_count, " +
			"(SELECT COUNT(*) FROM subscriptions WHERE subscriptions.subscriber_id = users.id) AS subscriptions_count").
		Where("users.username = ?", username).
		Take(&row).Error
	if err != nil {
		return domain.UserRow{}, translate(err)
	}
	return domain.UserRow{
		User: row.User.record(),
		Counts: domain.CountBag{
			domain.CountSubscribers:   row.SubscribersCount,
			domain.CountSubscriptions: row.SubscriptionsCount,
		},
	}, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, p domain.UserPatch) (domain.UserRecord, error) {
	n := parseID(id)
	if n == 0 {
		return domain.UserRecord{}, domain.ErrNotFound
	}

	updates := map[string]interface{}{}
	set := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	set("fullname", p.Fullname)
	set("email", p.Email)
	set("username", p.Username)
	set("avatar", p.Avatar)
	set("cover_image", p.CoverImage)
	set("password_hash", p.PasswordHash)
	set("refresh_token", p.RefreshToken)

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&User{ID: n}).Updates(updates).Error; err != nil {
			return domain.UserRecord{}, translate(err)
		}
	}
	return s.FindUserByID(ctx, id)
}

func (s *Store) IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", parseID(subscriberID), parseID(channelID)).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) WatchHistory(ctx context.Context, userID string) ([]domain.HistoryRow, error) {
	var entries []WatchHistory
	err := s.db.WithContext(ctx).
		Preload("Video.Owner").
		Where("user_id = ?", parseID(userID)).
		Order("watched_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	rows := make([]domain.HistoryRow, 0, len(entries))
	for _, e := range entries {
		if e.Video == nil {
			continue
		}
		rows = append(rows, domain.HistoryRow{Video: e.Video.toDomain(), WatchedAt: e.WatchedAt})
	}
	return rows, nil
}
