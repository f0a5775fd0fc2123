package dbmysql

import (
	"context"

	"gorm.io/gorm"

	"viztube/internal/domain"
	"viztube/internal/query"
)

// ---- comments ----

func (s *Store) ListComments(ctx context.Context, videoID string, page query.PageRequest) (query.Page[domain.Comment], error) {
	n := parseID(videoID)

	var total int64
	if err := s.db.WithContext(ctx).Model(&Comment{}).Where("video_id = ?", n).Count(&total).Error; err != nil {
		return query.Page[domain.Comment]{}, err
	}

	var comments []Comment
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Where("video_id = ?", n).
		Order("id DESC").
		Scopes(pageScope(page)).
		Find(&comments).Error
	if err != nil {
		return query.Page[domain.Comment]{}, err
	}

	docs := make([]domain.Comment, 0, len(comments))
	for _, c := range comments {
		docs = append(docs, c.toDomain())
	}
	return query.NewPage(docs, total, page), nil
}

func (s *Store) CreateComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	m := Comment{VideoID: parseID(c.VideoID), OwnerID: parseID(c.OwnerID), Content: c.Content}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Comment{}, translate(err)
	}
	if err := s.db.WithContext(ctx).Preload("Owner").First(&m, m.ID).Error; err != nil {
		return domain.Comment{}, translate(err)
	}
	return m.toDomain(), nil
}

func (s *Store) FindCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	var m Comment
	if err := s.db.WithContext(ctx).Where("id = ?", parseID(id)).First(&m).Error; err != nil {
		return domain.Comment{}, translate(err)
	}
	return m.toDomain(), nil
}

func (s *Store) UpdateComment(ctx context.Context, id, ownerID, content string) (domain.Comment, error) {
	n, owner := parseID(id), parseID(ownerID)
	err := s.db.WithContext(ctx).Model(&Comment{}).
		Where("id = ? AND owner_id = ?", n, owner).
		Update("content", content).Error
	if err != nil {
		return domain.Comment{}, err
	}
	var m Comment
	if err := s.db.WithContext(ctx).Where("id = ? AND owner_id = ?", n, owner).First(&m).Error; err != nil {
		return domain.Comment{}, translate(err)
	}
	return m.toDomain(), nil
}

func (s *Store) DeleteComment(ctx context.Context, id, ownerID string) error {
	n := parseID(id)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND owner_id = ?", n, parseID(ownerID)).Delete(&Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Where("target_kind = ? AND target_id = ?", string(domain.LikeComment), n).Delete(&Like{}).Error
	})
}

// ---- tweets ----

func (s *Store) CreateTweet(ctx context.Context, t domain.Tweet) (domain.Tweet, error) {
	m := Tweet{OwnerID: parseID(t.OwnerID), Content: t.Content}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Tweet{}, translate(err)
	}
	return m.toDomain(), nil
}

func (s *Store) ListTweetsByUser(ctx context.Context, userID string) ([]domain.TweetRow, error) {
	var tweets []Tweet
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", parseID(userID)).
		Order("id DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(tweets))
	for _, t := range tweets {
		ids = append(ids, t.ID)
	}
	likes, err := s.countLikes(ctx, domain.LikeTweet, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TweetRow, 0, len(tweets))
	for _, t := range tweets {
		rows = append(rows, domain.TweetRow{
			Tweet:  t.toDomain(),
			Counts: domain.CountBag{domain.CountLikes: likes[t.ID]},
		})
	}
	return rows, nil
}

func (s *Store) FindTweetByID(ctx context.Context, id string) (domain.Tweet, error) {
	var m Tweet
	if err := s.db.WithContext(ctx).Where("id = ?", parseID(id)).First(&m).Error; err != nil {
		return domain.Tweet{}, translate(err)
	}
	return m.toDomain(), nil
}

func (s *Store) UpdateTweet(ctx context.Context, id, ownerID, content string) (domain.Tweet, error) {
	n, owner := parseID(id), parseID(ownerID)
	err := s.db.WithContext(ctx).Model(&Tweet{}).
		Where("id = ? AND owner_id = ?", n, owner).
		Update("content", content).Error
	if err != nil {
		return domain.Tweet{}, err
	}
	var m Tweet
	if err := s.db.WithContext(ctx).Where("id = ? AND owner_id = ?", n, owner).First(&m).Error; err != nil {
		return domain.Tweet{}, translate(err)
	}
	return m.toDomain(), nil
}

func (s *Store) DeleteTweet(ctx context.Context, id, ownerID string) error {
	n := parseID(id)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND owner_id = ?", n, parseID(ownerID)).Delete(&Tweet{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Where("target_kind = ? AND target_id = ?", string(domain.LikeTweet), n).Delete(&Like{}).Error
	})
}

// ---- likes ----

func (s *Store) LikeTargetExists(ctx context.Context, t domain.LikeTarget) (bool, error) {
	switch t.Kind {
	case domain.LikeVideo:
		return s.exists(ctx, &Video{}, t.ID)
	case domain.LikeComment:
		return s.exists(ctx, &Comment{}, t.ID)
	case domain.LikeTweet:
		return s.exists(ctx, &Tweet{}, t.ID)
	}
	return false, nil
}

func (s *Store) DeleteLike(ctx context.Context, userID string, t domain.LikeTarget) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", parseID(userID), string(t.Kind), parseID(t.ID)).
		Delete(&Like{})
	return res.RowsAffected > 0, res.Error
}

func (s *Store) CreateLike(ctx context.Context, userID string, t domain.LikeTarget) error {
	like := Like{UserID: parseID(userID), TargetKind: string(t.Kind), TargetID: parseID(t.ID)}
	return translate(s.db.WithContext(ctx).Create(&like).Error)
}

// LikedVideos returns the liked videos, most recent like first.
func (s *Store) LikedVideos(ctx context.Context, userID string) ([]domain.Video, error) {
	var videos []Video
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Joins("JOIN likes ON likes.target_id = videos.id AND likes.target_kind = ?", string(domain.LikeVideo)).
		Where("likes.user_id = ?", parseID(userID)).
		Order("likes.id DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Video, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.toDomain())
	}
	return out, nil
}

// ---- subscriptions ----

func (s *Store) DeleteSubscription(ctx context.Context, subscriberID, channelID string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", parseID(subscriberID), parseID(channelID)).
		Delete(&Subscription{})
	return res.RowsAffected > 0, res.Error
}

func (s *Store) CreateSubscription(ctx context.Context, subscriberID, channelID string) error {
	sub := Subscription{SubscriberID: parseID(subscriberID), ChannelID: parseID(channelID)}
	return translate(s.db.WithContext(ctx).Create(&sub).Error)
}

type channelSummaryRow struct {
	ID               uint64
	Username         string
	Fullname         string
	Avatar           string
	SubscribersCount int64
}

// listChannels joins subscriptions to users on joinColumn and keeps rows
// whose filterColumn equals id.
func (s *Store) listChannels(ctx context.Context, joinColumn, filterColumn string, id uint64) ([]domain.ChannelRow, error) {
	var rows []channelSummaryRow
	err := s.db.WithContext(ctx).
		Table("subscriptions").
		Select("users.id, users.username, users.fullname, users.avatar, "+
			"(SELECT COUNT(*) FROM subscriptions s2 WHERE s2.channel_id = users.id) AS subscribers_count").
		Joins("JOIN users ON users.id = subscriptions."+joinColumn).
		Where("subscriptions."+filterColumn+" = ?", id).
		Order("subscriptions.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ChannelRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ChannelRow{
			Channel: domain.OwnerSummary{ID: formatID(r.ID), Username: r.Username, Fullname: r.Fullname, Avatar: r.Avatar},
			Counts:  domain.CountBag{domain.CountSubscribers: r.SubscribersCount},
		})
	}
	return out, nil
}

func (s *Store) ListSubscribers(ctx context.Context, channelID string) ([]domain.ChannelRow, error) {
	return s.listChannels(ctx, "subscriber_id", "channel_id", parseID(channelID))
}

func (s *Store) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.ChannelRow, error) {
	return s.listChannels(ctx, "channel_id", "subscriber_id", parseID(subscriberID))
}
