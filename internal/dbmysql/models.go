package dbmysql

import (
	"strconv"
	"time"

	"viztube/internal/domain"
)

type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;uniqueIndex;size:50;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255;not null"`
	Fullname     string    `gorm:"column:fullname;size:120;not null"`
	Avatar       string    `gorm:"column:avatar;size:500"`
	CoverImage   string    `gorm:"column:cover_image;size:500"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	RefreshToken string    `gorm:"column:refresh_token;size:1024"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// IsPublished carries no default tag: gorm would replace an explicit false
// with the column default on insert.
type Video struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement"`
	OwnerID           uint64    `gorm:"column:owner_id;not null;index"`
	Title             string    `gorm:"column:title;size:200;not null"`
	Description       string    `gorm:"column:description;type:text"`
	VideoURL          string    `gorm:"column:video_url;size:500;not null"`
	VideoPublicID     string    `gorm:"column:video_public_id;size:255"`
	ThumbnailURL      string    `gorm:"column:thumbnail_url;size:500;not null"`
	ThumbnailPublicID string    `gorm:"column:thumbnail_public_id;size:255"`
	Duration          float64   `gorm:"column:duration;not null"`
	Views             int64     `gorm:"column:views;not null;index"`
	IsPublished       bool      `gorm:"column:is_published;not null;index"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Owner *User `gorm:"foreignKey:OwnerID"`
}

type Comment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	VideoID   uint64    `gorm:"column:video_id;not null;index"`
	OwnerID   uint64    `gorm:"column:owner_id;not null;index"`
	Content   string    `gorm:"column:content;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Owner *User `gorm:"foreignKey:OwnerID"`
}

type Tweet struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	OwnerID   uint64    `gorm:"column:owner_id;not null;index"`
	Content   string    `gorm:"column:content;size:500;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Owner *User `gorm:"foreignKey:OwnerID"`
}

// Like points at a video, comment or tweet. One row per (user, target).
type Like struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	UserID     uint64    `gorm:"column:user_id;not null;index:idx_like_user_target,unique"`
	TargetKind string    `gorm:"column:target_kind;size:10;not null;index:idx_like_user_target,unique;index:idx_like_target"`
	TargetID   uint64    `gorm:"column:target_id;not null;index:idx_like_user_target,unique;index:idx_like_target"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

type Subscription struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	SubscriberID uint64    `gorm:"column:subscriber_id;not null;index:idx_subscriber_channel,unique"`
	ChannelID    uint64    `gorm:"column:channel_id;not null;index:idx_subscriber_channel,unique;index"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

type Playlist struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	OwnerID     uint64    `gorm:"column:owner_id;not null;index"`
	Name        string    `gorm:"column:name;size:120;not null"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Owner *User `gorm:"foreignKey:OwnerID"`
}

// PlaylistVideo keeps insertion order through its id.
type PlaylistVideo struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	PlaylistID uint64    `gorm:"column:playlist_id;not null;index:idx_playlist_video,unique"`
	VideoID    uint64    `gorm:"column:video_id;not null;index:idx_playlist_video,unique;index"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

type WatchHistory struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_history_user_video,unique"`
	VideoID   uint64    `gorm:"column:video_id;not null;index:idx_history_user_video,unique;index"`
	WatchedAt time.Time `gorm:"column:watched_at;not null"`

	Video *Video `gorm:"foreignKey:VideoID"`
}

func (WatchHistory) TableName() string {
	return "watch_history"
}

// ids are uint64 keys in MySQL and canonical decimal strings everywhere else.
// A string that does not parse maps to 0, which never matches a row.
func parseID(id string) uint64 {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func formatID(n uint64) string {
	return strconv.FormatUint(n, 10)
}

func userFromRecord(rec domain.UserRecord) User {
	return User{
		ID:           parseID(rec.ID),
		Username:     rec.Username,
		Email:        rec.Email,
		Fullname:     rec.Fullname,
		Avatar:       rec.Avatar,
		CoverImage:   rec.CoverImage,
		PasswordHash: rec.PasswordHash,
		RefreshToken: rec.RefreshToken,
	}
}

func (u User) record() domain.UserRecord {
	return domain.UserRecord{
		ID:           formatID(u.ID),
		Username:     u.Username,
		Email:        u.Email,
		Fullname:     u.Fullname,
		Avatar:       u.Avatar,
		CoverImage:   u.CoverImage,
		PasswordHash: u.PasswordHash,
		RefreshToken: u.RefreshToken,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func ownerSummary(u *User) *domain.OwnerSummary {
	if u == nil {
		return nil
	}
	return &domain.OwnerSummary{
		ID:       formatID(u.ID),
		Username: u.Username,
		Fullname: u.Fullname,
		Avatar:   u.Avatar,
	}
}

func videoFromDomain(v domain.Video) Video {
	return Video{
		OwnerID:           parseID(v.OwnerID),
		Title:             v.Title,
		Description:       v.Description,
		VideoURL:          v.VideoFile.URL,
		VideoPublicID:     v.VideoFile.PublicID,
		ThumbnailURL:      v.Thumbnail.URL,
		ThumbnailPublicID: v.Thumbnail.PublicID,
		Duration:          v.Duration,
		Views:             v.Views,
		IsPublished:       v.IsPublished,
	}
}

func (v Video) toDomain() domain.Video {
	return domain.Video{
		ID:          formatID(v.ID),
		Title:       v.Title,
		Description: v.Description,
		OwnerID:     formatID(v.OwnerID),
		Owner:       ownerSummary(v.Owner),
		VideoFile:   domain.Media{URL: v.VideoURL, PublicID: v.VideoPublicID},
		Thumbnail:   domain.Media{URL: v.ThumbnailURL, PublicID: v.ThumbnailPublicID},
		Duration:    v.Duration,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (c Comment) toDomain() domain.Comment {
	return domain.Comment{
		ID:        formatID(c.ID),
		Content:   c.Content,
		VideoID:   formatID(c.VideoID),
		OwnerID:   formatID(c.OwnerID),
		Owner:     ownerSummary(c.Owner),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (t Tweet) toDomain() domain.Tweet {
	return domain.Tweet{
		ID:        formatID(t.ID),
		Content:   t.Content,
		OwnerID:   formatID(t.OwnerID),
		Owner:     ownerSummary(t.Owner),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (p Playlist) toDomain() domain.Playlist {
	return domain.Playlist{
		ID:          formatID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     formatID(p.OwnerID),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
