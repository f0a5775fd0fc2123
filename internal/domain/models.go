// Package domain holds the store-independent shapes shared by both persistence
// backends and the HTTP layer. Record and Row types are what stores return;
// everything else is safe to serialize.
package domain

import "time"

// Names used inside a CountBag.
const (
	CountSubscribers   = "subscribers"
	CountSubscriptions = "subscriptions"
	CountLikes         = "likes"
	CountVideos        = "videos"
	CountViews         = "views"
)

// CountBag is the nested "_count" container a joined read produces. It never
// leaves the query layer; composers flatten it into named fields.
type CountBag map[string]int64

// Get returns the named count, zero when absent.
func (c CountBag) Get(name string) int64 {
	if c == nil {
		return 0
	}
	return c[name]
}

// OwnerSummary is the public subset of a user attached to other entities.
type OwnerSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Avatar   string `json:"avatar"`
}

// UserRecord is a user as stored, credentials included. It must be passed
// through query.PublicUser before it is written to a response.
type UserRecord struct {
	ID           string
	Username     string
	Email        string
	Fullname     string
	Avatar       string
	CoverImage   string
	PasswordHash string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// User is the public view of a user.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Fullname   string    `json:"fullname"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UserPatch lists the user columns a write may change; nil means untouched.
type UserPatch struct {
	Fullname     *string
	Email        *string
	Username     *string
	Avatar       *string
	CoverImage   *string
	PasswordHash *string
	RefreshToken *string
}

// UserRow is a user joined with its subscriber/subscription counts.
type UserRow struct {
	User   UserRecord
	Counts CountBag
}

// ChannelProfile is the public channel page.
type ChannelProfile struct {
	User
	SubscriberCount           int64 `json:"subscriberCount"`
	ChannelsSubscribedToCount int64 `json:"channelsSubscribedToCount"`
	IsSubscribed              bool  `json:"isSubscribed"`
}

// ChannelRow is a channel summary with its raw counts.
type ChannelRow struct {
	Channel OwnerSummary
	Counts  CountBag
}

// ChannelSummary is a subscribed-to channel as listed to the subscriber.
type ChannelSummary struct {
	OwnerSummary
	SubscribersCount int64 `json:"subscribersCount"`
}

// Media is an opaque locator handed to us by the media storage collaborator.
type Media struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId,omitempty"`
}

// Video is the public video shape. Owner is set on joined reads.
type Video struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	OwnerID     string        `json:"ownerId"`
	Owner       *OwnerSummary `json:"owner,omitempty"`
	VideoFile   Media         `json:"videoFile"`
	Thumbnail   Media         `json:"thumbnail"`
	Duration    float64       `json:"duration"`
	Views       int64         `json:"views"`
	IsPublished bool          `json:"isPublished"`
	LikesCount  *int64        `json:"likesCount,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// VideoRow is a video with the raw counts of a joined read.
type VideoRow struct {
	Video  Video
	Counts CountBag
}

// VideoPatch lists the mutable video fields; nil means untouched.
type VideoPatch struct {
	Title       *string
	Description *string
	Thumbnail   *Media
	IsPublished *bool
}

// HistoryRow is one watch-history row joined to its video and video owner.
type HistoryRow struct {
	Video     Video
	WatchedAt time.Time
}

// HistoryEntry is a watched video with the time it was last watched.
type HistoryEntry struct {
	Video
	WatchedAt time.Time `json:"watchedAt"`
}

// Comment is a comment on a video.
type Comment struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	VideoID   string        `json:"videoId"`
	OwnerID   string        `json:"ownerId"`
	Owner     *OwnerSummary `json:"owner,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Tweet is a short post by a user.
type Tweet struct {
	ID         string        `json:"id"`
	Content    string        `json:"content"`
	OwnerID    string        `json:"ownerId"`
	Owner      *OwnerSummary `json:"owner,omitempty"`
	LikesCount int64         `json:"likesCount"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// TweetRow is a tweet with its raw like count.
type TweetRow struct {
	Tweet  Tweet
	Counts CountBag
}

// LikeKind names the entity a like points at.
type LikeKind string

const (
	LikeVideo   LikeKind = "video"
	LikeComment LikeKind = "comment"
	LikeTweet   LikeKind = "tweet"
)

// LikeTarget is the single entity a like points at.
type LikeTarget struct {
	Kind LikeKind
	ID   string
}

// Playlist is playlist metadata without members.
type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistRow is a playlist with its member count and the thumbnail of its
// first member, if any.
type PlaylistRow struct {
	Playlist   Playlist
	Counts     CountBag
	FirstThumb *string
}

// PlaylistSummary is a playlist as listed on a user's page.
type PlaylistSummary struct {
	Playlist
	TotalVideos int64   `json:"totalVideos"`
	Thumbnail   *string `json:"thumbnail"`
}

// PlaylistDetailRow is a playlist joined to its owner and member videos.
type PlaylistDetailRow struct {
	Playlist Playlist
	Owner    OwnerSummary
	Videos   []Video
}

// PlaylistDetail is the full playlist page.
type PlaylistDetail struct {
	Playlist
	Owner       OwnerSummary `json:"owner"`
	Videos      []Video      `json:"videos"`
	TotalVideos int64        `json:"totalVideos"`
	TotalViews  int64        `json:"totalViews"`
}

// ChannelStats is the dashboard summary of a channel.
type ChannelStats struct {
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalVideos      int64 `json:"totalVideos"`
	TotalLikes       int64 `json:"totalLikes"`
}
