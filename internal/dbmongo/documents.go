package dbmongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"viztube/internal/domain"
)

const (
	colUsers         = "users"
	colVideos        = "videos"
	colComments      = "comments"
	colTweets        = "tweets"
	colLikes         = "likes"
	colSubscriptions = "subscriptions"
	colPlaylists     = "playlists"
	colHistory       = "watch_history"
)

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	Fullname     string             `bson:"fullname"`
	Avatar       string             `bson:"avatar"`
	CoverImage   string             `bson:"coverImage"`
	Password     string             `bson:"password"`
	RefreshToken string             `bson:"refreshToken"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

type mediaDoc struct {
	URL      string `bson:"url"`
	PublicID string `bson:"publicId"`
}

type videoDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	VideoFile   mediaDoc           `bson:"videoFile"`
	Thumbnail   mediaDoc           `bson:"thumbnail"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Duration    float64            `bson:"duration"`
	Views       int64              `bson:"views"`
	IsPublished bool               `bson:"isPublished"`
	Owner       primitive.ObjectID `bson:"owner"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// joinedVideo is a video after the owner $lookup and optional count stages.
// Embedded documents are named fields: the bson codec skips unexported
// anonymous fields.
type joinedVideo struct {
	Doc       videoDoc         `bson:",inline"`
	OwnerInfo []userDoc        `bson:"ownerInfo"`
	Count     map[string]int64 `bson:"_count"`
}

type commentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Video     primitive.ObjectID `bson:"video"`
	Owner     primitive.ObjectID `bson:"owner"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type joinedComment struct {
	Doc       commentDoc `bson:",inline"`
	OwnerInfo []userDoc  `bson:"ownerInfo"`
}

type tweetDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Owner     primitive.ObjectID `bson:"owner"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type joinedTweet struct {
	Doc       tweetDoc         `bson:",inline"`
	OwnerInfo []userDoc        `bson:"ownerInfo"`
	Count     map[string]int64 `bson:"_count"`
}

// likeDoc points at exactly one target; kind says which collection.
type likeDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	LikedBy   primitive.ObjectID `bson:"likedBy"`
	Kind      string             `bson:"kind"`
	Target    primitive.ObjectID `bson:"target"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type subscriptionDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `bson:"subscriber"`
	Channel    primitive.ObjectID `bson:"channel"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

type channelDoc struct {
	Doc   userDoc          `bson:",inline"`
	Count map[string]int64 `bson:"_count"`
}

// playlistDoc keeps members in insertion order.
type playlistDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Owner       primitive.ObjectID   `bson:"owner"`
	Videos      []primitive.ObjectID `bson:"videos"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

type playlistSummaryDoc struct {
	Doc        playlistDoc      `bson:",inline"`
	Count      map[string]int64 `bson:"_count"`
	FirstThumb *string          `bson:"firstThumb"`
}

type playlistDetailDoc struct {
	Doc       playlistDoc   `bson:",inline"`
	OwnerInfo []userDoc     `bson:"ownerInfo"`
	Members   []joinedVideo `bson:"members"`
}

type historyDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user"`
	Video     primitive.ObjectID `bson:"video"`
	WatchedAt time.Time          `bson:"watchedAt"`
}

// videoRefDoc is any row that points at one video: a history entry or a like.
type videoRefDoc struct {
	WatchedAt time.Time     `bson:"watchedAt"`
	VideoInfo []joinedVideo `bson:"videoInfo"`
}

// oid parses a canonical hex id. Callers normalize ids first, so a parse
// failure maps to the zero ObjectID, which never matches a document.
func oid(id string) primitive.ObjectID {
	o, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return o
}

func hex(o primitive.ObjectID) string {
	if o.IsZero() {
		return ""
	}
	return o.Hex()
}

func (u userDoc) record() domain.UserRecord {
	return domain.UserRecord{
		ID:           hex(u.ID),
		Username:     u.Username,
		Email:        u.Email,
		Fullname:     u.Fullname,
		Avatar:       u.Avatar,
		CoverImage:   u.CoverImage,
		PasswordHash: u.Password,
		RefreshToken: u.RefreshToken,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (u userDoc) summary() domain.OwnerSummary {
	return domain.OwnerSummary{ID: hex(u.ID), Username: u.Username, Fullname: u.Fullname, Avatar: u.Avatar}
}

// firstOwner unwraps a $lookup result array.
func firstOwner(users []userDoc) *domain.OwnerSummary {
	if len(users) == 0 {
		return nil
	}
	s := users[0].summary()
	return &s
}

func videoDocFrom(v domain.Video) videoDoc {
	return videoDoc{
		VideoFile:   mediaDoc{URL: v.VideoFile.URL, PublicID: v.VideoFile.PublicID},
		Thumbnail:   mediaDoc{URL: v.Thumbnail.URL, PublicID: v.Thumbnail.PublicID},
		Title:       v.Title,
		Description: v.Description,
		Duration:    v.Duration,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		Owner:       oid(v.OwnerID),
	}
}

func (v videoDoc) toDomain(owner *domain.OwnerSummary) domain.Video {
	return domain.Video{
		ID:          hex(v.ID),
		Title:       v.Title,
		Description: v.Description,
		OwnerID:     hex(v.Owner),
		Owner:       owner,
		VideoFile:   domain.Media{URL: v.VideoFile.URL, PublicID: v.VideoFile.PublicID},
		Thumbnail:   domain.Media{URL: v.Thumbnail.URL, PublicID: v.Thumbnail.PublicID},
		Duration:    v.Duration,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (v joinedVideo) row() domain.VideoRow {
	return domain.VideoRow{Video: v.Doc.toDomain(firstOwner(v.OwnerInfo)), Counts: domain.CountBag(v.Count)}
}

func (c commentDoc) toDomain(owner *domain.OwnerSummary) domain.Comment {
	return domain.Comment{
		ID:        hex(c.ID),
		Content:   c.Content,
		VideoID:   hex(c.Video),
		OwnerID:   hex(c.Owner),
		Owner:     owner,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (t tweetDoc) toDomain(owner *domain.OwnerSummary) domain.Tweet {
	return domain.Tweet{
		ID:        hex(t.ID),
		Content:   t.Content,
		OwnerID:   hex(t.Owner),
		Owner:     owner,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (p playlistDoc) toDomain() domain.Playlist {
	return domain.Playlist{
		ID:          hex(p.ID),
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     hex(p.Owner),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
