package query

import (
	"sort"

	"viztube/internal/domain"
)

// PublicUser drops credentials. Every user leaving a service goes through it.
func PublicUser(rec domain.UserRecord) domain.User {
	return domain.User{
		ID:         rec.ID,
		Username:   rec.Username,
		Email:      rec.Email,
		Fullname:   rec.Fullname,
		Avatar:     rec.Avatar,
		CoverImage: rec.CoverImage,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}

// OwnerOf is the owner summary of a stored user.
func OwnerOf(rec domain.UserRecord) domain.OwnerSummary {
	return domain.OwnerSummary{
		ID:       rec.ID,
		Username: rec.Username,
		Fullname: rec.Fullname,
		Avatar:   rec.Avatar,
	}
}

// ComposeChannelProfile flattens the subscriber counts of a channel.
func ComposeChannelProfile(row domain.UserRow, isSubscribed bool) domain.ChannelProfile {
	return domain.ChannelProfile{
		User:                      PublicUser(row.User),
		SubscriberCount:           row.Counts.Get(domain.CountSubscribers),
		ChannelsSubscribedToCount: row.Counts.Get(domain.CountSubscriptions),
		IsSubscribed:              isSubscribed,
	}
}

// ComposeChannelSummary flattens a subscribed channel's subscriber count.
func ComposeChannelSummary(row domain.ChannelRow) domain.ChannelSummary {
	return domain.ChannelSummary{
		OwnerSummary:     row.Channel,
		SubscribersCount: row.Counts.Get(domain.CountSubscribers),
	}
}

// ComposeVideo returns the public video. likesCount is only set when the
// read asked for it, so feeds that never count likes do not report zero.
func ComposeVideo(row domain.VideoRow, withLikes bool) domain.Video {
	v := row.Video
	v.LikesCount = nil
	if withLikes {
		n := row.Counts.Get(domain.CountLikes)
		v.LikesCount = &n
	}
	return v
}

// VideoComposer adapts ComposeVideo for MapPage.
func VideoComposer(withLikes bool) func(domain.VideoRow) domain.Video {
	return func(row domain.VideoRow) domain.Video { return ComposeVideo(row, withLikes) }
}

func ComposeTweet(row domain.TweetRow) domain.Tweet {
	t := row.Tweet
	t.LikesCount = row.Counts.Get(domain.CountLikes)
	return t
}

// ComposePlaylistSummary uses the first member's thumbnail as the cover.
func ComposePlaylistSummary(row domain.PlaylistRow) domain.PlaylistSummary {
	return domain.PlaylistSummary{
		Playlist:    row.Playlist,
		TotalVideos: row.Counts.Get(domain.CountVideos),
		Thumbnail:   row.FirstThumb,
	}
}

// ComposePlaylistDetail adds member count and the sum of member views.
func ComposePlaylistDetail(row domain.PlaylistDetailRow) domain.PlaylistDetail {
	videos := row.Videos
	if videos == nil {
		videos = []domain.Video{}
	}
	var views int64
	for _, v := range videos {
		views += v.Views
	}
	return domain.PlaylistDetail{
		Playlist:    row.Playlist,
		Owner:       row.Owner,
		Videos:      videos,
		TotalVideos: int64(len(videos)),
		TotalViews:  views,
	}
}

// ComposeHistory orders rows by most recent watch. An empty history is an
// empty, non-nil list.
func ComposeHistory(rows []domain.HistoryRow) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		v := r.Video
		v.LikesCount = nil
		out = append(out, domain.HistoryEntry{Video: v, WatchedAt: r.WatchedAt})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WatchedAt.After(out[j].WatchedAt)
	})
	return out
}

// ComposeStats flattens dashboard counts.
func ComposeStats(counts domain.CountBag) domain.ChannelStats {
	return domain.ChannelStats{
		TotalViews:       counts.Get(domain.CountViews),
		TotalSubscribers: counts.Get(domain.CountSubscribers),
		TotalVideos:      counts.Get(domain.CountVideos),
		TotalLikes:       counts.Get(domain.CountLikes),
	}
}
