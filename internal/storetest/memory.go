// Package storetest provides an in-memory implementation of every repository
// port, with the same uniqueness, ordering and pagination behavior as the
// real stores. It issues numeric ids so query.NumericIDs accepts them.
package storetest

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"viztube/internal/domain"
	"viztube/internal/query"
)

type likeRow struct {
	userID string
	target domain.LikeTarget
	at     time.Time
}

type subRow struct {
	subscriberID string
	channelID    string
}

type historyKey struct {
	userID  string
	videoID string
}

type playlistRow struct {
	playlist domain.Playlist
	videos   []string
}

// MemoryStore is safe for concurrent use.
type MemoryStore struct {
	mu    sync.Mutex
	seq   uint64
	clock time.Time

	users     map[string]*domain.UserRecord
	videos    map[string]*domain.Video
	comments  map[string]*domain.Comment
	tweets    map[string]*domain.Tweet
	playlists map[string]*playlistRow
	likes     []likeRow
	subs      []subRow
	history   map[historyKey]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clock:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:     map[string]*domain.UserRecord{},
		videos:    map[string]*domain.Video{},
		comments:  map[string]*domain.Comment{},
		tweets:    map[string]*domain.Tweet{},
		playlists: map[string]*playlistRow{},
		history:   map[historyKey]time.Time{},
	}
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// nextID and tick must be called with mu held. Each write advances the clock
// by a millisecond so creation order is always observable.
func (s *MemoryStore) nextID() string {
	s.seq++
	return strconv.FormatUint(s.seq, 10)
}

func (s *MemoryStore) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

func (s *MemoryStore) owner(id string) *domain.OwnerSummary {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	o := query.OwnerOf(*u)
	return &o
}

func seqOf(id string) uint64 {
	n, _ := strconv.ParseUint(id, 10, 64)
	return n
}

// ---- users ----

func (s *MemoryStore) CreateUser(_ context.Context, rec domain.UserRecord) (domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == rec.Username || strings.EqualFold(u.Email, rec.Email) {
			return domain.UserRecord{}, domain.ErrDuplicate
		}
	}
	rec.ID = s.nextID()
	rec.CreatedAt = s.tick()
	rec.UpdatedAt = rec.CreatedAt
	cp := rec
	s.users[rec.ID] = &cp
	return rec, nil
}

func (s *MemoryStore) FindUserByID(_ context.Context, id string) (domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.UserRecord{}, domain.ErrNotFound
	}
	return *u, nil
}

func (s *MemoryStore) FindUserByLogin(_ context.Context, username, email string) (domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if (username != "" && u.Username == username) || (email != "" && strings.EqualFold(u.Email, email)) {
			return *u, nil
		}
	}
	return domain.UserRecord{}, domain.ErrNotFound
}

func (s *MemoryStore) UserExists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]
	return ok, nil
}

func (s *MemoryStore) FindChannel(_ context.Context, username string) (domain.UserRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return domain.UserRow{User: *u, Counts: s.userCounts(u.ID)}, nil
		}
	}
	return domain.UserRow{}, domain.ErrNotFound
}

func (s *MemoryStore) userCounts(id string) domain.CountBag {
	c := domain.CountBag{}
	for _, sub := range s.subs {
		if sub.channelID == id {
			c[domain.CountSubscribers]++
		}
		if sub.subscriberID == id {
			c[domain.CountSubscriptions]++
		}
	}
	return c
}

func (s *MemoryStore) UpdateUser(_ context.Context, id string, p domain.UserPatch) (domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.UserRecord{}, domain.ErrNotFound
	}
	for oid, other := range s.users {
		if oid == id {
			continue
		}
		if (p.Username != nil && other.Username == *p.Username) || (p.Email != nil && strings.EqualFold(other.Email, *p.Email)) {
			return domain.UserRecord{}, domain.ErrDuplicate
		}
	}
	apply := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	apply(&u.Fullname, p.Fullname)
	apply(&u.Email, p.Email)
	apply(&u.Username, p.Username)
	apply(&u.Avatar, p.Avatar)
	apply(&u.CoverImage, p.CoverImage)
	apply(&u.PasswordHash, p.PasswordHash)
	apply(&u.RefreshToken, p.RefreshToken)
	u.UpdatedAt = s.tick()
	return *u, nil
}

func (s *MemoryStore) IsSubscribed(_ context.Context, subscriberID, channelID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		if sub.subscriberID == subscriberID && sub.channelID == channelID {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) WatchHistory(_ context.Context, userID string) ([]domain.HistoryRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []domain.HistoryRow{}
	for k, at := range s.history {
		if k.userID != userID {
			continue
		}
		v, ok := s.videos[k.videoID]
		if !ok {
			continue
		}
		cp := *v
		cp.Owner = s.owner(v.OwnerID)
		rows = append(rows, domain.HistoryRow{Video: cp, WatchedAt: at})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].WatchedAt.After(rows[j].WatchedAt) })
	return rows, nil
}

// HistoryLen is a test hook: number of history rows of a user.
func (s *MemoryStore) HistoryLen(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.history {
		if k.userID == userID {
			n++
		}
	}
	return n
}

// ---- videos ----

func (s *MemoryStore) CreateVideo(_ context.Context, v domain.Video) (domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextID()
	v.CreatedAt = s.tick()
	v.UpdatedAt = v.CreatedAt
	v.Owner = nil
	cp := v
	s.videos[v.ID] = &cp
	return v, nil
}

func (s *MemoryStore) FindVideoByID(_ context.Context, id string) (domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok {
		return domain.Video{}, domain.ErrNotFound
	}
	cp := *v
	cp.Owner = s.owner(v.OwnerID)
	return cp, nil
}

func (s *MemoryStore) VideoExists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.videos[id]
	return ok, nil
}

func (s *MemoryStore) ListVideos(_ context.Context, q query.VideoQuery) (query.Page[domain.VideoRow], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []domain.VideoRow{}
	for _, v := range s.videos {
		if !q.Filter.Matches(*v) {
			continue
		}
		cp := *v
		cp.Owner = s.owner(v.OwnerID)
		row := domain.VideoRow{Video: cp}
		if q.WithLikeCounts {
			row.Counts = domain.CountBag{domain.CountLikes: s.countLikes(domain.LikeTarget{Kind: domain.LikeVideo, ID: v.ID})}
		}
		rows = append(rows, row)
	}
	sortVideos(rows, q.Sort)
	return query.Window(rows, q.Page), nil
}

func sortVideos(rows []domain.VideoRow, srt query.Sort) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Video, rows[j].Video
		var cmp int
		switch srt.Field {
		case query.SortViews:
			cmp = compareInt(a.Views, b.Views)
		case query.SortTitle:
			cmp = strings.Compare(a.Title, b.Title)
		case query.SortUpdatedAt:
			cmp = a.UpdatedAt.Compare(b.UpdatedAt)
		default:
			cmp = a.CreatedAt.Compare(b.CreatedAt)
		}
		if cmp == 0 {
			cmp = compareInt(int64(seqOf(a.ID)), int64(seqOf(b.ID)))
		}
		if srt.Ascending {
			return cmp < 0
		}
		return cmp > 0
	})
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (s *MemoryStore) IncrementViews(_ context.Context, id string) (domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok {
		return domain.Video{}, domain.ErrNotFound
	}
	v.Views++
	cp := *v
	cp.Owner = s.owner(v.OwnerID)
	return cp, nil
}

func (s *MemoryStore) RecordWatch(_ context.Context, userID, videoID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[historyKey{userID: userID, videoID: videoID}] = at
	return nil
}

func (s *MemoryStore) UpdateVideo(_ context.Context, id, ownerID string, p domain.VideoPatch) (domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok || v.OwnerID != ownerID {
		return domain.Video{}, domain.ErrNotFound
	}
	if p.Title != nil {
		v.Title = *p.Title
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.Thumbnail != nil {
		v.Thumbnail = *p.Thumbnail
	}
	if p.IsPublished != nil {
		v.IsPublished = *p.IsPublished
	}
	v.UpdatedAt = s.tick()
	return *v, nil
}

func (s *MemoryStore) DeleteVideo(_ context.Context, id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok || v.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(s.videos, id)
	for cid, c := range s.comments {
		if c.VideoID == id {
			delete(s.comments, cid)
		}
	}
	kept := s.likes[:0]
	for _, l := range s.likes {
		if !(l.target.Kind == domain.LikeVideo && l.target.ID == id) {
			kept = append(kept, l)
		}
	}
	s.likes = kept
	for k := range s.history {
		if k.videoID == id {
			delete(s.history, k)
		}
	}
	for _, p := range s.playlists {
		p.videos = without(p.videos, id)
	}
	return nil
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// ---- comments ----

func (s *MemoryStore) ListComments(_ context.Context, videoID string, page query.PageRequest) (query.Page[domain.Comment], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Comment{}
	for _, c := range s.comments {
		if c.VideoID == videoID {
			cp := *c
			cp.Owner = s.owner(c.OwnerID)
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return seqOf(out[i].ID) > seqOf(out[j].ID) })
	return query.Window(out, page), nil
}

func (s *MemoryStore) CreateComment(_ context.Context, c domain.Comment) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID()
	c.CreatedAt = s.tick()
	c.UpdatedAt = c.CreatedAt
	c.Owner = nil
	cp := c
	s.comments[c.ID] = &cp
	c.Owner = s.owner(c.OwnerID)
	return c, nil
}

func (s *MemoryStore) FindCommentByID(_ context.Context, id string) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return domain.Comment{}, domain.ErrNotFound
	}
	return *c, nil
}

func (s *MemoryStore) UpdateComment(_ context.Context, id, ownerID, content string) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok || c.OwnerID != ownerID {
		return domain.Comment{}, domain.ErrNotFound
	}
	c.Content = content
	c.UpdatedAt = s.tick()
	return *c, nil
}

func (s *MemoryStore) DeleteComment(_ context.Context, id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok || c.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(s.comments, id)
	s.dropLikes(domain.LikeTarget{Kind: domain.LikeComment, ID: id})
	return nil
}

// ---- tweets ----

func (s *MemoryStore) CreateTweet(_ context.Context, t domain.Tweet) (domain.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextID()
	t.CreatedAt = s.tick()
	t.UpdatedAt = t.CreatedAt
	t.Owner = nil
	cp := t
	s.tweets[t.ID] = &cp
	return t, nil
}

func (s *MemoryStore) ListTweetsByUser(_ context.Context, userID string) ([]domain.TweetRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []domain.TweetRow{}
	for _, t := range s.tweets {
		if t.OwnerID != userID {
			continue
		}
		cp := *t
		cp.Owner = s.owner(t.OwnerID)
		rows = append(rows, domain.TweetRow{
			Tweet:  cp,
			Counts: domain.CountBag{domain.CountLikes: s.countLikes(domain.LikeTarget{Kind: domain.LikeTweet, ID: t.ID})},
		})
	}
	sort.Slice(rows, func(i, j int) bool { return seqOf(rows[i].Tweet.ID) > seqOf(rows[j].Tweet.ID) })
	return rows, nil
}

func (s *MemoryStore) FindTweetByID(_ context.Context, id string) (domain.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tweets[id]
	if !ok {
		return domain.Tweet{}, domain.ErrNotFound
	}
	return *t, nil
}

func (s *MemoryStore) UpdateTweet(_ context.Context, id, ownerID, content string) (domain.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tweets[id]
	if !ok || t.OwnerID != ownerID {
		return domain.Tweet{}, domain.ErrNotFound
	}
	t.Content = content
	t.UpdatedAt = s.tick()
	return *t, nil
}

func (s *MemoryStore) DeleteTweet(_ context.Context, id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tweets[id]
	if !ok || t.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(s.tweets, id)
	s.dropLikes(domain.LikeTarget{Kind: domain.LikeTweet, ID: id})
	return nil
}

// ---- likes ----

func (s *MemoryStore) LikeTargetExists(_ context.Context, t domain.LikeTarget) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	switch t.Kind {
	case domain.LikeVideo:
		_, ok = s.videos[t.ID]
	case domain.LikeComment:
		_, ok = s.comments[t.ID]
	case domain.LikeTweet:
		_, ok = s.tweets[t.ID]
	}
	return ok, nil
}

func (s *MemoryStore) DeleteLike(_ context.Context, userID string, t domain.LikeTarget) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.likes {
		if l.userID == userID && l.target == t {
			s.likes = append(s.likes[:i], s.likes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) CreateLike(_ context.Context, userID string, t domain.LikeTarget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.likes {
		if l.userID == userID && l.target == t {
			return domain.ErrDuplicate
		}
	}
	s.likes = append(s.likes, likeRow{userID: userID, target: t, at: s.tick()})
	return nil
}

func (s *MemoryStore) LikedVideos(_ context.Context, userID string) ([]domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	type liked struct {
		v  domain.Video
		at time.Time
	}
	var all []liked
	for _, l := range s.likes {
		if l.userID != userID || l.target.Kind != domain.LikeVideo {
			continue
		}
		v, ok := s.videos[l.target.ID]
		if !ok {
			continue
		}
		cp := *v
		cp.Owner = s.owner(v.OwnerID)
		all = append(all, liked{v: cp, at: l.at})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].at.After(all[j].at) })
	out := make([]domain.Video, 0, len(all))
	for _, l := range all {
		out = append(out, l.v)
	}
	return out, nil
}

// LikeCount is a test hook.
func (s *MemoryStore) LikeCount(t domain.LikeTarget) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(s.countLikes(t))
}

func (s *MemoryStore) countLikes(t domain.LikeTarget) int64 {
	var n int64
	for _, l := range s.likes {
		if l.target == t {
			n++
		}
	}
	return n
}

func (s *MemoryStore) dropLikes(t domain.LikeTarget) {
	kept := s.likes[:0]
	for _, l := range s.likes {
		if l.target != t {
			kept = append(kept, l)
		}
	}
	s.likes = kept
}

// ---- subscriptions ----

func (s *MemoryStore) DeleteSubscription(_ context.Context, subscriberID, channelID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.subscriberID == subscriberID && sub.channelID == channelID {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) CreateSubscription(_ context.Context, subscriberID, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		if sub.subscriberID == subscriberID && sub.channelID == channelID {
			return domain.ErrDuplicate
		}
	}
	s.subs = append(s.subs, subRow{subscriberID: subscriberID, channelID: channelID})
	return nil
}

func (s *MemoryStore) ListSubscribers(_ context.Context, channelID string) ([]domain.ChannelRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []domain.ChannelRow{}
	for _, sub := range s.subs {
		if sub.channelID != channelID {
			continue
		}
		if o := s.owner(sub.subscriberID); o != nil {
			rows = append(rows, domain.ChannelRow{Channel: *o, Counts: s.userCounts(o.ID)})
		}
	}
	return rows, nil
}

func (s *MemoryStore) ListSubscribedChannels(_ context.Context, subscriberID string) ([]domain.ChannelRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []domain.ChannelRow{}
	for _, sub := range s.subs {
		if sub.subscriberID != subscriberID {
			continue
		}
		if o := s.owner(sub.channelID); o != nil {
			rows = append(rows, domain.ChannelRow{Channel: *o, Counts: s.userCounts(o.ID)})
		}
	}
	return rows, nil
}

// ---- playlists ----

func (s *MemoryStore) CreatePlaylist(_ context.Context, p domain.Playlist) (domain.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID()
	p.CreatedAt = s.tick()
	p.UpdatedAt = p.CreatedAt
	s.playlists[p.ID] = &playlistRow{playlist: p}
	return p, nil
}

func (s *MemoryStore) FindPlaylistByID(_ context.Context, id string) (domain.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok {
		return domain.Playlist{}, domain.ErrNotFound
	}
	return p.playlist, nil
}

func (s *MemoryStore) PlaylistDetail(_ context.Context, id string) (domain.PlaylistDetailRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok {
		return domain.PlaylistDetailRow{}, domain.ErrNotFound
	}
	row := domain.PlaylistDetailRow{Playlist: p.playlist, Videos: []domain.Video{}}
	if o := s.owner(p.playlist.OwnerID); o != nil {
		row.Owner = *o
	}
	for _, vid := range p.videos {
		v, ok := s.videos[vid]
		if !ok {
			continue
		}
		cp := *v
		cp.Owner = s.owner(v.OwnerID)
		row.Videos = append(row.Videos, cp)
	}
	return row, nil
}

func (s *MemoryStore) ListPlaylistsByUser(_ context.Context, userID string) ([]domain.PlaylistRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []domain.PlaylistRow{}
	for _, p := range s.playlists {
		if p.playlist.OwnerID != userID {
			continue
		}
		row := domain.PlaylistRow{Playlist: p.playlist, Counts: domain.CountBag{domain.CountVideos: int64(len(p.videos))}}
		if len(p.videos) > 0 {
			if v, ok := s.videos[p.videos[0]]; ok {
				thumb := v.Thumbnail.URL
				row.FirstThumb = &thumb
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return seqOf(rows[i].Playlist.ID) > seqOf(rows[j].Playlist.ID) })
	return rows, nil
}

func (s *MemoryStore) AddPlaylistVideo(_ context.Context, playlistID, videoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[playlistID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, v := range p.videos {
		if v == videoID {
			return domain.ErrDuplicate
		}
	}
	p.videos = append(p.videos, videoID)
	p.playlist.UpdatedAt = s.tick()
	return nil
}

func (s *MemoryStore) RemovePlaylistVideo(_ context.Context, playlistID, videoID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[playlistID]
	if !ok {
		return false, domain.ErrNotFound
	}
	before := len(p.videos)
	p.videos = without(p.videos, videoID)
	return len(p.videos) < before, nil
}

func (s *MemoryStore) UpdatePlaylist(_ context.Context, id, ownerID, name, description string) (domain.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok || p.playlist.OwnerID != ownerID {
		return domain.Playlist{}, domain.ErrNotFound
	}
	p.playlist.Name = name
	p.playlist.Description = description
	p.playlist.UpdatedAt = s.tick()
	return p.playlist, nil
}

func (s *MemoryStore) DeletePlaylist(_ context.Context, id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok || p.playlist.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(s.playlists, id)
	return nil
}

// ---- dashboard ----

func (s *MemoryStore) ChannelStats(_ context.Context, ownerID string) (domain.CountBag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := domain.CountBag{}
	for _, v := range s.videos {
		if v.OwnerID != ownerID {
			continue
		}
		c[domain.CountVideos]++
		c[domain.CountViews] += v.Views
		c[domain.CountLikes] += s.countLikes(domain.LikeTarget{Kind: domain.LikeVideo, ID: v.ID})
	}
	c[domain.CountSubscribers] = s.userCounts(ownerID).Get(domain.CountSubscribers)
	return c, nil
}
