package dbmongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"viztube/internal/domain"
	"viztube/internal/query"
)

// Pipeline builders are pure so they can be asserted without a server.

var sortFields = map[query.SortField]string{
	query.SortCreatedAt: "createdAt",
	query.SortUpdatedAt: "updatedAt",
	query.SortViews:     "views",
	query.SortTitle:     "title",
}

// videoMatch translates a VideoFilter. Text is quoted so user input is never
// a pattern.
func videoMatch(f query.VideoFilter) bson.D {
	m := bson.D{}
	if f.PublicOnly() {
		m = append(m, bson.E{Key: "isPublished", Value: true})
	}
	if f.OwnerID != "" {
		m = append(m, bson.E{Key: "owner", Value: oid(f.OwnerID)})
	}
	if f.Text != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Text), Options: "i"}
		m = append(m, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: re}},
			bson.D{{Key: "description", Value: re}},
		}})
	}
	return m
}

// videoSort orders by the resolved field with _id as a stable tiebreak.
func videoSort(s query.Sort) bson.D {
	field, ok := sortFields[s.Field]
	if !ok {
		field = "createdAt"
	}
	dir := s.Direction()
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}
}

func lookupOwner(localField string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: colUsers},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "ownerInfo"},
	}}}
}

// likeCount adds _count.likes for documents of the given kind.
func likeCount(kind domain.LikeKind) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colLikes},
			{Key: "let", Value: bson.D{{Key: "target", Value: "$_id"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{{Key: "$and", Value: bson.A{
					bson.D{{Key: "$eq", Value: bson.A{"$target", "$$target"}}},
					bson.D{{Key: "$eq", Value: bson.A{"$kind", string(kind)}}},
				}}}}}}},
				bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 1}}}},
			}},
			{Key: "as", Value: "likeDocs"},
		}}},
		{{Key: "$addFields", Value: bson.D{{Key: "_count." + domain.CountLikes, Value: bson.D{{Key: "$size", Value: "$likeDocs"}}}}}},
		{{Key: "$project", Value: bson.D{{Key: "likeDocs", Value: 0}}}},
	}
}

// facetPage runs the window and the count over one $match in a single round
// trip. docs holds the window; total holds at most one {n} document.
func facetPage(page query.PageRequest, sort bson.D, tail ...bson.D) bson.D {
	page = query.NewPageRequest(page.Page, page.Limit)
	docs := bson.A{
		bson.D{{Key: "$sort", Value: sort}},
		bson.D{{Key: "$skip", Value: page.Offset()}},
		bson.D{{Key: "$limit", Value: page.Limit}},
	}
	for _, stage := range tail {
		docs = append(docs, stage)
	}
	return bson.D{{Key: "$facet", Value: bson.D{
		{Key: "docs", Value: docs},
		{Key: "total", Value: bson.A{bson.D{{Key: "$count", Value: "n"}}}},
	}}}
}

type facetResult[T any] struct {
	Docs  []T `bson:"docs"`
	Total []struct {
		N int64 `bson:"n"`
	} `bson:"total"`
}

func (r facetResult[T]) total() int64 {
	if len(r.Total) == 0 {
		return 0
	}
	return r.Total[0].N
}

func videoListPipeline(q query.VideoQuery) mongo.Pipeline {
	tail := []bson.D{lookupOwner("owner")}
	if q.WithLikeCounts {
		tail = append(tail, likeCount(domain.LikeVideo)...)
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: videoMatch(q.Filter)}},
		facetPage(q.Page, videoSort(q.Sort), tail...),
	}
}

func videoByIDPipeline(id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$limit", Value: 1}},
		lookupOwner("owner"),
	}
}

// lookupVideo joins one video, with its owner, into videoInfo.
func lookupVideo(localField string, onlyPublished bool) bson.D {
	match := bson.D{{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", "$$video"}}}}}
	if onlyPublished {
		match = append(match, bson.E{Key: "isPublished", Value: true})
	}
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: colVideos},
		{Key: "let", Value: bson.D{{Key: "video", Value: "$" + localField}}},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$match", Value: match}},
			lookupOwner("owner"),
		}},
		{Key: "as", Value: "videoInfo"},
	}}}
}

func historyPipeline(user primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user", Value: user}}}},
		{{Key: "$sort", Value: bson.D{{Key: "watchedAt", Value: -1}, {Key: "_id", Value: -1}}}},
		lookupVideo("video", false),
	}
}

func likedVideosPipeline(user primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "likedBy", Value: user}, {Key: "kind", Value: string(domain.LikeVideo)}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		lookupVideo("target", false),
	}
}

// channelPipeline loads a user with both subscription counts.
func channelPipeline(username string) mongo.Pipeline {
	count := func(foreignField, as string) bson.D {
		return bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colSubscriptions},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: foreignField},
			{Key: "as", Value: as},
		}}}
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "username", Value: username}}}},
		{{Key: "$limit", Value: 1}},
		count("channel", "subscribers"),
		count("subscriber", "subscribedTo"),
		{{Key: "$addFields", Value: bson.D{
			{Key: "_count." + domain.CountSubscribers, Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "_count." + domain.CountSubscriptions, Value: bson.D{{Key: "$size", Value: "$subscribedTo"}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "subscribers", Value: 0}, {Key: "subscribedTo", Value: 0}}}},
	}
}

// channelListPipeline starts at subscriptions where matchField == id and
// projects the user named by userField with its subscriber count.
func channelListPipeline(matchField, userField string, id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: matchField, Value: id}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colUsers},
			{Key: "localField", Value: userField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colSubscriptions},
			{Key: "localField", Value: "user._id"},
			{Key: "foreignField", Value: "channel"},
			{Key: "as", Value: "channelSubs"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$user._id"},
			{Key: "username", Value: "$user.username"},
			{Key: "fullname", Value: "$user.fullname"},
			{Key: "avatar", Value: "$user.avatar"},
			{Key: "_count." + domain.CountSubscribers, Value: bson.D{{Key: "$size", Value: "$channelSubs"}}},
		}}},
	}
}

func commentListPipeline(video primitive.ObjectID, page query.PageRequest) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "video", Value: video}}}},
		facetPage(page, bson.D{{Key: "_id", Value: -1}}, lookupOwner("owner")),
	}
}

func tweetListPipeline(owner primitive.ObjectID) mongo.Pipeline {
	p := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		lookupOwner("owner"),
	}
	return append(p, likeCount(domain.LikeTweet)...)
}

// playlistListPipeline counts members and picks the first member's thumbnail.
func playlistListPipeline(owner primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "_count." + domain.CountVideos, Value: bson.D{{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$videos", bson.A{}}}}}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colVideos},
			{Key: "let", Value: bson.D{{Key: "first", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$videos", 0}}}}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", "$$first"}}}}}}},
				bson.D{{Key: "$project", Value: bson.D{{Key: "thumbnail.url", Value: 1}}}},
			}},
			{Key: "as", Value: "firstVideo"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "firstThumb", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$firstVideo.thumbnail.url", 0}}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "firstVideo", Value: 0}}}},
	}
}

// playlistDetailPipeline joins every member in playlist order.
func playlistDetailPipeline(id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$limit", Value: 1}},
		lookupOwner("owner"),
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colVideos},
			{Key: "let", Value: bson.D{{Key: "ids", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$videos", bson.A{}}}}}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{{Key: "$in", Value: bson.A{"$_id", "$$ids"}}}},
				}}},
				bson.D{{Key: "$addFields", Value: bson.D{{Key: "position", Value: bson.D{{Key: "$indexOfArray", Value: bson.A{"$$ids", "$_id"}}}}}}},
				bson.D{{Key: "$sort", Value: bson.D{{Key: "position", Value: 1}}}},
				lookupOwner("owner"),
			}},
			{Key: "as", Value: "members"},
		}}},
	}
}

// channelStatsPipeline sums the owner's videos, views and video likes.
func channelStatsPipeline(owner primitive.ObjectID) mongo.Pipeline {
	p := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
	}
	p = append(p, likeCount(domain.LikeVideo)...)
	return append(p, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: domain.CountVideos, Value: bson.D{{Key: "$sum", Value: 1}}},
		{Key: domain.CountViews, Value: bson.D{{Key: "$sum", Value: "$views"}}},
		{Key: domain.CountLikes, Value: bson.D{{Key: "$sum", Value: "$_count." + domain.CountLikes}}},
	}}})
}
