// Package di assembles the API for either persistence backend with
// google/wire. Both sets build the same handlers; they differ in the store
// behind the repository ports and in the id space handlers accept.
package di

import (
	"context"
	"time"

	"github.com/google/wire"
	"gorm.io/gorm"

	"viztube/internal/comment"
	"viztube/internal/common"
	"viztube/internal/config"
	"viztube/internal/dashboard"
	"viztube/internal/dbmongo"
	"viztube/internal/dbmysql"
	"viztube/internal/healthcheck"
	"viztube/internal/like"
	"viztube/internal/logging"
	"viztube/internal/media"
	"viztube/internal/playlist"
	"viztube/internal/query"
	"viztube/internal/subscription"
	"viztube/internal/tweet"
	"viztube/internal/user"
	"viztube/internal/video"
)

// API is everything the router mounts. Media is nil unless the document
// backend is configured, since GridFS is the only media store.
type API struct {
	Backend       BackendName
	Auth          *common.Authenticator
	Health        *healthcheck.Handler
	Users         *user.Handler
	Videos        *video.Handler
	Comments      *comment.Handler
	Tweets        *tweet.Handler
	Likes         *like.Handler
	Subscriptions *subscription.Handler
	Playlists     *playlist.Handler
	Dashboard     *dashboard.Handler
	Media         *media.HTTPServer
}

var handlerSet = wire.NewSet(
	ProvideTokenManager,
	ProvideResponder,
	ProvideHealthcheck,
	ProvideBackendName,
	common.NewAuthenticator,
	user.NewUserService, user.NewHandler,
	video.NewVideoService, video.NewHandler,
	comment.NewCommentService, comment.NewHandler,
	tweet.NewTweetService, tweet.NewHandler,
	like.NewLikeService, like.NewHandler,
	subscription.NewSubscriptionService, subscription.NewHandler,
	playlist.NewPlaylistService, playlist.NewHandler,
	dashboard.NewDashboardService, dashboard.NewHandler,
)

// MySQLSet binds every repository port to the gorm store.
var MySQLSet = wire.NewSet(
	ProvideGormDB,
	dbmysql.NewStore,
	wire.InterfaceValue(new(query.IDNormalizer), query.NumericIDs{}),
	wire.Bind(new(user.UserRepository), new(*dbmysql.Store)),
	wire.Bind(new(video.VideoRepository), new(*dbmysql.Store)),
	wire.Bind(new(comment.CommentRepository), new(*dbmysql.Store)),
	wire.Bind(new(tweet.TweetRepository), new(*dbmysql.Store)),
	wire.Bind(new(like.LikeRepository), new(*dbmysql.Store)),
	wire.Bind(new(subscription.SubscriptionRepository), new(*dbmysql.Store)),
	wire.Bind(new(playlist.PlaylistRepository), new(*dbmysql.Store)),
	wire.Bind(new(dashboard.DashboardRepository), new(*dbmysql.Store)),
	wire.Bind(new(healthcheck.Pinger), new(*dbmysql.Store)),
	handlerSet,
	wire.Struct(new(API), "Backend", "Auth", "Health", "Users", "Videos", "Comments",
		"Tweets", "Likes", "Subscriptions", "Playlists", "Dashboard"),
)

// MongoSet binds every repository port to the document store and adds the
// GridFS media routes.
var MongoSet = wire.NewSet(
	ProvideMongoClient,
	dbmongo.NewStore,
	dbmongo.NewMediaStorage,
	media.NewHTTPServer,
	wire.FieldsOf(new(*config.Config), "Media"),
	wire.InterfaceValue(new(query.IDNormalizer), query.ObjectIDs{}),
	wire.Bind(new(media.FileStore), new(*dbmongo.MediaStorage)),
	wire.Bind(new(user.UserRepository), new(*dbmongo.Store)),
	wire.Bind(new(video.VideoRepository), new(*dbmongo.Store)),
	wire.Bind(new(comment.CommentRepository), new(*dbmongo.Store)),
	wire.Bind(new(tweet.TweetRepository), new(*dbmongo.Store)),
	wire.Bind(new(like.LikeRepository), new(*dbmongo.Store)),
	wire.Bind(new(subscription.SubscriptionRepository), new(*dbmongo.Store)),
	wire.Bind(new(playlist.PlaylistRepository), new(*dbmongo.Store)),
	wire.Bind(new(dashboard.DashboardRepository), new(*dbmongo.Store)),
	wire.Bind(new(healthcheck.Pinger), new(*dbmongo.Store)),
	handlerSet,
	wire.Struct(new(API), "*"),
)

// BackendName is the configured store name, reported by the healthcheck.
type BackendName string

func ProvideBackendName(cfg *config.Config) BackendName {
	return BackendName(cfg.Store.Backend)
}

func ProvideTokenManager(cfg *config.Config) *common.TokenManager {
	return common.NewTokenManager(
		cfg.Auth.AccessTokenSecret,
		cfg.Auth.RefreshTokenSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)
}

func ProvideResponder(cfg *config.Config) *common.Responder {
	return common.NewResponder(cfg.Server.IsDevelopment())
}

func ProvideHealthcheck(store healthcheck.Pinger, backend BackendName, rs *common.Responder) *healthcheck.Handler {
	return healthcheck.NewHandler(store, string(backend), rs)
}

// ProvideGormDB opens and migrates MySQL. The cleanup closes the pool.
func ProvideGormDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			logging.Error().Err(err).Msg("closing MySQL pool")
		}
	}
	return db, cleanup, nil
}

// ProvideMongoClient connects, pings and ensures indexes. The cleanup
// disconnects the client.
func ProvideMongoClient(cfg *config.Config) (*dbmongo.MongoClient, func(), error) {
	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mc.Close(ctx); err != nil {
			logging.Error().Err(err).Msg("closing MongoDB client")
		}
	}
	return mc, cleanup, nil
}
