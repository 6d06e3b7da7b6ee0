package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/kg-3rd/grand-adventure-hub/internal/cache"
	"github.com/kg-3rd/grand-adventure-hub/internal/config"
	"github.com/kg-3rd/grand-adventure-hub/internal/middleware"
	"github.com/kg-3rd/grand-adventure-hub/internal/models"
	"github.com/kg-3rd/grand-adventure-hub/internal/repository"
	"github.com/kg-3rd/grand-adventure-hub/internal/service"
	"github.com/kg-3rd/grand-adventure-hub/internal/storage"
)

type HandlerSet struct {
	log           zerolog.Logger
	cfg           *config.AppConfig
	authService   *service.AuthService
	mediaService  *service.MediaService
	reviewService *service.ReviewService
	db            *pgxpool.Pool
	cache         *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cacheClient *redis.Client, store storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	adminRepo := repository.NewAdminUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	versions := cache.NewOrderVersions(cacheClient)

	auth := service.NewAuthService(adminRepo, cfg, log)
	media := service.NewMediaService(store, versions, log)
	reviews := service.NewReviewService(reviewRepo, log)

	return HandlerSet{
		log:           log,
		cfg:           cfg,
		authService:   auth,
		mediaService:  media,
		reviewService: reviews,
		db:            db,
		cache:         cacheClient,
	}
}

// MediaService exposes the media service for the background scheduler.
func (h HandlerSet) MediaService() *service.MediaService {
	return h.mediaService
}

// AuthService exposes the auth service for startup bootstrap.
func (h HandlerSet) AuthService() *service.AuthService {
	return h.authService
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	{
		v1.POST("/auth/login", h.Login)

		public := v1.Group("/public")
		public.GET("/media", h.PublicMedia)
		public.GET("/reviews", h.PublicReviews)
		public.POST("/reviews", h.SubmitReview)

		media := v1.Group("/media")
		media.Use(
			middleware.Auth(h.cfg),
			middleware.RequireRoles(models.RoleAdmin),
		)
		media.GET("", h.ListMedia)
		media.POST("", h.MutateMedia)
		media.DELETE("", h.DeleteMedia)

		reviews := v1.Group("/reviews")
		reviews.Use(
			middleware.Auth(h.cfg),
			middleware.RequireRoles(models.RoleAdmin),
		)
		reviews.GET("", h.PendingReviews)
		reviews.POST("", h.ModerateReview)
	}
}

// knownBucket guards public reads so arbitrary bucket names cannot be probed.
func (h HandlerSet) knownBucket(bucket string) bool {
	for _, b := range h.cfg.Storage.Buckets() {
		if b == bucket {
			return true
		}
	}
	return false
}
