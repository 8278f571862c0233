package router

import (
	"github.com/changhyeonkim/business-review/go-api-server/internal/auth"
	"github.com/changhyeonkim/business-review/go-api-server/internal/business"
	"github.com/changhyeonkim/business-review/go-api-server/internal/config"
	"github.com/changhyeonkim/business-review/go-api-server/internal/member"
	"github.com/changhyeonkim/business-review/go-api-server/internal/meta"
	"github.com/changhyeonkim/business-review/go-api-server/internal/review"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	memberRepository := member.NewMemberRepository()
	businessRepository := business.NewBusinessRepository()
	reviewRepository := review.NewReviewRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	authService := auth.NewAuthService(db.DB, memberRepository, tokenManager)
	memberService := member.NewMemberService(db.DB, memberRepository)
	businessService := business.NewBusinessService(db.DB, businessRepository)
	reviewService := review.NewReviewService(db.DB, reviewRepository, businessRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)
	businessHandler := business.NewBusinessHandler(businessService)
	reviewHandler := review.NewReviewHandler(reviewService)

	// Public routes
	api := router.Group("/api")
	{
		api.GET("/members", memberHandler.List)
		api.GET("/businesses", businessHandler.List)
		api.GET("/businesses/:id", businessHandler.Get)
	}

	authAPI := router.Group("/api/auth")
	{
		authAPI.POST("/register", authHandler.Register)
		authAPI.POST("/login", authHandler.Login)
	}

	// Authenticated routes
	me := router.Group("/api/auth")
	me.Use(middleware.JWT(cfg))
	{
		me.GET("/me", memberHandler.GetProfile)
	}

	reviewAPI := router.Group("/api/reviews")
	reviewAPI.Use(middleware.JWT(cfg))
	{
		reviewAPI.POST("", reviewHandler.Create)
		reviewAPI.PUT("/:id", reviewHandler.Update)
	}
}
