package routes

import (
	"net/http"

	"affiliate-hub/config"
	"affiliate-hub/controllers"
	"affiliate-hub/middleware"
	"affiliate-hub/repositories"
	"affiliate-hub/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const robotsTxt = `User-agent: *
Disallow: /admin/
Disallow: /auth/
`

func SetupRoutes(router *gin.Engine, cfg *config.Config, db *pgxpool.Pool, cache *redis.Client, logger *zap.Logger) {
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	userRepo := repositories.NewUserRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	socialRepo := repositories.NewSocialRepository(db)
	adRepo := repositories.NewAdvertisementRepository(db)
	affiliateRepo := repositories.NewAffiliateRepository(db)
	adsenseRepo := repositories.NewAdsenseRepository(db)
	syncRepo := repositories.NewSyncRepository(db)

	authCtrl := controllers.NewAuthController(
		services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry))
	dashboardCtrl := controllers.NewDashboardController(
		productRepo, categoryRepo, articleRepo, testimonialRepo, messageRepo, affiliateRepo, syncRepo)
	productCtrl := controllers.NewProductController(productRepo, categoryRepo, cache)
	categoryCtrl := controllers.NewCategoryController(categoryRepo)
	articleCtrl := controllers.NewArticleController(articleRepo)
	testimonialCtrl := controllers.NewTestimonialController(testimonialRepo, logger)
	messageCtrl := controllers.NewMessageController(messageRepo, logger)
	socialCtrl := controllers.NewSocialController(socialRepo)
	adCtrl := controllers.NewAdvertisementController(adRepo)
	affiliateCtrl := controllers.NewAffiliateController(affiliateRepo, logger)
	adsenseCtrl := controllers.NewAdsenseController(adsenseRepo)
	syncCtrl := controllers.NewSyncController(
		services.NewSyncService(productCatalog{productRepo, categoryRepo}, logger), syncRepo, logger)
	chatbotCtrl := controllers.NewChatbotController(
		services.NewChatbotService(cfg.OpenAIKey, logger))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/robots.txt", func(c *gin.Context) {
		c.String(http.StatusOK, robotsTxt)
	})

	router.POST("/auth/login", authCtrl.Login)
	router.GET("/ref/:id", affiliateCtrl.Redirect)

	api := router.Group("/api")
	{
		api.GET("/products", productCtrl.List)
		api.GET("/products/search", productCtrl.Search)
		api.GET("/products/:slug", productCtrl.GetBySlug)
		api.GET("/subcategories/:slug/products", productCtrl.ListBySubcategory)
		api.GET("/categories", categoryCtrl.List)
		api.GET("/articles", articleCtrl.List)
		api.GET("/articles/:slug", articleCtrl.GetBySlug)
		api.GET("/testimonials", testimonialCtrl.ListVisible)
		api.POST("/testimonials", testimonialCtrl.Submit)
		api.POST("/testimonials/:id/:action", testimonialCtrl.React)
		api.POST("/contact", messageCtrl.Submit)
		api.GET("/social", socialCtrl.ListVisible)
		api.GET("/ads", adCtrl.ListActive)
		// One message per two seconds per visitor keeps the AI bill sane.
		api.POST("/chatbot", middleware.RateLimit(rate.Limit(0.5), 3), chatbotCtrl.Ask)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", dashboardCtrl.Summary)

		admin.POST("/products", productCtrl.Create)
		admin.PUT("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)

		admin.GET("/categories", categoryCtrl.List)
		admin.POST("/categories", categoryCtrl.Create)
		admin.PUT("/categories/:id", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)
		admin.POST("/categories/:id/subcategories", categoryCtrl.CreateSubcategory)
		admin.PUT("/categories/:id/subcategories/:subId", categoryCtrl.UpdateSubcategory)
		admin.DELETE("/categories/:id/subcategories/:subId", categoryCtrl.DeleteSubcategory)

		admin.POST("/articles", articleCtrl.Create)
		admin.PUT("/articles/:id", articleCtrl.Update)
		admin.DELETE("/articles/:id", articleCtrl.Delete)

		admin.GET("/testimonials", testimonialCtrl.ListAll)
		admin.POST("/testimonials", testimonialCtrl.Create)
		admin.PUT("/testimonials/:id", testimonialCtrl.Update)
		admin.POST("/testimonials/:id/toggle", testimonialCtrl.ToggleVisibility)
		admin.DELETE("/testimonials/:id", testimonialCtrl.Delete)

		admin.GET("/messages", messageCtrl.List)
		admin.GET("/messages/:id", messageCtrl.Get)
		admin.PUT("/messages/:id", messageCtrl.Update)
		admin.POST("/messages/:id/toggle-read", messageCtrl.ToggleRead)
		admin.POST("/messages/:id/toggle-archive", messageCtrl.ToggleArchive)
		admin.POST("/messages/:id/:action", messageCtrl.React)
		admin.DELETE("/messages/:id", messageCtrl.Delete)

		admin.GET("/social", socialCtrl.ListAll)
		admin.POST("/social", socialCtrl.Create)
		admin.PUT("/social/:id", socialCtrl.Update)
		admin.DELETE("/social/:id", socialCtrl.Delete)

		admin.GET("/ads", adCtrl.ListAll)
		admin.POST("/ads", adCtrl.Create)
		admin.PUT("/ads/:id", adCtrl.Update)
		admin.DELETE("/ads/:id", adCtrl.Delete)

		admin.GET("/affiliates", affiliateCtrl.List)
		admin.POST("/affiliates", affiliateCtrl.Create)
		admin.PUT("/affiliates/:id", affiliateCtrl.Update)
		admin.DELETE("/affiliates/:id", affiliateCtrl.Delete)
		admin.GET("/affiliate-stats", affiliateCtrl.ListStats)
		admin.POST("/affiliate-stats", affiliateCtrl.CreateStat)
		admin.PUT("/affiliate-stats/:id", affiliateCtrl.UpdateStat)
		admin.DELETE("/affiliate-stats/:id", affiliateCtrl.DeleteStat)

		admin.GET("/adsense", adsenseCtrl.Get)
		admin.PUT("/adsense", adsenseCtrl.Update)

		admin.GET("/api-products", syncCtrl.Status)
		admin.POST("/api-products/sync", syncCtrl.Run)
	}
}
