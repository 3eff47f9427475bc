package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gsonntag/bruinbite/configs"
	"github.com/gsonntag/bruinbite/controllers"
	"github.com/gsonntag/bruinbite/middlewares"
	"github.com/gsonntag/bruinbite/repository"
	"github.com/gsonntag/bruinbite/search"
	"github.com/gsonntag/bruinbite/services"
	"github.com/gsonntag/bruinbite/ws"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. The search indexes are opened by the caller so the reindex CLI
// can share them.
func RegisterRoutes(r *gin.Engine, cfg *configs.Config, dishIdx *search.DishIndex, userIdx *search.UserIndex, tz *time.Location) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.Static("/uploads", cfg.UploadsDir)

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	hallRepo := repository.NewHallRepository(db)
	dishRepo := repository.NewDishRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	friendRepo := repository.NewFriendRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo, hallRepo)
	ratingSvc := services.NewRatingService(ratingRepo, friendRepo)
	friendSvc := services.NewFriendService(friendRepo)
	profileSvc := services.NewProfileService(userRepo, cfg.UploadsDir)
	recommendSvc := services.NewRecommendService(menuRepo, hallRepo, ratingRepo, tz)

	indexer := search.NewIndexer(dishRepo, hallRepo, userRepo, dishIdx, userIdx, 100)

	feed := ws.NewFeedHub(friendRepo)
	go feed.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, userRepo)
	menuCtrl := controllers.NewMenuController(menuSvc)
	hallCtrl := controllers.NewHallController(hallRepo)
	dishCtrl := controllers.NewDishController(dishRepo)
	ratingCtrl := controllers.NewRatingController(ratingSvc, userRepo, feed)
	friendCtrl := controllers.NewFriendController(friendSvc, userRepo, userIdx)
	profileCtrl := controllers.NewProfileController(profileSvc)
	searchCtrl := controllers.NewSearchController(dishIdx, dishRepo, indexer)
	recommendCtrl := controllers.NewRecommendController(recommendSvc)

	// Public
	r.POST("/signup", authCtrl.Signup)
	r.POST("/login", authCtrl.Login)
	r.POST("/logout", authCtrl.Logout)
	r.GET("/dining-halls", hallCtrl.List)
	r.GET("/hall-meal-periods", menuCtrl.Periods)
	r.GET("/menu", menuCtrl.Get)
	r.GET("/dish/:id", dishCtrl.Get)
	r.GET("/dishratings", ratingCtrl.ForDish)
	r.GET("/userratings/:username", ratingCtrl.ForUsername)
	r.GET("/search", searchCtrl.Search)

	// Authenticated
	auth := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, false))
	{
		auth.GET("/userinfo", authCtrl.UserInfo)
		auth.PUT("/profile", profileCtrl.Update)

		auth.POST("/ratings", ratingCtrl.Submit)
		auth.POST("/ratings/batch", ratingCtrl.SubmitBatch)
		auth.GET("/userratings", ratingCtrl.ForMe)
		auth.GET("/friendratings", ratingCtrl.ForFriends)

		auth.GET("/friends", friendCtrl.List)
		auth.GET("/in-friend-requests", friendCtrl.Incoming)
		auth.GET("/out-friend-requests", friendCtrl.Outgoing)
		auth.POST("/send-friend-request", friendCtrl.Send)
		auth.POST("/accept-friend-request", friendCtrl.Accept)
		auth.POST("/decline-friend-request", friendCtrl.Decline)
		auth.GET("/search-users", friendCtrl.SearchUsers)

		auth.GET("/recommended", recommendCtrl.Recommended)
	}

	// WebSocket feed accepts the token via query string for browser clients
	r.GET("/ws/feed", middlewares.WSAuthMiddleware(cfg.JWTSecret), feed.HandleWebSocket)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, true))
	{
		admin.POST("/reindex", searchCtrl.Reindex)
	}
}
