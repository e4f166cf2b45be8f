package routes

import (
	"github.com/SARVESHYOGI/store-rating-system/configs"
	"github.com/SARVESHYOGI/store-rating-system/controllers"
	"github.com/SARVESHYOGI/store-rating-system/middlewares"
	"github.com/SARVESHYOGI/store-rating-system/pkg/authz"
	"github.com/SARVESHYOGI/store-rating-system/repository"
	"github.com/SARVESHYOGI/store-rating-system/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo, storeRepo)
	storeSvc := services.NewStoreService(storeRepo, userRepo)
	ratingSvc := services.NewRatingService(ratingRepo, storeRepo)
	dashSvc := services.NewDashboardService(userRepo, storeRepo, ratingRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	storeCtrl := controllers.NewStoreController(storeSvc)
	ratingCtrl := controllers.NewRatingController(ratingSvc)
	dashCtrl := controllers.NewDashboardController(dashSvc)

	auth := middlewares.AuthMiddleware(db, cfg)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PUT("/change-password", authCtrl.ChangePassword)
	}

	// Stores — reads for any identity, writes gated per action
	stores := r.Group("/stores", auth)
	{
		stores.GET("", storeCtrl.List)
		stores.GET("/:id", storeCtrl.Detail)
		stores.POST("", middlewares.Authorize(authz.ManageStores), storeCtrl.Create)
		stores.PUT("/:id", storeCtrl.Update) // admin-or-owner, checked in controller
		stores.DELETE("/:id", middlewares.Authorize(authz.ManageStores), storeCtrl.Delete)
	}

	// Ratings
	ratings := r.Group("/ratings", auth)
	{
		ratings.POST("", ratingCtrl.Submit)
		ratings.GET("/store/:id", ratingCtrl.ListForStore)
		ratings.GET("/user/:id", ratingCtrl.ListForUser)
		ratings.DELETE("/:id", ratingCtrl.Delete)
	}

	// Users (admin only)
	users := r.Group("/users", auth, middlewares.Authorize(authz.ManageUsers))
	{
		users.GET("", userCtrl.List)
		users.POST("", userCtrl.Create)
		users.GET("/:id", userCtrl.Detail)
		users.PUT("/:id", userCtrl.Update)
		users.DELETE("/:id", userCtrl.Delete)
	}

	// Dashboards
	dash := r.Group("/dashboard", auth)
	{
		dash.GET("/admin", middlewares.Authorize(authz.ViewAdminDashboard), dashCtrl.Admin)
		dash.GET("/store-owner", middlewares.Authorize(authz.ViewOwnerDashboard), dashCtrl.Owner)
	}
}
