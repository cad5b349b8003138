package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"voyago/cmd/fx/account_fx"
	"voyago/cmd/fx/ai_fx"
	"voyago/cmd/fx/chat_fx"
	"voyago/cmd/fx/store_fx"
	"voyago/cmd/fx/trip_fx"
	"voyago/internal/api/controllers"
	"voyago/internal/config"
	"voyago/pkg/logger"
	"voyago/pkg/middleware"
)

func main() {
	if err := logger.Init(gin.Mode() != gin.ReleaseMode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	app := fx.New(
		fx.Provide(config.Load),

		ai_fx.Module,
		store_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		chat_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Infof("Server running at: http://localhost:%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					logger.Errorf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Infof("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	chatController *controllers.ChatController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.BodyLimitMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, tripController, chatController)

	// Frontend assets live next to the binary; anything unrouted falls
	// through to the file server.
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	chatController *controllers.ChatController) {

	// Auth endpoints are mounted bare and under /auth for older frontends.
	r.POST("/signup", accountController.Signup)
	r.POST("/auth/signup", accountController.Signup)
	r.POST("/login", accountController.Login)
	r.POST("/auth/login", accountController.Login)
	r.GET("/profile/:username", accountController.Profile)
	r.GET("/auth/profile/:username", accountController.Profile)

	r.POST("/trip/plan", tripController.PlanTrip)

	r.POST("/chat", chatController.Chat)
	r.POST("/api/chat", chatController.Chat)
}
