package http

import (
	"github.com/gin-gonic/gin"

	"studydesk/internal/bootstrap"
	"studydesk/internal/transport/http/handler"
	"studydesk/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	authHandler := handler.NewAuthHandler(app.AuthService, app.ChatService)
	folderHandler := handler.NewFolderHandler(app.FolderService)
	documentHandler := handler.NewDocumentHandler(app.DocumentService)
	chatHandler := handler.NewChatHandler(app.ChatService)

	authJWT := middleware.AuthJWT(app.Config.Auth.JWTSecret)

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authJWT, authHandler.Logout)
	authGroup.GET("/me", authJWT, authHandler.Me)
	authGroup.PATCH("/profile", authJWT, authHandler.UpdateProfile)

	folderGroup := v1.Group("/folders")
	folderGroup.Use(authJWT)
	folderGroup.POST("", folderHandler.Create)
	folderGroup.GET("", folderHandler.List)

	documentGroup := v1.Group("/documents")
	documentGroup.Use(authJWT)
	documentGroup.POST("", documentHandler.Upload)
	documentGroup.GET("", documentHandler.List)
	documentGroup.GET("/:id", documentHandler.Get)
	documentGroup.GET("/:id/url", documentHandler.DownloadURL)

	chatGroup := v1.Group("/chats")
	chatGroup.Use(authJWT)
	chatGroup.POST("", chatHandler.Create)
	chatGroup.GET("", chatHandler.List)
	chatGroup.GET("/current", chatHandler.Current)
	chatGroup.POST("/deselect", chatHandler.Deselect)
	chatGroup.POST("/:id/select", chatHandler.Select)
	chatGroup.PATCH("/:id", chatHandler.Rename)
	chatGroup.DELETE("/:id", chatHandler.Delete)
	chatGroup.POST("/messages", chatHandler.SendMessage)
	chatGroup.GET("/history", chatHandler.History)

	return router
}
