package main

import (
	"fmt"
	"log"
	"net/http"

	"studyhub/backend/internal/config"
	"studyhub/backend/internal/database"
	"studyhub/backend/internal/handler"
	"studyhub/backend/internal/middleware"
	"studyhub/backend/internal/store"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "studyhub/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Studyhub API
// @version         1.0
// @description     Study-group coordination API: courses, lobbies, posts, and comments.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// Connect to the database
	db := database.Connect(config.AppConfig.DatabaseURL)

	st := store.New(db)
	h := handler.New(st)

	router := gin.Default()
	router.Use(middleware.RequestID())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	handler.RegisterRoutes(router, h)

	fmt.Println("Server is running on", config.AppConfig.ServerAddress)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddress))
}
