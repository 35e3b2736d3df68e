package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every API route under /api on the given router.
// Kept here rather than in main so tests can stand up the exact production
// routing table.
func RegisterRoutes(router gin.IRouter, h *Handler) {
	api := router.Group("/api")
	{
		lobbyRoutes := api.Group("/lobbies")
		{
			lobbyRoutes.GET("", h.GetLobbies)
			lobbyRoutes.POST("", h.CreateLobby)
			lobbyRoutes.GET("/:id", h.GetLobby)
			lobbyRoutes.DELETE("/:id", h.DeleteLobby)
			lobbyRoutes.POST("/:id/add", h.AddUserToLobby)
		}

		userRoutes := api.Group("/users")
		{
			userRoutes.GET("", h.GetUsers)
			userRoutes.POST("", h.CreateUser)
			userRoutes.GET("/:id", h.GetUser)
			userRoutes.DELETE("/:id", h.DeleteUser)
		}

		courseRoutes := api.Group("/courses")
		{
			courseRoutes.GET("", h.GetCourses)
			courseRoutes.POST("", h.CreateCourse)
			courseRoutes.GET("/:id", h.GetCourse)
			courseRoutes.DELETE("/:id", h.DeleteCourse)
			courseRoutes.POST("/:id/add", h.AddUserToCourse)
		}

		postRoutes := api.Group("/posts")
		{
			postRoutes.GET("", h.GetPosts)
			postRoutes.POST("", h.CreatePost)
			postRoutes.GET("/:id", h.GetPost)
			postRoutes.DELETE("/:id", h.DeletePost)
			postRoutes.GET("/:id/comments", h.GetComments)
			postRoutes.POST("/:id/comments", h.CreateComment)
		}
	}
}
