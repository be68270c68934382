package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every entity's CRUD surface plus the association routes
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Home feed
		r.Get("/", handlers.postHandler.getRecentPosts())

		// User endpoints
		r.Get("/users", handlers.userHandler.getAllUsers())
		r.Post("/users", handlers.userHandler.createUser())
		r.Get("/users/{userID}", handlers.userHandler.getUser())
		r.Put("/users/{userID}", handlers.userHandler.updateUser())
		r.Delete("/users/{userID}", handlers.userHandler.deleteUser())
		r.Post("/users/{userID}/posts", handlers.postHandler.createPost())

		// Post endpoints
		r.Get("/posts", handlers.postHandler.getRecentPosts())
		r.Get("/posts/{postID}", handlers.postHandler.getPost())
		r.Put("/posts/{postID}", handlers.postHandler.updatePost())
		r.Delete("/posts/{postID}", handlers.postHandler.deletePost())
		r.Get("/posts/{postID}/tags", handlers.postHandler.getPostTags())
		r.Put("/posts/{postID}/tags", handlers.postHandler.setPostTags())

		// Tag endpoints
		r.Get("/tags", handlers.tagHandler.getAllTags())
		r.Post("/tags", handlers.tagHandler.createTag())
		r.Get("/tags/{tagID}", handlers.tagHandler.getTag())
		r.Put("/tags/{tagID}", handlers.tagHandler.updateTag())
		r.Delete("/tags/{tagID}", handlers.tagHandler.deleteTag())
		r.Get("/tags/{tagID}/posts", handlers.tagHandler.getTagPosts())
	})
}
